// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/danielhkuo/topiary/categorize"
	"github.com/danielhkuo/topiary/classifier"
	"github.com/danielhkuo/topiary/middleware"
	"github.com/danielhkuo/topiary/models"
	"github.com/danielhkuo/topiary/store"
)

type SurveyHandler struct {
	store *store.Store
	svc   *categorize.Service
}

func NewSurveyHandler(s *store.Store, svc *categorize.Service) *SurveyHandler {
	return &SurveyHandler{store: s, svc: svc}
}

// GetQuestions handles GET /presentations/{presentation}/questions
func (h *SurveyHandler) GetQuestions(w http.ResponseWriter, r *http.Request) {
	presentation := r.PathValue("presentation")
	if presentation == "" {
		presentation = models.DefaultPresentation
	}

	middleware.JSONResponse(w, http.StatusOK, models.QuestionsResponse{
		Presentation: presentation,
		Questions:    h.store.Questions(presentation),
	})
}

// GetCategories handles GET /presentations/{presentation}/categories?question=...
// The question defaults to "General".
func (h *SurveyHandler) GetCategories(w http.ResponseWriter, r *http.Request) {
	presentation := r.PathValue("presentation")
	if presentation == "" {
		presentation = models.DefaultPresentation
	}
	question := r.URL.Query().Get("question")
	if question == "" {
		question = models.DefaultQuestion
	}

	middleware.JSONResponse(w, http.StatusOK, h.store.Categories(presentation, question))
}

// GetAllCategorized handles GET /presentations/{presentation}/categorized
func (h *SurveyHandler) GetAllCategorized(w http.ResponseWriter, r *http.Request) {
	presentation := r.PathValue("presentation")
	if presentation == "" {
		presentation = models.DefaultPresentation
	}

	middleware.JSONResponse(w, http.StatusOK, h.store.AllCategorized(presentation))
}

// Categorize handles POST /categorize
func (h *SurveyHandler) Categorize(w http.ResponseWriter, r *http.Request) {
	var req models.CategorizeRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	if req.Presentation == "" {
		req.Presentation = models.DefaultPresentation
	}
	if req.Question == "" {
		req.Question = models.DefaultQuestion
	}

	result, err := h.svc.Categorize(r.Context(), req.Presentation, req.Question, req.Answer)
	switch {
	case errors.Is(err, categorize.ErrEmptyAnswer):
		middleware.ErrorResponse(w, http.StatusBadRequest, "Answer cannot be empty")
		return
	case errors.Is(err, classifier.ErrTransport):
		slog.Error("classifier unreachable", "error", err)
		middleware.ErrorResponse(w, http.StatusBadGateway, "Error communicating with classification service")
		return
	case errors.Is(err, classifier.ErrFormat):
		slog.Error("classifier response malformed", "error", err)
		middleware.ErrorResponse(w, http.StatusBadGateway, "Could not parse structured response from classifier")
		return
	case err != nil:
		slog.Error("categorization failed", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to record answer")
		return
	}

	slog.Info("answer categorized",
		"presentation", req.Presentation,
		"question", req.Question,
		"category", result.Category,
		"is_new", result.IsNew,
	)

	middleware.JSONResponse(w, http.StatusOK, models.CategorizeResponse{
		Message:       fmt.Sprintf("Answer successfully categorized under: '%s'", result.Category),
		Category:      result.Category,
		IsNew:         result.IsNew,
		AllCategories: result.Categories,
	})
}
