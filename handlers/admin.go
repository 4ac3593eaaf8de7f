// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"encoding/csv"
	"errors"
	"log/slog"
	"net/http"
	"sort"
	"strings"

	"github.com/danielhkuo/topiary/auth"
	"github.com/danielhkuo/topiary/middleware"
	"github.com/danielhkuo/topiary/models"
	"github.com/danielhkuo/topiary/store"
)

type AdminHandler struct {
	store *store.Store
	auth  *auth.Manager
}

func NewAdminHandler(s *store.Store, mgr *auth.Manager) *AdminHandler {
	return &AdminHandler{store: s, auth: mgr}
}

// requireAdmin validates the bearer token on an admin request.
func (h *AdminHandler) requireAdmin(w http.ResponseWriter, r *http.Request) bool {
	if err := h.auth.Validate(middleware.BearerToken(r)); err != nil {
		middleware.ErrorResponse(w, http.StatusUnauthorized, "Invalid session token")
		return false
	}
	return true
}

// Login handles POST /admin/login
func (h *AdminHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req models.AdminLoginRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	token, err := h.auth.Login(req.Password)
	if errors.Is(err, auth.ErrInvalidPassword) {
		middleware.ErrorResponse(w, http.StatusUnauthorized, "Invalid password")
		return
	}
	if err != nil {
		slog.Error("failed to issue session token", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to log in")
		return
	}

	slog.Info("admin logged in")

	middleware.JSONResponse(w, http.StatusOK, models.AdminLoginResponse{Token: token})
}

// AddQuestion handles POST /presentations/{presentation}/questions
func (h *AdminHandler) AddQuestion(w http.ResponseWriter, r *http.Request) {
	if !h.requireAdmin(w, r) {
		return
	}

	presentation := r.PathValue("presentation")
	if presentation == "" {
		presentation = models.DefaultPresentation
	}

	var req models.AddQuestionRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	question := strings.TrimSpace(req.Question)
	if question == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "question is required")
		return
	}

	questions, err := h.store.AddQuestion(presentation, question)
	if errors.Is(err, store.ErrQuestionExists) {
		middleware.ErrorResponse(w, http.StatusConflict, "Question already exists")
		return
	}
	if err != nil {
		slog.Error("failed to add question", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to add question")
		return
	}

	slog.Info("question added", "presentation", presentation, "question", question)

	middleware.JSONResponse(w, http.StatusCreated, models.AddQuestionResponse{
		Presentation: presentation,
		Questions:    questions,
	})
}

// ExportCSV handles GET /presentations/{presentation}/export.csv
// Every (question, category, answer) triple becomes one flat row.
// Questions and categories are sorted so exports are reproducible;
// answers keep submission order.
func (h *AdminHandler) ExportCSV(w http.ResponseWriter, r *http.Request) {
	if !h.requireAdmin(w, r) {
		return
	}

	presentation := r.PathValue("presentation")
	if presentation == "" {
		presentation = models.DefaultPresentation
	}

	categorized := h.store.AllCategorized(presentation)

	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", `attachment; filename="`+presentation+`-answers.csv"`)

	cw := csv.NewWriter(w)
	cw.Write([]string{"question", "category", "answer"})

	questions := make([]string, 0, len(categorized))
	for question := range categorized {
		questions = append(questions, question)
	}
	sort.Strings(questions)

	for _, question := range questions {
		scope := categorized[question]
		categories := make([]string, 0, len(scope))
		for category := range scope {
			categories = append(categories, category)
		}
		sort.Strings(categories)

		for _, category := range categories {
			for _, answer := range scope[category] {
				cw.Write([]string{question, category, answer})
			}
		}
	}

	cw.Flush()
	if err := cw.Error(); err != nil {
		slog.Error("failed to write CSV export", "error", err)
	}
}
