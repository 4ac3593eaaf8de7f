// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"net/http"

	"github.com/danielhkuo/topiary/auth"
	"github.com/danielhkuo/topiary/categorize"
	"github.com/danielhkuo/topiary/handlers"
	"github.com/danielhkuo/topiary/middleware"
	"github.com/danielhkuo/topiary/store"
)

func NewRouter(s *store.Store, svc *categorize.Service, mgr *auth.Manager) *http.ServeMux {
	mux := http.NewServeMux()

	// Initialize handlers
	surveyHandler := handlers.NewSurveyHandler(s, svc)
	adminHandler := handlers.NewAdminHandler(s, mgr)

	// Health check
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// Survey operations (public)
	mux.HandleFunc("GET /presentations/{presentation}/questions", middleware.WithLogging(surveyHandler.GetQuestions))
	mux.HandleFunc("GET /presentations/{presentation}/categories", middleware.WithLogging(surveyHandler.GetCategories))
	mux.HandleFunc("GET /presentations/{presentation}/categorized", middleware.WithLogging(surveyHandler.GetAllCategorized))
	mux.HandleFunc("POST /categorize", middleware.WithLogging(surveyHandler.Categorize))

	// Admin operations (bearer token)
	mux.HandleFunc("POST /admin/login", middleware.WithLogging(adminHandler.Login))
	mux.HandleFunc("POST /presentations/{presentation}/questions", middleware.WithLogging(adminHandler.AddQuestion))
	mux.HandleFunc("GET /presentations/{presentation}/export.csv", middleware.WithLogging(adminHandler.ExportCSV))

	// Root endpoint
	mux.HandleFunc("GET /", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("topiary API v1"))
	})

	return mux
}
