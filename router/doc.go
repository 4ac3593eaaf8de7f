// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package router defines HTTP routes for the Topiary API.

# Route Registration

NewRouter creates a configured http.ServeMux with all endpoints:

	mux := router.NewRouter(store, svc, authManager)

# Endpoints

Health:

	GET /health

Survey (public):

	GET  /presentations/{presentation}/questions   - Question index
	GET  /presentations/{presentation}/categories  - One scope's mapping (?question=)
	GET  /presentations/{presentation}/categorized - All questions' mappings
	POST /categorize                               - Classify and record an answer

Admin (requires Authorization: Bearer):

	POST /admin/login                              - Issue session token
	POST /presentations/{presentation}/questions   - Append question
	GET  /presentations/{presentation}/export.csv  - Flat CSV export

# Handler Initialization

The router creates handler instances with dependency injection:

	surveyHandler := handlers.NewSurveyHandler(store, svc)
	adminHandler := handlers.NewAdminHandler(store, authManager)
*/
package router
