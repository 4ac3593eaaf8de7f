// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package handlers contains HTTP request handlers for the Topiary API.

# Handler Types

Each handler is a struct with its dependencies injected via constructor:

  - SurveyHandler: question/category retrieval and answer categorization
  - AdminHandler: admin login, question curation, CSV export

	surveyHandler := handlers.NewSurveyHandler(store, svc)
	adminHandler := handlers.NewAdminHandler(store, authManager)

# Survey Flow

	GET  /presentations/{presentation}/questions   → GetQuestions
	GET  /presentations/{presentation}/categories  → GetCategories (?question=, default "General")
	GET  /presentations/{presentation}/categorized → GetAllCategorized
	POST /categorize                               → Categorize

Categorize accepts {presentation?, question?, answer}; presentation
defaults to "default" and question to "General". The response carries
the final category, the corrected novelty flag, and the scope's full
updated mapping.

# Admin Flow

	POST /admin/login                              → Login (returns bearer token)
	POST /presentations/{presentation}/questions   → AddQuestion
	GET  /presentations/{presentation}/export.csv  → ExportCSV

Admin operations require an Authorization: Bearer token from Login.

# Error Mapping

  - empty answer, bad JSON, missing fields → 400
  - bad password or session token → 401
  - duplicate question → 409
  - classifier transport or format failure → 502 (ledger untouched)
  - storage write failure → 500
*/
package handlers
