// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package models defines request, response, and domain types for the API.

# Request Types

Types for parsing incoming JSON:

  - CategorizeRequest: presentation (optional), question (optional), answer
  - AddQuestionRequest: question
  - AdminLoginRequest: password

# Response Types

Types for JSON responses:

  - CategorizeResponse: message, category, is_new, all_categories
  - QuestionsResponse: presentation, questions
  - AddQuestionResponse: presentation, questions
  - AdminLoginResponse: token
  - ErrorResponse: error, message

# Domain Types

The persisted taxonomy:

  - Ledger: presentation → Presentation
  - Presentation: question → CategoryMap
  - CategoryMap: category → ordered answer list
  - QuestionIndex: presentation → ordered question list
  - Verdict: classifier output (category_name, is_new)

# Constants

Default scope names used when a request omits them:

	DefaultPresentation = "default"
	DefaultQuestion     = "General"
*/
package models
