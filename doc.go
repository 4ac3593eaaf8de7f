// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package main provides the entry point for the Topiary API server.

Topiary collects free-text answers to survey questions, classifies each
answer into a topical category with the Gemini API, and maintains a
running taxonomy of categories per question per presentation.

# Starting the Server

The server requires environment variables or CLI flags for configuration:

	GEMINI_API_KEY=... ADMIN_PASSWORD=... SESSION_SECRET=... go run main.go

Or with flags:

	go run main.go -p 8000 -d ./data --model gemini-2.5-flash

A .env file in the working directory is loaded before parsing.

# Configuration

Required settings:

  - GEMINI_API_KEY (--api-key): Gemini API key
  - ADMIN_PASSWORD (--admin-password): Password for admin login
  - SESSION_SECRET (--session-secret): Secret for session token signing

Optional settings:

  - PORT (-p): Server port (default: 8000)
  - DATA_DIR (-d): Data directory for JSON documents (default: data)
  - GEMINI_MODEL (--model): Gemini model name (default: gemini-2.5-flash)

# Architecture

The server uses a handler-based architecture with dependency injection:

  - store: Category ledger and question index persistence, schema migration
  - classifier: Gemini-backed classification boundary
  - categorize: Reconciles classifier verdicts against the ledger
  - handlers: HTTP request handlers (survey, admin)
  - router: Route definitions using Go 1.22+ routing
  - middleware: CORS, logging, JSON helpers
  - models: Request/response and domain types
  - auth: Admin session tokens
  - cliparse: Configuration parsing

See package documentation for each component.
*/
package main
