// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package classifier is the boundary to the external text-classification
service.

# Contract

	verdict, err := c.Classify(ctx, answer, existingCategoryNames)

A verdict carries a non-empty category name and an advisory is_new hint.
The caller must not trust the hint: the ledger's own key set decides
novelty.

# Failure Modes

Two sentinel errors cover every failure, and neither is retried:

  - ErrTransport: the service could not be reached
  - ErrFormat: the response was empty or did not match the schema

# Gemini Implementation

Gemini uses the official SDK with a structured response schema so the
model can only return {"category_name": string, "is_new": bool}:

	g, err := classifier.NewGemini(ctx, cfg.GeminiAPIKey, cfg.GeminiModel)

The system instruction carries the scope's existing category names and
the rules for reusing versus creating categories.

# Stubbing

Func adapts a plain function for tests:

	stub := classifier.Func(func(ctx context.Context, answer string, existing []string) (models.Verdict, error) {
		return models.Verdict{CategoryName: "Clinical Decision Support", IsNew: true}, nil
	})
*/
package classifier
