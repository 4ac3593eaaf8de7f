// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package categorize reconciles classifier verdicts against the ledger.

# Flow

	svc := categorize.New(store, classifier)
	result, err := svc.Categorize(ctx, presentation, question, answer)

One call validates the answer, asks the classifier for a verdict seeded
with the scope's current category names, files the answer under the
verdict's category, and persists the ledger.

# Reconciliation Rule

The classifier's is_new hint is advisory. If the verdict names a
category that already exists in the scope, the result reports it as
existing; if the key is absent, the category is created and reported as
new. The ledger's key set is the single source of truth for novelty.

# Failure Semantics

  - ErrEmptyAnswer: whitespace-only answer, rejected before any
    classifier call.
  - Classifier errors (classifier.ErrTransport, classifier.ErrFormat)
    propagate unchanged; nothing is written or persisted.
*/
package categorize
