// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package classifier

import (
	"context"
	"errors"

	"github.com/danielhkuo/topiary/models"
)

var (
	// ErrTransport means the classification service could not be reached
	// or returned a transport-level error.
	ErrTransport = errors.New("classification service unreachable")

	// ErrFormat means the classification service responded, but the
	// payload was empty or did not match the expected schema.
	ErrFormat = errors.New("classification response malformed")
)

// Classifier assigns a free-text answer to a category, given the
// category names already known for the scope. Implementations must
// return a verdict with a non-empty category name or an error wrapping
// ErrTransport or ErrFormat. The verdict's IsNew field is advisory only.
type Classifier interface {
	Classify(ctx context.Context, answer string, existing []string) (models.Verdict, error)
}

// Func adapts a plain function to the Classifier interface. Used by
// tests to stub verdicts and failures.
type Func func(ctx context.Context, answer string, existing []string) (models.Verdict, error)

func (f Func) Classify(ctx context.Context, answer string, existing []string) (models.Verdict, error) {
	return f(ctx, answer, existing)
}
