// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package categorize

import (
	"context"
	"errors"
	"strings"

	"github.com/danielhkuo/topiary/classifier"
	"github.com/danielhkuo/topiary/models"
	"github.com/danielhkuo/topiary/store"
)

// ErrEmptyAnswer is returned when the submitted answer is empty or
// whitespace-only. Nothing is classified or written.
var ErrEmptyAnswer = errors.New("answer cannot be empty")

// Result is the outcome of one categorization: the category the answer
// was filed under, whether that category was created by this call, and
// the scope's full updated mapping.
type Result struct {
	Category   string
	IsNew      bool
	Categories models.CategoryMap
}

// Service turns classifier verdicts into durable ledger updates.
type Service struct {
	store      *store.Store
	classifier classifier.Classifier
}

func New(s *store.Store, c classifier.Classifier) *Service {
	return &Service{store: s, classifier: c}
}

// Categorize classifies an answer and records it under the resulting
// category for the (presentation, question) scope.
//
// The classifier is called outside the store's write lock, seeded with
// the scope's current category names. That leaves a window where a
// concurrent submission creates the same category first; store.Record's
// authoritative-existence check closes it, so the returned novelty flag
// reflects the ledger, not the classifier's claim.
//
// A classifier failure aborts the whole operation: the ledger is left
// untouched and the answer is not recorded.
func (s *Service) Categorize(ctx context.Context, presentation, question, answer string) (Result, error) {
	answer = strings.TrimSpace(answer)
	if answer == "" {
		return Result{}, ErrEmptyAnswer
	}

	existing := s.store.CategoryNames(presentation, question)

	verdict, err := s.classifier.Classify(ctx, answer, existing)
	if err != nil {
		return Result{}, err
	}

	category := strings.TrimSpace(verdict.CategoryName)
	isNew, scope, err := s.store.Record(presentation, question, category, answer)
	if err != nil {
		return Result{}, err
	}

	return Result{Category: category, IsNew: isNew, Categories: scope}, nil
}
