// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"sync"

	"github.com/gofrs/flock"

	"github.com/danielhkuo/topiary/models"
)

const (
	ledgerFile    = "data_store.json"
	questionsFile = "questions.json"
	lockFile      = "topiary.lock"
)

// ErrQuestionExists is returned by AddQuestion for duplicate entries.
var ErrQuestionExists = errors.New("question already exists for presentation")

// Store owns the category ledger and the question index. It loads both
// documents once at construction, mutates them in memory, and rewrites
// the whole document to disk after each mutation.
//
// Mutations are serialized under a write lock; reads take a read lock
// and return copies, so callers can never alias internal state.
type Store struct {
	dir  string
	lock *flock.Flock

	mu        sync.RWMutex
	ledger    models.Ledger
	questions models.QuestionIndex
}

// Open acquires the data directory lock and loads both documents.
// A missing document yields an empty, fully-initialized structure.
// A corrupt document logs a warning and yields the same empty structure;
// Open never fails because of document contents.
func Open(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create data dir: %w", err)
	}

	lock := flock.New(filepath.Join(dir, lockFile))
	ok, err := lock.TryLock()
	if err != nil {
		return nil, fmt.Errorf("acquire data dir lock: %w", err)
	}
	if !ok {
		return nil, fmt.Errorf("data dir %s is in use by another topiary instance", dir)
	}

	s := &Store{
		dir:       dir,
		lock:      lock,
		ledger:    loadLedger(filepath.Join(dir, ledgerFile)),
		questions: loadQuestions(filepath.Join(dir, questionsFile)),
	}
	return s, nil
}

// Close flushes both documents and releases the data directory lock.
func (s *Store) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	var errs []error
	if err := s.saveLedger(); err != nil {
		errs = append(errs, err)
	}
	if err := s.saveQuestions(); err != nil {
		errs = append(errs, err)
	}
	if err := s.lock.Unlock(); err != nil {
		errs = append(errs, fmt.Errorf("release data dir lock: %w", err))
	}
	return errors.Join(errs...)
}

// loadLedger reads and migrates the ledger document.
func loadLedger(path string) models.Ledger {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return migrateLedger(rawLedger{})
	}
	if err != nil {
		slog.Warn("ledger unreadable, starting empty", "path", path, "error", err)
		return migrateLedger(rawLedger{})
	}

	var raw rawLedger
	if err := json.Unmarshal(data, &raw); err != nil {
		slog.Warn("ledger corrupted, starting empty", "path", path, "error", err)
		return migrateLedger(rawLedger{})
	}
	return migrateLedger(raw)
}

// loadQuestions reads the question index document.
func loadQuestions(path string) models.QuestionIndex {
	idx := models.QuestionIndex{}
	data, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			slog.Warn("question index unreadable, starting empty", "path", path, "error", err)
		}
	} else if err := json.Unmarshal(data, &idx); err != nil {
		slog.Warn("question index corrupted, starting empty", "path", path, "error", err)
		idx = models.QuestionIndex{}
	}
	if idx == nil {
		idx = models.QuestionIndex{}
	}
	if _, ok := idx[models.DefaultPresentation]; !ok {
		idx[models.DefaultPresentation] = []string{}
	}
	return idx
}

// writeDocument writes pretty-printed JSON via a temp file and rename so
// a reader never observes a partial document.
func writeDocument(path string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("encode %s: %w", filepath.Base(path), err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), filepath.Base(path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("write %s: %w", filepath.Base(path), err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("close temp file: %w", err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("replace %s: %w", filepath.Base(path), err)
	}
	return nil
}

// saveLedger and saveQuestions must be called with mu held.
func (s *Store) saveLedger() error {
	return writeDocument(filepath.Join(s.dir, ledgerFile), s.ledger)
}

func (s *Store) saveQuestions() error {
	return writeDocument(filepath.Join(s.dir, questionsFile), s.questions)
}

// Categories returns the category mapping for one (presentation, question)
// scope. Absent scopes yield an empty mapping.
func (s *Store) Categories(presentation, question string) models.CategoryMap {
	s.mu.RLock()
	defer s.mu.RUnlock()

	pres, ok := s.ledger.Presentations[presentation]
	if !ok {
		return models.CategoryMap{}
	}
	return copyCategoryMap(pres.CategoriesByQuestion[question])
}

// CategoryNames returns the sorted category names known for a scope.
// Used to seed the classifier.
func (s *Store) CategoryNames(presentation, question string) []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	names := []string{}
	if pres, ok := s.ledger.Presentations[presentation]; ok {
		for name := range pres.CategoriesByQuestion[question] {
			names = append(names, name)
		}
	}
	sort.Strings(names)
	return names
}

// AllCategorized returns every question's category mapping for a
// presentation. Absent presentations yield an empty mapping.
func (s *Store) AllCategorized(presentation string) map[string]models.CategoryMap {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := map[string]models.CategoryMap{}
	if pres, ok := s.ledger.Presentations[presentation]; ok {
		for question, cats := range pres.CategoriesByQuestion {
			out[question] = copyCategoryMap(cats)
		}
	}
	return out
}

// Questions returns the ordered question list for a presentation.
func (s *Store) Questions(presentation string) []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	qs := s.questions[presentation]
	out := make([]string, len(qs))
	copy(out, qs)
	return out
}

// AddQuestion appends a question to a presentation's index and persists
// the index. The index is append-only and display-only; it is not
// reconciled against the ledger's question keys.
func (s *Store) AddQuestion(presentation, question string) ([]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, q := range s.questions[presentation] {
		if q == question {
			return nil, ErrQuestionExists
		}
	}
	s.questions[presentation] = append(s.questions[presentation], question)
	if err := s.saveQuestions(); err != nil {
		return nil, err
	}

	out := make([]string, len(s.questions[presentation]))
	copy(out, s.questions[presentation])
	return out, nil
}

// Record files an answer under a category in one atomic step: it resolves
// the scope (creating presentation and question containers as needed),
// decides novelty from the scope's own key set, appends the answer, and
// persists the whole ledger.
//
// The returned novelty flag is authoritative: a category key that already
// exists is never reported as new, whatever the classifier claimed.
func (s *Store) Record(presentation, question, category, answer string) (bool, models.CategoryMap, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	pres, ok := s.ledger.Presentations[presentation]
	if !ok {
		pres = &models.Presentation{CategoriesByQuestion: map[string]models.CategoryMap{}}
		s.ledger.Presentations[presentation] = pres
	}
	scope, ok := pres.CategoriesByQuestion[question]
	if !ok {
		scope = models.CategoryMap{}
		pres.CategoriesByQuestion[question] = scope
	}

	_, exists := scope[category]
	if !exists {
		scope[category] = []string{}
	}
	scope[category] = append(scope[category], answer)

	if err := s.saveLedger(); err != nil {
		// Roll the in-memory append back so memory and disk stay in step.
		scope[category] = scope[category][:len(scope[category])-1]
		if !exists {
			delete(scope, category)
		}
		return false, nil, err
	}

	return !exists, copyCategoryMap(scope), nil
}

func copyCategoryMap(m models.CategoryMap) models.CategoryMap {
	out := models.CategoryMap{}
	for category, answers := range m {
		list := make([]string, len(answers))
		copy(list, answers)
		out[category] = list
	}
	return out
}
