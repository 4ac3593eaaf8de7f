// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package store persists the category ledger and the question index.

# Documents

Two independent JSON documents live in the data directory:

  - data_store.json: presentations → categories_by_question → category → answers
  - questions.json: presentation → ordered question list

Both are pretty-printed for human inspection and rewritten whole after
every mutation, via temp-file-and-rename so readers never see a partial
document.

# Opening

	s, err := store.Open(cfg.DataDir)
	defer s.Close()

Open takes a flock on the data directory so two server instances cannot
share it. Missing documents start empty; corrupted documents log a
warning and start empty. Open never fails because of document contents.

# Schema Migration

The loader upgrades any legacy on-disk shape to the current nested
shape:

  - A top-level flat "categories" map (pre-presentation schema) moves to
    presentations.default.categories_by_question.General.
  - A flat "categories" map on a presentation record (pre-per-question
    schema) moves under that presentation's "General" question,
    first-write-wins.
  - The "default" presentation always exists after migration.

Migration is idempotent: current-shape documents pass through unchanged.

# Concurrency

Reads (Categories, CategoryNames, AllCategorized, Questions) take a read
lock and return copies. Mutations (Record, AddQuestion) serialize under a
write lock that covers both the in-memory change and the disk rewrite.

# Recording Answers

	isNew, scope, err := s.Record(presentation, question, category, answer)

Record creates missing presentation and question containers, decides
novelty from the scope's own key set (the classifier's hint is never
trusted), appends the answer, and persists the ledger in one step.
*/
package store
