// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import "github.com/danielhkuo/topiary/models"

// rawLedger is the decode target for the ledger document. It carries the
// current shape alongside every legacy shape the service has ever written,
// so any prior document decodes without error and can be normalized.
type rawLedger struct {
	Presentations map[string]rawPresentation `json:"presentations"`

	// Pre-presentation schema: a single flat category map at the top level.
	Categories map[string][]string `json:"categories"`
}

type rawPresentation struct {
	CategoriesByQuestion map[string]map[string][]string `json:"categories_by_question"`

	// Pre-per-question schema: a flat category map directly on the
	// presentation record.
	Categories map[string][]string `json:"categories"`
}

// migrateLedger normalizes any on-disk ledger shape into the current
// nested shape:
//
//  1. A document with no presentations container gets its legacy flat
//     category map (if any) filed under question "General" in the
//     "default" presentation.
//  2. The "default" presentation and its per-question container always
//     exist afterwards.
//  3. A presentation record carrying a legacy flat category map has it
//     moved under its "General" question, unless "General" already
//     exists (first-write-wins, so newer data is never clobbered).
//
// Running migrateLedger on an already-current document is a no-op.
func migrateLedger(raw rawLedger) models.Ledger {
	ledger := models.Ledger{Presentations: map[string]*models.Presentation{}}

	if raw.Presentations == nil {
		// Step 1: whole document is the pre-presentation schema.
		byQuestion := map[string]models.CategoryMap{}
		if len(raw.Categories) > 0 {
			byQuestion[models.DefaultQuestion] = toCategoryMap(raw.Categories)
		}
		ledger.Presentations[models.DefaultPresentation] = &models.Presentation{
			CategoriesByQuestion: byQuestion,
		}
		return ledger
	}

	for name, rawPres := range raw.Presentations {
		pres := &models.Presentation{CategoriesByQuestion: map[string]models.CategoryMap{}}
		for question, cats := range rawPres.CategoriesByQuestion {
			pres.CategoriesByQuestion[question] = toCategoryMap(cats)
		}
		// Step 3: fold a pre-per-question category map under "General",
		// first-write-wins.
		if len(rawPres.Categories) > 0 {
			if _, ok := pres.CategoriesByQuestion[models.DefaultQuestion]; !ok {
				pres.CategoriesByQuestion[models.DefaultQuestion] = toCategoryMap(rawPres.Categories)
			}
		}
		ledger.Presentations[name] = pres
	}

	// Step 2: the default presentation always exists.
	if _, ok := ledger.Presentations[models.DefaultPresentation]; !ok {
		ledger.Presentations[models.DefaultPresentation] = &models.Presentation{
			CategoriesByQuestion: map[string]models.CategoryMap{},
		}
	}
	return ledger
}

func toCategoryMap(m map[string][]string) models.CategoryMap {
	out := models.CategoryMap{}
	for category, answers := range m {
		if answers == nil {
			answers = []string{}
		}
		out[category] = answers
	}
	return out
}
