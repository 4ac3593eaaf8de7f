// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"encoding/json"
	"reflect"
	"testing"

	"github.com/danielhkuo/topiary/models"
)

func decodeRaw(t *testing.T, doc string) rawLedger {
	t.Helper()
	var raw rawLedger
	if err := json.Unmarshal([]byte(doc), &raw); err != nil {
		t.Fatalf("Failed to decode test document: %v", err)
	}
	return raw
}

func TestMigrateLedger_LegacyFlatDocument(t *testing.T) {
	// Pre-presentation schema: flat category map at the top level
	raw := decodeRaw(t, `{"categories": {"C1": ["a1"]}}`)

	ledger := migrateLedger(raw)

	pres, ok := ledger.Presentations["default"]
	if !ok {
		t.Fatal("Expected default presentation after migration")
	}
	general := pres.CategoriesByQuestion["General"]
	expected := models.CategoryMap{"C1": {"a1"}}
	if !reflect.DeepEqual(general, expected) {
		t.Errorf("Expected General scope %v, got %v", expected, general)
	}
}

func TestMigrateLedger_Idempotent(t *testing.T) {
	// Migrating an already-current document must be a no-op
	doc := `{
		"presentations": {
			"default": {
				"categories_by_question": {
					"General": {"C1": ["a1", "a2"]},
					"Q2": {"C2": ["b1"]}
				}
			},
			"spring": {
				"categories_by_question": {}
			}
		}
	}`

	first := migrateLedger(decodeRaw(t, doc))

	// Round-trip through JSON and migrate again
	data, err := json.Marshal(first)
	if err != nil {
		t.Fatal(err)
	}
	second := migrateLedger(decodeRaw(t, string(data)))

	if !reflect.DeepEqual(first, second) {
		t.Errorf("Second migration changed the document:\nfirst:  %+v\nsecond: %+v", first, second)
	}
}

func TestMigrateLedger_EmptyDocument(t *testing.T) {
	ledger := migrateLedger(rawLedger{})

	pres, ok := ledger.Presentations["default"]
	if !ok {
		t.Fatal("Expected default presentation in empty migration")
	}
	if pres.CategoriesByQuestion == nil {
		t.Error("Expected initialized categories_by_question container")
	}
	if len(pres.CategoriesByQuestion) != 0 {
		t.Errorf("Expected empty container, got %v", pres.CategoriesByQuestion)
	}
}

func TestMigrateLedger_PresentationLevelLegacyMap(t *testing.T) {
	// Pre-per-question schema: flat category map on the presentation record
	raw := decodeRaw(t, `{
		"presentations": {
			"default": {"categories": {"Old": ["legacy answer"]}},
			"spring": {
				"categories_by_question": {"Q1": {"C1": ["x"]}},
				"categories": {"Stale": ["old"]}
			}
		}
	}`)

	ledger := migrateLedger(raw)

	general := ledger.Presentations["default"].CategoriesByQuestion["General"]
	if !reflect.DeepEqual(general, models.CategoryMap{"Old": {"legacy answer"}}) {
		t.Errorf("Expected legacy map under General, got %v", general)
	}

	spring := ledger.Presentations["spring"].CategoriesByQuestion
	if !reflect.DeepEqual(spring["General"], models.CategoryMap{"Stale": {"old"}}) {
		t.Errorf("Expected spring legacy map under General, got %v", spring["General"])
	}
	if !reflect.DeepEqual(spring["Q1"], models.CategoryMap{"C1": {"x"}}) {
		t.Errorf("Expected Q1 preserved, got %v", spring["Q1"])
	}
}

func TestMigrateLedger_LegacyMapDoesNotClobberGeneral(t *testing.T) {
	// First-write-wins: an existing General entry survives
	raw := decodeRaw(t, `{
		"presentations": {
			"default": {
				"categories_by_question": {"General": {"Current": ["new data"]}},
				"categories": {"Old": ["legacy answer"]}
			}
		}
	}`)

	ledger := migrateLedger(raw)

	general := ledger.Presentations["default"].CategoriesByQuestion["General"]
	if !reflect.DeepEqual(general, models.CategoryMap{"Current": {"new data"}}) {
		t.Errorf("Legacy map clobbered newer General data: %v", general)
	}
}

func TestMigrateLedger_HalfPopulatedDocument(t *testing.T) {
	// Documents with missing containers converge to the full shape
	testCases := []struct {
		name string
		doc  string
	}{
		{"null presentations", `{"presentations": null}`},
		{"empty presentations", `{"presentations": {}}`},
		{"presentation with no containers", `{"presentations": {"default": {}}}`},
		{"null category list", `{"presentations": {"default": {"categories_by_question": {"Q": {"C": null}}}}}`},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ledger := migrateLedger(decodeRaw(t, tc.doc))

			pres, ok := ledger.Presentations["default"]
			if !ok {
				t.Fatal("Expected default presentation")
			}
			if pres.CategoriesByQuestion == nil {
				t.Error("Expected initialized categories_by_question container")
			}
			for question, cats := range pres.CategoriesByQuestion {
				for category, answers := range cats {
					if answers == nil {
						t.Errorf("Nil answer list survived migration at %s/%s", question, category)
					}
				}
			}
		})
	}
}
