// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package classifier

import (
	"errors"
	"strings"
	"testing"
)

func TestDecodeVerdict(t *testing.T) {
	testCases := []struct {
		name         string
		raw          string
		wantCategory string
		wantIsNew    bool
		wantErr      error
	}{
		{
			name:         "valid new category",
			raw:          `{"category_name": "Clinical Decision Support", "is_new": true}`,
			wantCategory: "Clinical Decision Support",
			wantIsNew:    true,
		},
		{
			name:         "valid existing category",
			raw:          `{"category_name": "Ethics", "is_new": false}`,
			wantCategory: "Ethics",
			wantIsNew:    false,
		},
		{
			name:         "surrounding whitespace trimmed",
			raw:          `{"category_name": "  Padded  ", "is_new": false}`,
			wantCategory: "Padded",
		},
		{
			name:    "empty text",
			raw:     "",
			wantErr: ErrFormat,
		},
		{
			name:    "whitespace text",
			raw:     "   \n",
			wantErr: ErrFormat,
		},
		{
			name:    "not JSON",
			raw:     "Sure! Here is the category: Ethics",
			wantErr: ErrFormat,
		},
		{
			name:    "missing category_name",
			raw:     `{"is_new": true}`,
			wantErr: ErrFormat,
		},
		{
			name:    "blank category_name",
			raw:     `{"category_name": "   ", "is_new": true}`,
			wantErr: ErrFormat,
		},
		{
			name:    "wrong field types",
			raw:     `{"category_name": 42, "is_new": "yes"}`,
			wantErr: ErrFormat,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			verdict, err := decodeVerdict(tc.raw)

			if tc.wantErr != nil {
				if !errors.Is(err, tc.wantErr) {
					t.Fatalf("Expected error %v, got %v", tc.wantErr, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("Unexpected error: %v", err)
			}
			if verdict.CategoryName != tc.wantCategory {
				t.Errorf("Expected category %q, got %q", tc.wantCategory, verdict.CategoryName)
			}
			if verdict.IsNew != tc.wantIsNew {
				t.Errorf("Expected is_new %v, got %v", tc.wantIsNew, verdict.IsNew)
			}
		})
	}
}

func TestSystemPrompt_NoCategories(t *testing.T) {
	prompt := systemPrompt(nil)
	if !strings.Contains(prompt, "Current existing categories are: None.") {
		t.Errorf("Expected 'None' for empty category list, got:\n%s", prompt)
	}
}

func TestSystemPrompt_ListsCategories(t *testing.T) {
	prompt := systemPrompt([]string{"Ethics", "Curriculum Design"})
	if !strings.Contains(prompt, "Current existing categories are: Ethics, Curriculum Design.") {
		t.Errorf("Expected joined category list, got:\n%s", prompt)
	}
}
