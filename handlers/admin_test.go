// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"net/http"
	"net/http/httptest"
	"reflect"
	"strings"
	"testing"

	"github.com/danielhkuo/topiary/auth"
	"github.com/danielhkuo/topiary/models"
	"github.com/danielhkuo/topiary/store"
	"github.com/danielhkuo/topiary/testutil"
)

func newAdminHandler(t *testing.T) (*AdminHandler, *store.Store, string) {
	t.Helper()
	s := testutil.SetupTestStore(t)
	mgr := auth.NewManager("test-password", "test-secret")
	token, err := mgr.Login("test-password")
	if err != nil {
		t.Fatalf("Failed to issue test token: %v", err)
	}
	return NewAdminHandler(s, mgr), s, token
}

func bearer(token string) map[string]string {
	return map[string]string{"Authorization": "Bearer " + token}
}

func TestLogin(t *testing.T) {
	tests := []struct {
		name           string
		body           interface{}
		expectedStatus int
	}{
		{"valid password", models.AdminLoginRequest{Password: "test-password"}, http.StatusOK},
		{"wrong password", models.AdminLoginRequest{Password: "nope"}, http.StatusUnauthorized},
		{"empty password", models.AdminLoginRequest{}, http.StatusUnauthorized},
		{"invalid JSON", nil, http.StatusBadRequest},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			handler, _, _ := newAdminHandler(t)

			req := testutil.MakeRequest("POST", "/admin/login", tc.body, nil)
			w := httptest.NewRecorder()

			handler.Login(w, req)
			testutil.AssertStatus(t, w, tc.expectedStatus)

			if tc.expectedStatus == http.StatusOK {
				var resp models.AdminLoginResponse
				testutil.AssertJSON(t, w, &resp)
				if resp.Token == "" {
					t.Error("Expected non-empty session token")
				}
			}
		})
	}
}

func TestAddQuestion(t *testing.T) {
	handler, s, token := newAdminHandler(t)

	tests := []struct {
		name           string
		body           interface{}
		headers        map[string]string
		expectedStatus int
	}{
		{
			name:           "no token",
			body:           models.AddQuestionRequest{Question: "Q1"},
			headers:        nil,
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "bad token",
			body:           models.AddQuestionRequest{Question: "Q1"},
			headers:        bearer("garbage"),
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "valid question",
			body:           models.AddQuestionRequest{Question: "What interests you about AI?"},
			headers:        bearer(token),
			expectedStatus: http.StatusCreated,
		},
		{
			name:           "duplicate question",
			body:           models.AddQuestionRequest{Question: "What interests you about AI?"},
			headers:        bearer(token),
			expectedStatus: http.StatusConflict,
		},
		{
			name:           "blank question",
			body:           models.AddQuestionRequest{Question: "   "},
			headers:        bearer(token),
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			req := withPresentation(testutil.MakeRequest("POST", "/presentations/default/questions", tc.body, tc.headers), "default")
			w := httptest.NewRecorder()

			handler.AddQuestion(w, req)
			testutil.AssertStatus(t, w, tc.expectedStatus)
		})
	}

	if got := s.Questions("default"); !reflect.DeepEqual(got, []string{"What interests you about AI?"}) {
		t.Errorf("Expected one stored question, got %v", got)
	}
}

func TestExportCSV(t *testing.T) {
	handler, s, token := newAdminHandler(t)

	records := []struct{ question, category, answer string }{
		{"General", "Ethics", "bias worries me"},
		{"General", "Ethics", "model transparency"},
		{"General", "Curriculum", "add an AI module"},
		{"Advanced uses", "Diagnosis", "AI reading scans"},
	}
	for _, rec := range records {
		if _, _, err := s.Record("default", rec.question, rec.category, rec.answer); err != nil {
			t.Fatal(err)
		}
	}

	req := withPresentation(testutil.MakeRequest("GET", "/presentations/default/export.csv", nil, bearer(token)), "default")
	w := httptest.NewRecorder()

	handler.ExportCSV(w, req)
	testutil.AssertStatus(t, w, http.StatusOK)

	if ct := w.Header().Get("Content-Type"); ct != "text/csv" {
		t.Errorf("Expected Content-Type text/csv, got %q", ct)
	}

	lines := strings.Split(strings.TrimSpace(w.Body.String()), "\n")
	expected := []string{
		"question,category,answer",
		"Advanced uses,Diagnosis,AI reading scans",
		"General,Curriculum,add an AI module",
		"General,Ethics,bias worries me",
		"General,Ethics,model transparency",
	}
	if !reflect.DeepEqual(lines, expected) {
		t.Errorf("Unexpected CSV rows:\nexpected: %v\ngot:      %v", expected, lines)
	}
}

func TestExportCSV_RequiresToken(t *testing.T) {
	handler, _, _ := newAdminHandler(t)

	req := withPresentation(testutil.MakeRequest("GET", "/presentations/default/export.csv", nil, nil), "default")
	w := httptest.NewRecorder()

	handler.ExportCSV(w, req)
	testutil.AssertStatus(t, w, http.StatusUnauthorized)
}
