package models

// Default scope names
const (
	DefaultPresentation = "default"
	DefaultQuestion     = "General"
)

// Request types

type CategorizeRequest struct {
	Presentation string `json:"presentation,omitempty"`
	Question     string `json:"question,omitempty"`
	Answer       string `json:"answer"`
}

type AddQuestionRequest struct {
	Question string `json:"question"`
}

type AdminLoginRequest struct {
	Password string `json:"password"`
}

// Response types

type CategorizeResponse struct {
	Message       string      `json:"message"`
	Category      string      `json:"category"`
	IsNew         bool        `json:"is_new"`
	AllCategories CategoryMap `json:"all_categories"`
}

type QuestionsResponse struct {
	Presentation string   `json:"presentation"`
	Questions    []string `json:"questions"`
}

type AddQuestionResponse struct {
	Presentation string   `json:"presentation"`
	Questions    []string `json:"questions"`
}

type AdminLoginResponse struct {
	Token string `json:"token"`
}

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}

// Domain types

// CategoryMap maps a category name to the ordered list of answers filed
// under it. Answer order is submission order.
type CategoryMap map[string][]string

// Presentation groups the categorized answers of one survey session,
// keyed by question text.
type Presentation struct {
	CategoriesByQuestion map[string]CategoryMap `json:"categories_by_question"`
}

// Ledger is the full persisted taxonomy: presentation → question →
// category → answers.
type Ledger struct {
	Presentations map[string]*Presentation `json:"presentations"`
}

// QuestionIndex maps a presentation name to its ordered, append-only
// list of question texts. Display metadata only; the authoritative
// question set for a presentation is the ledger's own keys.
type QuestionIndex map[string][]string

// Verdict is the classifier's output for one answer: the chosen category
// name and an advisory hint of whether the classifier believes it is new.
// The ledger's key set, not the hint, decides actual novelty.
type Verdict struct {
	CategoryName string `json:"category_name"`
	IsNew        bool   `json:"is_new"`
}
