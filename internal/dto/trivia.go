package dto

import "trivia-api/internal/domain"

// Question is the public field set of a question.
type Question struct {
	ID         int    `json:"id"`
	Question   string `json:"question"`
	Answer     string `json:"answer"`
	Difficulty int    `json:"difficulty"`
	Category   int    `json:"category"`
}

// CategoryListResponse is the response for listing all categories.
type CategoryListResponse struct {
	Success    bool           `json:"success"`
	Categories map[int]string `json:"categories"`
}

// QuestionListResponse is the shared response shape for listing, searching
// and filtering questions. CurrentCategory is either an empty list (no
// category filter applied) or the validated category id. Categories is only
// attached by the top-level listing.
type QuestionListResponse struct {
	Success         bool           `json:"success"`
	Questions       []Question     `json:"questions"`
	TotalQuestions  int            `json:"total_questions"`
	CurrentCategory any            `json:"current_category"`
	Categories      map[int]string `json:"categories,omitempty"`
}

// DeleteQuestionResponse is the response for deleting a question.
type DeleteQuestionResponse struct {
	Success        bool       `json:"success"`
	Deleted        int        `json:"deleted"`
	Questions      []Question `json:"questions"`
	TotalQuestions int        `json:"total_questions"`
}

// CreateQuestionResponse is the response for creating a question.
type CreateQuestionResponse struct {
	Success bool `json:"success"`
	Created int  `json:"created"`
}

// QuizResponse is the response for a quiz round. Question is null once the
// previous-question list covers the whole candidate pool.
type QuizResponse struct {
	Success  bool      `json:"success"`
	Question *Question `json:"question"`
}

// NoCategoryFilter is the current_category sentinel for unfiltered listings.
func NoCategoryFilter() []int {
	return []int{}
}

// FormatQuestion renders a domain question to its public field set.
func FormatQuestion(q domain.Question) Question {
	return Question{
		ID:         q.ID,
		Question:   q.Question,
		Answer:     q.Answer,
		Difficulty: q.Difficulty,
		Category:   q.Category,
	}
}

// FormatQuestions renders questions preserving input order. The result is
// never nil so empty pages serialize as [] rather than null.
func FormatQuestions(questions []domain.Question) []Question {
	formatted := make([]Question, 0, len(questions))
	for _, q := range questions {
		formatted = append(formatted, FormatQuestion(q))
	}
	return formatted
}

// FormatCategories renders categories as an id -> type map.
func FormatCategories(categories []domain.Category) map[int]string {
	m := make(map[int]string, len(categories))
	for _, c := range categories {
		m[c.ID] = c.Type
	}
	return m
}
