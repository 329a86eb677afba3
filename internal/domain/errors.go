package domain

import (
	"fmt"
	"net/http"
)

// StatusClass is the top-level kind of a request failure. Its numeric value
// doubles as the HTTP status code the dispatcher renders.
type StatusClass int

const (
	StatusBadRequest       StatusClass = http.StatusBadRequest
	StatusNotFound         StatusClass = http.StatusNotFound
	StatusMethodNotAllowed StatusClass = http.StatusMethodNotAllowed
	StatusUnprocessable    StatusClass = http.StatusUnprocessableEntity
	StatusInternal         StatusClass = http.StatusInternalServerError
)

// Message returns the fixed machine message tied to a status class.
func (c StatusClass) Message() string {
	switch c {
	case StatusBadRequest:
		return "bad request"
	case StatusNotFound:
		return "resource not found"
	case StatusMethodNotAllowed:
		return "method not allowed"
	case StatusUnprocessable:
		return "request unprocessable"
	default:
		return "internal server error"
	}
}

// Failure descriptions. Each failing check owns exactly one of these.
const (
	DescInvalidSyntax        = "invalid syntax, or data not provided"
	DescQuestionNotFound     = "question not found"
	DescNoCategoriesFound    = "no categories found"
	DescCategoryNotFound     = "category not found, out of range or has no questions"
	DescNoQuestionsFound     = "page out of range, no questions found"
	DescCategoryIDFormat     = "invalid input, {category_id} in /api/categories/{category_id}/questions must be a positive integer"
	DescPageFormat           = "invalid input, {page_num} in /api/questions?page={page_num} must be a positive integer"
	DescQuestionFields       = "invalid input, a new question needs all fields: question, answer, difficulty, category"
	DescPreviousNotList      = "invalid input, previous_questions must be a list"
	DescPreviousElement      = "invalid input, previous_questions must be an empty list or a list of integers"
	DescQuizCategoryType     = "invalid input, quiz_category must be an integer"
	DescQuizCategoryNegative = "invalid input, quiz_category must be zero or a positive integer"
	DescQuestionCategory     = `invalid input, "category" must be an integer that exists in the database`
	DescDifficultyType       = `invalid input, "difficulty" must be an integer`
	DescDifficultyRange      = `invalid input, "difficulty" must be an integer from 1 to 5`
)

// StatusError is the one error type core operations are allowed to return.
// Description is specific to the failing check; internal errors carry a
// cause for logging instead, which is never exposed to the client.
type StatusError struct {
	Status      StatusClass
	Description string
	Cause       error
}

func (e *StatusError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Status.Message(), e.Cause)
	}
	if e.Description != "" {
		return fmt.Sprintf("%s: %s", e.Status.Message(), e.Description)
	}
	return e.Status.Message()
}

func (e *StatusError) Unwrap() error {
	return e.Cause
}

func NewBadRequestError(description string) *StatusError {
	return &StatusError{Status: StatusBadRequest, Description: description}
}

func NewNotFoundError(description string) *StatusError {
	return &StatusError{Status: StatusNotFound, Description: description}
}

func NewUnprocessableError(description string) *StatusError {
	return &StatusError{Status: StatusUnprocessable, Description: description}
}

func NewInternalError(cause error) *StatusError {
	return &StatusError{Status: StatusInternal, Cause: cause}
}
