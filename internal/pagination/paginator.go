package pagination

import "trivia-api/internal/domain"

// DefaultPageSize is the fallback page size when none is configured.
const DefaultPageSize = 10

// Paginator slices ordered question sets into fixed-size pages.
type Paginator struct {
	pageSize int
}

// New creates a Paginator with the given page size. Non-positive sizes fall
// back to DefaultPageSize.
func New(pageSize int) *Paginator {
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}
	return &Paginator{pageSize: pageSize}
}

// PageSize returns the configured page size.
func (p *Paginator) PageSize() int {
	return p.pageSize
}

// Slice returns the 1-based page of questions, preserving input order. A
// page beyond the end of the collection yields an empty slice, never an
// error; whether an empty page is a failure is the caller's call.
func (p *Paginator) Slice(page int, questions []domain.Question) []domain.Question {
	start := (page - 1) * p.pageSize
	if start < 0 || start >= len(questions) {
		return []domain.Question{}
	}
	stop := start + p.pageSize
	if stop > len(questions) {
		stop = len(questions)
	}
	return questions[start:stop]
}
