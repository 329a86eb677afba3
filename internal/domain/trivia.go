package domain

// Question is a trivia question. IDs are assigned by the persistence layer
// and are strictly increasing.
type Question struct {
	ID         int
	Question   string
	Answer     string
	Difficulty int
	Category   int
}

// Category is a read-only grouping for questions.
type Category struct {
	ID   int
	Type string
}

// QuestionRepository is the persistence boundary for questions. Lookups that
// find nothing return (nil, nil); a non-nil error always means a storage
// failure, never an absent record.
type QuestionRepository interface {
	// GetAll returns every question ordered by id.
	GetAll() ([]Question, error)
	GetByID(id int) (*Question, error)
	// GetByCategory returns questions in a category ordered by id.
	GetByCategory(categoryID int) ([]Question, error)
	// SearchByText returns questions whose text contains term as a
	// case-insensitive substring, ordered by id.
	SearchByText(term string) ([]Question, error)
	// Insert persists a new question and returns its generated id.
	Insert(q *Question) (int, error)
	Delete(id int) error
	// MaxID returns the highest assigned question id, 0 when none exist.
	MaxID() (int, error)
}

// CategoryRepository is the persistence boundary for categories.
type CategoryRepository interface {
	// GetAll returns every category ordered by type.
	GetAll() ([]Category, error)
	GetByID(id int) (*Category, error)
}
