package repository

import (
	"database/sql"
	"fmt"

	"trivia-api/internal/domain"

	"github.com/jmoiron/sqlx"
)

// questionModel mirrors the questions table row.
type questionModel struct {
	ID         int    `db:"id"`
	Question   string `db:"question"`
	Answer     string `db:"answer"`
	Difficulty int    `db:"difficulty"`
	Category   int    `db:"category"`
}

// QuestionDatabaseAdapter implements domain.QuestionRepository using sqlx.DB
type QuestionDatabaseAdapter struct {
	db *sqlx.DB
}

// NewQuestionRepository creates a new instance of QuestionDatabaseAdapter
func NewQuestionRepository(db *sqlx.DB) domain.QuestionRepository {
	return &QuestionDatabaseAdapter{db: db}
}

const questionColumns = `id, question, answer, difficulty, category`

// GetAll implements domain.QuestionRepository
func (a *QuestionDatabaseAdapter) GetAll() ([]domain.Question, error) {
	var models []questionModel
	query := `SELECT ` + questionColumns + ` FROM questions ORDER BY id`

	if err := a.db.Select(&models, query); err != nil {
		return nil, fmt.Errorf("failed to get questions: %w", err)
	}
	return toDomainQuestions(models), nil
}

// GetByID implements domain.QuestionRepository
func (a *QuestionDatabaseAdapter) GetByID(id int) (*domain.Question, error) {
	var model questionModel
	query := `SELECT ` + questionColumns + ` FROM questions WHERE id = $1`

	if err := a.db.Get(&model, query, id); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get question by id %d: %w", id, err)
	}
	question := toDomainQuestion(model)
	return &question, nil
}

// GetByCategory implements domain.QuestionRepository
func (a *QuestionDatabaseAdapter) GetByCategory(categoryID int) ([]domain.Question, error) {
	var models []questionModel
	query := `SELECT ` + questionColumns + ` FROM questions WHERE category = $1 ORDER BY id`

	if err := a.db.Select(&models, query, categoryID); err != nil {
		return nil, fmt.Errorf("failed to get questions for category %d: %w", categoryID, err)
	}
	return toDomainQuestions(models), nil
}

// SearchByText implements domain.QuestionRepository
func (a *QuestionDatabaseAdapter) SearchByText(term string) ([]domain.Question, error) {
	var models []questionModel
	query := `SELECT ` + questionColumns + ` FROM questions WHERE question ILIKE '%' || $1 || '%' ORDER BY id`

	if err := a.db.Select(&models, query, term); err != nil {
		return nil, fmt.Errorf("failed to search questions: %w", err)
	}
	return toDomainQuestions(models), nil
}

// Insert implements domain.QuestionRepository
func (a *QuestionDatabaseAdapter) Insert(q *domain.Question) (int, error) {
	if q == nil {
		return 0, fmt.Errorf("cannot insert nil question")
	}
	query := `INSERT INTO questions (question, answer, difficulty, category)
		VALUES ($1, $2, $3, $4) RETURNING id`

	var id int
	if err := a.db.Get(&id, query, q.Question, q.Answer, q.Difficulty, q.Category); err != nil {
		return 0, fmt.Errorf("failed to insert question: %w", err)
	}
	q.ID = id
	return id, nil
}

// Delete implements domain.QuestionRepository
func (a *QuestionDatabaseAdapter) Delete(id int) error {
	query := `DELETE FROM questions WHERE id = $1`

	if _, err := a.db.Exec(query, id); err != nil {
		return fmt.Errorf("failed to delete question %d: %w", id, err)
	}
	return nil
}

// MaxID implements domain.QuestionRepository
func (a *QuestionDatabaseAdapter) MaxID() (int, error) {
	var max int
	query := `SELECT COALESCE(MAX(id), 0) FROM questions`

	if err := a.db.Get(&max, query); err != nil {
		return 0, fmt.Errorf("failed to get max question id: %w", err)
	}
	return max, nil
}

func toDomainQuestion(model questionModel) domain.Question {
	return domain.Question{
		ID:         model.ID,
		Question:   model.Question,
		Answer:     model.Answer,
		Difficulty: model.Difficulty,
		Category:   model.Category,
	}
}

func toDomainQuestions(models []questionModel) []domain.Question {
	questions := make([]domain.Question, len(models))
	for i, model := range models {
		questions[i] = toDomainQuestion(model)
	}
	return questions
}
