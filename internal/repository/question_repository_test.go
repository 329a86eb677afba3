package repository

import (
	"errors"
	"regexp"
	"testing"

	"trivia-api/internal/domain"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// setupTestDB creates a new sqlx.DB instance and sqlmock for testing.
func setupTestDB(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock) {
	mockDB, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	if err != nil {
		t.Fatalf("Failed to create sqlmock: %v", err)
	}
	sqlxDB := sqlx.NewDb(mockDB, "sqlmock")
	return sqlxDB, mock
}

func questionRows(questions ...domain.Question) *sqlmock.Rows {
	rows := sqlmock.NewRows([]string{"id", "question", "answer", "difficulty", "category"})
	for _, q := range questions {
		rows.AddRow(q.ID, q.Question, q.Answer, q.Difficulty, q.Category)
	}
	return rows
}

func TestQuestionGetAll(t *testing.T) {
	db, mock := setupTestDB(t)
	repo := NewQuestionRepository(db)

	expected := []domain.Question{
		{ID: 1, Question: "What is Go?", Answer: "A language", Difficulty: 1, Category: 1},
		{ID: 2, Question: "Who painted the Mona Lisa?", Answer: "Da Vinci", Difficulty: 2, Category: 2},
	}
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT id, question, answer, difficulty, category FROM questions ORDER BY id`)).
		WillReturnRows(questionRows(expected...))

	result, err := repo.GetAll()

	require.NoError(t, err)
	assert.Equal(t, expected, result)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestQuestionGetByID(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		db, mock := setupTestDB(t)
		repo := NewQuestionRepository(db)

		expected := domain.Question{ID: 7, Question: "What is Go?", Answer: "A language", Difficulty: 1, Category: 1}
		mock.ExpectQuery(regexp.QuoteMeta(`SELECT id, question, answer, difficulty, category FROM questions WHERE id = $1`)).
			WithArgs(7).
			WillReturnRows(questionRows(expected))

		result, err := repo.GetByID(7)

		require.NoError(t, err)
		require.NotNil(t, result)
		assert.Equal(t, expected, *result)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("absent returns nil without error", func(t *testing.T) {
		db, mock := setupTestDB(t)
		repo := NewQuestionRepository(db)

		mock.ExpectQuery(regexp.QuoteMeta(`SELECT id, question, answer, difficulty, category FROM questions WHERE id = $1`)).
			WithArgs(99).
			WillReturnRows(questionRows())

		result, err := repo.GetByID(99)

		require.NoError(t, err)
		assert.Nil(t, result)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestQuestionGetByCategory(t *testing.T) {
	db, mock := setupTestDB(t)
	repo := NewQuestionRepository(db)

	expected := []domain.Question{
		{ID: 3, Question: "q3", Answer: "a3", Difficulty: 3, Category: 2},
		{ID: 5, Question: "q5", Answer: "a5", Difficulty: 1, Category: 2},
	}
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT id, question, answer, difficulty, category FROM questions WHERE category = $1 ORDER BY id`)).
		WithArgs(2).
		WillReturnRows(questionRows(expected...))

	result, err := repo.GetByCategory(2)

	require.NoError(t, err)
	assert.Equal(t, expected, result)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestQuestionSearchByText(t *testing.T) {
	db, mock := setupTestDB(t)
	repo := NewQuestionRepository(db)

	expected := []domain.Question{
		{ID: 4, Question: "Which royal palace?", Answer: "Versailles", Difficulty: 2, Category: 3},
	}
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT id, question, answer, difficulty, category FROM questions WHERE question ILIKE '%' || $1 || '%' ORDER BY id`)).
		WithArgs("royal").
		WillReturnRows(questionRows(expected...))

	result, err := repo.SearchByText("royal")

	require.NoError(t, err)
	assert.Equal(t, expected, result)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestQuestionInsert(t *testing.T) {
	db, mock := setupTestDB(t)
	repo := NewQuestionRepository(db)

	question := &domain.Question{Question: "What is Go?", Answer: "A language", Difficulty: 1, Category: 1}
	mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO questions (question, answer, difficulty, category)
		VALUES ($1, $2, $3, $4) RETURNING id`)).
		WithArgs(question.Question, question.Answer, question.Difficulty, question.Category).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(21))

	id, err := repo.Insert(question)

	require.NoError(t, err)
	assert.Equal(t, 21, id)
	assert.Equal(t, 21, question.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestQuestionInsertNil(t *testing.T) {
	db, _ := setupTestDB(t)
	repo := NewQuestionRepository(db)

	_, err := repo.Insert(nil)
	assert.Error(t, err)
}

func TestQuestionDelete(t *testing.T) {
	db, mock := setupTestDB(t)
	repo := NewQuestionRepository(db)

	mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM questions WHERE id = $1`)).
		WithArgs(5).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.Delete(5)

	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestQuestionMaxID(t *testing.T) {
	t.Run("populated table", func(t *testing.T) {
		db, mock := setupTestDB(t)
		repo := NewQuestionRepository(db)

		mock.ExpectQuery(regexp.QuoteMeta(`SELECT COALESCE(MAX(id), 0) FROM questions`)).
			WillReturnRows(sqlmock.NewRows([]string{"coalesce"}).AddRow(42))

		max, err := repo.MaxID()

		require.NoError(t, err)
		assert.Equal(t, 42, max)
	})

	t.Run("empty table", func(t *testing.T) {
		db, mock := setupTestDB(t)
		repo := NewQuestionRepository(db)

		mock.ExpectQuery(regexp.QuoteMeta(`SELECT COALESCE(MAX(id), 0) FROM questions`)).
			WillReturnRows(sqlmock.NewRows([]string{"coalesce"}).AddRow(0))

		max, err := repo.MaxID()

		require.NoError(t, err)
		assert.Equal(t, 0, max)
	})
}

func TestQuestionStorageErrorsPropagate(t *testing.T) {
	db, mock := setupTestDB(t)
	repo := NewQuestionRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT id, question, answer, difficulty, category FROM questions ORDER BY id`)).
		WillReturnError(errors.New("connection reset"))

	_, err := repo.GetAll()

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to get questions")
}
