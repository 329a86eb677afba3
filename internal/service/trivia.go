package service

import (
	"errors"
	"math/rand"
	"time"

	"trivia-api/internal/domain"
	"trivia-api/internal/dto"
	"trivia-api/internal/logger"
	"trivia-api/internal/pagination"
	"trivia-api/internal/validation"

	"go.uber.org/zap"
)

// TriviaService defines the core trivia operations exposed to the route layer.
type TriviaService interface {
	ListCategories() (*dto.CategoryListResponse, error)
	ListQuestions(page string) (*dto.QuestionListResponse, error)
	SearchQuestions(term string, page string) (*dto.QuestionListResponse, error)
	ListQuestionsByCategory(categoryID string, page string) (*dto.QuestionListResponse, error)
	DeleteQuestion(id int) (*dto.DeleteQuestionResponse, error)
	CreateQuestion(payload map[string]any) (*dto.CreateQuestionResponse, error)
	NextQuizQuestion(payload map[string]any) (*dto.QuizResponse, error)
}

// triviaService implements TriviaService
type triviaService struct {
	questions  domain.QuestionRepository
	categories domain.CategoryRepository
	paginator  *pagination.Paginator
	validator  *validation.Validator
	rng        *rand.Rand
}

// NewTriviaService creates a new instance of triviaService
func NewTriviaService(
	questions domain.QuestionRepository,
	categories domain.CategoryRepository,
	paginator *pagination.Paginator,
) TriviaService {
	return &triviaService{
		questions:  questions,
		categories: categories,
		paginator:  paginator,
		validator:  validation.NewValidator(),
		rng:        rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// ListCategories implements TriviaService
func (s *triviaService) ListCategories() (*dto.CategoryListResponse, error) {
	categories, err := s.categories.GetAll()
	if err != nil {
		return nil, domain.NewInternalError(err)
	}
	if len(categories) == 0 {
		return nil, domain.NewNotFoundError(domain.DescNoCategoriesFound)
	}
	return &dto.CategoryListResponse{
		Success:    true,
		Categories: dto.FormatCategories(categories),
	}, nil
}

// ListQuestions implements TriviaService. An absent page parameter lists
// page 1; a page beyond the last one is a NotFound failure.
func (s *triviaService) ListQuestions(page string) (*dto.QuestionListResponse, error) {
	pageQuestions, total, err := s.questionPage(page, true)
	if err != nil {
		return nil, err
	}

	categories, err := s.categories.GetAll()
	if err != nil {
		return nil, domain.NewInternalError(err)
	}
	if len(categories) == 0 {
		return nil, domain.NewNotFoundError(domain.DescNoCategoriesFound)
	}

	return &dto.QuestionListResponse{
		Success:         true,
		Questions:       dto.FormatQuestions(pageQuestions),
		TotalQuestions:  total,
		CurrentCategory: dto.NoCategoryFilter(),
		Categories:      dto.FormatCategories(categories),
	}, nil
}

// SearchQuestions implements TriviaService. An empty match set is a valid
// result, not a failure.
func (s *triviaService) SearchQuestions(term string, page string) (*dto.QuestionListResponse, error) {
	pageNum, err := s.validator.Page(page)
	if err != nil {
		return nil, err
	}

	matches, err := s.questions.SearchByText(term)
	if err != nil {
		return nil, domain.NewInternalError(err)
	}

	return &dto.QuestionListResponse{
		Success:         true,
		Questions:       dto.FormatQuestions(s.paginator.Slice(pageNum, matches)),
		TotalQuestions:  len(matches),
		CurrentCategory: dto.NoCategoryFilter(),
	}, nil
}

// ListQuestionsByCategory implements TriviaService. The echoed
// current_category is the validated id, not the raw input.
func (s *triviaService) ListQuestionsByCategory(categoryID string, page string) (*dto.QuestionListResponse, error) {
	id, err := s.validator.CategoryID(categoryID)
	if err != nil {
		return nil, err
	}
	pageNum, err := s.validator.Page(page)
	if err != nil {
		return nil, err
	}

	questions, err := s.questions.GetByCategory(id)
	if err != nil {
		return nil, domain.NewInternalError(err)
	}
	pageQuestions := s.paginator.Slice(pageNum, questions)
	if len(pageQuestions) == 0 {
		return nil, domain.NewNotFoundError(domain.DescCategoryNotFound)
	}

	return &dto.QuestionListResponse{
		Success:         true,
		Questions:       dto.FormatQuestions(pageQuestions),
		TotalQuestions:  len(questions),
		CurrentCategory: id,
	}, nil
}

// DeleteQuestion implements TriviaService. The returned page tolerates being
// empty so that deleting the last question on the last page still succeeds.
func (s *triviaService) DeleteQuestion(id int) (*dto.DeleteQuestionResponse, error) {
	question, err := s.questions.GetByID(id)
	if err != nil {
		return nil, domain.NewInternalError(err)
	}
	if question == nil {
		return nil, domain.NewNotFoundError(domain.DescQuestionNotFound)
	}

	if err := s.questions.Delete(id); err != nil {
		return nil, domain.NewInternalError(err)
	}
	logger.Get().Info("Deleted question", zap.Int("id", id))

	pageQuestions, total, err := s.questionPage("", false)
	if err != nil {
		return nil, err
	}

	return &dto.DeleteQuestionResponse{
		Success:        true,
		Deleted:        id,
		Questions:      dto.FormatQuestions(pageQuestions),
		TotalQuestions: total,
	}, nil
}

// CreateQuestion implements TriviaService. The payload is the raw decoded
// request body; every field is validated here.
func (s *triviaService) CreateQuestion(payload map[string]any) (*dto.CreateQuestionResponse, error) {
	if err := s.validator.RequireFields(payload, "question", "answer", "difficulty", "category"); err != nil {
		return nil, err
	}

	questionText, ok := payload["question"].(string)
	if !ok {
		return nil, domain.NewUnprocessableError(domain.DescQuestionFields)
	}
	answerText, ok := payload["answer"].(string)
	if !ok {
		return nil, domain.NewUnprocessableError(domain.DescQuestionFields)
	}

	categoryID, err := s.validator.CoerceInt(payload["category"], domain.DescQuestionCategory)
	if err != nil {
		return nil, err
	}
	category, err := s.categories.GetByID(categoryID)
	if err != nil {
		return nil, domain.NewInternalError(err)
	}
	if category == nil {
		return nil, domain.NewUnprocessableError(domain.DescQuestionCategory)
	}

	difficulty, err := s.validator.CoerceInt(payload["difficulty"], domain.DescDifficultyType)
	if err != nil {
		return nil, err
	}
	if difficulty < 1 || difficulty > 5 {
		return nil, domain.NewUnprocessableError(domain.DescDifficultyRange)
	}

	maxBefore, err := s.questions.MaxID()
	if err != nil {
		return nil, domain.NewInternalError(err)
	}

	newID, err := s.questions.Insert(&domain.Question{
		Question:   questionText,
		Answer:     answerText,
		Difficulty: difficulty,
		Category:   categoryID,
	})
	if err != nil {
		return nil, domain.NewInternalError(err)
	}

	// Guard against id anomalies in the storage layer: the assigned id must
	// be strictly greater than every id handed out before the insert.
	maxAfter, err := s.questions.MaxID()
	if err != nil {
		return nil, domain.NewInternalError(err)
	}
	if maxAfter <= maxBefore {
		logger.Get().Error("Question id did not increase after insert",
			zap.Int("max_before", maxBefore),
			zap.Int("max_after", maxAfter),
		)
		return nil, domain.NewInternalError(errors.New("question id did not increase after insert"))
	}

	logger.Get().Info("Created question", zap.Int("id", newID), zap.Int("category", categoryID))
	return &dto.CreateQuestionResponse{Success: true, Created: newID}, nil
}

// NextQuizQuestion implements TriviaService. A nil question in a successful
// response is the end-of-quiz signal.
func (s *triviaService) NextQuizQuestion(payload map[string]any) (*dto.QuizResponse, error) {
	quizCategory, err := s.validator.QuizCategory(payload["quiz_category"])
	if err != nil {
		return nil, err
	}
	previous, err := s.validator.PreviousQuestions(payload["previous_questions"])
	if err != nil {
		return nil, err
	}

	var pool []domain.Question
	if quizCategory == 0 {
		pool, err = s.questions.GetAll()
	} else {
		pool, err = s.questions.GetByCategory(quizCategory)
	}
	if err != nil {
		return nil, domain.NewInternalError(err)
	}
	if len(pool) == 0 {
		return nil, domain.NewNotFoundError(domain.DescCategoryNotFound)
	}

	seen := make(map[int]struct{}, len(previous))
	for _, id := range previous {
		seen[id] = struct{}{}
	}
	available := make([]domain.Question, 0, len(pool))
	for _, question := range pool {
		if _, done := seen[question.ID]; !done {
			available = append(available, question)
		}
	}

	if len(available) == 0 {
		return &dto.QuizResponse{Success: true, Question: nil}, nil
	}

	picked := dto.FormatQuestion(available[s.rng.Intn(len(available))])
	return &dto.QuizResponse{Success: true, Question: &picked}, nil
}

// questionPage fetches all questions and slices out the requested page.
// total is the size of the full unpaginated result set.
func (s *triviaService) questionPage(page string, emptyPageIsError bool) ([]domain.Question, int, error) {
	pageNum, err := s.validator.Page(page)
	if err != nil {
		return nil, 0, err
	}

	all, err := s.questions.GetAll()
	if err != nil {
		return nil, 0, domain.NewInternalError(err)
	}

	pageQuestions := s.paginator.Slice(pageNum, all)
	if emptyPageIsError && len(pageQuestions) == 0 {
		return nil, 0, domain.NewNotFoundError(domain.DescNoQuestionsFound)
	}
	return pageQuestions, len(all), nil
}
