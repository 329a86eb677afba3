package handler

import (
	"bytes"
	"encoding/json"

	"trivia-api/internal/domain"
	"trivia-api/internal/service"

	"github.com/gofiber/fiber/v2"
)

// TriviaHandler handles trivia HTTP requests
type TriviaHandler struct {
	service service.TriviaService
}

// NewTriviaHandler creates a new TriviaHandler instance
func NewTriviaHandler(service service.TriviaService) *TriviaHandler {
	return &TriviaHandler{service: service}
}

// RegisterRoutes mounts the trivia routes on the given router group.
func (h *TriviaHandler) RegisterRoutes(api fiber.Router) {
	api.Get("/categories", h.GetCategories)
	api.Get("/categories/:id/questions", h.GetQuestionsByCategory)
	api.Get("/questions", h.GetQuestions)
	api.Post("/questions", h.PostQuestions)
	api.Delete("/questions/:id", h.DeleteQuestion)
	api.Post("/quizzes", h.PlayQuiz)
}

// GetCategories godoc
// @Summary List all categories
// @Description Returns all categories as an id to type map
// @Tags categories
// @Produce json
// @Success 200 {object} dto.CategoryListResponse
// @Failure 404 {object} middleware.ErrorResponse
// @Router /categories [get]
func (h *TriviaHandler) GetCategories(c *fiber.Ctx) error {
	response, err := h.service.ListCategories()
	if err != nil {
		return err
	}
	return c.JSON(response)
}

// GetQuestions godoc
// @Summary List questions
// @Description Returns a page of questions with totals and the category map
// @Tags questions
// @Produce json
// @Param page query int false "Page number (1-based)"
// @Success 200 {object} dto.QuestionListResponse
// @Failure 404 {object} middleware.ErrorResponse
// @Failure 422 {object} middleware.ErrorResponse
// @Router /questions [get]
func (h *TriviaHandler) GetQuestions(c *fiber.Ctx) error {
	response, err := h.service.ListQuestions(c.Query("page"))
	if err != nil {
		return err
	}
	return c.JSON(response)
}

// PostQuestions godoc
// @Summary Search questions or create a question
// @Description Dispatches on the payload shape: a search_term key runs a
// @Description case-insensitive substring search, question fields create a
// @Description new question, anything else is a bad request.
// @Tags questions
// @Accept json
// @Produce json
// @Success 200 {object} dto.QuestionListResponse
// @Failure 400 {object} middleware.ErrorResponse
// @Failure 422 {object} middleware.ErrorResponse
// @Router /questions [post]
func (h *TriviaHandler) PostQuestions(c *fiber.Ctx) error {
	payload, err := decodePayload(c.Body())
	if err != nil {
		return err
	}

	if raw, ok := payload["search_term"]; ok {
		term, isString := raw.(string)
		if !isString {
			return domain.NewBadRequestError(domain.DescInvalidSyntax)
		}
		response, err := h.service.SearchQuestions(term, c.Query("page"))
		if err != nil {
			return err
		}
		return c.JSON(response)
	}

	if hasAnyKey(payload, "question", "answer", "difficulty", "category") {
		response, err := h.service.CreateQuestion(payload)
		if err != nil {
			return err
		}
		return c.JSON(response)
	}

	return domain.NewBadRequestError(domain.DescInvalidSyntax)
}

// DeleteQuestion godoc
// @Summary Delete a question
// @Description Deletes a question by id and returns the refreshed first page
// @Tags questions
// @Produce json
// @Param id path int true "Question id"
// @Success 200 {object} dto.DeleteQuestionResponse
// @Failure 404 {object} middleware.ErrorResponse
// @Router /questions/{id} [delete]
func (h *TriviaHandler) DeleteQuestion(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return domain.NewNotFoundError(domain.DescQuestionNotFound)
	}
	response, err := h.service.DeleteQuestion(id)
	if err != nil {
		return err
	}
	return c.JSON(response)
}

// GetQuestionsByCategory godoc
// @Summary List questions in a category
// @Tags categories
// @Produce json
// @Param id path int true "Category id"
// @Param page query int false "Page number (1-based)"
// @Success 200 {object} dto.QuestionListResponse
// @Failure 404 {object} middleware.ErrorResponse
// @Failure 422 {object} middleware.ErrorResponse
// @Router /categories/{id}/questions [get]
func (h *TriviaHandler) GetQuestionsByCategory(c *fiber.Ctx) error {
	response, err := h.service.ListQuestionsByCategory(c.Params("id"), c.Query("page"))
	if err != nil {
		return err
	}
	return c.JSON(response)
}

// PlayQuiz godoc
// @Summary Pick the next quiz question
// @Description Picks one unseen question at random from the selected
// @Description category; a null question signals the end of the quiz.
// @Tags quiz
// @Accept json
// @Produce json
// @Success 200 {object} dto.QuizResponse
// @Failure 400 {object} middleware.ErrorResponse
// @Failure 404 {object} middleware.ErrorResponse
// @Failure 422 {object} middleware.ErrorResponse
// @Router /quizzes [post]
func (h *TriviaHandler) PlayQuiz(c *fiber.Ctx) error {
	payload, err := decodePayload(c.Body())
	if err != nil {
		return err
	}

	_, hasCategory := payload["quiz_category"]
	_, hasPrevious := payload["previous_questions"]
	if !hasCategory && !hasPrevious {
		return domain.NewBadRequestError(domain.DescInvalidSyntax)
	}

	response, err := h.service.NextQuizQuestion(payload)
	if err != nil {
		return err
	}
	return c.JSON(response)
}

// decodePayload decodes a JSON body into an untyped map. UseNumber keeps
// integers as json.Number so validation can tell them apart from floats.
// A missing, malformed or empty body is a bad request.
func decodePayload(body []byte) (map[string]any, error) {
	decoder := json.NewDecoder(bytes.NewReader(body))
	decoder.UseNumber()

	var payload map[string]any
	if err := decoder.Decode(&payload); err != nil || len(payload) == 0 {
		return nil, domain.NewBadRequestError(domain.DescInvalidSyntax)
	}
	return payload, nil
}

func hasAnyKey(payload map[string]any, keys ...string) bool {
	for _, key := range keys {
		if _, ok := payload[key]; ok {
			return true
		}
	}
	return false
}
