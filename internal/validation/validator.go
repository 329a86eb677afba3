package validation

import (
	"encoding/json"
	"strconv"
	"strings"

	"trivia-api/internal/domain"
)

// Validator coerces untyped request input into typed values. Payload maps
// must be decoded with json.Decoder.UseNumber so that integers arrive as
// json.Number and floats stay distinguishable.
type Validator struct{}

// NewValidator creates a new validator instance
func NewValidator() *Validator {
	return &Validator{}
}

// CoerceInt converts a value that is already an integer, an integral
// json.Number, or a string of decimal digits. Any other shape (float,
// non-digit string, bool, nil/missing) fails Unprocessable with the
// caller-supplied description.
func (v *Validator) CoerceInt(value any, description string) (int, error) {
	switch n := value.(type) {
	case int:
		return n, nil
	case int64:
		return int(n), nil
	case json.Number:
		i, err := strconv.ParseInt(n.String(), 10, 64)
		if err != nil {
			return 0, domain.NewUnprocessableError(description)
		}
		return int(i), nil
	case string:
		if !isDigits(n) {
			return 0, domain.NewUnprocessableError(description)
		}
		i, err := strconv.Atoi(n)
		if err != nil {
			return 0, domain.NewUnprocessableError(description)
		}
		return i, nil
	default:
		return 0, domain.NewUnprocessableError(description)
	}
}

// RequireFields verifies that every named field is present in the payload
// and, when the value is a string, non-blank after trimming. A blank string
// counts as absent even though the key exists.
func (v *Validator) RequireFields(payload map[string]any, fields ...string) error {
	for _, field := range fields {
		value, ok := payload[field]
		if !ok || value == nil {
			return domain.NewUnprocessableError(domain.DescQuestionFields)
		}
		if s, isString := value.(string); isString && strings.TrimSpace(s) == "" {
			return domain.NewUnprocessableError(domain.DescQuestionFields)
		}
	}
	return nil
}

// Page validates a raw page query parameter. An absent parameter means
// page 1; anything else must coerce to an integer >= 1.
func (v *Validator) Page(raw string) (int, error) {
	if raw == "" {
		return 1, nil
	}
	page, err := v.CoerceInt(raw, domain.DescPageFormat)
	if err != nil {
		return 0, err
	}
	if page < 1 {
		return 0, domain.NewUnprocessableError(domain.DescPageFormat)
	}
	return page, nil
}

// CategoryID validates a raw category path parameter as a positive integer.
func (v *Validator) CategoryID(raw string) (int, error) {
	id, err := v.CoerceInt(raw, domain.DescCategoryIDFormat)
	if err != nil {
		return 0, err
	}
	if id <= 0 {
		return 0, domain.NewUnprocessableError(domain.DescCategoryIDFormat)
	}
	return id, nil
}

// QuizCategory validates a quiz category selector. Zero is the sentinel for
// "all categories"; negative values and non-integers fail with distinct
// descriptions.
func (v *Validator) QuizCategory(value any) (int, error) {
	id, err := v.CoerceInt(value, domain.DescQuizCategoryType)
	if err != nil {
		return 0, err
	}
	if id < 0 {
		return 0, domain.NewUnprocessableError(domain.DescQuizCategoryNegative)
	}
	return id, nil
}

// PreviousQuestions validates the previously-seen question id list. The
// value must be a sequence; every element is coerced independently and the
// first bad element fails the whole request.
func (v *Validator) PreviousQuestions(value any) ([]int, error) {
	list, ok := value.([]any)
	if !ok {
		return nil, domain.NewUnprocessableError(domain.DescPreviousNotList)
	}
	ids := make([]int, 0, len(list))
	for _, element := range list {
		id, err := v.CoerceInt(element, domain.DescPreviousElement)
		if err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, nil
}

// isDigits reports whether s is non-empty and all decimal digits.
func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, char := range s {
		if char < '0' || char > '9' {
			return false
		}
	}
	return true
}
