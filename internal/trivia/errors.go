package trivia

import (
	"errors"
	"fmt"
)

// Failure taxonomy surfaced to the routing layer. Each mode stays distinct
// so the handler can pick a wire status without inspecting messages.
var (
	// ErrNotFound reports a deletion target that does not exist.
	ErrNotFound = errors.New("question not found")

	// ErrPageOutOfRange reports a pagination window starting at or beyond
	// the total count. An out-of-range page is an error, not an empty page.
	ErrPageOutOfRange = errors.New("page out of range")

	// ErrInvalidQuizRequest reports a quiz request missing the exclusion
	// set or the category field entirely.
	ErrInvalidQuizRequest = errors.New("quiz request missing required fields")
)

// ValidationError reports an empty or absent creation field.
type ValidationError struct {
	Field string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("question %s must not be empty", e.Field)
}

// DanglingCategoryError reports a question whose category reference does
// not resolve. This is a data-integrity fault and maps to a server error.
type DanglingCategoryError struct {
	QuestionID int
	CategoryID int
}

func (e *DanglingCategoryError) Error() string {
	return fmt.Sprintf("question %d references unknown category %d", e.QuestionID, e.CategoryID)
}
