package trivia

import (
	"bytes"
	"strconv"
)

// QuestionsPerPage is the fixed pagination window size.
const QuestionsPerPage = 10

// AnyCategory is the quiz_category sentinel meaning "draw from all categories".
const AnyCategory = 0

// Question is a stored trivia question.
type Question struct {
	ID         int
	Text       string
	Answer     string
	Difficulty int
	CategoryID int
}

// Category is a read-only id/label pair.
type Category struct {
	ID    int    `json:"id"`
	Label string `json:"category"`
}

// NewQuestion carries the four required creation fields.
type NewQuestion struct {
	Text       string
	Answer     string
	Difficulty int
	CategoryID int
}

// QuestionView is the outward-facing record shape: a question joined with
// its category label and the total count of questions in the current scope.
type QuestionView struct {
	ID            int    `json:"id"`
	Text          string `json:"question"`
	Answer        string `json:"answer"`
	Difficulty    int    `json:"difficulty"`
	CategoryLabel string `json:"current_category"`
	TotalInScope  int    `json:"total_questions"`
}

// PageView is the response body for the paginated listing: the requested
// window of questions plus the full category list.
type PageView struct {
	Categories []Category     `json:"categories"`
	Questions  []QuestionView `json:"questions"`
}

// QuizRequest is the caller-supplied round state. Both fields are required;
// a missing field is a contract violation, not a game outcome.
type QuizRequest struct {
	PreviousQuestions *[]int   `json:"previous_questions"`
	QuizCategory      *FlexInt `json:"quiz_category"`
}

// QuizResult is one quiz draw. Exhausted marks the end-of-round state where
// every candidate question has already been seen.
type QuizResult struct {
	ID        int
	Text      string
	Answer    string
	Exhausted bool
}

// FlexInt decodes a JSON number or a numeric string. The stock front end
// sends category ids and difficulties both ways. An empty or null value
// decodes to zero, which the callers treat as absent.
type FlexInt int

func (f *FlexInt) UnmarshalJSON(data []byte) error {
	data = bytes.Trim(data, `"`)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*f = 0
		return nil
	}
	n, err := strconv.Atoi(string(data))
	if err != nil {
		return err
	}
	*f = FlexInt(n)
	return nil
}

func (f FlexInt) Int() int { return int(f) }
