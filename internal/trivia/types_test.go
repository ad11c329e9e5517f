package trivia

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFlexIntDecodesNumbersAndStrings(t *testing.T) {
	var req QuizRequest

	err := json.Unmarshal([]byte(`{"previous_questions":[1,2],"quiz_category":"6"}`), &req)
	assert.NoError(t, err)
	assert.Equal(t, 6, req.QuizCategory.Int())

	err = json.Unmarshal([]byte(`{"previous_questions":[],"quiz_category":6}`), &req)
	assert.NoError(t, err)
	assert.Equal(t, 6, req.QuizCategory.Int())
}

func TestFlexIntEmptyAndNullAreZero(t *testing.T) {
	var f FlexInt

	assert.NoError(t, json.Unmarshal([]byte(`""`), &f))
	assert.Equal(t, 0, f.Int())

	assert.NoError(t, json.Unmarshal([]byte(`null`), &f))
	assert.Equal(t, 0, f.Int())
}

func TestFlexIntRejectsNonNumericStrings(t *testing.T) {
	var f FlexInt

	assert.Error(t, json.Unmarshal([]byte(`"six"`), &f))
}

func TestQuizRequestMissingFieldsStayNil(t *testing.T) {
	var req QuizRequest

	assert.NoError(t, json.Unmarshal([]byte(`{}`), &req))
	assert.Nil(t, req.PreviousQuestions)
	assert.Nil(t, req.QuizCategory)
}
