package trivia

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func newTestMux(store *memQuestionStore) *http.ServeMux {
	svc := newTestService(store, defaultCategories(), nil)
	handlers := NewHTTPHandlers(svc, zerolog.Nop())

	mux := http.NewServeMux()
	mux.HandleFunc("GET /categories", handlers.ListCategories)
	mux.HandleFunc("GET /categories/{id}/questions", handlers.QuestionsByCategory)
	mux.HandleFunc("GET /questions/{page}", handlers.ListPage)
	mux.HandleFunc("DELETE /questions/{id}", handlers.DeleteQuestion)
	mux.HandleFunc("POST /questions/create", handlers.CreateQuestion)
	mux.HandleFunc("POST /questions", handlers.SearchQuestions)
	mux.HandleFunc("POST /quizzes", handlers.PlayQuiz)
	return mux
}

func doRequest(t *testing.T, mux *http.ServeMux, method, path, body string) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)

	var payload map[string]any
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &payload))
	return rec, payload
}

func quizStore() *memQuestionStore {
	return newMemQuestionStore(
		Question{ID: 1, Text: "How many faces does a cube have?", Answer: "Six", Difficulty: 1, CategoryID: 6},
		Question{ID: 2, Text: "Who discovered penicillin?", Answer: "Alexander Fleming", Difficulty: 3, CategoryID: 6},
		Question{ID: 3, Text: "What is the largest lake in Africa?", Answer: "Lake Victoria", Difficulty: 2, CategoryID: 6},
		Question{ID: 4, Text: "Who invented Peanut Butter?", Answer: "George Washington Carver", Difficulty: 2, CategoryID: 6},
	)
}

func TestHTTPListCategories(t *testing.T) {
	rec, payload := doRequest(t, newTestMux(quizStore()), http.MethodGet, "/categories", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, true, payload["success"])
	assert.Len(t, payload["categories"], 3)
}

func TestHTTPListPage(t *testing.T) {
	rec, payload := doRequest(t, newTestMux(quizStore()), http.MethodGet, "/questions/1", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, true, payload["success"])
	questions := payload["questions"].([]any)
	assert.Len(t, questions, 4)

	first := questions[0].(map[string]any)
	assert.Equal(t, "Sports", first["current_category"])
	assert.Equal(t, float64(4), first["total_questions"])
}

func TestHTTPListPageBeyondRange(t *testing.T) {
	rec, payload := doRequest(t, newTestMux(quizStore()), http.MethodGet, "/questions/1000", "")

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, false, payload["success"])
	assert.Equal(t, float64(404), payload["error"])
	assert.Equal(t, "page not found", payload["message"])
}

func TestHTTPDeleteQuestion(t *testing.T) {
	mux := newTestMux(quizStore())

	rec, payload := doRequest(t, mux, http.MethodDelete, "/questions/2", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, true, payload["success"])
	assert.Equal(t, float64(2), payload["deleted"])

	rec, payload = doRequest(t, mux, http.MethodDelete, "/questions/2", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, false, payload["success"])
}

func TestHTTPCreateQuestion(t *testing.T) {
	store := quizStore()
	mux := newTestMux(store)

	// Category arrives as a string; the stock front end sends it that way.
	body := `{"question":"How many planets orbit the sun?","answer":"Eight","difficulty":2,"category":"1"}`
	rec, payload := doRequest(t, mux, http.MethodPost, "/questions/create", body)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, true, payload["success"])
	assert.Equal(t, "question added successfully", payload["created"])

	all, _ := store.ListAll(t.Context())
	assert.Len(t, all, 5)
}

func TestHTTPCreateQuestionEmptyFieldIs422(t *testing.T) {
	store := quizStore()
	mux := newTestMux(store)

	body := `{"question":"How many planets orbit the sun?","answer":"","difficulty":2,"category":"1"}`
	rec, payload := doRequest(t, mux, http.MethodPost, "/questions/create", body)

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Equal(t, false, payload["success"])
	assert.Equal(t, float64(422), payload["error"])
	assert.Equal(t, "Unprocessable Entity", payload["message"])

	all, _ := store.ListAll(t.Context())
	assert.Len(t, all, 4, "failed creation must leave the store unchanged")
}

func TestHTTPCreateQuestionMalformedBodyIs422(t *testing.T) {
	rec, payload := doRequest(t, newTestMux(quizStore()), http.MethodPost, "/questions/create", `{`)

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Equal(t, false, payload["success"])
}

func TestHTTPSearchQuestions(t *testing.T) {
	rec, payload := doRequest(t, newTestMux(quizStore()), http.MethodPost, "/questions", `{"searchTerm":"how many"}`)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, true, payload["success"])
	assert.Len(t, payload["questions"], 1)
}

func TestHTTPSearchNoMatchesIs404(t *testing.T) {
	rec, payload := doRequest(t, newTestMux(quizStore()), http.MethodPost, "/questions", `{"searchTerm":"asafdgfgv"}`)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, false, payload["success"])
	assert.Equal(t, "page not found", payload["message"])
}

func TestHTTPSearchMissingTermIs400(t *testing.T) {
	rec, payload := doRequest(t, newTestMux(quizStore()), http.MethodPost, "/questions", `{}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, false, payload["success"])
}

func TestHTTPQuestionsByCategory(t *testing.T) {
	rec, payload := doRequest(t, newTestMux(quizStore()), http.MethodGet, "/categories/6/questions", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, true, payload["success"])
	questions := payload["questions"].([]any)
	assert.Len(t, questions, 4)
	first := questions[0].(map[string]any)
	assert.Equal(t, float64(4), first["total_questions"])
}

func TestHTTPQuestionsByCategoryNoMatchesIs400(t *testing.T) {
	rec, payload := doRequest(t, newTestMux(quizStore()), http.MethodGet, "/categories/100/questions", "")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, false, payload["success"])
	assert.Equal(t, "cannot process this request", payload["message"])
}

func TestHTTPPlayQuiz(t *testing.T) {
	body := `{"previous_questions":[1,2,3],"quiz_category":"6"}`
	rec, payload := doRequest(t, newTestMux(quizStore()), http.MethodPost, "/quizzes", body)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, true, payload["success"])
	assert.Equal(t, float64(4), payload["id"])
	assert.NotEmpty(t, payload["question"])
	assert.NotEmpty(t, payload["answer"])
}

func TestHTTPPlayQuizExhausted(t *testing.T) {
	body := `{"previous_questions":[1,2,3,4],"quiz_category":"6"}`
	rec, payload := doRequest(t, newTestMux(quizStore()), http.MethodPost, "/quizzes", body)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, false, payload["success"])
	assert.Equal(t, float64(0), payload["id"])
	assert.Equal(t, "", payload["question"])
	assert.Equal(t, "", payload["answer"])
}

func TestHTTPPlayQuizMissingFieldsIs400(t *testing.T) {
	rec, payload := doRequest(t, newTestMux(quizStore()), http.MethodPost, "/quizzes", `{}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, false, payload["success"])
	assert.Equal(t, "cannot process this request", payload["message"])
}

func TestHTTPPlayQuizMalformedBodyIs400(t *testing.T) {
	rec, payload := doRequest(t, newTestMux(quizStore()), http.MethodPost, "/quizzes", `not json`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, false, payload["success"])
}
