package trivia

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/rs/zerolog"

	"github.com/triviahub/trivia-api/pkg/http/respond"
)

// HTTPHandlers exposes the REST endpoints over the trivia service. The
// taxonomy-to-status mapping lives here; the service only returns named
// failures.
type HTTPHandlers struct {
	svc    *Service
	logger zerolog.Logger
}

func NewHTTPHandlers(svc *Service, logger zerolog.Logger) *HTTPHandlers {
	return &HTTPHandlers{
		svc:    svc,
		logger: logger.With().Str("component", "trivia_http").Logger(),
	}
}

// ListCategories handles GET /categories.
func (h *HTTPHandlers) ListCategories(w http.ResponseWriter, r *http.Request) {
	categories, err := h.svc.ListCategories(r.Context())
	if err != nil {
		h.logger.Error().Err(err).Msg("list categories failed")
		respond.Error(w, http.StatusInternalServerError)
		return
	}
	respond.JSON(w, http.StatusOK, map[string]any{
		"success":    true,
		"categories": categories,
	})
}

// ListPage handles GET /questions/{page}.
func (h *HTTPHandlers) ListPage(w http.ResponseWriter, r *http.Request) {
	page, err := strconv.Atoi(r.PathValue("page"))
	if err != nil {
		respond.Error(w, http.StatusNotFound)
		return
	}
	view, err := h.svc.ListPage(r.Context(), page)
	if err != nil {
		h.respondFailure(w, err, "list page failed")
		return
	}
	respond.JSON(w, http.StatusOK, map[string]any{
		"success":    true,
		"categories": view.Categories,
		"questions":  view.Questions,
	})
}

// DeleteQuestion handles DELETE /questions/{id}.
func (h *HTTPHandlers) DeleteQuestion(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(r.PathValue("id"))
	if err != nil {
		respond.Error(w, http.StatusNotFound)
		return
	}
	if err := h.svc.Delete(r.Context(), id); err != nil {
		h.respondFailure(w, err, "delete question failed")
		return
	}
	respond.JSON(w, http.StatusOK, map[string]any{
		"success": true,
		"deleted": id,
	})
}

type createRequest struct {
	Question   string  `json:"question"`
	Answer     string  `json:"answer"`
	Difficulty FlexInt `json:"difficulty"`
	Category   FlexInt `json:"category"`
}

// CreateQuestion handles POST /questions/create. Malformed bodies and
// missing fields both surface as 422.
func (h *HTTPHandlers) CreateQuestion(w http.ResponseWriter, r *http.Request) {
	var req createRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.Error(w, http.StatusUnprocessableEntity)
		return
	}
	_, err := h.svc.Create(r.Context(), NewQuestion{
		Text:       req.Question,
		Answer:     req.Answer,
		Difficulty: req.Difficulty.Int(),
		CategoryID: req.Category.Int(),
	})
	if err != nil {
		h.respondFailure(w, err, "create question failed")
		return
	}
	respond.JSON(w, http.StatusOK, map[string]any{
		"success": true,
		"created": "question added successfully",
	})
}

type searchRequest struct {
	SearchTerm *string `json:"searchTerm"`
}

// SearchQuestions handles POST /questions. Zero matches is a 404 on the
// wire even though the core treats it as a valid empty result.
func (h *HTTPHandlers) SearchQuestions(w http.ResponseWriter, r *http.Request) {
	var req searchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.SearchTerm == nil {
		respond.Error(w, http.StatusBadRequest)
		return
	}
	views, err := h.svc.Search(r.Context(), *req.SearchTerm)
	if err != nil {
		h.respondFailure(w, err, "search questions failed")
		return
	}
	if len(views) == 0 {
		respond.Error(w, http.StatusNotFound)
		return
	}
	respond.JSON(w, http.StatusOK, map[string]any{
		"success":   true,
		"questions": views,
	})
}

// QuestionsByCategory handles GET /categories/{id}/questions. Zero matches
// is a 400 on the wire, mirroring the original API's asymmetry with search.
func (h *HTTPHandlers) QuestionsByCategory(w http.ResponseWriter, r *http.Request) {
	categoryID, err := strconv.Atoi(r.PathValue("id"))
	if err != nil {
		respond.Error(w, http.StatusBadRequest)
		return
	}
	views, err := h.svc.FilterByCategory(r.Context(), categoryID)
	if err != nil {
		h.respondFailure(w, err, "filter by category failed")
		return
	}
	if len(views) == 0 {
		respond.Error(w, http.StatusBadRequest)
		return
	}
	respond.JSON(w, http.StatusOK, map[string]any{
		"success":   true,
		"questions": views,
	})
}

// PlayQuiz handles POST /quizzes. An exhausted pool is a 200 with
// success=false and zeroed fields; that is the end-of-round signal the
// front end watches for.
func (h *HTTPHandlers) PlayQuiz(w http.ResponseWriter, r *http.Request) {
	var req QuizRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.Error(w, http.StatusBadRequest)
		return
	}
	result, err := h.svc.PlayQuiz(r.Context(), req)
	if err != nil {
		h.respondFailure(w, err, "quiz draw failed")
		return
	}
	respond.JSON(w, http.StatusOK, map[string]any{
		"success":  !result.Exhausted,
		"id":       result.ID,
		"question": result.Text,
		"answer":   result.Answer,
	})
}

func (h *HTTPHandlers) respondFailure(w http.ResponseWriter, err error, logMsg string) {
	var (
		validationErr *ValidationError
		danglingErr   *DanglingCategoryError
	)
	switch {
	case errors.Is(err, ErrPageOutOfRange), errors.Is(err, ErrNotFound):
		respond.Error(w, http.StatusNotFound)
	case errors.Is(err, ErrInvalidQuizRequest):
		respond.Error(w, http.StatusBadRequest)
	case errors.As(err, &validationErr):
		respond.Error(w, http.StatusUnprocessableEntity)
	case errors.As(err, &danglingErr):
		h.logger.Error().Err(err).Msg("category reference does not resolve")
		respond.Error(w, http.StatusInternalServerError)
	default:
		h.logger.Error().Err(err).Msg(logMsg)
		respond.Error(w, http.StatusInternalServerError)
	}
}
