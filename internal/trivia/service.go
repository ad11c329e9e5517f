package trivia

import (
	"context"
	"math/rand"
	"time"
)

// QuestionStore is the persistence contract for question records. ListAll
// and the filters must return a stable ascending-id order across repeated
// calls; the pagination windows depend on it.
type QuestionStore interface {
	ListAll(ctx context.Context) ([]Question, error)
	FilterByCategory(ctx context.Context, categoryID int) ([]Question, error)
	Search(ctx context.Context, term string) ([]Question, error)
	Create(ctx context.Context, input NewQuestion) (Question, error)
	Delete(ctx context.Context, id int) error
}

// CategoryStore is the read-only lookup of category id to label, ordered
// by ascending id.
type CategoryStore interface {
	ListCategories(ctx context.Context) ([]Category, error)
}

// CategoryCache fronts the category list (implemented by the Redis-backed
// Cache). Get returns (nil, nil) on a miss.
type CategoryCache interface {
	Get(ctx context.Context) ([]Category, error)
	Set(ctx context.Context, categories []Category) error
}

// Service owns the in-request computation over the stores: pagination,
// search and filter views, creation and deletion, and quiz draws. It holds
// no cross-request state; quiz round state is caller-supplied.
type Service struct {
	questions  QuestionStore
	categories CategoryStore
	cache      CategoryCache
	rng        RandFunc
}

type ServiceOptions struct {
	Cache CategoryCache
	Rand  RandFunc
}

func NewService(questions QuestionStore, categories CategoryStore, opts ServiceOptions) *Service {
	rng := opts.Rand
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano())).Intn
	}
	return &Service{
		questions:  questions,
		categories: categories,
		cache:      opts.Cache,
		rng:        rng,
	}
}

// ListCategories returns all categories in ascending-id order, serving from
// the cache when possible. Cache failures fall through to the store.
func (s *Service) ListCategories(ctx context.Context) ([]Category, error) {
	if s.cache != nil {
		if cached, err := s.cache.Get(ctx); err == nil && cached != nil {
			return cached, nil
		}
	}
	categories, err := s.categories.ListCategories(ctx)
	if err != nil {
		return nil, err
	}
	if s.cache != nil {
		_ = s.cache.Set(ctx, categories)
	}
	return categories, nil
}

// ListPage returns the 1-indexed page window over the full question set,
// each question joined with its category label and the collection-wide
// total, plus the category list.
func (s *Service) ListPage(ctx context.Context, page int) (PageView, error) {
	categories, err := s.ListCategories(ctx)
	if err != nil {
		return PageView{}, err
	}
	all, err := s.questions.ListAll(ctx)
	if err != nil {
		return PageView{}, err
	}
	window, err := Paginate(all, page, QuestionsPerPage)
	if err != nil {
		return PageView{}, err
	}
	views, err := assembleViews(window, labelIndex(categories), len(all))
	if err != nil {
		return PageView{}, err
	}
	return PageView{Categories: categories, Questions: views}, nil
}

// Search returns views for every question whose text contains term,
// case-insensitively. An empty term matches nothing. The total on each view
// is the size of the match set, not the whole collection.
func (s *Service) Search(ctx context.Context, term string) ([]QuestionView, error) {
	if term == "" {
		return nil, nil
	}
	matches, err := s.questions.Search(ctx, term)
	if err != nil {
		return nil, err
	}
	return s.assemble(ctx, matches)
}

// FilterByCategory returns views for every question in the given category.
// Zero matches is a valid result; the caller decides its wire semantics.
func (s *Service) FilterByCategory(ctx context.Context, categoryID int) ([]QuestionView, error) {
	matches, err := s.questions.FilterByCategory(ctx, categoryID)
	if err != nil {
		return nil, err
	}
	return s.assemble(ctx, matches)
}

// Create validates that all four fields are present and persists the
// question. Nothing is written when validation fails.
func (s *Service) Create(ctx context.Context, input NewQuestion) (Question, error) {
	switch {
	case input.Text == "":
		return Question{}, &ValidationError{Field: "question"}
	case input.Answer == "":
		return Question{}, &ValidationError{Field: "answer"}
	case input.Difficulty <= 0:
		return Question{}, &ValidationError{Field: "difficulty"}
	case input.CategoryID <= 0:
		return Question{}, &ValidationError{Field: "category"}
	}
	return s.questions.Create(ctx, input)
}

// Delete removes a question by id, reporting ErrNotFound when it does not
// exist.
func (s *Service) Delete(ctx context.Context, id int) error {
	return s.questions.Delete(ctx, id)
}

// PlayQuiz draws one unseen question uniformly at random from the requested
// category (or all categories for the AnyCategory sentinel), excluding the
// caller's previously seen ids. An empty remaining pool yields the
// Exhausted result, which ends the round; a request missing either field is
// ErrInvalidQuizRequest.
func (s *Service) PlayQuiz(ctx context.Context, req QuizRequest) (QuizResult, error) {
	if req.PreviousQuestions == nil || req.QuizCategory == nil {
		return QuizResult{}, ErrInvalidQuizRequest
	}

	var (
		pool []Question
		err  error
	)
	if req.QuizCategory.Int() == AnyCategory {
		pool, err = s.questions.ListAll(ctx)
	} else {
		pool, err = s.questions.FilterByCategory(ctx, req.QuizCategory.Int())
	}
	if err != nil {
		return QuizResult{}, err
	}

	q, ok := selectUnseen(pool, *req.PreviousQuestions, s.rng)
	if !ok {
		return QuizResult{Exhausted: true}, nil
	}
	return QuizResult{ID: q.ID, Text: q.Text, Answer: q.Answer}, nil
}

func (s *Service) assemble(ctx context.Context, questions []Question) ([]QuestionView, error) {
	if len(questions) == 0 {
		return nil, nil
	}
	categories, err := s.ListCategories(ctx)
	if err != nil {
		return nil, err
	}
	return assembleViews(questions, labelIndex(categories), len(questions))
}

func labelIndex(categories []Category) map[int]string {
	labels := make(map[int]string, len(categories))
	for _, c := range categories {
		labels[c.ID] = c.Label
	}
	return labels
}
