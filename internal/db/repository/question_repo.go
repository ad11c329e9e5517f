package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/triviahub/trivia-api/internal/trivia"
)

// db is the subset of pgxpool.Pool the repositories use; narrowed so tests
// can substitute a stub connection.
type db interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
}

// QuestionRepository implements trivia.QuestionStore over Postgres. Every
// listing query orders by id so pagination sees a stable total order.
type QuestionRepository struct {
	db db
}

var _ trivia.QuestionStore = (*QuestionRepository)(nil)

func NewQuestionRepository(db db) *QuestionRepository {
	return &QuestionRepository{db: db}
}

const questionColumns = "id, question, answer, difficulty, category"

func (r *QuestionRepository) ListAll(ctx context.Context) ([]trivia.Question, error) {
	rows, err := r.db.Query(ctx,
		"SELECT "+questionColumns+" FROM questions ORDER BY id")
	if err != nil {
		return nil, fmt.Errorf("list questions: %w", err)
	}
	return scanQuestions(rows)
}

func (r *QuestionRepository) FilterByCategory(ctx context.Context, categoryID int) ([]trivia.Question, error) {
	rows, err := r.db.Query(ctx,
		"SELECT "+questionColumns+" FROM questions WHERE category = $1 ORDER BY id", categoryID)
	if err != nil {
		return nil, fmt.Errorf("filter questions by category: %w", err)
	}
	return scanQuestions(rows)
}

func (r *QuestionRepository) Search(ctx context.Context, term string) ([]trivia.Question, error) {
	rows, err := r.db.Query(ctx,
		"SELECT "+questionColumns+" FROM questions WHERE question ILIKE '%' || $1 || '%' ORDER BY id", term)
	if err != nil {
		return nil, fmt.Errorf("search questions: %w", err)
	}
	return scanQuestions(rows)
}

func (r *QuestionRepository) Create(ctx context.Context, input trivia.NewQuestion) (trivia.Question, error) {
	q := trivia.Question{
		Text:       input.Text,
		Answer:     input.Answer,
		Difficulty: input.Difficulty,
		CategoryID: input.CategoryID,
	}
	err := r.db.QueryRow(ctx,
		"INSERT INTO questions (question, answer, difficulty, category) VALUES ($1, $2, $3, $4) RETURNING id",
		input.Text, input.Answer, input.Difficulty, input.CategoryID,
	).Scan(&q.ID)
	if err != nil {
		return trivia.Question{}, fmt.Errorf("insert question: %w", err)
	}
	return q, nil
}

func (r *QuestionRepository) Delete(ctx context.Context, id int) error {
	tag, err := r.db.Exec(ctx, "DELETE FROM questions WHERE id = $1", id)
	if err != nil {
		return fmt.Errorf("delete question: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return trivia.ErrNotFound
	}
	return nil
}

func scanQuestions(rows pgx.Rows) ([]trivia.Question, error) {
	defer rows.Close()
	var questions []trivia.Question
	for rows.Next() {
		var q trivia.Question
		if err := rows.Scan(&q.ID, &q.Text, &q.Answer, &q.Difficulty, &q.CategoryID); err != nil {
			return nil, fmt.Errorf("scan question: %w", err)
		}
		questions = append(questions, q)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate questions: %w", err)
	}
	return questions, nil
}
