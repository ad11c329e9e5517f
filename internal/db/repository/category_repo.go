package repository

import (
	"context"
	"fmt"

	"github.com/triviahub/trivia-api/internal/trivia"
)

// CategoryRepository implements trivia.CategoryStore over Postgres.
// Categories are seeded by migration and never written by the API.
type CategoryRepository struct {
	db db
}

var _ trivia.CategoryStore = (*CategoryRepository)(nil)

func NewCategoryRepository(db db) *CategoryRepository {
	return &CategoryRepository{db: db}
}

func (r *CategoryRepository) ListCategories(ctx context.Context) ([]trivia.Category, error) {
	rows, err := r.db.Query(ctx, "SELECT id, type FROM categories ORDER BY id")
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	defer rows.Close()

	var categories []trivia.Category
	for rows.Next() {
		var c trivia.Category
		if err := rows.Scan(&c.ID, &c.Label); err != nil {
			return nil, fmt.Errorf("scan category: %w", err)
		}
		categories = append(categories, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate categories: %w", err)
	}
	return categories, nil
}
