package pos

import (
	"context"
	"net/url"

	"github.com/Thomasrnd/tcg-pos-frontend/internal/domain"
)

// CategoryInput is the create/update body for product categories.
type CategoryInput struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}

func (c *Client) ListCategories(ctx context.Context) ([]domain.Category, error) {
	var categories []domain.Category
	if err := c.get(ctx, "/categories", nil, &categories); err != nil {
		return nil, err
	}
	return categories, nil
}

func (c *Client) GetCategory(ctx context.Context, categoryID string) (*domain.Category, error) {
	var category domain.Category
	if err := c.get(ctx, "/categories/"+url.PathEscape(categoryID), nil, &category); err != nil {
		return nil, err
	}
	return &category, nil
}

func (c *Client) CreateCategory(ctx context.Context, input CategoryInput) (*domain.Category, error) {
	var category domain.Category
	if err := c.postJSON(ctx, "/categories", input, &category); err != nil {
		return nil, err
	}
	return &category, nil
}

func (c *Client) UpdateCategory(ctx context.Context, categoryID string, input CategoryInput) (*domain.Category, error) {
	var category domain.Category
	if err := c.putJSON(ctx, "/categories/"+url.PathEscape(categoryID), input, &category); err != nil {
		return nil, err
	}
	return &category, nil
}

func (c *Client) DeleteCategory(ctx context.Context, categoryID string) error {
	return c.delete(ctx, "/categories/"+url.PathEscape(categoryID))
}
