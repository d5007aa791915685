package server

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/Thomasrnd/tcg-pos-frontend/internal/domain"
	"github.com/Thomasrnd/tcg-pos-frontend/internal/pos"
)

// catalogReader is the read-only slice of the POS client the browse screens
// need.
type catalogReader interface {
	ListProducts(ctx context.Context, params pos.ListProductsParams) ([]domain.Product, error)
	GetProduct(ctx context.Context, productID string) (*domain.Product, error)
	ListCategories(ctx context.Context) ([]domain.Category, error)
}

// CatalogHandler proxies product and category reads to the POS backend so
// the kiosk UI talks to one origin.
type CatalogHandler struct {
	pos     catalogReader
	timeout time.Duration
}

func NewCatalogHandler(reader catalogReader, timeout time.Duration) *CatalogHandler {
	return &CatalogHandler{
		pos:     reader,
		timeout: timeout,
	}
}

func (h *CatalogHandler) ListProducts(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	params := pos.ListProductsParams{
		CategoryID: r.URL.Query().Get("categoryId"),
		Search:     r.URL.Query().Get("search"),
	}
	products, err := h.pos.ListProducts(ctx, params)
	if err != nil {
		handlePOSError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, products)
}

func (h *CatalogHandler) GetProduct(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	product, err := h.pos.GetProduct(ctx, chi.URLParam(r, "product_id"))
	if err != nil {
		handlePOSError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, product)
}

func (h *CatalogHandler) ListCategories(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	categories, err := h.pos.ListCategories(ctx)
	if err != nil {
		handlePOSError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, categories)
}

// handlePOSError maps backend rejections onto the kiosk's responses.
func handlePOSError(w http.ResponseWriter, err error) {
	var apiErr *pos.APIError
	if !errors.As(err, &apiErr) {
		respondError(w, http.StatusBadGateway, "backend_unavailable", "POS backend unreachable")
		return
	}

	switch apiErr.StatusCode {
	case http.StatusNotFound:
		respondError(w, http.StatusNotFound, "not_found", "not found")
	case http.StatusBadRequest:
		respondError(w, http.StatusBadRequest, "invalid_request", apiErr.Message)
	default:
		respondError(w, http.StatusBadGateway, "backend_error", "POS backend error")
	}
}
