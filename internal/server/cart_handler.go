package server

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/Thomasrnd/tcg-pos-frontend/internal/cart"
	"github.com/Thomasrnd/tcg-pos-frontend/internal/domain"
	"github.com/Thomasrnd/tcg-pos-frontend/internal/format"
)

type CartHandler struct {
	cart    *cart.Store
	timeout time.Duration
}

func NewCartHandler(store *cart.Store, timeout time.Duration) *CartHandler {
	return &CartHandler{
		cart:    store,
		timeout: timeout,
	}
}

type AddItemRequestDTO struct {
	ProductID string  `json:"product_id"`
	Name      string  `json:"name"`
	Price     float64 `json:"price"`
	ImageURL  string  `json:"image_url,omitempty"`
	Quantity  int     `json:"quantity"`
}

type UpdateQuantityRequestDTO struct {
	Quantity int `json:"quantity"`
}

type SetCustomerRequestDTO struct {
	Name string `json:"name"`
}

type CartResponseDTO struct {
	CustomerName string            `json:"customer_name"`
	Items        []domain.CartItem `json:"items"`
	Total        float64           `json:"total"`
	TotalDisplay string            `json:"total_display"`
}

func (h *CartHandler) cartResponse() CartResponseDTO {
	total := h.cart.Total()
	return CartResponseDTO{
		CustomerName: h.cart.CustomerName(),
		Items:        h.cart.Items(),
		Total:        total,
		TotalDisplay: format.IDR(total),
	}
}

func (h *CartHandler) GetCart(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, h.cartResponse())
}

func (h *CartHandler) AddItem(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	var req AddItemRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid_request", "invalid JSON body")
		return
	}

	if req.ProductID == "" {
		respondError(w, http.StatusBadRequest, "invalid_product_id", "product_id is required")
		return
	}
	if req.Quantity < 1 || req.Quantity > 99 {
		respondError(w, http.StatusBadRequest, "invalid_quantity", "quantity must be between 1 and 99")
		return
	}
	if req.Price < 0 {
		respondError(w, http.StatusBadRequest, "invalid_price", "price must not be negative")
		return
	}

	h.cart.AddItem(ctx, domain.Product{
		ID:       req.ProductID,
		Name:     req.Name,
		Price:    req.Price,
		ImageURL: req.ImageURL,
	}, req.Quantity)

	respondJSON(w, http.StatusCreated, h.cartResponse())
}

func (h *CartHandler) UpdateQuantity(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	productID := chi.URLParam(r, "product_id")

	var req UpdateQuantityRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid_request", "invalid JSON body")
		return
	}
	if req.Quantity > 99 {
		respondError(w, http.StatusBadRequest, "invalid_quantity", "quantity must be at most 99")
		return
	}

	// Quantities below one are floored to one by the store; removal goes
	// through DELETE.
	h.cart.UpdateQuantity(ctx, productID, req.Quantity)
	respondJSON(w, http.StatusOK, h.cartResponse())
}

func (h *CartHandler) RemoveItem(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	h.cart.RemoveItem(ctx, chi.URLParam(r, "product_id"))
	respondJSON(w, http.StatusOK, h.cartResponse())
}

func (h *CartHandler) ClearCart(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	h.cart.Clear(ctx)
	respondJSON(w, http.StatusOK, h.cartResponse())
}

func (h *CartHandler) SetCustomer(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	var req SetCustomerRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid_request", "invalid JSON body")
		return
	}
	if req.Name == "" {
		respondError(w, http.StatusBadRequest, "invalid_name", "name is required")
		return
	}
	if len(req.Name) > 100 {
		respondError(w, http.StatusBadRequest, "invalid_name", "name must be at most 100 characters")
		return
	}

	h.cart.SetCustomerName(ctx, req.Name)
	respondJSON(w, http.StatusOK, h.cartResponse())
}
