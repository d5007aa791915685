package server

import (
	"context"
	"errors"
	"io"
	"log"
	"net/http"
	"time"

	"github.com/Thomasrnd/tcg-pos-frontend/internal/cart"
	"github.com/Thomasrnd/tcg-pos-frontend/internal/catalog"
	"github.com/Thomasrnd/tcg-pos-frontend/internal/checkout"
	"github.com/Thomasrnd/tcg-pos-frontend/internal/domain"
	"github.com/Thomasrnd/tcg-pos-frontend/internal/events"
	"github.com/Thomasrnd/tcg-pos-frontend/internal/format"
)

// submitter lets tests swap the orchestrator.
type submitter interface {
	Submit(ctx context.Context, req checkout.SubmitRequest) (*checkout.Result, error)
}

type CheckoutHandler struct {
	cart          *cart.Store
	catalog       *catalog.Catalog
	orchestrator  submitter
	events        *events.Publisher
	timeout       time.Duration
	maxUploadSize int64
}

func NewCheckoutHandler(store *cart.Store, cat *catalog.Catalog, orch submitter, pub *events.Publisher, timeout time.Duration, maxUploadSize int64) *CheckoutHandler {
	return &CheckoutHandler{
		cart:          store,
		catalog:       cat,
		orchestrator:  orch,
		events:        pub,
		timeout:       timeout,
		maxUploadSize: maxUploadSize,
	}
}

type CheckoutResponseDTO struct {
	OrderID      string  `json:"order_id"`
	Total        float64 `json:"total"`
	TotalDisplay string  `json:"total_display"`
	Message      string  `json:"message"`
}

func (h *CheckoutHandler) PaymentMethods(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	methods, err := h.catalog.Methods(ctx)
	if err != nil {
		respondError(w, http.StatusBadGateway, "backend_unavailable", "failed to load payment methods")
		return
	}
	respondJSON(w, http.StatusOK, map[string][]domain.PaymentMethod{"methods": methods})
}

// Submit drives the full checkout sequence. The kiosk UI posts a multipart
// form: a payment_method field plus an optional paymentProof file. The cart
// is cleared only after the orchestrator confirms the order.
func (h *CheckoutHandler) Submit(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	if err := r.ParseMultipartForm(h.maxUploadSize); err != nil {
		respondError(w, http.StatusBadRequest, "invalid_request", "invalid multipart body")
		return
	}

	methodID := r.FormValue("payment_method")
	if methodID == "" {
		respondError(w, http.StatusBadRequest, "missing_payment_method", "payment_method is required")
		return
	}
	method, err := h.catalog.Find(ctx, methodID)
	if err != nil {
		if errors.Is(err, catalog.ErrUnknownMethod) {
			respondError(w, http.StatusBadRequest, "unknown_payment_method", "payment method is not available")
			return
		}
		respondError(w, http.StatusBadGateway, "backend_unavailable", "failed to load payment methods")
		return
	}

	proof, err := h.readProof(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid_proof", "failed to read payment proof upload")
		return
	}

	items := h.cart.Items()
	total := h.cart.Total()
	customer := h.cart.CustomerName()
	result, err := h.orchestrator.Submit(ctx, checkout.SubmitRequest{
		CustomerName: customer,
		Method:       method,
		Items:        items,
		Proof:        proof,
	})
	if err != nil {
		h.respondCheckoutError(w, r, err)
		return
	}

	// Success: the cart is cleared here, not by the orchestrator.
	h.cart.Clear(ctx)

	if errPub := h.events.OrderCompleted(ctx, result.OrderID, customer, items, total); errPub != nil {
		// The order stands either way; the fulfillment display just misses
		// the push.
		log.Printf("request %s: publish order.completed failed: %v", getRequestID(r.Context()), errPub)
	}

	respondJSON(w, http.StatusCreated, CheckoutResponseDTO{
		OrderID:      result.OrderID,
		Total:        total,
		TotalDisplay: format.IDR(total),
		Message:      "Order completed! Please collect your items at the cashier.",
	})
}

func (h *CheckoutHandler) readProof(r *http.Request) (*checkout.ProofFile, error) {
	file, header, err := r.FormFile("paymentProof")
	if errors.Is(err, http.ErrMissingFile) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	defer file.Close()

	content, err := io.ReadAll(io.LimitReader(file, h.maxUploadSize))
	if err != nil {
		return nil, err
	}
	return &checkout.ProofFile{Filename: header.Filename, Content: content}, nil
}

func (h *CheckoutHandler) respondCheckoutError(w http.ResponseWriter, r *http.Request, err error) {
	if errors.Is(err, checkout.ErrSubmissionInFlight) {
		respondError(w, http.StatusConflict, "submission_in_flight", "a submission is already in progress")
		return
	}

	var cErr *checkout.Error
	if !errors.As(err, &cErr) {
		respondError(w, http.StatusInternalServerError, "internal_error", "internal server error")
		return
	}

	log.Printf("request %s: checkout failed at stage=%s reason=%s: %v",
		getRequestID(r.Context()), cErr.Stage, cErr.Reason, err)

	switch cErr.Stage {
	case checkout.StageValidate:
		respondError(w, http.StatusBadRequest, string(cErr.Reason), cErr.Message)
	case checkout.StageCreate:
		respondError(w, http.StatusBadGateway, string(cErr.Reason), cErr.Message)
	case checkout.StageProofUpload:
		// The order exists server-side; the message warns against a
		// duplicate resubmission.
		respondError(w, http.StatusBadGateway, string(cErr.Reason), cErr.Message)
	default:
		respondError(w, http.StatusInternalServerError, "internal_error", cErr.Message)
	}
}
