// Package checkout sequences the calls that turn a populated cart into a
// confirmed order: create the order, then upload the payment proof when the
// chosen method demands one. Partial failure (order created, upload failed)
// is a first-class outcome, distinct from total failure.
package checkout

import (
	"context"
	"log"
	"sync/atomic"

	"github.com/Thomasrnd/tcg-pos-frontend/internal/domain"
	"github.com/Thomasrnd/tcg-pos-frontend/internal/pos"
)

// OrderAPI is the slice of the POS client the orchestrator needs.
type OrderAPI interface {
	CreateOrder(ctx context.Context, sub domain.OrderSubmission) (*domain.Order, error)
	UploadPaymentProof(ctx context.Context, orderID, filename string, content []byte) error
}

// ProofFile is an attached proof-of-payment image.
type ProofFile struct {
	Filename string
	Content  []byte
}

// SubmitRequest is one checkout attempt. Items are the cart lines at
// submission time; Proof may be nil when Method does not require one.
type SubmitRequest struct {
	CustomerName string
	Method       domain.PaymentMethod
	Items        []domain.CartItem
	Proof        *ProofFile
}

// Result is a confirmed submission. The caller clears the cart and
// navigates to the confirmation view keyed by OrderID.
type Result struct {
	OrderID string
}

type Orchestrator struct {
	api      OrderAPI
	inFlight atomic.Bool
}

func NewOrchestrator(api OrderAPI) *Orchestrator {
	return &Orchestrator{api: api}
}

// InFlight reports whether a submission is currently running. Callers use
// it to disable the submit action.
func (o *Orchestrator) InFlight() bool {
	return o.inFlight.Load()
}

// Submit runs one checkout attempt. It validates preconditions without side
// effects, creates the order, then uploads the proof when required — the two
// calls are strictly sequential since the upload targets the new order's ID.
// On failure the cart is untouched; the returned *Error says at which stage
// the attempt died. At most one submission runs at a time.
func (o *Orchestrator) Submit(ctx context.Context, req SubmitRequest) (*Result, error) {
	if !o.inFlight.CompareAndSwap(false, true) {
		return nil, ErrSubmissionInFlight
	}
	defer o.inFlight.Store(false)

	if err := validate(req); err != nil {
		return nil, err
	}

	sub := domain.OrderSubmission{
		CustomerName:  req.CustomerName,
		PaymentMethod: req.Method.ID,
		Items:         make([]domain.OrderSubmissionItem, len(req.Items)),
	}
	for i, item := range req.Items {
		sub.Items[i] = domain.OrderSubmissionItem{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
		}
	}

	order, err := o.api.CreateOrder(ctx, sub)
	if err != nil {
		return nil, &Error{
			Stage:   StageCreate,
			Reason:  ReasonRejected,
			Message: createFailureMessage(err),
			Err:     err,
		}
	}
	if order == nil || order.ID == "" {
		// A 2xx without an order ID is a backend contract violation, not a
		// normal rejection. Logged apart so it shows up in support triage.
		log.Printf("order create returned no order id, treating as failed")
		return nil, &Error{
			Stage:   StageCreate,
			Reason:  ReasonMalformedResponse,
			Message: "Order was created but no order ID was received. Please contact support.",
		}
	}

	if req.Method.RequiresProof {
		if err := o.api.UploadPaymentProof(ctx, order.ID, req.Proof.Filename, req.Proof.Content); err != nil {
			return nil, &Error{
				Stage:   StageProofUpload,
				Reason:  ReasonUploadFailed,
				Message: "Order created but failed to upload payment proof. Please contact support instead of submitting again.",
				Err:     err,
			}
		}
	}

	return &Result{OrderID: order.ID}, nil
}

// validate checks preconditions in a fixed order: customer name, then cart
// contents, then the proof requirement. Each failure is distinct and aborts
// before any network call.
func validate(req SubmitRequest) *Error {
	if req.CustomerName == "" {
		return &Error{
			Stage:   StageValidate,
			Reason:  ReasonMissingCustomerName,
			Message: "Customer name is required",
		}
	}
	if len(req.Items) == 0 {
		return &Error{
			Stage:   StageValidate,
			Reason:  ReasonEmptyCart,
			Message: "Your cart is empty",
		}
	}
	if req.Method.RequiresProof && (req.Proof == nil || len(req.Proof.Content) == 0) {
		return &Error{
			Stage:   StageValidate,
			Reason:  ReasonMissingRequiredProof,
			Message: "Please upload payment proof before placing your order",
		}
	}
	return nil
}

func createFailureMessage(err error) string {
	if msg := pos.BackendMessage(err); msg != "" {
		return msg
	}
	return "Failed to create order. Please try again."
}
