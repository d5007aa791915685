package checkout

import "errors"

// Stage names which step of the submission sequence a failure belongs to.
// Validation failures happen before any network call; create failures mean
// no order exists; proof-upload failures mean the order does exist.
type Stage string

const (
	StageValidate    Stage = "validate"
	StageCreate      Stage = "create"
	StageProofUpload Stage = "proof-upload"
)

type Reason string

const (
	ReasonMissingCustomerName  Reason = "missing-customer-name"
	ReasonEmptyCart            Reason = "empty-cart"
	ReasonMissingRequiredProof Reason = "missing-required-proof"
	ReasonRejected             Reason = "rejected"
	ReasonMalformedResponse    Reason = "malformed-response"
	ReasonUploadFailed         Reason = "upload-failed"
)

// Error is a terminal submission failure. Message is ready for display;
// Err carries the underlying transport error, if any.
type Error struct {
	Stage   Stage
	Reason  Reason
	Message string
	Err     error
}

func (e *Error) Error() string {
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

// OrderCreated reports whether the failure left a live order behind on the
// backend. Callers use this to offer an upload-only retry instead of a full
// resubmit, which would duplicate the order.
func (e *Error) OrderCreated() bool {
	return e.Stage == StageProofUpload
}

var ErrSubmissionInFlight = errors.New("a submission is already in progress")
