package domain

// PaymentMethod is a backend-declared payment option. RequiresProof gates
// whether a proof-of-payment image must be uploaded before the order is
// accepted. New methods arrive as data, not code.
type PaymentMethod struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	RequiresProof bool   `json:"requiresProof"`
}
