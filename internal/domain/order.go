package domain

import "time"

// OrderSubmissionItem mirrors the create-order wire format: only the product
// reference and quantity travel, pricing is resolved server-side.
type OrderSubmissionItem struct {
	ProductID string `json:"productId"`
	Quantity  int    `json:"quantity"`
}

// OrderSubmission is the POST /orders request body, built fresh from the
// cart at submission time.
type OrderSubmission struct {
	CustomerName  string                `json:"customerName"`
	PaymentMethod string                `json:"paymentMethod"`
	Items         []OrderSubmissionItem `json:"items"`
}

type OrderItem struct {
	ProductID   string  `json:"productId"`
	ProductName string  `json:"productName,omitempty"`
	Quantity    int     `json:"quantity"`
	Price       float64 `json:"price,omitempty"`
}

// Order is the backend's view of a created order. The checkout flow only
// consumes ID; the remaining fields serve the admin order screens.
type Order struct {
	ID              string      `json:"id"`
	CustomerName    string      `json:"customerName,omitempty"`
	PaymentMethod   string      `json:"paymentMethod,omitempty"`
	Status          string      `json:"status,omitempty"`
	TotalAmount     float64     `json:"totalAmount,omitempty"`
	Items           []OrderItem `json:"items,omitempty"`
	PaymentProofURL string      `json:"paymentProofUrl,omitempty"`
	CreatedAt       time.Time   `json:"createdAt,omitzero"`
}
