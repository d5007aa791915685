package pos

import (
	"context"
	"fmt"
	"net/url"

	"github.com/Thomasrnd/tcg-pos-frontend/internal/domain"
)

// CreateOrder submits a new order. Only data.id is consumed by the checkout
// flow; the rest of the order is returned for completeness.
func (c *Client) CreateOrder(ctx context.Context, sub domain.OrderSubmission) (*domain.Order, error) {
	var order domain.Order
	if err := c.postJSON(ctx, "/orders", sub, &order); err != nil {
		return nil, err
	}
	return &order, nil
}

// UploadPaymentProof attaches a proof-of-payment image to an existing order.
// The backend expects a single multipart file under the paymentProof field.
func (c *Client) UploadPaymentProof(ctx context.Context, orderID, filename string, content []byte) error {
	path := fmt.Sprintf("/orders/%s/payment-proof", url.PathEscape(orderID))
	return c.sendMultipart(ctx, "POST", path, nil, "paymentProof", filename, content, nil)
}

func (c *Client) GetOrder(ctx context.Context, orderID string) (*domain.Order, error) {
	var order domain.Order
	if err := c.get(ctx, "/orders/"+url.PathEscape(orderID), nil, &order); err != nil {
		return nil, err
	}
	return &order, nil
}

// ListOrdersParams filter the admin order list. Zero values are omitted.
type ListOrdersParams struct {
	Status string
	Date   string
}

func (p ListOrdersParams) values() url.Values {
	q := url.Values{}
	if p.Status != "" {
		q.Set("status", p.Status)
	}
	if p.Date != "" {
		q.Set("date", p.Date)
	}
	return q
}

// ListOrders returns all orders matching params. Admin only.
func (c *Client) ListOrders(ctx context.Context, params ListOrdersParams) ([]domain.Order, error) {
	var orders []domain.Order
	if err := c.get(ctx, "/orders", params.values(), &orders); err != nil {
		return nil, err
	}
	return orders, nil
}

// VerifyPayment marks the order's payment proof as verified. Admin only.
func (c *Client) VerifyPayment(ctx context.Context, orderID string) (*domain.Order, error) {
	var order domain.Order
	if err := c.post(ctx, "/orders/"+url.PathEscape(orderID)+"/verify", &order); err != nil {
		return nil, err
	}
	return &order, nil
}

// CompleteOrder marks the order as picked up. Admin only.
func (c *Client) CompleteOrder(ctx context.Context, orderID string) (*domain.Order, error) {
	var order domain.Order
	if err := c.post(ctx, "/orders/"+url.PathEscape(orderID)+"/complete", &order); err != nil {
		return nil, err
	}
	return &order, nil
}

// CancelOrder cancels the order and releases its stock. Admin only.
func (c *Client) CancelOrder(ctx context.Context, orderID string) (*domain.Order, error) {
	var order domain.Order
	if err := c.post(ctx, "/orders/"+url.PathEscape(orderID)+"/cancel", &order); err != nil {
		return nil, err
	}
	return &order, nil
}

// PendingOrdersCount feeds the admin notification badge.
func (c *Client) PendingOrdersCount(ctx context.Context) (int, error) {
	var payload struct {
		Count int `json:"count"`
	}
	if err := c.get(ctx, "/orders/notifications/pending-count", nil, &payload); err != nil {
		return 0, err
	}
	return payload.Count, nil
}

// PaymentMethods returns the methods currently enabled for checkout.
func (c *Client) PaymentMethods(ctx context.Context) ([]domain.PaymentMethod, error) {
	var payload struct {
		Methods []domain.PaymentMethod `json:"methods"`
	}
	if err := c.get(ctx, "/orders/payment-methods/available", nil, &payload); err != nil {
		return nil, err
	}
	return payload.Methods, nil
}
