package pos

import (
	"context"
	"net/url"
)

// SalesSummary aggregates completed orders over a period.
type SalesSummary struct {
	TotalSales  float64 `json:"totalSales"`
	OrderCount  int     `json:"orderCount"`
	ItemsSold   int     `json:"itemsSold"`
	PeriodStart string  `json:"periodStart,omitempty"`
	PeriodEnd   string  `json:"periodEnd,omitempty"`
}

// ProductSales is one row of the per-product sales report.
type ProductSales struct {
	ProductID    string  `json:"productId"`
	ProductName  string  `json:"productName"`
	QuantitySold int     `json:"quantitySold"`
	Revenue      float64 `json:"revenue"`
}

// ReportParams bound a report query. Dates are YYYY-MM-DD as the backend
// expects them; zero values are omitted.
type ReportParams struct {
	StartDate string
	EndDate   string
}

func (p ReportParams) values() url.Values {
	q := url.Values{}
	if p.StartDate != "" {
		q.Set("startDate", p.StartDate)
	}
	if p.EndDate != "" {
		q.Set("endDate", p.EndDate)
	}
	return q
}

// SalesSummary returns the aggregate summary for the admin dashboard.
func (c *Client) SalesSummary(ctx context.Context, params ReportParams) (*SalesSummary, error) {
	var summary SalesSummary
	if err := c.get(ctx, "/orders/analytics/sales-summary", params.values(), &summary); err != nil {
		return nil, err
	}
	return &summary, nil
}

// ProductSalesReport returns per-product sales rows.
func (c *Client) ProductSalesReport(ctx context.Context, params ReportParams) ([]ProductSales, error) {
	var rows []ProductSales
	if err := c.get(ctx, "/orders/analytics/product-sales", params.values(), &rows); err != nil {
		return nil, err
	}
	return rows, nil
}

// DailySalesReport returns the summary for a single day.
func (c *Client) DailySalesReport(ctx context.Context, date string) (*SalesSummary, error) {
	q := url.Values{}
	q.Set("date", date)
	var summary SalesSummary
	if err := c.get(ctx, "/orders/analytics/daily-sales", q, &summary); err != nil {
		return nil, err
	}
	return &summary, nil
}

// DateRangeSalesSummary returns the summary over an inclusive date range.
func (c *Client) DateRangeSalesSummary(ctx context.Context, params ReportParams) (*SalesSummary, error) {
	var summary SalesSummary
	if err := c.get(ctx, "/orders/analytics/date-range", params.values(), &summary); err != nil {
		return nil, err
	}
	return &summary, nil
}
