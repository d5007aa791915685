package pos

import (
	"context"
	"net/url"
	"strconv"

	"github.com/Thomasrnd/tcg-pos-frontend/internal/domain"
)

// ListProductsParams filter the catalog. Zero values are omitted.
type ListProductsParams struct {
	CategoryID string
	Search     string
}

func (p ListProductsParams) values() url.Values {
	q := url.Values{}
	if p.CategoryID != "" {
		q.Set("categoryId", p.CategoryID)
	}
	if p.Search != "" {
		q.Set("search", p.Search)
	}
	return q
}

func (c *Client) ListProducts(ctx context.Context, params ListProductsParams) ([]domain.Product, error) {
	var products []domain.Product
	if err := c.get(ctx, "/products", params.values(), &products); err != nil {
		return nil, err
	}
	return products, nil
}

func (c *Client) GetProduct(ctx context.Context, productID string) (*domain.Product, error) {
	var product domain.Product
	if err := c.get(ctx, "/products/"+url.PathEscape(productID), nil, &product); err != nil {
		return nil, err
	}
	return &product, nil
}

// ProductUpload carries product fields plus an optional image for the
// multipart create/update calls. Image is sent under the productImage field.
type ProductUpload struct {
	Name        string
	Description string
	Price       float64
	Stock       int
	CategoryID  string
	ImageName   string
	Image       []byte
}

func (p ProductUpload) fields() map[string]string {
	fields := map[string]string{
		"name":  p.Name,
		"price": strconv.FormatFloat(p.Price, 'f', -1, 64),
		"stock": strconv.Itoa(p.Stock),
	}
	if p.Description != "" {
		fields["description"] = p.Description
	}
	if p.CategoryID != "" {
		fields["categoryId"] = p.CategoryID
	}
	return fields
}

func (p ProductUpload) fileField() string {
	if len(p.Image) == 0 {
		return ""
	}
	return "productImage"
}

// CreateProduct adds a catalog entry. Admin only.
func (c *Client) CreateProduct(ctx context.Context, upload ProductUpload) (*domain.Product, error) {
	var product domain.Product
	err := c.sendMultipart(ctx, "POST", "/products", upload.fields(), upload.fileField(), upload.ImageName, upload.Image, &product)
	if err != nil {
		return nil, err
	}
	return &product, nil
}

// UpdateProduct replaces a catalog entry's fields. Admin only.
func (c *Client) UpdateProduct(ctx context.Context, productID string, upload ProductUpload) (*domain.Product, error) {
	var product domain.Product
	path := "/products/" + url.PathEscape(productID)
	err := c.sendMultipart(ctx, "PUT", path, upload.fields(), upload.fileField(), upload.ImageName, upload.Image, &product)
	if err != nil {
		return nil, err
	}
	return &product, nil
}

// DeleteProduct removes a catalog entry. Admin only.
func (c *Client) DeleteProduct(ctx context.Context, productID string) error {
	return c.delete(ctx, "/products/"+url.PathEscape(productID))
}
