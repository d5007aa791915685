package pos

import (
	"context"
	"net/url"
)

// PaymentSetting is the admin-side configuration of one payment method.
// The customer-facing PaymentMethods call only exposes the enabled subset.
type PaymentSetting struct {
	ID            string `json:"id"`
	Method        string `json:"method"`
	Name          string `json:"name"`
	Enabled       bool   `json:"enabled"`
	RequiresProof bool   `json:"requiresProof"`
	AccountName   string `json:"accountName,omitempty"`
	AccountNumber string `json:"accountNumber,omitempty"`
	BankName      string `json:"bankName,omitempty"`
	QRImageURL    string `json:"qrImageUrl,omitempty"`
}

// PaymentSettingUpdate carries the editable fields. Pointers distinguish
// "leave unchanged" from explicit zero values.
type PaymentSettingUpdate struct {
	Name          *string `json:"name,omitempty"`
	Enabled       *bool   `json:"enabled,omitempty"`
	AccountName   *string `json:"accountName,omitempty"`
	AccountNumber *string `json:"accountNumber,omitempty"`
	BankName      *string `json:"bankName,omitempty"`
}

func (c *Client) ListPaymentSettings(ctx context.Context) ([]PaymentSetting, error) {
	var settings []PaymentSetting
	if err := c.get(ctx, "/payment-settings", nil, &settings); err != nil {
		return nil, err
	}
	return settings, nil
}

func (c *Client) UpdatePaymentSetting(ctx context.Context, settingID string, update PaymentSettingUpdate) (*PaymentSetting, error) {
	var setting PaymentSetting
	if err := c.putJSON(ctx, "/payment-settings/"+url.PathEscape(settingID), update, &setting); err != nil {
		return nil, err
	}
	return &setting, nil
}

// PaymentMethodDetail fetches one method's settings by its method key
// (e.g. BANK_TRANSFER), used by the checkout view to show transfer
// instructions.
func (c *Client) PaymentMethodDetail(ctx context.Context, method string) (*PaymentSetting, error) {
	var setting PaymentSetting
	if err := c.get(ctx, "/payment-settings/method/"+url.PathEscape(method), nil, &setting); err != nil {
		return nil, err
	}
	return &setting, nil
}
