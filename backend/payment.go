package backend

import (
	"context"
	"net/http"
)

// KhaltiInitiateRequest asks the backend to open a payment with the wallet
// provider. Amount is in paisa (rupees x 100), the provider's minor unit.
type KhaltiInitiateRequest struct {
	ReturnURL         string `json:"return_url"`
	WebsiteURL        string `json:"website_url"`
	Amount            int64  `json:"amount"`
	PurchaseOrderID   string `json:"purchase_order_id"`
	PurchaseOrderName string `json:"purchase_order_name"`
}

type KhaltiInitiateResponse struct {
	PaymentURL string `json:"payment_url"`
	Pidx       string `json:"pidx"`
}

func (c *Client) InitiateKhaltiPayment(ctx context.Context, token string, req KhaltiInitiateRequest) (*KhaltiInitiateResponse, error) {
	var resp KhaltiInitiateResponse
	if err := c.do(ctx, http.MethodPost, "/payment/khalti/initiate", token, req, &resp); err != nil {
		return nil, err
	}
	if resp.PaymentURL == "" {
		return nil, &APIError{Status: http.StatusBadGateway, Message: "payment provider returned empty payment URL"}
	}
	return &resp, nil
}
