package backend

import (
	"context"
	"net/http"

	"github.com/DipakSrm/style-home-direct/models"
)

// OrderItemRequest carries product id and quantity only. Prices are never
// sent; the backend prices the order itself.
type OrderItemRequest struct {
	ProductID string `json:"productId"`
	Quantity  int    `json:"quantity"`
}

type CreateOrderRequest struct {
	Items           []OrderItemRequest     `json:"items"`
	TotalAmount     float64                `json:"totalAmount"`
	ShippingAddress models.ShippingAddress `json:"shippingAddress"`
	PaymentMethod   models.PaymentMethod   `json:"paymentMethod"`
}

type orderEnvelope struct {
	Data models.Order `json:"data"`
}

func (c *Client) CreateOrder(ctx context.Context, token string, req CreateOrderRequest) (*models.Order, error) {
	var envelope orderEnvelope
	if err := c.do(ctx, http.MethodPost, "/orders", token, req, &envelope); err != nil {
		return nil, err
	}
	return &envelope.Data, nil
}

func (c *Client) MyOrders(ctx context.Context, token string) ([]models.Order, error) {
	var orders []models.Order
	if err := c.do(ctx, http.MethodGet, "/orders/my-orders", token, nil, &orders); err != nil {
		return nil, err
	}
	return orders, nil
}

func (c *Client) Order(ctx context.Context, token, orderID string) (*models.Order, error) {
	var order models.Order
	if err := c.do(ctx, http.MethodGet, "/orders/"+orderID, token, nil, &order); err != nil {
		return nil, err
	}
	return &order, nil
}

type verifyPaymentRequest struct {
	PaymentToken string `json:"paymentToken"`
}

// VerifyPayment marks the order's payment as verified, passing the payment
// index token (pidx) as proof. A rejected or already-consumed token surfaces
// as an APIError; the order stays in whatever state the backend holds.
func (c *Client) VerifyPayment(ctx context.Context, token, orderID, paymentToken string) error {
	req := verifyPaymentRequest{PaymentToken: paymentToken}
	return c.do(ctx, http.MethodPatch, "/orders/"+orderID+"/payment", token, req, nil)
}
