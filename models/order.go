package models

import "time"

type OrderStatus string
type PaymentStatus string
type PaymentMethod string

const (
	OrderStatusPending    OrderStatus = "pending"    // placed, awaiting confirmation
	OrderStatusProcessing OrderStatus = "processing" // confirmed, being prepared
	OrderStatusShipped    OrderStatus = "shipped"    // out for delivery
	OrderStatusDelivered  OrderStatus = "delivered"  // customer received the item
	OrderStatusCancelled  OrderStatus = "cancelled"  // cancelled before shipping

	PaymentStatusPending   PaymentStatus = "pending"
	PaymentStatusCompleted PaymentStatus = "completed"
	PaymentStatusFailed    PaymentStatus = "failed"

	PaymentMethodCOD    PaymentMethod = "COD"
	PaymentMethodKhalti PaymentMethod = "Khalti"
)

// Terminal reports whether no further status transitions are expected.
func (s OrderStatus) Terminal() bool {
	return s == OrderStatusDelivered || s == OrderStatusCancelled
}

type ShippingAddress struct {
	Name        string `json:"name"`
	Phone       string `json:"phone"`
	AddressLine string `json:"addressLine"`
	City        string `json:"city"`
	State       string `json:"state"`
	PostalCode  string `json:"postalCode"`
	Country     string `json:"country"`
}

type OrderItem struct {
	Product  Product `json:"productId"`
	Quantity int     `json:"quantity"`
}

// Order is backend-authoritative: the gateway only creates it once at checkout
// and reads it back. Status and PaymentStatus are never mutated locally except
// through the payment verification endpoint.
type Order struct {
	ID              string          `json:"_id"`
	UserID          string          `json:"userId"`
	Items           []OrderItem     `json:"items"`
	Status          OrderStatus     `json:"status"`
	TotalAmount     float64         `json:"totalAmount"`
	ShippingAddress ShippingAddress `json:"shippingAddress"`
	PaymentMethod   PaymentMethod   `json:"paymentMethod"`
	PaymentStatus   PaymentStatus   `json:"paymentStatus"`
	PlacedAt        time.Time       `json:"placedAt"`
	DeliveredAt     *time.Time      `json:"deliveredAt,omitempty"`
}
