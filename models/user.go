package models

import "time"

type User struct {
	ID        string    `json:"_id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone,omitempty"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type Address struct {
	ID          string    `json:"_id"`
	UserID      string    `json:"userId"`
	AddressLine string    `json:"addressLine"`
	City        string    `json:"city"`
	State       string    `json:"state"`
	PostalCode  string    `json:"postalCode"`
	CreatedAt   time.Time `json:"createdAt"`
}
