package backend

import (
	"context"
	"net/http"

	"github.com/DipakSrm/style-home-direct/models"
)

type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type RegisterRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Phone    string `json:"phone,omitempty"`
}

type AuthResponse struct {
	Token string      `json:"token"`
	User  models.User `json:"user"`
}

func (c *Client) Login(ctx context.Context, creds Credentials) (*AuthResponse, error) {
	var resp AuthResponse
	if err := c.do(ctx, http.MethodPost, "/auth/login", "", creds, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *Client) Register(ctx context.Context, req RegisterRequest) (*AuthResponse, error) {
	var resp AuthResponse
	if err := c.do(ctx, http.MethodPost, "/auth/register", "", req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Me fetches the profile behind token. ErrUnauthorized means the token is no
// longer valid and the session must be torn down.
func (c *Client) Me(ctx context.Context, token string) (*models.User, error) {
	var user models.User
	if err := c.do(ctx, http.MethodGet, "/users/me", token, nil, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

type ProfileUpdate struct {
	Name  *string `json:"name,omitempty"`
	Phone *string `json:"phone,omitempty"`
}

func (c *Client) UpdateProfile(ctx context.Context, token, userID string, update ProfileUpdate) (*models.User, error) {
	var user models.User
	if err := c.do(ctx, http.MethodPatch, "/users/me/"+userID, token, update, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

type AddressInput struct {
	AddressLine string `json:"addressLine"`
	City        string `json:"city"`
	State       string `json:"state"`
	PostalCode  string `json:"postalCode"`
}

func (c *Client) Addresses(ctx context.Context, token string) ([]models.Address, error) {
	var addresses []models.Address
	if err := c.do(ctx, http.MethodGet, "/addresses", token, nil, &addresses); err != nil {
		return nil, err
	}
	return addresses, nil
}

func (c *Client) CreateAddress(ctx context.Context, token string, input AddressInput) (*models.Address, error) {
	var address models.Address
	if err := c.do(ctx, http.MethodPost, "/addresses", token, input, &address); err != nil {
		return nil, err
	}
	return &address, nil
}

func (c *Client) UpdateAddress(ctx context.Context, token, addressID string, input AddressInput) (*models.Address, error) {
	var address models.Address
	if err := c.do(ctx, http.MethodPatch, "/addresses/"+addressID, token, input, &address); err != nil {
		return nil, err
	}
	return &address, nil
}
