package session

import (
	"context"

	"github.com/DipakSrm/style-home-direct/backend"
	"github.com/DipakSrm/style-home-direct/models"
)

// Session is the explicit auth container: a bearer token plus the profile it
// belongs to. It is created on login/register or resumed from a persisted
// token, and discarded on logout or when the backend rejects the token.
type Session struct {
	User  *models.User
	Token string
}

func (s *Session) IsAuthenticated() bool {
	return s != nil && s.Token != "" && s.User != nil
}

type Manager struct {
	api *backend.Client
}

func NewManager(api *backend.Client) *Manager {
	return &Manager{api: api}
}

func (m *Manager) Login(ctx context.Context, email, password string) (*Session, error) {
	resp, err := m.api.Login(ctx, backend.Credentials{Email: email, Password: password})
	if err != nil {
		return nil, err
	}
	return &Session{User: &resp.User, Token: resp.Token}, nil
}

func (m *Manager) Register(ctx context.Context, req backend.RegisterRequest) (*Session, error) {
	resp, err := m.api.Register(ctx, req)
	if err != nil {
		return nil, err
	}
	return &Session{User: &resp.User, Token: resp.Token}, nil
}

// Resume rebuilds a session from a persisted bearer token by fetching the
// profile behind it. backend.ErrUnauthorized means the token is stale and the
// caller must force a re-login.
func (m *Manager) Resume(ctx context.Context, token string) (*Session, error) {
	user, err := m.api.Me(ctx, token)
	if err != nil {
		return nil, err
	}
	return &Session{User: user, Token: token}, nil
}
