package cart

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/DipakSrm/style-home-direct/models"
)

// Service is the session-scoped cart container: it loads the persisted state,
// applies one pure transition, stamps it and persists the full replacement.
type Service struct {
	store  Store
	logger zerolog.Logger
	now    func() time.Time
}

func NewService(store Store, logger zerolog.Logger) *Service {
	return &Service{store: store, logger: logger, now: time.Now}
}

func (s *Service) Get(ctx context.Context, sessionID string) (models.CartState, error) {
	return s.store.Load(ctx, sessionID)
}

func (s *Service) AddItem(ctx context.Context, sessionID string, product models.Product) (models.CartState, error) {
	state, err := s.store.Load(ctx, sessionID)
	if err != nil {
		return state, err
	}
	return s.commit(ctx, sessionID, AddItem(state, product))
}

func (s *Service) UpdateQuantity(ctx context.Context, sessionID, productID string, quantity, stock int) (models.CartState, error) {
	state, err := s.store.Load(ctx, sessionID)
	if err != nil {
		return state, err
	}
	next, err := UpdateQuantity(state, productID, quantity, stock)
	if err != nil {
		s.logger.Warn().Str("session", sessionID).Str("product", productID).
			Int("quantity", quantity).Int("stock", stock).Msg("cart quantity update rejected")
		return state, err
	}
	return s.commit(ctx, sessionID, next)
}

func (s *Service) RemoveItem(ctx context.Context, sessionID, productID string) (models.CartState, error) {
	state, err := s.store.Load(ctx, sessionID)
	if err != nil {
		return state, err
	}
	return s.commit(ctx, sessionID, RemoveItem(state, productID))
}

// Clear resets the session to the empty state with a fresh (empty) identifier.
func (s *Service) Clear(ctx context.Context, sessionID string) error {
	return s.store.Delete(ctx, sessionID)
}

func (s *Service) commit(ctx context.Context, sessionID string, state models.CartState) (models.CartState, error) {
	if state.ID == "" && len(state.Items) > 0 {
		state.ID = uuid.NewString()
	}
	state.UpdatedAt = s.now().UTC().Format(time.RFC3339)
	if err := s.store.Save(ctx, sessionID, state); err != nil {
		return state, err
	}
	return state, nil
}
