package cart

import (
	"context"

	"github.com/DipakSrm/style-home-direct/models"
)

// Store persists one cart per session key. Load never fails on malformed
// persisted data: anything that does not hydrate into a structurally valid
// CartState is discarded and replaced by the canonical empty state.
type Store interface {
	Load(ctx context.Context, sessionID string) (models.CartState, error)
	Save(ctx context.Context, sessionID string, state models.CartState) error
	Delete(ctx context.Context, sessionID string) error
}
