package payment

import (
	"context"
	"errors"
	"fmt"
	"net/url"

	"github.com/rs/zerolog"

	"github.com/DipakSrm/style-home-direct/backend"
	"github.com/DipakSrm/style-home-direct/cart"
	"github.com/DipakSrm/style-home-direct/models"
)

// statusCompleted is the provider's literal callback status for a settled payment.
const statusCompleted = "Completed"

// ErrVerification marks a backend rejection of the payment proof (invalid or
// already-consumed pidx). The order stays in whatever state the backend holds.
var ErrVerification = errors.New("payment verification failed")

// CallbackParams is the fixed query-parameter set the wallet provider
// appends when redirecting back from the payment page.
type CallbackParams struct {
	Pidx              string
	TransactionID     string
	Tidx              string
	Amount            string
	TotalAmount       string
	Mobile            string
	Status            string
	PurchaseOrderID   string
	PurchaseOrderName string
}

func ParseCallback(q url.Values) CallbackParams {
	return CallbackParams{
		Pidx:              q.Get("pidx"),
		TransactionID:     q.Get("transaction_id"),
		Tidx:              q.Get("tidx"),
		Amount:            q.Get("amount"),
		TotalAmount:       q.Get("total_amount"),
		Mobile:            q.Get("mobile"),
		Status:            q.Get("status"),
		PurchaseOrderID:   q.Get("purchase_order_id"),
		PurchaseOrderName: q.Get("purchase_order_name"),
	}
}

// Complete reports whether the callback carries everything needed to attempt
// verification: a Completed status, an order id and the payment index token.
func (p CallbackParams) Complete() bool {
	return p.Status == statusCompleted && p.PurchaseOrderID != "" && p.Pidx != ""
}

type Outcome struct {
	Status  models.PaymentStatus `json:"status"`
	OrderID string               `json:"order_id,omitempty"`
}

// Reconciler runs the one-shot payment confirmation after the provider
// redirect: pending -> completed on verified success, pending -> failed on
// anything else. There is no polling and no retry.
type Reconciler struct {
	api    *backend.Client
	carts  *cart.Service
	logger zerolog.Logger
}

func NewReconciler(api *backend.Client, carts *cart.Service, logger zerolog.Logger) *Reconciler {
	return &Reconciler{api: api, carts: carts, logger: logger}
}

// Confirm verifies the payment with the backend and finalizes local state.
// Only a verified success clears the cart; a failed outcome keeps it so the
// user can retry checkout.
func (r *Reconciler) Confirm(ctx context.Context, token, sessionID string, params CallbackParams) (Outcome, error) {
	if !params.Complete() {
		r.logger.Warn().Str("status", params.Status).Str("order", params.PurchaseOrderID).
			Msg("payment callback incomplete, marking failed")
		return Outcome{Status: models.PaymentStatusFailed, OrderID: params.PurchaseOrderID}, nil
	}

	if err := r.api.VerifyPayment(ctx, token, params.PurchaseOrderID, params.Pidx); err != nil {
		r.logger.Error().Err(err).Str("order", params.PurchaseOrderID).Msg("payment verification rejected")
		return Outcome{Status: models.PaymentStatusPending, OrderID: params.PurchaseOrderID},
			fmt.Errorf("%w: %v", ErrVerification, err)
	}

	if err := r.carts.Clear(ctx, sessionID); err != nil {
		r.logger.Warn().Err(err).Str("order", params.PurchaseOrderID).Msg("failed to clear cart after payment")
	}
	r.logger.Info().Str("order", params.PurchaseOrderID).Msg("payment completed")
	return Outcome{Status: models.PaymentStatusCompleted, OrderID: params.PurchaseOrderID}, nil
}
