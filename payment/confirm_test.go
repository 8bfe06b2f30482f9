package payment

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/DipakSrm/style-home-direct/backend"
	"github.com/DipakSrm/style-home-direct/cart"
	"github.com/DipakSrm/style-home-direct/models"
)

type fakeVerifier struct {
	calls  int
	body   map[string]string
	path   string
	reject bool
}

func (f *fakeVerifier) handler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		f.calls++
		f.path = r.Method + " " + r.URL.Path
		json.NewDecoder(r.Body).Decode(&f.body)
		if f.reject {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(map[string]string{"message": "invalid payment token"})
			return
		}
		json.NewEncoder(w).Encode(map[string]string{"message": "payment verified"})
	})
}

func setupReconciler(t *testing.T, fake *fakeVerifier) (*Reconciler, *cart.Service, *miniredis.Miniredis) {
	server := httptest.NewServer(fake.handler())
	t.Cleanup(server.Close)

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })

	carts := cart.NewService(cart.NewRedisStore(client, 0, zerolog.Nop()), zerolog.Nop())
	api := backend.New(server.URL, 2*time.Second, zerolog.Nop())
	return NewReconciler(api, carts, zerolog.Nop()), carts, mr
}

func seedPendingCart(t *testing.T, carts *cart.Service) {
	_, err := carts.AddItem(context.Background(), "sess1",
		models.Product{ID: "p1", Name: "Sofa", Price: 100, Stock: 5})
	require.NoError(t, err)
}

func completedParams() CallbackParams {
	return CallbackParams{
		Pidx:            "pidx-1",
		TransactionID:   "txn-1",
		Status:          "Completed",
		PurchaseOrderID: "order-1",
	}
}

func TestConfirm_CompletedClearsCart(t *testing.T) {
	fake := &fakeVerifier{}
	rec, carts, mr := setupReconciler(t, fake)
	seedPendingCart(t, carts)

	outcome, err := rec.Confirm(context.Background(), "tok", "sess1", completedParams())
	require.NoError(t, err)
	assert.Equal(t, models.PaymentStatusCompleted, outcome.Status)
	assert.Equal(t, "order-1", outcome.OrderID)

	assert.Equal(t, 1, fake.calls)
	assert.Equal(t, "PATCH /orders/order-1/payment", fake.path)
	assert.Equal(t, "pidx-1", fake.body["paymentToken"])
	assert.False(t, mr.Exists("cart:sess1"))
}

func TestConfirm_NonCompletedStatusFails(t *testing.T) {
	for _, status := range []string{"User canceled", "Expired", "Pending", ""} {
		t.Run(status, func(t *testing.T) {
			fake := &fakeVerifier{}
			rec, carts, mr := setupReconciler(t, fake)
			seedPendingCart(t, carts)

			params := completedParams()
			params.Status = status
			outcome, err := rec.Confirm(context.Background(), "tok", "sess1", params)
			require.NoError(t, err)
			assert.Equal(t, models.PaymentStatusFailed, outcome.Status)

			// no verification attempt, cart survives for a retry
			assert.Equal(t, 0, fake.calls)
			assert.True(t, mr.Exists("cart:sess1"))
		})
	}
}

func TestConfirm_MissingOrderIDFails(t *testing.T) {
	fake := &fakeVerifier{}
	rec, carts, mr := setupReconciler(t, fake)
	seedPendingCart(t, carts)

	params := completedParams()
	params.PurchaseOrderID = ""
	outcome, err := rec.Confirm(context.Background(), "tok", "sess1", params)
	require.NoError(t, err)
	assert.Equal(t, models.PaymentStatusFailed, outcome.Status)
	assert.Equal(t, 0, fake.calls)
	assert.True(t, mr.Exists("cart:sess1"))
}

func TestConfirm_VerificationRejected(t *testing.T) {
	fake := &fakeVerifier{reject: true}
	rec, carts, mr := setupReconciler(t, fake)
	seedPendingCart(t, carts)

	outcome, err := rec.Confirm(context.Background(), "tok", "sess1", completedParams())
	assert.ErrorIs(t, err, ErrVerification)

	// the backend still holds the order as pending; nothing local changes
	assert.Equal(t, models.PaymentStatusPending, outcome.Status)
	assert.True(t, mr.Exists("cart:sess1"))
}

func TestParseCallback(t *testing.T) {
	q := url.Values{}
	q.Set("pidx", "pidx-1")
	q.Set("transaction_id", "txn-1")
	q.Set("tidx", "txn-1")
	q.Set("amount", "28250")
	q.Set("total_amount", "28250")
	q.Set("mobile", "98XXXXX005")
	q.Set("status", "Completed")
	q.Set("purchase_order_id", "order-1")
	q.Set("purchase_order_name", "Dipak Order #order-1")

	params := ParseCallback(q)
	assert.Equal(t, "pidx-1", params.Pidx)
	assert.Equal(t, "28250", params.Amount)
	assert.Equal(t, "order-1", params.PurchaseOrderID)
	assert.True(t, params.Complete())

	assert.False(t, ParseCallback(url.Values{}).Complete())
}
