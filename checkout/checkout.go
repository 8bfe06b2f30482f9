package checkout

import (
	"context"
	"errors"
	"fmt"
	"math"

	"github.com/rs/zerolog"

	"github.com/DipakSrm/style-home-direct/backend"
	"github.com/DipakSrm/style-home-direct/cart"
	"github.com/DipakSrm/style-home-direct/models"
)

// TaxRate is the canonical VAT rate baked into the charged total.
const TaxRate = 0.13

var (
	ErrEmptyCart       = errors.New("cart is empty")
	ErrUnauthenticated = errors.New("checkout requires an authenticated session")
)

// ErrInsufficientStock fails pre-submit revalidation when the backend reports
// less stock than the cart holds.
type ErrInsufficientStock struct {
	ProductName string
	Available   int
}

func (e *ErrInsufficientStock) Error() string {
	return fmt.Sprintf("not enough stock for %s, available: %d", e.ProductName, e.Available)
}

// Service converts the session cart into a backend order. Submission happens
// exactly once per call; no step is retried, and a failure at any step leaves
// the cart untouched so the user can resubmit.
type Service struct {
	api        *backend.Client
	carts      *cart.Service
	returnURL  string
	websiteURL string
	logger     zerolog.Logger
}

func NewService(api *backend.Client, carts *cart.Service, returnURL, websiteURL string, logger zerolog.Logger) *Service {
	return &Service{api: api, carts: carts, returnURL: returnURL, websiteURL: websiteURL, logger: logger}
}

type Request struct {
	ShippingAddress models.ShippingAddress
	PaymentMethod   models.PaymentMethod
}

type Result struct {
	Order      models.Order
	PaymentURL string // set only for the wallet payment path
}

// Submit places the order. COD orders clear the cart immediately; wallet
// orders keep the cart until payment confirmation succeeds, so a failed or
// abandoned payment can be retried from the same cart.
func (s *Service) Submit(ctx context.Context, token string, user *models.User, sessionID string, req Request) (*Result, error) {
	if token == "" || user == nil {
		return nil, ErrUnauthenticated
	}
	if req.PaymentMethod != models.PaymentMethodCOD && req.PaymentMethod != models.PaymentMethodKhalti {
		return nil, fmt.Errorf("unsupported payment method %q", req.PaymentMethod)
	}

	state, err := s.carts.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if len(state.Items) == 0 {
		return nil, ErrEmptyCart
	}

	subtotal, err := s.revalidate(ctx, state)
	if err != nil {
		return nil, err
	}
	total := round2(subtotal * (1 + TaxRate))

	items := make([]backend.OrderItemRequest, 0, len(state.Items))
	for _, item := range state.Items {
		items = append(items, backend.OrderItemRequest{ProductID: item.Product.ID, Quantity: item.Quantity})
	}

	order, err := s.api.CreateOrder(ctx, token, backend.CreateOrderRequest{
		Items:           items,
		TotalAmount:     total,
		ShippingAddress: req.ShippingAddress,
		PaymentMethod:   req.PaymentMethod,
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("order", order.ID).Str("method", string(req.PaymentMethod)).
		Float64("total", total).Msg("order created")

	if req.PaymentMethod == models.PaymentMethodCOD {
		if err := s.carts.Clear(ctx, sessionID); err != nil {
			// The order exists; losing the clear only leaves a stale cart.
			s.logger.Warn().Err(err).Str("order", order.ID).Msg("failed to clear cart after COD order")
		}
		return &Result{Order: *order}, nil
	}

	initiation, err := s.api.InitiateKhaltiPayment(ctx, token, backend.KhaltiInitiateRequest{
		ReturnURL:         s.returnURL,
		WebsiteURL:        s.websiteURL,
		Amount:            int64(math.Round(total * 100)),
		PurchaseOrderID:   order.ID,
		PurchaseOrderName: fmt.Sprintf("%s Order #%s", user.Name, order.ID),
	})
	if err != nil {
		return nil, err
	}

	return &Result{Order: *order, PaymentURL: initiation.PaymentURL}, nil
}

// revalidate refreshes price and stock for every cart line against the
// backend before submission, so a stale-price or oversold cart cannot become
// an order. Returns the subtotal over the refreshed prices.
func (s *Service) revalidate(ctx context.Context, state models.CartState) (float64, error) {
	var subtotal float64
	for _, item := range state.Items {
		product, err := s.api.Product(ctx, item.Product.ID)
		if err != nil {
			return 0, err
		}
		if product.Stock < item.Quantity {
			return 0, &ErrInsufficientStock{ProductName: product.Name, Available: product.Stock}
		}
		if product.Price != item.Product.Price {
			s.logger.Info().Str("product", product.ID).
				Float64("cart_price", item.Product.Price).Float64("current_price", product.Price).
				Msg("cart price stale, using current price")
		}
		subtotal += product.Price * float64(item.Quantity)
	}
	return subtotal, nil
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
