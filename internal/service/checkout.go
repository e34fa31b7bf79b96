package service

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"aurum-store/internal/models"
	"aurum-store/internal/store"
	"aurum-store/internal/util"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// CheckoutDetails carries the customer-supplied fields of a checkout
type CheckoutDetails struct {
	Name          string `json:"name" binding:"required"`
	Phone         string `json:"phone" binding:"required"`
	Address       string `json:"address" binding:"required"`
	PaymentMethod string `json:"paymentMethod" binding:"required,oneof=ONLINE COD"`
}

// CheckoutService runs the one multi-entity transaction in the system:
// converting the cart into an order, debiting catalog stock and clearing
// the cart as a single atomic step.
type CheckoutService struct {
	mu      sync.Mutex
	catalog *store.Catalog
	cart    *CartService
	ledger  *store.Ledger
	payment *PaymentService
	logger  *zap.Logger
}

// NewCheckoutService creates a checkout service over the shared state
func NewCheckoutService(catalog *store.Catalog, cart *CartService, ledger *store.Ledger, payment *PaymentService) *CheckoutService {
	return &CheckoutService{
		catalog: catalog,
		cart:    cart,
		ledger:  ledger,
		payment: payment,
		logger:  util.GetLogger(),
	}
}

// PlaceOrder commits the cart as a new order. The payment simulation runs
// first; once it resolves, the snapshot, the stock debits, the ledger
// append and the cart clear all happen inside one critical section, so no
// caller ever observes debited stock without a recorded order or vice
// versa. Debits floor at zero: an order may commit for more than current
// stock, a tolerated race in a single-shopper store.
func (cs *CheckoutService) PlaceOrder(ctx context.Context, details CheckoutDetails) (models.Order, error) {
	ctx, span := util.StartSpan(ctx, "CheckoutService.PlaceOrder")
	defer span.End()

	start := time.Now()
	defer func() {
		util.CheckoutLatency.Observe(time.Since(start).Seconds())
	}()

	if len(cs.cart.Items()) == 0 {
		util.OrdersFailedTotal.WithLabelValues("empty_cart").Inc()
		return models.Order{}, ErrEmptyCart
	}

	receipt, err := cs.payment.Process(ctx, details.PaymentMethod, cs.cart.Total())
	if err != nil {
		util.OrdersFailedTotal.WithLabelValues("payment_aborted").Inc()
		return models.Order{}, fmt.Errorf("place order: %w", err)
	}

	cs.mu.Lock()
	defer cs.mu.Unlock()

	items := cs.cart.Items()
	if len(items) == 0 {
		util.OrdersFailedTotal.WithLabelValues("empty_cart").Inc()
		return models.Order{}, ErrEmptyCart
	}

	total := 0
	for _, item := range items {
		total += item.Price * item.Quantity
	}

	order := models.Order{
		ID:            cs.nextOrderID(),
		CustomerName:  details.Name,
		Phone:         details.Phone,
		Address:       details.Address,
		Items:         items,
		TotalAmount:   total,
		PaymentMethod: details.PaymentMethod,
		Status:        models.OrderStatusPending,
		Date:          time.Now(),
	}

	for _, item := range items {
		if err := cs.catalog.AdjustStock(item.ID, -item.Quantity); err != nil {
			// Product deleted mid-session; the snapshot still commits.
			cs.logger.Warn("Stock debit skipped",
				zap.Int("product_id", item.ID),
				zap.Error(err))
		}
	}

	if err := cs.ledger.Append(order); err != nil {
		util.OrdersFailedTotal.WithLabelValues("ledger_append").Inc()
		return models.Order{}, fmt.Errorf("place order: %w", err)
	}
	cs.cart.Clear()

	util.OrdersPlacedTotal.Inc()
	util.RevenueTotal.Add(float64(total))

	cs.logger.Info("Order placed",
		zap.String("order_id", order.ID),
		zap.String("tx_id", receipt.TxID),
		zap.Int("total", total),
		zap.Int("lines", len(items)))
	return order, nil
}

// nextOrderID builds a human-readable order id with a random uppercase
// suffix. The ledger is consulted so ids are unique keys, which the
// original random-string scheme never guaranteed.
func (cs *CheckoutService) nextOrderID() string {
	for {
		id := fmt.Sprintf("ORD-%s", strings.ToUpper(uuid.New().String()[:8]))
		if !cs.ledger.Contains(id) {
			return id
		}
	}
}
