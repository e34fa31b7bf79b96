package service

import (
	"fmt"
	"sync"

	"aurum-store/internal/models"
	"aurum-store/internal/store"
	"aurum-store/internal/util"

	"go.uber.org/zap"
)

// CartService owns the shopper's pending line items and validates every
// mutation against the catalog's live stock.
type CartService struct {
	mu      sync.RWMutex
	catalog *store.Catalog
	items   []models.CartItem
	logger  *zap.Logger
}

// NewCartService creates an empty cart bound to the catalog
func NewCartService(catalog *store.Catalog) *CartService {
	return &CartService{
		catalog: catalog,
		logger:  util.GetLogger(),
	}
}

// Add puts one unit of the product into the cart. Out-of-stock products
// and increments beyond available stock are rejected with
// InsufficientStockError; the cart is left unchanged in both cases.
func (s *CartService) Add(productID int) error {
	product, err := s.catalog.Product(productID)
	if err != nil {
		return fmt.Errorf("add to cart: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if product.Stock <= 0 {
		util.CartRejectionsTotal.WithLabelValues("out_of_stock").Inc()
		return &InsufficientStockError{ProductID: productID, Requested: 1, Available: 0}
	}

	for i := range s.items {
		if s.items[i].ID == productID {
			if s.items[i].Quantity+1 > product.Stock {
				util.CartRejectionsTotal.WithLabelValues("stock_ceiling").Inc()
				return &InsufficientStockError{
					ProductID: productID,
					Requested: s.items[i].Quantity + 1,
					Available: product.Stock,
				}
			}
			s.items[i].Quantity++
			return nil
		}
	}

	s.items = append(s.items, models.CartItem{Product: product, Quantity: 1})
	s.logger.Debug("Cart line added", zap.Int("product_id", productID))
	return nil
}

// UpdateQuantity applies a quantity delta to a cart line. The stock
// ceiling comes from the current product record, not the snapshot taken
// at add time. Positive deltas beyond stock are rejected; the quantity
// floors at zero and a zero-quantity line is removed.
func (s *CartService) UpdateQuantity(productID, delta int) error {
	product, err := s.catalog.Product(productID)
	if err != nil {
		return fmt.Errorf("update quantity: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.items {
		if s.items[i].ID != productID {
			continue
		}
		newQty := s.items[i].Quantity + delta
		if delta > 0 && newQty > product.Stock {
			util.CartRejectionsTotal.WithLabelValues("stock_ceiling").Inc()
			return &InsufficientStockError{
				ProductID: productID,
				Requested: newQty,
				Available: product.Stock,
			}
		}
		if newQty <= 0 {
			s.items = append(s.items[:i], s.items[i+1:]...)
			return nil
		}
		s.items[i].Quantity = newQty
		return nil
	}
	return fmt.Errorf("update quantity: cart line %d: %w", productID, store.ErrNotFound)
}

// Items returns a copy of the cart lines
func (s *CartService) Items() []models.CartItem {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.CartItem, len(s.items))
	copy(out, s.items)
	return out
}

// Total sums price times quantity over all lines; 0 for an empty cart
func (s *CartService) Total() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	total := 0
	for _, item := range s.items {
		total += item.Price * item.Quantity
	}
	return total
}

// Count returns the total unit count across all lines
func (s *CartService) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	count := 0
	for _, item := range s.items {
		count += item.Quantity
	}
	return count
}

// Clear empties the cart
func (s *CartService) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.items = nil
}
