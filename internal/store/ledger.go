package store

import (
	"fmt"
	"sort"
	"sync"

	"aurum-store/internal/models"
)

// Ledger is the append-only history of committed orders, most recent
// first. Orders are immutable after Append except for their status.
type Ledger struct {
	mu     sync.RWMutex
	orders []models.Order
}

// NewLedger creates a ledger seeded with historical orders
func NewLedger(orders []models.Order) *Ledger {
	l := &Ledger{orders: make([]models.Order, len(orders))}
	copy(l.orders, orders)
	return l
}

// Append prepends the order to the ledger. Duplicate ids are rejected so
// order ids stay usable as unique keys.
func (l *Ledger) Append(order models.Order) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	for _, o := range l.orders {
		if o.ID == order.ID {
			return fmt.Errorf("order id %s already exists", order.ID)
		}
	}
	l.orders = append([]models.Order{order}, l.orders...)
	return nil
}

// Contains reports whether an order with the given id exists
func (l *Ledger) Contains(id string) bool {
	l.mu.RLock()
	defer l.mu.RUnlock()

	for _, o := range l.orders {
		if o.ID == id {
			return true
		}
	}
	return false
}

// Orders returns deep copies of all orders, most recent first
func (l *Ledger) Orders() []models.Order {
	l.mu.RLock()
	defer l.mu.RUnlock()

	out := make([]models.Order, len(l.orders))
	for i, o := range l.orders {
		out[i] = copyOrder(o)
	}
	return out
}

// Order retrieves a deep copy of an order by id
func (l *Ledger) Order(id string) (models.Order, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	for _, o := range l.orders {
		if o.ID == id {
			return copyOrder(o), nil
		}
	}
	return models.Order{}, fmt.Errorf("order %s: %w", id, ErrNotFound)
}

// UpdateStatus assigns a new status to the order. Any status value is
// accepted; the intended path is Pending -> Confirmed -> Delivered.
func (l *Ledger) UpdateStatus(id, status string) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	for i := range l.orders {
		if l.orders[i].ID == id {
			l.orders[i].Status = status
			return nil
		}
	}
	return fmt.Errorf("order %s: %w", id, ErrNotFound)
}

// TotalRevenue sums TotalAmount over every order regardless of status
func (l *Ledger) TotalRevenue() int {
	l.mu.RLock()
	defer l.mu.RUnlock()

	total := 0
	for _, o := range l.orders {
		total += o.TotalAmount
	}
	return total
}

// Customers groups orders by phone number and projects one record per
// customer: the identity fields of the first order encountered in ledger
// order, the most recent order date, and the order count. The projection
// is recomputed from the full ledger on every call and sorted by most
// recent order first.
func (l *Ledger) Customers() []models.Customer {
	l.mu.RLock()
	defer l.mu.RUnlock()

	index := make(map[string]int)
	customers := make([]models.Customer, 0)

	for _, o := range l.orders {
		i, seen := index[o.Phone]
		if !seen {
			index[o.Phone] = len(customers)
			customers = append(customers, models.Customer{
				CustomerName:  o.CustomerName,
				Phone:         o.Phone,
				Address:       o.Address,
				LastOrderDate: o.Date,
				OrderCount:    1,
			})
			continue
		}
		customers[i].OrderCount++
		if o.Date.After(customers[i].LastOrderDate) {
			customers[i].LastOrderDate = o.Date
		}
	}

	sort.SliceStable(customers, func(i, j int) bool {
		return customers[i].LastOrderDate.After(customers[j].LastOrderDate)
	})
	return customers
}

func copyOrder(o models.Order) models.Order {
	items := make([]models.CartItem, len(o.Items))
	copy(items, o.Items)
	o.Items = items
	return o
}
