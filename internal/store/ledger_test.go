package store

import (
	"testing"
	"time"

	"aurum-store/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func order(id, phone string, total int, age time.Duration) models.Order {
	return models.Order{
		ID:           id,
		CustomerName: "Customer " + phone,
		Phone:        phone,
		Address:      "Address of " + phone,
		Items: []models.CartItem{
			{Product: models.Product{ID: 1, Price: total}, Quantity: 1},
		},
		TotalAmount:   total,
		PaymentMethod: models.PaymentMethodOnline,
		Status:        models.OrderStatusPending,
		Date:          time.Now().Add(-age),
	}
}

func TestLedgerAppendPrepends(t *testing.T) {
	l := NewLedger(nil)

	require.NoError(t, l.Append(order("ORD-AAAA", "111", 100, time.Hour)))
	require.NoError(t, l.Append(order("ORD-BBBB", "222", 200, 0)))

	orders := l.Orders()
	require.Len(t, orders, 2)
	assert.Equal(t, "ORD-BBBB", orders[0].ID, "most recent order comes first")
	assert.Equal(t, "ORD-AAAA", orders[1].ID)
}

func TestLedgerRejectsDuplicateIDs(t *testing.T) {
	l := NewLedger(nil)

	require.NoError(t, l.Append(order("ORD-AAAA", "111", 100, 0)))
	assert.Error(t, l.Append(order("ORD-AAAA", "222", 200, 0)))
	assert.Len(t, l.Orders(), 1)
	assert.True(t, l.Contains("ORD-AAAA"))
	assert.False(t, l.Contains("ORD-CCCC"))
}

func TestLedgerOrdersAreDeepCopies(t *testing.T) {
	l := NewLedger(nil)
	require.NoError(t, l.Append(order("ORD-AAAA", "111", 100, 0)))

	out := l.Orders()
	out[0].Items[0].Quantity = 999
	out[0].TotalAmount = 999

	got, err := l.Order("ORD-AAAA")
	require.NoError(t, err)
	assert.Equal(t, 1, got.Items[0].Quantity, "ledger snapshots must stay frozen")
	assert.Equal(t, 100, got.TotalAmount)
}

func TestLedgerUpdateStatus(t *testing.T) {
	l := NewLedger(nil)
	require.NoError(t, l.Append(order("ORD-AAAA", "111", 100, 0)))

	require.NoError(t, l.UpdateStatus("ORD-AAAA", models.OrderStatusDelivered))
	got, err := l.Order("ORD-AAAA")
	require.NoError(t, err)
	assert.Equal(t, models.OrderStatusDelivered, got.Status)

	assert.ErrorIs(t, l.UpdateStatus("ORD-ZZZZ", models.OrderStatusConfirmed), ErrNotFound)
}

func TestLedgerTotalRevenueIncludesAllStatuses(t *testing.T) {
	l := NewLedger(nil)
	require.NoError(t, l.Append(order("ORD-AAAA", "111", 100, time.Hour)))
	require.NoError(t, l.Append(order("ORD-BBBB", "222", 250, 0)))
	require.NoError(t, l.UpdateStatus("ORD-AAAA", models.OrderStatusDelivered))

	assert.Equal(t, 350, l.TotalRevenue())
}

func TestCustomersGroupsByPhone(t *testing.T) {
	l := NewLedger(nil)
	t1 := 2 * time.Hour
	t2 := 10 * time.Minute

	require.NoError(t, l.Append(order("ORD-AAAA", "111", 100, t1)))
	require.NoError(t, l.Append(order("ORD-BBBB", "111", 200, t2)))

	customers := l.Customers()
	require.Len(t, customers, 1)
	assert.Equal(t, 2, customers[0].OrderCount)
	assert.Equal(t, "111", customers[0].Phone)

	later, err := l.Order("ORD-BBBB")
	require.NoError(t, err)
	assert.Equal(t, later.Date, customers[0].LastOrderDate, "lastOrderDate is the most recent order's date")
}

func TestCustomersSortedByLastOrderDesc(t *testing.T) {
	l := NewLedger(nil)

	require.NoError(t, l.Append(order("ORD-AAAA", "111", 100, 3*time.Hour)))
	require.NoError(t, l.Append(order("ORD-BBBB", "222", 200, 2*time.Hour)))
	require.NoError(t, l.Append(order("ORD-CCCC", "333", 300, time.Hour)))
	require.NoError(t, l.Append(order("ORD-DDDD", "111", 400, 0)))

	customers := l.Customers()
	require.Len(t, customers, 3)
	assert.Equal(t, "111", customers[0].Phone)
	assert.Equal(t, "333", customers[1].Phone)
	assert.Equal(t, "222", customers[2].Phone)
	assert.Equal(t, 2, customers[0].OrderCount)
}

func TestCustomersProjectionRecomputedOnRead(t *testing.T) {
	l := NewLedger(nil)
	require.NoError(t, l.Append(order("ORD-AAAA", "111", 100, time.Hour)))
	assert.Len(t, l.Customers(), 1)

	require.NoError(t, l.Append(order("ORD-BBBB", "222", 200, 0)))
	assert.Len(t, l.Customers(), 2, "projection must reflect every ledger append")
}
