package models

import "time"

// Product represents a catalog item. Category is a weak reference by
// category name, not by id; renames cascade through the catalog store.
type Product struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Price       int    `json:"price"`
	Image       string `json:"image"`
	Category    string `json:"category"`
	Stock       int    `json:"stock"`
}

// ProductData carries the attributes of a product before an id is assigned
type ProductData struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Price       int    `json:"price"`
	Image       string `json:"image"`
	Category    string `json:"category"`
	Stock       int    `json:"stock"`
}

// Category is a taxonomy entry. IDs are numeric-looking strings
type Category struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// CartItem is a product snapshot plus a positive quantity. A quantity of
// zero is never stored; the line is removed instead.
type CartItem struct {
	Product
	Quantity int `json:"quantity"`
}

// Payment methods
const (
	PaymentMethodOnline = "ONLINE"
	PaymentMethodCOD    = "COD"
)

// Order statuses. The intended path is Pending -> Confirmed -> Delivered,
// with Delivered terminal; the field itself accepts any assignment.
const (
	OrderStatusPending   = "Pending"
	OrderStatusConfirmed = "Confirmed"
	OrderStatusDelivered = "Delivered"
)

// Order is an immutable snapshot of the cart at checkout time. Items,
// TotalAmount and Date never change after creation; only Status may.
type Order struct {
	ID            string     `json:"id"`
	CustomerName  string     `json:"customerName"`
	Phone         string     `json:"phone"`
	Address       string     `json:"address"`
	Items         []CartItem `json:"items"`
	TotalAmount   int        `json:"totalAmount"`
	PaymentMethod string     `json:"paymentMethod"`
	Status        string     `json:"status"`
	Date          time.Time  `json:"date"`
}

// Customer is a read-model projection grouped by phone number. It is
// recomputed from the order ledger on every read, never stored.
type Customer struct {
	CustomerName  string    `json:"customerName"`
	Phone         string    `json:"phone"`
	Address       string    `json:"address"`
	LastOrderDate time.Time `json:"lastOrderDate"`
	OrderCount    int       `json:"orderCount"`
}

// Receipt is the result of a simulated payment attempt
type Receipt struct {
	TxID   string    `json:"txId"`
	Method string    `json:"method"`
	Amount int       `json:"amount"`
	Paid   time.Time `json:"paid"`
}
