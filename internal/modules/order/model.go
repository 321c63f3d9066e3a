package order

import (
	"time"

	"github.com/google/uuid"
)

// Status represents the display state of an order in the history view.
// It is a closed set; no lifecycle transitions are modelled here.
type Status string

const (
	StatusPending    Status = "pending"
	StatusProcessing Status = "processing"
	StatusShipped    Status = "shipped"
	StatusDelivered  Status = "delivered"
	StatusCancelled  Status = "cancelled"
)

// IsValid reports whether s is one of the known order statuses.
func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusProcessing, StatusShipped, StatusDelivered, StatusCancelled:
		return true
	}
	return false
}

// Order is a purchase order as shown in the order history. The monetary
// totals are trusted input: subtotal + tax + shipping is never recomputed
// or validated against total.
type Order struct {
	ID          uuid.UUID    `json:"id"`
	OrderNumber string       `json:"order_number"`
	Date        time.Time    `json:"date"` // placement date, no time component
	Status      Status       `json:"status"`
	Items       []*Item      `json:"items"`
	Subtotal    float64      `json:"subtotal"`
	Tax         float64      `json:"tax"`
	Shipping    float64      `json:"shipping"`
	Total       float64      `json:"total"`
	Customer    CustomerInfo `json:"customer_info"`
}

// Item is a single line item within an order. The line total is
// quantity times price, computed where it is displayed, never stored.
type Item struct {
	ID       uuid.UUID `json:"id"`
	Name     string    `json:"name"`
	Quantity int       `json:"quantity"`
	Price    float64   `json:"price"`
	ImageURL string    `json:"image,omitempty"` // carried for the UI, unused by invoice rendering
}

// CustomerInfo is the billing contact rendered verbatim on invoices,
// each field a single line.
type CustomerInfo struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Address string `json:"address"`
}

// Filter narrows the order history listing. Search matches
// case-insensitively against the order number and item names; Status
// of "" or "all" disables the status filter.
type Filter struct {
	Search string `json:"search"`
	Status string `json:"status"`
}

// Summary aggregates the full, unfiltered order history.
type Summary struct {
	TotalOrders int     `json:"total_orders"`
	TotalValue  float64 `json:"total_value"`
}
