package order

import (
	"context"
	"errors"
)

// ErrNotFound is returned when no order matches the given id or number.
var ErrNotFound = errors.New("order not found")

// Repository is the order source. It supplies the session's full order
// sequence up front; callers must treat the returned orders as read-only.
type Repository interface {
	// ListOrders returns every order in the source's stored order.
	ListOrders(ctx context.Context) ([]*Order, error)

	// GetOrderByID retrieves an order with its items by UUID.
	GetOrderByID(ctx context.Context, id string) (*Order, error)

	// GetOrderByNumber retrieves an order by its human-readable number.
	GetOrderByNumber(ctx context.Context, orderNumber string) (*Order, error)
}
