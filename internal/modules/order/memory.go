package order

import (
	"context"
	"time"

	"github.com/google/uuid"
)

type memoryRepo struct {
	orders   []*Order
	byID     map[string]*Order
	byNumber map[string]*Order
}

// NewMemoryRepository returns an order source seeded with sample history
// data. It stands in for a real backend query until one is configured.
func NewMemoryRepository() Repository {
	return newMemoryRepo(seedOrders())
}

func newMemoryRepo(orders []*Order) *memoryRepo {
	r := &memoryRepo{
		orders:   orders,
		byID:     make(map[string]*Order, len(orders)),
		byNumber: make(map[string]*Order, len(orders)),
	}
	for _, o := range orders {
		r.byID[o.ID.String()] = o
		r.byNumber[o.OrderNumber] = o
	}
	return r
}

func (r *memoryRepo) ListOrders(ctx context.Context) ([]*Order, error) {
	out := make([]*Order, len(r.orders))
	copy(out, r.orders)
	return out, nil
}

func (r *memoryRepo) GetOrderByID(ctx context.Context, id string) (*Order, error) {
	o, ok := r.byID[id]
	if !ok {
		return nil, ErrNotFound
	}
	return o, nil
}

func (r *memoryRepo) GetOrderByNumber(ctx context.Context, orderNumber string) (*Order, error) {
	o, ok := r.byNumber[orderNumber]
	if !ok {
		return nil, ErrNotFound
	}
	return o, nil
}

// seedOrders builds the sample order history for a session. IDs are
// regenerated per process; order numbers are the stable references.
func seedOrders() []*Order {
	customer := CustomerInfo{
		Name:    "John Doe",
		Email:   "john@example.com",
		Address: "123 Main St, City, State 12345",
	}

	return []*Order{
		{
			ID:          uuid.New(),
			OrderNumber: "ORD-2024-001",
			Date:        day(2024, time.January, 15),
			Status:      StatusDelivered,
			Items: []*Item{
				{ID: uuid.New(), Name: "Wireless Bluetooth Headphones", Quantity: 1, Price: 99.99},
				{ID: uuid.New(), Name: "USB-C Charging Cable", Quantity: 2, Price: 19.99},
			},
			Subtotal: 139.97,
			Tax:      11.20,
			Shipping: 8.99,
			Total:    160.16,
			Customer: customer,
		},
		{
			ID:          uuid.New(),
			OrderNumber: "ORD-2024-002",
			Date:        day(2024, time.January, 22),
			Status:      StatusShipped,
			Items: []*Item{
				{ID: uuid.New(), Name: "Smart Watch Series 5", Quantity: 1, Price: 299.99},
				{ID: uuid.New(), Name: "Watch Band Leather", Quantity: 1, Price: 49.99},
			},
			Subtotal: 349.98,
			Tax:      28.00,
			Shipping: 0.00,
			Total:    377.98,
			Customer: customer,
		},
		{
			ID:          uuid.New(),
			OrderNumber: "ORD-2024-003",
			Date:        day(2024, time.February, 1),
			Status:      StatusProcessing,
			Items: []*Item{
				{ID: uuid.New(), Name: "4K Webcam", Quantity: 1, Price: 149.99},
			},
			Subtotal: 149.99,
			Tax:      12.00,
			Shipping: 12.99,
			Total:    174.98,
			Customer: customer,
		},
		{
			ID:          uuid.New(),
			OrderNumber: "ORD-2024-004",
			Date:        day(2024, time.February, 10),
			Status:      StatusPending,
			Items: []*Item{
				{ID: uuid.New(), Name: "Gaming Mechanical Keyboard", Quantity: 1, Price: 129.99},
				{ID: uuid.New(), Name: "RGB Gaming Mouse", Quantity: 1, Price: 79.99},
				{ID: uuid.New(), Name: "Mouse Pad XL", Quantity: 1, Price: 24.99},
			},
			Subtotal: 234.97,
			Tax:      18.80,
			Shipping: 9.99,
			Total:    263.76,
			Customer: customer,
		},
	}
}

func day(year int, month time.Month, d int) time.Time {
	return time.Date(year, month, d, 0, 0, 0, 0, time.UTC)
}
