package order

import (
	"context"
	"fmt"
	"strings"
)

// Service defines the order-history business logic.
type Service interface {
	// List returns orders matching the search term and status filter,
	// preserving the source's ordering.
	List(ctx context.Context, f Filter) ([]*Order, error)

	// Get retrieves a full order with its items by UUID.
	Get(ctx context.Context, id string) (*Order, error)

	// GetByNumber retrieves an order by its human-readable number.
	GetByNumber(ctx context.Context, orderNumber string) (*Order, error)

	// Summary aggregates order count and total value across the full,
	// unfiltered history.
	Summary(ctx context.Context) (*Summary, error)
}

type service struct{ repo Repository }

// NewService creates a new order-history service.
func NewService(repo Repository) Service { return &service{repo: repo} }

func (s *service) List(ctx context.Context, f Filter) ([]*Order, error) {
	status := strings.ToLower(strings.TrimSpace(f.Status))
	if status != "" && status != "all" && !Status(status).IsValid() {
		return nil, fmt.Errorf("unknown status %q", f.Status)
	}

	orders, err := s.repo.ListOrders(ctx)
	if err != nil {
		return nil, err
	}

	term := strings.ToLower(strings.TrimSpace(f.Search))
	out := make([]*Order, 0, len(orders))
	for _, o := range orders {
		if !matchesSearch(o, term) {
			continue
		}
		if status != "" && status != "all" && string(o.Status) != status {
			continue
		}
		out = append(out, o)
	}
	return out, nil
}

func (s *service) Get(ctx context.Context, id string) (*Order, error) {
	return s.repo.GetOrderByID(ctx, id)
}

func (s *service) GetByNumber(ctx context.Context, orderNumber string) (*Order, error) {
	return s.repo.GetOrderByNumber(ctx, orderNumber)
}

func (s *service) Summary(ctx context.Context) (*Summary, error) {
	orders, err := s.repo.ListOrders(ctx)
	if err != nil {
		return nil, err
	}
	sum := &Summary{TotalOrders: len(orders)}
	for _, o := range orders {
		sum.TotalValue += o.Total
	}
	return sum, nil
}

// matchesSearch reports whether the term is a case-insensitive substring
// of the order number or of any item name. An empty term matches all.
func matchesSearch(o *Order, term string) bool {
	if term == "" {
		return true
	}
	if strings.Contains(strings.ToLower(o.OrderNumber), term) {
		return true
	}
	for _, item := range o.Items {
		if strings.Contains(strings.ToLower(item.Name), term) {
			return true
		}
	}
	return false
}
