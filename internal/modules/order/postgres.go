package order

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"
)

type postgresRepo struct{ db *sql.DB }

// NewPostgresRepository returns an order source backed by PostgreSQL,
// for deployments where the order history lives in a real database.
func NewPostgresRepository(db *sql.DB) Repository { return &postgresRepo{db: db} }

const orderColumns = `id, order_number, order_date, status,
       subtotal, tax, shipping, total,
       customer_name, customer_email, customer_address`

func (r *postgresRepo) ListOrders(ctx context.Context) ([]*Order, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT `+orderColumns+`
		FROM orders
		ORDER BY order_date DESC, order_number DESC`)
	if err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}
	defer rows.Close()

	var orders []*Order
	for rows.Next() {
		o, err := scanOrder(rows)
		if err != nil {
			return nil, err
		}
		orders = append(orders, o)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for _, o := range orders {
		if o.Items, err = r.listItems(ctx, o.ID); err != nil {
			return nil, err
		}
	}
	return orders, nil
}

func (r *postgresRepo) GetOrderByID(ctx context.Context, id string) (*Order, error) {
	uid, err := uuid.Parse(id)
	if err != nil {
		return nil, fmt.Errorf("invalid order id %q: %w", id, err)
	}
	o, err := scanOrder(r.db.QueryRowContext(ctx, `
		SELECT `+orderColumns+`
		FROM orders WHERE id=$1`, uid))
	if err != nil {
		return nil, err
	}
	o.Items, err = r.listItems(ctx, o.ID)
	return o, err
}

func (r *postgresRepo) GetOrderByNumber(ctx context.Context, orderNumber string) (*Order, error) {
	o, err := scanOrder(r.db.QueryRowContext(ctx, `
		SELECT `+orderColumns+`
		FROM orders WHERE order_number=$1`, orderNumber))
	if err != nil {
		return nil, err
	}
	o.Items, err = r.listItems(ctx, o.ID)
	return o, err
}

// listItems returns an order's items in their stored position, which is
// also their rendering order on the invoice.
func (r *postgresRepo) listItems(ctx context.Context, orderID uuid.UUID) ([]*Item, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, name, quantity, price, COALESCE(image_url, '')
		FROM order_items WHERE order_id=$1
		ORDER BY position`, orderID)
	if err != nil {
		return nil, fmt.Errorf("list order_items: %w", err)
	}
	defer rows.Close()

	var items []*Item
	for rows.Next() {
		item := &Item{}
		if err := rows.Scan(&item.ID, &item.Name, &item.Quantity, &item.Price, &item.ImageURL); err != nil {
			return nil, fmt.Errorf("scan order_item: %w", err)
		}
		items = append(items, item)
	}
	return items, rows.Err()
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanOrder(row rowScanner) (*Order, error) {
	o := &Order{}
	err := row.Scan(
		&o.ID, &o.OrderNumber, &o.Date, &o.Status,
		&o.Subtotal, &o.Tax, &o.Shipping, &o.Total,
		&o.Customer.Name, &o.Customer.Email, &o.Customer.Address)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("scan order: %w", err)
	}
	return o, nil
}
