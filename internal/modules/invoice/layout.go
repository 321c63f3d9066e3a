package invoice

import (
	"fmt"
	"strconv"
	"time"

	"github.com/orderarchive/backend/internal/modules/order"
)

// Page geometry, in millimeters on a portrait A4 page. All text is
// placed at fixed coordinates; there is no wrapping and no pagination.
const (
	leftMargin = 20.0
	rightEdge  = 190.0

	colQty   = 120.0
	colPrice = 140.0
	colTotal = 170.0

	itemLineHeight = 8.0
	footerY        = 250.0
)

// maxItemNameLen is the longest item name rendered as-is; anything
// longer is cut to this length with a trailing ellipsis.
const maxItemNameLen = 30

// maxTableItems is roughly how many item rows clear the totals block
// and footer on a single page. Longer orders overflow the page bounds
// silently; the layout stays single-page by design.
const maxTableItems = 10

// formatDate renders a calendar date long-form, e.g. "January 15, 2024".
func formatDate(t time.Time) string {
	return t.Format("January 2, 2006")
}

// formatCurrency renders an amount as "$" followed by exactly two
// decimal digits.
func formatCurrency(amount float64) string {
	return fmt.Sprintf("$%.2f", amount)
}

// truncateName shortens item names for the fixed-width table column.
func truncateName(name string) string {
	r := []rune(name)
	if len(r) <= maxItemNameLen {
		return name
	}
	return string(r[:maxItemNameLen]) + "..."
}

// tableRow is one fully formatted line of the invoice item table.
type tableRow struct {
	name  string
	qty   string
	price string
	total string
}

// itemRows formats the item table in input order. Line totals are
// computed here from quantity and unit price; the order's stored
// totals block is never derived from these.
func itemRows(o *order.Order) []tableRow {
	rows := make([]tableRow, 0, len(o.Items))
	for _, item := range o.Items {
		rows = append(rows, tableRow{
			name:  truncateName(item.Name),
			qty:   strconv.Itoa(item.Quantity),
			price: formatCurrency(item.Price),
			total: formatCurrency(float64(item.Quantity) * item.Price),
		})
	}
	return rows
}
