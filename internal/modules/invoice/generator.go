package invoice

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/jung-kurt/gofpdf"

	"github.com/orderarchive/backend/internal/modules/order"
)

// RenderError wraps a failure in the page-drawing layer for one order.
type RenderError struct {
	OrderNumber string
	Cause       error
}

func (e *RenderError) Error() string {
	return fmt.Sprintf("render invoice for %s: %v", e.OrderNumber, e.Cause)
}

func (e *RenderError) Unwrap() error { return e.Cause }

// Generator renders single-page PDF invoices for orders. Every output
// call lays out a fresh page, so a Generator is safe for concurrent
// use: no page buffer survives between calls.
type Generator struct {
	downloadDir  string
	supportEmail string
	now          func() time.Time
}

// NewGenerator creates an invoice generator. downloadDir is where
// WritePDF saves files; supportEmail is printed in the footer.
func NewGenerator(downloadDir, supportEmail string) *Generator {
	return &Generator{
		downloadDir:  downloadDir,
		supportEmail: supportEmail,
		now:          time.Now,
	}
}

// Filename is the download name for an order's invoice:
// invoice-<orderNumber>-<YYYY-MM-DD of the generation day>.pdf
func (g *Generator) Filename(o *order.Order) string {
	return fmt.Sprintf("invoice-%s-%s.pdf", o.OrderNumber, g.now().Format("2006-01-02"))
}

// WritePDF renders the invoice and saves it under the download
// directory, returning the written path.
func (g *Generator) WritePDF(o *order.Order) (string, error) {
	pdf, err := g.render(o)
	if err != nil {
		return "", err
	}
	if err := os.MkdirAll(g.downloadDir, 0o755); err != nil {
		return "", fmt.Errorf("create download dir: %w", err)
	}
	path := filepath.Join(g.downloadDir, g.Filename(o))
	if err := pdf.OutputFileAndClose(path); err != nil {
		return "", &RenderError{OrderNumber: o.OrderNumber, Cause: err}
	}
	return path, nil
}

// PDFBytes renders the invoice and returns the document as an
// in-memory blob, for inline display. The caller owns the returned
// slice; nothing is retained between calls.
func (g *Generator) PDFBytes(o *order.Order) ([]byte, error) {
	pdf, err := g.render(o)
	if err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, &RenderError{OrderNumber: o.OrderNumber, Cause: err}
	}
	return buf.Bytes(), nil
}

// PDFBase64 renders the invoice and returns it as a self-contained
// data URI, suitable for embedding without a binary channel.
func (g *Generator) PDFBase64(o *order.Order) (string, error) {
	data, err := g.PDFBytes(o)
	if err != nil {
		return "", err
	}
	return "data:application/pdf;base64," + base64.StdEncoding.EncodeToString(data), nil
}

// render lays out the full invoice on a fresh single page. The invoice
// header stamps the generation day as the invoice date; the order's own
// placement date renders on the second metadata row.
func (g *Generator) render(o *order.Order) (*gofpdf.Fpdf, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("Invoice "+o.OrderNumber, true)
	pdf.SetCreationDate(g.now())
	pdf.AddPage()
	y := 20.0

	// Company header
	pdf.SetFont("Helvetica", "B", 24)
	pdf.Text(leftMargin, y, "Order Archive Invoice")
	y += 15

	// Invoice details
	pdf.SetFont("Helvetica", "", 12)
	pdf.Text(leftMargin, y, "Invoice Date: "+formatDate(g.now()))
	pdf.Text(colQty, y, "Order Number: "+o.OrderNumber)
	y += 10

	pdf.Text(leftMargin, y, "Order Date: "+formatDate(o.Date))
	pdf.Text(colQty, y, "Status: "+strings.ToUpper(string(o.Status)))
	y += 20

	// Customer information
	pdf.SetFont("Helvetica", "B", 14)
	pdf.Text(leftMargin, y, "Bill To:")
	y += 8

	pdf.SetFont("Helvetica", "", 12)
	pdf.Text(leftMargin, y, o.Customer.Name)
	y += 6
	pdf.Text(leftMargin, y, o.Customer.Email)
	y += 6
	pdf.Text(leftMargin, y, o.Customer.Address)
	y += 20

	// Items table header
	pdf.SetFont("Helvetica", "B", 12)
	pdf.Text(leftMargin, y, "Item")
	pdf.Text(colQty, y, "Qty")
	pdf.Text(colPrice, y, "Price")
	pdf.Text(colTotal, y, "Total")
	y += 5
	pdf.Line(leftMargin, y, rightEdge, y)
	y += 10

	// Items, one row each, in input order
	pdf.SetFont("Helvetica", "", 12)
	for _, row := range itemRows(o) {
		pdf.Text(leftMargin, y, row.name)
		pdf.Text(colQty, y, row.qty)
		pdf.Text(colPrice, y, row.price)
		pdf.Text(colTotal, y, row.total)
		y += itemLineHeight
	}
	y += 10

	// Totals block: the order's stored amounts, never recomputed
	pdf.Line(colQty, y, rightEdge, y)
	y += 8
	pdf.Text(colQty, y, "Subtotal:")
	pdf.Text(colTotal, y, formatCurrency(o.Subtotal))
	y += 8
	pdf.Text(colQty, y, "Tax:")
	pdf.Text(colTotal, y, formatCurrency(o.Tax))
	y += 8
	pdf.Text(colQty, y, "Shipping:")
	pdf.Text(colTotal, y, formatCurrency(o.Shipping))
	y += 10

	pdf.Line(colQty, y, rightEdge, y)
	y += 8
	pdf.SetFont("Helvetica", "B", 14)
	pdf.Text(colQty, y, "Total:")
	pdf.Text(colTotal, y, formatCurrency(o.Total))

	// Footer at a fixed position near the page bottom
	pdf.SetFont("Helvetica", "", 10)
	pdf.Text(leftMargin, footerY, "Thank you for your business!")
	pdf.Text(leftMargin, footerY+6, "For questions about this invoice, please contact "+g.supportEmail)

	// Page border, drawn last
	pdf.Rect(10, 10, 190, 277, "D")

	if err := pdf.Error(); err != nil {
		return nil, &RenderError{OrderNumber: o.OrderNumber, Cause: err}
	}
	return pdf, nil
}
