package invoice

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/orderarchive/backend/internal/modules/order"
)

func newTestServer(t *testing.T) (*httptest.Server, string) {
	t.Helper()

	downloadDir := t.TempDir()
	gen := NewGenerator(downloadDir, "support@orderarchive.com")
	gen.now = testClock

	log := zap.NewNop().Sugar()
	orders := order.NewService(order.NewMemoryRepository())
	dispatcher := NewDispatcher(gen, 0, log)

	router := chi.NewRouter()
	order.NewHandler(orders).RegisterRoutes(router)
	NewHandler(orders, gen, dispatcher, log).RegisterRoutes(router)

	srv := httptest.NewServer(router)
	t.Cleanup(srv.Close)
	return srv, downloadDir
}

func listOrders(t *testing.T, srv *httptest.Server, query string) []*order.Order {
	t.Helper()
	resp, err := http.Get(srv.URL + "/api/v1/orders" + query)
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var out []*order.Order
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return out
}

func TestHandler_ListAndFilter(t *testing.T) {
	srv, _ := newTestServer(t)

	all := listOrders(t, srv, "")
	assert.Len(t, all, 4)

	filtered := listOrders(t, srv, "?search=headphones")
	require.Len(t, filtered, 1)
	assert.Equal(t, "ORD-2024-001", filtered[0].OrderNumber)

	shipped := listOrders(t, srv, "?status=shipped")
	require.Len(t, shipped, 1)
	assert.Equal(t, "ORD-2024-002", shipped[0].OrderNumber)

	resp, err := http.Get(srv.URL + "/api/v1/orders?status=bogus")
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestHandler_DownloadInvoice(t *testing.T) {
	srv, _ := newTestServer(t)
	target := listOrders(t, srv, "?search=ORD-2024-001")[0]

	resp, err := http.Get(srv.URL + "/api/v1/invoices/" + target.ID.String())
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "application/pdf", resp.Header.Get("Content-Type"))
	assert.Contains(t, resp.Header.Get("Content-Disposition"), "attachment")
	assert.Contains(t, resp.Header.Get("Content-Disposition"), "invoice-ORD-2024-001-2024-03-05.pdf")
}

func TestHandler_PreviewInvoice(t *testing.T) {
	srv, _ := newTestServer(t)
	target := listOrders(t, srv, "?search=ORD-2024-002")[0]

	resp, err := http.Get(srv.URL + "/api/v1/invoices/" + target.ID.String() + "/preview")
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "application/pdf", resp.Header.Get("Content-Type"))
	assert.Contains(t, resp.Header.Get("Content-Disposition"), "inline")
}

func TestHandler_InvoiceBase64(t *testing.T) {
	srv, _ := newTestServer(t)
	target := listOrders(t, srv, "?search=ORD-2024-003")[0]

	resp, err := http.Get(srv.URL + "/api/v1/invoices/" + target.ID.String() + "/base64")
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body struct {
		Filename     string       `json:"filename"`
		Data         string       `json:"data"`
		Notification Notification `json:"notification"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "invoice-ORD-2024-003-2024-03-05.pdf", body.Filename)
	assert.True(t, strings.HasPrefix(body.Data, "data:application/pdf;base64,"))
	assert.Equal(t, "Invoice Downloaded", body.Notification.Title)
	assert.Contains(t, body.Notification.Description, "ORD-2024-003")
}

func TestHandler_InvoiceUnknownOrder(t *testing.T) {
	srv, _ := newTestServer(t)

	resp, err := http.Get(srv.URL + "/api/v1/invoices/" + uuid.NewString())
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestHandler_DownloadAll(t *testing.T) {
	srv, downloadDir := newTestServer(t)

	resp, err := http.Post(srv.URL+"/api/v1/invoices/download-all", "application/json",
		strings.NewReader(`{}`))
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body downloadAllResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, 4, body.Result.SuccessCount)
	assert.Equal(t, 0, body.Result.ErrorCount)
	assert.Equal(t, "Bulk Download Complete", body.Notification.Title)

	entries, err := os.ReadDir(downloadDir)
	require.NoError(t, err)
	assert.Len(t, entries, 4, "one PDF written per order")
}

func TestHandler_DownloadAll_Filtered(t *testing.T) {
	srv, downloadDir := newTestServer(t)

	resp, err := http.Post(srv.URL+"/api/v1/invoices/download-all", "application/json",
		strings.NewReader(`{"status":"pending"}`))
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body downloadAllResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, 1, body.Result.SuccessCount)

	entries, err := os.ReadDir(downloadDir)
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}

func TestHandler_DownloadAll_EmptySelection(t *testing.T) {
	srv, downloadDir := newTestServer(t)

	// No seeded order is cancelled, so this filter selects nothing.
	resp, err := http.Post(srv.URL+"/api/v1/invoices/download-all", "application/json",
		strings.NewReader(`{"status":"cancelled"}`))
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)

	var body downloadAllResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "No Orders to Download", body.Notification.Title)

	entries, err := os.ReadDir(downloadDir)
	require.NoError(t, err)
	assert.Empty(t, entries, "no renders for an empty selection")
}
