package invoice

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/orderarchive/backend/internal/modules/order"
)

// Handler exposes invoice generation HTTP endpoints.
type Handler struct {
	orders     order.Service
	gen        *Generator
	dispatcher *Dispatcher
	log        *zap.SugaredLogger
}

func NewHandler(orders order.Service, gen *Generator, dispatcher *Dispatcher, log *zap.SugaredLogger) *Handler {
	return &Handler{orders: orders, gen: gen, dispatcher: dispatcher, log: log}
}

func (h *Handler) RegisterRoutes(r *chi.Mux) {
	r.Route("/api/v1/invoices", func(r chi.Router) {
		r.Get("/{order_id}", h.downloadInvoice)        // GET  /api/v1/invoices/{order_id}
		r.Get("/{order_id}/preview", h.previewInvoice) // GET  /api/v1/invoices/{order_id}/preview
		r.Get("/{order_id}/base64", h.invoiceBase64)   // GET  /api/v1/invoices/{order_id}/base64
		r.Post("/download-all", h.downloadAll)         // POST /api/v1/invoices/download-all
	})
}

// downloadInvoice serves the invoice as a file download.
func (h *Handler) downloadInvoice(w http.ResponseWriter, r *http.Request) {
	h.serveInvoice(w, r, "attachment")
}

// previewInvoice serves the invoice inline for the embedded viewer.
func (h *Handler) previewInvoice(w http.ResponseWriter, r *http.Request) {
	h.serveInvoice(w, r, "inline")
}

func (h *Handler) serveInvoice(w http.ResponseWriter, r *http.Request, disposition string) {
	o, ok := h.lookupOrder(w, r)
	if !ok {
		return
	}
	data, err := h.gen.PDFBytes(o)
	if err != nil {
		h.log.Errorw("invoice render failed", "order_number", o.OrderNumber, "err", err)
		respond(w, http.StatusInternalServerError, DownloadFailureNotification())
		return
	}
	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf("%s; filename=%q", disposition, h.gen.Filename(o)))
	w.WriteHeader(http.StatusOK)
	w.Write(data)
}

func (h *Handler) invoiceBase64(w http.ResponseWriter, r *http.Request) {
	o, ok := h.lookupOrder(w, r)
	if !ok {
		return
	}
	data, err := h.gen.PDFBase64(o)
	if err != nil {
		h.log.Errorw("invoice render failed", "order_number", o.OrderNumber, "err", err)
		respond(w, http.StatusInternalServerError, DownloadFailureNotification())
		return
	}
	respond(w, http.StatusOK, map[string]interface{}{
		"filename":     h.gen.Filename(o),
		"data":         data,
		"notification": DownloadedNotification(o.OrderNumber),
	})
}

func (h *Handler) lookupOrder(w http.ResponseWriter, r *http.Request) (*order.Order, bool) {
	id := chi.URLParam(r, "order_id")
	o, err := h.orders.Get(r.Context(), id)
	if err != nil {
		code := http.StatusInternalServerError
		if errors.Is(err, order.ErrNotFound) {
			code = http.StatusNotFound
		}
		respond(w, code, map[string]string{"error": err.Error()})
		return nil, false
	}
	return o, true
}

// downloadAllRequest selects which orders to include, using the same
// filter semantics as the history listing. An empty body selects all.
type downloadAllRequest struct {
	Search string `json:"search"`
	Status string `json:"status"`
}

type downloadAllResponse struct {
	Notification Notification `json:"notification"`
	Result       BatchResult  `json:"result"`
}

func (h *Handler) downloadAll(w http.ResponseWriter, r *http.Request) {
	var req downloadAllRequest
	if r.Body != nil && r.ContentLength != 0 {
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			respond(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
			return
		}
	}

	orders, err := h.orders.List(r.Context(), order.Filter{Search: req.Search, Status: req.Status})
	if err != nil {
		h.log.Errorw("bulk download setup failed", "err", err)
		respond(w, http.StatusInternalServerError, downloadAllResponse{
			Notification: BatchFailureNotification(),
		})
		return
	}

	res, err := h.dispatcher.DownloadAll(r.Context(), orders)
	switch {
	case errors.Is(err, ErrEmptySelection):
		respond(w, http.StatusUnprocessableEntity, downloadAllResponse{
			Notification: EmptySelectionNotification(),
		})
	case errors.Is(err, ErrBusy):
		respond(w, http.StatusConflict, downloadAllResponse{
			Notification: BatchFailureNotification(),
			Result:       res,
		})
	case err != nil:
		h.log.Errorw("bulk download aborted", "err", err,
			"success_count", res.SuccessCount, "error_count", res.ErrorCount)
		respond(w, http.StatusInternalServerError, downloadAllResponse{
			Notification: BatchFailureNotification(),
			Result:       res,
		})
	default:
		respond(w, http.StatusOK, downloadAllResponse{
			Notification: BatchNotification(res),
			Result:       res,
		})
	}
}

func respond(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}
