package invoice

import (
	"context"
	"errors"
	"sync/atomic"
	"time"

	"go.uber.org/zap"

	"github.com/orderarchive/backend/internal/modules/order"
)

var (
	// ErrEmptySelection is returned when a bulk download is requested
	// with no orders selected; nothing is rendered.
	ErrEmptySelection = errors.New("no orders selected")

	// ErrBusy is returned when a bulk download is already running.
	ErrBusy = errors.New("bulk download already in progress")
)

// Downloader is the single-order download operation the dispatcher drives.
type Downloader interface {
	WritePDF(o *order.Order) (string, error)
}

// BatchResult aggregates the outcome of a bulk download run.
type BatchResult struct {
	SuccessCount int `json:"success_count"`
	ErrorCount   int `json:"error_count"`
}

// Total is the number of orders the batch attempted.
func (r BatchResult) Total() int { return r.SuccessCount + r.ErrorCount }

// Dispatcher runs bulk invoice downloads: strictly sequential, with a
// fixed pause between items so back-to-back file generation does not
// overwhelm the download sink. One run at a time.
type Dispatcher struct {
	gen   Downloader
	delay time.Duration
	log   *zap.SugaredLogger
	busy  atomic.Bool
}

// NewDispatcher creates a dispatcher. delay is the pause before each
// item; zero disables the throttle.
func NewDispatcher(gen Downloader, delay time.Duration, log *zap.SugaredLogger) *Dispatcher {
	return &Dispatcher{gen: gen, delay: delay, log: log}
}

// InProgress reports whether a bulk download is currently running.
func (d *Dispatcher) InProgress() bool { return d.busy.Load() }

// DownloadAll generates one invoice per order, in input order. A single
// order's failure is logged and counted, never aborting the batch.
// Cancelling the context stops between items and returns the partial
// result alongside the context's error.
func (d *Dispatcher) DownloadAll(ctx context.Context, orders []*order.Order) (BatchResult, error) {
	var res BatchResult
	if len(orders) == 0 {
		return res, ErrEmptySelection
	}
	if !d.busy.CompareAndSwap(false, true) {
		return res, ErrBusy
	}
	defer d.busy.Store(false)

	for _, o := range orders {
		if err := d.pause(ctx); err != nil {
			return res, err
		}
		if _, err := d.gen.WritePDF(o); err != nil {
			d.log.Warnw("invoice download failed", "order_number", o.OrderNumber, "err", err)
			res.ErrorCount++
			continue
		}
		res.SuccessCount++
	}
	return res, nil
}

func (d *Dispatcher) pause(ctx context.Context) error {
	if d.delay <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(d.delay)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
