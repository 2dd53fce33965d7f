package client

import (
	"context"
	"log"
	"sync"
	"time"

	"food-ordering/internal/domain"
	"food-ordering/internal/services"
)

// OrderLister is the slice of APIClient the dashboard poller needs.
type OrderLister interface {
	ListOrders(ctx context.Context, status domain.OrderStatus) ([]domain.Order, error)
}

var _ OrderLister = (*APIClient)(nil)

const (
	// DefaultDashboardInterval matches the worker dashboard refresh cadence.
	DefaultDashboardInterval = 10 * time.Second
	// DefaultStatusInterval matches the customer status page refresh cadence.
	DefaultStatusInterval = 30 * time.Second
)

// DashboardPoller re-fetches the full order list for the worker dashboard on
// a fixed interval. A failed fetch keeps the previous snapshot on screen and
// records a non-fatal error; the next tick retries unconditionally.
type DashboardPoller struct {
	api      OrderLister
	interval time.Duration

	mu      sync.Mutex
	orders  []domain.Order
	lastErr error
}

func NewDashboardPoller(api OrderLister, interval time.Duration) *DashboardPoller {
	if interval <= 0 {
		interval = DefaultDashboardInterval
	}
	return &DashboardPoller{api: api, interval: interval}
}

// Run polls until ctx is cancelled, fetching once immediately. It owns its
// ticker, so tearing down the view only requires cancelling the context.
func (p *DashboardPoller) Run(ctx context.Context) {
	p.Refresh(ctx)

	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			p.Refresh(ctx)
		}
	}
}

// Refresh fetches immediately, as the dashboard's manual refresh button does.
func (p *DashboardPoller) Refresh(ctx context.Context) {
	orders, err := p.api.ListOrders(ctx, "")

	p.mu.Lock()
	defer p.mu.Unlock()
	if err != nil {
		log.Printf("Dashboard poll failed, keeping last snapshot: %v", err)
		p.lastErr = err
		return
	}
	p.orders = orders
	p.lastErr = nil
}

// Snapshot returns the last successfully fetched order list and whatever
// error the most recent poll produced.
func (p *DashboardPoller) Snapshot() ([]domain.Order, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]domain.Order, len(p.orders))
	copy(out, p.orders)
	return out, p.lastErr
}

// OrdersByStatus filters the current snapshot for one dashboard column.
func (p *DashboardPoller) OrdersByStatus(status domain.OrderStatus) []domain.Order {
	snapshot, _ := p.Snapshot()
	var out []domain.Order
	for _, o := range snapshot {
		if o.Status == status {
			out = append(out, o)
		}
	}
	return out
}

// StatusFetcher is the slice of APIClient the status watcher needs.
type StatusFetcher interface {
	GetOrderStatus(ctx context.Context, id uint64) (*services.OrderStatusView, error)
}

var _ StatusFetcher = (*APIClient)(nil)

// StatusWatcher follows a single order for the customer status page. The
// order status is re-fetched on the poll interval; the grace countdown ticks
// every second purely from the captured deadline, with no network call.
type StatusWatcher struct {
	api      StatusFetcher
	orderID  uint64
	interval time.Duration
	now      func() time.Time

	mu      sync.Mutex
	view    *services.OrderStatusView
	lastErr error
}

func NewStatusWatcher(api StatusFetcher, orderID uint64, interval time.Duration) *StatusWatcher {
	if interval <= 0 {
		interval = DefaultStatusInterval
	}
	return &StatusWatcher{api: api, orderID: orderID, interval: interval, now: time.Now}
}

// Run polls until ctx is cancelled, fetching once immediately.
func (w *StatusWatcher) Run(ctx context.Context) {
	w.poll(ctx)

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			w.poll(ctx)
		}
	}
}

func (w *StatusWatcher) poll(ctx context.Context) {
	view, err := w.api.GetOrderStatus(ctx, w.orderID)

	w.mu.Lock()
	defer w.mu.Unlock()
	if err != nil {
		log.Printf("Status poll for order %d failed, keeping last view: %v", w.orderID, err)
		w.lastErr = err
		return
	}
	w.view = view
	w.lastErr = nil
}

// Snapshot returns the last fetched status view, or nil before the first
// successful poll.
func (w *StatusWatcher) Snapshot() (*services.OrderStatusView, error) {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.view, w.lastErr
}

// GraceRemaining is the countdown the status page re-renders every second:
// callers are expected to invoke it on their own one-second tick, between
// server polls. It is computed locally from the captured deadline, never
// triggers a fetch, and clamps at zero.
func (w *StatusWatcher) GraceRemaining() time.Duration {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.view == nil {
		return 0
	}
	remaining := w.view.GraceDeadline.Sub(w.now())
	if remaining < 0 || !w.view.CanCancel {
		return 0
	}
	return remaining
}
