package client

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"food-ordering/internal/domain"
	"food-ordering/internal/services"

	"github.com/stretchr/testify/assert"
	"golang.org/x/sync/errgroup"
)

type fakeLister struct {
	mu        sync.Mutex
	responses []func() ([]domain.Order, error)
	calls     int
}

func (f *fakeLister) ListOrders(ctx context.Context, status domain.OrderStatus) ([]domain.Order, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	i := f.calls
	f.calls++
	if i >= len(f.responses) {
		i = len(f.responses) - 1
	}
	return f.responses[i]()
}

func (f *fakeLister) callCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls
}

func someOrders() []domain.Order {
	return []domain.Order{
		{ID: 2, CustomerName: "Bob", Status: domain.StatusNew, OrderType: domain.OrderTypeToGo},
		{ID: 1, CustomerName: "Alice", Status: domain.StatusAccepted, OrderType: domain.OrderTypeDelivery},
	}
}

func TestDashboardPoller_KeepsSnapshotOnFailure(t *testing.T) {
	lister := &fakeLister{responses: []func() ([]domain.Order, error){
		func() ([]domain.Order, error) { return someOrders(), nil },
		func() ([]domain.Order, error) { return nil, errors.New("backend unavailable") },
		func() ([]domain.Order, error) { return someOrders()[:1], nil },
	}}

	p := NewDashboardPoller(lister, time.Hour)

	p.Refresh(context.Background())
	orders, err := p.Snapshot()
	assert.NoError(t, err)
	assert.Len(t, orders, 2)

	// The failed poll surfaces its error but the list stays intact.
	p.Refresh(context.Background())
	orders, err = p.Snapshot()
	assert.Error(t, err)
	assert.Len(t, orders, 2)

	// The next successful poll replaces the snapshot and clears the error.
	p.Refresh(context.Background())
	orders, err = p.Snapshot()
	assert.NoError(t, err)
	assert.Len(t, orders, 1)
}

func TestDashboardPoller_PollsOnIntervalAndStops(t *testing.T) {
	lister := &fakeLister{responses: []func() ([]domain.Order, error){
		func() ([]domain.Order, error) { return someOrders(), nil },
	}}

	p := NewDashboardPoller(lister, 20*time.Millisecond)
	ctx, cancel := context.WithCancel(context.Background())

	var g errgroup.Group
	g.Go(func() error {
		p.Run(ctx)
		return nil
	})

	time.Sleep(90 * time.Millisecond)
	cancel()
	assert.NoError(t, g.Wait())

	// One immediate fetch plus several ticks.
	polled := lister.callCount()
	assert.GreaterOrEqual(t, polled, 3)

	// No further polls once the context is gone.
	time.Sleep(50 * time.Millisecond)
	assert.Equal(t, polled, lister.callCount())
}

func TestDashboardPoller_OrdersByStatus(t *testing.T) {
	lister := &fakeLister{responses: []func() ([]domain.Order, error){
		func() ([]domain.Order, error) { return someOrders(), nil },
	}}

	p := NewDashboardPoller(lister, time.Hour)
	p.Refresh(context.Background())

	newOrders := p.OrdersByStatus(domain.StatusNew)
	assert.Len(t, newOrders, 1)
	assert.Equal(t, uint64(2), newOrders[0].ID)
	assert.Empty(t, p.OrdersByStatus(domain.StatusCompleted))
}

type fakeStatusFetcher struct {
	mu    sync.Mutex
	view  *services.OrderStatusView
	err   error
	calls int
}

func (f *fakeStatusFetcher) GetOrderStatus(ctx context.Context, id uint64) (*services.OrderStatusView, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	v := *f.view
	return &v, nil
}

func (f *fakeStatusFetcher) set(view *services.OrderStatusView, err error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.view = view
	f.err = err
}

func TestStatusWatcher_PollAndFailureHandling(t *testing.T) {
	created := time.Now()
	fetcher := &fakeStatusFetcher{view: &services.OrderStatusView{
		ID:            1,
		Status:        domain.StatusNew,
		CanCancel:     true,
		GraceDeadline: created.Add(domain.CancelGraceWindow),
		CreatedAt:     created,
	}}

	w := NewStatusWatcher(fetcher, 1, time.Hour)
	w.poll(context.Background())

	view, err := w.Snapshot()
	assert.NoError(t, err)
	assert.Equal(t, domain.StatusNew, view.Status)

	// A transient failure keeps the displayed view.
	fetcher.set(nil, errors.New("network down"))
	w.poll(context.Background())
	view, err = w.Snapshot()
	assert.Error(t, err)
	assert.NotNil(t, view)
	assert.Equal(t, domain.StatusNew, view.Status)

	// Recovery replaces the view and clears the error.
	fetcher.set(&services.OrderStatusView{ID: 1, Status: domain.StatusAccepted, CreatedAt: created}, nil)
	w.poll(context.Background())
	view, err = w.Snapshot()
	assert.NoError(t, err)
	assert.Equal(t, domain.StatusAccepted, view.Status)
}

// The countdown comes from the captured deadline alone; advancing the local
// clock moves it without any network fetch.
func TestStatusWatcher_GraceCountdownIsLocal(t *testing.T) {
	created := time.Now()
	fetcher := &fakeStatusFetcher{view: &services.OrderStatusView{
		ID:            1,
		Status:        domain.StatusNew,
		CanCancel:     true,
		GraceDeadline: created.Add(domain.CancelGraceWindow),
		CreatedAt:     created,
	}}

	w := NewStatusWatcher(fetcher, 1, time.Hour)
	w.poll(context.Background())
	fetches := fetcher.calls

	now := created
	w.now = func() time.Time { return now }

	assert.Equal(t, domain.CancelGraceWindow, w.GraceRemaining())

	now = created.Add(2 * time.Minute)
	assert.Equal(t, 3*time.Minute, w.GraceRemaining())

	// Past the deadline the countdown clamps at zero.
	now = created.Add(10 * time.Minute)
	assert.Equal(t, time.Duration(0), w.GraceRemaining())

	assert.Equal(t, fetches, fetcher.calls)
}

func TestStatusWatcher_RunStopsOnCancel(t *testing.T) {
	created := time.Now()
	fetcher := &fakeStatusFetcher{view: &services.OrderStatusView{
		ID: 1, Status: domain.StatusNew, CreatedAt: created,
	}}

	w := NewStatusWatcher(fetcher, 1, 20*time.Millisecond)
	ctx, cancel := context.WithCancel(context.Background())

	var g errgroup.Group
	g.Go(func() error {
		w.Run(ctx)
		return nil
	})

	time.Sleep(70 * time.Millisecond)
	cancel()
	assert.NoError(t, g.Wait())

	fetcher.mu.Lock()
	polled := fetcher.calls
	fetcher.mu.Unlock()
	assert.GreaterOrEqual(t, polled, 2)
}
