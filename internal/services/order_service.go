package services

import (
	"context"
	"log"
	"strings"
	"time"

	"food-ordering/internal/domain"
	rabbit "food-ordering/internal/infra/rabbitmq"
	"food-ordering/internal/repository"
)

// OrderLine is one cart line in a submission: which menu item and how many.
type OrderLine struct {
	MenuItemID uint64
	Quantity   int
}

// OrderSubmission carries everything a customer sends at checkout. Prices
// are never taken from the client; they are looked up and snapshotted here.
type OrderSubmission struct {
	CustomerName    string
	CustomerPhone   string
	CustomerEmail   string
	DeliveryAddress string
	OrderType       domain.OrderType
	PaymentMethod   string
	Notes           string
	Lines           []OrderLine
}

// OrderStatusView is the lightweight payload the customer status page polls.
type OrderStatusView struct {
	ID               uint64             `json:"id"`
	Status           domain.OrderStatus `json:"status"`
	EstimatedMinutes int                `json:"estimatedTime,omitempty"`
	CanCancel        bool               `json:"canCancel"`
	GraceDeadline    time.Time          `json:"gracePeriodEnd"`
	Total            float64            `json:"total"`
	OrderType        domain.OrderType   `json:"orderType"`
	CreatedAt        time.Time          `json:"createdAt"`
}

// OrderService owns the order lifecycle: creation with price snapshots and
// every status transition, validated against the state machine and applied
// with a compare-and-swap so racing workers cannot both win.
type OrderService struct {
	repo      repository.OrderRepository
	menuRepo  repository.MenuRepository
	publisher rabbit.PublisherInterface
	now       func() time.Time
}

func NewOrderService(r repository.OrderRepository, m repository.MenuRepository, pub rabbit.PublisherInterface) *OrderService {
	return &OrderService{
		repo:      r,
		menuRepo:  m,
		publisher: pub,
		now:       time.Now,
	}
}

func (s *OrderService) CreateOrder(ctx context.Context, sub OrderSubmission) (*domain.Order, error) {
	if strings.TrimSpace(sub.CustomerName) == "" {
		return nil, &domain.ValidationError{Field: "customerName", Reason: "must not be empty"}
	}
	if len(sub.Lines) == 0 {
		return nil, &domain.ValidationError{Field: "items", Reason: "order must contain at least one item"}
	}
	if sub.OrderType != domain.OrderTypeDelivery && sub.OrderType != domain.OrderTypeToGo {
		return nil, &domain.ValidationError{Field: "orderType", Reason: "must be delivery or to-go"}
	}
	if sub.OrderType == domain.OrderTypeDelivery && strings.TrimSpace(sub.DeliveryAddress) == "" {
		return nil, &domain.ValidationError{Field: "deliveryAddress", Reason: "required for delivery orders"}
	}

	payment := sub.PaymentMethod
	if payment == "" {
		payment = "cash"
	}

	order := &domain.Order{
		CustomerName:    sub.CustomerName,
		CustomerPhone:   sub.CustomerPhone,
		CustomerEmail:   sub.CustomerEmail,
		DeliveryAddress: sub.DeliveryAddress,
		OrderType:       sub.OrderType,
		Status:          domain.StatusNew,
		PaymentMethod:   payment,
		Notes:           sub.Notes,
		CreatedAt:       s.now(),
	}

	// Snapshot price and name per line; the order total is computed here
	// once and never recomputed, whatever happens to the menu afterwards.
	var total float64
	for _, line := range sub.Lines {
		if line.Quantity <= 0 {
			return nil, &domain.ValidationError{Field: "quantity", Reason: "must be a positive integer"}
		}
		item, err := s.menuRepo.FindItemByID(line.MenuItemID)
		if err != nil {
			return nil, err
		}
		if item == nil {
			return nil, domain.ErrItemNotFound
		}
		order.Items = append(order.Items, domain.OrderItem{
			MenuItemID:      item.ID,
			Quantity:        line.Quantity,
			PriceAtOrder:    item.Price,
			ItemNameAtOrder: item.Name,
		})
		total += item.Price * float64(line.Quantity)
	}
	order.Total = total

	if err := s.repo.Save(order); err != nil {
		return nil, err
	}

	go s.publish(context.Background(), "order.created", domain.OrderCreatedEvent{
		OrderID:   order.ID,
		OrderType: order.OrderType,
		Total:     order.Total,
		ItemCount: len(order.Items),
		CreatedAt: order.CreatedAt,
	})

	return order, nil
}

func (s *OrderService) GetOrderById(ctx context.Context, id uint64) (*domain.Order, error) {
	o, err := s.repo.FindByID(id)
	if err != nil {
		return nil, err
	}
	if o == nil {
		return nil, domain.ErrOrderNotFound
	}
	return o, nil
}

// ListOrders returns all orders newest-first, optionally filtered by status.
// This is the worker dashboard's poll read.
func (s *OrderService) ListOrders(ctx context.Context, status domain.OrderStatus) ([]domain.Order, error) {
	return s.repo.FindAll(status)
}

// GetOrderStatus computes the derived display fields for customer polling.
func (s *OrderService) GetOrderStatus(ctx context.Context, id uint64) (*OrderStatusView, error) {
	o, err := s.GetOrderById(ctx, id)
	if err != nil {
		return nil, err
	}
	return &OrderStatusView{
		ID:               o.ID,
		Status:           o.Status,
		EstimatedMinutes: o.EstimatedMinutes(),
		CanCancel:        o.CanCancel(s.now()),
		GraceDeadline:    o.GraceDeadline(),
		Total:            o.Total,
		OrderType:        o.OrderType,
		CreatedAt:        o.CreatedAt,
	}, nil
}

// TransitionOrder moves an order to the requested status. The edge is first
// checked against the state machine for the order's current status, then
// applied with a conditional write; if another worker got there first the
// write affects nothing and the caller gets InvalidTransitionError.
func (s *OrderService) TransitionOrder(ctx context.Context, id uint64, to domain.OrderStatus) (*domain.Order, error) {
	o, err := s.GetOrderById(ctx, id)
	if err != nil {
		return nil, err
	}

	if !domain.CanTransition(o.OrderType, o.Status, to) {
		return nil, &domain.InvalidTransitionError{From: o.Status, To: to}
	}
	// Worker-initiated cancellations take the same edge the customer uses
	// and obey the same grace window.
	if to == domain.StatusCancelled && !o.CanCancel(s.now()) {
		return nil, domain.ErrCancelWindowClosed
	}

	return s.applyTransition(ctx, o, to)
}

// CancelOrder is the customer-initiated cancellation, valid only while the
// order sits in new or accepted and the grace window has not elapsed.
func (s *OrderService) CancelOrder(ctx context.Context, id uint64) (*domain.Order, error) {
	o, err := s.GetOrderById(ctx, id)
	if err != nil {
		return nil, err
	}
	if !o.CanCancel(s.now()) {
		return nil, domain.ErrCancelWindowClosed
	}
	return s.applyTransition(ctx, o, domain.StatusCancelled)
}

func (s *OrderService) applyTransition(ctx context.Context, o *domain.Order, to domain.OrderStatus) (*domain.Order, error) {
	from := o.Status
	at := s.now()

	moved, err := s.repo.UpdateStatus(o.ID, from, to, at)
	if err != nil {
		return nil, err
	}
	if !moved {
		// Lost the race: the persisted status is no longer what we read.
		return nil, &domain.InvalidTransitionError{From: from, To: to}
	}

	o.Status = to
	o.UpdatedAt = at

	go s.publish(context.Background(), "order.status_changed", domain.OrderStatusChangedEvent{
		OrderID:   o.ID,
		From:      from,
		To:        to,
		ChangedAt: at,
	})

	return o, nil
}

func (s *OrderService) publish(ctx context.Context, pattern string, data any) {
	if err := s.publisher.Publish(ctx, pattern, data); err != nil {
		log.Printf("Failed to publish %s event: %v", pattern, err)
	}
}
