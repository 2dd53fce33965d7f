package domain

import "time"

type OrderStatus string

const (
	StatusNew            OrderStatus = "new"
	StatusAccepted       OrderStatus = "accepted"
	StatusRejected       OrderStatus = "rejected"
	StatusPreparing      OrderStatus = "preparing"
	StatusReady          OrderStatus = "ready"
	StatusOutForDelivery OrderStatus = "out_for_delivery"
	StatusCompleted      OrderStatus = "completed"
	StatusCancelled      OrderStatus = "cancelled"
)

type OrderType string

const (
	OrderTypeDelivery OrderType = "delivery"
	OrderTypeToGo     OrderType = "to-go"
)

// CancelGraceWindow is how long after creation a customer may still cancel.
const CancelGraceWindow = 5 * time.Minute

type Order struct {
	ID              uint64      `json:"id" gorm:"primaryKey;autoIncrement"`
	CustomerName    string      `json:"customerName" gorm:"not null"`
	CustomerPhone   string      `json:"customerPhone"`
	CustomerEmail   string      `json:"customerEmail"`
	DeliveryAddress string      `json:"deliveryAddress"`
	OrderType       OrderType   `json:"orderType" gorm:"type:varchar(16);default:'to-go';index"`
	Total           float64     `json:"total" gorm:"not null"`
	Status          OrderStatus `json:"status" gorm:"type:varchar(24);default:'new';index"`
	PaymentMethod   string      `json:"paymentMethod" gorm:"default:'cash'"`
	Notes           string      `json:"notes"`
	Items           []OrderItem `json:"items" gorm:"foreignKey:OrderID"`
	CreatedAt       time.Time   `json:"createdAt" gorm:"autoCreateTime"`
	UpdatedAt       time.Time   `json:"updatedAt" gorm:"autoUpdateTime"`
}

// OrderItem snapshots the menu item's price and name at submission time, so
// later menu edits never change what a historical order says it cost.
type OrderItem struct {
	ID              uint64  `json:"id" gorm:"primaryKey;autoIncrement"`
	OrderID         uint64  `json:"orderId" gorm:"not null;index"`
	MenuItemID      uint64  `json:"menuItemId" gorm:"not null"`
	Quantity        int     `json:"quantity" gorm:"not null"`
	PriceAtOrder    float64 `json:"priceAtOrder" gorm:"not null"`
	ItemNameAtOrder string  `json:"itemNameAtOrder" gorm:"not null"`
}

func (s OrderStatus) Terminal() bool {
	return s == StatusRejected || s == StatusCancelled || s == StatusCompleted
}

// transitions is the allowed edge set of the order state machine. A non-empty
// guard restricts the edge to one order type: to-go orders may skip preparing
// and go accepted->ready, delivery orders must pass through preparing and
// out_for_delivery before completion.
var transitions = map[OrderStatus][]struct {
	to    OrderStatus
	guard OrderType
}{
	StatusNew: {
		{to: StatusAccepted},
		{to: StatusRejected},
		{to: StatusCancelled},
	},
	StatusAccepted: {
		{to: StatusPreparing},
		{to: StatusReady, guard: OrderTypeToGo},
		{to: StatusCancelled},
	},
	StatusPreparing: {
		{to: StatusReady},
	},
	StatusReady: {
		{to: StatusOutForDelivery, guard: OrderTypeDelivery},
		{to: StatusCompleted, guard: OrderTypeToGo},
	},
	StatusOutForDelivery: {
		{to: StatusCompleted, guard: OrderTypeDelivery},
	},
}

// CanTransition reports whether an order of the given type may move from one
// status to another. Cancellation edges listed here are additionally subject
// to the grace window, which CanCancel checks.
func CanTransition(typ OrderType, from, to OrderStatus) bool {
	for _, edge := range transitions[from] {
		if edge.to != to {
			continue
		}
		if edge.guard != "" && edge.guard != typ {
			continue
		}
		return true
	}
	return false
}

// CanCancel reports whether a customer cancellation is still permitted:
// the order must not have progressed past accepted and the grace window
// since creation must not have elapsed.
func (o *Order) CanCancel(now time.Time) bool {
	if o.Status != StatusNew && o.Status != StatusAccepted {
		return false
	}
	return now.Sub(o.CreatedAt) <= CancelGraceWindow
}

// GraceDeadline is the instant the cancellation window closes.
func (o *Order) GraceDeadline() time.Time {
	return o.CreatedAt.Add(CancelGraceWindow)
}

// EstimatedMinutes returns the advisory time-remaining shown to customers,
// or 0 when the current status carries no estimate.
func (o *Order) EstimatedMinutes() int {
	switch o.Status {
	case StatusAccepted, StatusPreparing:
		return 25
	case StatusReady:
		return 5
	default:
		return 0
	}
}
