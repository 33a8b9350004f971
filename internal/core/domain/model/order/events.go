package order

// Domain events raised by the order aggregate. Payload fields are plain
// strings and ints so events serialize to JSON without domain types leaking
// into consumers.

// OrderCreatedEvent is raised once when an order is placed.
type OrderCreatedEvent struct {
	OrderID    string `json:"order_id"`
	CustomerID string `json:"customer_id"`
	TotalPrice string `json:"total_price"`
	ItemCount  int    `json:"item_count"`
}

func (e OrderCreatedEvent) EventName() string { return "OrderCreated" }

// OrderStatusChangedEvent is raised on every table-checked status transition.
type OrderStatusChangedEvent struct {
	OrderID  string `json:"order_id"`
	Previous string `json:"previous"`
	New      string `json:"new"`
}

func (e OrderStatusChangedEvent) EventName() string { return "OrderStatusChanged" }

// OrderCompletedEvent is raised in addition to OrderStatusChangedEvent when
// the order reaches Completed.
type OrderCompletedEvent struct {
	OrderID    string `json:"order_id"`
	CustomerID string `json:"customer_id"`
	TotalPrice string `json:"total_price"`
}

func (e OrderCompletedEvent) EventName() string { return "OrderCompleted" }

// OrderCancelledEvent is raised when an order is cancelled. Cancellation does
// not additionally raise OrderStatusChangedEvent.
type OrderCancelledEvent struct {
	OrderID string `json:"order_id"`
	Reason  string `json:"reason"`
}

func (e OrderCancelledEvent) EventName() string { return "OrderCancelled" }
