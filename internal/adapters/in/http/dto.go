package http

// Request and response bodies for the REST API. Prices travel as decimal
// strings so no precision is lost on the wire.

// ErrorResponse is the common error body.
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// NewCoffeeItem is the body for POST /api/v1/items.
type NewCoffeeItem struct {
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	CategoryID  string  `json:"category_id"`
	ImageURL    string  `json:"image_url"`
}

// CoffeeItemCreated reports the identifier assigned to a new menu item.
type CoffeeItemCreated struct {
	ID string `json:"id"`
}

// UpdateCoffeeItem is the body for PUT /api/v1/items/:id.
type UpdateCoffeeItem struct {
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
}

// ItemAvailability is the body for PATCH /api/v1/items/:id/availability.
type ItemAvailability struct {
	IsAvailable bool `json:"is_available"`
}

// NewBarista is the body for POST /api/v1/baristas.
type NewBarista struct {
	Name string `json:"name"`
}

// BaristaCreated reports the identifier assigned to a new barista.
type BaristaCreated struct {
	ID string `json:"id"`
}

// NewOrder is the body for POST /api/v1/orders. ID is optional; when the
// client supplies one, retrying the same request is idempotent.
type NewOrder struct {
	ID         string         `json:"id,omitempty"`
	CustomerID string         `json:"customer_id"`
	Items      []NewOrderItem `json:"items"`
	Notes      string         `json:"notes,omitempty"`
}

// NewOrderItem is one requested line of a new order.
type NewOrderItem struct {
	CoffeeItemID        string `json:"coffee_item_id"`
	Quantity            int    `json:"quantity"`
	SpecialInstructions string `json:"special_instructions,omitempty"`
}

// OrderCreated reports the identifier of a placed order.
type OrderCreated struct {
	ID string `json:"id"`
}

// CancelOrder is the body for POST /api/v1/orders/:id/cancel.
type CancelOrder struct {
	Reason string `json:"reason,omitempty"`
}

// MenuItem is one entry of GET /api/v1/items.
type MenuItem struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Price       string `json:"price"`
	ImageURL    string `json:"image_url,omitempty"`
}

// ActiveOrder is one entry of GET /api/v1/orders/active.
type ActiveOrder struct {
	ID         string  `json:"id"`
	CustomerID string  `json:"customer_id"`
	BaristaID  *string `json:"barista_id,omitempty"`
	Status     string  `json:"status"`
	TotalPrice string  `json:"total_price"`
	OrderDate  string  `json:"order_date"`
	ItemCount  int     `json:"item_count"`
}
