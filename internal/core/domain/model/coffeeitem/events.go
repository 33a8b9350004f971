package coffeeitem

// CoffeeItemCreatedEvent is raised once when a menu item is created.
type CoffeeItemCreatedEvent struct {
	ItemID string `json:"item_id"`
	Name   string `json:"name"`
	Price  string `json:"price"`
}

func (e CoffeeItemCreatedEvent) EventName() string { return "CoffeeItemCreated" }

// CoffeeItemPriceChangedEvent is raised when the unit price actually changes,
// carrying both the old and the new price.
type CoffeeItemPriceChangedEvent struct {
	ItemID   string `json:"item_id"`
	OldPrice string `json:"old_price"`
	NewPrice string `json:"new_price"`
}

func (e CoffeeItemPriceChangedEvent) EventName() string { return "CoffeeItemPriceChanged" }

// CoffeeItemAvailabilityChangedEvent is raised when availability flips.
type CoffeeItemAvailabilityChangedEvent struct {
	ItemID      string `json:"item_id"`
	IsAvailable bool   `json:"is_available"`
}

func (e CoffeeItemAvailabilityChangedEvent) EventName() string { return "CoffeeItemAvailabilityChanged" }
