// Package http exposes the application use cases over a REST API.
//
// The server translates HTTP requests into commands and queries, never
// touching the domain model directly. Domain errors map onto status codes
// in one place so every route reports failures the same way.
package http

import (
	"errors"
	"net/http"
	"time"

	"coffeeshop/internal/core/application/usecases/commands"
	"coffeeshop/internal/core/application/usecases/queries"
	"coffeeshop/internal/core/domain/model/kernel"
	"coffeeshop/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	createCoffeeItemHandler commands.CreateCoffeeItemCommandHandler
	updateCoffeeItemHandler commands.UpdateCoffeeItemCommandHandler
	setAvailabilityHandler  commands.SetCoffeeItemAvailabilityCommandHandler
	createBaristaHandler    commands.CreateBaristaCommandHandler
	createOrderHandler      commands.CreateOrderCommandHandler
	markOrderReadyHandler   commands.MarkOrderReadyCommandHandler
	completeOrderHandler    commands.CompleteOrderCommandHandler
	cancelOrderHandler      commands.CancelOrderCommandHandler

	// Query handlers
	getMenuHandler         queries.GetMenuQueryHandler
	getActiveOrdersHandler queries.GetActiveOrdersQueryHandler
}

// NewServer creates an HTTP server with the required command and query handlers.
func NewServer(
	createCoffeeItemHandler commands.CreateCoffeeItemCommandHandler,
	updateCoffeeItemHandler commands.UpdateCoffeeItemCommandHandler,
	setAvailabilityHandler commands.SetCoffeeItemAvailabilityCommandHandler,
	createBaristaHandler commands.CreateBaristaCommandHandler,
	createOrderHandler commands.CreateOrderCommandHandler,
	markOrderReadyHandler commands.MarkOrderReadyCommandHandler,
	completeOrderHandler commands.CompleteOrderCommandHandler,
	cancelOrderHandler commands.CancelOrderCommandHandler,
	getMenuHandler queries.GetMenuQueryHandler,
	getActiveOrdersHandler queries.GetActiveOrdersQueryHandler,
) *Server {
	return &Server{
		createCoffeeItemHandler: createCoffeeItemHandler,
		updateCoffeeItemHandler: updateCoffeeItemHandler,
		setAvailabilityHandler:  setAvailabilityHandler,
		createBaristaHandler:    createBaristaHandler,
		createOrderHandler:      createOrderHandler,
		markOrderReadyHandler:   markOrderReadyHandler,
		completeOrderHandler:    completeOrderHandler,
		cancelOrderHandler:      cancelOrderHandler,
		getMenuHandler:          getMenuHandler,
		getActiveOrdersHandler:  getActiveOrdersHandler,
	}
}

// RegisterRoutes mounts every API route on the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api/v1")

	api.POST("/items", s.CreateCoffeeItem)
	api.GET("/items", s.GetMenu)
	api.PUT("/items/:id", s.UpdateCoffeeItem)
	api.PATCH("/items/:id/availability", s.SetCoffeeItemAvailability)

	api.POST("/baristas", s.CreateBarista)

	api.POST("/orders", s.CreateOrder)
	api.GET("/orders/active", s.GetActiveOrders)
	api.POST("/orders/:id/ready", s.MarkOrderReady)
	api.POST("/orders/:id/complete", s.CompleteOrder)
	api.POST("/orders/:id/cancel", s.CancelOrder)

	e.GET("/health", s.Health)
}

// CreateCoffeeItem handles POST /api/v1/items - adds a new item to the menu.
func (s *Server) CreateCoffeeItem(ctx echo.Context) error {
	var newItem NewCoffeeItem
	if err := ctx.Bind(&newItem); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	price, err := kernel.MoneyFromFloat(newItem.Price)
	if err != nil {
		return badRequest(ctx, "Invalid price: "+err.Error())
	}

	categoryID, err := kernel.UUIDFromString(newItem.CategoryID)
	if err != nil {
		return badRequest(ctx, "Invalid category id")
	}

	cmd, err := commands.NewCreateCoffeeItemCommand(
		newItem.Name, newItem.Description, price, categoryID, newItem.ImageURL)
	if err != nil {
		return badRequest(ctx, "Invalid item data: "+err.Error())
	}

	if handleErr := s.createCoffeeItemHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return domainError(ctx, handleErr)
	}

	return ctx.JSON(http.StatusCreated, CoffeeItemCreated{ID: cmd.ItemID().String()})
}

// UpdateCoffeeItem handles PUT /api/v1/items/:id - changes name, description
// and price of an existing item.
func (s *Server) UpdateCoffeeItem(ctx echo.Context) error {
	itemID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid item id")
	}

	var update UpdateCoffeeItem
	if err = ctx.Bind(&update); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	price, err := kernel.MoneyFromFloat(update.Price)
	if err != nil {
		return badRequest(ctx, "Invalid price: "+err.Error())
	}

	cmd, err := commands.NewUpdateCoffeeItemCommand(itemID, update.Name, update.Description, price)
	if err != nil {
		return badRequest(ctx, "Invalid item data: "+err.Error())
	}

	if handleErr := s.updateCoffeeItemHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return domainError(ctx, handleErr)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// SetCoffeeItemAvailability handles PATCH /api/v1/items/:id/availability -
// puts an item on or off the menu.
func (s *Server) SetCoffeeItemAvailability(ctx echo.Context) error {
	itemID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid item id")
	}

	var availability ItemAvailability
	if err = ctx.Bind(&availability); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewSetCoffeeItemAvailabilityCommand(itemID, availability.IsAvailable)
	if err != nil {
		return badRequest(ctx, "Invalid item data: "+err.Error())
	}

	if handleErr := s.setAvailabilityHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return domainError(ctx, handleErr)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// GetMenu handles GET /api/v1/items - retrieves all available items.
func (s *Server) GetMenu(ctx echo.Context) error {
	query := queries.NewGetMenuQuery()

	menu, err := s.getMenuHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return internalError(ctx, "Failed to retrieve menu")
	}

	response := make([]MenuItem, len(menu))
	for i, item := range menu {
		response[i] = MenuItem{
			ID:          item.ID.String(),
			Name:        item.Name,
			Description: item.Description,
			Price:       item.Price.Amount().StringFixed(2),
			ImageURL:    item.ImageURL,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// CreateBarista handles POST /api/v1/baristas - registers a new barista.
func (s *Server) CreateBarista(ctx echo.Context) error {
	var newBarista NewBarista
	if err := ctx.Bind(&newBarista); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewCreateBaristaCommand(newBarista.Name)
	if err != nil {
		return badRequest(ctx, "Invalid barista data: "+err.Error())
	}

	if handleErr := s.createBaristaHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return domainError(ctx, handleErr)
	}

	return ctx.JSON(http.StatusCreated, BaristaCreated{ID: cmd.BaristaID().String()})
}

// CreateOrder handles POST /api/v1/orders - places a new order.
func (s *Server) CreateOrder(ctx echo.Context) error {
	var newOrder NewOrder
	if err := ctx.Bind(&newOrder); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	orderID := kernel.NewUUID()
	if newOrder.ID != "" {
		parsedID, err := kernel.UUIDFromString(newOrder.ID)
		if err != nil {
			return badRequest(ctx, "Invalid order id")
		}
		orderID = parsedID
	}

	customerID, err := kernel.UUIDFromString(newOrder.CustomerID)
	if err != nil {
		return badRequest(ctx, "Invalid customer id")
	}

	items := make([]commands.OrderItem, len(newOrder.Items))
	for i, item := range newOrder.Items {
		coffeeItemID, itemErr := kernel.UUIDFromString(item.CoffeeItemID)
		if itemErr != nil {
			return badRequest(ctx, "Invalid coffee item id")
		}
		items[i] = commands.OrderItem{
			CoffeeItemID:        coffeeItemID,
			Quantity:            item.Quantity,
			SpecialInstructions: item.SpecialInstructions,
		}
	}

	cmd, err := commands.NewCreateOrderCommand(orderID, customerID, items, newOrder.Notes)
	if err != nil {
		return badRequest(ctx, "Invalid order data: "+err.Error())
	}

	if handleErr := s.createOrderHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return domainError(ctx, handleErr)
	}

	return ctx.JSON(http.StatusCreated, OrderCreated{ID: orderID.String()})
}

// GetActiveOrders handles GET /api/v1/orders/active - retrieves all orders
// that have not reached a terminal status.
func (s *Server) GetActiveOrders(ctx echo.Context) error {
	query := queries.NewGetActiveOrdersQuery()

	orders, err := s.getActiveOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return internalError(ctx, "Failed to retrieve orders")
	}

	response := make([]ActiveOrder, len(orders))
	for i, activeOrder := range orders {
		var baristaID *string
		if activeOrder.BaristaID != nil {
			id := activeOrder.BaristaID.String()
			baristaID = &id
		}

		response[i] = ActiveOrder{
			ID:         activeOrder.ID.String(),
			CustomerID: activeOrder.CustomerID.String(),
			BaristaID:  baristaID,
			Status:     activeOrder.Status.String(),
			TotalPrice: activeOrder.TotalPrice.Amount().StringFixed(2),
			OrderDate:  activeOrder.OrderDate.Format(time.RFC3339),
			ItemCount:  activeOrder.ItemCount,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// MarkOrderReady handles POST /api/v1/orders/:id/ready.
func (s *Server) MarkOrderReady(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid order id")
	}

	cmd, err := commands.NewMarkOrderReadyCommand(orderID)
	if err != nil {
		return badRequest(ctx, "Invalid order data: "+err.Error())
	}

	if handleErr := s.markOrderReadyHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return domainError(ctx, handleErr)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// CompleteOrder handles POST /api/v1/orders/:id/complete.
func (s *Server) CompleteOrder(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid order id")
	}

	cmd, err := commands.NewCompleteOrderCommand(orderID)
	if err != nil {
		return badRequest(ctx, "Invalid order data: "+err.Error())
	}

	if handleErr := s.completeOrderHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return domainError(ctx, handleErr)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// CancelOrder handles POST /api/v1/orders/:id/cancel.
func (s *Server) CancelOrder(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid order id")
	}

	var cancel CancelOrder
	if err = ctx.Bind(&cancel); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewCancelOrderCommand(orderID, cancel.Reason)
	if err != nil {
		return badRequest(ctx, "Invalid order data: "+err.Error())
	}

	if handleErr := s.cancelOrderHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return domainError(ctx, handleErr)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// Health handles GET /health.
func (s *Server) Health(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

// domainError maps use case failures onto status codes.
func domainError(ctx echo.Context, err error) error {
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		return ctx.JSON(http.StatusNotFound, ErrorResponse{
			Code:    http.StatusNotFound,
			Message: err.Error(),
		})
	case errors.Is(err, errs.ErrVersionConflict),
		errors.Is(err, errs.ErrInvalidStateTransition):
		return ctx.JSON(http.StatusConflict, ErrorResponse{
			Code:    http.StatusConflict,
			Message: err.Error(),
		})
	case errors.Is(err, commands.ErrCoffeeItemIsNotAvailable),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		return badRequest(ctx, err.Error())
	default:
		return internalError(ctx, "Internal server error")
	}
}

func badRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, ErrorResponse{
		Code:    http.StatusBadRequest,
		Message: message,
	})
}

func internalError(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusInternalServerError, ErrorResponse{
		Code:    http.StatusInternalServerError,
		Message: message,
	})
}
