package queries

import (
	"context"
	"database/sql"
	"time"

	"coffeeshop/internal/core/domain/model/kernel"
	"coffeeshop/internal/core/domain/model/order"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// GetActiveOrdersQueryHandler retrieves non-terminal orders from the database.
// Filters out completed and cancelled orders to provide the current workload.
type GetActiveOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetActiveOrdersQueryHandler creates a handler for active order queries.
// Requires a GORM database connection for query execution.
func NewGetActiveOrdersQueryHandler(db *gorm.DB) GetActiveOrdersQueryHandler {
	return GetActiveOrdersQueryHandler{db: db}
}

// Handle executes the query to retrieve all active orders.
// Results are sorted by order date so the oldest order comes first.
func (h GetActiveOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetActiveOrdersQuery,
) ([]GetActiveOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	orders := make([]GetActiveOrdersQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			o.id,
			o.customer_id,
			o.barista_id,
			o.status,
			o.total_price,
			o.order_date,
			(SELECT COUNT(*) FROM order_lines l WHERE l.order_id = o.id) AS item_count
		FROM orders o
		WHERE o.status NOT IN (?, ?)
		ORDER BY o.order_date
	`, order.Completed, order.Cancelled).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var orderResp GetActiveOrdersQueryResponse
		var id, customerID uuid.UUID
		var baristaID uuid.NullUUID
		var status int
		var totalPrice decimal.Decimal
		var orderDate sql.NullTime

		err = rows.Scan(
			&id,
			&customerID,
			&baristaID,
			&status,
			&totalPrice,
			&orderDate,
			&orderResp.ItemCount,
		)
		if err != nil {
			return nil, err
		}

		orderID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		orderResp.ID = orderID

		customer, idErr := kernel.UUIDFromBytes(customerID[:])
		if idErr != nil {
			return nil, idErr
		}
		orderResp.CustomerID = customer

		if baristaID.Valid {
			assigned, idErr := kernel.UUIDFromBytes(baristaID.UUID[:])
			if idErr != nil {
				return nil, idErr
			}
			orderResp.BaristaID = &assigned
		}

		orderResp.Status = order.Status(status)

		price, priceErr := kernel.NewMoney(totalPrice)
		if priceErr != nil {
			return nil, priceErr
		}
		orderResp.TotalPrice = price

		if orderDate.Valid {
			orderResp.OrderDate = orderDate.Time.UTC()
		} else {
			orderResp.OrderDate = time.Time{}
		}

		orders = append(orders, orderResp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}
