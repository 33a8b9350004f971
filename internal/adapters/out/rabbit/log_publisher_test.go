package rabbit_test

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"coffeeshop/internal/adapters/out/rabbit"
	"coffeeshop/internal/core/domain/model/kernel"
	"coffeeshop/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_LogPublisher_Publish(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))
	publisher := rabbit.NewLogPublisher(logger)

	events := []kernel.DomainEvent{
		order.OrderCreatedEvent{
			OrderID:    kernel.NewUUID().String(),
			CustomerID: kernel.NewUUID().String(),
			TotalPrice: "5.00",
			ItemCount:  2,
		},
	}

	err := publisher.Publish(context.Background(), events)

	require.NoError(t, err)
	assert.Contains(t, buf.String(), "OrderCreated")
}

func Test_LogPublisher_NilLogger(t *testing.T) {
	publisher := rabbit.NewLogPublisher(nil)

	err := publisher.Publish(context.Background(), nil)

	require.NoError(t, err)
}
