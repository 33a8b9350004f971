// Package rabbit delivers domain events to a RabbitMQ topic exchange.
//
// The publisher implements ports.EventPublisher. Events are serialized to
// JSON and published with the event name as the routing key, so consumers
// can bind with patterns like "Order*" or "CoffeeItem*". Delivery is
// persistent; the broker keeps messages across restarts once queues are
// bound durable.
//
// Publishing happens after the owning transaction has committed, so a
// broker failure here never undoes state. Callers treat errors from
// Publish as a signal to retry later, not to roll back.
package rabbit

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"coffeeshop/internal/core/domain/model/kernel"

	"github.com/rabbitmq/amqp091-go"
)

const publishTimeout = 5 * time.Second

// Publisher sends domain events to a durable topic exchange.
type Publisher struct {
	url      string
	exchange string
	conn     *amqp091.Connection
	channel  *amqp091.Channel
}

// NewPublisher connects to the broker at url and declares the topic
// exchange. The connection is kept open for the lifetime of the publisher;
// a dropped connection is re-established on the next Publish call.
func NewPublisher(url string, exchange string) (*Publisher, error) {
	publisher := &Publisher{
		url:      url,
		exchange: exchange,
	}

	if err := publisher.connect(); err != nil {
		return nil, err
	}
	return publisher, nil
}

func (p *Publisher) connect() error {
	// drop any half-dead state before dialing again
	if p.channel != nil {
		_ = p.channel.Close()
		p.channel = nil
	}
	if p.conn != nil {
		_ = p.conn.Close()
		p.conn = nil
	}

	conn, err := amqp091.Dial(p.url)
	if err != nil {
		return fmt.Errorf("failed to connect to rabbitmq: %w", err)
	}

	channel, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return fmt.Errorf("failed to open channel: %w", err)
	}

	err = channel.ExchangeDeclare(
		p.exchange, // name
		"topic",    // type
		true,       // durable
		false,      // auto-deleted
		false,      // internal
		false,      // no-wait
		nil,        // arguments
	)
	if err != nil {
		_ = channel.Close()
		_ = conn.Close()
		return fmt.Errorf("failed to declare exchange %s: %w", p.exchange, err)
	}

	p.conn = conn
	p.channel = channel
	return nil
}

// Publish sends the events in order. The first failure aborts the batch;
// already-published events stay published, consumers must deduplicate.
// A broker error can close the channel while the connection stays up, so
// both are checked before publishing.
func (p *Publisher) Publish(ctx context.Context, events []kernel.DomainEvent) error {
	if p.conn == nil || p.conn.IsClosed() || p.channel == nil || p.channel.IsClosed() {
		if err := p.connect(); err != nil {
			return err
		}
	}

	for _, event := range events {
		if err := p.publishEvent(ctx, event); err != nil {
			return err
		}
	}
	return nil
}

func (p *Publisher) publishEvent(ctx context.Context, event kernel.DomainEvent) error {
	body, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal event %s: %w", event.EventName(), err)
	}

	ctx, cancel := context.WithTimeout(ctx, publishTimeout)
	defer cancel()

	err = p.channel.PublishWithContext(
		ctx,
		p.exchange,
		event.EventName(), // routing key
		false,             // mandatory
		false,             // immediate
		amqp091.Publishing{
			ContentType:  "application/json",
			Body:         body,
			DeliveryMode: amqp091.Persistent,
			Timestamp:    time.Now(),
			Type:         event.EventName(),
		},
	)
	if err != nil {
		return fmt.Errorf("failed to publish event %s: %w", event.EventName(), err)
	}
	return nil
}

// Close releases the channel and the connection.
func (p *Publisher) Close() error {
	if p.channel != nil {
		_ = p.channel.Close()
	}
	if p.conn != nil {
		return p.conn.Close()
	}
	return nil
}
