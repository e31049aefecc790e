// Package amqp subscribes to the backend's real-time "data changed" channel.
// It lives entirely at the boundary: its only job is to trigger an aggregate
// re-fetch when a message arrives.
package amqp

import (
	"context"
	"fmt"
	"log/slog"

	portssvc "github.com/fynlens/fynlens_backend/internal/core/ports/services"
	"github.com/rabbitmq/amqp091-go"
)

// Subscriber consumes aggregate-updated messages and refreshes the snapshot.
type Subscriber struct {
	conn         *amqp091.Connection
	channel      *amqp091.Channel
	exchangeName string
	queueName    string
	refresher    portssvc.AggregateRefresherSvc
	logger       *slog.Logger
}

// NewSubscriber connects to the broker and declares the exchange, queue and
// binding.
func NewSubscriber(url, exchangeName, queueName string, refresher portssvc.AggregateRefresherSvc, logger *slog.Logger) (*Subscriber, error) {
	conn, err := amqp091.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("dial AMQP: %w", err)
	}

	channel, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("open channel: %w", err)
	}

	sub := &Subscriber{
		conn:         conn,
		channel:      channel,
		exchangeName: exchangeName,
		queueName:    queueName,
		refresher:    refresher,
		logger:       logger,
	}

	if err := sub.setup(); err != nil {
		sub.Close()
		return nil, fmt.Errorf("setup exchange and queue: %w", err)
	}

	return sub, nil
}

func (s *Subscriber) setup() error {
	err := s.channel.ExchangeDeclare(
		s.exchangeName, // name
		"direct",       // type
		true,           // durable
		false,          // auto-deleted
		false,          // internal
		false,          // no-wait
		nil,            // arguments
	)
	if err != nil {
		return fmt.Errorf("declare exchange: %w", err)
	}

	_, err = s.channel.QueueDeclare(
		s.queueName, // name
		true,        // durable
		false,       // delete when unused
		false,       // exclusive
		false,       // no-wait
		nil,         // arguments
	)
	if err != nil {
		return fmt.Errorf("declare queue: %w", err)
	}

	err = s.channel.QueueBind(
		s.queueName,    // queue name
		s.queueName,    // routing key (same as queue name for direct exchange)
		s.exchangeName, // exchange
		false,
		nil,
	)
	if err != nil {
		return fmt.Errorf("bind queue: %w", err)
	}

	return nil
}

// Start begins consuming in a background goroutine until ctx is cancelled.
func (s *Subscriber) Start(ctx context.Context) error {
	deliveries, err := s.channel.Consume(
		s.queueName, // queue
		"",          // consumer
		false,       // auto-ack
		false,       // exclusive
		false,       // no-local
		false,       // no-wait
		nil,         // args
	)
	if err != nil {
		return fmt.Errorf("start consuming: %w", err)
	}

	go func() {
		for {
			select {
			case <-ctx.Done():
				return
			case delivery, ok := <-deliveries:
				if !ok {
					return
				}
				s.handle(ctx, delivery)
			}
		}
	}()
	return nil
}

func (s *Subscriber) handle(ctx context.Context, delivery amqp091.Delivery) {
	msg, err := AggregateUpdatedFromJSON(delivery.Body)
	if err != nil {
		s.logger.Warn("Discarding malformed aggregate-updated message", slog.String("error", err.Error()))
		delivery.Nack(false, false)
		return
	}

	if _, err := s.refresher.Refresh(ctx); err != nil {
		s.logger.Error("Aggregate refresh failed after update message",
			slog.String("customer_id", msg.CustomerID),
			slog.String("error", err.Error()))
		// Requeue so the refresh is retried on the next delivery.
		delivery.Nack(false, true)
		return
	}

	s.logger.Info("Aggregate refreshed from update message", slog.String("customer_id", msg.CustomerID))
	delivery.Ack(false)
}

// Close shuts down the channel and connection.
func (s *Subscriber) Close() {
	if s.channel != nil {
		s.channel.Close()
	}
	if s.conn != nil {
		s.conn.Close()
	}
}
