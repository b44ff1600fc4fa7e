package amqp

//go:generate go run go.uber.org/mock/mockgen -source=./amqp.go -destination=./mocks/amqp_mock.go -package=mocks

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"pureheart/config"

	amqpGo "github.com/rabbitmq/amqp091-go"
	"github.com/rs/zerolog/log"
)

type Client interface {
	Publish(ctx context.Context, queue string, value any) error
	Close() error
}

type amqpClientImpl struct {
	url  string
	mu   sync.Mutex
	conn *amqpGo.Connection
}

// New returns a client that dials the broker on first publish and redials after the connection drops.
func New(config *config.Config) Client {
	log.Info().Msg("AMQP client initialized")

	return &amqpClientImpl{url: config.Events.AMQP.URL}
}

func (a *amqpClientImpl) connection() (*amqpGo.Connection, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.conn != nil && !a.conn.IsClosed() {
		return a.conn, nil
	}

	conn, err := amqpGo.Dial(a.url)
	if err != nil {
		return nil, fmt.Errorf("failed to dial AMQP broker: %w", err)
	}

	a.conn = conn

	return conn, nil
}

// Publish sends value as a persistent JSON message to a durable queue of the same name.
func (a *amqpClientImpl) Publish(ctx context.Context, queue string, value any) error {
	body, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to marshal AMQP message: %w", err)
	}

	conn, err := a.connection()
	if err != nil {
		log.Error().Err(err).Str("queue", queue).Msg("Failed to connect to AMQP broker.")

		return err
	}

	ch, err := conn.Channel()
	if err != nil {
		return fmt.Errorf("failed to open AMQP channel: %w", err)
	}
	defer func() { _ = ch.Close() }()

	if _, err = ch.QueueDeclare(queue, true, false, false, false, nil); err != nil {
		return fmt.Errorf("failed to declare AMQP queue: %w", err)
	}

	err = ch.PublishWithContext(ctx, "", queue, false, false, amqpGo.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqpGo.Persistent,
		Timestamp:    time.Now().UTC(),
		Body:         body,
	})
	if err != nil {
		log.Error().Err(err).Str("queue", queue).Msg("Failed to publish AMQP message.")

		return fmt.Errorf("failed to publish AMQP message: %w", err)
	}

	log.Info().Str("queue", queue).Msg("Published message successfully.")

	return nil
}

func (a *amqpClientImpl) Close() error {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.conn == nil || a.conn.IsClosed() {
		return nil
	}

	if err := a.conn.Close(); err != nil {
		return fmt.Errorf("failed to close AMQP connection: %w", err)
	}

	return nil
}
