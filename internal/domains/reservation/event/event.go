// Package event publishes reservation lifecycle changes to the configured broker.
package event

//go:generate go run go.uber.org/mock/mockgen -source=./event.go -destination=../mocks/event_mock.go -package=mocks

import (
	"context"
	"fmt"
	"time"

	"pureheart/config"
	"pureheart/infras/amqp"
	"pureheart/infras/kafka"
	"pureheart/internal/domains/reservation/model"
	"pureheart/shared/timezone"

	"github.com/rs/zerolog/log"
)

const (
	TypeCreated       = "reservation.created"
	TypeUpdated       = "reservation.updated"
	TypeCancelled     = "reservation.cancelled"
	TypeStatusChanged = "reservation.status_changed"

	DriverKafka = "kafka"
	DriverAMQP  = "amqp"
	DriverNone  = "none"
)

type Event struct {
	Type          string    `json:"type"`
	ReservationID string    `json:"reservation_id"`
	TableID       string    `json:"table_id"`
	Date          string    `json:"reservation_date"`
	StartHour     int       `json:"start_hour"`
	Duration      int       `json:"duration"`
	GuestsCount   int       `json:"guests_count"`
	Status        string    `json:"status"`
	OccurredAt    time.Time `json:"occurred_at"`
}

func New(eventType string, reservation model.Reservation) Event {
	return Event{
		Type:          eventType,
		ReservationID: reservation.ID,
		TableID:       reservation.TableID,
		Date:          reservation.Day(),
		StartHour:     reservation.StartHour,
		Duration:      reservation.Duration,
		GuestsCount:   reservation.GuestsCount,
		Status:        reservation.Status,
		OccurredAt:    timezone.Now(),
	}
}

type Publisher interface {
	Publish(ctx context.Context, evt Event) error
}

// NewPublisher picks the broker named by EVENTS_DRIVER. The returned cleanup closes it.
func NewPublisher(cfg *config.Config) (Publisher, func(), error) {
	topic := cfg.Events.Topic

	switch cfg.Events.Driver {
	case DriverKafka:
		client := kafka.New(cfg)

		return NewKafkaPublisher(client, topic), closer(client.Close), nil
	case DriverAMQP:
		client := amqp.New(cfg)

		return NewAMQPPublisher(client, topic), closer(client.Close), nil
	case DriverNone, "":
		return NopPublisher{}, func() {}, nil
	default:
		return nil, nil, fmt.Errorf("unknown events driver %q", cfg.Events.Driver)
	}
}

func closer(closeFn func() error) func() {
	return func() {
		if err := closeFn(); err != nil {
			log.Error().Err(err).Msg("failed to close event publisher")
		}
	}
}

type kafkaPublisher struct {
	client kafka.Client
	topic  string
}

func NewKafkaPublisher(client kafka.Client, topic string) Publisher {
	return &kafkaPublisher{client: client, topic: topic}
}

// Publish keys messages by reservation so one reservation's events stay ordered.
func (p *kafkaPublisher) Publish(ctx context.Context, evt Event) error {
	return p.client.SendMessages(ctx, p.topic, kafka.Message{Key: evt.ReservationID, Value: evt}) //nolint:wrapcheck
}

type amqpPublisher struct {
	client amqp.Client
	queue  string
}

func NewAMQPPublisher(client amqp.Client, queue string) Publisher {
	return &amqpPublisher{client: client, queue: queue}
}

func (p *amqpPublisher) Publish(ctx context.Context, evt Event) error {
	return p.client.Publish(ctx, p.queue, evt) //nolint:wrapcheck
}

// NopPublisher only logs.
type NopPublisher struct{}

func (NopPublisher) Publish(_ context.Context, evt Event) error {
	log.Debug().Str("type", evt.Type).Str("reservation_id", evt.ReservationID).Msg("reservation event")

	return nil
}
