package notify

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/rs/zerolog/log"

	"github.com/Nixie-Tech-LLC/marquee/internal/engine"
)

type amqpChannel interface {
	PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp.Publishing) error
	Close() error
}

// RabbitMQ publishes row changes to a topic exchange for audit and
// downstream consumers. Routing keys are "row.<action>".
type RabbitMQ struct {
	conn     *amqp.Connection
	channel  amqpChannel
	exchange string
}

func NewRabbitMQ(url, exchange string) (*RabbitMQ, error) {
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("connect to rabbitmq: %w", err)
	}

	ch, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("open channel: %w", err)
	}

	err = ch.ExchangeDeclare(
		exchange,
		"topic",
		true,
		false,
		false,
		false,
		nil,
	)
	if err != nil {
		ch.Close()
		conn.Close()
		return nil, fmt.Errorf("declare exchange: %w", err)
	}

	log.Info().Str("exchange", exchange).Msg("connected to rabbitmq")

	return &RabbitMQ{conn: conn, channel: ch, exchange: exchange}, nil
}

// EventMessage is the body published for every row change.
type EventMessage struct {
	Event     engine.RowEvent `json:"event"`
	Timestamp time.Time       `json:"timestamp"`
}

func RoutingKey(ev engine.RowEvent) string {
	return "row." + string(ev.Action)
}

func (r *RabbitMQ) RowChanged(ctx context.Context, ev engine.RowEvent) error {
	body, err := json.Marshal(EventMessage{Event: ev, Timestamp: time.Now().UTC()})
	if err != nil {
		return fmt.Errorf("marshal message: %w", err)
	}

	key := RoutingKey(ev)
	err = r.channel.PublishWithContext(
		ctx,
		r.exchange,
		key,
		false,
		false,
		amqp.Publishing{
			DeliveryMode: amqp.Persistent,
			ContentType:  "application/json",
			Body:         body,
			Timestamp:    time.Now(),
		},
	)
	if err != nil {
		return fmt.Errorf("publish message: %w", err)
	}

	log.Debug().Str("routing_key", key).Str("row_id", ev.RowID.String()).Msg("published row event")
	return nil
}

func (r *RabbitMQ) Close() error {
	if r.channel != nil {
		r.channel.Close()
	}
	if r.conn != nil {
		return r.conn.Close()
	}
	return nil
}
