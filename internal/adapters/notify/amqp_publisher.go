// Package notify delivers budget alert triggers to the notification pipeline.
package notify

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/SscSPs/spendcheck/internal/apperrors"
	"github.com/SscSPs/spendcheck/internal/core/domain"
	portssvc "github.com/SscSPs/spendcheck/internal/core/ports/services"
	"github.com/rabbitmq/amqp091-go"
)

const publishTimeout = 5 * time.Second

// publishChannel is the subset of *amqp091.Channel the publisher uses.
type publishChannel interface {
	PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp091.Publishing) error
	Close() error
}

// AMQPPublisher publishes alerts as persistent JSON messages to a direct exchange.
type AMQPPublisher struct {
	conn       *amqp091.Connection
	channel    publishChannel
	exchange   string
	routingKey string
	now        func() time.Time
}

var _ portssvc.AlertPublisher = (*AMQPPublisher)(nil)

// NewAMQPPublisher dials url and declares a durable direct exchange with a
// durable queue bound under routingKey.
func NewAMQPPublisher(url, exchange, routingKey string) (*AMQPPublisher, error) {
	conn, err := amqp091.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("dial AMQP: %w", err)
	}

	channel, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("open channel: %w", err)
	}

	if err := declareTopology(channel, exchange, routingKey); err != nil {
		channel.Close()
		conn.Close()
		return nil, fmt.Errorf("setup exchange and queue: %w", err)
	}

	p := newPublisher(channel, exchange, routingKey)
	p.conn = conn
	return p, nil
}

func newPublisher(channel publishChannel, exchange, routingKey string) *AMQPPublisher {
	return &AMQPPublisher{
		channel:    channel,
		exchange:   exchange,
		routingKey: routingKey,
		now:        time.Now,
	}
}

func declareTopology(ch *amqp091.Channel, exchange, queue string) error {
	if err := ch.ExchangeDeclare(
		exchange, // name
		"direct", // type
		true,     // durable
		false,    // auto-deleted
		false,    // internal
		false,    // no-wait
		nil,      // arguments
	); err != nil {
		return fmt.Errorf("declare exchange: %w", err)
	}

	if _, err := ch.QueueDeclare(
		queue, // name
		true,  // durable
		false, // delete when unused
		false, // exclusive
		false, // no-wait
		nil,   // arguments
	); err != nil {
		return fmt.Errorf("declare queue: %w", err)
	}

	if err := ch.QueueBind(queue, queue, exchange, false, nil); err != nil {
		return fmt.Errorf("bind queue: %w", err)
	}
	return nil
}

// AlertMessage is the wire envelope of a budget alert.
type AlertMessage struct {
	Type  string             `json:"type"`
	Alert domain.BudgetAlert `json:"alert"`
}

const alertMessageType = "budget.alert"

// MessageID identifies an alert so consumers can drop redeliveries.
func MessageID(alert domain.BudgetAlert) string {
	return fmt.Sprintf("%s:%s:%s:%s", alert.UserID, alert.Month, alert.Category, alert.Level)
}

// PublishAlert publishes one alert trigger.
func (p *AMQPPublisher) PublishAlert(ctx context.Context, alert domain.BudgetAlert) error {
	body, err := json.Marshal(AlertMessage{Type: alertMessageType, Alert: alert})
	if err != nil {
		return fmt.Errorf("marshal alert: %w", err)
	}

	ctx, cancel := context.WithTimeout(ctx, publishTimeout)
	defer cancel()

	err = p.channel.PublishWithContext(
		ctx,
		p.exchange,   // exchange
		p.routingKey, // routing key
		false,        // mandatory
		false,        // immediate
		amqp091.Publishing{
			ContentType:  "application/json",
			DeliveryMode: amqp091.Persistent,
			MessageId:    MessageID(alert),
			Type:         alertMessageType,
			Timestamp:    p.now(),
			Body:         body,
		},
	)
	if err != nil {
		return apperrors.NewTransportError("publish alert", err)
	}

	slog.InfoContext(ctx, "Published budget alert",
		"user_id", alert.UserID,
		"month", alert.Month,
		"category", alert.Category,
		"level", alert.Level,
		"exchange", p.exchange)
	return nil
}

// Close releases the channel and connection.
func (p *AMQPPublisher) Close() error {
	if p.channel != nil {
		p.channel.Close()
	}
	if p.conn != nil {
		return p.conn.Close()
	}
	return nil
}
