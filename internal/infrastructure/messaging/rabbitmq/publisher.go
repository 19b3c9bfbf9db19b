package rabbitmq

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	amqp "github.com/rabbitmq/amqp091-go"

	"github.com/freelance-directory/api/internal/core/ports"
)

// channel is the subset of *amqp.Channel the publisher uses.
type channel interface {
	PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp.Publishing) error
}

// Publisher implements ports.EventPublisher. The event type doubles as the
// routing key, e.g. "freelancer.deleted".
type Publisher struct {
	mu sync.Mutex
	ch channel
}

func NewPublisher(ch channel) *Publisher {
	return &Publisher{ch: ch}
}

func (p *Publisher) Publish(ctx context.Context, event ports.DirectoryEvent) error {
	body, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("marshal %s event: %w", event.Type, err)
	}

	headers := make(amqp.Table)
	if event.RequestID != "" {
		headers["X-Request-ID"] = event.RequestID
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	return p.ch.PublishWithContext(
		ctx,
		Exchange,
		event.Type,
		false, // mandatory
		false, // immediate
		amqp.Publishing{
			ContentType:  "application/json",
			DeliveryMode: amqp.Persistent,
			Timestamp:    event.OccurredAt,
			Type:         event.Type,
			Body:         body,
			Headers:      headers,
		},
	)
}
