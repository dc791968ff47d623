// Package audit appends gate scan attempts to a durable RabbitMQ queue
// so downstream consumers can reconstruct who scanned what and when.
package audit

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/reinstack44/CollegeEventSystem/internal/domain"
	"github.com/rs/zerolog"
)

type Publisher struct {
	conn   *amqp.Connection
	ch     *amqp.Channel
	queue  string
	logger zerolog.Logger
}

// NewPublisher dials the broker and declares the durable queue once at
// startup. An empty URL yields a disabled publisher whose PublishScan
// is a logged no-op, mirroring how the notifier degrades without a
// token.
func NewPublisher(url, queue string, logger zerolog.Logger) (*Publisher, error) {
	if url == "" {
		logger.Warn().Msg("rabbitmq url is empty, scan audit disabled")
		return &Publisher{queue: queue, logger: logger}, nil
	}

	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("dial rabbitmq: %w", err)
	}

	ch, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("open channel: %w", err)
	}

	if _, err = ch.QueueDeclare(
		queue,
		true,  // durable
		false, // autoDelete
		false, // exclusive
		false, // noWait
		nil,
	); err != nil {
		ch.Close()
		conn.Close()
		return nil, fmt.Errorf("declare queue: %w", err)
	}

	return &Publisher{conn: conn, ch: ch, queue: queue, logger: logger}, nil
}

func (p *Publisher) PublishScan(ctx context.Context, entry domain.ScanAudit) error {
	if p.ch == nil {
		p.logger.Debug().
			Str("token", entry.Token).
			Str("result", entry.Result).
			Msg("scan audit skipped (publisher disabled)")
		return nil
	}

	body, err := json.Marshal(entry)
	if err != nil {
		return fmt.Errorf("marshal scan audit: %w", err)
	}

	err = p.ch.PublishWithContext(ctx,
		"",      // default exchange
		p.queue, // routing key = queue name
		false,   // mandatory
		false,   // immediate
		amqp.Publishing{
			ContentType:  "application/json",
			DeliveryMode: amqp.Persistent,
			Timestamp:    time.Now().UTC(),
			Body:         body,
		},
	)
	if err != nil {
		return fmt.Errorf("publish scan audit: %w", err)
	}

	return nil
}

func (p *Publisher) Close() error {
	if p.ch != nil {
		if err := p.ch.Close(); err != nil {
			return fmt.Errorf("close channel: %w", err)
		}
	}
	if p.conn != nil {
		if err := p.conn.Close(); err != nil {
			return fmt.Errorf("close connection: %w", err)
		}
	}
	return nil
}
