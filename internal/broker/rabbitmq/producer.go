package rabbitmq

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"vpaas/internal/config"

	amqp "github.com/rabbitmq/amqp091-go"
)

type ProducerClient struct {
	conn  *amqp.Connection
	ch    *amqp.Channel
	queue string
	mu    sync.Mutex
}

func NewProducerClient(cfg *config.Config) (*ProducerClient, error) {
	conn, err := amqp.Dial(cfg.Queue.RabbitMQ.URL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to RabbitMQ: %w", err)
	}

	ch, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to open a channel: %w", err)
	}

	if _, err := ch.QueueDeclare(cfg.Queue.Name, true, false, false, false, nil); err != nil {
		ch.Close()
		conn.Close()
		return nil, fmt.Errorf("failed to declare queue %q: %w", cfg.Queue.Name, err)
	}

	return &ProducerClient{
		conn:  conn,
		ch:    ch,
		queue: cfg.Queue.Name,
	}, nil
}

// Send publishes value as a persistent message on the job queue. Publishing
// on the shared channel is serialized.
func (p *ProducerClient) Send(ctx context.Context, key, value []byte) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	err := p.ch.PublishWithContext(ctx, "", p.queue, false, false, amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		MessageId:    string(key),
		Timestamp:    time.Now(),
		Body:         value,
	})
	if err != nil {
		return fmt.Errorf("failed to publish to %q: %w", p.queue, err)
	}
	return nil
}

func (p *ProducerClient) Close() error {
	return errors.Join(p.ch.Close(), p.conn.Close())
}
