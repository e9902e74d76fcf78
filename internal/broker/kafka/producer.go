package kafka

import (
	"context"

	"vpaas/internal/config"

	wbkafka "github.com/wb-go/wbf/kafka"
	"github.com/wb-go/wbf/retry"
)

type ProducerClient struct {
	producer *wbkafka.Producer
	strategy retry.Strategy
}

func NewProducerClient(cfg *config.Config) *ProducerClient {
	return &ProducerClient{
		producer: wbkafka.NewProducer(cfg.Queue.Kafka.Brokers, cfg.Queue.Name),
		strategy: cfg.DefaultRetryStrategy(),
	}
}

func (p *ProducerClient) Send(ctx context.Context, key, value []byte) error {
	return p.producer.SendWithRetry(ctx, p.strategy, key, value)
}

func (p *ProducerClient) Close() error {
	return p.producer.Close()
}
