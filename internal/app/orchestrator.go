package app

import (
	"fmt"

	"vpaas/internal/broker"
	kafka_impl "vpaas/internal/broker/kafka"
	rabbitmq_impl "vpaas/internal/broker/rabbitmq"
	"vpaas/internal/config"
	video_h "vpaas/internal/http-server/handler/video"
	"vpaas/internal/http-server/router"
	minio_repo "vpaas/internal/repository/video/cloud/minio"
	video_uc "vpaas/internal/usecase/video"

	"github.com/wb-go/wbf/zlog"
)

// NewOrchestratorApp builds the upload receiver that stores videos and
// queues transcoder jobs.
func NewOrchestratorApp(cfg *config.Config, logger *zlog.Zerolog) (*App, error) {
	fileRepo, err := minio_repo.NewMinIORepository(cfg, cfg.DefaultRetryStrategy(), logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create file repository: %w", err)
	}

	producer, err := newProducer(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create job queue: %w", err)
	}

	videoUsecase := video_uc.NewVideoUsecase(fileRepo, producer, logger)

	h := &router.OrchestratorHandler{
		VideoHandler: video_h.NewVideoHandler(videoUsecase, logger),
	}

	logger.Info().
		Str("queue_driver", cfg.Queue.Driver).
		Str("queue", cfg.Queue.Name).
		Str("bucket", cfg.Storage.Bucket).
		Msg("Orchestrator configuration")

	return newApp("orchestrator", cfg.Orchestrator, router.SetupOrchestratorRouter(h), logger, producer), nil
}

func newProducer(cfg *config.Config) (broker.Producer, error) {
	switch cfg.Queue.Driver {
	case config.QueueDriverKafka:
		return kafka_impl.NewProducerClient(cfg), nil
	case config.QueueDriverRabbitMQ:
		producer, err := rabbitmq_impl.NewProducerClient(cfg)
		if err != nil {
			return nil, err
		}
		return producer, nil
	default:
		return nil, fmt.Errorf("unknown queue driver %q", cfg.Queue.Driver)
	}
}
