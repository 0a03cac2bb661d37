// Package job runs background work on asynq, a Redis-backed task queue.
// The API process enqueues tasks with Client and the same process works them
// off with an embedded asynq server.
package job

import (
	"context"
	"fmt"

	"github.com/200406-java-react-usf/Abraham-Selenke-p0/internal/config"
	"github.com/200406-java-react-usf/Abraham-Selenke-p0/internal/lib/email"
	"github.com/hibiken/asynq"
	"github.com/rs/zerolog"
)

// Enqueuer is the producer side of asynq.Client.
type Enqueuer interface {
	EnqueueContext(ctx context.Context, task *asynq.Task, opts ...asynq.Option) (*asynq.TaskInfo, error)
}

// WelcomeSender delivers the welcome e-mail.
type WelcomeSender interface {
	SendWelcomeEmail(to, firstName, username string) error
}

type JobService struct {
	Client *asynq.Client

	enqueuer Enqueuer
	server   *asynq.Server
	emails   WelcomeSender
	logger   *zerolog.Logger
}

func NewJobService(logger *zerolog.Logger, cfg *config.Config) *JobService {
	redisOpt := asynq.RedisClientOpt{Addr: cfg.Redis.Address}

	client := asynq.NewClient(redisOpt)

	server := asynq.NewServer(
		redisOpt,
		asynq.Config{
			Concurrency: 10,
			Queues: map[string]int{
				"critical": 6,
				"default":  3,
				"low":      1,
			},
			ErrorHandler: asynq.ErrorHandlerFunc(func(ctx context.Context, task *asynq.Task, err error) {
				retried, _ := asynq.GetRetryCount(ctx)
				maxRetry, _ := asynq.GetMaxRetry(ctx)
				logger.Error().
					Err(err).
					Str("type", task.Type()).
					Int("retried", retried).
					Int("max_retry", maxRetry).
					Msg("background task failed")
			}),
		},
	)

	return &JobService{
		Client:   client,
		enqueuer: client,
		server:   server,
		logger:   logger,
	}
}

// InitHandlers wires the dependencies task handlers use.
func (j *JobService) InitHandlers(cfg *config.Config, logger *zerolog.Logger) {
	j.emails = email.NewClient(cfg, logger)
}

// Start registers the handlers and starts the workers. asynq runs them on
// its own goroutines, so Start returns once they are up.
func (j *JobService) Start() error {
	if j.emails == nil {
		return fmt.Errorf("job handlers not initialized")
	}

	mux := asynq.NewServeMux()
	mux.HandleFunc(TaskWelcome, j.handleWelcomeEmailTask)

	j.logger.Info().Msg("starting background job server")

	if err := j.server.Start(mux); err != nil {
		return fmt.Errorf("failed to start job server: %w", err)
	}
	return nil
}

// Stop waits for in-flight tasks and closes the Redis connections.
func (j *JobService) Stop() {
	j.logger.Info().Msg("stopping background job server")
	if j.server != nil {
		j.server.Shutdown()
	}
	if j.Client != nil {
		if err := j.Client.Close(); err != nil {
			j.logger.Error().Err(err).Msg("failed to close job client")
		}
	}
}
