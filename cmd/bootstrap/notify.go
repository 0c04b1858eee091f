package bootstrap

import (
	"context"
	"log/slog"

	"cuponx-backend/internal/infra/notify"
	"cuponx-backend/internal/pkg/config"
	"cuponx-backend/internal/usecase/shared"

	"go.uber.org/fx"
)

var NotifyModule = fx.Module("notify",
	fx.Provide(
		NewMailer,
		NewPublisher,
		fx.Annotate(
			NewDispatcher,
			fx.As(new(shared.Notifier)),
		),
	),
)

func NewMailer(cfg config.Config) notify.Mailer {
	return notify.NewMailer(cfg.Mail)
}

// NewPublisher streams domain events to Redis when REDIS_ADDR is set.
func NewPublisher(lc fx.Lifecycle, cfg config.Config, logger *slog.Logger) notify.Publisher {
	if !cfg.Redis.Enabled() {
		logger.Info("event stream disabled, REDIS_ADDR not set")
		return notify.NopPublisher{}
	}

	client := notify.NewRedisClient(cfg.Redis)
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			if err := client.Ping(ctx).Err(); err != nil {
				// events are best effort; the API stays up without Redis
				logger.Warn("redis unreachable, events will be dropped", "addr", cfg.Redis.Addr, "error", err.Error())
			}
			return nil
		},
		OnStop: func(_ context.Context) error {
			return client.Close()
		},
	})
	return notify.NewRedisStreamPublisher(client, cfg.Redis.Stream)
}

func NewDispatcher(lc fx.Lifecycle, mailer notify.Mailer, publisher notify.Publisher, cfg config.Config) *notify.Dispatcher {
	dispatcher := notify.NewDispatcher(mailer, publisher, cfg.Notify)
	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			dispatcher.Start()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			return dispatcher.Stop(ctx)
		},
	})
	return dispatcher
}
