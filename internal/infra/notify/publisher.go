package notify

import (
	"context"
	"encoding/json"
	"time"

	"cuponx-backend/internal/pkg/config"
	"cuponx-backend/internal/pkg/errs"
	"cuponx-backend/internal/usecase/shared"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
)

type Publisher interface {
	Publish(ctx context.Context, ev shared.Event) error
}

type StreamClient interface {
	XAdd(ctx context.Context, a *redis.XAddArgs) *redis.StringCmd
}

// RedisStreamPublisher appends events to a redis stream, capped at roughly maxLen entries.
type RedisStreamPublisher struct {
	client StreamClient
	stream string
	maxLen int64
}

const defaultStreamMaxLen = 10000

func NewRedisStreamPublisher(client StreamClient, stream string) *RedisStreamPublisher {
	return &RedisStreamPublisher{client: client, stream: stream, maxLen: defaultStreamMaxLen}
}

func (p *RedisStreamPublisher) Publish(ctx context.Context, ev shared.Event) error {
	payload, err := json.Marshal(ev.Payload)
	if err != nil {
		return errs.Wrap(err, "failed to encode event payload")
	}
	err = p.client.XAdd(ctx, &redis.XAddArgs{
		Stream: p.stream,
		MaxLen: p.maxLen,
		Approx: true,
		Values: map[string]interface{}{
			"id":          uuid.NewString(),
			"kind":        string(ev.Kind),
			"occurred_at": ev.OccurredAt.UTC().Format(time.RFC3339Nano),
			"payload":     string(payload),
		},
	}).Err()
	if err != nil {
		return errs.Wrap(err, "failed to append event to stream")
	}
	return nil
}

type NopPublisher struct{}

func (NopPublisher) Publish(context.Context, shared.Event) error { return nil }

func NewRedisClient(cfg config.RedisConfig) *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})
}
