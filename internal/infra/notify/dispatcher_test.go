//go:build unit

package notify_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"cuponx-backend/internal/infra/notify"
	"cuponx-backend/internal/pkg/config"
	"cuponx-backend/internal/usecase/shared"

	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingMailer struct {
	mu    sync.Mutex
	sent  []shared.Mail
	block chan struct{}
	err   error
}

func (m *recordingMailer) Send(_ context.Context, mail shared.Mail) error {
	if m.block != nil {
		<-m.block
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sent = append(m.sent, mail)
	return m.err
}

func (m *recordingMailer) count() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.sent)
}

type recordingPublisher struct {
	mu    sync.Mutex
	kinds []shared.EventKind
}

func (p *recordingPublisher) Publish(_ context.Context, ev shared.Event) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.kinds = append(p.kinds, ev.Kind)
	return nil
}

func TestDispatcher_DeliversMailAndEvents(t *testing.T) {
	mailer := &recordingMailer{err: errors.New("smtp down")}
	pub := &recordingPublisher{}
	d := notify.NewDispatcher(mailer, pub, config.NotifyConfig{Workers: 2, QueueSize: 8, Timeout: time.Second})
	d.Start()

	d.Notify(shared.Event{Kind: shared.EventAccountRegistered, Mail: &shared.Mail{To: "a@example.com"}})
	d.Notify(shared.Event{Kind: shared.EventCouponRedeemed})

	require.NoError(t, d.Stop(context.Background()))

	assert.Equal(t, 1, mailer.count())
	assert.ElementsMatch(t, []shared.EventKind{shared.EventAccountRegistered, shared.EventCouponRedeemed}, pub.kinds)
}

func TestDispatcher_DropsWhenFullOrStopped(t *testing.T) {
	mailer := &recordingMailer{block: make(chan struct{})}
	d := notify.NewDispatcher(mailer, notify.NopPublisher{}, config.NotifyConfig{Workers: 1, QueueSize: 1, Timeout: time.Second})
	d.Start()

	mail := &shared.Mail{To: "a@example.com"}
	done := make(chan struct{})
	go func() {
		// the worker is blocked, so at most two of these fit
		for i := 0; i < 5; i++ {
			d.Notify(shared.Event{Kind: shared.EventCouponsPurchased, Mail: mail})
		}
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Notify blocked on a full queue")
	}

	close(mailer.block)
	require.NoError(t, d.Stop(context.Background()))
	sent := mailer.count()
	assert.GreaterOrEqual(t, sent, 1)
	assert.LessOrEqual(t, sent, 2)

	d.Notify(shared.Event{Kind: shared.EventCouponsPurchased, Mail: mail})
	assert.Equal(t, sent, mailer.count())
}

type fakeStream struct {
	args *redis.XAddArgs
}

func (f *fakeStream) XAdd(_ context.Context, a *redis.XAddArgs) *redis.StringCmd {
	f.args = a
	return redis.NewStringResult("1-0", nil)
}

func TestRedisStreamPublisher_Publish(t *testing.T) {
	stream := &fakeStream{}
	p := notify.NewRedisStreamPublisher(stream, "cuponx:events")

	at := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	err := p.Publish(context.Background(), shared.Event{
		Kind:       shared.EventCouponsPurchased,
		OccurredAt: at,
		Payload:    map[string]any{"codes": []string{"RES0011234567"}},
	})

	require.NoError(t, err)
	require.NotNil(t, stream.args)
	assert.Equal(t, "cuponx:events", stream.args.Stream)
	assert.True(t, stream.args.Approx)
	values, ok := stream.args.Values.(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "coupons.purchased", values["kind"])
	assert.Equal(t, "2026-03-01T12:00:00Z", values["occurred_at"])
	assert.JSONEq(t, `{"codes":["RES0011234567"]}`, values["payload"].(string))
	assert.NotEmpty(t, values["id"])
}
