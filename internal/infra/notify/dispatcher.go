package notify

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"cuponx-backend/internal/pkg/config"
	"cuponx-backend/internal/usecase/shared"
)

// Dispatcher delivers events on a fixed pool of workers. Notify never blocks;
// events are dropped with a warning when the queue is full or closed.
type Dispatcher struct {
	mailer    Mailer
	publisher Publisher
	workers   int
	timeout   time.Duration

	mu     sync.RWMutex
	queue  chan shared.Event
	closed bool
	wg     sync.WaitGroup
}

func NewDispatcher(mailer Mailer, publisher Publisher, cfg config.NotifyConfig) *Dispatcher {
	workers := max(cfg.Workers, 1)
	size := max(cfg.QueueSize, 1)
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 15 * time.Second
	}
	return &Dispatcher{
		mailer:    mailer,
		publisher: publisher,
		workers:   workers,
		timeout:   timeout,
		queue:     make(chan shared.Event, size),
	}
}

func (d *Dispatcher) Start() {
	for i := 0; i < d.workers; i++ {
		d.wg.Add(1)
		go d.run()
	}
}

// Stop closes the queue and waits for queued events until ctx is done.
func (d *Dispatcher) Stop(ctx context.Context) error {
	d.mu.Lock()
	if !d.closed {
		d.closed = true
		close(d.queue)
	}
	d.mu.Unlock()

	done := make(chan struct{})
	go func() {
		d.wg.Wait()
		close(done)
	}()
	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (d *Dispatcher) Notify(ev shared.Event) {
	if ev.OccurredAt.IsZero() {
		ev.OccurredAt = time.Now()
	}

	d.mu.RLock()
	defer d.mu.RUnlock()
	if d.closed {
		slog.Warn("notification dropped, dispatcher stopped", "kind", ev.Kind)
		return
	}
	select {
	case d.queue <- ev:
	default:
		slog.Warn("notification dropped, queue full", "kind", ev.Kind)
	}
}

func (d *Dispatcher) run() {
	defer d.wg.Done()
	for ev := range d.queue {
		d.deliver(ev)
	}
}

func (d *Dispatcher) deliver(ev shared.Event) {
	ctx, cancel := context.WithTimeout(context.Background(), d.timeout)
	defer cancel()

	if ev.Mail != nil {
		if err := d.mailer.Send(ctx, *ev.Mail); err != nil {
			slog.Warn("failed to send mail", "kind", ev.Kind, "error", err.Error())
		}
	}
	if err := d.publisher.Publish(ctx, ev); err != nil {
		slog.Warn("failed to publish event", "kind", ev.Kind, "error", err.Error())
	}
}
