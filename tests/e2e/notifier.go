//go:build e2e

package e2e

import (
	"strings"
	"sync"

	"cuponx-backend/internal/usecase/shared"
)

// RecordingNotifier keeps every event in memory instead of delivering it.
type RecordingNotifier struct {
	mu     sync.Mutex
	events []shared.Event
}

func NewRecordingNotifier() *RecordingNotifier {
	return &RecordingNotifier{}
}

func (n *RecordingNotifier) Notify(ev shared.Event) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.events = append(n.events, ev)
}

func (n *RecordingNotifier) Events(kind shared.EventKind) []shared.Event {
	n.mu.Lock()
	defer n.mu.Unlock()
	var out []shared.Event
	for _, ev := range n.events {
		if ev.Kind == kind {
			out = append(out, ev)
		}
	}
	return out
}

// MailsTo returns the mails addressed to the given recipient, oldest first.
func (n *RecordingNotifier) MailsTo(to string) []shared.Mail {
	n.mu.Lock()
	defer n.mu.Unlock()
	var out []shared.Mail
	for _, ev := range n.events {
		if ev.Mail != nil && strings.EqualFold(ev.Mail.To, to) {
			out = append(out, *ev.Mail)
		}
	}
	return out
}

func (n *RecordingNotifier) Reset() {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.events = nil
}
