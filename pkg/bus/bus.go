// Package bus is an in-process command bus for cross-component signaling,
// replacing ad hoc stringly-typed global events with typed payloads and
// explicit subscriptions.
package bus

import (
	"strings"
	"sync"
	"time"
)

// Command is a typed message published on the bus.
type Command struct {
	Kind      string
	Timestamp time.Time
	Payload   any
}

// Well-known command kinds.
const (
	KindThreadActivity    = "thread.activity"
	KindNotificationBadge = "notification.badge"
)

// ThreadActivity announces a conversation that just received a message.
type ThreadActivity struct {
	ThreadID string
	UserID   string
}

// BadgeUpdate carries a changed unread count for display surfaces.
type BadgeUpdate struct {
	Unread int
}

// Bus is an in-process publish/subscribe command bus with prefix filtering.
type Bus struct {
	mu   sync.RWMutex
	subs map[int]*subscription
	next int
}

type subscription struct {
	prefix string
	ch     chan Command
}

// New creates a new bus
func New() *Bus {
	return &Bus{
		subs: make(map[int]*subscription),
	}
}

// Publish sends a command to all subscribers whose prefix matches its Kind.
// Publishing never blocks; a full subscriber misses the command.
func (b *Bus) Publish(cmd Command) {
	if cmd.Timestamp.IsZero() {
		cmd.Timestamp = time.Now()
	}

	b.mu.RLock()
	defer b.mu.RUnlock()
	for _, sub := range b.subs {
		if strings.HasPrefix(cmd.Kind, sub.prefix) {
			select {
			case sub.ch <- cmd:
			default:
			}
		}
	}
}

// Subscribe returns a channel receiving commands whose Kind has the given
// prefix, and an unsubscribe function. bufSize controls the channel buffer.
func (b *Bus) Subscribe(prefix string, bufSize int) (<-chan Command, func()) {
	ch := make(chan Command, bufSize)

	b.mu.Lock()
	id := b.next
	b.next++
	b.subs[id] = &subscription{prefix: prefix, ch: ch}
	b.mu.Unlock()

	return ch, func() {
		b.mu.Lock()
		delete(b.subs, id)
		b.mu.Unlock()
	}
}
