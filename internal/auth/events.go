package auth

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// EventType names a change in a user's sign-in state
type EventType string

const (
	EventSignedUp  EventType = "signed_up"
	EventSignedIn  EventType = "signed_in"
	EventSignedOut EventType = "signed_out"
)

// SessionEvent is published whenever a user signs up, in or out
type SessionEvent struct {
	Type   EventType `json:"type"`
	UserID uuid.UUID `json:"user_id"`
	Email  string    `json:"email"`
	At     time.Time `json:"at"`
}

const subscriberBuffer = 16

// broadcaster fans session events out to subscribers. A subscriber that
// falls behind by more than its buffer misses events rather than blocking
// the publisher.
type broadcaster struct {
	mu     sync.Mutex
	nextID int
	subs   map[int]chan SessionEvent
}

func newBroadcaster() *broadcaster {
	return &broadcaster{subs: make(map[int]chan SessionEvent)}
}

// Subscribe returns a channel of future events and a function that ends the
// subscription and closes the channel.
func (b *broadcaster) Subscribe() (<-chan SessionEvent, func()) {
	b.mu.Lock()
	defer b.mu.Unlock()

	id := b.nextID
	b.nextID++
	ch := make(chan SessionEvent, subscriberBuffer)
	b.subs[id] = ch

	var once sync.Once
	return ch, func() {
		once.Do(func() {
			b.mu.Lock()
			defer b.mu.Unlock()
			delete(b.subs, id)
			close(ch)
		})
	}
}

func (b *broadcaster) publish(event SessionEvent) {
	b.mu.Lock()
	defer b.mu.Unlock()
	for _, ch := range b.subs {
		select {
		case ch <- event:
		default:
		}
	}
}
