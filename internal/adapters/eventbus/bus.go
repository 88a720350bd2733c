// Package eventbus fans run lifecycle events out to in-process subscribers.
package eventbus

import (
	"errors"
	"fmt"
	"sync"

	"github.com/rs/zerolog"

	"github.com/ZanzyTHEbar/drivesim/internal/domain"
)

// ErrStopped is returned when subscribing to a stopped bus.
var ErrStopped = errors.New("eventbus is stopped")

// Subscriber is a channel that receives events for a specific topic.
type Subscriber chan domain.Event

// EventBus defines the interface for publishing and subscribing to events.
type EventBus interface {
	Publish(event domain.Event)
	Subscribe(topic string, bufferSize int) (Subscriber, error)
	Unsubscribe(topic string, sub Subscriber) error
	Stop()
}

// SimpleEventBus is an in-memory event bus using buffered channels.
// Publishing never blocks: events for a full subscriber are dropped.
type SimpleEventBus struct {
	subscribers map[string]map[Subscriber]struct{}
	mu          sync.RWMutex
	stopped     bool
	dropped     int
	bufferSize  int
	log         zerolog.Logger
}

// NewSimpleEventBus creates a new SimpleEventBus. bufferSize is used when
// Subscribe is called with a non-positive size.
func NewSimpleEventBus(bufferSize int, log zerolog.Logger) *SimpleEventBus {
	if bufferSize <= 0 {
		bufferSize = 10
	}
	return &SimpleEventBus{
		subscribers: make(map[string]map[Subscriber]struct{}),
		bufferSize:  bufferSize,
		log:         log.With().Str("component", "eventbus").Logger(),
	}
}

// Publish sends an event to all subscribers of the event's topic.
func (b *SimpleEventBus) Publish(event domain.Event) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.stopped {
		b.log.Debug().Str("topic", event.Topic).Msg("bus stopped, event ignored")
		return
	}

	for sub := range b.subscribers[event.Topic] {
		select {
		case sub <- event:
		default:
			b.dropped++
			b.log.Warn().Str("topic", event.Topic).Msg("subscriber buffer full, event dropped")
		}
	}
}

// Subscribe creates a new subscriber channel for a given topic.
func (b *SimpleEventBus) Subscribe(topic string, bufferSize int) (Subscriber, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.stopped {
		return nil, ErrStopped
	}
	if bufferSize <= 0 {
		bufferSize = b.bufferSize
	}

	sub := make(Subscriber, bufferSize)
	if _, found := b.subscribers[topic]; !found {
		b.subscribers[topic] = make(map[Subscriber]struct{})
	}
	b.subscribers[topic][sub] = struct{}{}
	return sub, nil
}

// SubscribeAll subscribes one channel to several topics.
func (b *SimpleEventBus) SubscribeAll(bufferSize int, topics ...string) (Subscriber, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.stopped {
		return nil, ErrStopped
	}
	if bufferSize <= 0 {
		bufferSize = b.bufferSize
	}
	sub := make(Subscriber, bufferSize)
	for _, topic := range topics {
		if _, found := b.subscribers[topic]; !found {
			b.subscribers[topic] = make(map[Subscriber]struct{})
		}
		b.subscribers[topic][sub] = struct{}{}
	}
	return sub, nil
}

// Unsubscribe removes a subscriber channel from a topic. The channel is not closed.
func (b *SimpleEventBus) Unsubscribe(topic string, sub Subscriber) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	subs, found := b.subscribers[topic]
	if !found {
		return fmt.Errorf("topic %s not found", topic)
	}
	if _, ok := subs[sub]; !ok {
		return fmt.Errorf("subscriber not found for topic %s", topic)
	}
	delete(subs, sub)
	if len(subs) == 0 {
		delete(b.subscribers, topic)
	}
	return nil
}

// Stop stops publishing and closes every subscriber channel once.
func (b *SimpleEventBus) Stop() {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.stopped {
		return
	}
	b.stopped = true

	closed := make(map[Subscriber]struct{})
	for _, subs := range b.subscribers {
		for sub := range subs {
			if _, done := closed[sub]; !done {
				close(sub)
				closed[sub] = struct{}{}
			}
		}
	}
	b.subscribers = make(map[string]map[Subscriber]struct{})
	b.log.Debug().Int("dropped", b.dropped).Msg("event bus stopped")
}

// Dropped returns the number of events dropped because a subscriber was full.
func (b *SimpleEventBus) Dropped() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.dropped
}
