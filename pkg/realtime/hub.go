// Package realtime is an application-scoped publish/subscribe hub.
// Row-change notifications are published on named channels and fanned out
// to every live subscriber of that channel.
package realtime

import (
	"sync"

	"vdpcza/pkg/utils"
)

const (
	ChannelMoods = "moods"
	ChannelGifts = "gifts"
)

type Event struct {
	Channel string      `json:"channel"`
	Type    string      `json:"type"`
	Payload interface{} `json:"payload,omitempty"`
	At      int64       `json:"at"`
}

// Publisher is the write side of the hub.
type Publisher interface {
	Publish(channel, eventType string, payload interface{})
}

type Hub struct {
	mu     sync.RWMutex
	subs   map[string]map[*subscription]struct{}
	buffer int
}

type subscription struct {
	ch chan Event
}

func NewHub(buffer int) *Hub {
	if buffer <= 0 {
		buffer = 16
	}
	return &Hub{
		subs:   make(map[string]map[*subscription]struct{}),
		buffer: buffer,
	}
}

// Subscribe registers a listener on channel. The returned cancel func
// unregisters it and closes the event channel; it is safe to call twice.
func (h *Hub) Subscribe(channel string) (<-chan Event, func()) {
	sub := &subscription{ch: make(chan Event, h.buffer)}

	h.mu.Lock()
	if h.subs[channel] == nil {
		h.subs[channel] = make(map[*subscription]struct{})
	}
	h.subs[channel][sub] = struct{}{}
	h.mu.Unlock()

	var once sync.Once
	cancel := func() {
		once.Do(func() {
			h.mu.Lock()
			delete(h.subs[channel], sub)
			if len(h.subs[channel]) == 0 {
				delete(h.subs, channel)
			}
			h.mu.Unlock()
			close(sub.ch)
		})
	}
	return sub.ch, cancel
}

// Publish delivers without blocking; a subscriber with a full buffer misses the event.
func (h *Hub) Publish(channel, eventType string, payload interface{}) {
	ev := Event{Channel: channel, Type: eventType, Payload: payload, At: utils.NowUnixSeconds()}

	h.mu.RLock()
	defer h.mu.RUnlock()
	for sub := range h.subs[channel] {
		select {
		case sub.ch <- ev:
		default:
		}
	}
}

func (h *Hub) Subscribers(channel string) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.subs[channel])
}
