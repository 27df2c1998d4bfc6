// Package stream is an in-process pub/sub hub pushing full collection
// snapshots to SSE subscribers. Feature handlers publish the household's
// current collection after every mutation; subscribers re-derive their
// local state from each snapshot.
package stream

import "sync"

// Snapshot carries the authoritative state of one collection.
type Snapshot struct {
	Collection string      `json:"collection"`
	Items      interface{} `json:"items"`
}

type Hub struct {
	mu   sync.RWMutex
	subs map[string]map[chan Snapshot]struct{}
}

func NewHub() *Hub {
	return &Hub{
		subs: make(map[string]map[chan Snapshot]struct{}),
	}
}

// Key builds the topic key for a household's collection.
func Key(householdID, collection string) string {
	return householdID + ":" + collection
}

// Subscribe registers a subscriber for a topic. The returned cancel func
// must be called when the subscriber goes away; the channel is closed then.
func (h *Hub) Subscribe(key string) (<-chan Snapshot, func()) {
	ch := make(chan Snapshot, 8)

	h.mu.Lock()
	if h.subs[key] == nil {
		h.subs[key] = make(map[chan Snapshot]struct{})
	}
	h.subs[key][ch] = struct{}{}
	h.mu.Unlock()

	cancel := func() {
		h.mu.Lock()
		if set, ok := h.subs[key]; ok {
			if _, ok := set[ch]; ok {
				delete(set, ch)
				close(ch)
			}
			if len(set) == 0 {
				delete(h.subs, key)
			}
		}
		h.mu.Unlock()
	}

	return ch, cancel
}

// Publish delivers a snapshot to every subscriber of the topic. A slow
// subscriber whose buffer is full misses this snapshot; the next publish
// carries the full state again, so nothing is lost permanently.
func (h *Hub) Publish(key string, snap Snapshot) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	for ch := range h.subs[key] {
		select {
		case ch <- snap:
		default:
		}
	}
}

// SubscriberCount reports how many subscribers a topic currently has.
func (h *Hub) SubscriberCount(key string) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.subs[key])
}
