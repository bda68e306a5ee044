// Package pubsub is the in-process change bus that replaces global
// broadcast events: stores publish "domain changed" and aggregation
// consumers re-run their pure computations on notification.
package pubsub

import (
	"sort"
	"sync"

	"github.com/lifeboardhq/lifeboard/internal/domain"
)

// Bus fans out domain-change notifications to subscribers. Safe for
// concurrent use; delivery is synchronous and in subscription order.
type Bus struct {
	mu   sync.RWMutex
	next int
	subs map[int]func(domain.Domain)
}

func New() *Bus {
	return &Bus{subs: make(map[int]func(domain.Domain))}
}

// Subscribe registers fn for every published change and returns an
// unsubscribe function.
func (b *Bus) Subscribe(fn func(domain.Domain)) func() {
	b.mu.Lock()
	id := b.next
	b.next++
	b.subs[id] = fn
	b.mu.Unlock()

	return func() {
		b.mu.Lock()
		delete(b.subs, id)
		b.mu.Unlock()
	}
}

// Publish notifies every subscriber that a domain's records changed.
func (b *Bus) Publish(d domain.Domain) {
	b.mu.RLock()
	ids := make([]int, 0, len(b.subs))
	for id := range b.subs {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	fns := make([]func(domain.Domain), 0, len(ids))
	for _, id := range ids {
		fns = append(fns, b.subs[id])
	}
	b.mu.RUnlock()

	for _, fn := range fns {
		fn(d)
	}
}
