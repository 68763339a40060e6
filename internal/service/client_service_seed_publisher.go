// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"sync"

	"github.com/MKhiriev/go-seed-keeper/models"
)

// statePublisher fans committed states out to subscribers. Every commit
// carries a sequence number; a commit older than the last delivered one is
// dropped, so subscribers observe states in commit order even when two
// publishing goroutines race.
type statePublisher struct {
	mu        sync.Mutex
	delivered uint64
	current   models.SyncState
	nextID    int
	subs      map[int]chan models.SyncState
}

func newStatePublisher(initial models.SyncState) *statePublisher {
	return &statePublisher{current: initial, subs: make(map[int]chan models.SyncState)}
}

func (p *statePublisher) publish(seq uint64, state models.SyncState) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if seq <= p.delivered {
		return
	}
	p.delivered = seq
	p.current = state

	for _, ch := range p.subs {
		replaceLatest(ch, state)
	}
}

// replaceLatest leaves state as the only buffered value of ch.
// Only the publisher sends on ch, always under p.mu.
func replaceLatest(ch chan models.SyncState, state models.SyncState) {
	select {
	case <-ch:
	default:
	}
	ch <- state
}

func (p *statePublisher) state() models.SyncState {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.current
}

func (p *statePublisher) subscribe() (<-chan models.SyncState, func()) {
	p.mu.Lock()
	defer p.mu.Unlock()

	id := p.nextID
	p.nextID++

	ch := make(chan models.SyncState, 1)
	ch <- p.current
	p.subs[id] = ch

	var once sync.Once
	cancel := func() {
		once.Do(func() {
			p.mu.Lock()
			defer p.mu.Unlock()
			delete(p.subs, id)
			close(ch)
		})
	}
	return ch, cancel
}
