// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"sync"
)

// broadcast fans the latest value out to subscribers. Every subscriber
// channel holds at most one value; a newer value replaces an unread one.
type broadcast[T any] struct {
	mu      sync.Mutex
	current T
	known   bool
	nextID  int
	subs    map[int]chan T
}

func newBroadcast[T any]() *broadcast[T] {
	return &broadcast[T]{subs: make(map[int]chan T)}
}

func (b *broadcast[T]) send(v T) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.current = v
	b.known = true
	for _, ch := range b.subs {
		select {
		case <-ch:
		default:
		}
		ch <- v
	}
}

// subscribe returns a channel primed with the current value when replay is
// set and one has been sent. The channel is closed once ctx is done.
func (b *broadcast[T]) subscribe(ctx context.Context, replay bool) <-chan T {
	b.mu.Lock()
	defer b.mu.Unlock()

	id := b.nextID
	b.nextID++
	ch := make(chan T, 1)
	if replay && b.known {
		ch <- b.current
	}
	b.subs[id] = ch

	go func() {
		<-ctx.Done()
		b.mu.Lock()
		defer b.mu.Unlock()
		delete(b.subs, id)
		close(ch)
	}()

	return ch
}

func (b *broadcast[T]) subscribers() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.subs)
}
