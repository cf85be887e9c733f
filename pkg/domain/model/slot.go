package model

import (
	"context"
	"sync"

	"github.com/m-mizutani/folio/pkg/domain/types"
)

// Slot is a named region of a page. A renderer replaces its whole content on
// every Set, and the goroutine driving the renderer calls Done once it has
// returned.
type Slot struct {
	key types.TargetKey

	mu      sync.RWMutex
	content Fragment

	done     chan struct{}
	doneOnce sync.Once
}

func NewSlot(key types.TargetKey) *Slot {
	return &Slot{
		key:  key,
		done: make(chan struct{}),
	}
}

func (x *Slot) Key() types.TargetKey {
	return x.key
}

// Set replaces the content of the slot.
func (x *Slot) Set(fragment Fragment) {
	x.mu.Lock()
	defer x.mu.Unlock()
	x.content = fragment
}

// Get returns the current content of the slot.
func (x *Slot) Get() Fragment {
	x.mu.RLock()
	defer x.mu.RUnlock()
	return x.content
}

// Done marks the slot as final. Calling it more than once is allowed.
func (x *Slot) Done() {
	x.doneOnce.Do(func() { close(x.done) })
}

// Finished reports whether Done has been called.
func (x *Slot) Finished() bool {
	select {
	case <-x.done:
		return true
	default:
		return false
	}
}

// Wait blocks until the slot is done or ctx expires, then returns whatever
// content the slot holds at that moment.
func (x *Slot) Wait(ctx context.Context) Fragment {
	select {
	case <-x.done:
	case <-ctx.Done():
	}
	return x.Get()
}
