// Package pool wraps sync.Pool with a typed API and an optional reset hook.
// Help rendering uses it to recycle string builders.
package pool

import "sync"

// Pool provides a generic, type-safe object pool
type Pool[T any] struct {
	pool  sync.Pool
	reset func(*T)
}

// New creates a pool. reset, when non-nil, runs on every object handed out
// by Get so callers always see a clean value.
func New[T any](factory func() *T, reset func(*T)) *Pool[T] {
	return &Pool[T]{
		pool:  sync.Pool{New: func() any { return factory() }},
		reset: reset,
	}
}

// Get retrieves an object from the pool or creates a new one
func (p *Pool[T]) Get() *T {
	obj, _ := p.pool.Get().(*T)
	if p.reset != nil {
		p.reset(obj)
	}
	return obj
}

// Put returns an object to the pool for reuse. nil is ignored.
func (p *Pool[T]) Put(obj *T) {
	if obj == nil {
		return
	}
	p.pool.Put(obj)
}
