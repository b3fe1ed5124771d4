// Package structs implements helper generic structures.
package structs

import "sync"

// BufferPool is an interface for all pools of buffers.
type BufferPool[T any] interface {
	Get() T
	Put(T)
}

// SyncPool is a wrapper around [sync.Pool] (it avoids doing type conversion after Get()).
type SyncPool[T any] struct {
	pool *sync.Pool
}

// NewSyncPool creates a new SyncPool.
// The input function f is the function that is used to create new objects if none is available in the pool.
func NewSyncPool[T any](f func() T) *SyncPool[T] {
	pool := &sync.Pool{
		New: func() any {
			return f()
		},
	}
	return &SyncPool[T]{pool: pool}
}

// Get returns a new object of type T from the pool.
func (spool *SyncPool[T]) Get() T {
	return spool.pool.Get().(T)
}

// Put returns the buff to the pool.
func (spool *SyncPool[T]) Put(buff T) {
	spool.pool.Put(buff)
}

// RecyclingPool wraps a [BufferPool] and runs a recycle function on every
// object handed back, so that objects obtained from Get are always in a
// clean state.
// It implements the [BufferPool] interface.
type RecyclingPool[T any] struct {
	pool    BufferPool[T]
	recycle func(T)
}

// NewRecyclingPool returns a new RecyclingPool over pool.
func NewRecyclingPool[T any](pool BufferPool[T], recycle func(T)) *RecyclingPool[T] {
	return &RecyclingPool[T]{
		pool:    pool,
		recycle: recycle,
	}
}

// Get returns an object of type T from the underlying pool.
func (rp *RecyclingPool[T]) Get() T {
	return rp.pool.Get()
}

// Put recycles obj and returns it to the underlying pool.
func (rp *RecyclingPool[T]) Put(obj T) {
	rp.recycle(obj)
	rp.pool.Put(obj)
}
