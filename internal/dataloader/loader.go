package dataloader

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"go.uber.org/zap"

	"github.com/feral-file/ff-marketplace-api/internal/domain"
	"github.com/feral-file/ff-marketplace-api/internal/logger"
)

// Batcher resolves many keys with one backend call.
// Keys absent from the returned map resolve to the zero value of V.
type Batcher[K comparable, V any] interface {
	Execute(ctx context.Context, keys []K) (map[K]V, error)
}

// BatcherFunc adapts a function to the Batcher interface
type BatcherFunc[K comparable, V any] func(ctx context.Context, keys []K) (map[K]V, error)

// Execute calls f(ctx, keys)
func (f BatcherFunc[K, V]) Execute(ctx context.Context, keys []K) (map[K]V, error) {
	return f(ctx, keys)
}

// Thunk resolves a value enqueued with LoadThunk. Calling it dispatches the pending batch the key
// belongs to and waits for its outcome.
type Thunk[V any] func() (V, error)

// Stats counts the work done by a Loader
type Stats struct {
	// Batches is the number of Execute calls
	Batches int64
	// Keys is the number of keys sent to Execute across all batches
	Keys int64
	// Hits is the number of lookups served by an already known key
	Hits int64
	// Misses is the number of lookups that enqueued a new key
	Misses int64
}

// entry is the cache cell of one key. done is closed once value and err are final.
type entry[V any] struct {
	batch *batch
	done  chan struct{}
	value V
	err   error
}

type batch struct {
	ctx        context.Context
	timer      *time.Timer
	dispatched bool
}

// Loader memoizes lookups by key and coalesces the keys requested before a scheduling point into
// a single Batcher call. A Loader is meant to live for a single request.
type Loader[K comparable, V any] struct {
	batcher Batcher[K, V]
	opts    options

	mu      sync.Mutex
	cache   map[K]*entry[V]
	pending *pendingBatch[K, V]

	batches atomic.Int64
	keys    atomic.Int64
	hits    atomic.Int64
	misses  atomic.Int64
}

type pendingBatch[K comparable, V any] struct {
	*batch
	keys    []K
	entries []*entry[V]
}

// NewLoader creates a Loader backed by batcher
func NewLoader[K comparable, V any](batcher Batcher[K, V], opts ...Option) *Loader[K, V] {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return &Loader[K, V]{
		batcher: batcher,
		opts:    o,
		cache:   make(map[K]*entry[V]),
	}
}

// NewLoaderFunc creates a Loader backed by a batch function
func NewLoaderFunc[K comparable, V any](fn func(ctx context.Context, keys []K) (map[K]V, error), opts ...Option) *Loader[K, V] {
	return NewLoader[K, V](BatcherFunc[K, V](fn), opts...)
}

// Load resolves a single key
func (l *Loader[K, V]) Load(ctx context.Context, key K) (V, error) {
	return l.LoadThunk(ctx, key)()
}

// LoadMany resolves keys positionally. Duplicated keys share one outcome.
// The error slice is nil when every key resolved successfully.
func (l *Loader[K, V]) LoadMany(ctx context.Context, keys []K) ([]V, []error) {
	thunks := make([]Thunk[V], len(keys))
	for i, key := range keys {
		thunks[i] = l.LoadThunk(ctx, key)
	}

	values := make([]V, len(keys))
	var errs []error
	for i, thunk := range thunks {
		value, err := thunk()
		if err != nil {
			if errs == nil {
				errs = make([]error, len(keys))
			}
			errs[i] = err
			continue
		}
		values[i] = value
	}

	return values, errs
}

// LoadThunk enqueues key without waiting for it. A known key (resolved, pending or in flight)
// reuses its existing outcome.
func (l *Loader[K, V]) LoadThunk(ctx context.Context, key K) Thunk[V] {
	l.mu.Lock()

	if e, ok := l.cache[key]; ok {
		l.mu.Unlock()
		l.hits.Add(1)
		return l.thunk(ctx, e)
	}

	l.misses.Add(1)

	if l.pending == nil {
		l.pending = &pendingBatch[K, V]{batch: &batch{ctx: ctx}}
		if l.opts.wait > 0 {
			pb := l.pending
			pb.timer = time.AfterFunc(l.opts.wait, func() {
				l.dispatch(pb)
			})
		}
	}

	pb := l.pending
	e := &entry[V]{batch: pb.batch, done: make(chan struct{})}
	pb.keys = append(pb.keys, key)
	pb.entries = append(pb.entries, e)
	l.cache[key] = e

	full := l.opts.maxBatch > 0 && len(pb.keys) >= l.opts.maxBatch
	l.mu.Unlock()

	if full {
		l.dispatch(pb)
	}

	return l.thunk(ctx, e)
}

// Flush dispatches the pending batch, if any, without waiting for it
func (l *Loader[K, V]) Flush() {
	l.mu.Lock()
	pb := l.pending
	l.mu.Unlock()

	if pb != nil {
		l.dispatch(pb)
	}
}

// Prime stores value for key unless the key is already known
func (l *Loader[K, V]) Prime(key K, value V) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if _, ok := l.cache[key]; ok {
		return
	}

	e := &entry[V]{done: make(chan struct{}), value: value}
	close(e.done)
	l.cache[key] = e
}

// Stats returns a snapshot of the loader counters
func (l *Loader[K, V]) Stats() Stats {
	return Stats{
		Batches: l.batches.Load(),
		Keys:    l.keys.Load(),
		Hits:    l.hits.Load(),
		Misses:  l.misses.Load(),
	}
}

// Name returns the name used in log fields
func (l *Loader[K, V]) Name() string {
	return l.opts.name
}

func (l *Loader[K, V]) thunk(ctx context.Context, e *entry[V]) Thunk[V] {
	return func() (V, error) {
		select {
		case <-e.done:
			return e.value, e.err
		default:
		}

		// With a wait window the timer, Flush or MaxBatch dispatches instead
		if l.opts.wait == 0 {
			l.dispatchBatchOf(e)
		}

		select {
		case <-e.done:
			return e.value, e.err
		case <-ctx.Done():
			var zero V
			return zero, ctx.Err()
		}
	}
}

// dispatchBatchOf dispatches the batch e belongs to when it is still pending
func (l *Loader[K, V]) dispatchBatchOf(e *entry[V]) {
	l.mu.Lock()
	pb := l.pending
	l.mu.Unlock()

	if pb != nil && pb.batch == e.batch {
		l.dispatch(pb)
	}
}

// dispatch starts pb exactly once
func (l *Loader[K, V]) dispatch(pb *pendingBatch[K, V]) {
	l.mu.Lock()
	if pb.dispatched {
		l.mu.Unlock()
		return
	}
	pb.dispatched = true
	if l.pending == pb {
		l.pending = nil
	}
	if pb.timer != nil {
		pb.timer.Stop()
	}
	l.mu.Unlock()

	go l.run(pb)
}

func (l *Loader[K, V]) run(pb *pendingBatch[K, V]) {
	ctx := pb.ctx

	l.batches.Add(1)
	l.keys.Add(int64(len(pb.keys)))

	logger.DebugCtx(ctx, "Dispatching batch",
		zap.String("loader", l.opts.name),
		zap.Int("keys", len(pb.keys)))

	values, err := l.execute(ctx, pb.keys)
	if err != nil {
		if domain.IsCancellation(err) {
			logger.DebugCtx(ctx, "Batch cancelled", zap.String("loader", l.opts.name), zap.Error(err))
		} else {
			logger.WarnCtx(ctx, "Batch failed",
				zap.String("loader", l.opts.name),
				zap.Int("keys", len(pb.keys)),
				zap.Error(err))
		}

		// Failed keys are forgotten so the next lookup retries them in a fresh batch
		l.mu.Lock()
		for i, key := range pb.keys {
			if l.cache[key] == pb.entries[i] {
				delete(l.cache, key)
			}
		}
		l.mu.Unlock()
	}

	for i, key := range pb.keys {
		e := pb.entries[i]
		if err != nil {
			e.err = err
		} else {
			e.value = values[key]
		}
		close(e.done)
	}
}

func (l *Loader[K, V]) execute(ctx context.Context, keys []K) (values map[K]V, err error) {
	defer func() {
		if r := recover(); r != nil {
			values = nil
			err = fmt.Errorf("%w: %s: %v", domain.ErrBatchPanic, l.opts.name, r)
		}
	}()

	return l.batcher.Execute(ctx, keys)
}
