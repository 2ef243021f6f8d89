package cache

import (
	"context"
	"fmt"
	"hash/maphash"
	"sync"

	"github.com/bytedance/sonic"
	"golang.org/x/sync/singleflight"
)

const generationStripes = 64

// stripe guards the fills and invalidations of the keys hashed onto it.
type stripe struct {
	mu  sync.Mutex
	gen uint64
}

// Loader collapses concurrent misses for the same key into one load and
// keeps the result in the backing store.
//
// Every Invalidate or Prime bumps a per-key generation. A load only writes
// its result back when the generation it started under is still current, so
// a value read before a concurrent write is returned to its caller but never
// cached. Generations are tracked per process.
type Loader[T any] struct {
	store   Store
	flight  singleflight.Group
	seed    maphash.Seed
	stripes [generationStripes]stripe
}

func NewLoader[T any](store Store) *Loader[T] {
	if store == nil {
		store = Nop{}
	}
	return &Loader[T]{store: store, seed: maphash.MakeSeed()}
}

// GetOrLoad returns the cached value for key or calls load. A cache read or
// write failure degrades to a direct load rather than failing the call.
func (l *Loader[T]) GetOrLoad(ctx context.Context, key string, load func(context.Context) (T, error)) (T, error) {
	var zero T
	if load == nil {
		return zero, fmt.Errorf("loader is required")
	}
	if key == "" {
		return load(ctx)
	}

	if value, ok := l.cached(ctx, key); ok {
		return value, nil
	}

	v, err, _ := l.flight.Do(key, func() (any, error) {
		gen := l.Generation(key)
		if value, ok := l.cached(ctx, key); ok {
			return value, nil
		}
		loaded, err := load(ctx)
		if err != nil {
			return zero, err
		}
		s := l.stripeFor(key)
		s.mu.Lock()
		if s.gen == gen {
			_ = l.set(ctx, key, loaded)
		}
		s.mu.Unlock()
		return loaded, nil
	})
	if err != nil {
		return zero, err
	}
	return v.(T), nil
}

// Generation returns the counter a later Prime must present. Read it before
// the write whose result is being primed.
func (l *Loader[T]) Generation(key string) uint64 {
	s := l.stripeFor(key)
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.gen
}

func (l *Loader[T]) Invalidate(ctx context.Context, keys ...string) error {
	var firstErr error
	for _, key := range keys {
		s := l.stripeFor(key)
		s.mu.Lock()
		s.gen++
		l.flight.Forget(key)
		if err := l.store.Delete(ctx, key); err != nil && firstErr == nil {
			firstErr = err
		}
		s.mu.Unlock()
	}
	return firstErr
}

// Prime stores value for key unless the key was invalidated after since was
// read. It also fences off loads that started before it.
func (l *Loader[T]) Prime(ctx context.Context, key string, since uint64, value T) error {
	s := l.stripeFor(key)
	s.mu.Lock()
	defer s.mu.Unlock()

	current := s.gen
	s.gen++
	l.flight.Forget(key)
	if current != since {
		return nil
	}
	return l.set(ctx, key, value)
}

func (l *Loader[T]) set(ctx context.Context, key string, value T) error {
	raw, err := sonic.Marshal(value)
	if err != nil {
		return fmt.Errorf("encode cache value %s: %w", key, err)
	}
	return l.store.Set(ctx, key, raw)
}

func (l *Loader[T]) stripeFor(key string) *stripe {
	return &l.stripes[maphash.String(l.seed, key)%generationStripes]
}

func (l *Loader[T]) cached(ctx context.Context, key string) (T, bool) {
	var value T
	raw, ok, err := l.store.Get(ctx, key)
	if err != nil || !ok {
		return value, false
	}
	if err := sonic.Unmarshal(raw, &value); err != nil {
		return value, false
	}
	return value, true
}
