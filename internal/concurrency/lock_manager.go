package concurrency

import (
	"context"
	"sync"
)

// LockManager hands out one lock per key. Entries are dropped once no caller
// holds or waits for them, so the key space can be unbounded.
type LockManager struct {
	mu    sync.Mutex
	locks map[string]*keyLock
}

type keyLock struct {
	sem  chan struct{}
	refs int
}

// NewLockManager creates a new LockManager
func NewLockManager() *LockManager {
	return &LockManager{
		locks: make(map[string]*keyLock),
	}
}

// Lock blocks until the lock for key is held or ctx ends. The returned
// function releases the lock and must be called exactly once.
func (lm *LockManager) Lock(ctx context.Context, key string) (func(), error) {
	l := lm.acquireRef(key)

	select {
	case l.sem <- struct{}{}:
	default:
		select {
		case l.sem <- struct{}{}:
		case <-ctx.Done():
			lm.releaseRef(key, l)
			return nil, ctx.Err()
		}
	}

	var once sync.Once
	return func() {
		once.Do(func() {
			<-l.sem
			lm.releaseRef(key, l)
		})
	}, nil
}

// Len reports how many keys are currently held or waited on
func (lm *LockManager) Len() int {
	lm.mu.Lock()
	defer lm.mu.Unlock()
	return len(lm.locks)
}

func (lm *LockManager) acquireRef(key string) *keyLock {
	lm.mu.Lock()
	defer lm.mu.Unlock()

	l, ok := lm.locks[key]
	if !ok {
		l = &keyLock{sem: make(chan struct{}, 1)}
		lm.locks[key] = l
	}
	l.refs++
	return l
}

func (lm *LockManager) releaseRef(key string, l *keyLock) {
	lm.mu.Lock()
	defer lm.mu.Unlock()

	l.refs--
	if l.refs == 0 {
		delete(lm.locks, key)
	}
}
