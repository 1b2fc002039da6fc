package concurrency

import (
	"sync"
)

// LockManager hands out one mutex per key. Entries are reference counted and
// dropped once no goroutine holds or waits on them, so the map stays bounded
// by the number of keys in use.
type LockManager struct {
	mu    sync.Mutex
	locks map[string]*keyLock
}

type keyLock struct {
	mu   sync.Mutex
	refs int
}

// NewLockManager creates a new LockManager
func NewLockManager() *LockManager {
	return &LockManager{locks: make(map[string]*keyLock)}
}

// Lock blocks until the key is free and returns the matching unlock function
func (lm *LockManager) Lock(key string) (unlock func()) {
	lm.mu.Lock()
	l, ok := lm.locks[key]
	if !ok {
		l = &keyLock{}
		lm.locks[key] = l
	}
	l.refs++
	lm.mu.Unlock()

	l.mu.Lock()

	var once sync.Once
	return func() {
		once.Do(func() {
			l.mu.Unlock()

			lm.mu.Lock()
			l.refs--
			if l.refs == 0 {
				delete(lm.locks, key)
			}
			lm.mu.Unlock()
		})
	}
}

// WithLock runs fn while holding the key's lock
func (lm *LockManager) WithLock(key string, fn func() error) error {
	unlock := lm.Lock(key)
	defer unlock()
	return fn()
}

// Size returns the number of keys currently held or awaited
func (lm *LockManager) Size() int {
	lm.mu.Lock()
	defer lm.mu.Unlock()
	return len(lm.locks)
}
