package sync

import "sync"

// KeyedMutex provides mutual exclusion per string key.
//
// The issuance path locks on the issuer account id so that the
// load-sequence-then-submit critical section is serialized per account: two
// concurrent issuances must not both build transactions from the same ledger
// sequence number.
type KeyedMutex struct {
	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

// NewKeyedMutex creates an empty KeyedMutex.
func NewKeyedMutex() *KeyedMutex {
	return &KeyedMutex{locks: make(map[string]*sync.Mutex)}
}

// Lock acquires the lock for the given key, creating it on first use.
func (m *KeyedMutex) Lock(key string) {
	m.keyLock(key).Lock()
}

// Unlock releases the lock for the given key.
// Unlocking a key that was never locked panics, same as sync.Mutex.
func (m *KeyedMutex) Unlock(key string) {
	m.keyLock(key).Unlock()
}

func (m *KeyedMutex) keyLock(key string) *sync.Mutex {
	m.mu.Lock()
	defer m.mu.Unlock()
	l, ok := m.locks[key]
	if !ok {
		l = &sync.Mutex{}
		m.locks[key] = l
	}
	return l
}
