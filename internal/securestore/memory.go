package securestore

import (
	"context"
	"sync"
)

// MemoryStore is a process-local [SecureStore]. Values do not survive a
// restart. Fail makes every call return ErrSecureStoreUnavailable, which
// simulates a keychain the user refused to unlock.
type MemoryStore struct {
	mu    sync.RWMutex
	items map[string]string
	fail  bool
}

// NewMemoryStore returns an empty [MemoryStore].
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{items: make(map[string]string)}
}

// Fail toggles simulated unavailability.
func (m *MemoryStore) Fail(fail bool) {
	m.mu.Lock()
	m.fail = fail
	m.mu.Unlock()
}

// Len returns the number of stored items.
func (m *MemoryStore) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.items)
}

func (m *MemoryStore) SetItem(ctx context.Context, key, value string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.fail {
		return ErrSecureStoreUnavailable
	}
	m.items[key] = value
	return nil
}

func (m *MemoryStore) GetItem(ctx context.Context, key string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.fail {
		return "", ErrSecureStoreUnavailable
	}
	v, ok := m.items[key]
	if !ok {
		return "", ErrItemNotFound
	}
	return v, nil
}

func (m *MemoryStore) DeleteItem(ctx context.Context, key string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.fail {
		return ErrSecureStoreUnavailable
	}
	delete(m.items, key)
	return nil
}
