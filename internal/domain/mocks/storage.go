package mocks

import "context"

// KVStore is an in-memory mock implementation of ports.KVStore.
type KVStore struct {
	Values map[string]string

	// Configurable errors for failure-path tests.
	GetErr error
	SetErr error
}

// Get returns the stored value for key.
func (m *KVStore) Get(ctx context.Context, key string) (string, bool, error) {
	if m.GetErr != nil {
		return "", false, m.GetErr
	}
	v, ok := m.Values[key]
	return v, ok, nil
}

// Set stores value under key.
func (m *KVStore) Set(ctx context.Context, key, value string) error {
	if m.SetErr != nil {
		return m.SetErr
	}
	if m.Values == nil {
		m.Values = make(map[string]string)
	}
	m.Values[key] = value
	return nil
}

// Delete removes the value stored under key.
func (m *KVStore) Delete(ctx context.Context, key string) error {
	delete(m.Values, key)
	return nil
}

// Close is a no-op.
func (m *KVStore) Close() error {
	return nil
}
