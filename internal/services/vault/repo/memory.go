package repo

import (
	"bytes"
	"context"
	"encoding/json"
	"sort"
	"sync"

	perr "floaty/internal/platform/errors"
	"floaty/internal/services/vault/domain"
)

// Memory is the in process KV used when Postgres is disabled and in tests
type Memory struct {
	mu   sync.RWMutex
	data map[string]json.RawMessage
}

var _ domain.KV = (*Memory)(nil)

// NewMemory returns an empty Memory store
func NewMemory() *Memory { return &Memory{data: map[string]json.RawMessage{}} }

// Get returns stored values for the keys of defaults, defaults otherwise
func (m *Memory) Get(_ context.Context, defaults domain.Bag) (domain.Bag, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make(domain.Bag, len(defaults))
	for k, def := range defaults {
		if v, ok := m.data[k]; ok {
			out[k] = clone(v)
			continue
		}
		out[k] = def
	}
	return out, nil
}

// Set stores every key of bag under one lock
func (m *Memory) Set(_ context.Context, bag domain.Bag) error {
	for k, v := range bag {
		if !json.Valid(v) {
			return perr.Newf(perr.ErrorCodeJSON, "vault: value for %q is not valid JSON", k)
		}
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	for k, v := range bag {
		m.data[k] = clone(v)
	}
	return nil
}

func clone(v json.RawMessage) json.RawMessage { return bytes.Clone(v) }

func sortedKeys(bag domain.Bag) []string {
	keys := make([]string, 0, len(bag))
	for k := range bag {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
