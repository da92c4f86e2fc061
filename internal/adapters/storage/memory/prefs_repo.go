package memory

import (
	"context"
	"sync"

	"animal-registry/internal/domain/prefs"
)

type prefsRepo struct {
	mu     sync.RWMutex
	values map[string][]byte
}

// NewPrefsRepo crea el key-value de preferencias in-memory.
func NewPrefsRepo() prefs.Repository {
	return &prefsRepo{values: make(map[string][]byte)}
}

func (r *prefsRepo) Get(ctx context.Context, key string) ([]byte, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	v, ok := r.values[key]
	if !ok {
		return nil, false, nil
	}
	cp := make([]byte, len(v))
	copy(cp, v)
	return cp, true, nil
}

func (r *prefsRepo) Set(ctx context.Context, key string, value []byte) error {
	cp := make([]byte, len(value))
	copy(cp, value)

	r.mu.Lock()
	defer r.mu.Unlock()

	r.values[key] = cp
	return nil
}
