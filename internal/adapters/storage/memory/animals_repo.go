package memory

import (
	"context"
	"sync"

	"animal-registry/internal/domain/animals"
)

type animalsRepo struct {
	mu   sync.RWMutex
	list []animals.Animal
}

// NewAnimalsRepo crea el repo in-memory (dev y tests).
func NewAnimalsRepo() animals.Repository {
	return &animalsRepo{list: []animals.Animal{}}
}

func (r *animalsRepo) List(ctx context.Context) ([]animals.Animal, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]animals.Animal, len(r.list))
	copy(out, r.list)
	return out, nil
}

func (r *animalsRepo) Replace(ctx context.Context, list []animals.Animal) error {
	cp := make([]animals.Animal, len(list))
	copy(cp, list)

	r.mu.Lock()
	defer r.mu.Unlock()

	r.list = cp
	return nil
}
