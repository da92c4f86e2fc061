package bolt

import (
	"context"
	"encoding/json"
	"fmt"

	"go.etcd.io/bbolt"

	"animal-registry/internal/domain/animals"
)

type animalsRepo struct {
	store *Store
}

// NewAnimalsRepo expone la lista persistida como animals.Repository.
func NewAnimalsRepo(store *Store) animals.Repository {
	return &animalsRepo{store: store}
}

func (r *animalsRepo) List(ctx context.Context) ([]animals.Animal, error) {
	var out []animals.Animal

	err := r.store.db.View(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketRegistry)
		if bucket == nil {
			return fmt.Errorf("registry bucket not found")
		}

		raw := bucket.Get(keyAnimals)
		if raw == nil {
			out = []animals.Animal{}
			return nil
		}
		return json.Unmarshal(raw, &out)
	})

	if err != nil {
		return nil, fmt.Errorf("failed to load animals: %w", err)
	}
	return out, nil
}

func (r *animalsRepo) Replace(ctx context.Context, list []animals.Animal) error {
	raw, err := json.Marshal(list)
	if err != nil {
		return fmt.Errorf("failed to marshal animals: %w", err)
	}

	return r.store.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketRegistry)
		if bucket == nil {
			return fmt.Errorf("registry bucket not found")
		}
		return bucket.Put(keyAnimals, raw)
	})
}
