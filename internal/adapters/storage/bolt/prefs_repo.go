package bolt

import (
	"context"
	"fmt"

	"go.etcd.io/bbolt"

	"animal-registry/internal/domain/prefs"
)

type prefsRepo struct {
	store *Store
}

// NewPrefsRepo expone el mismo bucket como key-value de preferencias.
// Las claves de prefs (theme, filters, sort) no colisionan con "animals".
func NewPrefsRepo(store *Store) prefs.Repository {
	return &prefsRepo{store: store}
}

func (r *prefsRepo) Get(ctx context.Context, key string) ([]byte, bool, error) {
	var (
		out   []byte
		found bool
	)

	err := r.store.db.View(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketRegistry)
		if bucket == nil {
			return fmt.Errorf("registry bucket not found")
		}

		raw := bucket.Get([]byte(key))
		if raw == nil {
			return nil
		}
		out = make([]byte, len(raw))
		copy(out, raw)
		found = true
		return nil
	})

	if err != nil {
		return nil, false, err
	}
	return out, found, nil
}

func (r *prefsRepo) Set(ctx context.Context, key string, value []byte) error {
	return r.store.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketRegistry)
		if bucket == nil {
			return fmt.Errorf("registry bucket not found")
		}
		return bucket.Put([]byte(key), value)
	})
}
