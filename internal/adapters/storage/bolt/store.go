// Package bolt persiste el registro en un archivo bbolt local: el
// equivalente del almacenamiento local del navegador en la versión
// original. Un solo bucket, claves fijas, valores JSON.
package bolt

import (
	"fmt"

	"go.etcd.io/bbolt"
)

var bucketRegistry = []byte("registry")

// keyAnimals guarda la lista ordenada completa bajo una sola clave,
// así cada Replace es una escritura atómica de la lista entera.
var keyAnimals = []byte("animals")

type Store struct {
	db *bbolt.DB
}

// Open abre (o crea) el archivo de datos y garantiza el bucket.
func Open(path string) (*Store, error) {
	db, err := bbolt.Open(path, 0o600, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to open boltdb: %w", err)
	}

	err = db.Update(func(tx *bbolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(bucketRegistry)
		return err
	})
	if err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to create registry bucket: %w", err)
	}

	return &Store{db: db}, nil
}

func (s *Store) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}
