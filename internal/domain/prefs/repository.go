package prefs

import "context"

// Repository es un key-value plano: cada preferencia vive bajo su clave
// fija como JSON. found=false cuando la clave nunca se escribió.
type Repository interface {
	Get(ctx context.Context, key string) (value []byte, found bool, err error)
	Set(ctx context.Context, key string, value []byte) error
}
