// Package blob abstrae dónde quedan las imágenes subidas: memoria
// (tests), filesystem local (default) o un bucket S3.
package blob

import (
	"context"
	"errors"
	"io"
)

// Driver identifica el backend de almacenamiento.
type Driver string

const (
	DriverMemory     Driver = "memory"
	DriverFilesystem Driver = "fs"
	DriverS3         Driver = "s3"
)

// Info describe un blob ya almacenado. URL es pública y estable.
type Info struct {
	Key         string `json:"pathname"`
	Size        int64  `json:"size"`
	ContentType string `json:"contentType"`
	URL         string `json:"url"`
}

// Store es el contrato mínimo que necesita el upload de imágenes.
type Store interface {
	Put(ctx context.Context, key string, r io.Reader, contentType string) (Info, error)
	Get(ctx context.Context, key string) (Info, io.ReadCloser, error)
	Delete(ctx context.Context, key string) (bool, error)
	Driver() Driver
}

var ErrNotFound = errors.New("blob not found")
