package blob

import (
	"context"
	"fmt"
	"os"
)

// FromEnv arma el Store según BLOB_DRIVER:
//   - "s3":  bucket en BLOB_BUCKET, credenciales por la cadena default de AWS
//   - "fs" o vacío: archivos bajo BLOB_DIR (default ./uploads), servidos
//     desde BASE_URL (default http://localhost:8080)
//   - "memory": solo útil en dev/tests
func FromEnv(ctx context.Context) (Store, error) {
	switch Driver(os.Getenv("BLOB_DRIVER")) {
	case DriverS3:
		return NewS3(ctx, os.Getenv("BLOB_BUCKET"))
	case DriverMemory:
		return NewMemory(), nil
	case DriverFilesystem, Driver(""):
		dir := os.Getenv("BLOB_DIR")
		if dir == "" {
			dir = "uploads"
		}
		baseURL := os.Getenv("BASE_URL")
		if baseURL == "" {
			baseURL = "http://localhost:8080"
		}
		return NewFilesystem(dir, baseURL)
	default:
		return nil, fmt.Errorf("unknown BLOB_DRIVER %q", os.Getenv("BLOB_DRIVER"))
	}
}
