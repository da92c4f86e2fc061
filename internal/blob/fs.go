package blob

import (
	"context"
	"errors"
	"fmt"
	"io"
	"mime"
	"net/http"
	"os"
	"path/filepath"
	"strings"
)

// Filesystem guarda los blobs como archivos planos bajo root y los
// sirve en baseURL (montado como /uploads/ en el router).
type Filesystem struct {
	root    string
	baseURL string
}

func NewFilesystem(root, baseURL string) (*Filesystem, error) {
	if err := os.MkdirAll(root, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create blob dir: %w", err)
	}
	return &Filesystem{
		root:    root,
		baseURL: strings.TrimSuffix(baseURL, "/"),
	}, nil
}

func (s *Filesystem) Driver() Driver { return DriverFilesystem }

// FileServer sirve el contenido de los blobs por HTTP.
func (s *Filesystem) FileServer() http.Handler {
	return http.FileServer(http.Dir(s.root))
}

func (s *Filesystem) Put(_ context.Context, key string, r io.Reader, contentType string) (Info, error) {
	path, err := s.safePath(key)
	if err != nil {
		return Info{}, err
	}

	f, err := os.Create(path)
	if err != nil {
		return Info{}, err
	}

	n, err := io.Copy(f, r)
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		_ = os.Remove(path)
		return Info{}, err
	}

	return Info{
		Key:         key,
		Size:        n,
		ContentType: contentType,
		URL:         s.baseURL + "/uploads/" + key,
	}, nil
}

func (s *Filesystem) Get(_ context.Context, key string) (Info, io.ReadCloser, error) {
	path, err := s.safePath(key)
	if err != nil {
		return Info{}, nil, err
	}

	f, err := os.Open(path)
	if errors.Is(err, os.ErrNotExist) {
		return Info{}, nil, ErrNotFound
	}
	if err != nil {
		return Info{}, nil, err
	}

	st, err := f.Stat()
	if err != nil {
		_ = f.Close()
		return Info{}, nil, err
	}

	return Info{
		Key:         key,
		Size:        st.Size(),
		ContentType: mime.TypeByExtension(filepath.Ext(key)),
		URL:         s.baseURL + "/uploads/" + key,
	}, f, nil
}

func (s *Filesystem) Delete(_ context.Context, key string) (bool, error) {
	path, err := s.safePath(key)
	if err != nil {
		return false, err
	}

	err = os.Remove(path)
	if errors.Is(err, os.ErrNotExist) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

// safePath rechaza claves que escapen del root (path traversal).
func (s *Filesystem) safePath(key string) (string, error) {
	if key == "" || strings.HasPrefix(key, "/") || strings.Contains(key, "..") {
		return "", fmt.Errorf("invalid blob key %q", key)
	}
	return filepath.Join(s.root, filepath.Clean(key)), nil
}
