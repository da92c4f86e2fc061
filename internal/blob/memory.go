package blob

import (
	"bytes"
	"context"
	"io"
	"sync"
)

type memoryEntry struct {
	info Info
	data []byte
}

// Memory es un Store en memoria, pensado para tests.
type Memory struct {
	mu   sync.RWMutex
	objs map[string]memoryEntry
}

func NewMemory() *Memory {
	return &Memory{objs: make(map[string]memoryEntry)}
}

func (s *Memory) Driver() Driver { return DriverMemory }

func (s *Memory) Put(_ context.Context, key string, r io.Reader, contentType string) (Info, error) {
	b, err := io.ReadAll(r)
	if err != nil {
		return Info{}, err
	}

	info := Info{
		Key:         key,
		Size:        int64(len(b)),
		ContentType: contentType,
		URL:         "memory://" + key,
	}

	s.mu.Lock()
	s.objs[key] = memoryEntry{info: info, data: b}
	s.mu.Unlock()

	return info, nil
}

func (s *Memory) Get(_ context.Context, key string) (Info, io.ReadCloser, error) {
	s.mu.RLock()
	obj, ok := s.objs[key]
	s.mu.RUnlock()

	if !ok {
		return Info{}, nil, ErrNotFound
	}

	cp := make([]byte, len(obj.data))
	copy(cp, obj.data)
	return obj.info, io.NopCloser(bytes.NewReader(cp)), nil
}

func (s *Memory) Delete(_ context.Context, key string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, ok := s.objs[key]
	if ok {
		delete(s.objs, key)
	}
	return ok, nil
}
