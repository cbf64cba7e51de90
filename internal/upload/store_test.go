package upload

import (
	"bytes"
	"context"
	"errors"
	"image"
	"image/png"
	"io"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
)

var errStoreDown = errors.New("store unavailable")

type putCall struct {
	key         string
	data        []byte
	size        int64
	contentType string
	metadata    map[string]string
}

// memStore is an in-memory storage.Storage that records every call.
type memStore struct {
	mu        sync.Mutex
	puts      []putCall
	deletes   []string
	objects   map[string][]byte
	uploadErr error
	deleteErr error
}

func newMemStore() *memStore {
	return &memStore{objects: make(map[string][]byte)}
}

func (m *memStore) Upload(_ context.Context, key string, reader io.Reader, size int64, contentType string, metadata map[string]string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.uploadErr != nil {
		return m.uploadErr
	}
	data, err := io.ReadAll(reader)
	if err != nil {
		return err
	}
	m.puts = append(m.puts, putCall{key: key, data: data, size: size, contentType: contentType, metadata: metadata})
	m.objects[key] = data
	return nil
}

func (m *memStore) Delete(_ context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.deleteErr != nil {
		return m.deleteErr
	}
	m.deletes = append(m.deletes, key)
	delete(m.objects, key)
	return nil
}

func (m *memStore) PublicURL(key string) string {
	return "https://images.s3.eu-west-1.amazonaws.com/" + key
}

func (m *memStore) calls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.puts) + len(m.deletes)
}

func pngBytes(t *testing.T, w, h int) []byte {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, image.NewRGBA(image.Rect(0, 0, w, h))))
	return buf.Bytes()
}
