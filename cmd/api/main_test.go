package main

import (
	"bytes"
	"context"
	"image"
	"image/png"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/s3bb/service/internal/config"
)

type nopStore struct {
	uploads atomic.Int32
	deletes atomic.Int32
}

func (s *nopStore) Upload(_ context.Context, _ string, r io.Reader, _ int64, _ string, _ map[string]string) error {
	s.uploads.Add(1)
	_, err := io.Copy(io.Discard, r)
	return err
}

func (s *nopStore) Delete(context.Context, string) error {
	s.deletes.Add(1)
	return nil
}

func (s *nopStore) PublicURL(key string) string { return "https://images.s3.eu-west-1.amazonaws.com/" + key }

func testServer(t *testing.T, store *nopStore) *httptest.Server {
	t.Helper()
	cfg := &config.Config{
		APIKeys:        []string{"validkey123"},
		MaxUploadBytes: config.DefaultMaxUploadBytes,
	}
	srv := httptest.NewServer(newRouter(cfg, store, zap.NewNop()))
	t.Cleanup(srv.Close)
	return srv
}

func TestHealth(t *testing.T) {
	srv := testServer(t, &nopStore{})

	res, err := http.Get(srv.URL + "/health")
	require.NoError(t, err)
	defer res.Body.Close()

	body, _ := io.ReadAll(res.Body)
	assert.Equal(t, http.StatusOK, res.StatusCode)
	assert.JSONEq(t, `{"status":"ok"}`, string(body))
}

func TestUploadAndDeleteOverHTTP(t *testing.T) {
	store := &nopStore{}
	srv := testServer(t, store)

	var img bytes.Buffer
	require.NoError(t, png.Encode(&img, image.NewRGBA(image.Rect(0, 0, 10, 10))))

	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	require.NoError(t, mw.WriteField("key", "validkey123"))
	part, err := mw.CreateFormFile("image", "cat.png")
	require.NoError(t, err)
	_, err = part.Write(img.Bytes())
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	res, err := http.Post(srv.URL+"/upload", mw.FormDataContentType(), &body)
	require.NoError(t, err)
	res.Body.Close()
	assert.Equal(t, http.StatusOK, res.StatusCode)
	assert.Equal(t, int32(1), store.uploads.Load())

	req, err := http.NewRequest(http.MethodDelete, srv.URL+"/image/abc1234.png?key=validkey123", nil)
	require.NoError(t, err)
	res, err = http.DefaultClient.Do(req)
	require.NoError(t, err)
	res.Body.Close()
	assert.Equal(t, http.StatusOK, res.StatusCode)
	assert.Equal(t, int32(1), store.deletes.Load())
}

func TestUnknownRoute(t *testing.T) {
	srv := testServer(t, &nopStore{})

	res, err := http.Get(srv.URL + "/upload")
	require.NoError(t, err)
	res.Body.Close()
	assert.Equal(t, http.StatusMethodNotAllowed, res.StatusCode)
}
