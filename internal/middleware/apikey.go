package middleware

import (
	"bytes"
	"crypto/subtle"
	"encoding/json"
	"errors"
	"io"
	"mime"
	"net/http"
	"net/url"

	"go.uber.org/zap"

	"github.com/s3bb/service/internal/response"
)

// MultipartMemory is the part of a multipart body kept in memory; the rest spills to temp files.
const MultipartMemory = 32 << 20

// KeySet is the immutable set of accepted API keys.
type KeySet struct {
	keys [][]byte
}

// NewKeySet copies keys into a KeySet. Empty entries are ignored.
func NewKeySet(keys []string) KeySet {
	ks := KeySet{}
	for _, k := range keys {
		if k != "" {
			ks.keys = append(ks.keys, []byte(k))
		}
	}
	return ks
}

// Contains reports whether key is accepted. Every configured key is compared
// so the time taken does not depend on which one matched.
func (ks KeySet) Contains(key string) bool {
	if key == "" {
		return false
	}
	match := 0
	for _, k := range ks.keys {
		match |= subtle.ConstantTimeCompare(k, []byte(key))
	}
	return match == 1
}

// RequireAPIKey returns middleware that rejects requests whose "key" parameter,
// read from the query string or the request body, is not in keys.
func RequireAPIKey(keys KeySet, log *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			key, err := apiKeyFrom(r)
			var maxErr *http.MaxBytesError
			if errors.As(err, &maxErr) {
				response.TooLarge(w, "request body too large")
				return
			}
			if err != nil {
				log.Debug("unreadable request body", zap.String("path", r.URL.Path), zap.Error(err))
			}

			if !keys.Contains(key) {
				log.Info("rejected API key",
					zap.String("method", r.Method),
					zap.String("path", r.URL.Path),
					zap.String("remote", r.RemoteAddr),
				)
				response.Unauthorized(w, "invalid API key")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// apiKeyFrom looks for the key in the query string first, then in a form or
// JSON body. Bodies it reads outside of multipart parsing are restored for
// the next handler.
func apiKeyFrom(r *http.Request) (string, error) {
	if k := r.URL.Query().Get("key"); k != "" {
		return k, nil
	}
	if r.Body == nil || r.Body == http.NoBody {
		return "", nil
	}

	mediaType, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))
	switch mediaType {
	case "multipart/form-data":
		if err := r.ParseMultipartForm(MultipartMemory); err != nil {
			return "", err
		}
		return r.FormValue("key"), nil

	case "application/x-www-form-urlencoded":
		// ParseForm only reads bodies of POST, PUT and PATCH requests.
		body, err := readAndRestore(r)
		if err != nil {
			return "", err
		}
		vals, err := url.ParseQuery(string(body))
		if err != nil {
			return "", err
		}
		return vals.Get("key"), nil

	case "application/json":
		body, err := readAndRestore(r)
		if err != nil {
			return "", err
		}
		var payload struct {
			Key string `json:"key"`
		}
		if err := json.Unmarshal(body, &payload); err != nil {
			return "", err
		}
		return payload.Key, nil
	}
	return "", nil
}

func readAndRestore(r *http.Request) ([]byte, error) {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		return nil, err
	}
	r.Body = io.NopCloser(bytes.NewReader(body))
	return body, nil
}
