package upload

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewID(t *testing.T) {
	hex7 := regexp.MustCompile(`^[0-9a-f]{7}$`)
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		id := NewID()
		assert.Regexp(t, hex7, id)
		seen[id] = true
	}
	assert.Greater(t, len(seen), 95)
}

func TestStoredFilename(t *testing.T) {
	assert.Equal(t, "abc1234.png", StoredFilename("abc1234", "png"))
	assert.Equal(t, "abc1234", StoredFilename("abc1234", ""))
}

func TestResolveExtension(t *testing.T) {
	tests := []struct {
		filename, mime, want string
	}{
		{"cat.png", "image/png", "png"},
		{"cat.JPG", "image/png", "JPG"},
		{"archive.tar.gz", "", "gz"},
		{"cat", "image/png", "png"},
		{"cat.", "image/webp", "webp"},
		{"blob", "image/svg+xml", "svg"},
		{"blob", "image/jpeg; charset=binary", "jpeg"},
		{"blob", "", ""},
		{"blob", "garbage", ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ResolveExtension(tt.filename, tt.mime), "%s / %s", tt.filename, tt.mime)
	}
}

func TestResolveTitle(t *testing.T) {
	tests := []struct {
		name, filename, want string
	}{
		{"", "cat.png", "cat"},
		{"My Photo", "cat.png", "My_Photo"},
		{"  My   big\tPhoto  ", "cat.png", "My_big_Photo"},
		{"   ", "holiday.final.jpg", "holiday.final"},
		{"", "noext", "noext"},
		{"", "", ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ResolveTitle(tt.name, tt.filename), "%q / %q", tt.name, tt.filename)
	}
}
