package upload

import (
	"mime"
	"path"
	"strings"

	"github.com/google/uuid"
)

// idLength is the number of characters of a stored image id.
const idLength = 7

// NewID returns a short random image id drawn from a version 4 UUID.
// Ids are not checked against existing objects; a collision overwrites.
func NewID() string {
	return strings.ReplaceAll(uuid.NewString(), "-", "")[:idLength]
}

// StoredFilename joins id and ext into the object key.
func StoredFilename(id, ext string) string {
	if ext == "" {
		return id
	}
	return id + "." + ext
}

// ResolveExtension prefers the extension of the uploaded filename and falls
// back to the MIME subtype, so "image/png" gives "png" and "image/svg+xml" gives "svg".
func ResolveExtension(filename, mimeType string) string {
	if ext := strings.TrimPrefix(path.Ext(filename), "."); ext != "" {
		return ext
	}

	mediaType, _, err := mime.ParseMediaType(mimeType)
	if err != nil {
		mediaType = mimeType
	}
	_, sub, ok := strings.Cut(mediaType, "/")
	if !ok {
		return ""
	}
	sub, _, _ = strings.Cut(sub, "+")
	return sub
}

// ResolveTitle returns name with whitespace runs replaced by underscores, or the
// filename without its extension when name is blank.
func ResolveTitle(name, filename string) string {
	if title := strings.Join(strings.Fields(name), "_"); title != "" {
		return title
	}
	base := path.Base(filename)
	if base == "." || base == "/" {
		return ""
	}
	return strings.TrimSuffix(base, path.Ext(base))
}
