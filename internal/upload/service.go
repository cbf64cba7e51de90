// Package upload stores images in object storage and answers in the imgbb API format.
package upload

import (
	"bytes"
	"context"
	"fmt"
	"mime"
	"strconv"
	"time"

	"go.uber.org/zap"

	"github.com/s3bb/service/internal/imagemeta"
	"github.com/s3bb/service/internal/storage"
)

// Input is a single image taken from an upload request.
type Input struct {
	Data        []byte
	Filename    string
	ContentType string
	Name        string // optional title
	Expiration  string // optional expiration hint in seconds
}

// Service contains the upload and delete logic.
type Service struct {
	store storage.Storage
	log   *zap.Logger
	newID func() string
	now   func() time.Time
}

// NewService creates a new upload Service backed by store.
func NewService(store storage.Storage, log *zap.Logger) *Service {
	return &Service{
		store: store,
		log:   log,
		newID: NewID,
		now:   time.Now,
	}
}

// Upload writes the image to storage under a fresh random filename and
// returns the document describing it.
func (s *Service) Upload(ctx context.Context, in Input) (*Document, error) {
	now := s.now()
	id := s.newID()

	mimeType := resolveMIME(in.ContentType, in.Data)
	ext := ResolveExtension(in.Filename, mimeType)
	if ext == "" {
		ext = imagemeta.DetectExtension(in.Data)
	}
	filename := StoredFilename(id, ext)
	expiration := ClampExpiration(in.Expiration)

	doc := &Document{
		ID:         id,
		Title:      ResolveTitle(in.Name, in.Filename),
		Filename:   filename,
		MIME:       mimeType,
		Extension:  ext,
		URL:        s.store.PublicURL(filename),
		Size:       int64(len(in.Data)),
		Time:       now,
		Expiration: expiration,
	}

	if dim, ok := imagemeta.Probe(in.Data); ok {
		doc.Dimensions = &dim
	} else {
		s.log.Debug("image dimensions unavailable", zap.String("filename", filename), zap.String("mime", mimeType))
	}

	metadata := map[string]string{
		storage.MetaUploaded:   strconv.FormatInt(now.Unix(), 10),
		storage.MetaExpiration: strconv.FormatInt(expiration, 10),
	}
	if err := s.store.Upload(ctx, filename, bytes.NewReader(in.Data), doc.Size, mimeType, metadata); err != nil {
		return nil, fmt.Errorf("store image: %w", err)
	}

	s.log.Info("image stored", zap.String("filename", filename), zap.Int64("size", doc.Size))
	return doc, nil
}

// Delete removes the stored image. Deleting an unknown filename succeeds.
func (s *Service) Delete(ctx context.Context, filename string) error {
	if err := s.store.Delete(ctx, filename); err != nil {
		return fmt.Errorf("delete image: %w", err)
	}
	s.log.Info("image deleted", zap.String("filename", filename))
	return nil
}

// resolveMIME keeps the declared media type unless it is missing or generic,
// in which case the payload is sniffed.
func resolveMIME(declared string, data []byte) string {
	mediaType, _, err := mime.ParseMediaType(declared)
	if err != nil || mediaType == "application/octet-stream" {
		return imagemeta.DetectMIME(data)
	}
	return mediaType
}
