package upload

import (
	"errors"
	"io"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"github.com/s3bb/service/internal/middleware"
	"github.com/s3bb/service/internal/response"
)

// imageField is the multipart field carrying the file.
const imageField = "image"

// Handler holds HTTP handlers for the image endpoints.
type Handler struct {
	svc *Service
	log *zap.Logger
}

// NewHandler creates a new upload Handler.
func NewHandler(svc *Service, log *zap.Logger) *Handler {
	return &Handler{svc: svc, log: log}
}

// Mount registers the image routes on r behind the API key check.
// Request bodies are capped at maxUploadBytes.
func (h *Handler) Mount(r chi.Router, keys middleware.KeySet, maxUploadBytes int64) {
	r.Group(func(r chi.Router) {
		r.Use(chiMiddleware.RequestSize(maxUploadBytes))
		r.Use(middleware.RequireAPIKey(keys, h.log))

		r.Post("/upload", h.Upload)
		r.Delete("/image", h.Delete)
		r.Delete("/image/", h.Delete)
		r.Delete("/image/{filename}", h.Delete)
	})
}

// Upload godoc
//
//	@Summary		Upload image
//	@Description	Store one image in the bucket under a random 7-character name. The expiration hint is clamped to 60..15552000 seconds and recorded as object metadata only.
//	@Tags			images
//	@Accept			multipart/form-data
//	@Produce		json
//	@Param			key			query		string	false	"API key (may also be sent as a form field)"
//	@Param			image		formData	file	true	"Image file"
//	@Param			name		formData	string	false	"Title; whitespace becomes underscores"
//	@Param			expiration	formData	string	false	"Expiration hint in seconds"
//	@Success		200			{object}	documentJSON
//	@Failure		400			{object}	response.Envelope
//	@Failure		401			{object}	response.Envelope
//	@Failure		413			{object}	response.Envelope
//	@Failure		500			{object}	response.Envelope
//	@Router			/upload [post]
func (h *Handler) Upload(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(middleware.MultipartMemory); err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			response.TooLarge(w, "image too large")
			return
		}
		response.BadRequest(w, "expected a multipart/form-data body")
		return
	}

	files := r.MultipartForm.File[imageField]
	switch {
	case len(files) == 0:
		response.BadRequest(w, "no image uploaded")
		return
	case len(files) > 1:
		response.BadRequest(w, "exactly one image is allowed")
		return
	}

	fh := files[0]
	f, err := fh.Open()
	if err != nil {
		h.log.Error("open uploaded file", zap.Error(err))
		response.InternalError(w)
		return
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		h.log.Error("read uploaded file", zap.Error(err))
		response.InternalError(w)
		return
	}

	doc, err := h.svc.Upload(r.Context(), Input{
		Data:        data,
		Filename:    fh.Filename,
		ContentType: fh.Header.Get("Content-Type"),
		Name:        r.FormValue("name"),
		Expiration:  r.FormValue("expiration"),
	})
	if err != nil {
		h.log.Error("upload failed", zap.String("original", fh.Filename), zap.Error(err))
		response.InternalError(w)
		return
	}

	response.JSON(w, http.StatusOK, doc)
}

// Delete godoc
//
//	@Summary		Delete image
//	@Description	Remove a stored image by filename. Unknown filenames are acknowledged the same way.
//	@Tags			images
//	@Produce		json
//	@Param			key			query		string	false	"API key (may also be sent in a form or JSON body)"
//	@Param			filename	path		string	true	"Stored filename, e.g. 2ndCYJK.png"
//	@Success		200			{object}	response.Envelope
//	@Failure		400			{object}	response.Envelope
//	@Failure		401			{object}	response.Envelope
//	@Failure		500			{object}	response.Envelope
//	@Router			/image/{filename} [delete]
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	filename := strings.TrimSpace(chi.URLParam(r, "filename"))
	if filename == "" {
		response.BadRequest(w, "filename is required")
		return
	}

	if err := h.svc.Delete(r.Context(), filename); err != nil {
		h.log.Error("delete failed", zap.String("filename", filename), zap.Error(err))
		response.InternalError(w)
		return
	}

	response.Message(w, "Image deleted")
}
