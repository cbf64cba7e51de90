package middleware

import (
	"net/http"

	"go.uber.org/zap"

	"github.com/s3bb/service/internal/response"
)

// Recover turns a panic in a downstream handler into a logged 500 response.
func Recover(log *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				rvr := recover()
				if rvr == nil {
					return
				}
				if rvr == http.ErrAbortHandler {
					panic(rvr)
				}
				log.Error("handler panic",
					zap.Any("panic", rvr),
					zap.String("method", r.Method),
					zap.String("path", r.URL.Path),
					zap.Stack("stack"),
				)
				response.InternalError(w)
			}()
			next.ServeHTTP(w, r)
		})
	}
}
