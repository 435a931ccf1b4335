package delivery

import (
	"fmt"
	"net/http"
	"runtime/debug"

	"go.uber.org/zap"

	"github.com/MisterMaks/go-url-shortener/internal/logger"
)

// Cache headers.
const (
	CacheControlKey   string = "Cache-Control"
	CacheControlValue string = "public, max-age=10"
	VaryKey           string = "Vary"
	VaryValue         string = "Accept-Encoding"
)

// PanicKey is log key for recovered panic.
const PanicKey string = "panic"

// Recoverer turns panic into 500 ErrorDetails.
func Recoverer(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			rec := recover()
			if rec == nil {
				return
			}
			if rec == http.ErrAbortHandler {
				panic(rec)
			}
			logger.GetContextLogger(r.Context()).Error("Recovered from panic",
				zap.String(PanicKey, fmt.Sprint(rec)),
				zap.ByteString("stack", debug.Stack()),
			)
			WriteError(w, r, http.StatusInternalServerError, MessageInternalServerError)
		}()
		next.ServeHTTP(w, r)
	})
}

// CacheHeaders sets response caching headers.
func CacheHeaders(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set(CacheControlKey, CacheControlValue)
		w.Header().Add(VaryKey, VaryValue)
		next.ServeHTTP(w, r)
	})
}
