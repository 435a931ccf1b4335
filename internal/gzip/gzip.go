// Package gzip contains middleware compressing responses and decompressing requests.
package gzip

import (
	"compress/gzip"
	"io"
	"net/http"
	"strings"

	"go.uber.org/zap"

	"github.com/MisterMaks/go-url-shortener/internal/logger"
)

// Used constants.
const (
	GzipKey            string = "gzip"
	ContentEncodingKey string = "Content-Encoding"
	ContentLengthKey   string = "Content-Length"
	AcceptEncodingKey  string = "Accept-Encoding"
)

// compressWriter compresses successful responses with body.
// Other responses are written as is.
type compressWriter struct {
	w           http.ResponseWriter
	zw          *gzip.Writer
	compress    bool
	wroteHeader bool
}

func newCompressWriter(w http.ResponseWriter) *compressWriter {
	return &compressWriter{w: w}
}

// Header return response header.
func (c *compressWriter) Header() http.Header {
	return c.w.Header()
}

// Write write data.
func (c *compressWriter) Write(p []byte) (int, error) {
	if !c.wroteHeader {
		c.WriteHeader(http.StatusOK)
	}
	if !c.compress {
		return c.w.Write(p)
	}
	if c.zw == nil {
		c.zw = gzip.NewWriter(c.w)
	}
	return c.zw.Write(p)
}

// WriteHeader write header.
func (c *compressWriter) WriteHeader(statusCode int) {
	if c.wroteHeader {
		return
	}
	c.wroteHeader = true
	if statusCode < http.StatusMultipleChoices && statusCode != http.StatusNoContent {
		c.compress = true
		c.w.Header().Set(ContentEncodingKey, GzipKey)
		c.w.Header().Del(ContentLengthKey)
	}
	c.w.WriteHeader(statusCode)
}

// Close flushes compressed data, if any.
func (c *compressWriter) Close() error {
	if c.zw == nil {
		return nil
	}
	return c.zw.Close()
}

// compressReader decompresses request body.
type compressReader struct {
	r  io.ReadCloser
	zr *gzip.Reader
}

func newCompressReader(r io.ReadCloser) (*compressReader, error) {
	zr, err := gzip.NewReader(r)
	if err != nil {
		return nil, err
	}

	return &compressReader{
		r:  r,
		zr: zr,
	}, nil
}

// Read read data.
func (c *compressReader) Read(p []byte) (n int, err error) {
	return c.zr.Read(p)
}

// Close close reader.
func (c *compressReader) Close() error {
	if err := c.r.Close(); err != nil {
		return err
	}
	return c.zr.Close()
}

// ErrorWriter writes response for request with broken gzip body.
type ErrorWriter func(w http.ResponseWriter, r *http.Request, statusCode int, message string)

// Middleware creates middleware which unzips requests and zips responses.
// onBadBody may be nil.
func Middleware(onBadBody ErrorWriter) func(http.Handler) http.Handler {
	return func(h http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctxLogger := logger.GetContextLogger(r.Context())

			if strings.Contains(r.Header.Get(ContentEncodingKey), GzipKey) {
				cr, err := newCompressReader(r.Body)
				if err != nil {
					ctxLogger.Warn("Failed to read gzip body", zap.Error(err))
					if onBadBody != nil {
						onBadBody(w, r, http.StatusBadRequest, "The request body is not valid gzip.")
					} else {
						w.WriteHeader(http.StatusBadRequest)
					}
					return
				}
				r.Body = cr
				defer func() {
					if err := cr.Close(); err != nil {
						ctxLogger.Warn("Failed to close compressReader", zap.Error(err))
					}
				}()
			}

			if !strings.Contains(r.Header.Get(AcceptEncodingKey), GzipKey) {
				h.ServeHTTP(w, r)
				return
			}

			cw := newCompressWriter(w)
			defer func() {
				if err := cw.Close(); err != nil {
					ctxLogger.Warn("Failed to close compressWriter", zap.Error(err))
				}
			}()
			h.ServeHTTP(cw, r)
		})
	}
}
