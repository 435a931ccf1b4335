package logger

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Log is global logger.
var Log *zap.Logger = zap.NewNop()

// LoggerKeyType is type for LoggerKey constant.
type LoggerKeyType string

// Constants for logger.
const (
	MethodKey            string        = "method"
	URIKey               string        = "uri"
	RequestIDKey         string        = "request_id"
	ExecutionDurationKey string        = "execution_duration"
	StatusCodeKey        string        = "status_code"
	ResponseBodySizeBKey string        = "response_body_size_B"
	RemoteAddrKey        string        = "remote_addr"
	RequestBodyKey       string        = "request_body"
	RequestIDHeader      string        = "X-Request-ID"
	LoggerKey            LoggerKeyType = "logger_key"
	RequestIDCtxKey      LoggerKeyType = "request_id_key"
)

// Initialize init logger.
func Initialize(level string) error {
	// преобразуем текстовый уровень логирования в zap.AtomicLevel
	lvl, err := zap.ParseAtomicLevel(strings.ToLower(level))
	if err != nil {
		return err
	}
	cfg := zap.NewProductionConfig()
	cfg.Level = lvl
	cfg.EncoderConfig.EncodeTime = zapcore.TimeEncoderOfLayout(time.RFC3339)
	zl, err := cfg.Build()
	if err != nil {
		return err
	}
	Log = zl
	return nil
}

func requestID(r *http.Request) string {
	if id := r.Header.Get(RequestIDHeader); id != "" {
		return id
	}
	return uuid.New().String()
}

// LoggerResponseWriter is logger for responses.
type LoggerResponseWriter struct {
	http.ResponseWriter
	bodySize   int
	statusCode int
}

// WriteHeader write status code in header.
func (lrw *LoggerResponseWriter) WriteHeader(statusCode int) {
	lrw.ResponseWriter.WriteHeader(statusCode)
	lrw.statusCode = statusCode
}

// Write write data in response and count body size.
func (lrw *LoggerResponseWriter) Write(bytes []byte) (int, error) {
	if lrw.statusCode == 0 {
		lrw.statusCode = http.StatusOK
	}
	bodySize, err := lrw.ResponseWriter.Write(bytes)
	lrw.bodySize += bodySize
	return bodySize, err
}

// RequestLogger is logger middleware for app.
func RequestLogger(h http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID := requestID(r)
		w.Header().Set(RequestIDHeader, requestID)
		lrw := &LoggerResponseWriter{ResponseWriter: w}
		Log.Info("got incoming HTTP request",
			zap.String(MethodKey, r.Method),
			zap.String(URIKey, r.RequestURI),
			zap.String(RemoteAddrKey, r.RemoteAddr),
			zap.String(RequestIDKey, requestID),
		)
		ctxLogger := Log.With(
			zap.String(RequestIDKey, requestID),
		)
		ctx := WithLogger(r.Context(), ctxLogger)
		ctx = context.WithValue(ctx, RequestIDCtxKey, requestID)
		now := time.Now()
		h.ServeHTTP(lrw, r.WithContext(ctx))
		Log.Info("processed incoming HTTP request",
			zap.Int(StatusCodeKey, lrw.statusCode),
			zap.Int(ResponseBodySizeBKey, lrw.bodySize),
			zap.Duration(ExecutionDurationKey, time.Since(now)),
			zap.String(RequestIDKey, requestID),
		)
	})
}

// WithLogger puts logger into context.
func WithLogger(ctx context.Context, l *zap.Logger) context.Context {
	return context.WithValue(ctx, LoggerKey, l)
}

// GetContextLogger gets logger from context.
func GetContextLogger(ctx context.Context) *zap.Logger {
	if ctx == nil {
		return Log
	}
	logger, ok := ctx.Value(LoggerKey).(*zap.Logger)
	if !ok || logger == nil {
		return Log
	}
	return logger
}

// GetRequestID gets request id put into context by RequestLogger.
func GetRequestID(ctx context.Context) string {
	requestID, _ := ctx.Value(RequestIDCtxKey).(string)
	return requestID
}
