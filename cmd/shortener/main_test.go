package main

import (
	"bytes"
	"compress/gzip"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MisterMaks/go-url-shortener/internal/app"
	appDeliveryInternal "github.com/MisterMaks/go-url-shortener/internal/app/delivery"
	appRepoInternal "github.com/MisterMaks/go-url-shortener/internal/app/repo"
	appUsecaseInternal "github.com/MisterMaks/go-url-shortener/internal/app/usecase"
	"github.com/MisterMaks/go-url-shortener/internal/cache"
	gzipInternal "github.com/MisterMaks/go-url-shortener/internal/gzip"
	"github.com/MisterMaks/go-url-shortener/internal/health"
	"github.com/MisterMaks/go-url-shortener/internal/logger"
	"github.com/MisterMaks/go-url-shortener/internal/ratelimit"
)

const (
	TestDestination string = "https://example.com"
	ContentTypeKey  string = "Content-Type"
	ApplicationJSON string = "application/json"
)

type failingPinger struct{}

func (failingPinger) Ping(context.Context) error {
	return errors.New("connection refused")
}

func newTestServer(t *testing.T, middlewares *Middlewares, checks ...health.Check) *httptest.Server {
	t.Helper()

	responseCache := cache.NewInmem()
	t.Cleanup(func() { _ = responseCache.Close() })

	appUsecase, err := appUsecaseInternal.NewAppUsecase(
		appRepoInternal.NewAppRepoInmem(),
		responseCache,
		CountRegenerations,
		PathLength,
		MaxPathLength,
		ResponseCacheTTL,
	)
	require.NoError(t, err)

	checks = append([]health.Check{health.Self(), health.PingCheck(DBCheckName, appUsecase, health.TagDB)}, checks...)
	checker := health.NewChecker(time.Second, checks...)

	if middlewares == nil {
		middlewares = &Middlewares{
			RequestLogger: logger.RequestLogger,
			Recoverer:     appDeliveryInternal.Recoverer,
			CacheHeaders:  appDeliveryInternal.CacheHeaders,
			Gzip:          gzipInternal.Middleware(appDeliveryInternal.WriteError),
		}
	}

	ts := httptest.NewServer(shortenerRouter(appDeliveryInternal.NewAppHandler(appUsecase), checker, middlewares))
	t.Cleanup(ts.Close)

	ts.Client().CheckRedirect = func(*http.Request, []*http.Request) error {
		return http.ErrUseLastResponse
	}
	return ts
}

func testRequest(t *testing.T, ts *httptest.Server, method, path, body string) *http.Response {
	t.Helper()
	var reader io.Reader
	if body != "" {
		reader = bytes.NewBufferString(body)
	}
	req, err := http.NewRequest(method, ts.URL+path, reader)
	require.NoError(t, err)
	if body != "" {
		req.Header.Set(ContentTypeKey, ApplicationJSON)
	}
	resp, err := ts.Client().Do(req)
	require.NoError(t, err)
	return resp
}

func decode[T any](t *testing.T, resp *http.Response) T {
	t.Helper()
	defer resp.Body.Close()
	var v T
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&v))
	return v
}

func TestRouter_ShortURLLifecycle(t *testing.T) {
	ts := newTestServer(t, nil)

	resp := testRequest(t, ts, http.MethodPost, "/", `{"destination":"`+TestDestination+`"}`)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	assert.Equal(t, appDeliveryInternal.CacheControlValue, resp.Header.Get(appDeliveryInternal.CacheControlKey))
	assert.NotEmpty(t, resp.Header.Get(logger.RequestIDHeader))
	created := decode[app.ShortURL](t, resp)
	assert.Len(t, created.Path, int(PathLength))
	assert.Equal(t, TestDestination, created.Destination)
	assert.False(t, created.CreatedAt.IsZero())

	resp = testRequest(t, ts, http.MethodPost, "/get-path", `{"path":"`+created.Path+`"}`)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	found := decode[app.ShortURL](t, resp)
	assert.Equal(t, created.Path, found.Path)
	assert.Equal(t, TestDestination, found.Destination)

	resp = testRequest(t, ts, http.MethodPost, "/", `{"destination":"https://other.example.com","path":"`+created.Path+`"}`)
	require.Equal(t, http.StatusConflict, resp.StatusCode)
	details := decode[app.ErrorDetails](t, resp)
	assert.Equal(t, http.StatusConflict, details.StatusCode)

	resp = testRequest(t, ts, http.MethodDelete, "/"+created.Path, "")
	require.Equal(t, http.StatusNoContent, resp.StatusCode)
	resp.Body.Close()

	resp = testRequest(t, ts, http.MethodPost, "/get-path", `{"path":"`+created.Path+`"}`)
	require.Equal(t, http.StatusNotFound, resp.StatusCode)
	details = decode[app.ErrorDetails](t, resp)
	assert.Equal(t, app.ErrorDetails{StatusCode: http.StatusNotFound, Message: appDeliveryInternal.MessageNotFound}, details)

	resp = testRequest(t, ts, http.MethodDelete, "/"+created.Path, "")
	require.Equal(t, http.StatusNotFound, resp.StatusCode)
	resp.Body.Close()
}

func TestRouter_ExplicitPath(t *testing.T) {
	ts := newTestServer(t, nil)

	resp := testRequest(t, ts, http.MethodPost, "/", `{"destination":"`+TestDestination+`","path":"my-link_1"}`)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	assert.Equal(t, "my-link_1", decode[app.ShortURL](t, resp).Path)

	resp = testRequest(t, ts, http.MethodPost, "/", `{"destination":"`+TestDestination+`","path":"my link"}`)
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, http.StatusBadRequest, decode[app.ErrorDetails](t, resp).StatusCode)
}

func TestRouter_Health(t *testing.T) {
	ts := newTestServer(t, nil, health.PingCheck(CacheCheckName, failingPinger{}, health.TagCache))

	resp := testRequest(t, ts, http.MethodGet, "/hc", "")
	require.Equal(t, http.StatusServiceUnavailable, resp.StatusCode)
	report := decode[health.Report](t, resp)
	assert.Equal(t, health.Unhealthy, report.Status)
	assert.Equal(t, health.Healthy, report.Entries[DBCheckName].Status)
	assert.Equal(t, health.Unhealthy, report.Entries[CacheCheckName].Status)

	resp = testRequest(t, ts, http.MethodGet, "/liveness", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	report = decode[health.Report](t, resp)
	assert.Equal(t, health.Healthy, report.Status)
	require.Len(t, report.Entries, 1)
	assert.Equal(t, "This service is healthy", report.Entries[health.TagSelf].Description)
}

func TestRouter_HealthInmemCache(t *testing.T) {
	responseCache := cache.NewInmem()
	defer responseCache.Close()
	ts := newTestServer(t, nil, health.PingCheck(CacheCheckName, responseCache, health.TagCache))

	resp := testRequest(t, ts, http.MethodGet, "/hc", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	report := decode[health.Report](t, resp)
	assert.Equal(t, health.Healthy, report.Status)
	assert.Equal(t, health.Healthy, report.Entries[CacheCheckName].Status)
	assert.Equal(t, []string{health.TagCache}, report.Entries[CacheCheckName].Tags)
}

func TestRouter_Swagger(t *testing.T) {
	ts := newTestServer(t, nil)

	resp := testRequest(t, ts, http.MethodGet, "/", "")
	resp.Body.Close()
	require.Equal(t, http.StatusFound, resp.StatusCode)
	assert.Equal(t, "/swagger/index.html", resp.Header.Get("Location"))

	resp = testRequest(t, ts, http.MethodGet, "/swagger/doc.json", "")
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), `"/get-path"`)
}

func TestRouter_Gzip(t *testing.T) {
	ts := newTestServer(t, nil)

	buf := bytes.NewBuffer(nil)
	zw := gzip.NewWriter(buf)
	_, err := zw.Write([]byte(`{"destination":"` + TestDestination + `"}`))
	require.NoError(t, err)
	require.NoError(t, zw.Close())

	req, err := http.NewRequest(http.MethodPost, ts.URL+"/", buf)
	require.NoError(t, err)
	req.Header.Set(ContentTypeKey, ApplicationJSON)
	req.Header.Set(gzipInternal.ContentEncodingKey, gzipInternal.GzipKey)
	req.Header.Set(gzipInternal.AcceptEncodingKey, gzipInternal.GzipKey)

	resp, err := ts.Client().Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	require.Equal(t, gzipInternal.GzipKey, resp.Header.Get(gzipInternal.ContentEncodingKey))

	zr, err := gzip.NewReader(resp.Body)
	require.NoError(t, err)
	var created app.ShortURL
	require.NoError(t, json.NewDecoder(zr).Decode(&created))
	assert.Equal(t, TestDestination, created.Destination)
}

func TestRouter_RateLimit(t *testing.T) {
	limiter := ratelimit.NewLimiter(1, 0)
	defer limiter.Close()

	ts := newTestServer(t, &Middlewares{
		Recoverer: appDeliveryInternal.Recoverer,
		RateLimit: limiter.Middleware(appDeliveryInternal.WriteError),
	})

	resp := testRequest(t, ts, http.MethodGet, "/liveness", "")
	resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp = testRequest(t, ts, http.MethodGet, "/liveness", "")
	require.Equal(t, http.StatusTooManyRequests, resp.StatusCode)
	assert.Equal(t, ratelimit.Message, decode[app.ErrorDetails](t, resp).Message)
}

func Test_serve(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	server := &http.Server{
		Addr:    "127.0.0.1:0",
		Handler: http.NotFoundHandler(),
	}

	errCh := make(chan error, 1)
	go func() { errCh <- serve(ctx, server, time.Second) }()

	cancel()
	select {
	case err := <-errCh:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not stop")
	}
}
