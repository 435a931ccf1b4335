package frontend

import (
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MisterMaks/go-url-shortener/internal/app"
	"github.com/MisterMaks/go-url-shortener/internal/frontend/mocks"
)

const (
	TestPath        string = "aZ3k9QxB"
	TestMissingPath string = "missing"
	TestDestination string = "https://example.com"
)

var TestURL = &app.ShortURL{Path: TestPath, Destination: TestDestination}

type flash struct {
	info string
	err  string
}

func postForm(router http.Handler, path string, form url.Values) *http.Response {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w.Result()
}

func readFlash(t *testing.T, res *http.Response) flash {
	t.Helper()
	var f flash
	for _, c := range res.Cookies() {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.AddCookie(c)
		message := popFlash(httptest.NewRecorder(), req, c.Name)
		switch c.Name {
		case FlashInfoCookie:
			f.info = message
		case FlashErrorCookie:
			f.err = message
		}
	}
	return f
}

func newTestHandler(t *testing.T) (*mocks.MockAPIClientInterface, http.Handler) {
	t.Helper()
	ctrl := gomock.NewController(t)
	m := mocks.NewMockAPIClientInterface(ctrl)
	h, err := NewHandler(m)
	require.NoError(t, err)
	return m, h.Router()
}

func TestHandler_Create(t *testing.T) {
	tests := []struct {
		name  string
		form  url.Values
		setup func(m *mocks.MockAPIClientInterface)
		want  flash
	}{
		{
			name: "created",
			form: url.Values{DestinationField: {TestDestination}},
			setup: func(m *mocks.MockAPIClientInterface) {
				m.EXPECT().Create(gomock.Any(), TestDestination, "").Return(TestURL, nil)
			},
			want: flash{info: "URL have been created correctly. Short link: /" + TestPath},
		},
		{
			name: "path exists",
			form: url.Values{DestinationField: {TestDestination}, PathField: {TestPath}},
			setup: func(m *mocks.MockAPIClientInterface) {
				m.EXPECT().Create(gomock.Any(), TestDestination, TestPath).
					Return(nil, &APIError{StatusCode: http.StatusConflict, Message: "URL path already exists."})
			},
			want: flash{err: "URL path already exists."},
		},
		{
			name: "api unavailable",
			form: url.Values{DestinationField: {TestDestination}},
			setup: func(m *mocks.MockAPIClientInterface) {
				m.EXPECT().Create(gomock.Any(), TestDestination, "").Return(nil, errors.New("connection refused"))
			},
			want: flash{err: MessageUnexpected},
		},
		{
			name:  "empty destination",
			form:  url.Values{},
			setup: func(*mocks.MockAPIClientInterface) {},
			want:  flash{err: MessageEmptyTarget},
		},
		{
			name:  "invalid path",
			form:  url.Values{DestinationField: {TestDestination}, PathField: {"a b"}},
			setup: func(*mocks.MockAPIClientInterface) {},
			want:  flash{err: "The Path field must match the regular expression '^[a-zA-Z0-9_-]*$'."},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, router := newTestHandler(t)
			tt.setup(m)

			res := postForm(router, "/create", tt.form)
			defer res.Body.Close()

			assert.Equal(t, http.StatusSeeOther, res.StatusCode)
			assert.Equal(t, "/", res.Header.Get("Location"))
			assert.Equal(t, tt.want, readFlash(t, res))
		})
	}
}

func TestHandler_Find(t *testing.T) {
	tests := []struct {
		name  string
		path  string
		setup func(m *mocks.MockAPIClientInterface)
		want  flash
	}{
		{
			name: "found",
			path: TestPath,
			setup: func(m *mocks.MockAPIClientInterface) {
				m.EXPECT().GetPath(gomock.Any(), TestPath).Return(TestURL, nil)
			},
			want: flash{info: "URL /" + TestPath + " redirects to " + TestDestination},
		},
		{
			name: "not found",
			path: TestMissingPath,
			setup: func(m *mocks.MockAPIClientInterface) {
				m.EXPECT().GetPath(gomock.Any(), TestMissingPath).
					Return(nil, &APIError{StatusCode: http.StatusNotFound, Message: "whatever"})
			},
			want: flash{err: MessageNotFound},
		},
		{
			name:  "empty path",
			path:  "",
			setup: func(*mocks.MockAPIClientInterface) {},
			want:  flash{err: MessageEmptyPath},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, router := newTestHandler(t)
			tt.setup(m)

			res := postForm(router, "/find", url.Values{PathField: {tt.path}})
			defer res.Body.Close()

			assert.Equal(t, http.StatusSeeOther, res.StatusCode)
			assert.Equal(t, tt.want, readFlash(t, res))
		})
	}
}

func TestHandler_Delete(t *testing.T) {
	tests := []struct {
		name  string
		path  string
		setup func(m *mocks.MockAPIClientInterface)
		want  flash
	}{
		{
			name: "deleted",
			path: TestPath,
			setup: func(m *mocks.MockAPIClientInterface) {
				gomock.InOrder(
					m.EXPECT().GetPath(gomock.Any(), TestPath).Return(TestURL, nil),
					m.EXPECT().Delete(gomock.Any(), TestPath).Return(nil),
				)
			},
			want: flash{info: MessageDeleted},
		},
		{
			name:  "empty path",
			path:  "  ",
			setup: func(*mocks.MockAPIClientInterface) {},
			want:  flash{err: MessageEmptyPath},
		},
		{
			name: "not found",
			path: TestMissingPath,
			setup: func(m *mocks.MockAPIClientInterface) {
				m.EXPECT().GetPath(gomock.Any(), TestMissingPath).
					Return(nil, &APIError{StatusCode: http.StatusNotFound, Message: MessageNotFound})
			},
			want: flash{err: MessageNotFound},
		},
		{
			name: "lookup failed",
			path: TestPath,
			setup: func(m *mocks.MockAPIClientInterface) {
				m.EXPECT().GetPath(gomock.Any(), TestPath).
					Return(nil, &APIError{StatusCode: http.StatusInternalServerError, Message: "Internal Server Error."})
			},
			want: flash{err: "Internal Server Error."},
		},
		{
			name: "delete failed",
			path: TestPath,
			setup: func(m *mocks.MockAPIClientInterface) {
				m.EXPECT().GetPath(gomock.Any(), TestPath).Return(TestURL, nil)
				m.EXPECT().Delete(gomock.Any(), TestPath).
					Return(&APIError{StatusCode: http.StatusBadGateway, Message: MessageUnexpected})
			},
			want: flash{err: MessageUnexpected},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, router := newTestHandler(t)
			tt.setup(m)

			res := postForm(router, "/delete", url.Values{PathField: {tt.path}})
			defer res.Body.Close()

			assert.Equal(t, http.StatusSeeOther, res.StatusCode)
			assert.Equal(t, "/", res.Header.Get("Location"))
			assert.Equal(t, tt.want, readFlash(t, res))
		})
	}
}

func TestHandler_Redirect(t *testing.T) {
	m, router := newTestHandler(t)
	m.EXPECT().GetPath(gomock.Any(), TestPath).Return(TestURL, nil)
	m.EXPECT().GetPath(gomock.Any(), TestMissingPath).
		Return(nil, &APIError{StatusCode: http.StatusNotFound, Message: MessageNotFound})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/"+TestPath, nil))
	res := w.Result()
	defer res.Body.Close()
	assert.Equal(t, http.StatusFound, res.StatusCode)
	assert.Equal(t, TestDestination, res.Header.Get("Location"))

	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/"+TestMissingPath, nil))
	res = w.Result()
	defer res.Body.Close()
	assert.Equal(t, http.StatusSeeOther, res.StatusCode)
	assert.Equal(t, "/", res.Header.Get("Location"))
	assert.Equal(t, flash{err: MessageNotFound}, readFlash(t, res))
}

func TestHandler_Home(t *testing.T) {
	_, router := newTestHandler(t)

	w := httptest.NewRecorder()
	setFlash(w, FlashInfoCookie, "URL have been deleted correctly.")
	setFlash(w, FlashErrorCookie, "<script>alert(1)</script>")

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	for _, c := range w.Result().Cookies() {
		req.AddCookie(c)
	}

	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	res := w.Result()
	defer res.Body.Close()

	assert.Equal(t, http.StatusOK, res.StatusCode)
	body, err := io.ReadAll(res.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), "URL have been deleted correctly.")
	assert.Contains(t, string(body), "&lt;script&gt;")
	assert.NotContains(t, string(body), "<script>")
	assert.Contains(t, string(body), `action="/delete"`)

	expired := 0
	for _, c := range res.Cookies() {
		if c.MaxAge < 0 {
			expired++
		}
	}
	assert.Equal(t, 2, expired, "flash messages are shown once")
}
