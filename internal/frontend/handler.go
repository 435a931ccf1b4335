package frontend

import (
	"context"
	"embed"
	"errors"
	"fmt"
	"html/template"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/MisterMaks/go-url-shortener/internal/app"
	"github.com/MisterMaks/go-url-shortener/internal/logger"
)

//go:embed templates/*.html
var templatesFS embed.FS

// Page messages.
const (
	MessageEmptyPath   string = "You must complete URL path."
	MessageNotFound    string = "URL not found."
	MessageDeleted     string = "URL have been deleted correctly."
	MessageCreated     string = "URL have been created correctly. Short link: /%s"
	MessageFound       string = "URL /%s redirects to %s"
	MessageEmptyTarget string = "You must complete URL destination."
)

// Form fields and route params.
const (
	DestinationField string = "destination"
	PathField        string = "path"
	PathParam        string = "path"
)

// Log keys.
const (
	PathKey        string = "path"
	DestinationKey string = "destination"
)

//go:generate mockgen -source=handler.go -destination=mocks/mock_frontend.go -package=mocks

// APIClientInterface is short URL API used by pages.
type APIClientInterface interface {
	Create(ctx context.Context, destination, path string) (*app.ShortURL, error)
	GetPath(ctx context.Context, path string) (*app.ShortURL, error)
	Delete(ctx context.Context, path string) error
}

// PageData is rendered by index template.
type PageData struct {
	Info  string
	Error string
}

// Handler serves front end pages.
type Handler struct {
	API      APIClientInterface
	Validate *validator.Validate
	tmpl     *template.Template
}

// NewHandler creates *Handler.
func NewHandler(api APIClientInterface) (*Handler, error) {
	tmpl, err := template.ParseFS(templatesFS, "templates/*.html")
	if err != nil {
		return nil, err
	}
	return &Handler{
		API:      api,
		Validate: app.NewValidator(),
		tmpl:     tmpl,
	}, nil
}

// Router returns routes of front end.
func (h *Handler) Router(middlewares ...func(http.Handler) http.Handler) chi.Router {
	r := chi.NewRouter()
	r.Use(middlewares...)
	r.Get(`/`, h.Home)
	r.Post(`/create`, h.Create)
	r.Post(`/find`, h.Find)
	r.Post(`/delete`, h.Delete)
	r.Get(`/favicon.ico`, http.NotFound)
	r.Get(`/{`+PathParam+`}`, h.Redirect)
	return r
}

func redirectHome(w http.ResponseWriter, r *http.Request) {
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func flashError(w http.ResponseWriter, r *http.Request, message string) {
	setFlash(w, FlashErrorCookie, message)
	redirectHome(w, r)
}

func flashInfo(w http.ResponseWriter, r *http.Request, message string) {
	setFlash(w, FlashInfoCookie, message)
	redirectHome(w, r)
}

// apiMessage returns message of API error. Other errors are logged and hidden.
func apiMessage(ctx context.Context, err error) string {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.Message
	}
	logger.GetContextLogger(ctx).Error("Failed to call API", zap.Error(err))
	return MessageUnexpected
}

func isNotFound(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusNotFound
}

// Home renders forms and flash messages.
func (h *Handler) Home(w http.ResponseWriter, r *http.Request) {
	data := PageData{
		Info:  popFlash(w, r, FlashInfoCookie),
		Error: popFlash(w, r, FlashErrorCookie),
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := h.tmpl.ExecuteTemplate(w, "index.html", data); err != nil {
		logger.GetContextLogger(r.Context()).Error("Failed to render page", zap.Error(err))
	}
}

// Create creates short URL from form.
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	ctxLogger := logger.GetContextLogger(r.Context())

	req := app.CreateRequest{
		Destination: strings.TrimSpace(r.PostFormValue(DestinationField)),
		Path:        strings.TrimSpace(r.PostFormValue(PathField)),
	}
	if req.Destination == "" {
		flashError(w, r, MessageEmptyTarget)
		return
	}
	if err := h.Validate.Struct(req); err != nil {
		flashError(w, r, app.ValidationMessage(err))
		return
	}

	shortURL, err := h.API.Create(r.Context(), req.Destination, req.Path)
	if err != nil {
		flashError(w, r, apiMessage(r.Context(), err))
		return
	}

	ctxLogger.Info("Short URL created",
		zap.String(PathKey, shortURL.Path),
		zap.String(DestinationKey, shortURL.Destination),
	)
	flashInfo(w, r, fmt.Sprintf(MessageCreated, shortURL.Path))
}

// validPath validates path. On failure flash message is already written.
func (h *Handler) validPath(w http.ResponseWriter, r *http.Request, path string) bool {
	if path == "" {
		flashError(w, r, MessageEmptyPath)
		return false
	}
	if err := h.Validate.Struct(app.GetPathRequest{Path: path}); err != nil {
		flashError(w, r, app.ValidationMessage(err))
		return false
	}
	return true
}

// Find shows destination of path from form.
func (h *Handler) Find(w http.ResponseWriter, r *http.Request) {
	path := strings.TrimSpace(r.PostFormValue(PathField))
	if !h.validPath(w, r, path) {
		return
	}

	shortURL, err := h.API.GetPath(r.Context(), path)
	switch {
	case isNotFound(err):
		flashError(w, r, MessageNotFound)
	case err != nil:
		flashError(w, r, apiMessage(r.Context(), err))
	default:
		flashInfo(w, r, fmt.Sprintf(MessageFound, shortURL.Path, shortURL.Destination))
	}
}

// Delete deletes path from form after checking it exists.
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	ctxLogger := logger.GetContextLogger(r.Context())

	path := strings.TrimSpace(r.PostFormValue(PathField))
	if !h.validPath(w, r, path) {
		return
	}

	shortURL, err := h.API.GetPath(r.Context(), path)
	switch {
	case isNotFound(err):
		flashError(w, r, MessageNotFound)
		return
	case err != nil:
		flashError(w, r, apiMessage(r.Context(), err))
		return
	}

	if err = h.API.Delete(r.Context(), shortURL.Path); err != nil {
		flashError(w, r, apiMessage(r.Context(), err))
		return
	}

	ctxLogger.Info("Short URL deleted", zap.String(PathKey, shortURL.Path))
	flashInfo(w, r, MessageDeleted)
}

// Redirect sends client to destination of path.
func (h *Handler) Redirect(w http.ResponseWriter, r *http.Request) {
	path := chi.URLParam(r, PathParam)
	if !h.validPath(w, r, path) {
		return
	}

	shortURL, err := h.API.GetPath(r.Context(), path)
	switch {
	case isNotFound(err):
		flashError(w, r, MessageNotFound)
	case err != nil:
		flashError(w, r, apiMessage(r.Context(), err))
	default:
		http.Redirect(w, r, shortURL.Destination, http.StatusFound)
	}
}
