package delivery

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/MisterMaks/go-url-shortener/internal/app"
	"github.com/MisterMaks/go-url-shortener/internal/app/usecase"
	"github.com/MisterMaks/go-url-shortener/internal/logger"
)

// Constants for headers and log keys.
const (
	ContentTypeKey     string = "Content-Type"
	ApplicationJSONKey string = "application/json"

	PathParam string = "path"

	PathKey        string = "path"
	DestinationKey string = "destination"
	ResponseKey    string = "response"
)

// Response messages.
const (
	MessageNotFound            string = "URL not found."
	MessagePathExists          string = "URL path already exists."
	MessageGenerationExhausted string = "Failed to generate unique URL path. Try again later."
	MessageInvalidBody         string = "The request body is invalid."
	MessageInternalServerError string = "Internal Server Error."
)

//go:generate mockgen -source=http.go -destination=mocks/mock_delivery.go -package=mocks

// AppUsecaseInterface contains business logic used by handlers.
type AppUsecaseInterface interface {
	CreateURL(ctx context.Context, destination, path string) (*app.ShortURL, error)
	GetURL(ctx context.Context, path string) (*app.ShortURL, error)
	DeleteURL(ctx context.Context, path string) error
}

// AppHandler serves short URL API.
type AppHandler struct {
	AppUsecase AppUsecaseInterface
	Validate   *validator.Validate
}

// NewAppHandler creates *AppHandler.
func NewAppHandler(appUsecase AppUsecaseInterface) *AppHandler {
	return &AppHandler{
		AppUsecase: appUsecase,
		Validate:   app.NewValidator(),
	}
}

// WriteError writes ErrorDetails with statusCode.
func WriteError(w http.ResponseWriter, r *http.Request, statusCode int, message string) {
	writeJSON(w, r, statusCode, app.ErrorDetails{StatusCode: statusCode, Message: message})
}

func writeJSON(w http.ResponseWriter, r *http.Request, statusCode int, v any) {
	w.Header().Set(ContentTypeKey, ApplicationJSONKey)
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.GetContextLogger(r.Context()).Warn("Failed to write response",
			zap.Any(ResponseKey, v),
			zap.Error(err),
		)
	}
}

// writeUsecaseError maps usecase errors to responses. Unknown errors are logged and hidden.
func writeUsecaseError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, app.ErrPathNotFound):
		WriteError(w, r, http.StatusNotFound, MessageNotFound)
	case errors.Is(err, app.ErrPathExists):
		WriteError(w, r, http.StatusConflict, MessagePathExists)
	case errors.Is(err, app.ErrInvalidPath), errors.Is(err, app.ErrInvalidDest), errors.Is(err, app.ErrEmptyDestination):
		WriteError(w, r, http.StatusBadRequest, err.Error())
	case errors.Is(err, usecase.ErrPathGenerationExhausted):
		WriteError(w, r, http.StatusServiceUnavailable, MessageGenerationExhausted)
	default:
		logger.GetContextLogger(r.Context()).Error("Unexpected error",
			zap.String(logger.URIKey, r.RequestURI),
			zap.Error(err),
		)
		WriteError(w, r, http.StatusInternalServerError, MessageInternalServerError)
	}
}

// decodeAndValidate decodes JSON body into dst and validates it. On failure response is already written.
func (ah *AppHandler) decodeAndValidate(w http.ResponseWriter, r *http.Request, dst any) bool {
	ctxLogger := logger.GetContextLogger(r.Context())

	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		ctxLogger.Warn("Bad request", zap.Error(err))
		WriteError(w, r, http.StatusBadRequest, MessageInvalidBody)
		return false
	}
	if err := ah.Validate.Struct(dst); err != nil {
		ctxLogger.Warn("Invalid request", zap.Any(logger.RequestBodyKey, dst), zap.Error(err))
		WriteError(w, r, http.StatusBadRequest, app.ValidationMessage(err))
		return false
	}
	return true
}

// CreateURL godoc
//
//	@Summary		Create short URL
//	@Description	Stores destination under path. Path is generated when empty.
//	@Tags			short-url
//	@Accept			json
//	@Produce		json
//	@Param			request	body		app.CreateRequest	true	"Short URL"
//	@Success		201		{object}	app.ShortURL
//	@Failure		400		{object}	app.ErrorDetails
//	@Failure		409		{object}	app.ErrorDetails
//	@Failure		500		{object}	app.ErrorDetails
//	@Failure		503		{object}	app.ErrorDetails
//	@Router			/ [post]
func (ah *AppHandler) CreateURL(w http.ResponseWriter, r *http.Request) {
	ctxLogger := logger.GetContextLogger(r.Context())

	var req app.CreateRequest
	if !ah.decodeAndValidate(w, r, &req) {
		return
	}

	url, err := ah.AppUsecase.CreateURL(r.Context(), req.Destination, req.Path)
	if err != nil {
		writeUsecaseError(w, r, err)
		return
	}

	ctxLogger.Info("Short URL created",
		zap.String(PathKey, url.Path),
		zap.String(DestinationKey, url.Destination),
	)
	writeJSON(w, r, http.StatusCreated, url)
}

// GetPath godoc
//
//	@Summary		Resolve short URL
//	@Description	Returns stored short URL by path.
//	@Tags			short-url
//	@Accept			json
//	@Produce		json
//	@Param			request	body		app.GetPathRequest	true	"Path"
//	@Success		200		{object}	app.ShortURL
//	@Failure		400		{object}	app.ErrorDetails
//	@Failure		404		{object}	app.ErrorDetails
//	@Failure		500		{object}	app.ErrorDetails
//	@Router			/get-path [post]
func (ah *AppHandler) GetPath(w http.ResponseWriter, r *http.Request) {
	var req app.GetPathRequest
	if !ah.decodeAndValidate(w, r, &req) {
		return
	}

	url, err := ah.AppUsecase.GetURL(r.Context(), req.Path)
	if err != nil {
		writeUsecaseError(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, url)
}

// DeleteURL godoc
//
//	@Summary	Delete short URL
//	@Tags		short-url
//	@Produce	json
//	@Param		path	path	string	true	"Short URL path"
//	@Success	204
//	@Failure	400	{object}	app.ErrorDetails
//	@Failure	404	{object}	app.ErrorDetails
//	@Failure	500	{object}	app.ErrorDetails
//	@Router		/{path} [delete]
func (ah *AppHandler) DeleteURL(w http.ResponseWriter, r *http.Request) {
	ctxLogger := logger.GetContextLogger(r.Context())

	path := chi.URLParam(r, PathParam)
	req := app.GetPathRequest{Path: path}
	if err := ah.Validate.Struct(req); err != nil {
		ctxLogger.Warn("Invalid path", zap.String(PathKey, path), zap.Error(err))
		WriteError(w, r, http.StatusBadRequest, app.ValidationMessage(err))
		return
	}

	if err := ah.AppUsecase.DeleteURL(r.Context(), path); err != nil {
		writeUsecaseError(w, r, err)
		return
	}

	ctxLogger.Info("Short URL deleted", zap.String(PathKey, path))
	w.WriteHeader(http.StatusNoContent)
}
