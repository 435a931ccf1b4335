package app

import (
	"errors"
	"net/url"
	"regexp"
	"time"
)

// Limits for ShortURL fields.
const (
	MaxPathLength        = 64
	MaxDestinationLength = 2048
)

// Errors shared by repo, usecase and delivery layers.
var (
	ErrPathNotFound     = errors.New("path not found")
	ErrPathExists       = errors.New("path already exists")
	ErrInvalidPath      = errors.New("invalid path")
	ErrInvalidDest      = errors.New("invalid destination")
	ErrEmptyDestination = errors.New("empty destination")
)

var pathRegexp = regexp.MustCompile(`^[a-zA-Z0-9_-]*$`)

// ShortURL maps a short path to its destination.
type ShortURL struct {
	Path        string    `json:"path" example:"aZ3k9QxB"`
	Destination string    `json:"destination" example:"https://example.com"`
	CreatedAt   time.Time `json:"created_at"`
}

// NewShortURL checks fields and creates *ShortURL.
func NewShortURL(path, destination string) (*ShortURL, error) {
	if !IsValidPath(path) {
		return nil, ErrInvalidPath
	}
	if destination == "" {
		return nil, ErrEmptyDestination
	}
	if len(destination) > MaxDestinationLength {
		return nil, ErrInvalidDest
	}
	u, err := url.ParseRequestURI(destination)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return nil, ErrInvalidDest
	}
	return &ShortURL{Path: path, Destination: destination}, nil
}

// IsValidPath reports whether path matches [a-zA-Z0-9_-]* and fits the column.
func IsValidPath(path string) bool {
	return len(path) <= MaxPathLength && pathRegexp.MatchString(path)
}

// CreateRequest is body of create request.
type CreateRequest struct {
	Destination string `json:"destination" validate:"required,url,max=2048" example:"https://example.com"`
	Path        string `json:"path,omitempty" validate:"omitempty,max=64,shortpath" example:"my-link"`
}

// GetPathRequest is body of get-path request.
type GetPathRequest struct {
	Path string `json:"path" validate:"required,max=64,shortpath" example:"my-link"`
}

// ErrorDetails is error body returned by API.
type ErrorDetails struct {
	StatusCode int    `json:"StatusCode" example:"404"`
	Message    string `json:"Message" example:"URL not found."`
}
