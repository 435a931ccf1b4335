// Package frontend serves web pages working with short URL API.
package frontend

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/MisterMaks/go-url-shortener/internal/app"
	"github.com/MisterMaks/go-url-shortener/internal/logger"
)

// MessageUnexpected is shown when API error has no message.
const MessageUnexpected string = "An unexpected error has occurred."

// APIError is non-2xx API response.
type APIError struct {
	StatusCode int
	Message    string
}

// Error implements error.
func (e *APIError) Error() string {
	return fmt.Sprintf("api error %d: %s", e.StatusCode, e.Message)
}

// APIClient calls short URL API.
type APIClient struct {
	baseURL    string
	httpClient *http.Client
}

// NewAPIClient creates *APIClient.
func NewAPIClient(baseURL string, timeout time.Duration) *APIClient {
	return &APIClient{
		baseURL:    strings.TrimSuffix(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
	}
}

// Create creates short URL. Empty path is generated by API.
func (c *APIClient) Create(ctx context.Context, destination, path string) (*app.ShortURL, error) {
	shortURL := &app.ShortURL{}
	err := c.do(ctx, http.MethodPost, "/", app.CreateRequest{Destination: destination, Path: path}, shortURL)
	if err != nil {
		return nil, err
	}
	return shortURL, nil
}

// GetPath resolves path.
func (c *APIClient) GetPath(ctx context.Context, path string) (*app.ShortURL, error) {
	shortURL := &app.ShortURL{}
	err := c.do(ctx, http.MethodPost, "/get-path", app.GetPathRequest{Path: path}, shortURL)
	if err != nil {
		return nil, err
	}
	return shortURL, nil
}

// Delete deletes path.
func (c *APIClient) Delete(ctx context.Context, path string) error {
	return c.do(ctx, http.MethodDelete, "/"+url.PathEscape(path), nil, nil)
}

func (c *APIClient) do(ctx context.Context, method, path string, reqBody, respBody any) error {
	var body io.Reader
	if reqBody != nil {
		data, err := json.Marshal(reqBody)
		if err != nil {
			return err
		}
		body = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return err
	}
	if reqBody != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if requestID := logger.GetRequestID(ctx); requestID != "" {
		req.Header.Set(logger.RequestIDHeader, requestID)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return decodeAPIError(resp)
	}
	if respBody == nil {
		return nil
	}
	return json.NewDecoder(resp.Body).Decode(respBody)
}

func decodeAPIError(resp *http.Response) *APIError {
	apiErr := &APIError{StatusCode: resp.StatusCode, Message: MessageUnexpected}
	var details app.ErrorDetails
	if err := json.NewDecoder(resp.Body).Decode(&details); err == nil && details.Message != "" {
		apiErr.Message = details.Message
	}
	return apiErr
}
