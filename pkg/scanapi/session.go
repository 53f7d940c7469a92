package scanapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
)

// Session is an authenticated API client scoped to one access token.
type Session struct {
	client *Client
	token  string

	// User holds the authenticated user as returned at login time. May be
	// the zero value for sessions built from a raw token.
	User UserResponse
}

// Token returns the session's raw access token.
func (s *Session) Token() string { return s.token }

// doJSON performs an authenticated request with an optional JSON body.
func (s *Session) doJSON(ctx context.Context, method, path string, body any) (*http.Response, error) {
	var reader io.Reader
	if body != nil {
		buf, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("encode request: %w", err)
		}
		reader = bytes.NewReader(buf)
	}

	req, err := http.NewRequestWithContext(ctx, method, s.client.url(path), reader)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+s.token)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := s.client.HTTPClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("send request: %w", err)
	}
	return resp, nil
}

// getJSON is a GET + decode helper.
func (s *Session) getJSON(ctx context.Context, path string, target any) error {
	resp, err := s.doJSON(ctx, http.MethodGet, path, nil)
	if err != nil {
		return err
	}
	return decodeJSON(resp, target, http.StatusOK)
}

// postJSON is a POST + decode helper.
func (s *Session) postJSON(ctx context.Context, path string, body, target any, expectedStatus int) error {
	resp, err := s.doJSON(ctx, http.MethodPost, path, body)
	if err != nil {
		return err
	}
	return decodeJSON(resp, target, expectedStatus)
}

// putJSON is a PUT + decode helper.
func (s *Session) putJSON(ctx context.Context, path string, body, target any) error {
	resp, err := s.doJSON(ctx, http.MethodPut, path, body)
	if err != nil {
		return err
	}
	return decodeJSON(resp, target, http.StatusOK)
}

// delete issues a DELETE and expects 204 No Content.
func (s *Session) delete(ctx context.Context, path string) error {
	resp, err := s.doJSON(ctx, http.MethodDelete, path, nil)
	if err != nil {
		return err
	}
	return checkStatusNoContent(resp)
}
