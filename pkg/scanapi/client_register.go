package scanapi

import (
	"context"
	"net/http"
)

// Register creates an account. The account starts inactive; the activation
// code is delivered out-of-band and consumed via VerifyOTP.
func (c *Client) Register(ctx context.Context, req RegisterRequest) (RegisterResponse, error) {
	var out RegisterResponse
	resp, err := c.doJSON(ctx, http.MethodPost, "/v1/auth/register", req)
	if err != nil {
		return RegisterResponse{}, err
	}
	if err := decodeJSON(resp, &out, http.StatusCreated); err != nil {
		return RegisterResponse{}, err
	}
	return out, nil
}

// Livez reports whether the service process is up.
func (c *Client) Livez(ctx context.Context) error {
	resp, err := c.doJSON(ctx, http.MethodGet, "/livez", nil)
	if err != nil {
		return err
	}
	return decodeJSON(resp, nil, http.StatusOK)
}

// Readyz reports whether the service can reach its dependencies.
func (c *Client) Readyz(ctx context.Context) error {
	resp, err := c.doJSON(ctx, http.MethodGet, "/readyz", nil)
	if err != nil {
		return err
	}
	return decodeJSON(resp, nil, http.StatusOK)
}
