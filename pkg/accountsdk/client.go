// Package accountsdk is a small client for the gearbox account service. It
// mirrors the HTTP contract one method per endpoint.
package accountsdk

import (
	"context"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// Client talks to one account service instance.
type Client struct {
	BaseURL    string
	HTTPClient *http.Client
}

// NewClient creates a client with a 10 second timeout.
func NewClient(baseURL string) *Client {
	return &Client{
		BaseURL: strings.TrimSuffix(baseURL, "/"),
		HTTPClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// Register creates an unverified account.
func (c *Client) Register(ctx context.Context, req RegisterRequest) (*RegisterResponse, error) {
	resp, err := c.doJSON(ctx, http.MethodPost, "/register", "", req)
	if err != nil {
		return nil, err
	}
	var out RegisterResponse
	if err := decodeJSON(resp, &out, http.StatusCreated); err != nil {
		return nil, err
	}
	return &out, nil
}

// VerifyEmail redeems a verification token from the emailed link.
func (c *Client) VerifyEmail(ctx context.Context, token string) (*MessageResponse, error) {
	return c.message(ctx, http.MethodGet, "/verify?token="+url.QueryEscape(token), "", nil)
}

// ResendVerification mails a fresh verification link.
func (c *Client) ResendVerification(ctx context.Context, email string) (*MessageResponse, error) {
	return c.message(ctx, http.MethodPost, "/verify/resend", "", EmailRequest{Email: email})
}

// Login exchanges credentials for a token pair.
func (c *Client) Login(ctx context.Context, email, password string) (*TokenResponse, error) {
	return c.tokens(ctx, "/login", LoginRequest{Email: email, Password: password})
}

// Refresh rotates a refresh token. The old one stops working.
func (c *Client) Refresh(ctx context.Context, refresh string) (*TokenResponse, error) {
	return c.tokens(ctx, "/token/refresh", RefreshRequest{Refresh: refresh})
}

// Logout revokes whichever of the two tokens are non-empty.
func (c *Client) Logout(ctx context.Context, access, refresh string) (*MessageResponse, error) {
	return c.message(ctx, http.MethodPost, "/logout", access, RefreshRequest{Refresh: refresh})
}

// RequestPasswordReset mails a reset code.
func (c *Client) RequestPasswordReset(ctx context.Context, email string) (*MessageResponse, error) {
	return c.message(ctx, http.MethodPost, "/reset/request", "", EmailRequest{Email: email})
}

// ConfirmPasswordReset redeems a reset code.
func (c *Client) ConfirmPasswordReset(ctx context.Context, req ResetConfirmRequest) (*MessageResponse, error) {
	return c.message(ctx, http.MethodPost, "/reset/confirm", "", req)
}

// Me returns the profile of the access token's owner.
func (c *Client) Me(ctx context.Context, access string) (*ProfileResponse, error) {
	resp, err := c.doJSON(ctx, http.MethodGet, "/me", access, nil)
	if err != nil {
		return nil, err
	}
	var out ProfileResponse
	if err := decodeJSON(resp, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}

// GetLiveness checks if the service is alive.
func (c *Client) GetLiveness(ctx context.Context) (*HealthResponse, error) {
	return c.health(ctx, "/livez")
}

// GetReadiness checks if the service and its dependencies are ready.
func (c *Client) GetReadiness(ctx context.Context) (*HealthResponse, error) {
	return c.health(ctx, "/readyz")
}

func (c *Client) message(ctx context.Context, method, path, bearer string, body any) (*MessageResponse, error) {
	resp, err := c.doJSON(ctx, method, path, bearer, body)
	if err != nil {
		return nil, err
	}
	var out MessageResponse
	if err := decodeJSON(resp, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) tokens(ctx context.Context, path string, body any) (*TokenResponse, error) {
	resp, err := c.doJSON(ctx, http.MethodPost, path, "", body)
	if err != nil {
		return nil, err
	}
	var out TokenResponse
	if err := decodeJSON(resp, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) health(ctx context.Context, path string) (*HealthResponse, error) {
	resp, err := c.doJSON(ctx, http.MethodGet, path, "", nil)
	if err != nil {
		return nil, err
	}
	var health HealthResponse
	if err := decodeJSON(resp, &health, http.StatusOK); err != nil {
		return nil, err
	}
	return &health, nil
}
