package authsdk

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"sync"
)

// Session is an authenticated caller. It holds the wire token and replaces
// it whenever the service sets a fresh cookie.
type Session struct {
	client *SDKClient

	mu       sync.RWMutex
	token    string
	identity IdentityResponse
}

// Token returns the current wire token.
func (s *Session) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token
}

// Identity returns the identity from the last signup, login or profile call.
func (s *Session) Identity() IdentityResponse {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.identity
}

// Whoami asks the service to verify the session and return its identity.
func (s *Session) Whoami(ctx context.Context) (*IdentityResponse, error) {
	resp, err := s.doSessionRequest(ctx, http.MethodGet, "/v1/session", nil)
	if err != nil {
		return nil, err
	}

	var id IdentityResponse
	if err := decodeJSON(resp, &id, http.StatusOK); err != nil {
		return nil, err
	}
	return &id, nil
}

// UpdateName changes the display name. The service reissues the token so
// the new name is carried by the session.
func (s *Session) UpdateName(ctx context.Context, name string) (*IdentityResponse, error) {
	raw, err := json.Marshal(UpdateProfileRequest{Name: name})
	if err != nil {
		return nil, fmt.Errorf("failed to encode request: %w", err)
	}

	resp, err := s.doSessionRequest(ctx, http.MethodPatch, "/v1/profile", bytes.NewReader(raw))
	if err != nil {
		return nil, err
	}

	var id IdentityResponse
	if err := decodeJSON(resp, &id, http.StatusOK); err != nil {
		return nil, err
	}

	s.mu.Lock()
	s.identity = id
	s.mu.Unlock()

	return &id, nil
}

// Logout clears the cookie. Tokens are stateless, so a copy of the token
// stays valid until it expires.
func (s *Session) Logout(ctx context.Context) error {
	resp, err := s.doSessionRequest(ctx, http.MethodPost, "/v1/logout", nil)
	if err != nil {
		return err
	}
	if err := checkStatusNoContent(resp); err != nil {
		return err
	}

	s.mu.Lock()
	s.token = ""
	s.mu.Unlock()
	return nil
}

// Get requests a path with the session cookie attached, e.g. a page behind
// the gateway. The caller closes the body.
func (s *Session) Get(ctx context.Context, path string) (*http.Response, error) {
	return s.doSessionRequest(ctx, http.MethodGet, path, nil)
}
