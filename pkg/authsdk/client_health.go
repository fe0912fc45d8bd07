package authsdk

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
)

// ErrNotReady is returned by GetReadiness when /readyz answers 503.
var ErrNotReady = errors.New("authsdk: service not ready")

// GetLiveness reports whether the process is serving. It says nothing about
// the database or the session signer.
func (c *SDKClient) GetLiveness(ctx context.Context) (*HealthResponse, error) {
	resp, err := c.doRequest(ctx, http.MethodGet, "/livez", nil, nil)
	if err != nil {
		return nil, err
	}

	var health HealthResponse
	if err := decodeJSON(resp, &health, http.StatusOK); err != nil {
		return nil, err
	}
	return &health, nil
}

// GetReadiness asks /readyz whether the credential store answers and a probe
// token issued by the service is accepted, with the same identity, by both the
// native and the edge verifier.
//
// A 503 still carries the per-check report, so it is returned alongside an
// error wrapping ErrNotReady. Checks.Signer then explains which side failed.
func (c *SDKClient) GetReadiness(ctx context.Context) (*HealthResponse, error) {
	resp, err := c.doRequest(ctx, http.MethodGet, "/readyz", nil, nil)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	switch resp.StatusCode {
	case http.StatusOK, http.StatusServiceUnavailable:
	default:
		return nil, parseErrorResponse(resp, body)
	}

	var health HealthResponse
	if err := json.Unmarshal(body, &health); err != nil {
		return nil, fmt.Errorf("failed to decode readiness report: %w", err)
	}

	if resp.StatusCode == http.StatusServiceUnavailable {
		return &health, fmt.Errorf("%w: %s", ErrNotReady, health.Status)
	}
	return &health, nil
}
