package authsdk

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"
)

// DefaultCookieName matches the server default for SESSION_COOKIE_NAME.
const DefaultCookieName = "session"

// SDKClient talks to the goalpost auth service. Signup and Login return a
// Session holding the cookie the service set.
type SDKClient struct {
	BaseURL    string
	HTTPClient *http.Client

	// CookieName must match the server's SESSION_COOKIE_NAME.
	CookieName string
}

// NewSDKClient creates a client. Redirects are not followed so gateway
// responses can be inspected.
func NewSDKClient(baseURL string) *SDKClient {
	return &SDKClient{
		BaseURL: strings.TrimSuffix(baseURL, "/"),
		HTTPClient: &http.Client{
			Timeout: 10 * time.Second,
			CheckRedirect: func(*http.Request, []*http.Request) error {
				return http.ErrUseLastResponse
			},
		},
		CookieName: DefaultCookieName,
	}
}

// Signup creates an account and returns its session.
func (c *SDKClient) Signup(ctx context.Context, req SignupRequest) (*Session, error) {
	return c.startSession(ctx, "/v1/signup", req, http.StatusCreated)
}

// Login exchanges credentials for a session.
func (c *SDKClient) Login(ctx context.Context, email, password string) (*Session, error) {
	return c.startSession(ctx, "/v1/login", LoginRequest{Email: email, Password: password}, http.StatusOK)
}

// NewSessionFromToken wraps a wire token obtained elsewhere.
func (c *SDKClient) NewSessionFromToken(token string) *Session {
	return &Session{client: c, token: token}
}

func (c *SDKClient) startSession(ctx context.Context, path string, body any, want int) (*Session, error) {
	raw, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("failed to encode request: %w", err)
	}

	resp, err := c.doRequest(ctx, http.MethodPost, path, bytes.NewReader(raw), jsonHeaders)
	if err != nil {
		return nil, err
	}

	var id IdentityResponse
	if err := decodeJSON(resp, &id, want); err != nil {
		return nil, err
	}

	token := c.cookieValue(resp)
	if token == "" {
		return nil, errors.New("authsdk: response did not set a session cookie")
	}

	return &Session{client: c, token: token, identity: id}, nil
}

func (c *SDKClient) cookieName() string {
	if c.CookieName == "" {
		return DefaultCookieName
	}
	return c.CookieName
}

func (c *SDKClient) cookieValue(resp *http.Response) string {
	for _, ck := range resp.Cookies() {
		if ck.Name == c.cookieName() && ck.MaxAge >= 0 {
			return ck.Value
		}
	}
	return ""
}
