package udns

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/go-logr/logr"
)

// tokenPath is the form-encoded token endpoint used by both grants.
const tokenPath = "/v1/authorization/token"

// authenticator owns the session tokens. It is the only component that
// mutates them: authenticate and refresh overwrite both tokens, nothing
// else touches them.
type authenticator struct {
	baseURL      string
	username     string
	password     string
	accessToken  string
	refreshToken string
	httpClient   *http.Client
	log          logr.Logger
}

// isAuthenticated reports whether a login has succeeded. The access token
// stays empty until the first authenticate call, so the dispatcher logs in
// lazily on first use.
func (a *authenticator) isAuthenticated() bool {
	return a.accessToken != ""
}

// authenticate performs the password grant and stores both tokens.
// Failures are routed through the error decoder.
func (a *authenticator) authenticate(ctx context.Context) error {
	a.log.V(1).Info("authenticating", "username", a.username)
	form := url.Values{
		"grant_type": {"password"},
		"username":   {a.username},
		"password":   {a.password},
	}

	statusCode, body, err := a.postForm(ctx, form)
	if err != nil {
		return err
	}
	if statusCode >= http.StatusBadRequest {
		return decodeError(statusCode, body)
	}
	return a.storeTokens(body)
}

// refresh exchanges the stored refresh token for a new token pair. A failed
// refresh raises AuthError with the raw body; it is not routed through the
// generic decoder.
func (a *authenticator) refresh(ctx context.Context) error {
	a.log.V(1).Info("refreshing access token")
	form := url.Values{
		"grant_type":    {"refresh_token"},
		"refresh_token": {a.refreshToken},
	}

	statusCode, body, err := a.postForm(ctx, form)
	if err != nil {
		return err
	}
	if statusCode >= http.StatusBadRequest {
		return &AuthError{Body: string(body)}
	}
	return a.storeTokens(body)
}

func (a *authenticator) postForm(ctx context.Context, form url.Values) (int, []byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, a.baseURL+tokenPath, strings.NewReader(form.Encode()))
	if err != nil {
		return 0, nil, fmt.Errorf("udns: build token request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("Accept", "application/json")

	resp, err := a.httpClient.Do(req)
	if err != nil {
		return 0, nil, fmt.Errorf("udns: token request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return 0, nil, fmt.Errorf("udns: read token response: %w", err)
	}
	return resp.StatusCode, body, nil
}

func (a *authenticator) storeTokens(body []byte) error {
	var tok tokenResponse
	if err := json.Unmarshal(body, &tok); err != nil {
		return fmt.Errorf("udns: decode token response: %w", err)
	}
	a.accessToken = tok.AccessToken
	a.refreshToken = tok.RefreshToken
	return nil
}

// tokenExpired reports whether a response signals an expired access token:
// status 401 with a JSON object body whose errorCode is the reserved
// expiry code. Array bodies never match.
func tokenExpired(statusCode int, body []byte) bool {
	if statusCode != http.StatusUnauthorized {
		return false
	}
	var obj struct {
		ErrorCode int `json:"errorCode"`
	}
	if err := json.Unmarshal(body, &obj); err != nil {
		return false
	}
	return obj.ErrorCode == CodeTokenExpired
}
