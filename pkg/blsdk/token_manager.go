package blsdk

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/aussiebroadwan/buildinglink/pkg/slogx"
)

// tokenManager owns the refresh/access token pair and the refresh protocol.
//
// The refresh token is single-use: every successful exchange invalidates the
// old value and issues a new one. Two concurrent exchanges with the same
// refresh token would therefore make the provider reject one of them, so the
// refresh is a critical section: the write lock is held across the exchange
// and every caller that finds an expired token waits on the same in-flight
// refresh and reuses its result.
type tokenManager struct {
	http     *http.Client
	authURL  string
	clientID string
	margin   time.Duration
	now      func() time.Time

	mu           sync.RWMutex
	accessToken  string
	refreshToken string
	expiresAt    time.Time // already margin-adjusted
	subject      string    // user ID from the access token's sub claim
}

func newTokenManager(httpClient *http.Client, authURL, clientID, refreshToken string, margin time.Duration) *tokenManager {
	return &tokenManager{
		http:         httpClient,
		authURL:      authURL,
		clientID:     clientID,
		margin:       margin,
		now:          time.Now,
		refreshToken: refreshToken,
	}
}

// Token returns a currently valid access token, refreshing if the cached one
// is absent or inside the expiry margin.
func (m *tokenManager) Token(ctx context.Context) (string, error) {
	m.mu.RLock()
	if m.accessToken != "" && m.now().Before(m.expiresAt) {
		token := m.accessToken
		m.mu.RUnlock()
		return token, nil
	}
	m.mu.RUnlock()

	m.mu.Lock()
	defer m.mu.Unlock()

	// Double-check after acquiring the write lock: another caller may have
	// completed the refresh while we waited.
	if m.accessToken != "" && m.now().Before(m.expiresAt) {
		return m.accessToken, nil
	}

	if err := m.refreshLocked(ctx); err != nil {
		return "", err
	}

	return m.accessToken, nil
}

// TokenAfter401 handles server-side early expiry or revocation: a request
// failed with 401 despite a believed-valid token. It forces one refresh,
// unless a concurrent caller already rotated past the stale token, in which
// case the newer token is reused rather than burning another exchange.
func (m *tokenManager) TokenAfter401(ctx context.Context, stale string) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.accessToken != "" && m.accessToken != stale && m.now().Before(m.expiresAt) {
		return m.accessToken, nil
	}

	if err := m.refreshLocked(ctx); err != nil {
		return "", err
	}

	return m.accessToken, nil
}

// RefreshToken returns the most recently rotated refresh token. This is the
// only piece of state a caller needs to persist between runs, and it can
// change on any SDK call, including failed ones.
func (m *tokenManager) RefreshToken() string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.refreshToken
}

// Subject returns the user ID carried in the current access token, or ""
// before the first refresh.
func (m *tokenManager) Subject() string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.subject
}

// refreshLocked exchanges the current refresh token for a new token pair.
// Must be called with m.mu write-locked.
//
// Rotation capture is the central correctness concern: the provider may
// issue a new refresh token even when the exchange as a whole fails, and
// losing that value permanently locks the caller out. Token capture and
// access-token issuance are therefore treated as independent effects, and
// whichever succeeded is persisted before any error is returned.
func (m *tokenManager) refreshLocked(ctx context.Context) error {
	log := slogx.FromContext(ctx)
	log.Debug("refreshing access token", "token_endpoint", m.authURL)

	form := url.Values{
		"grant_type":    {"refresh_token"},
		"refresh_token": {m.refreshToken},
		"client_id":     {m.clientID},
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, m.authURL, strings.NewReader(form.Encode()))
	if err != nil {
		return &TransportError{Op: "refresh token", Err: err}
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded; charset=utf-8")
	req.Header.Set("Accept", "application/json")

	resp, err := m.http.Do(req)
	if err != nil {
		// The request never completed: no rotation happened that we can
		// observe, and TokenState stays untouched.
		return &TransportError{Op: "refresh token", Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return &TransportError{Op: "refresh token", Err: err}
	}

	if resp.StatusCode != http.StatusOK {
		return m.refreshRejectedLocked(log, resp.StatusCode, body)
	}

	var tok TokenResponse
	if err := json.Unmarshal(body, &tok); err != nil {
		return &ResponseFormatError{Op: "refresh token", Err: err}
	}

	// Capture the rotated refresh token first, before validating the rest
	// of the response.
	if tok.RefreshToken != "" {
		m.refreshToken = tok.RefreshToken
	}

	if tok.AccessToken == "" {
		log.Warn("token endpoint rotated refresh token without issuing an access token")
		return &AuthenticationError{
			Description: "token response contained no access token",
		}
	}

	m.accessToken = tok.AccessToken
	m.subject = ""
	m.expiresAt = m.now().Add(m.tokenLifetime(tok)).Add(-m.margin)

	if claims, err := parseAccessTokenClaims(tok.AccessToken); err == nil {
		m.subject = claims.Subject
	}

	log.Debug("access token refreshed",
		"expires_at", m.expiresAt,
		"rotated", tok.RefreshToken != "",
	)

	return nil
}

// refreshRejectedLocked handles a non-200 token endpoint response. Even a
// rejection body is scanned for a rotated refresh token so the externally
// visible value never goes stale.
func (m *tokenManager) refreshRejectedLocked(log *slog.Logger, status int, body []byte) error {
	var oauthErr oauthErrorResponse
	_ = json.Unmarshal(body, &oauthErr)

	if oauthErr.RefreshToken != "" {
		log.Warn("refresh rejected but refresh token was rotated", "status", status)
		m.refreshToken = oauthErr.RefreshToken
	}

	desc := oauthErr.ErrorDescription
	if desc == "" {
		desc = oauthErr.Error
	}
	if desc == "" {
		desc = fmt.Sprintf("token endpoint returned %d: %s", status, snippet(body))
	}

	return &AuthenticationError{Description: desc}
}

// tokenLifetime resolves the access token lifetime: expires_in from the
// response, then the JWT exp claim, then the documented 15 minute default.
func (m *tokenManager) tokenLifetime(tok TokenResponse) time.Duration {
	if tok.ExpiresIn > 0 {
		return time.Duration(tok.ExpiresIn) * time.Second
	}

	if claims, err := parseAccessTokenClaims(tok.AccessToken); err == nil && !claims.ExpiresAt.IsZero() {
		if lifetime := claims.ExpiresAt.Sub(m.now()); lifetime > 0 {
			return lifetime
		}
	}

	return DefaultAccessTokenTTL
}
