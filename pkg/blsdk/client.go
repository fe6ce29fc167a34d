package blsdk

import (
	"errors"
	"net/http"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/aussiebroadwan/buildinglink/pkg/httpx"
)

// Hosts collects the base URLs of BuildingLink's services. The production
// API is split across several hosts; tests override all of them to point at
// a fake server.
type Hosts struct {
	// Auth is the full OAuth2 token endpoint URL, not just a host.
	Auth string

	API         string
	EventLog    string
	Maintenance string
	Users       string
	FrontDesk   string

	// Legacy is the old www host that still serves the contacts resource.
	Legacy string
}

// withDefaults fills any blank host with its production value.
func (h Hosts) withDefaults() Hosts {
	def := func(v *string, d string) {
		if *v == "" {
			*v = d
		}
	}

	def(&h.Auth, defaultAuthURL)
	def(&h.API, defaultAPIHost)
	def(&h.EventLog, defaultEventLogHost)
	def(&h.Maintenance, defaultMaintenanceHost)
	def(&h.Users, defaultUsersHost)
	def(&h.FrontDesk, defaultFrontDeskHost)
	def(&h.Legacy, defaultLegacyHost)
	return h
}

// Config configures a Client. Only RefreshToken is required; every other
// field has a production default.
type Config struct {
	// RefreshToken is the current OAuth2 refresh token. It is single-use:
	// after any SDK call the caller should persist Client.RefreshToken(),
	// which may have rotated.
	RefreshToken string

	// ClientID defaults to DefaultClientID, the resident app's client.
	ClientID string

	// DeviceID is sent as the device-id query parameter on every request.
	// A random UUID is generated when empty; supply a stable value to look
	// like one device across runs.
	DeviceID string

	// Hosts overrides individual service base URLs.
	Hosts Hosts

	// HTTPClient supplies a custom client. Its transport is still wrapped
	// to add the User-Agent and correlation headers. When nil a client is
	// built with Timeout.
	HTTPClient *http.Client

	// Timeout bounds each HTTP call, defaulting to DefaultTimeout. Ignored
	// when HTTPClient is set.
	Timeout time.Duration

	// RefreshMargin is subtracted from the access token lifetime so the
	// refresh happens before true expiry. Defaults to DefaultRefreshMargin.
	RefreshMargin time.Duration

	// UserAgent defaults to DefaultUserAgent.
	UserAgent string

	// RateLimit optionally throttles outbound requests. The zero value
	// disables throttling.
	RateLimit httpx.RateLimitConfig
}

// Client is an authenticated BuildingLink API client. It is safe for
// concurrent use; token refreshes are serialized internally so concurrent
// calls never race the single-use refresh token.
type Client struct {
	http     *http.Client
	tokens   *tokenManager
	hosts    Hosts
	deviceID string

	mu               sync.RWMutex
	propertyID       string
	propertyLegacyID int
	userID           string
}

// New creates a Client for the production service from a refresh token.
func New(refreshToken string) (*Client, error) {
	return NewClient(Config{RefreshToken: refreshToken})
}

// NewClient creates a Client from an explicit Config.
func NewClient(cfg Config) (*Client, error) {
	if cfg.RefreshToken == "" {
		return nil, errors.New("blsdk: refresh token is required")
	}

	if cfg.ClientID == "" {
		cfg.ClientID = DefaultClientID
	}
	if cfg.DeviceID == "" {
		cfg.DeviceID = uuid.NewString()
	}
	if cfg.UserAgent == "" {
		cfg.UserAgent = DefaultUserAgent
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = DefaultTimeout
	}
	if cfg.RefreshMargin <= 0 {
		cfg.RefreshMargin = DefaultRefreshMargin
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: cfg.Timeout}
	}
	httpClient.Transport = httpx.NewTransport(
		httpClient.Transport,
		cfg.UserAgent,
		cfg.RateLimit.Limiter(),
	)

	hosts := cfg.Hosts.withDefaults()

	return &Client{
		http:     httpClient,
		tokens:   newTokenManager(httpClient, hosts.Auth, cfg.ClientID, cfg.RefreshToken, cfg.RefreshMargin),
		hosts:    hosts,
		deviceID: cfg.DeviceID,
	}, nil
}

// RefreshToken returns the current refresh token. The provider rotates it on
// every exchange, so read and persist this after SDK calls; it is the only
// state that survives between process runs.
func (c *Client) RefreshToken() string {
	return c.tokens.RefreshToken()
}

// DeviceID returns the device identifier attached to every request.
func (c *Client) DeviceID() string { return c.deviceID }

// SetProperty selects the active property context. GetContacts requires it:
// the legacy contacts endpoint addresses buildings by property ID and user
// ID. When userID is empty the user ID from the access token is used.
func (c *Client) SetProperty(propertyID string, legacyID int, userID string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.propertyID = propertyID
	c.propertyLegacyID = legacyID
	c.userID = userID
}

// propertyContext returns the current property selection.
func (c *Client) propertyContext() (propertyID string, legacyID int, userID string) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.propertyID, c.propertyLegacyID, c.userID
}

// Close releases idle transport connections. No in-flight refresh is
// interrupted: a refresh holds the token lock until its exchange completes,
// and the provider may already have rotated the token server-side.
func (c *Client) Close() {
	c.http.CloseIdleConnections()
}
