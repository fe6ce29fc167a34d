package blsdk

import "time"

// Fixed external contract with the BuildingLink service. The client ID and
// User-Agent mirror the official resident app since the provider only issues
// refresh tokens to it.
const (
	// DefaultClientID is the OAuth2 client the refresh token was issued to.
	DefaultClientID = "ios-resident-app"

	// DefaultUserAgent identifies the SDK to BuildingLink the same way the
	// resident app does.
	DefaultUserAgent = "ResidentApp/3.9.31 " +
		"(com.buildinglink.BuildingLink; build:796; iOS 26.3) " +
		"Alamofire/5.10.2"
)

// Production hosts. Every request goes to one of these unless overridden via
// Config.Hosts (tests point them all at an httptest server).
const (
	defaultAuthURL         = "https://auth.buildinglink.com/connect/token"
	defaultAPIHost         = "https://api.buildinglink.com"
	defaultEventLogHost    = "https://eventlog-us1.buildinglink.com"
	defaultMaintenanceHost = "https://maintenance-us1.buildinglink.com"
	defaultUsersHost       = "https://users-us1.buildinglink.com"
	defaultFrontDeskHost   = "https://frontdeskinstructions-us1.buildinglink.com"
	defaultLegacyHost      = "https://www.buildinglink.com"
)

const (
	// DefaultAccessTokenTTL is the provider's access token lifetime, used
	// when the token response omits expires_in and the token carries no
	// usable exp claim.
	DefaultAccessTokenTTL = 15 * time.Minute

	// DefaultRefreshMargin is subtracted from the token lifetime so a
	// refresh happens before true expiry, absorbing clock skew and request
	// latency.
	DefaultRefreshMargin = 30 * time.Second

	// DefaultTimeout bounds every HTTP call when Config.Timeout is unset.
	DefaultTimeout = 10 * time.Second
)
