package blsdk

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// accessTokenClaims are the claims the SDK reads from the provider's JWT
// access token: the expiry (fallback when the token response omits
// expires_in) and the subject (the BuildingLink user ID, needed by the
// legacy contacts endpoint).
type accessTokenClaims struct {
	Subject   string
	ExpiresAt time.Time // zero when the token carries no exp claim
}

// parseAccessTokenClaims decodes the claims without verifying the signature.
// The SDK is a consumer of the token, not its audience, so it has no business
// validating it; BuildingLink's services do that on every request.
func parseAccessTokenClaims(token string) (accessTokenClaims, error) {
	var reg jwt.RegisteredClaims

	if _, _, err := jwt.NewParser().ParseUnverified(token, &reg); err != nil {
		return accessTokenClaims{}, err
	}

	out := accessTokenClaims{Subject: reg.Subject}
	if reg.ExpiresAt != nil {
		out.ExpiresAt = reg.ExpiresAt.Time
	}

	return out, nil
}
