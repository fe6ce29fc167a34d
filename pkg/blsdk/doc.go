/*
Package blsdk is a read-only client SDK for the BuildingLink resident API.

# Overview

BuildingLink authenticates residents with OAuth2 refresh-token rotation: a
long-lived refresh token is exchanged for a 15 minute access token, and every
exchange invalidates the refresh token and issues a new one. The SDK owns that
lifecycle. Callers construct a Client from the current refresh token, call the
typed read operations, and persist Client.RefreshToken() afterwards — it may
have rotated during any call.

	client, err := blsdk.New(storedRefreshToken)
	if err != nil {
		return err
	}
	defer client.Close()

	packages, err := client.GetPackages(ctx)
	if err != nil {
		return err
	}

	// The refresh token is single-use and rotates server-side; always
	// persist the current value, even after failed calls.
	store.Save(client.RefreshToken())

# Token lifecycle

Access tokens are cached and reused until a safety margin (default 30s)
before expiry, then refreshed transparently. The refresh is a critical
section: concurrent calls that find an expired token wait on the one
in-flight exchange and share its result, because racing two exchanges
against a single-use refresh token would make the provider reject one of
them. A request that draws a 401 despite a believed-valid token forces
exactly one refresh and one retry; a second 401 surfaces as
*AuthenticationError.

If an exchange fails after the provider already rotated the refresh token,
the rotated value is still captured and visible through RefreshToken()
before the error returns. Discarding it would permanently lock the account
out.

# Errors

All failures surface as one of four types: *TransportError (network/timeout,
retryable), *AuthenticationError (refresh token exhausted, re-authenticate
out-of-band), *APIError (non-2xx from a read endpoint), *ResponseFormatError
(undocumented response shape). See errors.go.

# Configuration

NewClient accepts a Config for overriding the timeout, per-service base
URLs, device ID, refresh margin, and outbound rate limit. New(refreshToken)
uses production defaults. Logging is opt-in: attach a *slog.Logger to the
context with slogx.WithContext to see refresh lifecycle logs.
*/
package blsdk
