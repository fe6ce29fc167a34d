package blsdk

import (
	"errors"
	"fmt"
	"net/http"
)

// ============================================================================
// Error Taxonomy
// ============================================================================
//
// Four failure classes, surfaced unmodified to the caller:
//
//   - *TransportError:      network/timeout, the request may never have
//     reached BuildingLink. Safe to retry.
//   - *AuthenticationError: the provider rejected the refresh token or kept
//     rejecting the access token. Terminal for that refresh token; the
//     caller must re-authenticate out-of-band.
//   - *APIError:            a read endpoint returned non-2xx for a reason
//     other than auth.
//   - *ResponseFormatError: the response body did not match the documented
//     shape.
//
// The only built-in recovery is the single 401 -> refresh -> retry pass in
// authorizedRequest.

// maxBodySnippet caps how much of an error response body is retained for
// diagnostics.
const maxBodySnippet = 2048

// TransportError reports a network-level failure: connection errors, DNS
// failures, timeouts, or context cancellation. TokenState is never mutated
// on a transport failure.
type TransportError struct {
	// Op names the operation that failed, e.g. "refresh token" or
	// "get packages".
	Op  string
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("buildinglink: %s: %v", e.Op, e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }

// AuthenticationError reports that the provider rejected the credentials:
// either the refresh token exchange failed, or a request kept returning 401
// after a forced refresh. Check Client.RefreshToken() before discarding the
// session, the provider may have rotated the refresh token even though the
// exchange failed.
type AuthenticationError struct {
	// Description is the provider's error_description when one was
	// returned, otherwise a summary of what failed.
	Description string
	Err         error
}

func (e *AuthenticationError) Error() string {
	return "buildinglink: authentication failed: " + e.Description
}

func (e *AuthenticationError) Unwrap() error { return e.Err }

// APIError reports a non-2xx, non-auth response from a read endpoint.
type APIError struct {
	Status int
	// Body is the response body, truncated to a diagnostic snippet.
	Body string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("buildinglink: api error %d: %s", e.Status, e.Body)
}

// ResponseFormatError reports a response body that could not be decoded into
// the expected shape.
type ResponseFormatError struct {
	// Op names the operation whose response was malformed.
	Op  string
	Err error
}

func (e *ResponseFormatError) Error() string {
	return fmt.Sprintf("buildinglink: %s: unexpected response format: %v", e.Op, e.Err)
}

func (e *ResponseFormatError) Unwrap() error { return e.Err }

// ============================================================================
// Helpers
// ============================================================================

// snippet truncates b for inclusion in error messages.
func snippet(b []byte) string {
	if len(b) > maxBodySnippet {
		b = b[:maxBodySnippet]
	}
	return string(b)
}

// IsRetryable reports whether err is a transport-level failure the caller
// may reasonably retry.
func IsRetryable(err error) bool {
	var te *TransportError
	return errors.As(err, &te)
}

// IsAuthError reports whether err means the session's refresh token is no
// longer usable.
func IsAuthError(err error) bool {
	var ae *AuthenticationError
	return errors.As(err, &ae)
}

// apiError builds the error for a non-2xx endpoint response. A 401 here means
// the retry after a forced refresh also failed, which is an auth problem, not
// an API one.
func apiError(status int, body []byte) error {
	if status == http.StatusUnauthorized {
		return &AuthenticationError{
			Description: "access token rejected after refresh: " + snippet(body),
		}
	}

	return &APIError{Status: status, Body: snippet(body)}
}
