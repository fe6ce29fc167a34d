package blsdk

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"github.com/aussiebroadwan/buildinglink/pkg/slogx"
)

// authorizedRequest performs one authenticated call against a read endpoint
// and returns the response body.
//
// It obtains a valid access token (refreshing if needed), attaches the
// bearer header and device-id parameter, and on a 401 forces exactly one
// refresh and one retry. Any further 401 surfaces as *AuthenticationError;
// transport failures are never retried here, that is the caller's call.
func (c *Client) authorizedRequest(ctx context.Context, op, method, rawURL string, query url.Values, jsonBody any) ([]byte, error) {
	token, err := c.tokens.Token(ctx)
	if err != nil {
		return nil, err
	}

	status, body, err := c.doOnce(ctx, op, method, rawURL, query, jsonBody, token)
	if err != nil {
		return nil, err
	}

	if status == http.StatusUnauthorized {
		slogx.FromContext(ctx).Debug("access token rejected, forcing refresh", "op", op)

		token, err = c.tokens.TokenAfter401(ctx, token)
		if err != nil {
			return nil, err
		}

		status, body, err = c.doOnce(ctx, op, method, rawURL, query, jsonBody, token)
		if err != nil {
			return nil, err
		}
	}

	if status < 200 || status >= 300 {
		return nil, apiError(status, body)
	}

	return body, nil
}

// doOnce issues a single HTTP request with the given bearer token.
func (c *Client) doOnce(ctx context.Context, op, method, rawURL string, query url.Values, jsonBody any, token string) (int, []byte, error) {
	var reqBody io.Reader
	if jsonBody != nil {
		buf, err := json.Marshal(jsonBody)
		if err != nil {
			return 0, nil, fmt.Errorf("blsdk: %s: encode request body: %w", op, err)
		}
		reqBody = bytes.NewReader(buf)
	}

	q := url.Values{}
	for k, vs := range query {
		q[k] = vs
	}
	q.Set("device-id", c.deviceID)

	req, err := http.NewRequestWithContext(ctx, method, rawURL+"?"+q.Encode(), reqBody)
	if err != nil {
		return 0, nil, &TransportError{Op: op, Err: err}
	}

	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Accept", "application/json")
	if jsonBody != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return 0, nil, &TransportError{Op: op, Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return 0, nil, &TransportError{Op: op, Err: err}
	}

	return resp.StatusCode, body, nil
}

// getJSON performs an authorized GET and decodes the response into target.
func (c *Client) getJSON(ctx context.Context, op, rawURL string, query url.Values, target any) error {
	body, err := c.authorizedRequest(ctx, op, http.MethodGet, rawURL, query, nil)
	if err != nil {
		return err
	}
	return decodeInto(op, body, target)
}

// postJSON performs an authorized POST with a JSON body and decodes the
// response into target.
func (c *Client) postJSON(ctx context.Context, op, rawURL string, query url.Values, jsonBody, target any) error {
	body, err := c.authorizedRequest(ctx, op, http.MethodPost, rawURL, query, jsonBody)
	if err != nil {
		return err
	}
	return decodeInto(op, body, target)
}

// decodeInto unmarshals body into target, classifying failures as
// *ResponseFormatError.
func decodeInto(op string, body []byte, target any) error {
	if err := json.Unmarshal(body, target); err != nil {
		return &ResponseFormatError{Op: op, Err: err}
	}
	return nil
}
