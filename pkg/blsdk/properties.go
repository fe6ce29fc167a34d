package blsdk

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"
)

// GetProperties returns the buildings the authenticated user is authorized
// on. Pick one and pass its IDs to SetProperty before calling GetContacts.
func (c *Client) GetProperties(ctx context.Context) ([]Property, error) {
	const op = "get properties"

	query := url.Values{
		// Filter to residential property nodes.
		"TypeNodeFilter": {"/5/"},
	}

	body, err := c.authorizedRequest(ctx, op, http.MethodGet,
		c.hosts.API+"/Properties/AuthenticatedUser/v1/property/authorized-properties",
		query, nil)
	if err != nil {
		return nil, err
	}

	// The endpoint returns either a bare array or an object with a
	// "properties" key depending on the account shape.
	var list []Property
	if err := json.Unmarshal(body, &list); err == nil {
		return list, nil
	}

	var wrapped propertiesResponse
	if err := json.Unmarshal(body, &wrapped); err != nil {
		return nil, &ResponseFormatError{Op: op, Err: err}
	}

	return wrapped.Properties, nil
}
