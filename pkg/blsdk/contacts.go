package blsdk

import (
	"context"
	"errors"
	"net/url"
)

// ErrNoProperty is returned by GetContacts before a property has been
// selected with SetProperty.
var ErrNoProperty = errors.New("blsdk: no property selected, call SetProperty first")

// GetContacts returns building staff contacts. The legacy endpoint addresses
// buildings by property ID, so SetProperty must be called first. The user ID
// falls back to the subject of the current access token when SetProperty was
// given an empty one.
func (c *Client) GetContacts(ctx context.Context) ([]Contact, error) {
	propertyID, _, userID := c.propertyContext()
	if propertyID == "" {
		return nil, ErrNoProperty
	}

	if userID == "" {
		// Subject is populated once a token has been obtained; force that
		// if this is the first call on the client.
		if _, err := c.tokens.Token(ctx); err != nil {
			return nil, err
		}
		userID = c.tokens.Subject()
	}
	if userID == "" {
		return nil, ErrNoProperty
	}

	query := url.Values{
		"format": {"json"},
		"t":      {"1"},
		"l":      {userID},
	}

	var list []Contact
	err := c.getJSON(ctx, "get contacts",
		c.hosts.Legacy+"/services/MobileLinkResident1_7.svc/rest/Buildings/"+url.PathEscape(propertyID)+"/V2/Contacts",
		query, &list)
	if err != nil {
		return nil, err
	}

	return list, nil
}
