package blsdk

import "context"

// GetUserProfile returns the authenticated resident's profile.
func (c *Client) GetUserProfile(ctx context.Context) (*UserProfile, error) {
	var profile UserProfile
	err := c.getJSON(ctx, "get user profile",
		c.hosts.Users+"/users/authenticated",
		nil, &profile)
	if err != nil {
		return nil, err
	}

	return &profile, nil
}
