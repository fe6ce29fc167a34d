package blsdk

import "context"

// GetAnnouncements returns the building's active announcements.
func (c *Client) GetAnnouncements(ctx context.Context) ([]Announcement, error) {
	var list []Announcement
	err := c.getJSON(ctx, "get announcements",
		c.hosts.API+"/ContentCreator/Resident/v1/announcements/active",
		nil, &list)
	if err != nil {
		return nil, err
	}

	return list, nil
}
