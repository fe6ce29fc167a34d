package blsdk

import (
	"context"
	"net/url"
	"time"
)

// GetCalendarEvents returns building calendar events, optionally bounded to
// [from, to]. Zero times omit the corresponding bound; the provider expects
// ISO-8601 timestamps as query parameters.
func (c *Client) GetCalendarEvents(ctx context.Context, from, to time.Time) ([]CalendarEvent, error) {
	query := url.Values{}
	if !from.IsZero() {
		query.Set("fromDateTime", from.Format(time.RFC3339))
	}
	if !to.IsZero() {
		query.Set("toDateTime", to.Format(time.RFC3339))
	}

	var list []CalendarEvent
	err := c.getJSON(ctx, "get calendar events",
		c.hosts.API+"/Calendar/Resident/v2/resident/events/filteredeventsrsvp",
		query, &list)
	if err != nil {
		return nil, err
	}

	return list, nil
}
