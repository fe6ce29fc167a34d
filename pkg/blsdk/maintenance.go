package blsdk

import (
	"context"
	"net/url"
)

// GetMaintenanceRequests returns the unit's open maintenance requests.
// The search endpoint is a POST with a filter body even though the
// operation is a logical read; the filter mirrors the resident app's open
// requests view.
func (c *Client) GetMaintenanceRequests(ctx context.Context) ([]MaintenanceRequest, error) {
	query := url.Values{
		"extended":             {"true"},
		"isBoardMemberSection": {"false"},
	}

	filter := maintenanceFilter{
		FilterBy: maintenanceFilterBy{
			OnHoldUntil:             true,
			OnHoldIndefinitely:      true,
			IncludeClosedRequests:   false,
			IncludeDeactivatedUnits: false,
		},
		Current: 1,
		Size:    10000,
	}

	var resp maintenanceResponse
	err := c.postJSON(ctx, "get maintenance requests",
		c.hosts.Maintenance+"/requests/get-all",
		query, filter, &resp)
	if err != nil {
		return nil, err
	}

	return resp.Items, nil
}
