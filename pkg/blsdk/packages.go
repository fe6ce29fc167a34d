package blsdk

import (
	"context"
	"net/url"
)

// GetPackages returns open packages and deliveries from the building's event
// log.
func (c *Client) GetPackages(ctx context.Context) ([]Package, error) {
	query := url.Values{
		"$expand": {"Location,Type,Authorizations"},
		"$filter": {"IsOpen eq true and Type/IsShownOnTenantHomePage eq true"},
	}

	var resp packageResponse
	err := c.getJSON(ctx, "get packages",
		c.hosts.EventLog+"/event-log/integrations/resident-all",
		query, &resp)
	if err != nil {
		return nil, err
	}

	return resp.Entities, nil
}
