package blsdk

import (
	"context"
	"net/url"
)

// GetAmenities returns the building's reservable amenities.
func (c *Client) GetAmenities(ctx context.Context) ([]Amenity, error) {
	query := url.Values{"$skip": {"0"}}

	var resp odataResponse[Amenity]
	err := c.getJSON(ctx, "get amenities",
		c.hosts.API+"/AmenityReservation/Resident/v1/GetAmenities()",
		query, &resp)
	if err != nil {
		return nil, err
	}

	return resp.Value, nil
}

// GetAmenityReservations returns the resident's amenity bookings.
func (c *Client) GetAmenityReservations(ctx context.Context) ([]AmenityReservation, error) {
	var resp odataResponse[AmenityReservation]
	err := c.getJSON(ctx, "get amenity reservations",
		c.hosts.API+"/AmenityReservation/Resident/v1/GetReservations()",
		nil, &resp)
	if err != nil {
		return nil, err
	}

	return resp.Value, nil
}
