package blsdk

import "time"

// ============================================================================
// Token Types
// ============================================================================

// TokenResponse is the provider's OAuth2 token endpoint response. Field names
// are a fixed external contract (RFC 6749 style).
type TokenResponse struct {
	// AccessToken is the JWT bearer token used to authenticate API requests.
	AccessToken string `json:"access_token"`

	// TokenType is "Bearer".
	TokenType string `json:"token_type"`

	// ExpiresIn is the access token lifetime in seconds (900 in practice).
	ExpiresIn int `json:"expires_in"`

	// RefreshToken is the rotated single-use refresh token. The previous
	// value is invalid the moment this one is issued.
	RefreshToken string `json:"refresh_token"`

	// IDToken is the OIDC identity token, unused by the SDK but present in
	// the response.
	IDToken string `json:"id_token,omitempty"`
}

// oauthErrorResponse is the provider's error body shape for token endpoint
// failures. Some failure modes still rotate the refresh token, so the field
// is decoded from error responses too.
type oauthErrorResponse struct {
	Error            string `json:"error"`
	ErrorDescription string `json:"error_description"`
	RefreshToken     string `json:"refresh_token,omitempty"`
}

// ============================================================================
// Event Log (Packages)
// ============================================================================

// EventType describes the delivery/event category of a package entry.
type EventType struct {
	ID                     string `json:"id"`
	AbbreviatedDescription string `json:"abbreviatedDescription"`
	EventBackgroundColor   string `json:"eventBackgroundColor"`
	EventFontColor         string `json:"eventFontColor"`
	IconURL                string `json:"iconUrl,omitempty"`
}

// Package is a package/delivery entry from the event log.
type Package struct {
	ID          string     `json:"id"`
	Counter     int        `json:"counter"`
	OpenComment string     `json:"openComment,omitempty"`
	OpenUTC     *time.Time `json:"openUtc,omitempty"`
	EventType   *EventType `json:"eventType,omitempty"`
}

// Carrier returns the carrier name derived from the event type, or "Unknown"
// when the entry has no type.
func (p Package) Carrier() string {
	if p.EventType == nil || p.EventType.AbbreviatedDescription == "" {
		return "Unknown"
	}
	return p.EventType.AbbreviatedDescription
}

// TrackingNumber returns the tracking number, which the front desk records in
// the open comment field.
func (p Package) TrackingNumber() string { return p.OpenComment }

// packageResponse wraps the event log list endpoint payload.
type packageResponse struct {
	LastRecordVersion string    `json:"lastRecordVersion,omitempty"`
	Entities          []Package `json:"entities"`
}

// ============================================================================
// Maintenance
// ============================================================================

// MaintenanceRequest is a unit maintenance request.
type MaintenanceRequest struct {
	ID          int    `json:"id"`
	Subject     string `json:"subject"`
	Description string `json:"description"`
	Status      string `json:"status"`
	CreatedDate string `json:"createdDate"`
	Category    string `json:"category"`
}

// maintenanceResponse wraps the maintenance list endpoint payload.
type maintenanceResponse struct {
	Items      []MaintenanceRequest `json:"items"`
	TotalCount int                  `json:"totalCount"`
}

// maintenanceFilter is the POST body the maintenance search endpoint expects.
// The values mirror the resident app's "open requests" view.
type maintenanceFilter struct {
	FilterBy maintenanceFilterBy `json:"filterBy"`
	Current  int                 `json:"current"`
	Size     int                 `json:"size"`
}

type maintenanceFilterBy struct {
	OnHoldUntil             bool `json:"onHoldUntil"`
	OnHoldIndefinitely      bool `json:"onHoldIndefinitely"`
	IncludeClosedRequests   bool `json:"includeClosedRequests"`
	IncludeDeactivatedUnits bool `json:"includeDeactivatedUnits"`
}

// ============================================================================
// Announcements & Calendar
// ============================================================================

// Announcement is an active building announcement.
type Announcement struct {
	ID        int    `json:"id"`
	Title     string `json:"title"`
	Body      string `json:"body"`
	StartDate string `json:"startDate"`
	EndDate   string `json:"endDate"`
}

// CalendarEvent is a building calendar event.
type CalendarEvent struct {
	ID            int    `json:"id"`
	Title         string `json:"title"`
	Description   string `json:"description"`
	StartDateTime string `json:"startDateTime"`
	EndDateTime   string `json:"endDateTime"`
	Location      string `json:"location"`
}

// ============================================================================
// Amenities
// ============================================================================

// Amenity is a reservable building amenity. The amenity endpoints speak
// OData, hence the capitalised field names.
type Amenity struct {
	ID   int    `json:"Id"`
	Name string `json:"Name"`
}

// AmenityReservation is a resident's amenity booking.
type AmenityReservation struct {
	ID          int    `json:"id"`
	AmenityName string `json:"amenityName"`
	StartDate   string `json:"startDate"`
	EndDate     string `json:"endDate"`
}

// odataResponse wraps OData collection payloads.
type odataResponse[T any] struct {
	Value []T `json:"value"`
}

// ============================================================================
// Contacts, Users, Properties
// ============================================================================

// Contact is a building staff contact.
type Contact struct {
	Name  string `json:"name"`
	Title string `json:"title"`
	Email string `json:"email"`
	Phone string `json:"phone"`
}

// UserProfile is the authenticated resident's profile.
type UserProfile struct {
	ID        string `json:"id"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
}

// Property is a building the user is authorized on.
type Property struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Address  string `json:"address"`
	LegacyID int    `json:"legacyId"`
}

// propertiesResponse wraps the authorized-properties payload. The endpoint
// has been observed returning either a bare array or an object with a
// "properties" key, so both are handled at decode time.
type propertiesResponse struct {
	Properties []Property `json:"properties"`
}

// ============================================================================
// Front Desk
// ============================================================================

// FrontDeskInstructionType categorises front desk instructions.
type FrontDeskInstructionType struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// FrontDeskInstruction is a standing instruction for the front desk.
type FrontDeskInstruction struct {
	ID                string `json:"id"`
	InstructionTypeID string `json:"instructionTypeId"`
	Notes             string `json:"notes"`
}
