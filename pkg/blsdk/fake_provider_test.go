package blsdk_test

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"sync"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"

	"github.com/aussiebroadwan/buildinglink/pkg/blsdk"
)

// fakeBuildingLink stands in for the whole provider: the OAuth2 token
// endpoint with single-use rotating refresh tokens, plus every read
// endpoint behind bearer auth. All hosts collapse onto one httptest server.
type fakeBuildingLink struct {
	t   *testing.T
	srv *httptest.Server

	mu           sync.Mutex
	tokenCalls   int
	refreshToken string // the only refresh token currently valid
	accessToken  string // the only access token currently valid
	issueJWT     string // when set, access tokens are JWTs with this subject

	hits        map[string]int
	lastQuery   map[string]url.Values
	lastHeaders map[string]http.Header
	lastBody    map[string][]byte

	// Per-path overrides for failure injection.
	forceStatus map[string]int
	forceBody   map[string]string
}

func newFakeBuildingLink(t *testing.T) *fakeBuildingLink {
	t.Helper()

	f := &fakeBuildingLink{
		t:            t,
		refreshToken: "R0",
		hits:         make(map[string]int),
		lastQuery:    make(map[string]url.Values),
		lastHeaders:  make(map[string]http.Header),
		lastBody:     make(map[string][]byte),
		forceStatus:  make(map[string]int),
		forceBody:    make(map[string]string),
	}

	mux := http.NewServeMux()
	mux.HandleFunc("/connect/token", f.handleToken)

	serve := func(pattern, path, payload string) {
		mux.HandleFunc(pattern, f.readHandler(path, payload))
	}

	serve("/Properties/AuthenticatedUser/v1/property/authorized-properties",
		"/Properties/AuthenticatedUser/v1/property/authorized-properties",
		`{"properties":[{"id":"prop-1","name":"The Tower","address":"1 Main St","legacyId":777}]}`)

	serve("/event-log/integrations/resident-all",
		"/event-log/integrations/resident-all",
		`{"lastRecordVersion":"v42","entities":[
			{"id":"pkg-1","counter":2,"openComment":"1Z999AA10123456784",
			 "openUtc":"2026-08-30T18:04:05Z",
			 "eventType":{"id":"et-1","abbreviatedDescription":"UPS",
			   "eventBackgroundColor":"#663300","eventFontColor":"#ffffff"}},
			{"id":"pkg-2","counter":1}
		]}`)

	serve("/requests/get-all",
		"/requests/get-all",
		`{"items":[{"id":7,"subject":"Leaky tap","description":"Kitchen sink drips",
			"status":"Open","createdDate":"2026-08-01","category":"Plumbing"}],
		  "totalCount":1}`)

	serve("/ContentCreator/Resident/v1/announcements/active",
		"/ContentCreator/Resident/v1/announcements/active",
		`[{"id":3,"title":"Pool closed","body":"Maintenance all week",
		   "startDate":"2026-08-20","endDate":"2026-09-01"}]`)

	serve("/Calendar/Resident/v2/resident/events/filteredeventsrsvp",
		"/Calendar/Resident/v2/resident/events/filteredeventsrsvp",
		`[{"id":11,"title":"Rooftop BBQ","description":"Bring a plate",
		   "startDateTime":"2026-09-05T17:00:00Z","endDateTime":"2026-09-05T20:00:00Z",
		   "location":"Roof"}]`)

	serve("/AmenityReservation/Resident/v1/GetAmenities()",
		"/AmenityReservation/Resident/v1/GetAmenities()",
		`{"value":[{"Id":1,"Name":"Gym"},{"Id":2,"Name":"Pool"}]}`)

	serve("/AmenityReservation/Resident/v1/GetReservations()",
		"/AmenityReservation/Resident/v1/GetReservations()",
		`{"value":[{"id":5,"amenityName":"Gym",
		   "startDate":"2026-09-02T09:00:00Z","endDate":"2026-09-02T10:00:00Z"}]}`)

	serve("/services/MobileLinkResident1_7.svc/rest/Buildings/prop-1/V2/Contacts",
		"/contacts",
		`[{"name":"Front Desk","title":"Concierge","email":"desk@thetower.example","phone":"555-0100"}]`)

	serve("/users/authenticated",
		"/users/authenticated",
		`{"id":"user-1","firstName":"Alex","lastName":"Chen",
		  "email":"alex@example.com","phone":"555-0101"}`)

	serve("/instruction/sync",
		"/instruction/sync",
		`[{"id":"fdi-1","instructionTypeId":"fdt-1","notes":"Leave parcels with doorman"}]`)

	serve("/instruction-type/sync",
		"/instruction-type/sync",
		`[{"id":"fdt-1","name":"Deliveries"}]`)

	f.srv = httptest.NewServer(mux)
	t.Cleanup(f.srv.Close)
	return f
}

// client builds an SDK client pointed entirely at the fake.
func (f *fakeBuildingLink) client(cfg blsdk.Config) *blsdk.Client {
	f.t.Helper()

	if cfg.RefreshToken == "" {
		cfg.RefreshToken = "R0"
	}
	cfg.Hosts = blsdk.Hosts{
		Auth:        f.srv.URL + "/connect/token",
		API:         f.srv.URL,
		EventLog:    f.srv.URL,
		Maintenance: f.srv.URL,
		Users:       f.srv.URL,
		FrontDesk:   f.srv.URL,
		Legacy:      f.srv.URL,
	}

	c, err := blsdk.NewClient(cfg)
	require.NoError(f.t, err)
	return c
}

func (f *fakeBuildingLink) handleToken(w http.ResponseWriter, r *http.Request) {
	require.NoError(f.t, r.ParseForm())

	f.mu.Lock()
	defer f.mu.Unlock()

	if r.FormValue("grant_type") != "refresh_token" ||
		r.FormValue("refresh_token") != f.refreshToken {
		w.WriteHeader(http.StatusUnauthorized)
		_ = json.NewEncoder(w).Encode(map[string]string{
			"error":             "invalid_grant",
			"error_description": "refresh token invalid or already used",
		})
		return
	}

	f.tokenCalls++
	f.refreshToken = fmt.Sprintf("R%d", f.tokenCalls)
	f.accessToken = fmt.Sprintf("A%d", f.tokenCalls)

	if f.issueJWT != "" {
		claims := jwt.RegisteredClaims{
			Subject:   f.issueJWT,
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(15 * time.Minute)),
		}
		token, err := jwt.NewWithClaims(jwt.SigningMethodNone, claims).
			SignedString(jwt.UnsafeAllowNoneSignatureType)
		require.NoError(f.t, err)
		f.accessToken = token
	}

	_ = json.NewEncoder(w).Encode(map[string]any{
		"access_token":  f.accessToken,
		"token_type":    "Bearer",
		"expires_in":    900,
		"refresh_token": f.refreshToken,
	})
}

// readHandler records the request and serves the canned payload, enforcing
// bearer auth against the currently valid access token.
func (f *fakeBuildingLink) readHandler(path, payload string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		f.mu.Lock()
		defer f.mu.Unlock()

		f.hits[path]++
		f.lastQuery[path] = r.URL.Query()
		f.lastHeaders[path] = r.Header.Clone()
		if r.Body != nil {
			body, _ := io.ReadAll(r.Body)
			f.lastBody[path] = body
		}

		if status, ok := f.forceStatus[path]; ok {
			w.WriteHeader(status)
			_, _ = w.Write([]byte(f.forceBody[path]))
			return
		}

		if r.Header.Get("Authorization") != "Bearer "+f.accessToken || f.accessToken == "" {
			w.WriteHeader(http.StatusUnauthorized)
			_, _ = w.Write([]byte(`{"error":"invalid_token"}`))
			return
		}
		if body, ok := f.forceBody[path]; ok {
			_, _ = w.Write([]byte(body))
			return
		}

		_, _ = w.Write([]byte(payload))
	}
}

func (f *fakeBuildingLink) hitCount(path string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.hits[path]
}

func (f *fakeBuildingLink) tokenCallCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.tokenCalls
}

// revokeAccessToken simulates server-side early revocation: the current
// access token stops working but the refresh token remains valid.
func (f *fakeBuildingLink) revokeAccessToken() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.accessToken = "revoked-" + f.accessToken
}
