// Package client provides the HTTP client layer for the pulsectl CLI.
//
// This package implements all communication with the Neat Pulse REST API
// including request/response serialization, error classification, and
// structured logging for reliable organization management operations.
//
// API CLIENT ARCHITECTURE:
// The PulseAPIClient wraps the Resty HTTP client with Pulse-specific
// functionality:
//   - Authentication: Bearer token and organization-scoped URL paths
//   - Request/Response Handling: JSON serialization, tolerant envelope
//     parsing, and structured logging
//   - Error Classification: APIError carries the HTTP status and the
//     Retry-After hint so callers can distinguish throttling from
//     terminal failures
//
// SUPPORTED OPERATIONS:
//   - Regions: Listing and creation
//   - Locations: Listing and creation within a region
//   - Rooms: Creation returning the device enrollment code (DEC)
//
// LIST ENVELOPE TOLERANCE:
// The Pulse API has returned list payloads in several shapes across
// versions: a bare JSON array, an object keyed by the resource name
// ("regions", "locations"), or an object with a generic "data" key.
// List operations accept all three so the CLI keeps working across
// API revisions.
//
// Room creation deliberately has no client-side retry: the bulk import
// submitter owns pacing and 429 retry policy, and a hidden transport
// retry underneath it would break its rate accounting.
package client

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/pulse-tools/pulsectl/cmd/pulsectl/config"
	"github.com/pulse-tools/pulsectl/cmd/pulsectl/utils"
	"github.com/pulse-tools/pulsectl/internal/logging"
)

// APIError represents a non-2xx response from the Pulse API. It preserves
// the HTTP status code and response body for error classification and
// carries the parsed Retry-After header when the server sent one.
//
// The bulk import submitter inspects these fields to decide between
// retrying (429) and failing the row terminally (any other status), so
// every API method in this package returns *APIError for HTTP failures.
type APIError struct {
	StatusCode int
	Body       string
	RetryAfter time.Duration // zero when the server sent no Retry-After header
}

// Error formats the failure as "HTTP <status>: <body>" which is the form
// surfaced in per-row failure reasons and CLI error messages.
func (e *APIError) Error() string {
	return fmt.Sprintf("HTTP %d: %s", e.StatusCode, e.Body)
}

// HTTPStatus returns the response status code for retry classification.
func (e *APIError) HTTPStatus() int {
	return e.StatusCode
}

// RetryAfterHint returns the server-provided wait duration and whether
// one was present on the response.
func (e *APIError) RetryAfterHint() (time.Duration, bool) {
	return e.RetryAfter, e.RetryAfter > 0
}

// Region represents a Pulse region, the top level of the org hierarchy.
type Region struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// Location represents a Pulse location within a region. The API returns
// the parent either as a flat regionId or as a nested region object
// depending on the endpoint, so both shapes are mapped.
type Location struct {
	ID       int     `json:"id"`
	Name     string  `json:"name"`
	RegionID int     `json:"regionId,omitempty"`
	Region   *Region `json:"region,omitempty"`
}

// RegionRef returns a printable region reference for display purposes,
// preferring the nested region name over the bare ID.
func (l Location) RegionRef() string {
	if l.Region != nil && l.Region.Name != "" {
		return l.Region.Name
	}
	if l.Region != nil && l.Region.ID != 0 {
		return strconv.Itoa(l.Region.ID)
	}
	if l.RegionID != 0 {
		return strconv.Itoa(l.RegionID)
	}
	return "-"
}

// roomCreateResponse is the payload returned when a room is created.
// Only the enrollment code matters to the CLI.
type roomCreateResponse struct {
	ID   int    `json:"id,omitempty"`
	Name string `json:"name,omitempty"`
	DEC  string `json:"dec"`
}

// PulseAPIClient wraps the Resty HTTP client with Pulse-specific
// functionality for reliable API communication. All requests carry the
// bearer token and are scoped to one organization.
type PulseAPIClient struct {
	client  *resty.Client
	baseURL string
	orgID   string
}

// NewPulseAPIClient creates a new API client with Resty configuration for
// reliable Pulse API communication. Configures timeout handling, bearer
// authentication, structured logging integration, and proper headers.
//
// Connection-level failures on read operations are retried a few times
// with a short backoff; HTTP-level errors are never retried here because
// retry policy belongs to the caller (interactive commands fail fast,
// the bulk import submitter applies its own 429 policy).
func NewPulseAPIClient(baseURL, orgID, token string, timeout int) *PulseAPIClient {
	client := resty.New()

	// Route Resty's internal logging through our structured logging system
	client.SetLogger(utils.RestyLogger{})

	client.
		SetTimeout(time.Duration(timeout)*time.Second).
		SetBaseURL(baseURL).
		SetAuthToken(token).
		SetHeader("Accept", "application/json").
		SetHeader("Content-Type", "application/json").
		SetHeader("User-Agent", fmt.Sprintf("pulsectl/%s", config.Version))

	// Retry connection errors a few times for the single-shot commands.
	// HTTP-level errors are never retried here, and bulk room creation is
	// excluded entirely because the submitter owns its retry policy.
	client.
		SetRetryCount(3).
		SetRetryWaitTime(1 * time.Second).
		SetRetryMaxWaitTime(5 * time.Second).
		AddRetryCondition(func(r *resty.Response, err error) bool {
			if err == nil {
				return false
			}
			if r != nil && r.Request != nil && strings.HasSuffix(r.Request.URL, "/rooms") {
				return false
			}
			return true
		})

	// Custom request logging using structured logging
	client.OnBeforeRequest(func(c *resty.Client, req *resty.Request) error {
		logging.Debug("Making API request: %s %s", req.Method, req.URL)
		return nil
	})

	// Custom response logging using structured logging
	client.OnAfterResponse(func(c *resty.Client, resp *resty.Response) error {
		logging.Debug("API response: %d %s (took %v)",
			resp.StatusCode(), resp.Status(), resp.Time())
		return nil
	})

	// Custom error logging using structured logging
	client.OnError(func(req *resty.Request, err error) {
		logging.Debug("API request failed: %s %s - %v", req.Method, req.URL, err)
	})

	return &PulseAPIClient{
		client:  client,
		baseURL: baseURL,
		orgID:   orgID,
	}
}

// orgPath builds an organization-scoped API path such as
// /v1/orgs/<org>/rooms.
func (api *PulseAPIClient) orgPath(resource string) string {
	return fmt.Sprintf("/v1/orgs/%s/%s", api.orgID, resource)
}

// apiError converts a non-2xx Resty response into an *APIError, parsing
// the Retry-After header when present. Only delay-seconds Retry-After
// values are recognized; HTTP-date values are rare on this API and fall
// back to the caller's default wait.
func apiError(resp *resty.Response) *APIError {
	apiErr := &APIError{
		StatusCode: resp.StatusCode(),
		Body:       resp.String(),
	}
	if ra := resp.Header().Get("Retry-After"); ra != "" {
		if secs, err := strconv.Atoi(ra); err == nil && secs > 0 {
			apiErr.RetryAfter = time.Duration(secs) * time.Second
		}
	}
	return apiErr
}

// friendlyError maps the common failure statuses of org-scoped single-shot
// commands to actionable messages. Anything else keeps the raw *APIError.
func friendlyError(resp *resty.Response) error {
	switch resp.StatusCode() {
	case 401:
		return fmt.Errorf("unauthorized - check your bearer token")
	case 404:
		return fmt.Errorf("organization not found - check your organization ID")
	}
	return apiError(resp)
}

// decodeList unmarshals a list response body tolerating the envelope
// variants the Pulse API has used: a bare array, an object with the
// resource-named key, or an object with a "data" key. A single object
// is treated as a one-element list.
func decodeList(body []byte, key string, out any) error {
	// Bare array is the common case.
	if err := json.Unmarshal(body, out); err == nil {
		return nil
	}

	var envelope map[string]json.RawMessage
	if err := json.Unmarshal(body, &envelope); err != nil {
		return fmt.Errorf("unexpected response format: %w", err)
	}

	if raw, ok := envelope[key]; ok {
		return json.Unmarshal(raw, out)
	}
	if raw, ok := envelope["data"]; ok {
		return json.Unmarshal(raw, out)
	}

	// An object with neither key is a single resource.
	wrapped := append(append([]byte("["), body...), ']')
	return json.Unmarshal(wrapped, out)
}

// ListRegions fetches all regions in the organization. Tolerates the
// known list envelope variants and returns regions in API order; sorting
// is a display concern.
func (api *PulseAPIClient) ListRegions() ([]Region, error) {
	resp, err := api.client.R().Get(api.orgPath("regions"))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to Pulse API at %s: %w", api.baseURL, err)
	}

	if resp.StatusCode() != 200 {
		return nil, friendlyError(resp)
	}

	var regions []Region
	if err := decodeList(resp.Body(), "regions", &regions); err != nil {
		return nil, fmt.Errorf("failed to parse regions response: %w", err)
	}
	return regions, nil
}

// CreateRegion creates a new region with the given name and returns the
// created resource.
func (api *PulseAPIClient) CreateRegion(name string) (*Region, error) {
	var region Region

	resp, err := api.client.R().
		SetBody(map[string]any{"name": name}).
		SetResult(&region).
		Post(api.orgPath("regions"))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to Pulse API at %s: %w", api.baseURL, err)
	}

	if resp.StatusCode() != 200 && resp.StatusCode() != 201 {
		return nil, friendlyError(resp)
	}

	if region.Name == "" {
		region.Name = name
	}
	return &region, nil
}

// ListLocations fetches all locations in the organization. Tolerates the
// known list envelope variants.
func (api *PulseAPIClient) ListLocations() ([]Location, error) {
	resp, err := api.client.R().Get(api.orgPath("locations"))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to Pulse API at %s: %w", api.baseURL, err)
	}

	if resp.StatusCode() != 200 {
		return nil, friendlyError(resp)
	}

	var locations []Location
	if err := decodeList(resp.Body(), "locations", &locations); err != nil {
		return nil, fmt.Errorf("failed to parse locations response: %w", err)
	}
	return locations, nil
}

// CreateLocation creates a new location under the given region and
// returns the created resource.
func (api *PulseAPIClient) CreateLocation(name string, regionID int) (*Location, error) {
	var location Location

	resp, err := api.client.R().
		SetBody(map[string]any{"name": name, "regionId": regionID}).
		SetResult(&location).
		Post(api.orgPath("locations"))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to Pulse API at %s: %w", api.baseURL, err)
	}

	if resp.StatusCode() != 200 && resp.StatusCode() != 201 {
		return nil, friendlyError(resp)
	}

	if location.Name == "" {
		location.Name = name
	}
	if location.RegionID == 0 {
		location.RegionID = regionID
	}
	return &location, nil
}

// CreateRoom creates a room in the given location and returns the device
// enrollment code (DEC) from the response. HTTP failures come back as
// *APIError so the bulk import submitter can classify them; there is no
// retry at this level.
//
// The signature matches the submitter's SendFunc after a small closure,
// which is how the room import handler wires the two together.
func (api *PulseAPIClient) CreateRoom(locationID int, name string) (string, error) {
	var result roomCreateResponse

	resp, err := api.client.R().
		SetBody(map[string]any{"locationId": locationID, "name": name}).
		SetResult(&result).
		Post(api.orgPath("rooms"))
	if err != nil {
		return "", fmt.Errorf("failed to connect to Pulse API at %s: %w", api.baseURL, err)
	}

	if resp.StatusCode() != 200 && resp.StatusCode() != 201 {
		return "", apiError(resp)
	}

	if result.DEC == "" {
		logging.Warn("Room '%s' created but response carried no enrollment code", name)
	}
	return result.DEC, nil
}

// CreateAPIClient creates a new Pulse API client using current global CLI
// configuration including base URL, organization, credentials, and timeout.
// Provides convenient client instantiation for CLI commands without manual
// configuration management.
func CreateAPIClient() *PulseAPIClient {
	return NewPulseAPIClient(config.Global.BaseURL, config.Global.OrgID, config.Global.Token, config.Global.Timeout)
}
