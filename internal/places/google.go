package places

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/camelranchentertainment/Booking-Platform-sub000/internal/models"
)

// DefaultBaseURL is the Google Maps web service root.
const DefaultBaseURL = "https://maps.googleapis.com/maps/api"

const (
	statusOK          = "OK"
	statusZeroResults = "ZERO_RESULTS"
	statusNotFound    = "NOT_FOUND"
)

// GoogleClient implements Client against the Google Geocoding and Places web services.
type GoogleClient struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
}

// NewGoogleClient creates a new Google places client. An empty baseURL selects DefaultBaseURL.
func NewGoogleClient(apiKey, baseURL string, timeout time.Duration) *GoogleClient {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &GoogleClient{
		apiKey:  apiKey,
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// Google API response structures
type googleGeocodeResponse struct {
	Status       string                `json:"status"`
	ErrorMessage string                `json:"error_message,omitempty"`
	Results      []googleGeocodeResult `json:"results"`
}

type googleGeocodeResult struct {
	FormattedAddress string         `json:"formatted_address"`
	Geometry         googleGeometry `json:"geometry"`
}

type googleGeometry struct {
	Location googleLatLng `json:"location"`
}

type googleLatLng struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

type googleTextSearchResponse struct {
	Status       string              `json:"status"`
	ErrorMessage string              `json:"error_message,omitempty"`
	Results      []googleSearchPlace `json:"results"`
}

type googleSearchPlace struct {
	PlaceID string `json:"place_id"`
	Name    string `json:"name"`
}

type googleDetailsResponse struct {
	Status       string              `json:"status"`
	ErrorMessage string              `json:"error_message,omitempty"`
	Result       *googlePlaceDetails `json:"result,omitempty"`
}

type googlePlaceDetails struct {
	PlaceID              string   `json:"place_id"`
	Name                 string   `json:"name"`
	FormattedAddress     string   `json:"formatted_address"`
	FormattedPhoneNumber string   `json:"formatted_phone_number"`
	Website              string   `json:"website"`
	Rating               *float64 `json:"rating,omitempty"`
	Types                []string `json:"types"`
	URL                  string   `json:"url"`
}

// Validate reports a missing API key.
func (c *GoogleClient) Validate() error {
	if strings.TrimSpace(c.apiKey) == "" {
		return ErrMissingAPIKey
	}
	return nil
}

// doRequest performs a keyed GET against a Google endpoint and decodes the JSON body.
func (c *GoogleClient) doRequest(ctx context.Context, endpoint string, params url.Values, result interface{}) error {
	if err := c.Validate(); err != nil {
		return err
	}

	params.Set("key", c.apiKey)
	apiURL := c.baseURL + "/" + endpoint + "?" + params.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, apiURL, nil)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("send request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return fmt.Errorf("places api error: %s - %s", resp.Status, string(body))
	}

	if err := json.NewDecoder(resp.Body).Decode(result); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}

	return nil
}

// Geocode resolves an address to the coordinate of its first result.
func (c *GoogleClient) Geocode(ctx context.Context, address string) (models.Coordinate, error) {
	params := url.Values{}
	params.Set("address", address)

	var result googleGeocodeResponse
	if err := c.doRequest(ctx, "geocode/json", params, &result); err != nil {
		return models.Coordinate{}, err
	}

	if result.Status != statusOK || len(result.Results) == 0 {
		return models.Coordinate{}, fmt.Errorf("geocode %q: status %s: %w", address, statusText(result.Status, result.ErrorMessage), ErrNotFound)
	}

	loc := result.Results[0].Geometry.Location
	return models.Coordinate{Lat: loc.Lat, Lng: loc.Lng}, nil
}

// TextSearch runs a text search biased to center and restricted to radiusMeters.
func (c *GoogleClient) TextSearch(ctx context.Context, query string, center models.Coordinate, radiusMeters float64, categoryType string) ([]models.Candidate, error) {
	params := url.Values{}
	params.Set("query", query)
	params.Set("location", formatLatLng(center))
	params.Set("radius", strconv.FormatFloat(radiusMeters, 'f', -1, 64))
	if categoryType != "" {
		params.Set("type", categoryType)
	}

	var result googleTextSearchResponse
	if err := c.doRequest(ctx, "place/textsearch/json", params, &result); err != nil {
		return nil, err
	}

	switch result.Status {
	case statusOK:
	case statusZeroResults:
		return []models.Candidate{}, nil
	default:
		return nil, fmt.Errorf("text search %q: status %s", query, statusText(result.Status, result.ErrorMessage))
	}

	candidates := make([]models.Candidate, 0, len(result.Results))
	for _, p := range result.Results {
		if p.PlaceID == "" {
			continue
		}
		candidates = append(candidates, models.Candidate{PlaceID: p.PlaceID, Name: p.Name})
	}

	return candidates, nil
}

// Details fetches the detail record for placeID.
func (c *GoogleClient) Details(ctx context.Context, placeID string) (*models.PlaceDetails, error) {
	params := url.Values{}
	params.Set("place_id", placeID)
	params.Set("fields", strings.Join(DetailFields, ","))

	var result googleDetailsResponse
	if err := c.doRequest(ctx, "place/details/json", params, &result); err != nil {
		return nil, err
	}

	switch {
	case result.Status == statusNotFound || result.Status == statusZeroResults:
		return nil, fmt.Errorf("details %s: %w", placeID, ErrNotFound)
	case result.Status != statusOK:
		return nil, fmt.Errorf("details %s: status %s", placeID, statusText(result.Status, result.ErrorMessage))
	case result.Result == nil:
		return nil, fmt.Errorf("details %s: empty result: %w", placeID, ErrNotFound)
	}

	details := c.convertDetails(*result.Result)
	if details.PlaceID == "" {
		details.PlaceID = placeID
	}
	return &details, nil
}

func (c *GoogleClient) convertDetails(gd googlePlaceDetails) models.PlaceDetails {
	return models.PlaceDetails{
		PlaceID:          gd.PlaceID,
		Name:             strings.TrimSpace(gd.Name),
		FormattedAddress: strings.TrimSpace(gd.FormattedAddress),
		Phone:            strings.TrimSpace(gd.FormattedPhoneNumber),
		Website:          strings.TrimSpace(gd.Website),
		Rating:           gd.Rating,
		Types:            gd.Types,
		MapURL:           gd.URL,
	}
}

func formatLatLng(c models.Coordinate) string {
	return strconv.FormatFloat(c.Lat, 'f', -1, 64) + "," + strconv.FormatFloat(c.Lng, 'f', -1, 64)
}

func statusText(status, message string) string {
	if status == "" {
		status = "EMPTY"
	}
	if message == "" {
		return status
	}
	return status + " (" + message + ")"
}
