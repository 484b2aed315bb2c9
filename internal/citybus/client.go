// Package citybus is a client for the Patras CityBus REST API.
package citybus

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/mamalakic/patras-citybus-cli/internal/auth"
	"github.com/mamalakic/patras-citybus-cli/internal/models"
)

const (
	defaultBaseURL = "https://rest.citybus.gr/api/v1/el/112"
	webOrigin      = "https://patra.citybus.gr"
)

// Client issues authenticated requests against the CityBus API. A fresh
// token is resolved before every call; the API gives no token lifetime, so
// nothing is reused across calls.
type Client struct {
	resolver auth.Resolver
	client   *http.Client
	baseURL  string
}

// NewClient creates a client using the given token resolver.
func NewClient(resolver auth.Resolver, timeout time.Duration) *Client {
	return &Client{
		resolver: resolver,
		client:   &http.Client{Timeout: timeout},
		baseURL:  defaultBaseURL,
	}
}

// NewClientURL creates a client against a specific base URL.
func NewClientURL(resolver auth.Resolver, baseURL string, timeout time.Duration) *Client {
	c := NewClient(resolver, timeout)
	c.baseURL = baseURL
	return c
}

// FetchSchedule returns the scheduled trips for a stop on a day of the
// week, 1=Monday through 7=Sunday.
func (c *Client) FetchSchedule(stopCode, day int) ([]models.TripEntry, error) {
	if day < 1 || day > 7 {
		return nil, fmt.Errorf("day must be between 1 (Monday) and 7 (Sunday), got %d", day)
	}

	endpoint := fmt.Sprintf("trips/stop/%d/day/%d", stopCode, day)
	var trips []models.TripEntry
	if err := c.getJSON(endpoint, &trips); err != nil {
		return nil, err
	}
	return trips, nil
}

// FetchLive returns the live vehicle estimates for a stop.
func (c *Client) FetchLive(stopCode int) (models.LiveResponse, error) {
	endpoint := fmt.Sprintf("stops/live/%d", stopCode)
	var live models.LiveResponse
	if err := c.getJSON(endpoint, &live); err != nil {
		return models.LiveResponse{}, err
	}
	return live, nil
}

// FetchDirectory returns the full stop directory. Callers normally go
// through the stops cache instead of hitting this directly.
func (c *Client) FetchDirectory() ([]models.StopRecord, error) {
	var stops []models.StopRecord
	if err := c.getJSON("stops", &stops); err != nil {
		return nil, err
	}
	return stops, nil
}

func (c *Client) getJSON(endpoint string, out any) error {
	token, err := c.resolver.Token()
	if err != nil {
		return err
	}

	req, err := http.NewRequest(http.MethodGet, c.baseURL+"/"+endpoint, nil)
	if err != nil {
		return &NetworkError{Endpoint: endpoint, Err: err}
	}
	// The API rejects requests that do not claim to come from the
	// official web front-end.
	req.Header.Set("User-Agent", browserUserAgent)
	req.Header.Set("Accept", "application/json, text/javascript, */*; q=0.01")
	req.Header.Set("Referer", webOrigin+"/")
	req.Header.Set("Origin", webOrigin)
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := c.client.Do(req)
	if err != nil {
		return &NetworkError{Endpoint: endpoint, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &StatusError{Endpoint: endpoint, Code: resp.StatusCode}
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return &PayloadError{Endpoint: endpoint, Err: err}
	}
	return nil
}

const browserUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64; rv:140.0) Gecko/20100101 Firefox/140.0"
