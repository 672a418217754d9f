// Package client speaks the deadoralive API exposed by the client
// service: listing resources to check, resolving a resource to its
// URL, and upserting check results.
package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/deadoralive/checker/internal/domain"
)

type Client struct {
	BaseURL    string // always ends with "/"
	APIKey     string // empty means no Authorization header
	HTTPClient *http.Client
}

func New(baseURL, apikey string, timeout time.Duration) *Client {
	if !strings.HasSuffix(baseURL, "/") {
		baseURL += "/"
	}
	return &Client{
		BaseURL:    baseURL,
		APIKey:     apikey,
		HTTPClient: &http.Client{Timeout: timeout},
	}
}

func (c *Client) get(ctx context.Context, path string, query url.Values) (*http.Response, error) {
	u := c.BaseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, err
	}
	if c.APIKey != "" {
		req.Header.Set("Authorization", c.APIKey)
	}
	return c.HTTPClient.Do(req)
}

// ResourcesToCheck fetches the IDs the client service wants checked,
// in the order the service returned them.
func (c *Client) ResourcesToCheck(ctx context.Context) ([]domain.ResourceID, error) {
	resp, err := c.get(ctx, "deadoralive/get_resources_to_check", nil)
	if err != nil {
		return nil, fmt.Errorf("get resources to check: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &ListingError{Status: resp.StatusCode, Reason: reasonOf(resp)}
	}

	var ids []domain.ResourceID
	if err := json.NewDecoder(resp.Body).Decode(&ids); err != nil {
		return nil, fmt.Errorf("decode resource IDs: %w", err)
	}
	return ids, nil
}

// URLForResource resolves one resource ID to its checkable URL.
func (c *Client) URLForResource(ctx context.Context, id domain.ResourceID) (string, error) {
	q := url.Values{"resource_id": {string(id)}}
	resp, err := c.get(ctx, "deadoralive/get_url_for_resource_id", q)
	if err != nil {
		return "", fmt.Errorf("get URL for resource %s: %w", id, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", &ResolutionError{ResourceID: id, Status: resp.StatusCode, Reason: reasonOf(resp)}
	}

	var u string
	if err := json.NewDecoder(resp.Body).Decode(&u); err != nil {
		return "", fmt.Errorf("decode URL for resource %s: %w", id, err)
	}
	return u, nil
}

// UpsertResult posts one check result back to the client service. The
// result fields travel as query parameters; status is omitted entirely
// when no HTTP response was received.
func (c *Client) UpsertResult(ctx context.Context, id domain.ResourceID, result domain.ProbeResult) error {
	q := url.Values{
		"resource_id": {string(id)},
		"url":         {result.URL},
		"alive":       {strconv.FormatBool(result.Alive)},
		"reason":      {result.Reason},
	}
	if code, ok := result.StatusCode(); ok {
		q.Set("status", strconv.Itoa(code))
	}

	u := c.BaseURL + "deadoralive/upsert?" + q.Encode()
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, u, nil)
	if err != nil {
		return err
	}
	if c.APIKey != "" {
		req.Header.Set("Authorization", c.APIKey)
	}

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return fmt.Errorf("upsert result for resource %s: %w", id, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("upsert result for resource %s: %d %s", id, resp.StatusCode, reasonOf(resp))
	}
	return nil
}

func reasonOf(resp *http.Response) string {
	if text := http.StatusText(resp.StatusCode); text != "" {
		return text
	}
	return resp.Status
}
