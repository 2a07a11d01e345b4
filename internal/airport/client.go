package airport

import (
	"context"
	"fmt"
	"io"
	"net/http"
)

// DefaultURL serves the public airports.json dataset.
const DefaultURL = "https://gist.githubusercontent.com/tdreyno/4278655/raw/7b0762c09b519f40397e4c3e100b097d861f5588/airports.json"

// Client downloads airport datasets.
type Client struct {
	url  string
	http *http.Client
}

// NewClient creates a client for the dataset at url. An empty url means
// DefaultURL.
func NewClient(url string) *Client {
	if url == "" {
		url = DefaultURL
	}
	return &Client{
		url:  url,
		http: http.DefaultClient,
	}
}

// Fetch downloads and parses the dataset. It returns the raw body alongside
// the table so callers can cache exactly what was served.
func (c *Client) Fetch(ctx context.Context) (Table, []byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.url, nil)
	if err != nil {
		return Table{}, nil, fmt.Errorf("fetch airports: create request: %w", err)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return Table{}, nil, fmt.Errorf("fetch airports: execute request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return Table{}, nil, fmt.Errorf("fetch airports: read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return Table{}, nil, fmt.Errorf("fetch airports: unexpected status %d", resp.StatusCode)
	}

	t, err := Parse(body)
	if err != nil {
		return Table{}, nil, fmt.Errorf("fetch airports: %w", err)
	}
	if t.Len() == 0 {
		return Table{}, nil, fmt.Errorf("fetch airports: dataset has no usable entries")
	}

	return t, body, nil
}
