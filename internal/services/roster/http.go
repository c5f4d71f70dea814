package roster

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/goccy/go-json"
)

// fortRosterAction selects the roster query on the feed endpoint
const fortRosterAction = "getFortRoster"

// Config holds configuration for the HTTP roster client
type Config struct {
	// URL is the feed endpoint; the action is passed as a query parameter
	URL string

	// HTTPClient overrides the default client, mostly for tests
	HTTPClient *http.Client
}

// httpClient implements the Client interface against the roster feed
type httpClient struct {
	url    string
	client *http.Client
}

// NewHTTP creates a new HTTP-backed roster client
func NewHTTP(cfg *Config) (*httpClient, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}
	if cfg.URL == "" {
		return nil, errors.New("url cannot be empty")
	}

	client := cfg.HTTPClient
	if client == nil {
		client = &http.Client{Timeout: 10 * time.Second}
	}

	return &httpClient{url: cfg.URL, client: client}, nil
}

// GetFortRoster returns the ranked fort roster
func (c *httpClient) GetFortRoster(ctx context.Context) (*GetFortRosterOutput, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.actionURL(fortRosterAction), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build roster request: %w", err)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch fort roster: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fort roster feed returned status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read roster response: %w", err)
	}

	var entries []Entry
	if err := json.Unmarshal(body, &entries); err != nil {
		return nil, fmt.Errorf("failed to decode fort roster: %w", err)
	}

	return &GetFortRosterOutput{Entries: entries}, nil
}

func (c *httpClient) actionURL(action string) string {
	return fmt.Sprintf("%s?action=%s", c.url, url.QueryEscape(action))
}
