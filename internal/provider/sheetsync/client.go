// Package sheetsync talks to a remote history webhook, e.g. a spreadsheet
// bridge, that stores archived days as a JSON list keyed by date.
package sheetsync

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

type Record struct {
	Date               string  `json:"date"`
	TotalSugarG        float64 `json:"total_sugar_g"`
	GovernmentalLimitG float64 `json:"governmental_limit_g"`
	AssociationLimitG  float64 `json:"association_limit_g"`
}

type Client struct {
	BaseURL    string
	HTTPClient *http.Client
}

func (c *Client) httpClient() *http.Client {
	if c.HTTPClient != nil {
		return c.HTTPClient
	}
	return &http.Client{Timeout: 12 * time.Second}
}

func (c *Client) baseURL() (string, error) {
	base := strings.TrimRight(strings.TrimSpace(c.BaseURL), "/")
	if base == "" {
		return "", fmt.Errorf("sync url is not configured")
	}
	return base, nil
}

// Push uploads the full history snapshot. The remote replaces its copy
// wholesale; partial uploads are not supported.
func (c *Client) Push(ctx context.Context, records []Record) error {
	base, err := c.baseURL()
	if err != nil {
		return err
	}
	body, err := json.Marshal(records)
	if err != nil {
		return fmt.Errorf("encode history payload: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPut, base+"/history", bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("create sync push request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("User-Agent", "gula-cli/1.0 (+https://github.com/Qodor04/gula-cli)")

	resp, err := c.httpClient().Do(req)
	if err != nil {
		return fmt.Errorf("execute sync push request: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("sync push failed with status %d", resp.StatusCode)
	}
	return nil
}

// Pull downloads the remote history snapshot.
func (c *Client) Pull(ctx context.Context) ([]Record, error) {
	base, err := c.baseURL()
	if err != nil {
		return nil, err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, base+"/history", nil)
	if err != nil {
		return nil, fmt.Errorf("create sync pull request: %w", err)
	}
	req.Header.Set("User-Agent", "gula-cli/1.0 (+https://github.com/Qodor04/gula-cli)")

	resp, err := c.httpClient().Do(req)
	if err != nil {
		return nil, fmt.Errorf("execute sync pull request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read sync pull response: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("sync pull failed with status %d", resp.StatusCode)
	}

	var records []Record
	if err := json.Unmarshal(body, &records); err != nil {
		return nil, fmt.Errorf("decode sync pull response: %w", err)
	}
	return records, nil
}
