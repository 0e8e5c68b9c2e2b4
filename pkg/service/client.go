// Package service provides thin request-building clients for the remote
// document, LLM and transformer services. Each method assembles a JSON
// payload, omitting optional parameters the caller did not set, and posts
// it to the service path. No processing happens client-side; these are
// pass-through builders over the remote API.
package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/charmbracelet/log"

	"github.com/preproc-tools/abbrevserve/pkg/config"
)

// Client is the shared HTTP transport for all service clients.
type Client struct {
	baseURL string
	apiKey  string
	httpc   *http.Client
}

// NewClient creates a Client for the service at baseURL. apiKey may be
// empty for unauthenticated deployments.
func NewClient(baseURL, apiKey string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = 60 * time.Second
	}
	return &Client{
		baseURL: strings.TrimSuffix(baseURL, "/"),
		apiKey:  apiKey,
		httpc:   &http.Client{Timeout: timeout},
	}
}

// NewClientFromConfig creates a Client from the [service] config section.
func NewClientFromConfig(cfg config.ServiceConfig) *Client {
	return NewClient(cfg.BaseURL, cfg.APIKey, time.Duration(cfg.TimeoutSecs)*time.Second)
}

// post sends in as a JSON body to path and decodes the JSON response into
// out. A nil out discards the response body.
func (c *Client) post(ctx context.Context, path string, in, out any) error {
	body, err := json.Marshal(in)
	if err != nil {
		return fmt.Errorf("marshal %s request: %w", path, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/"+path, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("build %s request: %w", path, err)
	}
	req.Header.Set("Content-Type", "application/json")
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	log.Debugf("POST %s (%d bytes)", path, len(body))
	resp, err := c.httpc.Do(req)
	if err != nil {
		return fmt.Errorf("post %s: %w", path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		detail, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("post %s: status %d: %s", path, resp.StatusCode, strings.TrimSpace(string(detail)))
	}
	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode %s response: %w", path, err)
	}
	return nil
}

// Response is a generic JSON object returned by the services.
type Response map[string]any

// Ptr returns a pointer to v. Convenience for the optional numeric fields
// on request structs, where nil means "omit, let the service default".
func Ptr[T any](v T) *T {
	return &v
}
