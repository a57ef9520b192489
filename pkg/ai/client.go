package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Client implements AIService against the HTTP AI service.
type Client struct {
	getBaseURL func() string // Dynamic getter so runtime settings updates apply
	httpClient *http.Client
}

// NewClient creates a new AI service client. The timeout bounds every
// outbound call; a hung AI service becomes an error response instead of a
// request held open forever.
func NewClient(getBaseURL func() string, timeout time.Duration) *Client {
	return &Client{
		getBaseURL: getBaseURL,
		httpClient: &http.Client{Timeout: timeout},
	}
}

// NewStaticClient creates a client with a fixed base URL.
func NewStaticClient(baseURL string, timeout time.Duration) *Client {
	return NewClient(func() string { return baseURL }, timeout)
}

func (c *Client) postURL(ctx context.Context, path, targetURL string) ([]byte, error) {
	body, err := json.Marshal(map[string]string{"url": targetURL})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, "POST", c.getBaseURL()+path, bytes.NewBuffer(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("AI service request failed: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read AI service response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("AI service returned status %d: %s", resp.StatusCode, string(respBody))
	}

	return respBody, nil
}

// ExtractContent asks the AI service to extract and analyze the content
// behind url.
func (c *Client) ExtractContent(ctx context.Context, url string) (*Extraction, error) {
	respBody, err := c.postURL(ctx, "/extract", url)
	if err != nil {
		return nil, err
	}

	var extraction Extraction
	if err := json.Unmarshal(respBody, &extraction); err != nil {
		return nil, fmt.Errorf("failed to decode AI service response: %w", err)
	}
	return &extraction, nil
}

// RecommendContent asks the AI service for related-content suggestions.
// The payload is returned verbatim; the gateway does not validate its shape.
func (c *Client) RecommendContent(ctx context.Context, url string) (json.RawMessage, error) {
	respBody, err := c.postURL(ctx, "/recommend", url)
	if err != nil {
		return nil, err
	}
	return json.RawMessage(respBody), nil
}

// Ping checks whether the AI service at baseURL is reachable. The settings
// test endpoint probes candidate URLs, so the base URL is explicit here
// rather than taken from the configured getter.
func (c *Client) Ping(ctx context.Context, baseURL string) error {
	req, err := http.NewRequestWithContext(ctx, "GET", baseURL+"/health", nil)
	if err != nil {
		return err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("AI service returned status %d", resp.StatusCode)
	}
	return nil
}
