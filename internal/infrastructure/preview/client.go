package preview

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	"offertehub/internal/domain/entities"
	"offertehub/internal/usecase/interfaces"
)

// Client calls the external AI image-generation service that renders the
// configured project (frames, floor, paint job) onto a customer photo.
//
// Env vars:
//   - PREVIEW_API_URL (required)
//   - PREVIEW_API_KEY (optional bearer token)
//
// The service can take a long time on large photos; the timeout is pinned at
// 60s and a timed-out call surfaces as a normal error so the caller can fall
// back to the original photo.

type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

var _ interfaces.IPreviewGenerator = (*Client)(nil)

func NewClient() (*Client, error) {
	baseURL := os.Getenv("PREVIEW_API_URL")
	if baseURL == "" {
		return nil, errors.New("PREVIEW_API_URL is not set")
	}
	return &Client{
		baseURL: baseURL,
		apiKey:  os.Getenv("PREVIEW_API_KEY"),
		httpClient: &http.Client{
			Timeout: 60 * time.Second,
		},
	}, nil
}

type generateRequest struct {
	PhotoURL string                `json:"photo_url"`
	Specs    entities.QuoteRequest `json:"specs"`
}

type generateResponse struct {
	PreviewURL string `json:"preview_url"`
	Error      string `json:"error,omitempty"`
}

func (c *Client) GeneratePreview(ctx context.Context, photoURL string, req entities.QuoteRequest) (string, error) {
	body, err := json.Marshal(generateRequest{PhotoURL: photoURL, Specs: req})
	if err != nil {
		return "", err
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/v1/generate", bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	httpReq.Header.Set("Content-Type", "application/json")
	if c.apiKey != "" {
		httpReq.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return "", fmt.Errorf("preview request failed: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return "", err
	}
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("preview service returned %d: %s", resp.StatusCode, raw)
	}

	var out generateResponse
	if err := json.Unmarshal(raw, &out); err != nil {
		return "", fmt.Errorf("preview response malformed: %w", err)
	}
	if out.Error != "" {
		return "", fmt.Errorf("preview generation failed: %s", out.Error)
	}
	if out.PreviewURL == "" {
		return "", errors.New("preview response missing preview_url")
	}
	return out.PreviewURL, nil
}
