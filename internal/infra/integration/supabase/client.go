package supabase

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"
)

const (
	WorkflowsBucket   = "workflows-json"
	ScreenshotsBucket = "workflows-screenshots"

	// The storage API pages at 100 entries; the library is far smaller, so a
	// single page is the whole corpus.
	ListLimit = 100
)

var ErrObjectNotFound = errors.New("object not found in storage")

type Client struct {
	baseURL string
	apiKey  string
	http    *http.Client
}

func NewClient(baseURL, apiKey string) *Client {
	return &Client{
		baseURL: baseURL,
		apiKey:  apiKey,
		http:    &http.Client{Timeout: 10 * time.Second},
	}
}

// ListObjects lists one page of a bucket, alphabetical by name.
func (c *Client) ListObjects(ctx context.Context, bucket string) ([]ObjectInfo, error) {
	endpoint := fmt.Sprintf("%s/storage/v1/object/list/%s", c.baseURL, bucket)

	payload := listObjectsRequest{
		Prefix: "",
		Limit:  ListLimit,
		Offset: 0,
		SortBy: sortBy{Column: "name", Order: "asc"},
	}

	jsonBody, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("marshal list request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, "POST", endpoint, bytes.NewBuffer(jsonBody))
	if err != nil {
		return nil, err
	}
	c.setHeaders(req)

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("storage list request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(resp.Body)
		fmt.Printf("❌ STORAGE LIST %s: %s\n", bucket, string(body))
		return nil, fmt.Errorf("storage list %s failed (status %d)", bucket, resp.StatusCode)
	}

	var objects []ObjectInfo
	if err := json.NewDecoder(resp.Body).Decode(&objects); err != nil {
		return nil, fmt.Errorf("decode storage list: %w", err)
	}

	return objects, nil
}

// PublicURL derives the public address of an object. The buckets are public,
// no signing needed.
func (c *Client) PublicURL(bucket, filename string) string {
	return fmt.Sprintf("%s/storage/v1/object/public/%s/%s", c.baseURL, bucket, url.PathEscape(filename))
}

// Download fetches an object's bytes through its public URL.
func (c *Client) Download(ctx context.Context, bucket, filename string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, "GET", c.PublicURL(bucket, filename), nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("storage download request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("%w: %s/%s (status %d)", ErrObjectNotFound, bucket, filename, resp.StatusCode)
	}

	return io.ReadAll(resp.Body)
}

func (c *Client) setHeaders(req *http.Request) {
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("apikey", c.apiKey)
	req.Header.Set("Content-Type", "application/json")
}
