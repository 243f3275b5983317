package gdrive

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"procura/internal/config"
	"procura/internal/domain"
	"procura/internal/port"
)

const listPageSize = 200

// Client implements port.RemoteFolderClient against the Google Drive v3 REST
// API. Every call requires a valid bearer token; a 401 surfaces as
// domain.ErrTokenInvalid and is never retried here.
type Client struct {
	baseURL string
	http    *http.Client
}

// NewClient creates a Drive client from config.
func NewClient(cfg *config.DriveConfig) *Client {
	return &Client{
		baseURL: cfg.APIBaseURL,
		http:    &http.Client{Timeout: 60 * time.Second},
	}
}

// NewClientWithBaseURL creates a client pointing at a custom API base URL (for testing).
func NewClientWithBaseURL(baseURL string) *Client {
	return &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: 60 * time.Second},
	}
}

// listResponse models the Drive files.list response.
type listResponse struct {
	NextPageToken string `json:"nextPageToken"`
	Files         []struct {
		ID       string `json:"id"`
		Name     string `json:"name"`
		MimeType string `json:"mimeType"`
		Size     string `json:"size"`
	} `json:"files"`
}

// ListChildren lists one page of direct children of folderID. An empty
// returned page token means the listing is drained.
func (c *Client) ListChildren(ctx context.Context, token, folderID, pageToken string) ([]port.RemoteEntry, string, error) {
	params := url.Values{}
	params.Set("q", fmt.Sprintf("'%s' in parents and trashed = false", folderID))
	params.Set("fields", "nextPageToken, files(id, name, mimeType, size)")
	params.Set("pageSize", strconv.Itoa(listPageSize))
	params.Set("orderBy", "name")
	if pageToken != "" {
		params.Set("pageToken", pageToken)
	}

	body, err := c.get(ctx, token, c.baseURL+"/files?"+params.Encode())
	if err != nil {
		return nil, "", err
	}

	var parsed listResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return nil, "", fmt.Errorf("unmarshaling drive listing: %w", err)
	}

	entries := make([]port.RemoteEntry, 0, len(parsed.Files))
	for _, f := range parsed.Files {
		entry := port.RemoteEntry{
			ID:       f.ID,
			Name:     f.Name,
			MimeType: f.MimeType,
		}
		// Folders have no size field; Drive sends sizes as strings.
		if f.Size != "" {
			if n, err := strconv.ParseInt(f.Size, 10, 64); err == nil {
				entry.SizeBytes = &n
			}
		}
		entries = append(entries, entry)
	}
	return entries, parsed.NextPageToken, nil
}

// Download fetches the raw bytes of a file.
func (c *Client) Download(ctx context.Context, token, fileID string) ([]byte, error) {
	return c.get(ctx, token, fmt.Sprintf("%s/files/%s?alt=media", c.baseURL, url.PathEscape(fileID)))
}

func (c *Client) get(ctx context.Context, token, endpoint string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("calling drive API: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading response: %w", err)
	}

	if resp.StatusCode == http.StatusUnauthorized {
		return nil, fmt.Errorf("%w: drive API returned 401", domain.ErrTokenInvalid)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("drive API error (status %d): %s", resp.StatusCode, truncate(string(body), 300))
	}
	return body, nil
}

func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen] + "..."
}
