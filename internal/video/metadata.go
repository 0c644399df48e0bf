package video

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"time"

	"github.com/ytclip/yt-trimmer/internal/model"
)

// Timeout constants
const (
	DefaultLookupTimeout = 10 * time.Second
)

// URL templates
const (
	WatchURLTemplate     = "https://www.youtube.com/watch?v=%s"
	EmbedURLTemplate     = "https://www.youtube.com/embed/%s"
	ThumbnailURLTemplate = "https://img.youtube.com/vi/%s/hqdefault.jpg"

	OEmbedEndpoint = "https://www.youtube.com/oembed"
)

// Default values
const (
	FallbackTitleTemplate = "YouTube Video (%s)"
)

// oembedResponse is the subset of the oEmbed payload we care about
type oembedResponse struct {
	Title      string `json:"title"`
	AuthorName string `json:"author_name"`
}

// MetadataClient performs best-effort metadata lookups for a video
// identifier. Lookup failures are never fatal; callers receive generic
// fallbacks instead.
type MetadataClient struct {
	httpClient        *http.Client
	endpoint          string
	thumbnailTemplate string
	timeout           time.Duration
}

// NewMetadataClient creates a new metadata client
func NewMetadataClient() *MetadataClient {
	return &MetadataClient{
		httpClient:        &http.Client{},
		endpoint:          OEmbedEndpoint,
		thumbnailTemplate: ThumbnailURLTemplate,
		timeout:           DefaultLookupTimeout,
	}
}

// SetEndpoint overrides the oEmbed endpoint (used in tests)
func (m *MetadataClient) SetEndpoint(endpoint string) {
	m.endpoint = endpoint
}

// SetThumbnailTemplate overrides the thumbnail URL template (used in tests)
func (m *MetadataClient) SetThumbnailTemplate(template string) {
	m.thumbnailTemplate = template
}

// SetTimeout sets the timeout for lookup operations
func (m *MetadataClient) SetTimeout(timeout time.Duration) {
	m.timeout = timeout
}

// FetchTitle looks up the human-readable title for a video via the public
// oEmbed JSON endpoint. On any failure it returns a generic title and the
// underlying error; the title is always usable.
func (m *MetadataClient) FetchTitle(ctx context.Context, videoID string) (string, error) {
	fallback := fmt.Sprintf(FallbackTitleTemplate, videoID)

	ctx, cancel := context.WithTimeout(ctx, m.timeout)
	defer cancel()

	watchURL := fmt.Sprintf(WatchURLTemplate, videoID)
	lookupURL := fmt.Sprintf("%s?url=%s&format=json", m.endpoint, url.QueryEscape(watchURL))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, lookupURL, nil)
	if err != nil {
		return fallback, fmt.Errorf("failed to build oEmbed request: %w", err)
	}

	resp, err := m.httpClient.Do(req)
	if err != nil {
		return fallback, fmt.Errorf("oEmbed request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fallback, fmt.Errorf("oEmbed request returned status %d", resp.StatusCode)
	}

	var payload oembedResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return fallback, fmt.Errorf("failed to decode oEmbed response: %w", err)
	}

	if payload.Title == "" {
		return fallback, fmt.Errorf("oEmbed response has no title")
	}

	return payload.Title, nil
}

// FetchThumbnail downloads the preview image for a video identifier.
// Like the title lookup this is best-effort; callers render a placeholder
// when it fails.
func (m *MetadataClient) FetchThumbnail(ctx context.Context, videoID string) ([]byte, error) {
	ctx, cancel := context.WithTimeout(ctx, m.timeout)
	defer cancel()

	thumbnailURL := fmt.Sprintf(m.thumbnailTemplate, videoID)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, thumbnailURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build thumbnail request: %w", err)
	}

	resp, err := m.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("thumbnail request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("thumbnail request returned status %d", resp.StatusCode)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read thumbnail body: %w", err)
	}

	return data, nil
}

// LoadDescriptor resolves a pasted URL into a complete VideoDescriptor.
// Identifier extraction failures are returned to the caller; the title
// lookup is best-effort and swallowed with a logged fallback.
func (m *MetadataClient) LoadDescriptor(ctx context.Context, rawURL string) (*model.VideoDescriptor, error) {
	videoID, err := ExtractVideoID(rawURL)
	if err != nil {
		return nil, err
	}

	title, err := m.FetchTitle(ctx, videoID)
	if err != nil {
		log.Printf("Title lookup failed for %s, using fallback: %v", videoID, err)
	}

	return &model.VideoDescriptor{
		ID:           videoID,
		Title:        title,
		DurationSec:  SyntheticDuration(videoID),
		ThumbnailURL: fmt.Sprintf(m.thumbnailTemplate, videoID),
		EmbedURL:     fmt.Sprintf(EmbedURLTemplate, videoID),
	}, nil
}
