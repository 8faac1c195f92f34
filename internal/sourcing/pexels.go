package sourcing

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/rs/zerolog/log"
)

// searchQualifier biases Pexels results toward imagery relevant to the
// magazine's audience.
const searchQualifier = "senior elderly"

// maxDownloadBytes caps a single sourced-image download (20MB).
const maxDownloadBytes = 20 << 20

// Image is a reference to an externally hosted photo returned by the
// sourcing provider. Discarded once its bytes are fetched and stored.
type Image struct {
	RemoteURL     string
	Caption       string
	Photographer  string
	SourcePageURL string
}

// Client calls the Pexels search API. Sourcing is an optional enhancement:
// every failure mode degrades to an empty result instead of an error.
type Client struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a Pexels sourcing client. An empty apiKey is allowed;
// Search then returns no results.
func NewClient(apiKey string, timeout time.Duration) *Client {
	return &Client{
		apiKey:  apiKey,
		baseURL: "https://api.pexels.com/v1",
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// pexelsPhoto mirrors the fields we read from the Pexels search response.
type pexelsPhoto struct {
	URL          string `json:"url"`
	Photographer string `json:"photographer"`
	Alt          string `json:"alt"`
	Src          struct {
		Large string `json:"large"`
	} `json:"src"`
}

type pexelsSearchResponse struct {
	Photos []pexelsPhoto `json:"photos"`
}

// Search fetches up to count landscape photos for a theme. Returns an empty
// slice when no API key is configured or the provider call fails; a sourcing
// outage must not abort the pipeline run.
func (c *Client) Search(ctx context.Context, theme string, count int) []Image {
	if c.apiKey == "" {
		log.Debug().Msg("No Pexels API key configured, skipping image sourcing")
		return nil
	}
	if count <= 0 {
		return nil
	}

	query := url.Values{}
	query.Set("query", theme+" "+searchQualifier)
	query.Set("per_page", fmt.Sprintf("%d", count))
	query.Set("orientation", "landscape")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/search?"+query.Encode(), nil)
	if err != nil {
		log.Warn().Err(err).Msg("Failed to build Pexels request")
		return nil
	}
	req.Header.Set("Authorization", c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		log.Warn().Err(err).Str("theme", theme).Msg("Pexels search failed")
		return nil
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		log.Warn().
			Int("status", resp.StatusCode).
			Str("theme", theme).
			Msg("Pexels search returned non-OK status")
		return nil
	}

	var parsed pexelsSearchResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		log.Warn().Err(err).Msg("Failed to decode Pexels response")
		return nil
	}

	images := make([]Image, 0, len(parsed.Photos))
	for _, photo := range parsed.Photos {
		if photo.Src.Large == "" {
			continue
		}
		caption := photo.Alt
		if caption == "" {
			caption = theme
		}
		images = append(images, Image{
			RemoteURL:     photo.Src.Large,
			Caption:       "Sourced from Pexels: " + caption,
			Photographer:  photo.Photographer,
			SourcePageURL: photo.URL,
		})
	}

	log.Info().
		Str("theme", theme).
		Int("requested", count).
		Int("found", len(images)).
		Msg("Sourcing complete")

	return images
}

// Download fetches the bytes of a sourced image. Unlike Search this returns
// an error: the orchestrator drops the single failed item and continues.
func (c *Client) Download(ctx context.Context, remoteURL string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, remoteURL, nil)
	if err != nil {
		return nil, fmt.Errorf("build download request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("download sourced image: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("download sourced image: status %d", resp.StatusCode)
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxDownloadBytes))
	if err != nil {
		return nil, fmt.Errorf("read sourced image body: %w", err)
	}

	return data, nil
}
