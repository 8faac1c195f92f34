package sourcing

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
)

func newTestClient(apiKey, baseURL string) *Client {
	c := NewClient(apiKey, 5*time.Second)
	if baseURL != "" {
		c.baseURL = baseURL
	}
	return c
}

func TestSearchNoAPIKey(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("provider must not be called without an API key")
	}))
	defer server.Close()

	c := newTestClient("", server.URL)
	images := c.Search(context.Background(), "gardens", 5)
	if len(images) != 0 {
		t.Errorf("got %d images, want 0", len(images))
	}
}

func TestSearchProviderError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "rate limited", http.StatusTooManyRequests)
	}))
	defer server.Close()

	c := newTestClient("test-key", server.URL)
	images := c.Search(context.Background(), "gardens", 5)
	if len(images) != 0 {
		t.Errorf("got %d images on provider error, want 0", len(images))
	}
}

func TestSearchMalformedResponse(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("not json"))
	}))
	defer server.Close()

	c := newTestClient("test-key", server.URL)
	images := c.Search(context.Background(), "gardens", 5)
	if len(images) != 0 {
		t.Errorf("got %d images on malformed response, want 0", len(images))
	}
}

func TestSearchParsesPhotos(t *testing.T) {
	var gotAuth, gotQuery string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotQuery = r.URL.Query().Get("query")
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"photos": [
				{
					"url": "https://pexels.example/photo/1",
					"photographer": "Ada",
					"alt": "two seniors on a park bench",
					"src": {"large": "https://images.example/1-large.jpg"}
				},
				{
					"url": "https://pexels.example/photo/2",
					"photographer": "Ben",
					"alt": "",
					"src": {"large": "https://images.example/2-large.jpg"}
				},
				{
					"url": "https://pexels.example/photo/3",
					"photographer": "Cleo",
					"alt": "no usable rendition",
					"src": {"large": ""}
				}
			]
		}`))
	}))
	defer server.Close()

	c := newTestClient("test-key", server.URL)
	images := c.Search(context.Background(), "park visits", 3)

	if gotAuth != "test-key" {
		t.Errorf("Authorization header = %q, want the raw key", gotAuth)
	}
	if !strings.Contains(gotQuery, "park visits") || !strings.Contains(gotQuery, "senior") {
		t.Errorf("query = %q, want theme plus audience qualifier", gotQuery)
	}

	if len(images) != 2 {
		t.Fatalf("got %d images, want 2 (photo without a large rendition is skipped)", len(images))
	}
	if images[0].RemoteURL != "https://images.example/1-large.jpg" {
		t.Errorf("RemoteURL = %q", images[0].RemoteURL)
	}
	if images[0].Caption != "Sourced from Pexels: two seniors on a park bench" {
		t.Errorf("Caption = %q", images[0].Caption)
	}
	if images[0].Photographer != "Ada" {
		t.Errorf("Photographer = %q, want Ada", images[0].Photographer)
	}
	// Empty alt falls back to the theme.
	if images[1].Caption != "Sourced from Pexels: park visits" {
		t.Errorf("fallback caption = %q", images[1].Caption)
	}
}

func TestDownload(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("image-bytes"))
	}))
	defer server.Close()

	c := newTestClient("test-key", "")
	data, err := c.Download(context.Background(), server.URL+"/img.jpg")
	if err != nil {
		t.Fatalf("Download returned error: %v", err)
	}
	if string(data) != "image-bytes" {
		t.Errorf("data = %q, want image-bytes", data)
	}
}

func TestDownloadNonOK(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}))
	defer server.Close()

	c := newTestClient("test-key", "")
	if _, err := c.Download(context.Background(), server.URL+"/gone.jpg"); err == nil {
		t.Error("Download did not return an error for a 404")
	}
}
