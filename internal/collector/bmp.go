package collector

import (
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"time"
)

// APIError is a non-success response from the BMP API.
type APIError struct {
	StatusCode int
	Body       string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("bmp api: status %d, body: %s", e.StatusCode, e.Body)
}

// BMPFetcher implements Fetcher against the Bitcoin Magazine Pro REST API.
type BMPFetcher struct {
	BaseURL  string
	Endpoint string
	APIKey   string
	Client   *http.Client
}

// NewBMPFetcher creates a new fetcher with optional proxy support.
func NewBMPFetcher(baseURL, endpoint, apiKey, proxyURL string, timeout time.Duration) *BMPFetcher {
	transport := &http.Transport{}
	if proxyURL != "" {
		if u, err := url.Parse(proxyURL); err == nil {
			transport.Proxy = http.ProxyURL(u)
		}
	}
	return &BMPFetcher{
		BaseURL:  baseURL,
		Endpoint: endpoint,
		APIKey:   apiKey,
		Client: &http.Client{
			Timeout:   timeout,
			Transport: transport,
		},
	}
}

func (f *BMPFetcher) Name() string { return "bmp" }

// FetchMetric issues one authenticated GET and returns the raw body text.
// Any non-2xx status is returned as an *APIError; there is no retry.
func (f *BMPFetcher) FetchMetric() (string, error) {
	req, err := http.NewRequest("GET", f.BaseURL+f.Endpoint, nil)
	if err != nil {
		return "", err
	}
	req.Header.Set("Authorization", "Bearer "+f.APIKey)

	resp, err := f.Client.Do(req)
	if err != nil {
		return "", fmt.Errorf("fetch metric: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("read metric body: %w", err)
	}

	log.Printf("[INFO] bmp api status: %d", resp.StatusCode)
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", &APIError{StatusCode: resp.StatusCode, Body: string(body)}
	}
	return string(body), nil
}
