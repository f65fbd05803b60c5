package main

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/http/cookiejar"
	"net/url"
	"time"
)

const (
	defaultUserAgent    = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/122.0.0.0 Safari/537.36"
	defaultFetchTimeout = 30 * time.Second
)

// browserHeaders are sent with every request so that sites serve the same markup a browser would get.
var browserHeaders = map[string]string{
	"Accept":                    "text/html,application/xhtml+xml,application/xml;q=0.9,image/avif,image/webp,image/apng,*/*;q=0.8,application/signed-exchange;v=b3;q=0.7",
	"Accept-Language":           "de-DE,de;q=0.9,en-US;q=0.8,en;q=0.7",
	"Cache-Control":             "max-age=0",
	"DNT":                       "1",
	"Upgrade-Insecure-Requests": "1",
	"Sec-Fetch-Dest":            "document",
	"Sec-Fetch-Mode":            "navigate",
	"Sec-Fetch-Site":            "none",
	"Sec-Fetch-User":            "?1",
	"Sec-Ch-Ua":                 `"Chromium";v="122", "Not(A:Brand";v="24", "Google Chrome";v="122"`,
	"Sec-Ch-Ua-Mobile":          "?0",
	"Sec-Ch-Ua-Platform":        `"Windows"`,
}

// FetchOptions controls how a page is requested.
type FetchOptions struct {
	UserAgent string
	Timeout   time.Duration
}

func (o FetchOptions) withDefaults() FetchOptions {
	if o.UserAgent == "" {
		o.UserAgent = defaultUserAgent
	}
	if o.Timeout <= 0 {
		o.Timeout = defaultFetchTimeout
	}
	return o
}

// FetchPage fetches the HTML content of a given page.
// It expects a 2XX response, returning an error if the page is unreachable.
func FetchPage(ctx context.Context, url *url.URL, opts FetchOptions) (string, error) {
	opts = opts.withDefaults()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url.String(), nil)
	if err != nil {
		return "", fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("User-Agent", opts.UserAgent)
	for name, value := range browserHeaders {
		req.Header.Set(name, value)
	}

	jar, err := cookiejar.New(nil)
	if err != nil {
		return "", fmt.Errorf("creating cookie jar: %w", err)
	}
	client := http.Client{Jar: jar, Timeout: opts.Timeout}

	resp, err := client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", &httpError{StatusCode: resp.StatusCode, URL: url.String()}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("reading response from %s: %w", url.String(), err)
	}

	return string(body), nil
}

// httpError represents an error that occurs when an HTTP request fails with a non-2XX status code.
type httpError struct {
	StatusCode int
	URL        string
}

// Error implements the error interface for httpError.
func (e *httpError) Error() string {
	return fmt.Sprintf("HTTP %d %s from %s", e.StatusCode, http.StatusText(e.StatusCode), e.URL)
}
