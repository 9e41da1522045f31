package installer

import (
	"fmt"
	"io"
	"net/http"
	"regexp"

	"flutter-bootstrap/internal/logger"
)

// Resolver extracts a current download URL for a tool's installer or
// archive from a known web page. Page scraping is inherently fragile
// (it depends on third-party page structure), so it lives behind this
// single seam: when a page layout changes, only the matching pattern
// needs updating, not the pipeline.
type Resolver interface {
	ResolveDownloadURL(pageURL, pattern, prefix string) (string, error)
}

// PageResolver fetches a page and returns the first substring matching the
// pattern, prepended with the fixed download-host prefix.
type PageResolver struct {
	Client *http.Client
}

func (r PageResolver) ResolveDownloadURL(pageURL, pattern, prefix string) (string, error) {
	client := r.Client
	if client == nil {
		client = http.DefaultClient
	}

	logger.Debug("[DEBUG] Fetching %s\n", pageURL)
	resp, err := client.Get(pageURL)
	if err != nil {
		return "", fmt.Errorf("failed to GET %s: %w", pageURL, err)
	}
	defer func() {
		if cerr := resp.Body.Close(); cerr != nil {
			logger.Warn("[WARN] Failed to close HTTP response body: %v\n", cerr)
		}
	}()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("fetch of %s failed: HTTP status %d", pageURL, resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read %s: %w", pageURL, err)
	}

	re, err := regexp.Compile(pattern)
	if err != nil {
		return "", fmt.Errorf("bad asset pattern %q: %w", pattern, err)
	}

	match := re.Find(body)
	if match == nil {
		return "", fmt.Errorf("no asset matching %q at %s: %w", pattern, pageURL, ErrNotFound)
	}

	url := prefix + string(match)
	logger.Debug("[DEBUG] Resolved download URL: %s\n", url)
	return url, nil
}
