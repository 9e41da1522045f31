package installer

import (
	"fmt"
	"io"
	"net/http"
	"os"

	"flutter-bootstrap/internal/logger"
)

// Fetcher downloads a URL to a local file. onProgress, when non-nil, is
// invoked repeatedly with the byte counts transferred so far; total is -1
// when the server does not report a length. The transfer is a plain
// blocking copy with no resumption: a failed download is retried only by
// the pipeline falling back to (or re-running) a strategy.
type Fetcher interface {
	Download(url, dest string, onProgress func(done, total int64)) error
}

// HTTPFetcher streams the response body straight to disk.
type HTTPFetcher struct {
	Client *http.Client
}

func (f HTTPFetcher) Download(url, dest string, onProgress func(done, total int64)) error {
	client := f.Client
	if client == nil {
		client = http.DefaultClient
	}

	resp, err := client.Get(url)
	if err != nil {
		return fmt.Errorf("failed to GET %s: %w", url, err)
	}
	defer func() {
		if cerr := resp.Body.Close(); cerr != nil {
			logger.Warn("[WARN] Failed to close HTTP response body: %v\n", cerr)
		}
	}()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("download of %s failed: HTTP status %d", url, resp.StatusCode)
	}

	out, err := os.Create(dest)
	if err != nil {
		return fmt.Errorf("failed to create file %s: %w", dest, err)
	}
	defer func() {
		if cerr := out.Close(); cerr != nil {
			logger.Warn("[WARN] Failed to close destination file: %v\n", cerr)
		}
	}()

	src := io.Reader(resp.Body)
	if onProgress != nil {
		total := resp.ContentLength // -1 when unknown
		src = io.TeeReader(resp.Body, &progressCounter{total: total, report: onProgress})
	}

	if _, err := io.Copy(out, src); err != nil {
		return fmt.Errorf("failed to write response to %s: %w", dest, err)
	}

	logger.Debug("[DEBUG] Downloaded %s to %s\n", url, dest)
	return nil
}

// progressCounter accumulates bytes written through it and reports each
// increment to the callback.
type progressCounter struct {
	done   int64
	total  int64
	report func(done, total int64)
}

func (c *progressCounter) Write(p []byte) (int, error) {
	c.done += int64(len(p))
	c.report(c.done, c.total)
	return len(p), nil
}
