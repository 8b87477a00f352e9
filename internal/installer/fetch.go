package installer

import (
	"os"

	"binstrap/internal/logger"
)

// Fetcher moves release metadata and assets off the network, applying
// the shared retry policy to every operation.
type Fetcher struct {
	client client
	retry  retryPolicy
}

// NewFetcher selects the download client per the http_client
// preference and wraps it with the default retry policy.
func NewFetcher(pref string) (*Fetcher, error) {
	c, err := selectClient(pref)
	if err != nil {
		return nil, err
	}
	logger.Debug("[DEBUG] Using %s download client\n", c.name())
	return &Fetcher{client: c, retry: newRetryPolicy()}, nil
}

// FetchBytes retrieves url into memory. Exhausted retries surface as
// a FetchError wrapping the last attempt's error.
func (f *Fetcher) FetchBytes(url string) ([]byte, error) {
	var body []byte
	err := f.retry.run("fetch "+url, func() error {
		b, err := f.client.get(url)
		if err != nil {
			return err
		}
		body = b
		return nil
	})
	if err != nil {
		return nil, &FetchError{URL: url, Attempts: f.retry.attempts, Err: err}
	}
	return body, nil
}

// FetchFile downloads url to dest. dest must live inside the run's
// working directory; the final install location is never written
// here. A failed attempt removes its partial file before the retry.
func (f *Fetcher) FetchFile(url, dest string) error {
	err := f.retry.run("download "+url, func() error {
		if err := f.client.download(url, dest); err != nil {
			if rmErr := os.Remove(dest); rmErr != nil && !os.IsNotExist(rmErr) {
				logger.Warn("[WARN] Failed to remove partial download %s: %v\n", dest, rmErr)
			}
			return err
		}
		return nil
	})
	if err != nil {
		return &FetchError{URL: url, Attempts: f.retry.attempts, Err: err}
	}
	logger.Debug("[DEBUG] Downloaded %s to %s\n", url, dest)
	return nil
}
