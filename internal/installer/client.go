package installer

import (
	"fmt"
	"io"
	"net/http"
	"os"
	"os/exec"
	"strings"
	"time"

	"binstrap/internal/logger"
)

// client is one way of moving bytes off the network. The pipeline
// prefers the native client; a curl subprocess serves setups where
// only the system curl is configured to reach the network.
type client interface {
	name() string
	get(url string) ([]byte, error)
	download(url, dest string) error
}

// selectClient applies the http_client preference. "auto" and
// "native" pick the built-in client; "curl" requires the curl binary
// and yields ErrNoClient when it is missing.
func selectClient(pref string) (client, error) {
	switch pref {
	case "", "auto", "native":
		return newHTTPClient(), nil
	case "curl":
		if _, err := exec.LookPath("curl"); err != nil {
			return nil, fmt.Errorf("%w: curl not found on PATH", ErrNoClient)
		}
		return curlClient{}, nil
	default:
		return nil, fmt.Errorf("unknown http_client preference %q", pref)
	}
}

// requestTimeout bounds each HTTP request including the body
// transfer, so it is sized for a full binary download.
const requestTimeout = 5 * time.Minute

type httpClient struct {
	c *http.Client
}

func newHTTPClient() *httpClient {
	return &httpClient{c: &http.Client{Timeout: requestTimeout}}
}

func (h *httpClient) name() string { return "native" }

func (h *httpClient) get(url string) ([]byte, error) {
	resp, err := h.c.Get(url)
	if err != nil {
		return nil, fmt.Errorf("GET %s: %w", url, err)
	}
	defer closeBody(resp)

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("GET %s: unexpected status %d", url, resp.StatusCode)
	}
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response from %s: %w", url, err)
	}
	return body, nil
}

func (h *httpClient) download(url, dest string) error {
	resp, err := h.c.Get(url)
	if err != nil {
		return fmt.Errorf("GET %s: %w", url, err)
	}
	defer closeBody(resp)

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("GET %s: unexpected status %d", url, resp.StatusCode)
	}

	out, err := os.Create(dest)
	if err != nil {
		return fmt.Errorf("create %s: %w", dest, err)
	}
	defer func() {
		if cerr := out.Close(); cerr != nil {
			logger.Warn("[WARN] Failed to close %s: %v\n", dest, cerr)
		}
	}()

	if _, err := io.Copy(out, resp.Body); err != nil {
		return fmt.Errorf("write %s: %w", dest, err)
	}
	return nil
}

func closeBody(resp *http.Response) {
	if cerr := resp.Body.Close(); cerr != nil {
		logger.Warn("[WARN] Failed to close HTTP response body: %v\n", cerr)
	}
}

// curlClient shells out to curl. -f turns HTTP errors into non-zero
// exits so a 404 body is never mistaken for a download.
type curlClient struct{}

func (curlClient) name() string { return "curl" }

func (curlClient) get(url string) ([]byte, error) {
	cmd := exec.Command("curl", "-fsSL", url)
	logger.Debug("[DEBUG] Running command: %s\n", strings.Join(cmd.Args, " "))
	out, err := cmd.Output()
	if err != nil {
		return nil, fmt.Errorf("curl %s: %w", url, err)
	}
	return out, nil
}

func (curlClient) download(url, dest string) error {
	cmd := exec.Command("curl", "-fsSL", url, "-o", dest)
	logger.Debug("[DEBUG] Running command: %s\n", strings.Join(cmd.Args, " "))
	output, err := cmd.CombinedOutput()
	if err != nil {
		return fmt.Errorf("curl %s: %w\nOutput: %s", url, err, output)
	}
	return nil
}
