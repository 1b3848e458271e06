package zipkin

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"sort"
	"strings"
	"time"
)

// HTTPClient is the interface used for HTTP requests, allowing test mocks.
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// httpClient allows overriding the HTTP client for testing. The default
// client has a 10-second timeout so an unreachable Zipkin does not hang
// the picker.
var httpClient HTTPClient = &http.Client{Timeout: 10 * time.Second}

// Client reads service metadata from a Zipkin instance.
type Client struct {
	BaseURL string
}

// Services returns the service names Zipkin has traces for, sorted.
func (c *Client) Services() ([]string, error) {
	endpoint := strings.TrimSuffix(c.BaseURL, "/") + "/api/v2/services"
	req, err := http.NewRequest("GET", endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}

	resp, err := httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("Zipkin not reachable at %s: %w", c.BaseURL, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading Zipkin response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("Zipkin returned status %d: %s", resp.StatusCode, truncate(string(body), 200))
	}

	var services []string
	if err := json.Unmarshal(body, &services); err != nil {
		return nil, fmt.Errorf("parsing Zipkin response: %w", err)
	}
	sort.Strings(services)
	return services, nil
}

// DependencyURL builds the link to the dependency-graph page for a service.
func DependencyURL(baseURL, service string) string {
	return strings.TrimSuffix(baseURL, "/") + "/dependency?serviceName=" + url.QueryEscape(service)
}

// truncate shortens a string to max length for error messages.
func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max] + "..."
}
