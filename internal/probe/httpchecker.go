package probe

import (
	"context"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/deadoralive/checker/internal/domain"
)

// DefaultTimeout bounds a single probe. The underlying client would
// otherwise wait forever on a stalled connection.
const DefaultTimeout = 10 * time.Second

type HTTPChecker struct {
	Client *http.Client
}

func NewHTTPChecker(timeout time.Duration) *HTTPChecker {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &HTTPChecker{
		Client: &http.Client{Timeout: timeout},
	}
}

// Check issues a GET against url and classifies the outcome. Redirects
// are followed (client default), so only the final status counts.
// Every failure mode is captured in the returned result; Check never
// returns an error.
func (h *HTTPChecker) Check(ctx context.Context, url string) domain.ProbeResult {
	result := domain.ProbeResult{URL: url}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		result.Reason = err.Error()
		return result
	}

	resp, err := h.Client.Do(req)
	if err != nil {
		// Transport failure: no status, reason is the error text.
		result.Reason = err.Error()
		return result
	}
	defer resp.Body.Close()

	code := resp.StatusCode
	result.Status = &code
	result.Reason = reasonPhrase(resp)
	result.Alive = code >= 200 && code < 300
	return result
}

// reasonPhrase returns the standard reason phrase for the response
// status, falling back to whatever the server sent for codes the
// protocol doesn't name.
func reasonPhrase(resp *http.Response) string {
	if text := http.StatusText(resp.StatusCode); text != "" {
		return text
	}
	phrase := strings.TrimSpace(strings.TrimPrefix(resp.Status, strconv.Itoa(resp.StatusCode)))
	if phrase == "" {
		phrase = resp.Status
	}
	return phrase
}
