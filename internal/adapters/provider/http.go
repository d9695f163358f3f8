package provider

import (
	"context"
	"errors"
	"fmt"
	"io"
	"iranscbot/internal/core/domain"
	"net"
	"net/http"
	"net/url"
	"time"

	"github.com/rs/zerolog"
)

const (
	DefaultTimeout = 10 * time.Second
	maxBodyBytes   = 1 << 20
	userAgent      = "iranscbot/1.0"
)

// httpGetter performs the single GET request each provider call is made of.
type httpGetter struct {
	name   string
	client *http.Client
}

func newHTTPGetter(name string, timeout time.Duration) httpGetter {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}

	return httpGetter{name: name, client: &http.Client{Timeout: timeout}}
}

// get returns the status code and body of the response. Transport failures come back as a *domain.ProviderError;
// non-2xx statuses are not treated as errors here so callers can inspect provider error bodies.
func (g httpGetter) get(ctx context.Context, endpoint string, query url.Values) (int, []byte, error) {
	u, err := url.Parse(endpoint)
	if err != nil {
		return 0, nil, g.fail(domain.FailureUnexpected, fmt.Errorf("error parsing endpoint: %w", err))
	}
	u.RawQuery = query.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return 0, nil, g.fail(domain.FailureUnexpected, fmt.Errorf("error creating request: %w", err))
	}

	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", userAgent)

	res, err := g.client.Do(req)
	if err != nil {
		return 0, nil, g.fail(classify(err), fmt.Errorf("error executing request: %w", err))
	}
	defer res.Body.Close()

	body, err := io.ReadAll(io.LimitReader(res.Body, maxBodyBytes))
	if err != nil {
		return res.StatusCode, nil, g.fail(classify(err), fmt.Errorf("error reading response: %w", err))
	}

	zerolog.Ctx(ctx).Debug().
		Str("provider", g.name).
		Int("status", res.StatusCode).
		Int("bytes", len(body)).
		Msg("provider response")

	return res.StatusCode, body, nil
}

func (g httpGetter) fail(kind domain.FailureKind, err error) *domain.ProviderError {
	return &domain.ProviderError{Provider: g.name, Kind: kind, Err: err}
}

func (g httpGetter) failStatus(status int, err error) *domain.ProviderError {
	return &domain.ProviderError{Provider: g.name, Kind: domain.FailureUpstream, StatusCode: status, Err: err}
}

func classify(err error) domain.FailureKind {
	if errors.Is(err, context.DeadlineExceeded) {
		return domain.FailureTimeout
	}

	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return domain.FailureTimeout
	}

	return domain.FailureUnexpected
}

func isSuccess(status int) bool {
	return status >= http.StatusOK && status < http.StatusMultipleChoices
}
