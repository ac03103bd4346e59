// internal/infra/practicum/client.go
package practicum

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/sirupsen/logrus"

	"homework_status_bot/internal/domain/failure"
)

// Client queries the homework statuses endpoint.
type Client struct {
	endpoint   string
	token      string
	httpClient *http.Client
	logger     *logrus.Entry
}

func NewClient(endpoint, token string, timeout time.Duration, logger *logrus.Entry) *Client {
	return &Client{
		endpoint:   endpoint,
		token:      token,
		httpClient: &http.Client{Timeout: timeout},
		logger:     logger,
	}
}

// FetchStatuses requests submissions changed since from and returns the
// decoded JSON body without further validation.
func (c *Client) FetchStatuses(ctx context.Context, from time.Time) (any, error) {
	u, err := url.Parse(c.endpoint)
	if err != nil {
		return nil, failure.Wrap(failure.KindTransport, fmt.Errorf("invalid API endpoint %q: %w", c.endpoint, err))
	}
	q := u.Query()
	q.Set("from_date", strconv.FormatInt(from.Unix(), 10))
	u.RawQuery = q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, failure.Wrap(failure.KindTransport, fmt.Errorf("failed to build API request: %w", err))
	}
	req.Header.Set("Authorization", "OAuth "+c.token)

	logCtx := c.logger.WithField("from_date", from.Unix())
	logCtx.Debug("Requesting homework statuses")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		logCtx.WithError(err).Error("Request to API failed")
		return nil, failure.Wrap(failure.KindTransport, fmt.Errorf("request to API failed: %w", err))
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		logCtx.WithField("status_code", resp.StatusCode).Error("API endpoint is unreachable")
		return nil, failure.Newf(failure.KindTransport, "API endpoint %s is unreachable, status code %d", c.endpoint, resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		logCtx.WithError(err).Error("Failed to read API response")
		return nil, failure.Wrap(failure.KindTransport, fmt.Errorf("failed to read API response: %w", err))
	}
	logCtx.WithField("body", string(body)).Debug("API response received")

	var payload any
	if err := json.Unmarshal(body, &payload); err != nil {
		logCtx.WithError(err).Error("API response is not JSON")
		return nil, failure.Wrap(failure.KindParse, fmt.Errorf("API response is not JSON: %w", err))
	}
	return payload, nil
}
