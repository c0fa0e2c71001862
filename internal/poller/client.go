package poller

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/nuitinfo/podium-live/internal/team/model"
)

// Client fetches the ranked team list for a poller.
type Client interface {
	// ListTeams returns all teams ordered by score descending.
	ListTeams(ctx context.Context) ([]model.Team, error)
}

// HTTPClient reads the ranked list from the public read endpoint.
type HTTPClient struct {
	baseURL string
	client  *http.Client
}

// NewHTTPClient creates a client for the given server base URL.
func NewHTTPClient(baseURL string, timeout time.Duration) *HTTPClient {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &HTTPClient{
		baseURL: baseURL,
		client:  &http.Client{Timeout: timeout},
	}
}

// ListTeams fetches GET /api/teams. Any transport failure, non-200 status
// or payload that fails validation maps to ErrStoreUnavailable: the poller
// treats the store as unreachable rather than crashing on a bad body.
func (c *HTTPClient) ListTeams(ctx context.Context) ([]model.Team, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/api/teams", nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", model.ErrStoreUnavailable, err)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		return nil, fmt.Errorf("%w: %v", model.ErrStoreUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: unexpected status %d", model.ErrStoreUnavailable, resp.StatusCode)
	}

	dec := json.NewDecoder(resp.Body)
	dec.DisallowUnknownFields()

	var teams []model.Team
	if err := dec.Decode(&teams); err != nil {
		return nil, fmt.Errorf("%w: malformed payload: %v", model.ErrStoreUnavailable, err)
	}

	for _, t := range teams {
		if t.ID == 0 || t.Name == "" {
			return nil, fmt.Errorf("%w: invalid team record", model.ErrStoreUnavailable)
		}
	}

	return teams, nil
}
