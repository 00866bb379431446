package activity

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/runlog/runlog-backend-go/internal/models"
)

// QueryPage is one page of the activity service's cursor-paginated
// response. NextToken is opaque; an empty token means the history is
// exhausted.
type QueryPage struct {
	Records   []models.RawActivity `json:"records"`
	HasMore   bool                 `json:"has_more"`
	NextToken string               `json:"next_token,omitempty"`
}

// Client fetches raw activity records from the remote activity service.
type Client interface {
	FetchActivities(ctx context.Context, userID string, limit int, token string, includeRoutes bool) (*QueryPage, error)
}

// HTTPClient is the production Client backed by the activity service's
// REST API.
type HTTPClient struct {
	baseURL string
	client  *http.Client
}

// NewHTTPClient creates a client for the activity service at baseURL.
func NewHTTPClient(baseURL string, timeout time.Duration) *HTTPClient {
	return &HTTPClient{
		baseURL: baseURL,
		client:  &http.Client{Timeout: timeout},
	}
}

// FetchActivities requests one page of activity records.
func (c *HTTPClient) FetchActivities(ctx context.Context, userID string, limit int, token string, includeRoutes bool) (*QueryPage, error) {
	endpoint := fmt.Sprintf("%s/users/%s/activities", c.baseURL, url.PathEscape(userID))

	q := url.Values{}
	q.Set("limit", strconv.Itoa(limit))
	if token != "" {
		q.Set("token", token)
	}
	if includeRoutes {
		q.Set("includeRoutes", "true")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint+"?"+q.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build activity request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-ID", uuid.NewString())

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("activity request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("activity service returned status %d", resp.StatusCode)
	}

	var page QueryPage
	if err := json.NewDecoder(resp.Body).Decode(&page); err != nil {
		return nil, fmt.Errorf("failed to decode activity page: %w", err)
	}
	return &page, nil
}
