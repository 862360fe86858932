package trustpilot

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/reviewsight-lab/reviewsight/pkg/domain/interfaces"
	"github.com/reviewsight-lab/reviewsight/pkg/domain/model"
	"github.com/reviewsight-lab/reviewsight/pkg/domain/types"
	"github.com/reviewsight-lab/reviewsight/pkg/utils/logging"
	"github.com/reviewsight-lab/reviewsight/pkg/utils/safe"
)

const defaultBaseURL = "https://api.trustpilot.com/v1"

// Client collects reviews from the Trustpilot API
type Client struct {
	baseURL    string
	httpClient *http.Client
}

var _ interfaces.SourceAdapter = &Client{}

type Option func(*Client)

// WithBaseURL overrides the API base URL, mainly for tests
func WithBaseURL(baseURL string) Option {
	return func(c *Client) {
		c.baseURL = baseURL
	}
}

// WithHTTPClient overrides the HTTP client
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// New creates a Trustpilot adapter
func New(opts ...Option) *Client {
	c := &Client{
		baseURL: defaultBaseURL,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
	for _, opt := range opts {
		opt(c)
	}

	return c
}

func (c *Client) Platform() types.Platform {
	return types.PlatformTrustpilot
}

// Resolve finds the business unit ID for the session's domain. When the
// session has no domain, "<business name>.com" is tried.
func (c *Client) Resolve(ctx context.Context, s *model.Session) (string, error) {
	domain := s.Domain
	if domain == "" {
		domain = strings.ToLower(strings.ReplaceAll(s.BusinessName, " ", "")) + ".com"
	}

	params := url.Values{"domain": {domain}}
	endpoint := fmt.Sprintf("%s/business-units/find?%s", c.baseURL, params.Encode())

	var resp businessUnitResponse
	if err := c.getJSON(ctx, endpoint, &resp); err != nil {
		return "", goerr.Wrap(interfaces.ErrSourceNotFound, "business unit lookup failed",
			goerr.V("domain", domain), goerr.V("cause", err.Error()))
	}

	if resp.ID == "" {
		return "", goerr.Wrap(interfaces.ErrSourceNotFound, "no business unit for domain",
			goerr.V("domain", domain))
	}

	return resp.ID, nil
}

// FetchReviews retrieves one page of reviews for a business unit
func (c *Client) FetchReviews(ctx context.Context, businessUnitID string, maxResults int) ([]*model.Review, error) {
	params := url.Values{
		"language": {"fr"},
		"page":     {"1"},
		"perPage":  {fmt.Sprintf("%d", maxResults)},
	}
	endpoint := fmt.Sprintf("%s/reviews/business-unit/%s?%s", c.baseURL, businessUnitID, params.Encode())

	var resp reviewsResponse
	if err := c.getJSON(ctx, endpoint, &resp); err != nil {
		return nil, goerr.Wrap(err, "failed to fetch business unit reviews",
			goerr.V("businessUnitID", businessUnitID))
	}

	logger := logging.From(ctx)

	reviews := make([]*model.Review, 0, len(resp.Reviews))
	for i, raw := range resp.Reviews {
		if len(reviews) >= maxResults {
			break
		}
		if raw.Stars < 1 || raw.Stars > 5 {
			logger.Debug("dropping review with out-of-domain rating",
				"platform", c.Platform(), "stars", raw.Stars)
			continue
		}

		date := raw.CreatedAt
		if len(date) > 10 {
			date = date[:10]
		}

		reviews = append(reviews, &model.Review{
			ID:       fmt.Sprintf("trustpilot_%d", i),
			Platform: types.PlatformTrustpilot,
			Author:   raw.Consumer.DisplayName,
			Rating:   raw.Stars,
			Text:     raw.Text,
			Title:    raw.Title,
			Date:     date,
		})
	}

	return reviews, nil
}

func (c *Client) getJSON(ctx context.Context, endpoint string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return goerr.Wrap(err, "failed to build request")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return goerr.Wrap(err, "request failed")
	}
	defer safe.Close(ctx, resp.Body)

	if resp.StatusCode != http.StatusOK {
		return goerr.New("unexpected status code", goerr.V("status", resp.StatusCode))
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return goerr.Wrap(err, "failed to decode response")
	}

	return nil
}
