package places

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/reviewsight-lab/reviewsight/pkg/domain/interfaces"
	"github.com/reviewsight-lab/reviewsight/pkg/domain/model"
	"github.com/reviewsight-lab/reviewsight/pkg/domain/types"
	"github.com/reviewsight-lab/reviewsight/pkg/utils/logging"
	"github.com/reviewsight-lab/reviewsight/pkg/utils/safe"
)

const defaultBaseURL = "https://maps.googleapis.com/maps/api/place"

// Client collects reviews from the Google Places API
type Client struct {
	apiKey     string
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

// New creates a Google Places adapter with the given API key
func New(apiKey string, opts ...Option) (*Client, error) {
	if apiKey == "" {
		return nil, goerr.New("Google Places API key is required")
	}

	c := &Client{
		apiKey:  apiKey,
		baseURL: defaultBaseURL,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
	for _, opt := range opts {
		opt(c)
	}

	return c, nil
}

func (c *Client) Platform() types.Platform {
	return types.PlatformGoogle
}

// Resolve finds the place ID for the session's business name and location
func (c *Client) Resolve(ctx context.Context, s *model.Session) (string, error) {
	query := s.BusinessName
	if s.Location != "" {
		query += " " + s.Location
	}

	params := url.Values{
		"input":     {query},
		"inputtype": {"textquery"},
		"fields":    {"place_id"},
		"key":       {c.apiKey},
	}
	endpoint := fmt.Sprintf("%s/findplacefromtext/json?%s", c.baseURL, params.Encode())

	var resp findPlaceResponse
	if err := c.getJSON(ctx, endpoint, &resp); err != nil {
		return "", goerr.Wrap(interfaces.ErrSourceNotFound, "place lookup failed",
			goerr.V("business", s.BusinessName), goerr.V("cause", err.Error()))
	}

	if resp.Status != "OK" || len(resp.Candidates) == 0 {
		return "", goerr.Wrap(interfaces.ErrSourceNotFound, "no place candidates",
			goerr.V("business", s.BusinessName), goerr.V("status", resp.Status))
	}

	return resp.Candidates[0].PlaceID, nil
}

// FetchReviews retrieves up to maxResults reviews for a place. The details
// endpoint returns a single page; there is no pagination.
func (c *Client) FetchReviews(ctx context.Context, placeID string, maxResults int) ([]*model.Review, error) {
	params := url.Values{
		"place_id": {placeID},
		"fields":   {"reviews,rating,user_ratings_total"},
		"key":      {c.apiKey},
		"language": {"fr"},
	}
	endpoint := fmt.Sprintf("%s/details/json?%s", c.baseURL, params.Encode())

	var resp placeDetailsResponse
	if err := c.getJSON(ctx, endpoint, &resp); err != nil {
		return nil, goerr.Wrap(err, "failed to fetch place reviews", goerr.V("placeID", placeID))
	}

	if resp.Status != "OK" {
		return nil, goerr.New("place details request rejected",
			goerr.V("placeID", placeID), goerr.V("status", resp.Status))
	}

	logger := logging.From(ctx)

	reviews := make([]*model.Review, 0, len(resp.Result.Reviews))
	for i, raw := range resp.Result.Reviews {
		if len(reviews) >= maxResults {
			break
		}
		if raw.Rating < 1 || raw.Rating > 5 {
			logger.Debug("dropping review with out-of-domain rating",
				"platform", c.Platform(), "rating", raw.Rating)
			continue
		}

		reviews = append(reviews, &model.Review{
			ID:       fmt.Sprintf("google_%d", i),
			Platform: types.PlatformGoogle,
			Author:   raw.AuthorName,
			Rating:   raw.Rating,
			Text:     raw.Text,
			Date:     time.Unix(raw.Time, 0).UTC().Format("2006-01-02"),
			Language: raw.Language,
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
