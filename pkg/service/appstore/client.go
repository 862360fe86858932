package appstore

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/reviewsight-lab/reviewsight/pkg/domain/interfaces"
	"github.com/reviewsight-lab/reviewsight/pkg/domain/model"
	"github.com/reviewsight-lab/reviewsight/pkg/domain/types"
	"github.com/reviewsight-lab/reviewsight/pkg/utils/logging"
	"github.com/reviewsight-lab/reviewsight/pkg/utils/safe"
)

const defaultBaseURL = "https://itunes.apple.com"

// Client collects reviews from the Apple App Store customer-reviews feed
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

// New creates an App Store adapter. The iTunes endpoints need no API key.
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
	return types.PlatformAppStore
}

// Resolve searches the App Store for the session's app and returns its
// track ID. The app name falls back to the business name when unset.
func (c *Client) Resolve(ctx context.Context, s *model.Session) (string, error) {
	term := s.AppName
	if term == "" {
		term = s.BusinessName
	}

	params := url.Values{
		"term":    {term},
		"entity":  {"software"},
		"country": {"fr"},
	}
	endpoint := fmt.Sprintf("%s/search?%s", c.baseURL, params.Encode())

	var resp searchResponse
	if err := c.getJSON(ctx, endpoint, &resp); err != nil {
		return "", goerr.Wrap(interfaces.ErrSourceNotFound, "app search failed",
			goerr.V("term", term), goerr.V("cause", err.Error()))
	}

	if resp.ResultCount == 0 || len(resp.Results) == 0 {
		return "", goerr.Wrap(interfaces.ErrSourceNotFound, "no matching app",
			goerr.V("term", term))
	}

	return strconv.FormatInt(resp.Results[0].TrackID, 10), nil
}

// FetchReviews retrieves the most recent reviews for an app from the RSS
// feed. Only the first feed page is fetched.
func (c *Client) FetchReviews(ctx context.Context, appID string, maxResults int) ([]*model.Review, error) {
	endpoint := fmt.Sprintf("%s/rss/customerreviews/id=%s/sortBy=mostRecent/json", c.baseURL, appID)

	var resp feedResponse
	if err := c.getJSON(ctx, endpoint, &resp); err != nil {
		return nil, goerr.Wrap(err, "failed to fetch app reviews", goerr.V("appID", appID))
	}

	entries, err := resp.Feed.Entries()
	if err != nil {
		return nil, goerr.Wrap(err, "failed to parse review feed", goerr.V("appID", appID))
	}

	logger := logging.From(ctx)

	reviews := make([]*model.Review, 0, len(entries))
	for i, entry := range entries {
		if len(reviews) >= maxResults {
			break
		}

		rating, err := strconv.Atoi(entry.Rating.Label)
		if err != nil || rating < 1 || rating > 5 {
			logger.Debug("dropping review with unusable rating",
				"platform", c.Platform(), "rating", entry.Rating.Label)
			continue
		}

		date := entry.Updated.Label
		if len(date) > 10 {
			date = date[:10]
		}

		reviews = append(reviews, &model.Review{
			ID:       fmt.Sprintf("appstore_%d", i),
			Platform: types.PlatformAppStore,
			Author:   entry.Author.Name.Label,
			Rating:   rating,
			Text:     entry.Content.Label,
			Title:    entry.Title.Label,
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
