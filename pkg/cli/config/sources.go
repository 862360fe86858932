package config

import (
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/reviewsight-lab/reviewsight/pkg/domain/interfaces"
	"github.com/reviewsight-lab/reviewsight/pkg/service/appstore"
	"github.com/reviewsight-lab/reviewsight/pkg/service/places"
	"github.com/reviewsight-lab/reviewsight/pkg/service/synthetic"
	"github.com/reviewsight-lab/reviewsight/pkg/service/trustpilot"
	"github.com/reviewsight-lab/reviewsight/pkg/utils/logging"
	"github.com/urfave/cli/v3"
)

// Sources holds CLI flags for the review source adapters. The struct is
// logged as a value at startup; the masq tag redacts the API key there.
type Sources struct {
	PlacesAPIKey  string `masq:"secret"`
	SyntheticSeed int
}

// Flags returns CLI flags for source configuration
func (s *Sources) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "google-places-api-key",
			Usage:       "API key for the Google Places API (Google Reviews source)",
			Sources:     cli.EnvVars("REVIEWSIGHT_GOOGLE_PLACES_API_KEY"),
			Destination: &s.PlacesAPIKey,
		},
		&cli.IntFlag{
			Name:        "synthetic-seed",
			Usage:       "Random seed for the simulated review generator (0 = time-based)",
			Sources:     cli.EnvVars("REVIEWSIGHT_SYNTHETIC_SEED"),
			Destination: &s.SyntheticSeed,
		},
	}
}

// Adapters builds the configured source adapters in collection order. The
// Google Reviews adapter needs an API key and is skipped without one; the
// app store and Trustpilot adapters use public endpoints.
func (s *Sources) Adapters() ([]interfaces.SourceAdapter, error) {
	var adapters []interfaces.SourceAdapter

	if s.PlacesAPIKey != "" {
		client, err := places.New(s.PlacesAPIKey)
		if err != nil {
			return nil, goerr.Wrap(err, "failed to initialize Google Places adapter")
		}
		adapters = append(adapters, client)
	} else {
		logging.Default().Info("Google Places API key not configured, Google Reviews source disabled")
	}

	adapters = append(adapters, appstore.New(), trustpilot.New())

	return adapters, nil
}

// Synthesizer builds the simulated review generator
func (s *Sources) Synthesizer() *synthetic.Generator {
	seed := int64(s.SyntheticSeed)
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return synthetic.New(seed)
}
