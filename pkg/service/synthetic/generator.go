package synthetic

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/reviewsight-lab/reviewsight/pkg/domain/model"
	"github.com/reviewsight-lab/reviewsight/pkg/domain/types"
)

// Generator synthesizes plausible review records for demo and degraded
// operation. Output is always tagged with PlatformSimulated so it can never
// be mistaken for real source data.
type Generator struct {
	rng *rand.Rand
	now func() time.Time
}

type Option func(*Generator)

// WithNow overrides the clock, for deterministic dates in tests
func WithNow(now func() time.Time) Option {
	return func(g *Generator) {
		g.now = now
	}
}

// New creates a generator seeded with the given value. The same seed yields
// the same review sequence.
func New(seed int64, opts ...Option) *Generator {
	g := &Generator{
		rng: rand.New(rand.NewSource(seed)),
		now: time.Now,
	}
	for _, opt := range opts {
		opt(g)
	}

	return g
}

var positiveTexts = []string{
	"Excellent service, je recommande vivement !",
	"Très satisfait de mon achat, livraison rapide.",
	"Super expérience, le personnel est très accueillant.",
	"Application simple et efficace, parfait au quotidien.",
	"Rapport qualité prix imbattable, rien à redire.",
}

var neutralTexts = []string{
	"Produit correct, sans plus.",
	"Service dans la moyenne, peut mieux faire.",
	"L'application fonctionne mais l'interface date un peu.",
	"Expérience correcte, quelques longueurs à la livraison.",
}

var negativeTexts = []string{
	"Très mauvais service, je suis déçu.",
	"Problème de facturation jamais résolu, inadmissible.",
	"Produit de mauvaise qualité, je ne recommande pas.",
	"Support injoignable, réponse au bout de trois semaines.",
	"Beaucoup trop cher pour la qualité proposée.",
}

var authorNames = []string{
	"Marie L.", "Thomas B.", "Sophie D.", "Nicolas R.", "Camille M.",
	"Julien P.", "Laura G.", "Antoine F.", "Claire V.", "Hugo T.",
}

// Generate synthesizes n reviews. IDs continue numbering from startIndex so
// synthesized records never collide with real ones in the same batch.
func (g *Generator) Generate(n, startIndex int) []*model.Review {
	if n <= 0 {
		return nil
	}

	categories := types.AllCategories()

	reviews := make([]*model.Review, 0, n)
	for i := 0; i < n; i++ {
		rating := g.rng.Intn(5) + 1

		var text string
		switch {
		case rating >= 4:
			text = positiveTexts[g.rng.Intn(len(positiveTexts))]
		case rating == 3:
			text = neutralTexts[g.rng.Intn(len(neutralTexts))]
		default:
			text = negativeTexts[g.rng.Intn(len(negativeTexts))]
		}

		date := g.now().UTC().AddDate(0, 0, -g.rng.Intn(90))

		reviews = append(reviews, &model.Review{
			ID:       fmt.Sprintf("sim_%d", startIndex+i),
			Platform: types.PlatformSimulated,
			Author:   authorNames[g.rng.Intn(len(authorNames))],
			Rating:   rating,
			Text:     text,
			Date:     date.Format("2006-01-02"),
			Category: categories[g.rng.Intn(len(categories))],
		})
	}

	return reviews
}
