package analysis

import (
	"math/rand"
	"strings"
	"sync"

	"github.com/reviewsight-lab/reviewsight/pkg/domain/model/config"
	"github.com/reviewsight-lab/reviewsight/pkg/domain/types"
)

// Categorizer assigns one of the fixed categories to a review text.
// Keyword sets are tried in lexicon order; the first match wins. A text
// matching no set gets a uniformly random category. That randomness is
// inherited product behavior, kept deliberately but made seedable so tests
// stay reproducible.
type Categorizer struct {
	lexicon *config.Lexicon

	mu  sync.Mutex
	rng *rand.Rand
}

// NewCategorizer creates a categorizer over the lexicon, seeded for the
// random fallback
func NewCategorizer(lexicon *config.Lexicon, seed int64) *Categorizer {
	return &Categorizer{
		lexicon: lexicon,
		rng:     rand.New(rand.NewSource(seed)),
	}
}

// Categorize returns the category for a text. Deterministic whenever any
// category keyword matches.
func (c *Categorizer) Categorize(text string) types.Category {
	lowered := strings.ToLower(text)

	for _, ck := range c.lexicon.Categories {
		for _, kw := range ck.Keywords {
			if strings.Contains(lowered, kw) {
				return ck.Category
			}
		}
	}

	categories := types.AllCategories()

	c.mu.Lock()
	defer c.mu.Unlock()
	return categories[c.rng.Intn(len(categories))]
}
