package config

import (
	"strings"

	"github.com/m-mizutani/goerr/v2"
	"github.com/reviewsight-lab/reviewsight/pkg/domain/types"
)

// CategoryKeywords binds one category to its matching keywords. Categories
// are tried in slice order, so earlier entries take priority when a text
// matches several sets.
type CategoryKeywords struct {
	Category types.Category `toml:"category"`
	Keywords []string       `toml:"keywords"`
}

// Lexicon holds the keyword sets driving the rule-based analysis: sentiment
// scoring, category assignment and keyword extraction. It can be overridden
// from a TOML file; DefaultLexicon is the compiled-in baseline.
type Lexicon struct {
	PositiveKeywords []string           `toml:"positive_keywords"`
	NegativeKeywords []string           `toml:"negative_keywords"`
	StopWords        []string           `toml:"stop_words"`
	Categories       []CategoryKeywords `toml:"category"`
}

// DefaultLexicon returns the built-in keyword sets. The vocabulary is
// French-first with common English terms, matching the markets the source
// adapters query.
func DefaultLexicon() *Lexicon {
	return &Lexicon{
		PositiveKeywords: []string{
			"excellent", "parfait", "super", "génial", "top",
			"recommande", "satisfait", "rapide", "efficace",
			"great", "good", "love", "best", "amazing", "happy",
		},
		NegativeKeywords: []string{
			"mauvais", "horrible", "nul", "décevant", "déçu",
			"problème", "lent", "arnaque", "inadmissible",
			"bad", "terrible", "awful", "worst", "poor",
		},
		StopWords: []string{
			"dans", "avec", "pour", "cette", "mais", "vous", "nous",
			"sont", "très", "tout", "tous", "plus", "fait", "être",
			"avoir", "leur", "elle", "donc", "quand", "comme",
			"this", "that", "with", "have", "from", "they", "were",
			"been", "will", "would", "your", "about",
		},
		Categories: []CategoryKeywords{
			{Category: types.CategoryService, Keywords: []string{
				"service", "accueil", "personnel", "staff", "équipe",
			}},
			{Category: types.CategoryProductQuality, Keywords: []string{
				"produit", "qualité", "quality", "product", "article",
			}},
			{Category: types.CategoryPrice, Keywords: []string{
				"prix", "cher", "tarif", "price", "expensive", "coût",
			}},
			{Category: types.CategoryCustomerSupport, Keywords: []string{
				"support", "assistance", "aide", "réponse", "réclamation",
			}},
			{Category: types.CategoryUsability, Keywords: []string{
				"facile", "simple", "interface", "application", "ergonomie",
			}},
		},
	}
}

// Validate checks keyword sets for emptiness and category invariants
func (l *Lexicon) Validate() error {
	if len(l.PositiveKeywords) == 0 {
		return goerr.New("positive keyword set is empty")
	}
	if len(l.NegativeKeywords) == 0 {
		return goerr.New("negative keyword set is empty")
	}

	seen := make(map[types.Category]bool)
	for _, ck := range l.Categories {
		if !ck.Category.IsValid() {
			return goerr.New("invalid category in lexicon", goerr.V("category", ck.Category))
		}
		if seen[ck.Category] {
			return goerr.New("duplicate category in lexicon", goerr.V("category", ck.Category))
		}
		seen[ck.Category] = true
		if len(ck.Keywords) == 0 {
			return goerr.New("category has no keywords", goerr.V("category", ck.Category))
		}
		for _, kw := range ck.Keywords {
			if strings.TrimSpace(kw) == "" {
				return goerr.New("empty keyword in category", goerr.V("category", ck.Category))
			}
		}
	}
	if len(seen) != len(types.AllCategories()) {
		return goerr.New("lexicon must cover all categories",
			goerr.V("covered", len(seen)),
			goerr.V("required", len(types.AllCategories())))
	}

	return nil
}
