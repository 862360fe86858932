package analysis_test

import (
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/reviewsight-lab/reviewsight/pkg/domain/model/config"
	"github.com/reviewsight-lab/reviewsight/pkg/domain/types"
	"github.com/reviewsight-lab/reviewsight/pkg/service/analysis"
)

func TestCategorizer(t *testing.T) {
	lexicon := config.DefaultLexicon()

	t.Run("keyword match is deterministic", func(t *testing.T) {
		c := analysis.NewCategorizer(lexicon, 1)
		gt.Value(t, c.Categorize("Le service était impeccable")).Equal(types.CategoryService)
		gt.Value(t, c.Categorize("Produit de bonne qualité")).Equal(types.CategoryProductQuality)
		gt.Value(t, c.Categorize("Le prix est trop cher")).Equal(types.CategoryPrice)
		gt.Value(t, c.Categorize("Aucune réponse du support")).Equal(types.CategoryCustomerSupport)
		gt.Value(t, c.Categorize("Interface facile à utiliser")).Equal(types.CategoryUsability)
	})

	t.Run("earlier category wins when several match", func(t *testing.T) {
		c := analysis.NewCategorizer(lexicon, 1)
		// "service" (Service) and "produit" (Product Quality) both match
		gt.Value(t, c.Categorize("Bon service mais produit moyen")).Equal(types.CategoryService)
	})

	t.Run("no match falls back to a random member of the closed set", func(t *testing.T) {
		c := analysis.NewCategorizer(lexicon, 42)
		got := c.Categorize("Rien à signaler")
		gt.Bool(t, got.IsValid()).True()
	})

	t.Run("random fallback is reproducible with the same seed", func(t *testing.T) {
		texts := []string{"un", "deux", "trois", "quatre", "cinq"}

		run := func() []types.Category {
			c := analysis.NewCategorizer(lexicon, 7)
			out := make([]types.Category, 0, len(texts))
			for _, text := range texts {
				out = append(out, c.Categorize(text))
			}
			return out
		}

		gt.Value(t, run()).Equal(run())
	})
}
