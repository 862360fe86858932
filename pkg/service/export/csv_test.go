package export_test

import (
	"context"
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/reviewsight-lab/reviewsight/pkg/domain/model"
	"github.com/reviewsight-lab/reviewsight/pkg/domain/types"
	"github.com/reviewsight-lab/reviewsight/pkg/service/export"
)

func readCSV(t *testing.T, path string) [][]string {
	t.Helper()

	f, err := os.Open(path)
	gt.NoError(t, err).Required()
	defer f.Close()

	rows, err := csv.NewReader(f).ReadAll()
	gt.NoError(t, err).Required()
	return rows
}

func TestWriteReviews(t *testing.T) {
	dir := t.TempDir()
	sink := export.New(dir)
	ctx := context.Background()

	reviews := []*model.Review{
		{
			ID: "google_0", Platform: types.PlatformGoogle, Author: "Marie L.",
			Rating: 5, Text: "Excellent service !", Date: "2025-05-01",
			Category: types.CategoryService, Sentiment: types.SentimentPositive,
			Score: 0.5, Topics: []string{"accueil", "rapidité"}, Confidence: 0.6,
		},
		{
			ID: "trustpilot_0", Platform: types.PlatformTrustpilot, Author: "Thomas B.",
			Rating: 2, Text: "Trop cher, et en plus, lent", Date: "2025-05-02",
			Category: types.CategoryPrice, Sentiment: types.SentimentNegative,
			Score: -0.5, Confidence: 0.6,
		},
	}

	path, err := sink.WriteReviews(ctx, "reviews.csv", reviews)
	gt.NoError(t, err).Required()
	gt.Value(t, path).Equal(filepath.Join(dir, "reviews.csv"))

	rows := readCSV(t, path)
	gt.Array(t, rows).Length(3).Required()

	gt.Value(t, rows[0]).Equal([]string{
		"id", "platform", "author", "rating", "text", "title", "date",
		"category", "sentiment", "score", "topics", "confidence",
	})

	gt.Value(t, rows[1][0]).Equal("google_0")
	gt.Value(t, rows[1][1]).Equal("Google Reviews")
	gt.Value(t, rows[1][3]).Equal("5")
	gt.Value(t, rows[1][10]).Equal("accueil; rapidité")

	// Embedded commas survive the round-trip intact
	gt.Value(t, rows[2][4]).Equal("Trop cher, et en plus, lent")
	gt.Value(t, rows[2][9]).Equal("-0.50")
}

func TestWriteReviewsEmptyCollection(t *testing.T) {
	sink := export.New(t.TempDir())

	path, err := sink.WriteReviews(context.Background(), "empty.csv", nil)
	gt.NoError(t, err).Required()

	rows := readCSV(t, path)
	gt.Array(t, rows).Length(1)
}

func TestWriteCategoryStats(t *testing.T) {
	sink := export.New(t.TempDir())

	stats := map[types.Category]*model.CategoryStat{
		types.CategoryPrice:   {Count: 2, AvgSentiment: -0.25, AvgRating: 2.5},
		types.CategoryService: {Count: 4, AvgSentiment: 0.5, AvgRating: 4.25},
	}

	path, err := sink.WriteCategoryStats(context.Background(), "categories.csv", stats)
	gt.NoError(t, err).Required()

	rows := readCSV(t, path)
	gt.Array(t, rows).Length(3).Required()

	gt.Value(t, rows[0]).Equal([]string{"category", "count", "avg_sentiment", "avg_rating"})

	// Rows follow the fixed category order, not map order
	gt.Value(t, rows[1]).Equal([]string{"Service", "4", "0.50", "4.25"})
	gt.Value(t, rows[2]).Equal([]string{"Price", "2", "-0.25", "2.50"})
}

func TestWriteFailsOnUnwritableDir(t *testing.T) {
	sink := export.New(filepath.Join(string([]byte{0}), "nope"))

	_, err := sink.WriteReviews(context.Background(), "reviews.csv", nil)
	gt.Error(t, err)
}
