package export

import (
	"context"
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/m-mizutani/goerr/v2"
	"github.com/reviewsight-lab/reviewsight/pkg/domain/model"
	"github.com/reviewsight-lab/reviewsight/pkg/domain/types"
	"github.com/reviewsight-lab/reviewsight/pkg/utils/safe"
)

// reviewHeader is the fixed column order for review exports
var reviewHeader = []string{
	"id", "platform", "author", "rating", "text", "title", "date",
	"category", "sentiment", "score", "topics", "confidence",
}

var categoryStatsHeader = []string{
	"category", "count", "avg_sentiment", "avg_rating",
}

// Sink writes pipeline artifacts as CSV files into one export directory.
// Unlike the degrading pipeline stages, write failures are surfaced:
// export is an explicit user action with no safe silent fallback.
type Sink struct {
	dir string
}

// New creates a sink writing into dir
func New(dir string) *Sink {
	return &Sink{dir: dir}
}

// Dir returns the export directory
func (s *Sink) Dir() string {
	return s.dir
}

// WriteReviews writes one row per review, overwriting any existing file.
// Field values containing delimiters or newlines are quoted by the CSV
// encoder, so embedded commas never corrupt rows.
func (s *Sink) WriteReviews(ctx context.Context, filename string, reviews []*model.Review) (string, error) {
	rows := make([][]string, 0, len(reviews))
	for _, r := range reviews {
		rows = append(rows, []string{
			r.ID,
			r.Platform.DisplayName(),
			r.Author,
			fmt.Sprintf("%d", r.Rating),
			r.Text,
			r.Title,
			r.Date,
			r.Category.String(),
			r.Sentiment.String(),
			fmt.Sprintf("%.2f", r.Score),
			strings.Join(r.Topics, "; "),
			fmt.Sprintf("%.2f", r.Confidence),
		})
	}

	return s.write(ctx, filename, reviewHeader, rows)
}

// WriteCategoryStats flattens a category breakdown to one row per category
// in the fixed category order
func (s *Sink) WriteCategoryStats(ctx context.Context, filename string, stats map[types.Category]*model.CategoryStat) (string, error) {
	rows := make([][]string, 0, len(stats))
	for _, category := range types.AllCategories() {
		stat, exists := stats[category]
		if !exists {
			continue
		}
		rows = append(rows, []string{
			category.String(),
			fmt.Sprintf("%d", stat.Count),
			fmt.Sprintf("%.2f", stat.AvgSentiment),
			fmt.Sprintf("%.2f", stat.AvgRating),
		})
	}

	return s.write(ctx, filename, categoryStatsHeader, rows)
}

func (s *Sink) write(ctx context.Context, filename string, header []string, rows [][]string) (string, error) {
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return "", goerr.Wrap(err, "failed to create export directory", goerr.V("dir", s.dir))
	}

	path := filepath.Join(s.dir, filename)
	f, err := os.Create(path)
	if err != nil {
		return "", goerr.Wrap(err, "failed to create export file", goerr.V("path", path))
	}
	defer safe.Close(ctx, f)

	w := csv.NewWriter(f)
	if err := w.Write(header); err != nil {
		return "", goerr.Wrap(err, "failed to write header", goerr.V("path", path))
	}
	for _, row := range rows {
		if err := w.Write(row); err != nil {
			return "", goerr.Wrap(err, "failed to write row", goerr.V("path", path))
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return "", goerr.Wrap(err, "failed to flush export file", goerr.V("path", path))
	}

	return path, nil
}
