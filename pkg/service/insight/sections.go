package insight

import (
	"regexp"
	"strings"

	"github.com/m-mizutani/goerr/v2"
	"github.com/reviewsight-lab/reviewsight/pkg/domain/model"
)

// itemPattern strips leading list markers: dashes, bullets or "1." style
// numbering
var itemPattern = regexp.MustCompile(`^\s*(?:[-*•]|\d+[.)])\s*`)

// extractSections recovers an insight report from a free-form model reply
// that did not parse as JSON. Each field name is located as a text marker;
// its content runs until the next blank line.
func extractSections(raw string) (*model.InsightReport, error) {
	if strings.TrimSpace(raw) == "" {
		return nil, goerr.New("no model reply to extract from")
	}

	report := &model.InsightReport{
		Summary:         extractText(raw, "summary"),
		Strengths:       extractList(raw, "strengths"),
		Improvements:    extractList(raw, "improvements"),
		Recommendations: extractList(raw, "recommendations"),
		Trends:          extractList(raw, "trends"),
	}

	if err := report.Validate(); err != nil {
		return nil, goerr.Wrap(err, "section extraction yielded nothing usable")
	}

	return report, nil
}

func sectionPattern(field string) *regexp.Regexp {
	// field name marker, optional colon/quotes, capture up to a blank line
	return regexp.MustCompile(`(?is)"?` + field + `"?\s*:?\s*\n?(.*?)(?:\n\s*\n|$)`)
}

func extractText(raw, field string) string {
	m := sectionPattern(field).FindStringSubmatch(raw)
	if len(m) < 2 {
		return ""
	}
	return strings.TrimSpace(strings.Trim(strings.TrimSpace(m[1]), `",`))
}

func extractList(raw, field string) []string {
	m := sectionPattern(field).FindStringSubmatch(raw)
	if len(m) < 2 {
		return nil
	}

	var items []string
	for _, line := range strings.Split(m[1], "\n") {
		line = itemPattern.ReplaceAllString(line, "")
		line = strings.TrimSpace(strings.Trim(strings.TrimSpace(line), `",`))
		if line == "" {
			continue
		}
		items = append(items, line)
	}

	return items
}
