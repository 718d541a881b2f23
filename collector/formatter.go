package collector

import (
	"fmt"
	"strings"
	"time"

	"fxnews/types"
)

const (
	sourceDateLayout  = "2006-01-02T15:04:05Z"
	displayDateLayout = "2006-01-02 15:04:05"
)

// FormatReport renders a ranked article set as the plain-text report that
// gets persisted and fed to the forecasting prompt.
func FormatReport(articles []types.EnrichedArticle, maxCount int) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Top %d Most Relevant Financial News Articles:\n", maxCount)
	b.WriteString(strings.Repeat("=", 80) + "\n")

	for i, a := range articles {
		fmt.Fprintf(&b, "\n%d. Title: %s\n", i+1, a.Title)
		fmt.Fprintf(&b, "Date: %s\n", formatDate(a.PublishedAt))
		fmt.Fprintf(&b, "Description: %s\n", a.FullDescription)
		fmt.Fprintf(&b, "Relevance Score: %.2f\n", a.RelevanceScore)
		fmt.Fprintf(&b, "Categories: %s\n", strings.Join(a.PrimaryCategories, ", "))
		fmt.Fprintf(&b, "URL: %s\n", a.URL)
		b.WriteString(strings.Repeat("-", 80) + "\n")
	}

	return strings.TrimSpace(b.String())
}

// formatDate reformats the source timestamp for display. Anything that
// does not parse passes through unchanged rather than failing the report.
func formatDate(raw string) string {
	t, err := time.Parse(sourceDateLayout, raw)
	if err != nil {
		return raw
	}
	return t.Format(displayDateLayout)
}
