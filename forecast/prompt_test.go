package forecast

import (
	"strings"
	"testing"
)

func TestBuildPromptIncludesReport(t *testing.T) {
	report := "Top 10 Most Relevant Financial News Articles:\n1. Title: Euro climbs"

	prompt := BuildPrompt(report, nil)

	if !strings.Contains(prompt, report) {
		t.Fatal("prompt missing the news report")
	}
	if !strings.Contains(prompt, "forecast the likely direction") {
		t.Fatal("prompt missing the forecasting instruction")
	}
	if strings.Contains(prompt, "exchange rates against USD") {
		t.Fatal("prompt mentions rates without any rates provided")
	}
}

func TestBuildPromptRatesSortedAndFormatted(t *testing.T) {
	prompt := BuildPrompt("report", map[string]float64{
		"JPY": 147.1234,
		"EUR": 0.9211,
	})

	eur := strings.Index(prompt, "EUR: 0.9211")
	jpy := strings.Index(prompt, "JPY: 147.1234")
	if eur == -1 || jpy == -1 {
		t.Fatalf("rates missing from prompt:\n%s", prompt)
	}
	if eur > jpy {
		t.Fatal("rates not sorted by currency code")
	}
}
