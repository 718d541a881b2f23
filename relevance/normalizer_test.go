package relevance

import (
	"strings"
	"testing"

	"fxnews/types"
)

func TestCleanText(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want string
	}{
		{"plain", "Dollar steadies ahead of CPI data.", "Dollar steadies ahead of CPI data."},
		{"entities", "Fed &amp; ECB diverge", "Fed ECB diverge"},
		{"tags", "<p>Euro <b>slips</b></p>", "Euro slips"},
		{"truncation marker", "The yen weakened further... [+1523 chars]", "The yen weakened further..."},
		{"newlines and runs", "rate\n\nhike\t  looms", "rate hike looms"},
		{"pruned characters", "EUR/USD @ 1.0845 (intraday)", "EURUSD 1.0845 intraday"},
		{"empty", "", ""},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got := CleanText(c.in)
			if got != c.want {
				t.Fatalf("CleanText(%q) = %q; want %q", c.in, got, c.want)
			}
		})
	}
}

func TestCleanTextIdempotent(t *testing.T) {
	inputs := []string{
		"The Federal Reserve raised interest rates amid inflation concerns",
		"<div>Pound &gt; expectations</div> [+88 chars]",
		"  spaced\nout\ttext  ",
	}

	for _, in := range inputs {
		once := CleanText(in)
		twice := CleanText(once)
		if once != twice {
			t.Fatalf("CleanText not idempotent: %q -> %q -> %q", in, once, twice)
		}
	}
}

func TestNormalize(t *testing.T) {
	a := types.RawArticle{
		Title:       "Euro rallies",
		Description: "The euro rallied against the dollar.",
		Content:     "Traders cited a hawkish ECB. [+120 chars]",
	}

	got := Normalize(a)
	want := "Euro rallies The euro rallied against the dollar. Traders cited a hawkish ECB."
	if got != want {
		t.Fatalf("Normalize = %q; want %q", got, want)
	}
	if strings.Contains(got, "[+120 chars]") {
		t.Fatalf("truncation marker survived normalization: %q", got)
	}
}

func TestNormalizeSkipsDuplicateTitle(t *testing.T) {
	a := types.RawArticle{
		Title:       "Euro rallies",
		Description: "Euro rallies as ECB turns hawkish.",
	}

	got := Normalize(a)
	if strings.Count(got, "Euro rallies") != 1 {
		t.Fatalf("title duplicated in normalized text: %q", got)
	}
}

func TestNormalizeEmptyArticle(t *testing.T) {
	got := Normalize(types.RawArticle{})
	if got != Placeholder {
		t.Fatalf("Normalize(empty) = %q; want placeholder", got)
	}
}

func TestFullDescription(t *testing.T) {
	cases := []struct {
		name    string
		article types.RawArticle
		want    string
	}{
		{
			"description and content",
			types.RawArticle{Description: "Desc here.", Content: "Content here."},
			"Desc here. Content here.",
		},
		{
			"content only",
			types.RawArticle{Content: "Content only."},
			"Content only.",
		},
		{
			"both empty",
			types.RawArticle{Title: "Title is ignored"},
			Placeholder,
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got := FullDescription(c.article)
			if got != c.want {
				t.Fatalf("FullDescription = %q; want %q", got, c.want)
			}
		})
	}
}
