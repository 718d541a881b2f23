package relevance

import (
	"html"
	"regexp"
	"strings"

	"fxnews/types"
)

// Placeholder is emitted when an article has no usable text at all.
const Placeholder = "No detailed description available."

var (
	// NewsAPI truncates content and appends e.g. "[+1234 chars]".
	truncationRe = regexp.MustCompile(`\[\+\d+ chars\]`)
	tagRe        = regexp.MustCompile(`<[^>]*>`)
	// Everything outside word characters, whitespace and basic punctuation
	// is dropped. Lossy on purpose: the output is only used for scoring
	// and display, never to re-derive the original text.
	charsetRe    = regexp.MustCompile(`[^\w\s.,!?-]`)
	whitespaceRe = regexp.MustCompile(`\s+`)
)

// CleanText runs a single text field through the normalization pipeline:
// entity decoding, truncation-marker and tag stripping, character pruning
// and whitespace collapsing. Idempotent on already-clean text.
func CleanText(s string) string {
	s = html.UnescapeString(s)
	s = truncationRe.ReplaceAllString(s, "")
	s = tagRe.ReplaceAllString(s, "")
	s = charsetRe.ReplaceAllString(s, "")
	s = whitespaceRe.ReplaceAllString(s, " ")
	return strings.TrimSpace(s)
}

// Normalize flattens a raw article into the single text blob the scorer
// operates on. The title is skipped when the cleaned description or
// content already contains it.
func Normalize(a types.RawArticle) string {
	title := CleanText(a.Title)
	desc := CleanText(a.Description)
	content := CleanText(a.Content)

	parts := make([]string, 0, 3)
	if title != "" && !strings.Contains(desc, title) && !strings.Contains(content, title) {
		parts = append(parts, title)
	}
	if desc != "" {
		parts = append(parts, desc)
	}
	if content != "" {
		parts = append(parts, content)
	}

	if len(parts) == 0 {
		return Placeholder
	}
	return strings.Join(parts, " ")
}

// FullDescription builds the display text for an enriched article from the
// description and content fields only, falling back to the placeholder
// when both are empty.
func FullDescription(a types.RawArticle) string {
	desc := CleanText(a.Description)
	content := CleanText(a.Content)

	switch {
	case desc == "" && content == "":
		return Placeholder
	case desc == "":
		return content
	case content == "" || strings.Contains(desc, content):
		return desc
	default:
		return desc + " " + content
	}
}
