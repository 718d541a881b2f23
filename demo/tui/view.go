package tui

import (
	"fmt"
	"strings"
)

// View implements tea.Model interface
func (m Model) View() string {
	var b strings.Builder

	// Title
	b.WriteString(TitleStyle.Render("💱 Forex News Demo"))
	b.WriteString("\n\n")

	// Current state
	b.WriteString(m.getStateText())
	b.WriteString("\n\n")

	// Statistics
	if m.News != nil {
		stats := fmt.Sprintf("📊 Relevant articles: %d", m.News.TotalArticles)
		b.WriteString(InfoStyle.Render(stats))
		b.WriteString("\n\n")
	}

	// Logs
	if len(m.Logs) > 0 {
		b.WriteString(InfoStyle.Render("📝 Recent Activity:"))
		b.WriteString("\n")
		for _, logMsg := range m.Logs {
			b.WriteString(InfoStyle.Render("   " + logMsg))
			b.WriteString("\n")
		}
		b.WriteString("\n")
	}

	// Results
	if m.State == StateLoaded && m.News != nil {
		b.WriteString(BoxStyle.Render(m.formatNewsSummary()))
		b.WriteString("\n\n")
	}
	if m.State == StateForecast && m.Forecast != "" {
		b.WriteString(BoxStyle.Render(HighlightStyle.Render("Market Forecast") + "\n\n" + m.Forecast))
		b.WriteString("\n\n")
	}

	// Help text
	switch m.State {
	case StateIdle:
		b.WriteString(InfoStyle.Render("Press 'n' to fetch news | Press 'q' or Ctrl+C to quit"))
	case StateLoaded:
		b.WriteString(InfoStyle.Render("Press 'f' for a forecast | Press 'n' to refetch | Press 'q' to quit"))
	case StateForecast:
		b.WriteString(InfoStyle.Render("Press 'n' to fetch fresh news | Press 'q' or Ctrl+C to quit"))
	default:
		b.WriteString(InfoStyle.Render("Press 'q' or Ctrl+C to quit"))
	}

	return b.String()
}
