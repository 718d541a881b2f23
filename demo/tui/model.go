package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"fxnews/api"
	"fxnews/demo/client"
)

// State represents the application state machine
type State string

const (
	StateIdle        State = "idle"
	StateFetching    State = "fetching"
	StateLoaded      State = "loaded"
	StateForecasting State = "forecasting"
	StateForecast    State = "forecast"
	StateError       State = "error"
)

// Model represents the TUI client state (thin client over the news API)
type Model struct {
	Client *client.Client

	State    State
	Keyword  string
	News     *api.NewsResponse
	Forecast string
	Logs     []string
	Err      error
}

// NewModel creates a new TUI model
func NewModel(serverURL, keyword string) Model {
	return Model{
		Client:  client.NewClient(serverURL),
		State:   StateIdle,
		Keyword: keyword,
		Logs:    make([]string, 0),
	}
}

// Init implements tea.Model interface
func (m Model) Init() tea.Cmd {
	return nil
}

// AddLog appends a log line, keeping only the most recent entries
func (m Model) AddLog(msg string) Model {
	m.Logs = append(m.Logs, msg)
	if len(m.Logs) > 8 {
		m.Logs = m.Logs[len(m.Logs)-8:]
	}
	return m
}

// getStateText returns the appropriate state message
func (m Model) getStateText() string {
	switch m.State {
	case StateIdle:
		return HighlightStyle.Render("👋 Ready!") + "\n\n" +
			InfoStyle.Render("Press 'n' to fetch relevant forex news")
	case StateFetching:
		return StatusStyle.Render("⏳ Collecting and ranking news articles...")
	case StateLoaded:
		return HighlightStyle.Render("✅ News loaded") + "\n\n" +
			InfoStyle.Render("Press 'f' to generate a market forecast")
	case StateForecasting:
		return StatusStyle.Render("🔮 Generating market forecast...")
	case StateForecast:
		return HighlightStyle.Render("✅ Forecast ready")
	case StateError:
		errMsg := "Unknown error"
		if m.Err != nil {
			errMsg = m.Err.Error()
		}
		return ErrorStyle.Render(fmt.Sprintf("❌ Error: %v", errMsg))
	default:
		return ""
	}
}

// formatNewsSummary formats the ranked articles for display
func (m Model) formatNewsSummary() string {
	news := m.News
	var b strings.Builder

	b.WriteString(HighlightStyle.Render("Ranked Articles"))
	b.WriteString("\n\n")

	for i, a := range news.RawNews {
		title := a.Title
		if len(title) > 70 {
			title = title[:70] + "..."
		}
		b.WriteString(fmt.Sprintf("%d. %s\n", i+1, title))
		b.WriteString(InfoStyle.Render(fmt.Sprintf("   score %.2f | %s",
			a.RelevanceScore, strings.Join(a.PrimaryCategories, ", "))))
		b.WriteString("\n")
	}

	if len(news.CategoriesFound) > 0 {
		b.WriteString("\n")
		b.WriteString(InfoStyle.Render("Categories: " + strings.Join(news.CategoriesFound, ", ")))
	}

	return b.String()
}
