package tui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
)

// Update implements tea.Model interface
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyPress(msg)
	case NewsLoadedMsg:
		return m.handleNewsLoaded(msg)
	case ForecastLoadedMsg:
		return m.handleForecastLoaded(msg)
	}
	return m, nil
}

// handleKeyPress processes keyboard input
func (m Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "q":
		return m, tea.Quit
	case "n", "N":
		if m.State == StateIdle || m.State == StateError || m.State == StateForecast {
			m.State = StateFetching
			m.Err = nil
			m = m.AddLog("Fetching relevant news...")
			return m, fetchNews(m.Client, m.Keyword)
		}
	case "f", "F":
		if m.State == StateLoaded && m.News != nil {
			m.State = StateForecasting
			m = m.AddLog("Requesting market forecast...")
			return m, fetchForecast(m.Client, m.News.FormattedNews)
		}
	}
	return m, nil
}

// handleNewsLoaded processes news request completion
func (m Model) handleNewsLoaded(msg NewsLoadedMsg) (tea.Model, tea.Cmd) {
	if msg.Err != nil {
		m.State = StateError
		m.Err = msg.Err
		return m, nil
	}
	m.News = msg.News
	m.State = StateLoaded
	m = m.AddLog(fmt.Sprintf("Loaded %d relevant articles", msg.News.TotalArticles))
	return m, nil
}

// handleForecastLoaded processes forecast request completion
func (m Model) handleForecastLoaded(msg ForecastLoadedMsg) (tea.Model, tea.Cmd) {
	if msg.Err != nil {
		m.State = StateError
		m.Err = msg.Err
		return m, nil
	}
	m.Forecast = msg.Forecast
	m.State = StateForecast
	m = m.AddLog("Forecast received")
	return m, nil
}
