package tui

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"fxnews/demo/client"
)

// fetchNews creates a command that requests ranked news from the API
func fetchNews(c *client.Client, keyword string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
		defer cancel()

		news, err := c.GetNews(ctx, keyword, 0)
		return NewsLoadedMsg{News: news, Err: err}
	}
}

// fetchForecast creates a command that requests a forecast built from the
// formatted news report
func fetchForecast(c *client.Client, report string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 90*time.Second)
		defer cancel()

		forecast, err := c.GetForecast(ctx, report)
		return ForecastLoadedMsg{Forecast: forecast, Err: err}
	}
}
