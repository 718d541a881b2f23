package tui

import "fxnews/api"

// Messages for the tea program

// NewsLoadedMsg is sent when the news request completes
type NewsLoadedMsg struct {
	News *api.NewsResponse
	Err  error
}

// ForecastLoadedMsg is sent when the forecast request completes
type ForecastLoadedMsg struct {
	Forecast string
	Err      error
}
