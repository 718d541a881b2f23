package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"fxnews/collector"
	"fxnews/relevance"
	"fxnews/types"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type stubSource struct {
	result types.SearchResult
}

func (s *stubSource) Search(ctx context.Context, query string, from, to time.Time) (types.SearchResult, error) {
	return s.result, nil
}

func newsRouter(src collector.Source) *gin.Engine {
	var nc *collector.NewsCollector
	if src != nil {
		nc = collector.New(src, relevance.DefaultTaxonomy(), collector.Options{})
	}
	return NewRouter(Deps{Collector: nc})
}

func TestGetNewsOK(t *testing.T) {
	src := &stubSource{result: types.SearchResult{
		Status: "ok",
		Articles: []types.RawArticle{
			{
				Title:       "Fed signals rate cut",
				Description: "The federal reserve hinted at an interest rate cut as inflation slowed.",
				URL:         "https://example.com/fed",
				PublishedAt: "2025-08-01T10:00:00Z",
			},
		},
	}}
	router := newsRouter(src)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/news?max_articles=5", nil)
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d; want 200 (body: %s)", w.Code, w.Body.String())
	}
	if got := w.Header().Get("Access-Control-Allow-Origin"); got != "*" {
		t.Fatalf("CORS header = %q; want *", got)
	}

	var resp NewsResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	if resp.TotalArticles != 1 || len(resp.RawNews) != 1 {
		t.Fatalf("total = %d, raw = %d; want 1 article", resp.TotalArticles, len(resp.RawNews))
	}
	if resp.RawNews[0].RelevanceScore <= 0 {
		t.Fatal("admitted article has non-positive relevance score")
	}
	if len(resp.CategoriesFound) == 0 {
		t.Fatal("categories_found is empty")
	}
	if resp.FormattedNews == "" {
		t.Fatal("formatted_news is empty")
	}
}

func TestGetNewsNotFound(t *testing.T) {
	cases := []struct {
		name   string
		result types.SearchResult
	}{
		{"source error status", types.SearchResult{Status: "error", Message: "down"}},
		{"zero articles", types.SearchResult{Status: "ok"}},
		{"all filtered out", types.SearchResult{Status: "ok", Articles: []types.RawArticle{
			{Title: "bake sale", Description: "the annual village bake sale returns"},
		}}},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			router := newsRouter(&stubSource{result: c.result})

			w := httptest.NewRecorder()
			router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/news", nil))

			if w.Code != http.StatusNotFound {
				t.Fatalf("status = %d; want 404", w.Code)
			}
		})
	}
}

func TestGetNewsMissingCredential(t *testing.T) {
	router := newsRouter(nil)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/news", nil))

	if w.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d; want 500", w.Code)
	}
}

func TestGetNewsBadMaxArticles(t *testing.T) {
	router := newsRouter(&stubSource{result: types.SearchResult{Status: "ok"}})

	for _, v := range []string{"abc", "-3", "0"} {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/news?max_articles="+v, nil))
		if w.Code != http.StatusBadRequest {
			t.Fatalf("max_articles=%q: status = %d; want 400", v, w.Code)
		}
	}
}

func TestHealth(t *testing.T) {
	router := NewRouter(Deps{})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/health", nil))

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d; want 200", w.Code)
	}
}
