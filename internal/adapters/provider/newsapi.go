package provider

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"iranscbot/internal/core/domain"
	"net/http"
	"net/url"
	"strings"
	"time"
)

const (
	DefaultNewsAPIURL = "https://newsapi.org/v2"
	DefaultNewsQuery  = "AI OR programming"

	// newsAPIRemoved marks articles NewsAPI has taken down but still lists.
	newsAPIRemoved = "[Removed]"
)

// NewsAPI searches newsapi.org for articles matching a fixed query.
type NewsAPI struct {
	http    httpGetter
	baseURL string
	apiKey  string
	query   string
}

func NewNewsAPI(baseURL, apiKey, query string, timeout time.Duration) *NewsAPI {
	if baseURL == "" {
		baseURL = DefaultNewsAPIURL
	}

	if query == "" {
		query = DefaultNewsQuery
	}

	return &NewsAPI{
		http:    newHTTPGetter("newsapi", timeout),
		baseURL: strings.TrimSuffix(baseURL, "/"),
		apiKey:  apiKey,
		query:   query,
	}
}

type newsAPIResponse struct {
	Status   string `json:"status"`
	Code     string `json:"code"`
	Message  string `json:"message"`
	Articles []struct {
		Title       string `json:"title"`
		Description string `json:"description"`
		URL         string `json:"url"`
	} `json:"articles"`
}

func (n *NewsAPI) Name() string {
	return n.http.name
}

func (n *NewsAPI) Articles(ctx context.Context) ([]domain.Article, error) {
	query := url.Values{}
	query.Set("q", n.query)
	query.Set("apiKey", n.apiKey)

	status, body, err := n.http.get(ctx, n.baseURL+"/everything", query)
	if err != nil {
		return nil, err
	}

	var result newsAPIResponse
	decodeErr := json.Unmarshal(body, &result)

	if !isSuccess(status) {
		if decodeErr == nil && result.Status == "error" {
			return nil, n.http.failStatus(status, fmt.Errorf("newsapi error %s: %s", result.Code, result.Message))
		}

		return nil, n.http.failStatus(status, errors.New(http.StatusText(status)))
	}

	if decodeErr != nil {
		return nil, n.http.fail(domain.FailureUnexpected, fmt.Errorf("error unmarshalling newsapi response: %w", decodeErr))
	}

	if result.Status == "error" {
		return nil, n.http.fail(domain.FailureUpstream, fmt.Errorf("newsapi error %s: %s", result.Code, result.Message))
	}

	articles := make([]domain.Article, 0, len(result.Articles))
	for _, a := range result.Articles {
		if a.Title == newsAPIRemoved {
			continue
		}

		articles = append(articles, domain.Article{
			Title:       a.Title,
			Description: a.Description,
			URL:         a.URL,
		})
	}

	return articles, nil
}
