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
	DefaultJokeAPIURL   = "https://v2.jokeapi.dev"
	DefaultJokeCategory = "Any"

	// jokeAPINoMatch is JokeAPI's error code for "No matching joke found".
	jokeAPINoMatch = 106
)

// JokeAPI fetches a random joke from v2.jokeapi.dev.
type JokeAPI struct {
	http     httpGetter
	baseURL  string
	category string
}

func NewJokeAPI(baseURL, category string, timeout time.Duration) *JokeAPI {
	if baseURL == "" {
		baseURL = DefaultJokeAPIURL
	}

	if category == "" {
		category = DefaultJokeCategory
	}

	return &JokeAPI{
		http:     newHTTPGetter("jokeapi", timeout),
		baseURL:  strings.TrimSuffix(baseURL, "/"),
		category: category,
	}
}

type jokeAPIResponse struct {
	Error    bool   `json:"error"`
	Code     int    `json:"code"`
	Message  string `json:"message"`
	Type     string `json:"type"`
	Joke     string `json:"joke"`
	Setup    string `json:"setup"`
	Delivery string `json:"delivery"`
}

func (j *JokeAPI) Name() string {
	return j.http.name
}

// Random returns whatever joke JokeAPI hands out. Jokes of a type the bot cannot display are returned as-is and
// rejected by the caller.
func (j *JokeAPI) Random(ctx context.Context) (domain.Joke, error) {
	status, body, err := j.http.get(ctx, j.baseURL+"/joke/"+url.PathEscape(j.category), url.Values{})
	if err != nil {
		return domain.Joke{}, err
	}

	var result jokeAPIResponse
	decodeErr := json.Unmarshal(body, &result)

	if decodeErr == nil && result.Error {
		if result.Code == jokeAPINoMatch {
			return domain.Joke{}, j.http.fail(domain.FailureNotFound, fmt.Errorf("%w: %s", domain.ErrNotFound, result.Message))
		}

		if isSuccess(status) {
			status = 0
		}

		return domain.Joke{}, &domain.ProviderError{
			Provider:   j.Name(),
			Kind:       domain.FailureUpstream,
			StatusCode: status,
			Err:        fmt.Errorf("jokeapi error %d: %s", result.Code, result.Message),
		}
	}

	if !isSuccess(status) {
		return domain.Joke{}, j.http.failStatus(status, errors.New(http.StatusText(status)))
	}

	if decodeErr != nil {
		return domain.Joke{}, j.http.fail(domain.FailureUnexpected,
			fmt.Errorf("error unmarshalling jokeapi response: %w", decodeErr))
	}

	return domain.Joke{
		Type:     domain.JokeType(result.Type),
		Text:     result.Joke,
		Setup:    result.Setup,
		Delivery: result.Delivery,
	}, nil
}
