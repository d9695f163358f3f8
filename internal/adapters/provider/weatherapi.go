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
	DefaultWeatherAPIURL = "http://api.weatherapi.com/v1"
	DefaultWeatherLang   = "fa"

	// weatherAPINoLocation is WeatherAPI's error code for "No matching location found".
	weatherAPINoLocation = 1006
)

// WeatherAPI queries the current conditions endpoint of weatherapi.com.
type WeatherAPI struct {
	http     httpGetter
	baseURL  string
	apiKey   string
	language string
}

func NewWeatherAPI(baseURL, apiKey, language string, timeout time.Duration) *WeatherAPI {
	if baseURL == "" {
		baseURL = DefaultWeatherAPIURL
	}

	if language == "" {
		language = DefaultWeatherLang
	}

	return &WeatherAPI{
		http:     newHTTPGetter("weatherapi", timeout),
		baseURL:  strings.TrimSuffix(baseURL, "/"),
		apiKey:   apiKey,
		language: language,
	}
}

type weatherAPIResponse struct {
	Current *struct {
		TempC     float64 `json:"temp_c"`
		Humidity  int     `json:"humidity"`
		WindKph   float64 `json:"wind_kph"`
		Condition struct {
			Text string `json:"text"`
		} `json:"condition"`
	} `json:"current"`
	Error *weatherAPIError `json:"error"`
}

type weatherAPIError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

func (w *WeatherAPI) Name() string {
	return w.http.name
}

func (w *WeatherAPI) Current(ctx context.Context, city string) (domain.Weather, error) {
	query := url.Values{}
	query.Set("key", w.apiKey)
	query.Set("q", city)
	query.Set("lang", w.language)

	status, body, err := w.http.get(ctx, w.baseURL+"/current.json", query)
	if err != nil {
		return domain.Weather{}, err
	}

	var result weatherAPIResponse
	decodeErr := json.Unmarshal(body, &result)

	if !isSuccess(status) {
		if decodeErr == nil && result.Error != nil {
			if result.Error.Code == weatherAPINoLocation {
				return domain.Weather{}, w.http.fail(domain.FailureNotFound,
					fmt.Errorf("%w: %s", domain.ErrNotFound, result.Error.Message))
			}

			return domain.Weather{}, w.http.failStatus(status,
				fmt.Errorf("weatherapi error %d: %s", result.Error.Code, result.Error.Message))
		}

		return domain.Weather{}, w.http.failStatus(status, errors.New(http.StatusText(status)))
	}

	if decodeErr != nil {
		return domain.Weather{}, w.http.fail(domain.FailureUnexpected,
			fmt.Errorf("error unmarshalling weatherapi response: %w", decodeErr))
	}

	if result.Current == nil {
		return domain.Weather{}, w.http.fail(domain.FailureNotFound, domain.ErrNotFound)
	}

	return domain.Weather{
		Condition: result.Current.Condition.Text,
		TempC:     result.Current.TempC,
		Humidity:  result.Current.Humidity,
		WindKph:   result.Current.WindKph,
	}, nil
}
