package domain

import (
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Capitalize upper-cases the first letter of s and lower-cases the rest.
func Capitalize(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return s
	}

	_, size := utf8.DecodeRuneInString(s)

	return cases.Upper(language.Und).String(s[:size]) + cases.Lower(language.Und).String(s[size:])
}

func FormatWeather(city string, w Weather) string {
	return fmt.Sprintf(weatherTemplate,
		Capitalize(city),
		w.Condition,
		formatFloat(w.TempC),
		w.Humidity,
		formatFloat(w.WindKph))
}

// FormatJoke renders a joke. It returns false if the joke type is not one the bot can display or the text for
// that type is missing.
func FormatJoke(j Joke) (string, bool) {
	switch j.Type {
	case SingleJoke:
		if strings.TrimSpace(j.Text) == "" {
			return "", false
		}
		return j.Text, true
	case TwoPartJoke:
		if strings.TrimSpace(j.Setup) == "" || strings.TrimSpace(j.Delivery) == "" {
			return "", false
		}
		return j.Setup + " - " + j.Delivery, true
	default:
		return "", false
	}
}

func FormatArticle(a Article) string {
	title := a.Title
	if title == "" {
		title = NewsUnknownTitle
	}

	description := a.Description
	if description == "" {
		description = NewsMissingDescription
	}

	return fmt.Sprintf(newsTemplate, title, description, a.URL)
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
