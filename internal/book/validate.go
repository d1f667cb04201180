package book

import (
	"encoding/json"
	"fmt"
	"io"
	"math"
	"time"
)

// Payload carries the decoded fields of a create or update request body.
// A nil pointer (or nil Genres) means the field was absent from the body.
type Payload struct {
	Title         *string
	Author        *string
	PublishedYear *int
	Genres        []string
	Stock         *int
}

const minPublishedYear = 1000

// DecodePayload reads a request body expected to hold a JSON object.
// A body that is not a JSON object is a validation failure, not a server
// error, so the second return value uses the same violation-list shape
// as ValidatePayload.
func DecodePayload(r io.Reader) (map[string]any, []string) {
	var fields map[string]any
	if err := json.NewDecoder(r).Decode(&fields); err != nil || fields == nil {
		return nil, []string{"request body must be a JSON object"}
	}
	return fields, nil
}

// ValidatePayload checks the decoded fields against the book constraints
// and collects every violation instead of stopping at the first one.
// With partial set, absent fields are skipped (PUT semantics); otherwise
// every field is required (POST semantics). Unknown fields are ignored.
func ValidatePayload(fields map[string]any, partial bool) (Payload, []string) {
	var p Payload
	var violations []string

	if s, errs := textField(fields, "title", partial); errs != nil {
		violations = append(violations, errs...)
	} else {
		p.Title = s
	}

	if s, errs := textField(fields, "author", partial); errs != nil {
		violations = append(violations, errs...)
	} else {
		p.Author = s
	}

	if raw, ok := fields["published_year"]; ok || !partial {
		year, isNum := raw.(float64)
		switch {
		case !ok || !isNum:
			violations = append(violations, "published_year must be a number")
		case year < minPublishedYear:
			violations = append(violations, fmt.Sprintf("published_year must not be less than %d", minPublishedYear))
		case year > float64(time.Now().Year()):
			violations = append(violations, fmt.Sprintf("published_year must not be greater than %d", time.Now().Year()))
		default:
			y := int(year)
			p.PublishedYear = &y
		}
	}

	if raw, ok := fields["genres"]; ok || !partial {
		if genres, errs := genresField(raw, ok); errs != nil {
			violations = append(violations, errs...)
		} else {
			p.Genres = genres
		}
	}

	if raw, ok := fields["stock"]; ok || !partial {
		stock, isNum := raw.(float64)
		switch {
		case !ok || !isNum:
			violations = append(violations, "stock must be a number")
		case stock != math.Trunc(stock):
			violations = append(violations, "stock must be an integer number")
		case stock < 0:
			violations = append(violations, "stock must not be less than 0")
		default:
			n := int(stock)
			p.Stock = &n
		}
	}

	if violations != nil {
		return Payload{}, violations
	}
	return p, nil
}

func textField(fields map[string]any, name string, partial bool) (*string, []string) {
	raw, ok := fields[name]
	if !ok {
		if partial {
			return nil, nil
		}
		return nil, []string{name + " must be a string"}
	}
	s, isStr := raw.(string)
	if !isStr {
		return nil, []string{name + " must be a string"}
	}
	if s == "" {
		return nil, []string{name + " should not be empty"}
	}
	return &s, nil
}

func genresField(raw any, present bool) ([]string, []string) {
	if !present {
		return nil, []string{"genres must be an array"}
	}
	arr, isArr := raw.([]any)
	if !isArr {
		return nil, []string{"genres must be an array"}
	}
	if len(arr) == 0 {
		return nil, []string{"genres should not be empty"}
	}
	genres := make([]string, 0, len(arr))
	for _, el := range arr {
		s, isStr := el.(string)
		if !isStr {
			return nil, []string{"each value in genres must be a string"}
		}
		if s == "" {
			return nil, []string{"each value in genres should not be empty"}
		}
		genres = append(genres, s)
	}
	return genres, nil
}
