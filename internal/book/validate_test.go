package book

import (
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validFields() map[string]any {
	return map[string]any{
		"title":          "Dune",
		"author":         "Herbert",
		"published_year": float64(1965),
		"genres":         []any{"Sci-Fi"},
		"stock":          float64(3),
	}
}

func TestValidatePayload_Valid(t *testing.T) {
	p, violations := ValidatePayload(validFields(), false)

	require.Nil(t, violations)
	assert.Equal(t, "Dune", *p.Title)
	assert.Equal(t, "Herbert", *p.Author)
	assert.Equal(t, 1965, *p.PublishedYear)
	assert.Equal(t, []string{"Sci-Fi"}, p.Genres)
	assert.Equal(t, 3, *p.Stock)
}

func TestValidatePayload_PublishedYear(t *testing.T) {
	currentYear := time.Now().Year()

	t.Run("999 rejected", func(t *testing.T) {
		fields := validFields()
		fields["published_year"] = float64(999)
		_, violations := ValidatePayload(fields, false)
		assert.Equal(t, []string{"published_year must not be less than 1000"}, violations)
	})

	t.Run("1000 accepted", func(t *testing.T) {
		fields := validFields()
		fields["published_year"] = float64(1000)
		_, violations := ValidatePayload(fields, false)
		assert.Nil(t, violations)
	})

	t.Run("current year accepted", func(t *testing.T) {
		fields := validFields()
		fields["published_year"] = float64(currentYear)
		_, violations := ValidatePayload(fields, false)
		assert.Nil(t, violations)
	})

	t.Run("next year rejected", func(t *testing.T) {
		fields := validFields()
		fields["published_year"] = float64(currentYear + 1)
		_, violations := ValidatePayload(fields, false)
		assert.Equal(t, []string{fmt.Sprintf("published_year must not be greater than %d", currentYear)}, violations)
	})

	t.Run("non-numeric rejected", func(t *testing.T) {
		fields := validFields()
		fields["published_year"] = "1965"
		_, violations := ValidatePayload(fields, false)
		assert.Equal(t, []string{"published_year must be a number"}, violations)
	})
}

func TestValidatePayload_Genres(t *testing.T) {
	t.Run("empty array rejected", func(t *testing.T) {
		fields := validFields()
		fields["genres"] = []any{}
		_, violations := ValidatePayload(fields, false)
		assert.Equal(t, []string{"genres should not be empty"}, violations)
	})

	t.Run("non-array rejected", func(t *testing.T) {
		fields := validFields()
		fields["genres"] = "Sci-Fi"
		_, violations := ValidatePayload(fields, false)
		assert.Equal(t, []string{"genres must be an array"}, violations)
	})

	t.Run("non-string element rejected", func(t *testing.T) {
		fields := validFields()
		fields["genres"] = []any{"Sci-Fi", float64(7)}
		_, violations := ValidatePayload(fields, false)
		assert.Equal(t, []string{"each value in genres must be a string"}, violations)
	})

	t.Run("empty element rejected", func(t *testing.T) {
		fields := validFields()
		fields["genres"] = []any{"Sci-Fi", ""}
		_, violations := ValidatePayload(fields, false)
		assert.Equal(t, []string{"each value in genres should not be empty"}, violations)
	})
}

func TestValidatePayload_Stock(t *testing.T) {
	t.Run("negative rejected", func(t *testing.T) {
		fields := validFields()
		fields["stock"] = float64(-1)
		_, violations := ValidatePayload(fields, false)
		assert.Equal(t, []string{"stock must not be less than 0"}, violations)
	})

	t.Run("zero accepted", func(t *testing.T) {
		fields := validFields()
		fields["stock"] = float64(0)
		p, violations := ValidatePayload(fields, false)
		require.Nil(t, violations)
		assert.Equal(t, 0, *p.Stock)
	})

	t.Run("fractional rejected", func(t *testing.T) {
		fields := validFields()
		fields["stock"] = 2.5
		_, violations := ValidatePayload(fields, false)
		assert.Equal(t, []string{"stock must be an integer number"}, violations)
	})
}

func TestValidatePayload_AllViolationsReported(t *testing.T) {
	_, violations := ValidatePayload(map[string]any{}, false)

	// one violation per field, in field order, not just the first failure
	assert.Equal(t, []string{
		"title must be a string",
		"author must be a string",
		"published_year must be a number",
		"genres must be an array",
		"stock must be a number",
	}, violations)
}

func TestValidatePayload_EmptyStrings(t *testing.T) {
	fields := validFields()
	fields["title"] = ""
	fields["author"] = ""
	_, violations := ValidatePayload(fields, false)

	assert.Equal(t, []string{
		"title should not be empty",
		"author should not be empty",
	}, violations)
}

func TestValidatePayload_Partial(t *testing.T) {
	t.Run("absent fields skipped", func(t *testing.T) {
		p, violations := ValidatePayload(map[string]any{"title": "Messiah"}, true)
		require.Nil(t, violations)
		assert.Equal(t, "Messiah", *p.Title)
		assert.Nil(t, p.Author)
		assert.Nil(t, p.PublishedYear)
		assert.Nil(t, p.Genres)
		assert.Nil(t, p.Stock)
	})

	t.Run("empty object is a no-op update", func(t *testing.T) {
		p, violations := ValidatePayload(map[string]any{}, true)
		require.Nil(t, violations)
		assert.Equal(t, Payload{}, p)
	})

	t.Run("present fields still validated", func(t *testing.T) {
		_, violations := ValidatePayload(map[string]any{"stock": float64(-3)}, true)
		assert.Equal(t, []string{"stock must not be less than 0"}, violations)
	})
}

func TestDecodePayload(t *testing.T) {
	t.Run("object", func(t *testing.T) {
		fields, violations := DecodePayload(strings.NewReader(`{"title":"Dune"}`))
		require.Nil(t, violations)
		assert.Equal(t, "Dune", fields["title"])
	})

	t.Run("malformed JSON", func(t *testing.T) {
		_, violations := DecodePayload(strings.NewReader(`{"title":`))
		assert.Equal(t, []string{"request body must be a JSON object"}, violations)
	})

	t.Run("non-object body", func(t *testing.T) {
		_, violations := DecodePayload(strings.NewReader(`[1,2,3]`))
		assert.Equal(t, []string{"request body must be a JSON object"}, violations)
	})

	t.Run("null body", func(t *testing.T) {
		_, violations := DecodePayload(strings.NewReader(`null`))
		assert.Equal(t, []string{"request body must be a JSON object"}, violations)
	})
}
