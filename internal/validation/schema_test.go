package validation_test

import (
	"strings"
	"testing"

	"storefront/internal/validation"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var productSchema = validation.NewSchema(
	validation.Field{Name: "title", Kind: validation.String, Required: true, Rules: "min=5,max=100"},
	validation.Field{Name: "description", Kind: validation.String, Rules: "min=5,max=500"},
	validation.Field{Name: "price", Kind: validation.Number, Required: true, Rules: "min=0",
		Messages: map[string]string{"min": "Price must be greater than 0"}},
)

var reviewSchema = validation.NewSchema(
	validation.Field{Name: "rating", Kind: validation.Integer, Required: true, Rules: "min=1,max=5"},
	validation.Field{Name: "comment", Kind: validation.String, Required: true, Rules: "min=5,max=500"},
)

func validationError(t *testing.T, err error) *validation.Error {
	t.Helper()
	require.Error(t, err)
	var verr *validation.Error
	require.ErrorAs(t, err, &verr)
	return verr
}

func TestSchema_ValidBody(t *testing.T) {
	values, err := productSchema.Validate([]byte(`{"title":"New Product","price":999}`))
	require.NoError(t, err)

	title, ok := values.String("title")
	assert.True(t, ok)
	assert.Equal(t, "New Product", title)

	price, ok := values.Float("price")
	assert.True(t, ok)
	assert.Equal(t, 999.0, price)

	_, ok = values.String("description")
	assert.False(t, ok, "absent optional field must not be reported as present")
	assert.Nil(t, values.StringPtr("description"))
}

func TestSchema_CoercesNumericStrings(t *testing.T) {
	values, err := productSchema.Validate([]byte(`{"title":"Coerced price","price":"12.5"}`))
	require.NoError(t, err)
	price, _ := values.Float("price")
	assert.Equal(t, 12.5, price)

	_, err = productSchema.Validate([]byte(`{"title":"Bad price","price":"abc"}`))
	verr := validationError(t, err)
	assert.Equal(t, []string{"price must be a number"}, verr.Violations)
}

func TestSchema_UnknownFieldsWin(t *testing.T) {
	_, err := productSchema.Validate([]byte(`{"title":"Valid Title","price":10,"extra":"x"}`))
	verr := validationError(t, err)
	assert.Equal(t, []string{"extra"}, verr.Unknown)
	assert.Equal(t, "Unknown properties: extra", verr.Message())

	// constraint violations are not reported next to unknown fields
	_, err = productSchema.Validate([]byte(`{"title":"x","zeta":1,"alpha":2}`))
	verr = validationError(t, err)
	assert.Equal(t, []string{"alpha", "zeta"}, verr.Details())
	assert.Empty(t, verr.Violations)
}

func TestSchema_AggregatesViolations(t *testing.T) {
	_, err := productSchema.Validate([]byte(`{"title":123,"price":-1}`))
	verr := validationError(t, err)
	assert.Equal(t, []string{"title must be a string", "Price must be greater than 0"}, verr.Violations)
	assert.Equal(t, "title must be a string, Price must be greater than 0", verr.Message())
}

func TestSchema_RequiredFields(t *testing.T) {
	_, err := productSchema.Validate(nil)
	verr := validationError(t, err)
	assert.Equal(t, []string{"title should not be empty", "price should not be empty"}, verr.Violations)

	_, err = productSchema.Validate([]byte(`{"title":null,"price":1}`))
	verr = validationError(t, err)
	assert.Equal(t, []string{"title should not be empty"}, verr.Violations)
}

func TestSchema_StringLengthBounds(t *testing.T) {
	tests := []struct {
		name    string
		comment string
		valid   bool
	}{
		{"four chars", "Good", false},
		{"five chars", "Great", true},
		{"five hundred chars", strings.Repeat("A", 500), true},
		{"five hundred one chars", strings.Repeat("A", 501), false},
		{"multibyte counts runes", "ñañañ", true},
		{"empty", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			body := `{"rating":3,"comment":"` + tt.comment + `"}`
			_, err := reviewSchema.Validate([]byte(body))
			if tt.valid {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
			}
		})
	}
}

func TestSchema_IntegerBounds(t *testing.T) {
	for _, body := range []string{
		`{"rating":0,"comment":"Rating too low"}`,
		`{"rating":6,"comment":"Rating too high"}`,
		`{"rating":3.5,"comment":"Fractional rating"}`,
		`{"rating":"five","comment":"Not a number"}`,
		`{"rating":true,"comment":"Boolean rating"}`,
	} {
		_, err := reviewSchema.Validate([]byte(body))
		assert.Error(t, err, body)
	}

	values, err := reviewSchema.Validate([]byte(`{"rating":"4","comment":"String rating"}`))
	require.NoError(t, err)
	rating, ok := values.Int("rating")
	assert.True(t, ok)
	assert.Equal(t, 4, rating)
}

func TestSchema_RuleMessages(t *testing.T) {
	_, err := reviewSchema.Validate([]byte(`{"rating":9,"comment":"Hey"}`))
	verr := validationError(t, err)
	assert.Equal(t, []string{
		"rating must not be greater than 5",
		"comment must be longer than or equal to 5 characters",
	}, verr.Violations)
}

func TestSchema_RejectsNonObjectBodies(t *testing.T) {
	for _, body := range []string{`[1,2]`, `null`, `"text"`, `{"title":`} {
		_, err := productSchema.Validate([]byte(body))
		verr := validationError(t, err)
		assert.Equal(t, "request body must be a JSON object", verr.Message(), body)
	}
}
