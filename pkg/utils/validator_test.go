package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

type sampleSignUp struct {
	Username string `json:"username" validate:"required,max=150,username"`
	Email    string `json:"email" validate:"required,email,max=254"`
}

type sampleTaxonomy struct {
	Slug string `json:"slug" validate:"required,max=50,slug"`
	Year int    `json:"year" validate:"notfutureyear"`
}

func TestValidateStruct_Username(t *testing.T) {
	assert.Empty(t, ValidateStruct(sampleSignUp{Username: "john.doe+1@x", Email: "john@example.com"}))

	errs := ValidateStruct(sampleSignUp{Username: "me", Email: "john@example.com"})
	assert.Contains(t, errs, "username")

	errs = ValidateStruct(sampleSignUp{Username: "bad name!", Email: "not-an-email"})
	assert.Contains(t, errs, "username")
	assert.Equal(t, "Invalid email format", errs["email"])
}

func TestValidateStruct_SlugAndYear(t *testing.T) {
	assert.Empty(t, ValidateStruct(sampleTaxonomy{Slug: "sci-fi_2", Year: 1999}))

	errs := ValidateStruct(sampleTaxonomy{Slug: "sci fi", Year: time.Now().Year() + 1})
	assert.Contains(t, errs, "slug")
	assert.Equal(t, "Year cannot be in the future", errs["year"])
}

func TestFormatValidationErrors_IsSorted(t *testing.T) {
	got := FormatValidationErrors(map[string]string{"b": "two", "a": "one"})
	assert.Equal(t, "a: one; b: two", got)
}
