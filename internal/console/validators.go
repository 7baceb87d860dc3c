package console

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/dave-shawley/massive-octo-dangerzone/internal/identity"
)

// ValidationError reports user input that failed validation. The prompt
// loop recognizes it and re-asks instead of aborting.
type ValidationError struct {
	Message  string
	Cause    error
	Expected string
	Actual   string
}

func (e *ValidationError) Error() string {
	var rest []string
	if e.Cause != nil {
		rest = append(rest, "cause="+e.Cause.Error())
	}
	if e.Expected != "" {
		rest = append(rest, "expected="+e.Expected)
	}
	if e.Actual != "" {
		rest = append(rest, "actual="+e.Actual)
	}
	if len(rest) == 0 {
		return e.Message
	}
	return fmt.Sprintf("%s: %s", e.Message, strings.Join(rest, ","))
}

func (e *ValidationError) Unwrap() error {
	return e.Cause
}

// Required rejects empty input.
func Required(value string) (string, error) {
	if strings.TrimSpace(value) == "" {
		return "", &ValidationError{Message: "value required"}
	}
	return value, nil
}

// Age parses a floating point number of years. Input ending in "/12" is
// a month count (e.g. "3/12" for a three month old).
func Age(value string) (float64, error) {
	if years, err := strconv.ParseFloat(value, 64); err == nil {
		return years, nil
	}
	if i := strings.Index(value, "/12"); i >= 0 {
		months, err := strconv.ParseFloat(value[:i], 64)
		if err != nil {
			return 0, &ValidationError{Message: "invalid age", Cause: err, Actual: value}
		}
		return months / 12.0, nil
	}
	return 0, &ValidationError{Message: "invalid age", Expected: "number of years", Actual: value}
}

// Date returns a validator that parses input with the given time layout
// and keeps only the civil date.
func Date(layout string) func(string) (identity.Date, error) {
	return func(value string) (identity.Date, error) {
		t, err := time.Parse(layout, value)
		if err != nil {
			return identity.Date{}, &ValidationError{Message: "invalid date", Cause: err, Actual: value}
		}
		return identity.DateOf(t), nil
	}
}

// Gender canonicalizes a gender value to "male" or "female".
func Gender(value string) (string, error) {
	switch strings.ToLower(value) {
	case "m", "male":
		return "male", nil
	case "f", "female":
		return "female", nil
	}
	return "", &ValidationError{Message: "invalid gender", Expected: "male|female", Actual: value}
}

// YesNo parses a yes/no answer.
func YesNo(value string) (bool, error) {
	switch strings.ToLower(value) {
	case "y", "yes":
		return true, nil
	case "n", "no":
		return false, nil
	}
	return false, &ValidationError{Message: "invalid answer", Expected: "yes|no", Actual: value}
}

var validFamilyRelations = map[string]struct{}{
	"daughter":        {},
	"daughter in law": {},
	"head of house":   {},
	"husband":         {},
	"son":             {},
	"son in law":      {},
	"wife":            {},
}

var relationAbbreviations = map[string]string{
	"d/o": "daughter",
	"h/o": "husband",
	"s/o": "son",
	"w/o": "wife",
	"dil": "daughter in law",
	"sil": "son in law",
}

// FamilialRelation canonicalizes a relationship the way census records
// write them, accepting the usual abbreviations (d/o, w/o, sil, ...).
func FamilialRelation(value string) (string, error) {
	normalized := strings.Join(strings.Fields(
		strings.ReplaceAll(strings.ToLower(value), "-", " ")), " ")

	if expanded, ok := relationAbbreviations[normalized]; ok {
		normalized = expanded
	}
	if _, ok := validFamilyRelations[normalized]; !ok {
		return "", &ValidationError{
			Message:  "invalid relation",
			Expected: "familial relationship",
			Actual:   value,
		}
	}
	return normalized, nil
}
