// Package validation holds the field validators shared by the request
// handlers. Validators take raw request values, never touch storage, and
// return either the normalized value or a validation failure.
package validation

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/samber/lo"
	"github.com/shopspring/decimal"
	"golang.org/x/text/unicode/norm"

	"github.com/delivery/backend/internal/domain/shared"
	"github.com/delivery/backend/internal/domain/shared/valueobject"
)

// Param is a raw identifier taken from the request path or query.
type Param struct {
	Label string
	Raw   string
}

// NumericIDs parses every param as an unsigned integer that fits a BIGINT
// key. All offending params are reported in a single failure.
func NumericIDs(params ...Param) ([]uint64, error) {
	ids := make([]uint64, len(params))
	var bad []string
	for i, p := range params {
		id, err := strconv.ParseUint(strings.TrimSpace(p.Raw), 10, 63)
		if err != nil {
			bad = append(bad, p.Label)
			continue
		}
		ids[i] = id
	}
	if len(bad) > 0 {
		return nil, shared.NewValidationFailure(fmt.Sprintf(
			"A numeric id is required for %s.", strings.Join(bad, " and ")))
	}
	return ids, nil
}

// NumericID is NumericIDs for a single param.
func NumericID(label, raw string) (uint64, error) {
	ids, err := NumericIDs(Param{Label: label, Raw: raw})
	if err != nil {
		return 0, err
	}
	return ids[0], nil
}

// RequireKeys checks that body has every key before any value is inspected.
func RequireKeys(body map[string]any, keys ...string) error {
	missing := lo.Filter(keys, func(k string, _ int) bool {
		_, ok := body[k]
		return !ok
	})
	if len(missing) == 0 {
		return nil
	}
	quoted := lo.Map(keys, func(k string, _ int) string { return "'" + k + "'" })
	return shared.NewValidationFailure(fmt.Sprintf(
		"The %s params are required in the req body", joinList(quoted)))
}

// joinList renders ["a","b","c"] as "a, b and c".
func joinList(items []string) string {
	switch len(items) {
	case 0:
		return ""
	case 1:
		return items[0]
	default:
		return strings.Join(items[:len(items)-1], ", ") + " and " + items[len(items)-1]
	}
}

// Column widths, in characters.
const (
	MaxStreetLen     = 255
	MaxComplementLen = 255
	MaxNameLen       = 200
)

// Price bounds of a NUMERIC(12,2) column.
const priceScale = 2

var priceCeiling = decimal.New(1, 10)

// Street accepts a non-empty string and returns it trimmed and NFC normalized.
func Street(v any) (string, error) {
	return nonEmptyText("street", v, MaxStreetLen)
}

// Text accepts any string up to maxLen characters, including an empty one.
func Text(field string, v any, maxLen int) (string, error) {
	s, ok := v.(string)
	if !ok {
		return "", shared.NewValidationFailure(fmt.Sprintf("The '%s' param must be a string", field))
	}
	s = norm.NFC.String(strings.TrimSpace(s))
	if utf8.RuneCountInString(s) > maxLen {
		return "", shared.NewValidationFailure(fmt.Sprintf(
			"The '%s' param must be at most %d characters", field, maxLen))
	}
	return s, nil
}

// Name accepts a non-empty string of at most MaxNameLen characters.
func Name(field string, v any) (string, error) {
	return nonEmptyText(field, v, MaxNameLen)
}

func nonEmptyText(field string, v any, maxLen int) (string, error) {
	s, err := Text(field, v, maxLen)
	if err != nil {
		return "", err
	}
	if s == "" {
		return "", shared.NewValidationFailure(fmt.Sprintf("The '%s' param cannot be empty", field))
	}
	return s, nil
}

// HouseNumber accepts JSON numbers and numeric strings holding a positive
// integer.
func HouseNumber(v any) (int, error) {
	d, ok := toDecimal(v)
	if !ok {
		return 0, shared.NewValidationFailure("The 'number' param must be a number")
	}
	if !d.IsInteger() || !d.IsPositive() || d.GreaterThan(decimal.NewFromInt(math.MaxInt32)) {
		return 0, shared.NewValidationFailure("The 'number' param must be a positive integer")
	}
	return int(d.IntPart()), nil
}

// PostalCode accepts "89229780" or "89229-780" and returns the eight digit form.
func PostalCode(v any) (valueobject.PostalCode, error) {
	s, ok := v.(string)
	if !ok {
		return "", shared.NewValidationFailure("The 'cep' param must be a string")
	}
	pc, err := valueobject.ParsePostalCode(s)
	switch {
	case err == nil:
		return pc, nil
	case errors.Is(err, valueobject.ErrPostalCodeLength):
		return "", shared.NewValidationFailure("The 'cep' param is invalid")
	default:
		return "", shared.NewValidationFailure("The 'cep' param format is invalid")
	}
}

// Price accepts a JSON number or numeric string strictly greater than zero,
// with at most two decimal places and below 10^10.
func Price(field string, v any) (decimal.Decimal, error) {
	if v == nil {
		return decimal.Zero, shared.NewValidationFailure(fmt.Sprintf("The '%s' param is required", field))
	}
	d, ok := toDecimal(v)
	if !ok {
		return decimal.Zero, shared.NewValidationFailure(fmt.Sprintf("The '%s' param must be a number", field))
	}
	if !d.IsPositive() {
		return decimal.Zero, shared.NewValidationFailure(fmt.Sprintf("The '%s' param must be greater than zero", field))
	}
	if !d.Truncate(priceScale).Equal(d) {
		return decimal.Zero, shared.NewValidationFailure(fmt.Sprintf(
			"The '%s' param must have at most %d decimal places", field, priceScale))
	}
	if d.GreaterThanOrEqual(priceCeiling) {
		return decimal.Zero, shared.NewValidationFailure(fmt.Sprintf(
			"The '%s' param must be less than %s", field, priceCeiling.String()))
	}
	return d, nil
}

// toDecimal converts the numeric shapes a JSON body can carry.
func toDecimal(v any) (decimal.Decimal, bool) {
	switch n := v.(type) {
	case json.Number:
		d, err := decimal.NewFromString(n.String())
		return d, err == nil
	case float64:
		if math.IsNaN(n) || math.IsInf(n, 0) {
			return decimal.Zero, false
		}
		return decimal.NewFromFloat(n), true
	case int:
		return decimal.NewFromInt(int64(n)), true
	case int64:
		return decimal.NewFromInt(n), true
	case string:
		d, err := decimal.NewFromString(strings.TrimSpace(n))
		return d, err == nil
	default:
		return decimal.Zero, false
	}
}
