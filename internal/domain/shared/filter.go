package shared

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/samber/lo"
	"github.com/shopspring/decimal"
)

// MatchMode is how a filter value is compared with its column.
type MatchMode int

const (
	// MatchEqual compares with "=".
	MatchEqual MatchMode = iota
	// MatchContains is a case-insensitive substring match.
	MatchContains
	// MatchAtLeast compares with ">=".
	MatchAtLeast
	// MatchAtMost compares with "<=".
	MatchAtMost
)

// ValueKind is the type a raw query value is parsed into.
type ValueKind int

const (
	ValueText ValueKind = iota
	ValueID
	ValueDecimal
)

// FilterField declares one supported query key.
type FilterField struct {
	Key    string
	Column string
	Mode   MatchMode
	Kind   ValueKind
}

// FilterSpec enumerates every query key a list endpoint accepts. Keys not
// in the spec are ignored.
type FilterSpec []FilterField

// Condition is a parsed, ready to apply filter clause.
type Condition struct {
	Column string
	Mode   MatchMode
	Value  any
}

// Filter is the set of conditions requested by a caller. The zero value
// matches everything.
type Filter struct {
	Conditions []Condition
}

// Value returns the value for column and whether it was set.
func (f Filter) Value(column string) (any, bool) {
	c, ok := lo.Find(f.Conditions, func(c Condition) bool { return c.Column == column })
	return c.Value, ok
}

// Build parses the present keys of query into a Filter. Empty values are
// treated as absent. A value that cannot be parsed for its kind is a
// validation failure naming every offending key.
func (s FilterSpec) Build(query map[string]string) (Filter, error) {
	var (
		filter Filter
		bad    []string
	)
	for _, field := range s {
		raw, ok := query[field.Key]
		raw = strings.TrimSpace(raw)
		if !ok || raw == "" {
			continue
		}
		value, err := field.parse(raw)
		if err != nil {
			bad = append(bad, field.Key)
			continue
		}
		filter.Conditions = append(filter.Conditions, Condition{
			Column: field.Column,
			Mode:   field.Mode,
			Value:  value,
		})
	}
	if len(bad) > 0 {
		return Filter{}, NewValidationFailure(fmt.Sprintf(
			"Invalid value for query param(s): %s", strings.Join(bad, ", ")))
	}
	return filter, nil
}

func (f FilterField) parse(raw string) (any, error) {
	switch f.Kind {
	case ValueID:
		return strconv.ParseUint(raw, 10, 63)
	case ValueDecimal:
		return decimal.NewFromString(raw)
	default:
		return raw, nil
	}
}
