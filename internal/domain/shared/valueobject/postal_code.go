package valueobject

import (
	"database/sql/driver"
	"errors"
	"fmt"
)

// Postal code errors
var (
	ErrPostalCodeLength = errors.New("postal code must have 8 digits, or 9 characters with a separator")
	ErrPostalCodeFormat = errors.New("postal code format is invalid")
)

const (
	postalCodeDigits    = 8
	postalCodeSeparated = 9
	postalCodeSepIndex  = 5
)

// PostalCode is a Brazilian CEP in its stored form: exactly eight digits.
type PostalCode string

// ParsePostalCode accepts "89229780" or "89229-780" and returns the
// eight digit form.
func ParsePostalCode(raw string) (PostalCode, error) {
	switch len(raw) {
	case postalCodeDigits:
		if !allDigits(raw) {
			return "", ErrPostalCodeFormat
		}
		return PostalCode(raw), nil
	case postalCodeSeparated:
		if raw[postalCodeSepIndex] != '-' {
			return "", ErrPostalCodeFormat
		}
		digits := raw[:postalCodeSepIndex] + raw[postalCodeSepIndex+1:]
		if !allDigits(digits) {
			return "", ErrPostalCodeFormat
		}
		return PostalCode(digits), nil
	default:
		return "", ErrPostalCodeLength
	}
}

func allDigits(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

// String returns the stored eight digit form.
func (p PostalCode) String() string {
	return string(p)
}

// Value implements driver.Valuer
func (p PostalCode) Value() (driver.Value, error) {
	return string(p), nil
}

// Scan implements sql.Scanner
func (p *PostalCode) Scan(value any) error {
	switch v := value.(type) {
	case nil:
		*p = ""
	case string:
		*p = PostalCode(v)
	case []byte:
		*p = PostalCode(v)
	default:
		return fmt.Errorf("cannot scan %T into PostalCode", value)
	}
	return nil
}
