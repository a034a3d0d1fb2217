package shared

import "errors"

// FailureKind classifies the ways a request can be refused.
type FailureKind int

const (
	// KindValidation is malformed or missing input.
	KindValidation FailureKind = iota + 1
	// KindNotFound is a referenced entity that does not exist.
	KindNotFound
	// KindConflict is a referential protection, e.g. an entity still in use.
	KindConflict
)

// String returns the wire code of the kind.
func (k FailureKind) String() string {
	switch k {
	case KindValidation:
		return "VALIDATION_ERROR"
	case KindNotFound:
		return "NOT_FOUND"
	case KindConflict:
		return "CONFLICT"
	default:
		return "UNKNOWN"
	}
}

// Failure is a request outcome that ends processing with a client error.
// Fields carries extra values the response body should expose.
type Failure struct {
	Kind    FailureKind
	Message string
	Fields  map[string]any
}

func (f *Failure) Error() string {
	return f.Message
}

// Unwrap exposes the matching sentinel so errors.Is(err, ErrNotFound) holds
// for not-found failures.
func (f *Failure) Unwrap() error {
	switch f.Kind {
	case KindValidation:
		return ErrInvalidInput
	case KindNotFound:
		return ErrNotFound
	case KindConflict:
		return ErrConflict
	default:
		return nil
	}
}

// With returns a copy of f carrying an extra response field.
func (f *Failure) With(key string, value any) *Failure {
	fields := make(map[string]any, len(f.Fields)+1)
	for k, v := range f.Fields {
		fields[k] = v
	}
	fields[key] = value
	return &Failure{Kind: f.Kind, Message: f.Message, Fields: fields}
}

// NewValidationFailure returns a KindValidation failure.
func NewValidationFailure(message string) *Failure {
	return &Failure{Kind: KindValidation, Message: message}
}

// NewNotFoundFailure returns a KindNotFound failure.
func NewNotFoundFailure(message string) *Failure {
	return &Failure{Kind: KindNotFound, Message: message}
}

// NewConflictFailure returns a KindConflict failure.
func NewConflictFailure(message string) *Failure {
	return &Failure{Kind: KindConflict, Message: message}
}

// AsFailure unwraps err into a *Failure when it is one.
func AsFailure(err error) (*Failure, bool) {
	var f *Failure
	if errors.As(err, &f) {
		return f, true
	}
	return nil, false
}

// IsKind reports whether err is a failure of kind k.
func IsKind(err error, k FailureKind) bool {
	f, ok := AsFailure(err)
	return ok && f.Kind == k
}
