package persistence

import (
	"errors"
	"fmt"
	"testing"

	"github.com/delivery/backend/internal/domain/shared"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func TestMapPgError(t *testing.T) {
	plain := errors.New("connection reset by peer")

	tests := []struct {
		name string
		in   error
		want error
	}{
		{"nil", nil, nil},
		{"record not found", gorm.ErrRecordNotFound, shared.ErrNotFound},
		{"translated duplicate", gorm.ErrDuplicatedKey, shared.ErrAlreadyExists},
		{"translated foreign key", gorm.ErrForeignKeyViolated, shared.ErrConflict},
		{
			"raw unique violation",
			&pgconn.PgError{Code: pgerrcode.UniqueViolation, ConstraintName: "idx_addresses_equivalent"},
			shared.ErrAlreadyExists,
		},
		{
			"wrapped foreign key violation",
			fmt.Errorf("exec: %w", &pgconn.PgError{Code: pgerrcode.ForeignKeyViolation}),
			shared.ErrConflict,
		},
		{
			"check violation",
			&pgconn.PgError{Code: pgerrcode.CheckViolation, ConstraintName: "products_suggested_price_check"},
			shared.ErrInvalidInput,
		},
		{
			"numeric overflow",
			fmt.Errorf("update: %w", &pgconn.PgError{Code: pgerrcode.NumericValueOutOfRange, Message: "numeric field overflow"}),
			shared.ErrInvalidInput,
		},
		{
			"value too long",
			&pgconn.PgError{Code: pgerrcode.StringDataRightTruncationDataException, Message: "value too long for type character varying(255)"},
			shared.ErrInvalidInput,
		},
		{"other postgres error", &pgconn.PgError{Code: pgerrcode.SerializationFailure}, nil},
		{"unrelated error", plain, plain},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := MapPgError(tt.in)
			switch {
			case tt.in == nil:
				assert.NoError(t, got)
			case tt.want == nil:
				assert.Same(t, tt.in, got)
			default:
				assert.ErrorIs(t, got, tt.want)
			}
		})
	}
}
