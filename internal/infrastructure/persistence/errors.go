package persistence

import (
	"errors"
	"fmt"

	"github.com/delivery/backend/internal/domain/shared"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// MapPgError converts constraint violations and out of range column values
// into domain sentinels. Both
// translated gorm errors and raw driver errors are recognised; anything else
// is returned unchanged.
func MapPgError(err error) error {
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		return shared.ErrNotFound
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return fmt.Errorf("%w: %v", shared.ErrAlreadyExists, err)
	case errors.Is(err, gorm.ErrForeignKeyViolated):
		return fmt.Errorf("%w: %v", shared.ErrConflict, err)
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgerrcode.UniqueViolation:
			return fmt.Errorf("%w: constraint %s", shared.ErrAlreadyExists, pgErr.ConstraintName)
		case pgerrcode.ForeignKeyViolation, pgerrcode.RestrictViolation:
			return fmt.Errorf("%w: constraint %s", shared.ErrConflict, pgErr.ConstraintName)
		case pgerrcode.CheckViolation:
			return fmt.Errorf("%w: constraint %s", shared.ErrInvalidInput, pgErr.ConstraintName)
		case pgerrcode.NumericValueOutOfRange, pgerrcode.StringDataRightTruncationDataException:
			return fmt.Errorf("%w: %s", shared.ErrInvalidInput, pgErr.Message)
		}
	}
	return err
}
