package postgres

import (
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func TestConstraintHelpers(t *testing.T) {
	t.Parallel()

	wrapped := func(code string) error {
		return fmt.Errorf("insert failed: %w", &pgconn.PgError{Code: code})
	}

	tests := []struct {
		name  string
		err   error
		check func(error) bool
		want  bool
	}{
		{name: "unique by code", err: wrapped(pgUniqueViolation), check: isUniqueConstraintViolation, want: true},
		{name: "unique by gorm", err: gorm.ErrDuplicatedKey, check: isUniqueConstraintViolation, want: true},
		{name: "foreign key", err: wrapped(pgForeignKeyViolation), check: isForeignKeyConstraintViolation, want: true},
		{name: "not null", err: wrapped(pgNotNullViolation), check: isNotNullConstraintViolation, want: true},
		{name: "check", err: wrapped(pgCheckViolation), check: isCheckConstraintViolation, want: true},
		{name: "exclusion", err: wrapped(pgExclusionViolation), check: isExclusionViolation, want: true},
		{name: "serialization", err: wrapped(pgSerializationFailure), check: isConcurrencyFailure, want: true},
		{name: "deadlock", err: wrapped(pgDeadlockDetected), check: isConcurrencyFailure, want: true},
		{name: "unique is not exclusion", err: wrapped(pgUniqueViolation), check: isExclusionViolation, want: false},
		{name: "plain error", err: fmt.Errorf("boom"), check: isConcurrencyFailure, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, tt.check(tt.err))
		})
	}
}
