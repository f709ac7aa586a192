package postgres

import (
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func TestConstraintViolations(t *testing.T) {
	pgErr := func(code string) error {
		return errors.Wrap(&pgconn.PgError{Code: code, Message: "violation"}, "insert")
	}

	tests := []struct {
		name                                  string
		err                                   error
		unique, foreignKey, check, notNullErr bool
	}{
		{name: "translated duplicate", err: gorm.ErrDuplicatedKey, unique: true},
		{name: "raw unique", err: pgErr("23505"), unique: true},
		{name: "translated foreign key", err: gorm.ErrForeignKeyViolated, foreignKey: true},
		{name: "raw foreign key", err: pgErr("23503"), foreignKey: true},
		{name: "raw check", err: pgErr("23514"), check: true},
		{name: "raw not null", err: pgErr("23502"), notNullErr: true},
		{name: "unrelated", err: errors.New("connection reset")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.unique, isUniqueConstraintViolation(tt.err))
			assert.Equal(t, tt.foreignKey, isForeignKeyConstraintViolation(tt.err))
			assert.Equal(t, tt.check, isCheckConstraintViolation(tt.err))
			assert.Equal(t, tt.notNullErr, isNotNullConstraintViolation(tt.err))
		})
	}
}
