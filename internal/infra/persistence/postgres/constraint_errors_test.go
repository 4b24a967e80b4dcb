package postgres

import (
	"fmt"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func TestConstraintClassification(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		unique     bool
		foreignKey bool
		notNull    bool
	}{
		{"gorm duplicate", errors.Wrap(gorm.ErrDuplicatedKey, "create"), true, false, false},
		{"pg duplicate", fmt.Errorf(`ERROR: duplicate key value violates unique constraint "plans_pkey" (SQLSTATE 23505)`), true, false, false},
		{"gorm foreign key", gorm.ErrForeignKeyViolated, false, true, false},
		{"pg foreign key", fmt.Errorf(`ERROR: insert or update on table "plan_routes" violates foreign key constraint (SQLSTATE 23503)`), false, true, false},
		{"pg not null", fmt.Errorf(`ERROR: null value in column "state" violates not-null constraint (SQLSTATE 23502)`), false, false, true},
		{"other", fmt.Errorf("connection reset"), false, false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.unique, isUniqueConstraintViolation(tt.err))
			assert.Equal(t, tt.foreignKey, isForeignKeyConstraintViolation(tt.err))
			assert.Equal(t, tt.notNull, isNotNullConstraintViolation(tt.err))
		})
	}
}
