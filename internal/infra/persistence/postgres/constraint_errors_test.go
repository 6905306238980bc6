package postgres

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func TestIsUniqueConstraintViolation(t *testing.T) {
	assert.True(t, isUniqueConstraintViolation(gorm.ErrDuplicatedKey))
	assert.True(t, isUniqueConstraintViolation(errors.Wrap(gorm.ErrDuplicatedKey, "create")))
	assert.True(t, isUniqueConstraintViolation(errors.New(`ERROR: duplicate key value violates unique constraint "users_email_key" (SQLSTATE 23505)`)))
	assert.False(t, isUniqueConstraintViolation(errors.New("connection refused")))
}

func TestIsForeignKeyConstraintViolation(t *testing.T) {
	assert.True(t, isForeignKeyConstraintViolation(gorm.ErrForeignKeyViolated))
	assert.True(t, isForeignKeyConstraintViolation(errors.New(`insert or update on table "products" violates foreign key constraint "fk_category" (SQLSTATE 23503)`)))
	assert.False(t, isForeignKeyConstraintViolation(errors.New("timeout")))
}

func TestIsNotNullAndCheckViolation(t *testing.T) {
	assert.True(t, isNotNullConstraintViolation(errors.New(`null value in column "name" violates not-null constraint (SQLSTATE 23502)`)))
	assert.True(t, isCheckConstraintViolation(gorm.ErrCheckConstraintViolated))
	assert.True(t, isCheckConstraintViolation(errors.New(`violates check constraint "amount_positive" (SQLSTATE 23514)`)))
	assert.False(t, isCheckConstraintViolation(errors.New("boom")))
}

func TestConstraintName(t *testing.T) {
	err := errors.New(`ERROR: duplicate key value violates unique constraint "users_mobile_key" (SQLSTATE 23505)`)
	assert.Equal(t, "users_mobile_key", constraintName(err))
	assert.Equal(t, "", constraintName(errors.New("no constraint here")))
}
