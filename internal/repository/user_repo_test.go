package repository

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func TestTranslateUserErrorUsernameIndex(t *testing.T) {
	err := translateUserError(&pgconn.PgError{
		Code:           uniqueViolation,
		ConstraintName: "idx_users_username",
	})
	assert.ErrorIs(t, err, ErrUsernameTaken)
}

func TestTranslateUserErrorEmailIndex(t *testing.T) {
	err := translateUserError(&pgconn.PgError{
		Code:           uniqueViolation,
		ConstraintName: "idx_users_email",
	})
	assert.ErrorIs(t, err, ErrEmailTaken)
}

func TestTranslateUserErrorDisambiguatesByConstraint(t *testing.T) {
	// The decision must come from the constraint name, not the error
	// text: a duplicate-email violation mentions "email" only there.
	err := translateUserError(&pgconn.PgError{
		Code:           uniqueViolation,
		Message:        "duplicate key value violates unique constraint",
		ConstraintName: "idx_users_email",
	})
	assert.ErrorIs(t, err, ErrEmailTaken)
	assert.NotErrorIs(t, err, ErrUsernameTaken)
}

func TestTranslateUserErrorWrapped(t *testing.T) {
	wrapped := fmt.Errorf("create user: %w", &pgconn.PgError{
		Code:           uniqueViolation,
		ConstraintName: "idx_users_email",
	})
	assert.ErrorIs(t, translateUserError(wrapped), ErrEmailTaken)
}

func TestTranslateUserErrorPassthrough(t *testing.T) {
	// non-unique postgres failures and plain errors come back untouched
	notNull := &pgconn.PgError{Code: "23502", ColumnName: "email"}
	assert.Equal(t, error(notNull), translateUserError(notNull))

	plain := errors.New("connection reset")
	assert.Equal(t, plain, translateUserError(plain))
}
