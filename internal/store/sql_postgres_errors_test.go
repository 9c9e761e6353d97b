package store

import (
	"database/sql/driver"
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func TestPostgresErrorClassifier_Classify(t *testing.T) {
	c := NewPostgresErrorClassifier()

	tests := []struct {
		name string
		err  error
		want ErrorClassification
	}{
		{"nil", nil, NonRetryable},
		{"plain error", errors.New("boom"), NonRetryable},
		{"bad conn", fmt.Errorf("wrapped: %w", driver.ErrBadConn), Retryable},
		{"connection failure", pgError(pgerrcode.ConnectionFailure), Retryable},
		{"serialization failure", pgError(pgerrcode.SerializationFailure), Retryable},
		{"deadlock", pgError(pgerrcode.DeadlockDetected), Retryable},
		{"cannot connect now", pgError(pgerrcode.CannotConnectNow), Retryable},
		{"unique violation", pgError(pgerrcode.UniqueViolation), NonRetryable},
		{"check violation", pgError(pgerrcode.CheckViolation), NonRetryable},
		{"syntax error", pgError(pgerrcode.SyntaxError), NonRetryable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, c.Classify(tt.err))
		})
	}
}

func TestUniqueViolation(t *testing.T) {
	unique := func(constraint string) error {
		return &pgconn.PgError{Code: pgerrcode.UniqueViolation, ConstraintName: constraint}
	}

	assert.ErrorIs(t, uniqueViolation(unique("users_email_key")), ErrEmailAlreadyExists)
	assert.ErrorIs(t, uniqueViolation(unique("users_username_key")), ErrUsernameAlreadyExists)
	assert.ErrorIs(t, uniqueViolation(unique("users_supabase_id_key")), ErrIdentityAlreadyLinked)
	assert.ErrorIs(t, uniqueViolation(unique("other_key")), ErrAlreadyExists)
	assert.NoError(t, uniqueViolation(pgError(pgerrcode.CheckViolation)))
	assert.NoError(t, uniqueViolation(errors.New("boom")))
}
