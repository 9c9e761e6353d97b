// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"strings"
	"testing"

	"github.com/MKhiriev/fitcoach/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_buildSelectUserQuery(t *testing.T) {
	query, args, err := buildSelectUserQuery("email", "a@b.c")
	require.NoError(t, err)

	require.Len(t, args, 1)
	assert.Equal(t, "a@b.c", args[0])

	assert.True(t, strings.HasPrefix(query, "SELECT id, username, email"))
	assert.Contains(t, query, "FROM users WHERE deleted_at IS NULL AND email = $1")
}

func Test_buildFindByResetTokenQuery(t *testing.T) {
	query, args, err := buildFindByResetTokenQuery("tok")
	require.NoError(t, err)

	assert.Equal(t, []any{"tok"}, args)
	assert.Contains(t, query, "password_reset_token = $1")
	assert.Contains(t, query, "password_reset_token_expiry > NOW()")
	assert.Contains(t, query, "deleted_at IS NULL")
}

func Test_buildUpdateProfileQuery(t *testing.T) {
	first, phone := "Alice", "+100"

	tests := []struct {
		name      string
		update    models.ProfileUpdate
		wantSet   string
		wantArgs  []any
		wantError bool
	}{
		{
			name:     "single field",
			update:   models.ProfileUpdate{FirstName: &first},
			wantSet:  "SET first_name = $1 WHERE",
			wantArgs: []any{"Alice", int64(3)},
		},
		{
			name:     "two fields",
			update:   models.ProfileUpdate{FirstName: &first, Phone: &phone},
			wantSet:  "SET first_name = $1, phone = $2 WHERE",
			wantArgs: []any{"Alice", "+100", int64(3)},
		},
		{
			name:      "empty update",
			update:    models.ProfileUpdate{},
			wantError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			query, args, err := buildUpdateProfileQuery(3, tt.update)
			if tt.wantError {
				assert.ErrorIs(t, err, ErrBuildingSQLQuery)
				return
			}

			require.NoError(t, err)
			assert.Contains(t, query, tt.wantSet)
			assert.Contains(t, query, "RETURNING id, username")
			assert.Equal(t, tt.wantArgs, args)
		})
	}
}

func Test_buildUpdateSubscriptionQuery_OnlyNonEmpty(t *testing.T) {
	query, args, err := buildUpdateSubscriptionQuery(2, models.SubscriptionChange{Status: models.StatusCancelled})
	require.NoError(t, err)

	assert.Contains(t, query, "SET subscription_status = $1 WHERE")
	assert.NotContains(t, query, "subscription_tier =")
	assert.Equal(t, []any{"cancelled", int64(2)}, args)

	_, _, err = buildUpdateSubscriptionQuery(2, models.SubscriptionChange{})
	assert.ErrorIs(t, err, ErrBuildingSQLQuery)
}

func Test_buildListMessagesQuery(t *testing.T) {
	query, args, err := buildListMessagesQuery(5, 0)
	require.NoError(t, err)

	assert.Equal(t, []any{int64(5)}, args)
	assert.NotContains(t, query, "LIMIT")
	assert.Contains(t, query, "ORDER BY created_at DESC, id DESC")
}
