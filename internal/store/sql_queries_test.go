// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 DevFriend Authors

package store

import (
	"strings"
	"testing"

	"github.com/devfriend/devfriend/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_buildSelectSecretsQuery_SQLContainsParts(t *testing.T) {
	userID := int64(42)

	query, args, err := buildSelectSecretsQuery(userID, nil)
	require.NoError(t, err)

	// args checks
	require.Len(t, args, 1)
	require.Equal(t, userID, args[0])

	// query checks (contains parts)
	q := strings.ToLower(query)

	require.Contains(t, q, "select")
	require.Contains(t, q, "from secrets")
	require.Contains(t, q, "where")
	require.Contains(t, q, "user_id")

	// placeholder format should be $1 (Postgres)
	require.Contains(t, query, "$1")

	// stable order: oldest first, id breaks creation-time ties
	require.Contains(t, q, "order by created_at asc, id asc")

	// columns presence (subset / key columns)
	require.Contains(t, q, "encrypted_value")
	require.Contains(t, q, "service_type")
	require.Contains(t, q, "created_at")
	require.Contains(t, q, "updated_at")
}

func Test_buildSelectSecretsQuery_ServiceTypeFilter(t *testing.T) {
	tests := []struct {
		name         string
		serviceTypes []models.ServiceType
		checkQuery   func(t *testing.T, query string, args []any)
	}{
		{
			name:         "no filter when serviceTypes is nil",
			serviceTypes: nil,
			checkQuery: func(t *testing.T, query string, args []any) {
				q := strings.ToLower(query)

				whereIdx := strings.Index(q, "where")
				require.NotEqual(t, -1, whereIdx, "query should contain WHERE clause")
				wherePart := q[whereIdx:]
				require.NotContains(t, wherePart, "service_type",
					"WHERE clause should not filter by service_type when none given")

				require.Len(t, args, 1)
			},
		},
		{
			name:         "no filter when serviceTypes is empty slice",
			serviceTypes: []models.ServiceType{},
			checkQuery: func(t *testing.T, query string, args []any) {
				q := strings.ToLower(query)

				whereIdx := strings.Index(q, "where")
				wherePart := q[whereIdx:]
				require.NotContains(t, wherePart, "service_type")

				require.Len(t, args, 1)
			},
		},
		{
			name:         "single service type",
			serviceTypes: []models.ServiceType{models.ServiceTypeGitHub},
			checkQuery: func(t *testing.T, query string, args []any) {
				q := strings.ToLower(query)

				whereIdx := strings.Index(q, "where")
				wherePart := q[whereIdx:]
				require.Contains(t, wherePart, "service_type")

				require.Contains(t, query, "$2")

				require.Len(t, args, 2)
				require.Equal(t, models.ServiceTypeGitHub, args[1])
			},
		},
		{
			name:         "family lookup uses IN over both names",
			serviceTypes: []models.ServiceType{models.ServiceTypeGmail, "email"},
			checkQuery: func(t *testing.T, query string, args []any) {
				// squirrel generates IN ($2,$3) for a slice.
				require.Contains(t, query, "$2")
				require.Contains(t, query, "$3")

				require.Len(t, args, 3)
				require.Equal(t, models.ServiceTypeGmail, args[1])
				require.Equal(t, models.ServiceType("email"), args[2])
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			query, args, err := buildSelectSecretsQuery(42, tt.serviceTypes)

			require.NoError(t, err)
			require.NotEmpty(t, query)
			require.NotNil(t, args)

			tt.checkQuery(t, query, args)
		})
	}
}

func Test_buildSelectSecretQuery_SQLContainsParts(t *testing.T) {
	query, args, err := buildSelectSecretQuery(42, 7)
	require.NoError(t, err)

	q := strings.ToLower(query)

	require.Contains(t, q, "select")
	require.Contains(t, q, "from secrets")
	require.Contains(t, q, "where")
	require.Contains(t, q, "id")
	require.Contains(t, q, "user_id")

	require.Contains(t, query, "$1")
	require.Contains(t, query, "$2")

	// both filters present regardless of map iteration order
	require.Len(t, args, 2)
	assert.ElementsMatch(t, []any{int64(42), int64(7)}, args)
}

func Test_buildUpdateSecretQuery_SQLContainsParts(t *testing.T) {
	name := "renamed"
	value := "new-blob"

	tests := []struct {
		name           string
		secretName     *string
		encryptedValue *string
		checkQuery     func(t *testing.T, query string, args []any)
	}{
		{
			name:           "no optional fields still refreshes updated_at",
			secretName:     nil,
			encryptedValue: nil,
			checkQuery: func(t *testing.T, query string, args []any) {
				q := strings.ToLower(query)

				require.Contains(t, q, "update secrets")
				require.Contains(t, q, "updated_at = now()")
				require.Contains(t, q, "returning")

				require.NotContains(t, q, "name = $")
				require.NotContains(t, q, "encrypted_value = $")

				// args: id + user_id only
				require.Len(t, args, 2)
			},
		},
		{
			name:           "name only",
			secretName:     &name,
			encryptedValue: nil,
			checkQuery: func(t *testing.T, query string, args []any) {
				q := strings.ToLower(query)

				require.Contains(t, q, "name = $1")
				require.NotContains(t, q, "encrypted_value = $")

				require.Len(t, args, 3)
				require.Equal(t, "renamed", args[0])
			},
		},
		{
			name:           "name and encrypted value",
			secretName:     &name,
			encryptedValue: &value,
			checkQuery: func(t *testing.T, query string, args []any) {
				q := strings.ToLower(query)

				require.Contains(t, q, "name = $1")
				require.Contains(t, q, "encrypted_value = $2")

				require.Len(t, args, 4)
				require.Equal(t, "renamed", args[0])
				require.Equal(t, "new-blob", args[1])
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			query, args, err := buildUpdateSecretQuery(42, 7, tt.secretName, tt.encryptedValue)

			require.NoError(t, err)
			require.NotEmpty(t, query)
			require.NotNil(t, args)

			tt.checkQuery(t, query, args)
		})
	}
}

func Test_buildSelectIntegrationsQuery_SQLContainsParts(t *testing.T) {
	query, args, err := buildSelectIntegrationsQuery(42, []models.ServiceType{models.ServiceTypeSlack})
	require.NoError(t, err)

	q := strings.ToLower(query)

	require.Contains(t, q, "from integrations")
	require.Contains(t, q, "user_id")
	require.Contains(t, q, "service_type")
	require.Contains(t, q, "order by created_at asc, id asc")

	// key columns
	require.Contains(t, q, "secret_id")
	require.Contains(t, q, "status")
	require.Contains(t, q, "config")

	require.Len(t, args, 2)
	require.Equal(t, int64(42), args[0])
	require.Equal(t, models.ServiceTypeSlack, args[1])
}

func Test_buildSelectIntegrationsByStatusQuery_SQLContainsParts(t *testing.T) {
	query, args, err := buildSelectIntegrationsByStatusQuery(models.StatusConnected)
	require.NoError(t, err)

	q := strings.ToLower(query)

	require.Contains(t, q, "from integrations")
	require.Contains(t, q, "status")
	require.Contains(t, q, "order by updated_at asc")

	require.Len(t, args, 1)
	require.Equal(t, models.StatusConnected, args[0])
}

func Test_buildUpdateIntegrationQuery_SQLContainsParts(t *testing.T) {
	secretID := int64(9)
	status := models.StatusConnected
	config := models.IntegrationConfig{"email_address": "a@b.c"}

	tests := []struct {
		name       string
		update     IntegrationUpdate
		checkQuery func(t *testing.T, query string, args []any)
	}{
		{
			name:   "status only",
			update: IntegrationUpdate{ID: 7, UserID: 42, Status: &status},
			checkQuery: func(t *testing.T, query string, args []any) {
				q := strings.ToLower(query)

				require.Contains(t, q, "update integrations")
				require.Contains(t, q, "status = $1")
				require.Contains(t, q, "updated_at = now()")
				require.Contains(t, q, "returning")

				require.NotContains(t, q, "secret_id = $")
				require.NotContains(t, q, "config = $")

				require.Len(t, args, 3)
				require.Equal(t, models.StatusConnected, args[0])
			},
		},
		{
			name:   "set secret and config",
			update: IntegrationUpdate{ID: 7, UserID: 42, SecretID: &secretID, Config: config},
			checkQuery: func(t *testing.T, query string, args []any) {
				q := strings.ToLower(query)

				require.Contains(t, q, "secret_id = $1")
				require.Contains(t, q, "config = $2")

				require.Len(t, args, 4)
				require.Equal(t, int64(9), args[0])
			},
		},
		{
			name:   "clear secret wins over set",
			update: IntegrationUpdate{ID: 7, UserID: 42, SecretID: &secretID, ClearSecretID: true},
			checkQuery: func(t *testing.T, query string, args []any) {
				q := strings.ToLower(query)

				// squirrel renders a nil Set as a literal NULL, no placeholder
				require.Contains(t, q, "secret_id = null")

				// args: id + user_id only
				require.Len(t, args, 2)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			query, args, err := buildUpdateIntegrationQuery(tt.update)

			require.NoError(t, err)
			require.NotEmpty(t, query)
			require.NotNil(t, args)

			tt.checkQuery(t, query, args)
		})
	}
}
