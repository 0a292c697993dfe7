package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("JWT_SECRET", "s3cret")
	t.Setenv("CORS_ORIGIN", "http://localhost:3000")
	for _, key := range []string{"PORT", "USER_STORE", "USERS_FILE", "DATABASE_PATH", "LOG_LEVEL"} {
		t.Setenv(key, "")
	}

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "3333", cfg.Port)
	assert.Equal(t, ":3333", cfg.Addr())
	assert.Equal(t, StoreJSON, cfg.UserStore)
	assert.Equal(t, "mocks/users.json", cfg.UsersFile)
	assert.Equal(t, "kuhaku.db", cfg.DatabasePath)
	assert.Equal(t, "info", cfg.LogLevel)
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("JWT_SECRET", "s3cret")
	t.Setenv("CORS_ORIGIN", "https://app.kuhaku.com")
	t.Setenv("PORT", "8080")
	t.Setenv("USER_STORE", "sqlite")
	t.Setenv("DATABASE_PATH", "/var/lib/kuhaku/users.db")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.Addr())
	assert.Equal(t, StoreSQLite, cfg.UserStore)
	assert.Equal(t, "/var/lib/kuhaku/users.db", cfg.DatabasePath)
}

func TestLoad_RequiredValues(t *testing.T) {
	t.Run("missing secret", func(t *testing.T) {
		t.Setenv("JWT_SECRET", "")
		t.Setenv("CORS_ORIGIN", "http://localhost:3000")

		_, err := Load()
		assert.ErrorContains(t, err, "JWT_SECRET")
	})

	t.Run("missing origin", func(t *testing.T) {
		t.Setenv("JWT_SECRET", "s3cret")
		t.Setenv("CORS_ORIGIN", "")

		_, err := Load()
		assert.ErrorContains(t, err, "CORS_ORIGIN")
	})
}

func TestLoad_InvalidStore(t *testing.T) {
	t.Setenv("JWT_SECRET", "s3cret")
	t.Setenv("CORS_ORIGIN", "http://localhost:3000")
	t.Setenv("USER_STORE", "postgres")

	_, err := Load()
	assert.ErrorContains(t, err, "USER_STORE")
}
