package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidate(t *testing.T) {
	t.Run("missing DSN", func(t *testing.T) {
		cfg := &StructuredConfig{Auth: Auth{TokenSignKey: "secret"}}
		require.ErrorIs(t, cfg.validate(), ErrInvalidStorageConfigs)
	})

	t.Run("missing token sign key", func(t *testing.T) {
		cfg := &StructuredConfig{Storage: Storage{DB: DB{DSN: "inkwell.db"}}}
		require.ErrorIs(t, cfg.validate(), ErrInvalidAuthConfigs)
	})

	t.Run("complete config passes", func(t *testing.T) {
		cfg := &StructuredConfig{
			Auth:    Auth{TokenSignKey: "secret"},
			Storage: Storage{DB: DB{DSN: "inkwell.db"}},
		}
		require.NoError(t, cfg.validate())
	})
}

func TestParseJSON(t *testing.T) {
	t.Run("full file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.json")
		content := `{
			"auth": {
				"token_sign_key": "jwt_secret",
				"token_issuer": "inkwell",
				"session_duration": "12h",
				"login_rate_per_minute": 7,
				"login_burst": 2
			},
			"storage": {"db": {"dsn": "postgres://localhost/inkwell"}},
			"server": {"http_address": "0.0.0.0:9090", "request_timeout": "45s"}
		}`
		require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

		cfg, err := parseJSON(path)
		require.NoError(t, err)

		assert.Equal(t, "jwt_secret", cfg.Auth.TokenSignKey)
		assert.Equal(t, "inkwell", cfg.Auth.TokenIssuer)
		assert.Equal(t, 12*time.Hour, cfg.Auth.SessionDuration)
		assert.Equal(t, 7, cfg.Auth.LoginRatePerMinute)
		assert.Equal(t, 2, cfg.Auth.LoginBurst)
		assert.Equal(t, "postgres://localhost/inkwell", cfg.Storage.DB.DSN)
		assert.Equal(t, "0.0.0.0:9090", cfg.Server.HTTPAddress)
		assert.Equal(t, 45*time.Second, cfg.Server.RequestTimeout)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := parseJSON("/nonexistent/config.json")
		require.Error(t, err)
	})

	t.Run("malformed json", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.json")
		require.NoError(t, os.WriteFile(path, []byte("{oops"), 0o600))

		_, err := parseJSON(path)
		require.Error(t, err)
	})
}

// TestBuilderMerge verifies source priority: earlier sources win, defaults
// only fill what every other source left zero.
func TestBuilderMerge(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs,
		&StructuredConfig{
			Auth:    Auth{TokenSignKey: "from-env"},
			Storage: Storage{DB: DB{DSN: "inkwell.db"}},
		},
		&StructuredConfig{
			Auth:   Auth{TokenSignKey: "from-flags", TokenIssuer: "custom"},
			Server: Server{HTTPAddress: "localhost:9999"},
		},
	)
	b.withDefaults()

	cfg, err := b.build()
	require.NoError(t, err)

	assert.Equal(t, "from-env", cfg.Auth.TokenSignKey, "first source wins")
	assert.Equal(t, "custom", cfg.Auth.TokenIssuer, "later source fills the gap")
	assert.Equal(t, "localhost:9999", cfg.Server.HTTPAddress)
	assert.Equal(t, 24*time.Hour, cfg.Auth.SessionDuration, "default fills the rest")
	assert.Equal(t, 5, cfg.Auth.LoginRatePerMinute)
	assert.Equal(t, 30*time.Second, cfg.Server.RequestTimeout)
}

func TestBuildFailsWithoutMandatoryValues(t *testing.T) {
	b := newConfigBuilder()
	b.withDefaults()

	_, err := b.build()
	require.Error(t, err)
}
