package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// build merges sources in registration order with earlier sources winning,
// so an env value must survive a conflicting later source.
func TestConfigBuilder_EarlierSourceWins(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs,
		&StructuredConfig{Server: Server{HTTPAddress: "from-env:1111"}},
		&StructuredConfig{Server: Server{HTTPAddress: "from-flags:2222"}},
	)
	b.withDefaults()

	cfg, err := b.build()
	require.NoError(t, err)
	assert.Equal(t, "from-env:1111", cfg.Server.HTTPAddress)
}

func TestConfigBuilder_LaterSourceFillsGaps(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs,
		&StructuredConfig{Server: Server{HTTPAddress: "from-env:1111"}},
		&StructuredConfig{
			Storage: Storage{DB: DB{DSN: "sqlite://flags.db"}},
			Server:  Server{RequestTimeout: 42 * time.Second},
		},
	)
	b.withDefaults()

	cfg, err := b.build()
	require.NoError(t, err)
	assert.Equal(t, "from-env:1111", cfg.Server.HTTPAddress)
	assert.Equal(t, "sqlite://flags.db", cfg.Storage.DB.DSN)
	assert.Equal(t, 42*time.Second, cfg.Server.RequestTimeout)
}

func TestConfigBuilder_DefaultsAlone(t *testing.T) {
	cfg, err := newConfigBuilder().withDefaults().build()
	require.NoError(t, err)

	assert.Equal(t, DefaultHTTPAddress, cfg.Server.HTTPAddress)
	assert.Equal(t, DefaultDSN, cfg.Storage.DB.DSN)
	assert.Equal(t, DefaultRequestTimeout, cfg.Server.RequestTimeout)
	assert.Equal(t, DefaultTokenIssuer, cfg.Auth.TokenIssuer)
	assert.Equal(t, DefaultTokenDuration, cfg.Auth.TokenDuration)
	assert.Equal(t, DefaultClientRetries, cfg.Client.RetryCount)
}

func TestConfigBuilder_ValidationRejectsBadDSN(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs,
		&StructuredConfig{Storage: Storage{DB: DB{DSN: "mysql://nope"}}},
	)
	b.withDefaults()

	_, err := b.build()
	assert.ErrorIs(t, err, ErrInvalidStorageConfigs)
}

func TestStructuredConfig_Validate(t *testing.T) {
	valid := defaults()
	assert.NoError(t, valid.validate())

	t.Run("missing dsn", func(t *testing.T) {
		cfg := defaults()
		cfg.Storage.DB.DSN = ""
		assert.ErrorIs(t, cfg.validate(), ErrInvalidStorageConfigs)
	})

	t.Run("zero request timeout", func(t *testing.T) {
		cfg := defaults()
		cfg.Server.RequestTimeout = 0
		assert.ErrorIs(t, cfg.validate(), ErrInvalidServerConfigs)
	})

	t.Run("missing issuer", func(t *testing.T) {
		cfg := defaults()
		cfg.Auth.TokenIssuer = ""
		assert.ErrorIs(t, cfg.validate(), ErrInvalidAuthConfigs)
	})
}

func TestClientConfig_Validate(t *testing.T) {
	valid := &ClientConfig{
		BaseURL:        "http://localhost:8080",
		RequestTimeout: time.Second,
		RetryCount:     3,
	}
	assert.NoError(t, valid.validate())

	t.Run("missing base url", func(t *testing.T) {
		cfg := *valid
		cfg.BaseURL = ""
		assert.ErrorIs(t, cfg.validate(), ErrInvalidClientConfigs)
	})

	t.Run("negative retries", func(t *testing.T) {
		cfg := *valid
		cfg.RetryCount = -1
		assert.ErrorIs(t, cfg.validate(), ErrInvalidClientConfigs)
	})
}
