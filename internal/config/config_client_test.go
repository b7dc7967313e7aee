package config

import (
	"testing"
	"time"

	"github.com/MKhiriev/go-keyplace/internal/crypto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetClientConfig_Defaults(t *testing.T) {
	// Arrange
	setEnvVars(t, map[string]string{"APP_VAULT_PASSPHRASE": "vault"})

	// Act
	cfg, err := GetClientConfig("")

	// Assert
	require.NoError(t, err)
	assert.Equal(t, defaultClientDSN, cfg.Storage.DB.DSN)
	assert.Equal(t, TransportHTTP, cfg.Adapter.Transport)
	assert.Equal(t, defaultAdapterAddress, cfg.Adapter.HTTPAddress)
	assert.Equal(t, crypto.DefaultKDFParams(), cfg.KDF)
	assert.Equal(t, defaultDeriveWorkers, cfg.Workers.DeriveConcurrency)
	assert.Equal(t, "vault", cfg.App.VaultPassphrase)
}

func TestGetClientConfig_FromFile(t *testing.T) {
	// Arrange
	setEnvVars(t, nil)
	p := writeConfigFile(t, "client.yml", `
app:
  vault_passphrase: from-file
kdf:
  n: 1024
  r: 8
  p: 1
storage:
  db:
    dsn: /tmp/agent.db
adapter:
  transport: grpc
  grpc_address: localhost:9090
  request_timeout: 3s
`)

	// Act
	cfg, err := GetClientConfig(p)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, "from-file", cfg.App.VaultPassphrase)
	assert.Equal(t, crypto.KDFParams{N: 1024, R: 8, P: 1}, cfg.KDF)
	assert.Equal(t, "/tmp/agent.db", cfg.Storage.DB.DSN)
	assert.Equal(t, TransportGRPC, cfg.Adapter.Transport)
	assert.Equal(t, 3*time.Second, cfg.Adapter.RequestTimeout)
}

func TestGetClientConfig_MissingVaultPassphrase(t *testing.T) {
	setEnvVars(t, nil)

	_, err := GetClientConfig("")
	assert.ErrorIs(t, err, ErrInvalidAppConfigs)
}

func TestClientConfig_Validate(t *testing.T) {
	valid := func() *ClientConfig {
		return &ClientConfig{
			App:     ClientApp{VaultPassphrase: "v"},
			Adapter: ClientAdapter{HTTPAddress: "http://x", Transport: TransportHTTP, RequestTimeout: time.Second},
			Storage: ClientStorage{DB: ClientDB{DSN: "a.db"}},
			Workers: ClientWorkers{DeriveConcurrency: 1},
		}
	}

	tests := []struct {
		name    string
		mutate  func(c *ClientConfig)
		wantErr error
	}{
		{"valid", func(*ClientConfig) {}, nil},
		{"no dsn", func(c *ClientConfig) { c.Storage.DB.DSN = "" }, ErrInvalidStorageConfigs},
		{"no http address", func(c *ClientConfig) { c.Adapter.HTTPAddress = "" }, ErrInvalidAdapterConfigs},
		{"grpc without address", func(c *ClientConfig) { c.Adapter.Transport = TransportGRPC }, ErrInvalidAdapterConfigs},
		{"no timeout", func(c *ClientConfig) { c.Adapter.RequestTimeout = 0 }, ErrInvalidAdapterConfigs},
		{"no workers", func(c *ClientConfig) { c.Workers.DeriveConcurrency = 0 }, ErrInvalidWorkerConfigs},
		{"no vault", func(c *ClientConfig) { c.App.VaultPassphrase = "" }, ErrInvalidAppConfigs},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := valid()
			tt.mutate(c)

			err := c.validate()
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}
