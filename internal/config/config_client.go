package config

import (
	"fmt"
	"time"

	"github.com/MKhiriev/go-keyplace/internal/crypto"
)

// ClientApp holds client-side application settings.
type ClientApp struct {
	// LogLevel and LogFile configure the CLI logger.
	LogLevel string
	LogFile  string

	// VaultPassphrase unlocks the local agent key store.
	VaultPassphrase string
}

// ClientAdapter holds the transport used to reach the custodian.
type ClientAdapter struct {
	HTTPAddress    string
	GRPCAddress    string
	Transport      string
	RequestTimeout time.Duration
}

// ClientDB contains the local SQLite settings.
type ClientDB struct {
	DSN string
}

// ClientStorage groups client storage settings.
type ClientStorage struct {
	DB ClientDB
}

// ClientWorkers contains derivation pool settings.
type ClientWorkers struct {
	DeriveConcurrency int
}

// ClientConfig is the validated client view of [StructuredConfig].
type ClientConfig struct {
	App     ClientApp
	KDF     crypto.KDFParams
	Adapter ClientAdapter
	Storage ClientStorage
	Workers ClientWorkers
}

// GetClientConfig loads env, then the file at path (if any) and defaults,
// and maps them to a [ClientConfig]. The CLI parses its own flags, so
// none are read here.
func GetClientConfig(path string) (*ClientConfig, error) {
	b := newConfigBuilder().withEnv()
	if path == "" {
		b = b.withFile()
	} else {
		b = b.withFilePath(path)
	}

	cfg, err := b.withDefaults().build()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	return newClientConfig(cfg)
}

func newClientConfig(cfg *StructuredConfig) (*ClientConfig, error) {
	dsn := cfg.Storage.DB.DSN
	if dsn == "" {
		dsn = defaultClientDSN
	}

	clientCfg := &ClientConfig{
		App: ClientApp{
			LogLevel:        cfg.App.LogLevel,
			LogFile:         cfg.App.LogFile,
			VaultPassphrase: cfg.App.VaultPassphrase,
		},
		KDF: cfg.KDFParams(),
		Adapter: ClientAdapter{
			HTTPAddress:    cfg.Adapter.HTTPAddress,
			GRPCAddress:    cfg.Adapter.GRPCAddress,
			Transport:      cfg.Adapter.Transport,
			RequestTimeout: cfg.Adapter.RequestTimeout,
		},
		Storage: ClientStorage{
			DB: ClientDB{DSN: dsn},
		},
		Workers: ClientWorkers{DeriveConcurrency: cfg.Workers.DeriveConcurrency},
	}

	return clientCfg, clientCfg.validate()
}
