package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// fileConfig is the on-disk layout shared by JSON and YAML files.
type fileConfig struct {
	App struct {
		TokenSignKey    string   `json:"token_sign_key" yaml:"token_sign_key"`
		TokenIssuer     string   `json:"token_issuer" yaml:"token_issuer"`
		TokenDuration   Duration `json:"token_duration" yaml:"token_duration"`
		LogLevel        string   `json:"log_level" yaml:"log_level"`
		LogFile         string   `json:"log_file" yaml:"log_file"`
		VaultPassphrase string   `json:"vault_passphrase" yaml:"vault_passphrase"`
	} `json:"app" yaml:"app"`

	KDF struct {
		N int `json:"n" yaml:"n"`
		R int `json:"r" yaml:"r"`
		P int `json:"p" yaml:"p"`
	} `json:"kdf" yaml:"kdf"`

	Storage struct {
		DB struct {
			DSN string `json:"dsn" yaml:"dsn"`
		} `json:"db" yaml:"db"`
	} `json:"storage" yaml:"storage"`

	Server struct {
		HTTPAddress    string   `json:"http_address" yaml:"http_address"`
		GRPCAddress    string   `json:"grpc_address" yaml:"grpc_address"`
		RequestTimeout Duration `json:"request_timeout" yaml:"request_timeout"`
		RateLimitRPS   float64  `json:"rate_limit_rps" yaml:"rate_limit_rps"`
		RateLimitBurst int      `json:"rate_limit_burst" yaml:"rate_limit_burst"`
	} `json:"server" yaml:"server"`

	Adapter struct {
		HTTPAddress    string   `json:"http_address" yaml:"http_address"`
		GRPCAddress    string   `json:"grpc_address" yaml:"grpc_address"`
		Transport      string   `json:"transport" yaml:"transport"`
		RequestTimeout Duration `json:"request_timeout" yaml:"request_timeout"`
	} `json:"adapter" yaml:"adapter"`

	Workers struct {
		DeriveConcurrency int `json:"derive_concurrency" yaml:"derive_concurrency"`
	} `json:"workers" yaml:"workers"`
}

// parseFile reads a JSON file, or a YAML file when the extension is .yaml
// or .yml.
func parseFile(path string) (*StructuredConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("error reading config file: %w", err)
	}

	var fc fileConfig
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		if err = yaml.Unmarshal(data, &fc); err != nil {
			return nil, fmt.Errorf("error decoding yaml configs: %w", err)
		}
	default:
		if err = json.Unmarshal(data, &fc); err != nil {
			return nil, fmt.Errorf("error decoding json configs: %w", err)
		}
	}

	return fc.toStructured(), nil
}

func (fc *fileConfig) toStructured() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			TokenSignKey:    fc.App.TokenSignKey,
			TokenIssuer:     fc.App.TokenIssuer,
			TokenDuration:   time.Duration(fc.App.TokenDuration),
			LogLevel:        fc.App.LogLevel,
			LogFile:         fc.App.LogFile,
			VaultPassphrase: fc.App.VaultPassphrase,
		},
		KDF: KDF{N: fc.KDF.N, R: fc.KDF.R, P: fc.KDF.P},
		Storage: Storage{
			DB: DB{DSN: fc.Storage.DB.DSN},
		},
		Server: Server{
			HTTPAddress:    fc.Server.HTTPAddress,
			GRPCAddress:    fc.Server.GRPCAddress,
			RequestTimeout: time.Duration(fc.Server.RequestTimeout),
			RateLimitRPS:   fc.Server.RateLimitRPS,
			RateLimitBurst: fc.Server.RateLimitBurst,
		},
		Adapter: Adapter{
			HTTPAddress:    fc.Adapter.HTTPAddress,
			GRPCAddress:    fc.Adapter.GRPCAddress,
			Transport:      fc.Adapter.Transport,
			RequestTimeout: time.Duration(fc.Adapter.RequestTimeout),
		},
		Workers: Workers{DeriveConcurrency: fc.Workers.DeriveConcurrency},
	}
}

// Duration decodes from "1h"-style strings or integer nanoseconds.
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v any
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return fmt.Errorf("invalid duration %s", string(b))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}

// UnmarshalYAML implements [yaml.Unmarshaler].
func (d *Duration) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.ScalarNode {
		return fmt.Errorf("invalid duration at line %d", node.Line)
	}
	if node.Tag == "!!int" {
		var n int64
		if err := node.Decode(&n); err != nil {
			return err
		}
		*d = Duration(time.Duration(n))
		return nil
	}
	tmp, err := time.ParseDuration(node.Value)
	if err != nil {
		return err
	}
	*d = Duration(tmp)
	return nil
}
