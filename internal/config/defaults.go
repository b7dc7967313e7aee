package config

import "time"

const (
	defaultTokenIssuer    = "keyplace-custodian"
	defaultTokenDuration  = 15 * time.Minute
	defaultLogLevel       = "info"
	defaultHTTPAddress    = "localhost:8080"
	defaultRequestTimeout = 30 * time.Second
	defaultRateLimitRPS   = 1
	defaultRateLimitBurst = 5
	defaultKDFN           = 1 << 15
	defaultKDFR           = 8
	defaultKDFP           = 1
	defaultDeriveWorkers  = 4
	defaultClientDSN      = "keyplace.db"
	defaultAdapterAddress = "http://localhost:8080"
)

func defaults() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			TokenIssuer:   defaultTokenIssuer,
			TokenDuration: defaultTokenDuration,
			LogLevel:      defaultLogLevel,
		},
		KDF: KDF{N: defaultKDFN, R: defaultKDFR, P: defaultKDFP},
		Server: Server{
			HTTPAddress:    defaultHTTPAddress,
			RequestTimeout: defaultRequestTimeout,
			RateLimitRPS:   defaultRateLimitRPS,
			RateLimitBurst: defaultRateLimitBurst,
		},
		Adapter: Adapter{
			HTTPAddress:    defaultAdapterAddress,
			Transport:      TransportHTTP,
			RequestTimeout: defaultRequestTimeout,
		},
		Workers: Workers{DeriveConcurrency: defaultDeriveWorkers},
	}
}
