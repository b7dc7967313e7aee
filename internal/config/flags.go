package config

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"net"
	"strconv"
)

// NetAddress holds a host and port. It implements [flag.Value].
type NetAddress struct {
	Host string
	Port int
}

// parseFlags parses the server flags in args.
//
// Flags:
//
//	-a                 HTTP listen address host:port
//	-grpc-address      gRPC listen address host:port
//	-d                 database DSN
//	-c / -config       JSON or YAML config file
//	-token-sign-key    session signing key
//	-token-issuer      session issuer
//	-token-duration    session lifetime (e.g. "15m")
//	-request-timeout   per request timeout (e.g. "30s")
//	-log-level         log level
//	-kdf-n/-kdf-r/-kdf-p scrypt cost
//	-rate-limit-rps    per account rate
//	-rate-limit-burst  per account burst
//	-derive-workers    derivation concurrency
func parseFlags(args []string) (*StructuredConfig, error) {
	var (
		httpAddress, grpcAddress NetAddress
		cfg                      StructuredConfig
	)

	fs := flag.NewFlagSet("keyplace", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.Var(&httpAddress, "a", "HTTP listen address host:port")
	fs.Var(&grpcAddress, "grpc-address", "gRPC listen address host:port")
	fs.StringVar(&cfg.Storage.DB.DSN, "d", "", "Database DSN")
	fs.StringVar(&cfg.FilePath, "c", "", "Config file path (JSON or YAML)")
	fs.StringVar(&cfg.FilePath, "config", "", "Config file path (alias)")
	fs.StringVar(&cfg.App.TokenSignKey, "token-sign-key", "", "Session signing key")
	fs.StringVar(&cfg.App.TokenIssuer, "token-issuer", "", "Session issuer")
	fs.DurationVar(&cfg.App.TokenDuration, "token-duration", 0, "Session lifetime (e.g. 15m)")
	fs.DurationVar(&cfg.Server.RequestTimeout, "request-timeout", 0, "Request timeout (e.g. 30s)")
	fs.StringVar(&cfg.App.LogLevel, "log-level", "", "Log level")
	fs.IntVar(&cfg.KDF.N, "kdf-n", 0, "scrypt N (power of two)")
	fs.IntVar(&cfg.KDF.R, "kdf-r", 0, "scrypt r")
	fs.IntVar(&cfg.KDF.P, "kdf-p", 0, "scrypt p")
	fs.Float64Var(&cfg.Server.RateLimitRPS, "rate-limit-rps", 0, "Per account authenticate/recover rate")
	fs.IntVar(&cfg.Server.RateLimitBurst, "rate-limit-burst", 0, "Per account burst")
	fs.IntVar(&cfg.Workers.DeriveConcurrency, "derive-workers", 0, "Parallel derivations")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	cfg.Server.HTTPAddress = httpAddress.String()
	cfg.Server.GRPCAddress = grpcAddress.String()
	return &cfg, nil
}

// String returns host:port, or "" when neither is set.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return net.JoinHostPort(a.Host, strconv.Itoa(a.Port))
}

// Set parses host:port. The host may be empty, "localhost" or an IP address.
func (a *NetAddress) Set(s string) error {
	host, portStr, err := net.SplitHostPort(s)
	if err != nil {
		return errors.New("need address in a form `host:port`")
	}

	port, err := strconv.Atoi(portStr)
	if err != nil {
		return err
	}

	if port < 1 || port > 65535 {
		return errors.New("port number must be in 1..65535")
	}

	if host != "" && host != "localhost" && net.ParseIP(host) == nil {
		return errors.New("incorrect IP-address provided")
	}

	a.Host = host
	a.Port = port
	return nil
}

var _ flag.Value = (*NetAddress)(nil)
