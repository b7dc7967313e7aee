package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-keyplace/internal/adapter"
	"github.com/MKhiriev/go-keyplace/internal/client"
	"github.com/MKhiriev/go-keyplace/internal/config"
	"github.com/MKhiriev/go-keyplace/internal/crypto"
	"github.com/MKhiriev/go-keyplace/internal/logger"
	"github.com/MKhiriev/go-keyplace/internal/service"
	"github.com/MKhiriev/go-keyplace/internal/store"
	"github.com/MKhiriev/go-keyplace/internal/workers"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	configPath := flag.String("config", "", "path to a JSON or YAML config file")
	showVersion := flag.Bool("version", false, "print build info and exit")
	flag.Parse()

	if *showVersion {
		printBuildInfo()
		return
	}

	if err := run(*configPath, flag.Args()); err != nil {
		fmt.Fprintln(os.Stderr, crypto.HostError(err))
		os.Exit(1)
	}
}

func run(configPath string, args []string) error {
	cfg, err := config.GetClientConfig(configPath)
	if err != nil {
		return err
	}

	log := logger.NewClientLogger("keyplace-cli", cfg.App.LogFile).WithLevel(cfg.App.LogLevel)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	custodian, err := newCustodianAdapter(cfg.Adapter, log)
	if err != nil {
		return err
	}
	defer custodian.Close()

	localStorage, err := store.NewClientStorages(ctx, cfg.Storage, log)
	if err != nil {
		return err
	}
	defer localStorage.Close()

	kdf, err := crypto.NewKeyDerivation(cfg.KDF)
	if err != nil {
		return err
	}

	vault := crypto.NewSeedVault([]byte(cfg.App.VaultPassphrase), crypto.DefaultVaultParams())
	defer vault.Destroy()

	deriver := workers.NewDeriver(kdf, cfg.Workers.DeriveConcurrency, log)
	services := service.NewClientServices(localStorage, custodian, vault, deriver, log)

	return client.NewApp(services, os.Stdin, os.Stdout, log).Run(ctx, args)
}

func newCustodianAdapter(cfg config.ClientAdapter, log *logger.Logger) (adapter.CustodianAdapter, error) {
	if cfg.Transport == config.TransportGRPC {
		return adapter.NewGRPCCustodianAdapter(cfg, log)
	}
	return adapter.NewHTTPCustodianAdapter(cfg, log)
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}
	if buildDate == "" {
		buildDate = "N/A"
	}
	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}
