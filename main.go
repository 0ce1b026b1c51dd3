package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/davecgh/go-spew/spew"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"

	"github.com/carson-networks/fundr-dashboard/api"
	"github.com/carson-networks/fundr-dashboard/internal/clipboard"
	"github.com/carson-networks/fundr-dashboard/internal/config"
	"github.com/carson-networks/fundr-dashboard/internal/generator"
	"github.com/carson-networks/fundr-dashboard/internal/logging"
	"github.com/carson-networks/fundr-dashboard/internal/metrics"
	"github.com/carson-networks/fundr-dashboard/internal/operator"
	"github.com/carson-networks/fundr-dashboard/internal/operator/actions"
	"github.com/carson-networks/fundr-dashboard/internal/service"
	"github.com/carson-networks/fundr-dashboard/internal/state"
	"github.com/carson-networks/fundr-dashboard/internal/storage"
	"github.com/carson-networks/fundr-dashboard/internal/view"
)

const metricsNamespace = "dashboard"

func main() {
	logger := logging.SetupLogging()

	app := &cli.App{
		Name:   "fundr-dashboard",
		Usage:  "mock data service for the financial dashboard",
		Action: func(c *cli.Context) error { return serve(c, logger) },
		Commands: []*cli.Command{
			{
				Name:   "serve",
				Usage:  "serve the dashboard API and page",
				Action: func(c *cli.Context) error { return serve(c, logger) },
			},
			{
				Name:  "generate",
				Usage: "print a generated dataset",
				Flags: []cli.Flag{
					&cli.Int64Flag{Name: "seed", Value: generator.DefaultConfig().Seed, Usage: "random seed"},
					&cli.IntFlag{Name: "count", Value: service.DefaultMockAPIConfig().BackingSetSize, Usage: "number of transactions"},
					&cli.BoolFlag{Name: "dump", Usage: "print a Go dump instead of JSON"},
				},
				Action: generate,
			},
			{
				Name:  "copy-account",
				Usage: "copy a generated account number to the system clipboard",
				Flags: []cli.Flag{
					&cli.Int64Flag{Name: "seed", Value: generator.DefaultConfig().Seed, Usage: "random seed"},
				},
				Action: func(c *cli.Context) error { return copyAccount(c, logger) },
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		logger.WithError(err).Fatal("fundr-dashboard")
	}
}

func serve(c *cli.Context, logger *logrus.Logger) error {
	logger.Info("fundr-dashboard starting")

	envConfig, err := config.ProcessEnvironmentVariables()
	if err != nil {
		return fmt.Errorf("config.ProcessEnvironmentVariables: %w", err)
	}
	logging.ApplyLevel(logger, envConfig.LogLevel)

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	recorder, err := metrics.NewPrometheusRecorder(metricsNamespace, registry)
	if err != nil {
		return fmt.Errorf("metrics.NewPrometheusRecorder: %w", err)
	}

	gen := generator.New(generator.Config{Seed: envConfig.Seed})
	mockAPI := service.NewMockAPI(storage.NewStorage(), gen, service.MockAPIConfig{
		BackingSetSize: envConfig.BackingSetSize,
		LatencyMin:     envConfig.LatencyMin,
		LatencyMax:     envConfig.LatencyMax,
		FailureRate:    envConfig.FailureRate,
		Seed:           envConfig.Seed,
	}, service.WithRecorder(recorder), service.WithLogger(logger))

	delegator := operator.NewOperatorDelegator(state.NewStore(), mockAPI, 1)
	delegator.Start()
	defer delegator.Stop()

	ctx, stop := signal.NotifyContext(c.Context, os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Initial load, as the page does on mount.
	go func() {
		for _, action := range []actions.IAction{&actions.LoadDashboard{}, &actions.LoadTransactions{}} {
			if err := delegator.Process(ctx, action); err != nil {
				logger.WithError(err).Warn("fundr-dashboard.initialLoad")
			}
		}
	}()

	cb, err := clipboard.New(envConfig.Clipboard)
	if err != nil {
		return err
	}
	logger.WithField("clipboard", envConfig.Clipboard).Info("fundr-dashboard.clipboard")

	httpRest := api.Rest{
		Logger:     logger,
		Port:       envConfig.Port,
		MockAPI:    mockAPI,
		Operator:   delegator,
		CopyButton: view.NewCopyButton(cb, envConfig.CopyAckTimeout, logger),
		Gatherer:   registry,
	}
	return httpRest.Serve(ctx)
}

type dataset struct {
	Transactions   []service.Transaction  `json:"transactions"`
	Revenue        service.RevenueSeries  `json:"revenue"`
	AccountDetails service.AccountDetails `json:"accountDetails"`
}

func generate(c *cli.Context) error {
	gen := generator.New(generator.Config{Seed: c.Int64("seed")})
	data := dataset{
		Transactions:   gen.Transactions(c.Int("count")),
		Revenue:        gen.RevenueSeries(),
		AccountDetails: gen.AccountDetails(),
	}

	if c.Bool("dump") {
		spew.Fdump(c.App.Writer, data)
		return nil
	}

	enc := json.NewEncoder(c.App.Writer)
	enc.SetIndent("", "  ")
	return enc.Encode(data)
}

func copyAccount(c *cli.Context, logger *logrus.Logger) error {
	details := generator.New(generator.Config{Seed: c.Int64("seed")}).AccountDetails()

	button := view.NewCopyButton(clipboard.System{}, view.DefaultCopyAckTimeout, logger)
	ctx, cancel := context.WithTimeout(c.Context, 5*time.Second)
	defer cancel()

	if !button.Copy(ctx, details.AccountNumber) {
		return cli.Exit("copy failed", 1)
	}
	_, err := fmt.Fprintf(c.App.Writer, "%s %s %s\n", button.Label(), details.BankName, details.AccountNumber)
	return err
}
