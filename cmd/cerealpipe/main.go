package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/kbukum/cerealpipe/cereal"
	"github.com/kbukum/cerealpipe/config"
	"github.com/kbukum/cerealpipe/fetch"
	"github.com/kbukum/cerealpipe/logger"
	"github.com/kbukum/cerealpipe/observability"
	"github.com/kbukum/cerealpipe/version"
)

func main() {
	configFile := flag.String("config", "", "path to config file (overrides search paths)")
	envFile := flag.String("env", "", "path to .env file (overrides search paths)")
	showVersion := flag.Bool("version", false, "print version and exit")
	flag.Parse()

	if *showVersion {
		fmt.Println(version.Get().String())
		return
	}

	if err := run(*configFile, *envFile); err != nil {
		os.Exit(1)
	}
}

func run(configFile, envFile string) error {
	var cfg Config
	var loadOpts []config.LoaderOption
	if configFile != "" {
		loadOpts = append(loadOpts, config.WithConfigFile(configFile))
	}
	if envFile != "" {
		loadOpts = append(loadOpts, config.WithEnvFile(envFile))
	}
	if err := config.LoadConfig(serviceName, &cfg, loadOpts...); err != nil {
		fmt.Fprintf(os.Stderr, "loading config: %v\n", err)
		return err
	}

	cfg.ApplyDefaults()
	if cfg.Version == "" {
		cfg.Version = version.Short()
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "invalid config: %v\n", err)
		return err
	}

	logger.Init(&cfg.Logging)
	log := logger.GetGlobalLogger()

	log.Info("starting", logger.Fields(
		"service", cfg.Name,
		"version", cfg.Version,
		"environment", cfg.Environment,
		"source", cfg.Source.URL,
	))

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	metrics, shutdown, err := initTelemetry(ctx, &cfg, log)
	if err != nil {
		log.Error("telemetry init failed", logger.ErrorFields("telemetry", err))
		return err
	}
	defer shutdown()

	loader, err := fetch.New(cfg.Source, fetch.WithLogger(log))
	if err != nil {
		log.Error("loader init failed", logger.ErrorFields("fetch", err))
		return err
	}

	job := cereal.NewJob(loader, cereal.NewLogReporter(log),
		cereal.WithLogger(log),
		cereal.WithMetrics(metrics),
	)

	if _, err := job.Run(ctx); err != nil {
		return err
	}
	return nil
}

// initTelemetry wires OTLP tracing and metrics when an endpoint is
// configured. The returned shutdown func flushes both providers and is
// safe to call either way.
func initTelemetry(ctx context.Context, cfg *Config, log *logger.Logger) (*observability.Metrics, func(), error) {
	if !cfg.Telemetry.Enabled() {
		return nil, func() {}, nil
	}

	tracerCfg := observability.DefaultTracerConfig(cfg.Name)
	tracerCfg.ServiceVersion = cfg.Version
	tracerCfg.Environment = cfg.Environment
	tracerCfg.Endpoint = cfg.Telemetry.Endpoint
	tracerCfg.Insecure = cfg.Telemetry.Insecure
	tracerCfg.SampleRate = cfg.Telemetry.SampleRate

	tp, err := observability.InitTracer(ctx, tracerCfg)
	if err != nil {
		return nil, func() {}, err
	}

	meterCfg := observability.DefaultMeterConfig(cfg.Name)
	meterCfg.ServiceVersion = cfg.Version
	meterCfg.Environment = cfg.Environment
	meterCfg.Endpoint = cfg.Telemetry.Endpoint
	meterCfg.Insecure = cfg.Telemetry.Insecure

	mp, err := observability.InitMeter(ctx, &meterCfg)
	if err != nil {
		shutdownProvider(tp.Shutdown, log)
		return nil, func() {}, err
	}

	metrics, err := observability.NewMetrics(observability.Meter(cfg.Name))
	if err != nil {
		shutdownProvider(mp.Shutdown, log)
		shutdownProvider(tp.Shutdown, log)
		return nil, func() {}, err
	}

	log.Info("telemetry enabled", logger.Fields("endpoint", cfg.Telemetry.Endpoint))

	shutdown := func() {
		shutdownProvider(mp.Shutdown, log)
		shutdownProvider(tp.Shutdown, log)
	}
	return metrics, shutdown, nil
}

func shutdownProvider(fn func(context.Context) error, log *logger.Logger) {
	ctx, cancel := context.WithTimeout(context.Background(), observability.ShutdownTimeout)
	defer cancel()
	if err := fn(ctx); err != nil {
		log.Warn("telemetry shutdown error", logger.Fields("error", err.Error()))
	}
}
