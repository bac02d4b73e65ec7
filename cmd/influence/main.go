package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/dd0wney/cluso-influence/pkg/algorithms"
	"github.com/dd0wney/cluso-influence/pkg/config"
	"github.com/dd0wney/cluso-influence/pkg/graph"
	"github.com/dd0wney/cluso-influence/pkg/logging"
	"github.com/dd0wney/cluso-influence/pkg/metrics"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(0)
		}
		fmt.Fprintf(os.Stderr, "influence: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("influence", flag.ContinueOnError)
	fs.SetOutput(stderr)

	configPath := fs.String("config", "", "YAML run configuration file")
	variant := fs.String("variant", "", "Graph variant: unweighted or weighted")
	workers := fs.Int("workers", 0, "Number of scoring workers (0 or 1 = sequential)")
	top := fs.Int("top", 0, "Only print the N most influential nodes (0 = all)")
	format := fs.String("format", "", "Output format: table or json")
	logLevel := fs.String("log-level", "", "Log level: debug, info, warn, error (default $LOG_LEVEL, then info)")
	metricsFile := fs.String("metrics", "", "Write run metrics to this file in Prometheus text format")

	if err := fs.Parse(args); err != nil {
		return err
	}

	cfg := config.Default()
	if *configPath != "" {
		loaded, err := config.Load(*configPath)
		if err != nil {
			return err
		}
		cfg = loaded
	}

	// Flags given on the command line win over the config file
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "variant":
			cfg.Variant = *variant
		case "workers":
			cfg.Workers = *workers
		case "top":
			cfg.Top = *top
		case "format":
			cfg.Format = *format
		case "log-level":
			cfg.LogLevel = *logLevel
		case "metrics":
			cfg.MetricsFile = *metricsFile
		}
	})
	if err := cfg.Validate(); err != nil {
		return err
	}

	level := logging.LevelFromEnv(logging.InfoLevel)
	if cfg.LogLevel != "" {
		level = logging.ParseLevel(cfg.LogLevel)
	}
	logger := logging.NewJSONLogger(stderr, level).With(logging.Component("influence"))

	v, err := algorithms.ParseVariant(cfg.Variant)
	if err != nil {
		return err
	}

	numWorkers := cfg.Workers
	if cfg.Sequential() {
		numWorkers = 1
	}
	reg := metrics.NewRegistry()
	opts := algorithms.InfluenceOptions{
		Workers: numWorkers,
		Logger:  logger,
		Metrics: reg,
	}

	var (
		result *algorithms.InfluenceResult
		edges  []graph.EdgeListEntry
	)
	switch v {
	case algorithms.VariantWeighted:
		g := demoWeighted()
		edges = g.Edges()
		result, err = algorithms.RankWeighted(ctx, g, opts)
	default:
		g := demoUnweighted()
		edges = g.Edges()
		result, err = algorithms.RankUnweighted(ctx, g, opts)
	}

	// Failed runs are recorded too, so the file is written before checking err
	if cfg.MetricsFile != "" {
		if werr := reg.WriteTextfile(cfg.MetricsFile); werr != nil {
			return errors.Join(err, werr)
		}
		logger.Debug("metrics written", logging.String("path", cfg.MetricsFile))
	}
	if err != nil {
		return err
	}

	if cfg.Format == "json" {
		return renderJSON(stdout, edges, result, cfg.Top)
	}
	renderTable(stdout, edges, result, cfg.Top)
	return nil
}
