package main

import (
	"call-center-calculator/config"
	"call-center-calculator/formatter"
	"call-center-calculator/metrics"
	"call-center-calculator/models"
	"call-center-calculator/parser"
	"call-center-calculator/recommend"
	"call-center-calculator/scenario"
	"flag"
	"fmt"
	"log/slog"
	"math"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/prometheus/client_golang/prometheus/push"
)

func main() {
	// Define flags
	configPath := flag.String("config", "", "YAML configuration file (defaults are used when omitted)")
	tiersPath := flag.String("tiers", "", "CSV tier table overriding the configured quality and cost tiers")
	investment := flag.Float64("investment", 0, "Investment amount in dollars (overrides the configured amount when set)")
	format := flag.String("format", "text", "Output format: text|json|csv")
	series := flag.Bool("series", false, "Include the lead multiplier and added-agent scenario series")
	metricsAddr := flag.String("metrics-addr", "", "Address to expose Prometheus metrics (e.g., :9090)")
	pushGateway := flag.String("push-url", "", "Pushgateway URL to push metrics to (e.g., http://localhost:9091)")
	wait := flag.Bool("wait", false, "Keep process running after completion to allow for metric scraping")
	verbose := flag.Bool("v", false, "Enable debug logging")

	// Parse command-line flags
	flag.Parse()

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	// Start metrics server if address provided
	if *metricsAddr != "" {
		go func() {
			http.Handle("/metrics", promhttp.HandlerFor(metrics.Registry, promhttp.HandlerOpts{}))
			logger.Info("metrics server listening", "addr", *metricsAddr, "path", "/metrics")
			if err := http.ListenAndServe(*metricsAddr, nil); err != nil {
				logger.Error("metrics server failed", "error", err)
			}
		}()
	}

	// Validate format enum
	validFormats := map[string]bool{"text": true, "json": true, "csv": true}
	if !validFormats[*format] {
		fmt.Fprintf(os.Stderr, "Error: format must be one of: text, json, csv (got: %s)\n", *format)
		os.Exit(1)
	}

	file := config.Default()
	if *configPath != "" {
		var err error
		file, err = config.Load(*configPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
			os.Exit(1)
		}
		logger.Debug("loaded configuration", "path", *configPath)
	}

	if *tiersPath != "" {
		f, err := os.Open(*tiersPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error opening tier table: %v\n", err)
			os.Exit(1)
		}
		table, err := parser.Parse(f)
		f.Close()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error parsing tier table: %v\n", err)
			os.Exit(1)
		}
		file.SetTiers(table.Quality, table.Cost)
		logger.Debug("loaded tier table", "path", *tiersPath,
			"quality_tiers", len(table.Quality), "cost_tiers", len(table.Cost))
	}

	if flagWasSet(flag.CommandLine, "investment") {
		file.Investment = *investment
	}

	cfg, err := file.Build()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if total := cfg.DistributionTotal(); math.Abs(total-1) > 1e-6 {
		logger.Warn("quality tier distribution does not sum to 1", "total", total)
	}

	rec, err := recommend.Recommend(cfg, file.Investment)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	recordRecommendation(rec)
	logger.Debug("recommendation ready", "action", rec.Action,
		"leads_incremental", rec.LeadsIncremental, "people_incremental", rec.PeopleIncremental)

	report := formatter.Report{Recommendation: rec}
	if *series {
		report.Scenarios = scenario.EvaluateSeries(cfg, scenario.DefaultSeries(cfg))
		report.Optimal = scenario.Optimal(report.Scenarios)
	}

	// Output based on format
	switch *format {
	case "json":
		fmt.Print(formatter.FormatJSON(report))
	case "csv":
		fmt.Print(formatter.FormatCSV(report))
	default: // "text"
		fmt.Print(formatter.FormatText(report))
	}

	// Handle metrics pushing or waiting
	if *pushGateway != "" {
		jobName := "call_center_calculator"
		if err := push.New(*pushGateway, jobName).Gatherer(metrics.Registry).Push(); err != nil {
			logger.Error("error pushing to Pushgateway", "url", *pushGateway, "error", err)
		} else {
			logger.Info("metrics pushed to Pushgateway", "url", *pushGateway)
		}
	}

	if *wait && *metricsAddr != "" {
		logger.Info("process kept alive for metric scraping, press Ctrl+C to exit")
		// Wait for interrupt signal
		c := make(chan os.Signal, 1)
		signal.Notify(c, os.Interrupt, syscall.SIGTERM)
		<-c
		logger.Info("exiting")
	} else if *metricsAddr != "" && *pushGateway == "" {
		// Small delay to allow final scrape if not waiting explicitly
		time.Sleep(100 * time.Millisecond)
	}
}

// flagWasSet reports whether name was passed on the command line, as opposed
// to holding its default.
func flagWasSet(fs *flag.FlagSet, name string) bool {
	set := false
	fs.Visit(func(f *flag.Flag) {
		if f.Name == name {
			set = true
		}
	})
	return set
}

// recordRecommendation publishes the gauges describing the finished
// recommendation. Recommend itself only touches counters.
func recordRecommendation(rec *models.Recommendation) {
	metrics.ResetRecommendationGauges()
	metrics.IncrementalSales.WithLabelValues(string(models.ActionLeads)).Set(rec.LeadsIncremental)
	metrics.IncrementalSales.WithLabelValues(string(models.ActionPeople)).Set(rec.PeopleIncremental)

	if cac, ok := rec.CurrentCAC.Value(); ok {
		metrics.BaselineCAC.Set(cac)
	} else {
		metrics.BaselineCAC.Set(-1)
	}
	if rec.Baseline.Capacity > 0 {
		metrics.CapacityUtilization.Set(rec.Baseline.HandledLeads / rec.Baseline.Capacity)
	}
}
