package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"spectrox/analyzer"
	"spectrox/config"
	"spectrox/database"
	"spectrox/handlers"
	"spectrox/logger"
)

func main() {
	cfgFile := flag.String("config", "spectrox.yaml", "Path to YAML configuration (defaults are used when absent)")
	debug := flag.Bool("debug", false, "Turn on debugging output")
	flag.Parse()

	cfg, err := config.Load(*cfgFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}
	if *debug {
		cfg.Debug = true
	}

	if err := logger.Init(cfg.Debug); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	if !cfg.Debug {
		gin.SetMode(gin.ReleaseMode)
	}

	if err := database.InitDatabase(cfg.Database.DSN, logger.Base()); err != nil {
		logger.Fatalf("Database: %v", err)
	}
	logger.Infof("Database ready (%s)", cfg.Database.DSN)

	h, err := handlers.New(database.DB, newAnalyzer(cfg.Analyzer), logger.Get(), cfg.Server.MaxUploadMB<<20)
	if err != nil {
		logger.Fatalf("Handlers: %v", err)
	}

	srv := &http.Server{
		Addr:    cfg.Server.Listen,
		Handler: handlers.NewRouter(h),
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		logger.Infow("server starting",
			"listen", cfg.Server.Listen,
			"max_upload_mb", cfg.Server.MaxUploadMB,
			"analysis_delay", cfg.Analyzer.Delay,
			"jitter", cfg.Analyzer.Jitter)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatalf("Failed to start server: %v", err)
		}
	}()

	<-ctx.Done()
	logger.Infof("Shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Errorf("Shutdown: %v", err)
	}
}

func newAnalyzer(cfg config.AnalyzerConfig) *analyzer.Analyzer {
	return analyzer.New(
		analyzer.WithDelay(cfg.Delay),
		analyzer.WithJitter(analyzer.NewJitter(cfg.Jitter, cfg.JitterSeed)),
		analyzer.WithLogger(logger.Get()),
	)
}
