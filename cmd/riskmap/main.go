package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"riskmap/config"
	"riskmap/internal/loader"
	"riskmap/internal/logger"
	"riskmap/internal/metrics"
	"riskmap/internal/output/viewsjson"
	"riskmap/internal/server"
	"riskmap/internal/viewcache"
	"riskmap/internal/views"
)

func findConfigFile(configArg string) string {
	if configArg != "" {
		path := configArg
		if _, err := os.Stat(path); err == nil {
			return path
		}
		log.Printf("Warning: config file not found at %s, trying default locations", path)
	}

	if _, err := os.Stat("riskmap.yml"); err == nil {
		return "riskmap.yml"
	}

	exePath, err := os.Executable()
	if err == nil {
		exeDir := filepath.Dir(exePath)
		path := filepath.Join(exeDir, "riskmap.yml")
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}

	return "riskmap.yml"
}

func applyDefaults(cfg *config.Config) {
	if cfg.RiskMap.Data.Path == "" {
		cfg.RiskMap.Data.Path = "data/cleaned_security_incidents.csv"
	}

	if cfg.RiskMap.Server.Addr == "" {
		cfg.RiskMap.Server.Addr = "127.0.0.1:8080"
	}
	if cfg.RiskMap.Server.ReadTimeout <= 0 {
		cfg.RiskMap.Server.ReadTimeout = 10 * time.Second
	}
	if cfg.RiskMap.Server.WriteTimeout <= 0 {
		cfg.RiskMap.Server.WriteTimeout = 30 * time.Second
	}

	if cfg.RiskMap.Cache.TTL <= 0 {
		cfg.RiskMap.Cache.TTL = 10 * time.Minute
	}
	if cfg.RiskMap.Cache.Redis.Addr == "" {
		cfg.RiskMap.Cache.Redis.Addr = "127.0.0.1:6379"
	}
	if cfg.RiskMap.Cache.Redis.KeyPrefix == "" {
		cfg.RiskMap.Cache.Redis.KeyPrefix = "riskmap:views"
	}

	if cfg.RiskMap.Logging.Level == "" {
		cfg.RiskMap.Logging.Level = "info"
	}
}

func loadSetup(configArg string) (*config.Config, *loader.Dataset) {
	configPath := findConfigFile(configArg)

	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	applyDefaults(cfg)

	if err := logger.Init(cfg.RiskMap.Logging.Enabled, cfg.RiskMap.Logging.Level, cfg.RiskMap.Logging.File, cfg.RiskMap.Logging.Console); err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}

	logger.Infof("Risk Map starting")
	logger.Infof("Config loaded from: %s", configPath)

	ds, err := loader.Load(cfg.RiskMap.Data.Path)
	if err != nil {
		logger.Errorf("Failed to load incident table: %v", err)
		log.Fatalf("Failed to load incident table: %v", err)
	}
	metrics.RowsLoaded.Set(float64(len(ds.Rows)))

	return cfg, ds
}

func runServe(args []string) {
	configArg := ""
	if len(args) > 0 {
		configArg = args[0]
	}

	cfg, ds := loadSetup(configArg)

	var cache *viewcache.RedisCache
	if cfg.RiskMap.Cache.Enabled {
		c, err := viewcache.NewRedisCache(viewcache.Config{
			Addr:      cfg.RiskMap.Cache.Redis.Addr,
			Password:  cfg.RiskMap.Cache.Redis.Password,
			DB:        cfg.RiskMap.Cache.Redis.DB,
			KeyPrefix: cfg.RiskMap.Cache.Redis.KeyPrefix,
			TTL:       cfg.RiskMap.Cache.TTL,
		})
		if err != nil {
			logger.Errorf("Failed to connect view cache: %v", err)
			log.Fatalf("Failed to connect view cache: %v", err)
		}
		cache = c
		logger.Infof("View cache enabled: %s (ttl=%s)", cfg.RiskMap.Cache.Redis.Addr, cfg.RiskMap.Cache.TTL)
	}

	srv := server.New(ds, cache)
	httpSrv := &http.Server{
		Addr:         cfg.RiskMap.Server.Addr,
		Handler:      srv.Router(),
		ReadTimeout:  cfg.RiskMap.Server.ReadTimeout,
		WriteTimeout: cfg.RiskMap.Server.WriteTimeout,
	}

	go func() {
		logger.Infof("Listening on %s", cfg.RiskMap.Server.Addr)
		if err := httpSrv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Errorf("HTTP server error: %v", err)
		}
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh

	logger.Infof("Shutting down")
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := httpSrv.Shutdown(ctx); err != nil {
		logger.Errorf("Error shutting down HTTP server: %v", err)
	}
	if cache != nil {
		if err := cache.Close(); err != nil {
			logger.Errorf("Error closing view cache: %v", err)
		}
	}

	logger.Infof("Risk Map stopped")
}

func runCompute(args []string) int {
	fs := flag.NewFlagSet("compute", flag.ContinueOnError)
	configArg := fs.String("config", "", "Config file path")
	region := fs.String("region", "", "Optional region filter (empty = all regions)")
	output := fs.String("output", "output/views.json", "Views JSON output path")
	if err := fs.Parse(args); err != nil {
		return 2
	}

	_, ds := loadSetup(*configArg)

	set := views.Compute(ds.Rows, *region)
	if err := viewsjson.Write(*output, set); err != nil {
		fmt.Fprintf(os.Stderr, "failed to write views: %v\n", err)
		return 1
	}

	fmt.Printf("computed rows=%d region=%q output=%s\n", len(ds.Rows), *region, *output)
	return 0
}

func main() {
	if len(os.Args) > 1 {
		switch os.Args[1] {
		case "serve":
			runServe(os.Args[2:])
			return
		case "compute":
			os.Exit(runCompute(os.Args[2:]))
		default:
			// Backward-compatible mode: first arg is config path.
			runServe(os.Args[1:])
			return
		}
	}

	runServe(nil)
}
