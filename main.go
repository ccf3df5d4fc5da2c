package main

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"robotaxi-economics/config"
	httpLayer "robotaxi-economics/http"
	"robotaxi-economics/repository"
	"robotaxi-economics/service"
)

var rootCmd = &cobra.Command{
	Use:           "robotaxi",
	Short:         "Unit economics for autonomous ride-hailing vehicles",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func main() {
	rootCmd.AddCommand(serveCmd, evaluateCmd, sweepCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func newLogger(level string) *logrus.Logger {
	logger := logrus.New()
	logger.SetFormatter(&logrus.JSONFormatter{})
	logLevel, err := logrus.ParseLevel(level)
	if err != nil {
		logLevel = logrus.InfoLevel
	}
	logger.SetLevel(logLevel)
	return logger
}

// newPresetService merges the presets file, when configured, over the
// built-in presets.
func newPresetService(cfg *config.Config, economics *service.EconomicsService) (*service.PresetService, error) {
	presets := service.DefaultPresets()
	if cfg.PresetsFile != "" {
		loaded, err := config.LoadPresets(cfg.PresetsFile)
		if err != nil {
			return nil, err
		}
		presets = config.MergePresets(presets, loaded)
	}
	return service.NewPresetService(economics, presets)
}

// buildServices wires the engine and its collaborators from configuration.
// The returned cleanup releases the cache connection.
func buildServices(cfg *config.Config, logger *logrus.Logger) (httpLayer.Services, func(), error) {
	loans := service.NewLoanService()
	economics := service.NewEconomicsService(loans)

	presetService, err := newPresetService(cfg, economics)
	if err != nil {
		return httpLayer.Services{}, nil, err
	}
	if cfg.PresetsFile != "" {
		logger.Infof("Loaded presets from %s", cfg.PresetsFile)
	}

	var cache repository.CacheRepository
	cleanup := func() {}
	if cfg.RedisAddr != "" {
		redisCache := repository.NewRedisCache(cfg.RedisAddr)
		cache = redisCache
		cleanup = func() {
			if err := redisCache.Close(); err != nil {
				logger.WithError(err).Warn("failed to close redis client")
			}
		}
		logger.Infof("Caching responses in redis at %s", cfg.RedisAddr)
	} else {
		cache = repository.NewMemoryCache()
	}

	return httpLayer.Services{
		Economics:   economics,
		Loans:       loans,
		Sensitivity: service.NewSensitivityService(economics),
		Investment:  service.NewInvestmentService(economics),
		Insight:     service.NewInsightService(cfg.OpenAIAPIKey, logger),
		Presets:     presetService,
		Cache:       cache,
		CacheTTL:    cfg.CacheTTL,
	}, cleanup, nil
}
