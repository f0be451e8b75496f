package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"gorm.io/gorm"

	"tenders/internal/app/tendermanager"
	"tenders/internal/cache"
	"tenders/internal/config"
	"tenders/internal/metrics"
	"tenders/pkg/database"
	"tenders/pkg/logger"
)

func main() {
	if err := newRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	var envFile string

	root := &cobra.Command{
		Use:           "tenders",
		Short:         "Tender management service",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return serve(cmd.Context(), envFile)
		},
	}
	root.PersistentFlags().StringVar(&envFile, "env-file", ".env", "dotenv file with default settings")

	root.AddCommand(&cobra.Command{
		Use:   "serve",
		Short: "Migrate the database and start the HTTP API",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return serve(cmd.Context(), envFile)
		},
	})
	root.AddCommand(&cobra.Command{
		Use:   "migrate",
		Short: "Create or update the database schema and exit",
		RunE: func(*cobra.Command, []string) error {
			_, db, err := bootstrap(envFile)
			if err != nil {
				return err
			}
			defer closeDB(db)
			log.Info().Msg("database schema is up to date")
			return nil
		},
	})
	return root
}

// bootstrap loads settings, configures logging and returns a migrated database.
func bootstrap(envFile string) (*config.Config, *gorm.DB, error) {
	cfg, err := config.Load(envFile)
	if err != nil {
		logger.Setup("info", "json")
		log.Error().Err(err).Msg("invalid configuration")
		return nil, nil, err
	}
	logger.Setup(cfg.LogLevel, cfg.LogFormat)

	db, err := database.NewDBConnection(&cfg.Postgres)
	if err != nil {
		log.Error().Err(err).Msg("failed to connect to the database")
		return nil, nil, err
	}
	if err := database.Migrate(db); err != nil {
		log.Error().Err(err).Msg("failed to migrate the database")
		closeDB(db)
		return nil, nil, err
	}
	return cfg, db, nil
}

func serve(ctx context.Context, envFile string) error {
	cfg, db, err := bootstrap(envFile)
	if err != nil {
		return err
	}
	defer closeDB(db)

	tenderCache, closeCache := newTenderCache(ctx, cfg)
	defer closeCache()

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	server := tendermanager.NewServer(cfg, db, tenderCache, metrics.New())
	if err := server.Run(ctx); err != nil {
		log.Error().Err(err).Msg("http server stopped")
		return err
	}
	log.Info().Msg("http server stopped")
	return nil
}

func newTenderCache(ctx context.Context, cfg *config.Config) (cache.TenderCache, func()) {
	if cfg.RedisAddr == "" {
		log.Info().Msg("tender cache disabled")
		return cache.NopTenderCache{}, func() {}
	}
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		log.Warn().Err(err).Str("addr", cfg.RedisAddr).Msg("redis is unreachable, tender cache will miss until it recovers")
	}
	return cache.NewRedisTenderCache(client, cfg.CacheTTL), func() {
		if err := client.Close(); err != nil {
			log.Warn().Err(err).Msg("failed to close redis client")
		}
	}
}

func closeDB(db *gorm.DB) {
	if err := database.Close(db); err != nil {
		log.Warn().Err(err).Msg("failed to close database connection")
	}
}
