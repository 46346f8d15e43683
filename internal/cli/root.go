package cli

import (
	"errors"
	"io"
	"io/fs"
	"log/slog"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/mcoot/shopsim/internal/factory"
	redisstorage "github.com/mcoot/shopsim/internal/storage/redis"
)

var (
	cfg *Config
	app *factory.App
)

// NewRootCmd creates the root command
func NewRootCmd() *cobra.Command {
	cfg = DefaultConfig()
	app = nil

	rootCmd := &cobra.Command{
		Use:   "shopsim",
		Short: "A small in-memory shop simulation",
		Long: `shopsim simulates a shop: a catalog of generated appliances, a user
account with password validation and a per-user shopping cart.

Run "shopsim demo" for the scripted walkthrough or "shopsim shell" to
log in and manage a cart interactively.`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := loadEnvFile(cfg.EnvFile); err != nil {
				return err
			}
			if err := cfg.ApplyEnv(cmd.Flags().Changed); err != nil {
				return err
			}
			if err := cfg.Validate(); err != nil {
				return err
			}

			logger := newLogger(cmd.ErrOrStderr(), cfg)
			a, err := factory.New(factoryConfig(cfg, logger))
			if err != nil {
				return err
			}
			app = a
			return nil
		},
		SilenceUsage: true,
	}

	// Global flags
	rootCmd.PersistentFlags().StringVar(&cfg.StorageType, "storage", cfg.StorageType, "Catalog storage: memory, redis (env: SHOPSIM_STORAGE)")
	rootCmd.PersistentFlags().StringVar(&cfg.RedisURL, "redis-url", cfg.RedisURL, "Redis URL for --storage redis (env: SHOPSIM_REDIS_URL)")
	rootCmd.PersistentFlags().StringVar(&cfg.HashAlgorithm, "hash", cfg.HashAlgorithm, "Password digest: sha256, bcrypt (env: SHOPSIM_HASH)")
	rootCmd.PersistentFlags().IntVar(&cfg.CatalogSize, "catalog-size", cfg.CatalogSize, "Products generated for a new catalog (env: SHOPSIM_CATALOG_SIZE)")
	rootCmd.PersistentFlags().StringVarP(&cfg.Output, "output", "o", cfg.Output, "Output format: text, json (env: SHOPSIM_OUTPUT)")
	rootCmd.PersistentFlags().StringVar(&cfg.LogFormat, "log-format", cfg.LogFormat, "Log format: json, text (env: SHOPSIM_LOG_FORMAT)")
	rootCmd.PersistentFlags().BoolVarP(&cfg.Verbose, "verbose", "v", cfg.Verbose, "Debug logging")
	rootCmd.PersistentFlags().StringVar(&cfg.EnvFile, "env-file", cfg.EnvFile, "Optional dotenv file to read settings from")

	// Add subcommands
	rootCmd.AddCommand(newDemoCmd())
	rootCmd.AddCommand(newShellCmd())
	rootCmd.AddCommand(newCatalogCmd())

	return rootCmd
}

// Execute runs the root command
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

// withApp runs fn and then closes the app, whether or not fn failed.
// cobra skips post-run hooks when RunE returns an error.
func withApp(fn func(cmd *cobra.Command, args []string) error) func(cmd *cobra.Command, args []string) error {
	return func(cmd *cobra.Command, args []string) (err error) {
		defer func() {
			if app == nil {
				return
			}
			if cerr := app.Close(); err == nil {
				err = cerr
			}
		}()
		return fn(cmd, args)
	}
}

// loadEnvFile reads path into the environment without overriding
// variables that are already set. A missing file is fine.
func loadEnvFile(path string) error {
	if path == "" {
		return nil
	}
	err := godotenv.Load(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	return err
}

func newLogger(w io.Writer, c *Config) *slog.Logger {
	opts := &slog.HandlerOptions{Level: slog.LevelInfo}
	if c.Verbose {
		opts.Level = slog.LevelDebug
	}
	if c.LogFormat == "text" {
		return slog.New(slog.NewTextHandler(w, opts))
	}
	return slog.New(slog.NewJSONHandler(w, opts))
}

func factoryConfig(c *Config, logger *slog.Logger) factory.Config {
	fc := factory.Config{
		Logger:        logger,
		StorageType:   c.StorageType,
		HashAlgorithm: c.HashAlgorithm,
	}
	if c.StorageType == factory.StorageTypeRedis {
		redisCfg := redisstorage.DefaultConfig()
		redisCfg.URL = c.RedisURL
		fc.RedisConfig = &redisCfg
	}
	return fc
}
