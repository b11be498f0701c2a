package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"parley/internal/app"
	"parley/internal/auth"
	"parley/internal/config"
	"parley/internal/log"
)

var (
	cfgPath   string
	addrFlag  string
	dbFlag    string
	levelFlag string
	userFlag  string
)

var rootCmd = &cobra.Command{
	Use:          "server",
	Short:        "Parley real-time chat server",
	SilenceUsage: true,
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the chat server",
	RunE: func(cmd *cobra.Command, args []string) error {
		bootLogger := log.New("info")
		cfg, cfgFile, err := config.Load(bootLogger, cfgPath)
		if err != nil {
			return err
		}
		applyFlags(&cfg)

		logger := log.New(cfg.LogLevel)
		logger.Info().Str("config", cfgFile).Str("addr", cfg.Addr).Msg("starting parley server")

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		application, err := app.New(&cfg, logger)
		if err != nil {
			return err
		}

		if err := application.Run(ctx); err != nil {
			return err
		}
		logger.Info().Msg("server stopped")
		return nil
	},
}

// tokenCmd mints a dev identity token signed with the configured secret, the
// same kind the account subsystem hands out in production.
var tokenCmd = &cobra.Command{
	Use:   "token",
	Short: "Mint an identity token for development",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, _, err := config.Load(nil, cfgPath)
		if err != nil {
			return err
		}

		svc := auth.NewService(&auth.JWTConfig{
			Secret:   []byte(cfg.JWTSecret),
			Issuer:   cfg.JWTIssuer,
			Audience: cfg.JWTAudience,
			TTL:      cfg.JWTTTL,
		})

		token, err := svc.IssueToken(userFlag)
		if err != nil {
			return err
		}
		fmt.Println(token)
		return nil
	},
}

func applyFlags(cfg *config.Config) {
	if addrFlag != "" {
		cfg.Addr = addrFlag
	}
	if dbFlag != "" {
		cfg.DatabasePath = dbFlag
	}
	if levelFlag != "" {
		cfg.LogLevel = levelFlag
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgPath, "config", "", "path to config file")

	serveCmd.Flags().StringVar(&addrFlag, "addr", "", "HTTP listen address")
	serveCmd.Flags().StringVar(&dbFlag, "db", "", "path to the SQLite database")
	serveCmd.Flags().StringVar(&levelFlag, "log-level", "", "log level (debug, info, warn, error)")

	tokenCmd.Flags().StringVar(&userFlag, "user", "", "identity to mint the token for")
	_ = tokenCmd.MarkFlagRequired("user")

	rootCmd.AddCommand(serveCmd, tokenCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
