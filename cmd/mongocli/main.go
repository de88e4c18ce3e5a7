// Command mongocli bundles small menu-driven MongoDB console apps, one per
// subcommand. Each app talks to its own database on the same server.
package main

import (
	"context"
	"os"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/pac-cee/mongocli/internal/cli"
	"github.com/pac-cee/mongocli/internal/storage"
)

var (
	mongoURI  string
	dbName    string
	opTimeout time.Duration
)

var rootCmd = &cobra.Command{
	Use:           "mongocli",
	Short:         "Menu-driven MongoDB console apps",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	defaultURI := os.Getenv("MONGO_URI")
	if defaultURI == "" {
		defaultURI = "mongodb://localhost:27017"
	}
	rootCmd.PersistentFlags().StringVar(&mongoURI, "uri", defaultURI, "MongoDB connection URI (or MONGO_URI)")
	rootCmd.PersistentFlags().StringVar(&dbName, "db", "", "database name override")
	rootCmd.PersistentFlags().DurationVar(&opTimeout, "timeout", 5*time.Second, "per storage round-trip timeout")
}

// menuBuilder wires one app's repositories and services over an open client.
// It runs index setup before the menu is served.
type menuBuilder func(ctx context.Context, cl *storage.Client) (*cli.Menu, error)

// runApp connects to the app's database, builds its menu and serves the
// interactive session on stdin/stdout until exit or EOF.
func runApp(cmd *cobra.Command, defaultDB string, build menuBuilder) error {
	log, err := zap.NewProduction()
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	db := dbName
	if db == "" {
		db = defaultDB
	}

	ctx := cmd.Context()
	connectCtx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()
	cl, err := storage.Connect(connectCtx, mongoURI, db, opTimeout, log)
	if err != nil {
		log.Error("connect failed", zap.String("db", db), zap.Error(err))
		return err
	}
	defer func() {
		closeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = cl.Close(closeCtx)
	}()

	menu, err := build(connectCtx, cl)
	if err != nil {
		log.Error("setup failed", zap.String("db", db), zap.Error(err))
		return err
	}

	return cli.NewSession(os.Stdin, os.Stdout, log).Run(ctx, menu)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
