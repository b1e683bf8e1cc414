// Copyright
// SPDX-License-Identifier: MIT
// galaxy-classify: terminal galaxy classification with quick codes
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"galaxy-classify/internal/config"
	"galaxy-classify/internal/logging"
	"galaxy-classify/internal/store"
)

const Version = "0.3.0"

var (
	cfgPath   string
	verbosity int
)

var rootCmd = &cobra.Command{
	Use:           "galaxy-classify",
	Short:         "Classify galaxies from the terminal with quick codes",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgPath, "config", config.DefaultPath, "config file (TOML, or JSON by extension)")
	rootCmd.PersistentFlags().CountVarP(&verbosity, "verbose", "v", "log verbosity (-v info, -vv debug)")

	rootCmd.AddCommand(initCmd, importCmd, classifyCmd, codeCmd, statusCmd, exportCmd, settingsCmd, versionCmd)
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

// app bundles what most commands need.
type app struct {
	cfg   *config.Config
	log   *zap.Logger
	store *store.Store
	flush func()
}

func openApp(ctx context.Context, withStore bool) (*app, error) {
	c, err := config.Load(cfgPath)
	if err != nil {
		return nil, fmt.Errorf("config %s: %w", cfgPath, err)
	}
	v := c.Verbosity
	if verbosity > v {
		v = verbosity
	}
	log, flush, err := logging.New(c.LogPath(), v)
	if err != nil {
		return nil, err
	}
	a := &app{cfg: c, log: log, flush: flush}
	if withStore {
		s, err := store.Open(ctx, c.DatabasePath())
		if err != nil {
			flush()
			return nil, err
		}
		a.store = s
	}
	log.Debug("app opened", zap.String("config", cfgPath), zap.String("user", c.User), zap.Bool("store", withStore))
	return a, nil
}

func (a *app) Close() {
	if a.store != nil {
		if err := a.store.Close(); err != nil {
			a.log.Warn("close store", zap.Error(err))
		}
	}
	a.flush()
}
