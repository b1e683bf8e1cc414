package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/BurntSushi/toml"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"galaxy-classify/internal/catalog"
	"galaxy-classify/internal/config"
	"galaxy-classify/internal/export"
	"galaxy-classify/internal/store"
	"galaxy-classify/internal/tui"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a default config and create the database",
	Args:  cobra.NoArgs,
	RunE:  runInit,
}

func runInit(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	if _, err := os.Stat(cfgPath); err == nil {
		fmt.Fprintf(out, "Config %s already exists, leaving it unchanged\n", cfgPath)
	} else if errors.Is(err, os.ErrNotExist) {
		if err := config.Save(cfgPath, config.Default()); err != nil {
			return err
		}
		fmt.Fprintf(out, "Wrote %s\n", cfgPath)
	} else {
		return fmt.Errorf("stat config: %w", err)
	}

	a, err := openApp(cmd.Context(), true)
	if err != nil {
		return err
	}
	defer a.Close()
	fmt.Fprintf(out, "Database ready at %s (user %s)\n", a.cfg.DatabasePath(), a.cfg.User)
	return nil
}

var importCmd = &cobra.Command{
	Use:   "import SRC",
	Short: "Import a galaxy catalog from a JSON/YAML file or URL",
	Args:  cobra.ExactArgs(1),
	RunE:  runImport,
}

func runImport(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	a, err := openApp(ctx, true)
	if err != nil {
		return err
	}
	defer a.Close()

	gs, err := catalog.Load(ctx, args[0])
	if err != nil {
		return err
	}
	n, err := a.store.ImportGalaxies(ctx, gs)
	if err != nil {
		return err
	}
	all, err := a.store.Galaxies(ctx)
	if err != nil {
		return err
	}
	a.log.Info("catalog imported", zap.String("src", args[0]), zap.Int("count", n))
	fmt.Fprintf(cmd.OutOrStdout(), "Imported %d galaxies (catalog now has %d)\n", n, len(all))
	return nil
}

var (
	classifyStart string
	classifyWatch bool
)

var classifyCmd = &cobra.Command{
	Use:   "classify",
	Short: "Open the classification screen",
	Long: `Walk the catalog in order and classify each galaxy.

Without --start the first galaxy you have neither classified nor skipped is
opened. With --watch, edits to the config file apply immediately.`,
	Args: cobra.NoArgs,
	RunE: runClassify,
}

func init() {
	classifyCmd.Flags().StringVar(&classifyStart, "start", "", "galaxy id to open first")
	classifyCmd.Flags().BoolVar(&classifyWatch, "watch", false, "reload classification settings when the config file changes")
}

func runClassify(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	a, err := openApp(ctx, true)
	if err != nil {
		return err
	}
	defer a.Close()

	gs, err := a.store.Galaxies(ctx)
	if err != nil {
		return err
	}
	start := classifyStart
	if start == "" {
		g, err := a.store.NextPending(ctx, a.cfg.User)
		switch {
		case err == nil:
			start = g.ID
		case !errors.Is(err, store.ErrNotFound):
			return err
		}
	}

	opts := tui.Options{
		Backend:        a.store,
		Galaxies:       gs,
		User:           a.cfg.User,
		Settings:       a.cfg.Settings(),
		ContrastGroups: a.cfg.Classification.ContrastGroups,
		Start:          start,
		Logger:         a.log,
	}
	if classifyWatch {
		updates, err := config.Watch(ctx, cfgPath, a.log)
		if err != nil {
			return err
		}
		opts.SettingsUpdates = updates
	}
	a.log.Info("classification session started", zap.String("user", a.cfg.User), zap.Int("galaxies", len(gs)), zap.String("start", start))
	return tui.Run(ctx, opts)
}

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show classification progress for the configured user",
	Args:  cobra.NoArgs,
	RunE:  runStatus,
}

func runStatus(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	a, err := openApp(ctx, true)
	if err != nil {
		return err
	}
	defer a.Close()

	p, err := a.store.Progress(ctx, a.cfg.User)
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "User:        %s\n", a.cfg.User)
	fmt.Fprintf(out, "Classified:  %d\n", p.Classified)
	fmt.Fprintf(out, "Skipped:     %d\n", p.Skipped)
	fmt.Fprintf(out, "Remaining:   %d of %d\n", p.Remaining(), p.Total)
	fmt.Fprintf(out, "Progress:    %d%%\n", p.Percentage())
	return nil
}

var (
	exportFormat string
	exportOut    string
	exportAll    bool
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export classifications as JSON or YAML",
	Args:  cobra.NoArgs,
	RunE:  runExport,
}

func init() {
	exportCmd.Flags().StringVar(&exportFormat, "format", "json", "output format: json or yaml")
	exportCmd.Flags().StringVarP(&exportOut, "out", "o", "", "write to file instead of stdout")
	exportCmd.Flags().BoolVar(&exportAll, "all", false, "include every user's classifications")
}

func runExport(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	a, err := openApp(ctx, true)
	if err != nil {
		return err
	}
	defer a.Close()

	user := a.cfg.User
	if exportAll {
		user = ""
	}
	cs, err := a.store.Classifications(ctx, user)
	if err != nil {
		return err
	}
	var w io.Writer = cmd.OutOrStdout()
	if exportOut != "" {
		f, err := os.Create(exportOut)
		if err != nil {
			return fmt.Errorf("create export file: %w", err)
		}
		defer f.Close()
		w = f
	}
	if err := export.Write(w, export.Records(cs, a.cfg.Settings()), exportFormat); err != nil {
		return err
	}
	a.log.Info("classifications exported", zap.Int("count", len(cs)), zap.String("format", exportFormat))
	if exportOut != "" {
		fmt.Fprintf(cmd.ErrOrStderr(), "Wrote %d classifications to %s\n", len(cs), exportOut)
	}
	return nil
}

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Show or change classification settings",
}

var settingsShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the effective configuration",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := config.Load(cfgPath)
		if err != nil {
			return err
		}
		return toml.NewEncoder(cmd.OutOrStdout()).Encode(c)
	},
}

var settingsSetCmd = &cobra.Command{
	Use:       "set KEY VALUE",
	Short:     "Change one setting in the config file",
	Args:      cobra.ExactArgs(2),
	ValidArgs: config.Keys,
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := config.LoadFile(cfgPath)
		if err != nil {
			return err
		}
		if err := c.Set(args[0], args[1]); err != nil {
			return err
		}
		if err := config.Save(cfgPath, c); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s = %s\n", args[0], args[1])
		return nil
	},
}

func init() {
	settingsCmd.AddCommand(settingsShowCmd, settingsSetCmd)
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "galaxy-classify %s\n", Version)
	},
}
