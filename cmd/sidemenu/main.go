// SPDX-License-Identifier: Unlicense OR MIT

// Command sidemenu shows a chat style window with a sliding side menu.
package main

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"gioui.org/app"
	"gioui.org/unit"
	"github.com/spf13/cobra"

	"github.com/slidingmenu/slidingmenu/config"
)

type options struct {
	configPath  string
	rightMargin float32
	logLevel    string
	open        bool
}

func main() {
	cmd := newRootCmd()
	go func() {
		if err := cmd.Execute(); err != nil {
			os.Exit(1)
		}
		os.Exit(0)
	}()
	app.Main()
}

func newRootCmd() *cobra.Command {
	var opts options
	cmd := &cobra.Command{
		Use:          "sidemenu",
		Short:        "Show a window with a sliding side menu",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, opts)
		},
	}
	f := cmd.Flags()
	f.StringVar(&opts.configPath, "config", "", "path to a "+config.FileName+" file")
	f.Float32Var(&opts.rightMargin, "right-margin", 0, "visible strip of content when open, in dp")
	f.StringVar(&opts.logLevel, "log-level", "info", "log level (debug, info, warn, error)")
	f.BoolVar(&opts.open, "open", false, "open the menu after start")
	return cmd
}

func run(cmd *cobra.Command, opts options) error {
	level, err := parseLevel(opts.logLevel)
	if err != nil {
		return err
	}
	logger := slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))

	cfg, err := loadConfig(opts)
	if err != nil {
		return err
	}
	logger.Debug("configuration loaded",
		"menu_right_margin", cfg.MenuRightMargin,
		"shadow_color", cfg.ShadowColor,
		"settle_duration", cfg.SettleDuration,
	)

	w := new(app.Window)
	w.Option(
		app.Title("Sliding menu"),
		app.Size(unit.Dp(400), unit.Dp(760)),
	)
	return newUI(cfg, logger, opts.open).loop(w)
}

func loadConfig(opts options) (config.Config, error) {
	var (
		cfg config.Config
		err error
	)
	if opts.configPath != "" {
		cfg, err = config.Load(opts.configPath)
	} else {
		dir, derr := os.Getwd()
		if derr != nil {
			return config.Config{}, fmt.Errorf("failed to get working directory: %w", derr)
		}
		cfg, err = config.LoadOptional(dir)
	}
	if err != nil {
		return config.Config{}, err
	}
	if opts.rightMargin > 0 {
		cfg.MenuRightMargin = unit.Dp(opts.rightMargin)
	}
	return cfg, nil
}

func parseLevel(s string) (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.TrimSpace(s))); err != nil {
		return 0, fmt.Errorf("invalid log level %q", s)
	}
	return level, nil
}
