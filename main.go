// dockline is a drag-reorderable dock for the terminal.
//
// It renders a horizontal row of items that can be reordered by dragging
// with the mouse (press-hold to lift, move to preview, release to drop)
// or with shift+arrow keys. Two reorder policies are supported: collapse
// (the row closes around the lifted item and reflows live) and fade (the
// item stays put, dimmed, until the drop commits).
//
// Usage:
//
//	dockline [flags]
//
// Flags:
//
//	-config string  Path to configuration file (default: ~/.config/dockline/config.toml)
//	-items string   Comma-separated item labels (overrides config)
//	-policy string  Reorder policy: collapse|fade (overrides config)
//	-theme string   Theme name (overrides config)
//	-hold duration  Press-and-hold threshold before a drag starts
//	-print          Render the dock once to stdout and exit
//	-verbose        Enable verbose logging
//	-version        Print version and exit
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	zone "github.com/lrstanley/bubblezone"

	"gitlab.com/tinyland/lab/dockline/pkg/app"
	"gitlab.com/tinyland/lab/dockline/pkg/config"
	"gitlab.com/tinyland/lab/dockline/pkg/terminal"
	"gitlab.com/tinyland/lab/dockline/pkg/theme"
)

var (
	version = "0.1.0"
	commit  = "dev"
	date    = "unknown"
)

func main() {
	var (
		configPath  = flag.String("config", "", "Path to configuration file")
		itemsFlag   = flag.String("items", "", "Comma-separated item labels (overrides config)")
		policyFlag  = flag.String("policy", "", "Reorder policy: collapse|fade (overrides config)")
		themeFlag   = flag.String("theme", "", "Theme name (overrides config)")
		holdFlag    = flag.Duration("hold", -1, "Press-and-hold threshold before a drag starts")
		printOnce   = flag.Bool("print", false, "Render the dock once to stdout and exit")
		verbose     = flag.Bool("verbose", false, "Enable verbose logging")
		showVersion = flag.Bool("version", false, "Print version and exit")
	)
	flag.Parse()

	if *showVersion {
		fmt.Printf("dockline %s (%s, built %s)\n", version, commit, date)
		return
	}

	cfg, err := loadConfig(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "dockline: %v\n", err)
		os.Exit(1)
	}
	applyFlagOverrides(cfg, *itemsFlag, *policyFlag, *themeFlag, *holdFlag)

	if *verbose {
		cfg.General.LogLevel = "debug"
	}
	setupLogging(cfg.General.LogLevel)

	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "dockline: invalid configuration: %v\n", err)
		os.Exit(1)
	}

	if cfg.Theme.Dir != "" {
		for _, err := range theme.LoadUserThemes(cfg.Theme.Dir) {
			slog.Warn("skipping theme file", "error", err)
		}
	}
	theme.SetCurrent(cfg.Theme.Name)

	if *printOnce || !terminal.IsTTY(os.Stdout) {
		if err := renderOnce(cfg); err != nil {
			fmt.Fprintf(os.Stderr, "dockline: %v\n", err)
			os.Exit(1)
		}
		return
	}

	if err := runTUI(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "dockline: %v\n", err)
		os.Exit(1)
	}
}

// loadConfig loads from the explicit path when given, else the standard
// search paths.
func loadConfig(path string) (*config.Config, error) {
	if path != "" {
		return config.LoadFromFile(path)
	}
	return config.Load()
}

// applyFlagOverrides layers command-line flags over the loaded config.
// Flags beat the file and the environment.
func applyFlagOverrides(cfg *config.Config, items, policy, themeName string, hold time.Duration) {
	if items != "" {
		var parsed []string
		for _, it := range strings.Split(items, ",") {
			if it = strings.TrimSpace(it); it != "" {
				parsed = append(parsed, it)
			}
		}
		cfg.Dock.Items = parsed
	}
	if policy != "" {
		cfg.Dock.Policy = policy
	}
	if themeName != "" {
		cfg.Theme.Name = themeName
	}
	if hold >= 0 {
		cfg.Dock.HoldThreshold = config.Duration{Duration: hold}
	}
}

func setupLogging(level string) {
	var lvl slog.Level
	switch level {
	case "debug":
		lvl = slog.LevelDebug
	case "warn":
		lvl = slog.LevelWarn
	case "error":
		lvl = slog.LevelError
	default:
		lvl = slog.LevelInfo
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: lvl,
	})))
}

// renderOnce renders a single resting frame to stdout, for pipelines and
// non-TTY use. Zones still need a manager because the presenter marks
// every slot.
func renderOnce(cfg *config.Config) error {
	zone.NewGlobal()
	defer zone.Close()

	m, err := app.New(cfg)
	if err != nil {
		return err
	}
	defer m.Close()

	size := terminal.GetSize()
	model, _ := m.Update(tea.WindowSizeMsg{Width: size.Cols, Height: size.Rows})
	fmt.Println(model.View())
	return nil
}

// runTUI runs the interactive dock under Bubbletea with mouse tracking.
func runTUI(cfg *config.Config) error {
	zone.NewGlobal()
	defer zone.Close()

	m, err := app.New(cfg)
	if err != nil {
		return err
	}
	defer m.Close()

	p := tea.NewProgram(m,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)
	m.Wire(p.Send)

	slog.Debug("starting dockline",
		"items", len(cfg.Dock.Items),
		"policy", cfg.Dock.Policy,
		"theme", cfg.Theme.Name,
		"color_profile", terminal.ColorProfile())

	_, err = p.Run()
	return err
}
