package config

import "fmt"

// Config is the root configuration structure.
type Config struct {
	General GeneralConfig `toml:"general"`
	Dock    DockConfig    `toml:"dock"`
	Theme   ThemeConfig   `toml:"theme"`
}

// GeneralConfig holds application-wide settings.
type GeneralConfig struct {
	LogLevel string `toml:"log_level"` // debug, info, warn, error
}

// DockConfig configures the dock widget itself.
type DockConfig struct {
	// Policy selects the drag feel: "collapse" splices the lifted item
	// out so the row closes around the gap; "fade" keeps it in place,
	// dimmed, until the drop commits.
	Policy string `toml:"policy"`

	// HoldThreshold is how long a press must be held before it becomes a
	// drag. Zero starts the drag immediately on press.
	HoldThreshold Duration `toml:"hold_threshold"`

	// Items is the initial dock content, left to right. Values must be
	// unique.
	Items []string `toml:"items"`

	// CellWidth fixes every slot to this display width. Zero renders
	// slots at their natural width.
	CellWidth int `toml:"cell_width"`
}

// ThemeConfig selects and extends the color theme.
type ThemeConfig struct {
	Name string `toml:"name"`
	Dir  string `toml:"dir"` // extra directory of user theme TOML files
}

// Validate checks the configuration for values the dock cannot run with.
func (c *Config) Validate() error {
	switch c.Dock.Policy {
	case "collapse", "fade":
	default:
		return fmt.Errorf("config: unknown dock policy %q (want \"collapse\" or \"fade\")", c.Dock.Policy)
	}

	if len(c.Dock.Items) == 0 {
		return fmt.Errorf("config: dock.items must not be empty")
	}
	seen := map[string]bool{}
	for _, it := range c.Dock.Items {
		if it == "" {
			return fmt.Errorf("config: dock.items must not contain empty strings")
		}
		if seen[it] {
			return fmt.Errorf("config: duplicate dock item %q (items are compared by equality and must be unique)", it)
		}
		seen[it] = true
	}

	if c.Dock.CellWidth < 0 {
		return fmt.Errorf("config: dock.cell_width must not be negative")
	}

	switch c.General.LogLevel {
	case "", "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("config: unknown log level %q", c.General.LogLevel)
	}

	return nil
}
