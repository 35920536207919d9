// Package theme provides named color themes for the dockline TUI: a
// registry of built-in palettes plus user themes loadable from TOML, and
// lipgloss style constructors for the dock's visual states.
package theme

import (
	"sort"
	"strings"
	"sync"
)

// Theme defines the complete color palette for the dock.
type Theme struct {
	Name string

	// Base colors
	Background string // hex color e.g. "#1a1b26"
	Foreground string // hex color
	Dim        string // dimmed text
	Accent     string // highlights, active borders

	// Dock frame
	Border     string // resting dock border
	BorderDrag string // dock border while a drag is in flight
	Title      string // dock title text

	// Slot colors
	Item        string // resting slot background
	ItemText    string // resting slot foreground
	Dragged     string // in-flight slot background (faded)
	DraggedText string // in-flight slot foreground
	Hovered     string // drop-target slot background (highlight)
	HoveredText string // drop-target slot foreground

	// Status line
	StatusOK    string // confirmations (drop committed)
	StatusError string // aborts (drag cancelled)

	// Help bar
	HelpKey  string // keybinding highlight color
	HelpDesc string // help description color
}

// Current holds the active theme (set via SetCurrent).
var Current Theme

var (
	mu       sync.RWMutex
	registry = map[string]Theme{}
)

func init() {
	registerBuiltins()
	Current = defaultTheme()
}

// Get returns a named theme, falling back to Default if not found.
func Get(name string) Theme {
	mu.RLock()
	defer mu.RUnlock()
	if t, ok := registry[strings.ToLower(name)]; ok {
		return t
	}
	return registry["default"]
}

// Names returns all available theme names sorted alphabetically.
func Names() []string {
	mu.RLock()
	defer mu.RUnlock()
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// SetCurrent sets the active theme by name.
func SetCurrent(name string) {
	Current = Get(name)
}

// Register adds a theme to the registry under its lowercase name,
// replacing any existing theme of the same name.
func Register(t Theme) {
	mu.Lock()
	defer mu.Unlock()
	registry[strings.ToLower(t.Name)] = t
}
