package theme

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/BurntSushi/toml"
)

// tomlTheme is the TOML-serializable representation of a Theme.
type tomlTheme struct {
	Name   string     `toml:"name"`
	Base   tomlBase   `toml:"base"`
	Frame  tomlFrame  `toml:"frame"`
	Slot   tomlSlot   `toml:"slot"`
	Status tomlStatus `toml:"status"`
	Help   tomlHelp   `toml:"help"`
}

type tomlBase struct {
	Background string `toml:"background"`
	Foreground string `toml:"foreground"`
	Dim        string `toml:"dim"`
	Accent     string `toml:"accent"`
}

type tomlFrame struct {
	Border     string `toml:"border"`
	BorderDrag string `toml:"border_drag"`
	Title      string `toml:"title"`
}

type tomlSlot struct {
	Item        string `toml:"item"`
	ItemText    string `toml:"item_text"`
	Dragged     string `toml:"dragged"`
	DraggedText string `toml:"dragged_text"`
	Hovered     string `toml:"hovered"`
	HoveredText string `toml:"hovered_text"`
}

type tomlStatus struct {
	OK    string `toml:"ok"`
	Error string `toml:"error"`
}

type tomlHelp struct {
	Key  string `toml:"key"`
	Desc string `toml:"desc"`
}

var hexColorRegex = regexp.MustCompile(`^#[0-9a-fA-F]{6}$`)

// LoadFromTOML parses a TOML theme definition from raw bytes.
func LoadFromTOML(data []byte) (Theme, error) {
	var tt tomlTheme
	if err := toml.Unmarshal(data, &tt); err != nil {
		return Theme{}, fmt.Errorf("theme: parse TOML: %w", err)
	}

	t := Theme{
		Name:       tt.Name,
		Background: tt.Base.Background,
		Foreground: tt.Base.Foreground,
		Dim:        tt.Base.Dim,
		Accent:     tt.Base.Accent,

		Border:     tt.Frame.Border,
		BorderDrag: tt.Frame.BorderDrag,
		Title:      tt.Frame.Title,

		Item:        tt.Slot.Item,
		ItemText:    tt.Slot.ItemText,
		Dragged:     tt.Slot.Dragged,
		DraggedText: tt.Slot.DraggedText,
		Hovered:     tt.Slot.Hovered,
		HoveredText: tt.Slot.HoveredText,

		StatusOK:    tt.Status.OK,
		StatusError: tt.Status.Error,

		HelpKey:  tt.Help.Key,
		HelpDesc: tt.Help.Desc,
	}

	if err := validateTheme(t); err != nil {
		return Theme{}, err
	}

	return t, nil
}

// SaveToTOML serializes a theme to TOML bytes.
func SaveToTOML(t Theme) ([]byte, error) {
	tt := tomlTheme{
		Name: t.Name,
		Base: tomlBase{
			Background: t.Background,
			Foreground: t.Foreground,
			Dim:        t.Dim,
			Accent:     t.Accent,
		},
		Frame: tomlFrame{
			Border:     t.Border,
			BorderDrag: t.BorderDrag,
			Title:      t.Title,
		},
		Slot: tomlSlot{
			Item:        t.Item,
			ItemText:    t.ItemText,
			Dragged:     t.Dragged,
			DraggedText: t.DraggedText,
			Hovered:     t.Hovered,
			HoveredText: t.HoveredText,
		},
		Status: tomlStatus{
			OK:    t.StatusOK,
			Error: t.StatusError,
		},
		Help: tomlHelp{
			Key:  t.HelpKey,
			Desc: t.HelpDesc,
		},
	}

	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(tt); err != nil {
		return nil, fmt.Errorf("theme: encode TOML: %w", err)
	}
	return buf.Bytes(), nil
}

// LoadUserThemes reads every *.toml file in dir and registers the themes it
// finds. Files that fail to parse or validate are skipped and reported in
// the returned error list; valid themes are registered regardless.
func LoadUserThemes(dir string) []error {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return []error{fmt.Errorf("theme: read dir %s: %w", dir, err)}
	}

	var errs []error
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".toml") {
			continue
		}
		path := filepath.Join(dir, e.Name())
		data, err := os.ReadFile(path)
		if err != nil {
			errs = append(errs, fmt.Errorf("theme: read %s: %w", path, err))
			continue
		}
		t, err := LoadFromTOML(data)
		if err != nil {
			errs = append(errs, fmt.Errorf("theme: %s: %w", path, err))
			continue
		}
		Register(t)
	}
	return errs
}

// validateTheme checks that all required color fields are present and valid hex.
func validateTheme(t Theme) error {
	if t.Name == "" {
		return fmt.Errorf("theme: missing required field %q", "name")
	}

	colorFields := map[string]string{
		"base.background":   t.Background,
		"base.foreground":   t.Foreground,
		"base.dim":          t.Dim,
		"base.accent":       t.Accent,
		"frame.border":      t.Border,
		"frame.border_drag": t.BorderDrag,
		"frame.title":       t.Title,
		"slot.item":         t.Item,
		"slot.item_text":    t.ItemText,
		"slot.dragged":      t.Dragged,
		"slot.dragged_text": t.DraggedText,
		"slot.hovered":      t.Hovered,
		"slot.hovered_text": t.HoveredText,
		"status.ok":         t.StatusOK,
		"status.error":      t.StatusError,
		"help.key":          t.HelpKey,
		"help.desc":         t.HelpDesc,
	}

	for field, value := range colorFields {
		if value == "" {
			return fmt.Errorf("theme: missing required field %q", field)
		}
		if !hexColorRegex.MatchString(value) {
			return fmt.Errorf("theme: invalid hex color %q for field %q (expected #RRGGBB)", value, field)
		}
	}

	return nil
}
