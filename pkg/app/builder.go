package app

import (
	"gitlab.com/tinyland/lab/dockline/pkg/dock"
	"gitlab.com/tinyland/lab/dockline/pkg/theme"
)

// themedBuilder returns the default item builder: the item label styled
// for its variant with the active theme. It reads theme.Current at render
// time so a theme switch takes effect on the next frame without rebuilding
// the presenter.
func themedBuilder() dock.Builder[string] {
	return func(item string, v dock.Variant) string {
		return theme.SlotStyle(theme.Current, v).Render(item)
	}
}
