package theme

// registerBuiltins registers all built-in themes in the registry.
func registerBuiltins() {
	for _, t := range []Theme{
		defaultTheme(),
		gruvboxTheme(),
		tokyoNightTheme(),
		lightTheme(),
	} {
		Register(t)
	}
}

// defaultTheme returns the dark neutral theme with purple accent.
func defaultTheme() Theme {
	return Theme{
		Name:       "default",
		Background: "#1e1e1e",
		Foreground: "#d4d4d4",
		Dim:        "#6b6b6b",
		Accent:     "#7C3AED",

		Border:     "#3e3e3e",
		BorderDrag: "#7C3AED",
		Title:      "#d4d4d4",

		Item:        "#2d2d2d",
		ItemText:    "#d4d4d4",
		Dragged:     "#252525",
		DraggedText: "#6b6b6b",
		Hovered:     "#5b21b6",
		HoveredText: "#f5f3ff",

		StatusOK:    "#4ec970",
		StatusError: "#e06c75",

		HelpKey:  "#7C3AED",
		HelpDesc: "#6b6b6b",
	}
}

// gruvboxTheme returns the warm retro Gruvbox theme.
func gruvboxTheme() Theme {
	return Theme{
		Name:       "gruvbox",
		Background: "#282828",
		Foreground: "#ebdbb2",
		Dim:        "#928374",
		Accent:     "#fe8019",

		Border:     "#504945",
		BorderDrag: "#fe8019",
		Title:      "#ebdbb2",

		Item:        "#3c3836",
		ItemText:    "#ebdbb2",
		Dragged:     "#32302f",
		DraggedText: "#928374",
		Hovered:     "#b57614",
		HoveredText: "#fbf1c7",

		StatusOK:    "#b8bb26",
		StatusError: "#fb4934",

		HelpKey:  "#fe8019",
		HelpDesc: "#928374",
	}
}

// tokyoNightTheme returns the cool blue Tokyo Night theme.
func tokyoNightTheme() Theme {
	return Theme{
		Name:       "tokyonight",
		Background: "#1a1b26",
		Foreground: "#c0caf5",
		Dim:        "#565f89",
		Accent:     "#7aa2f7",

		Border:     "#3b4261",
		BorderDrag: "#7aa2f7",
		Title:      "#c0caf5",

		Item:        "#24283b",
		ItemText:    "#c0caf5",
		Dragged:     "#1f2335",
		DraggedText: "#565f89",
		Hovered:     "#3d59a1",
		HoveredText: "#c0caf5",

		StatusOK:    "#9ece6a",
		StatusError: "#f7768e",

		HelpKey:  "#7aa2f7",
		HelpDesc: "#565f89",
	}
}

// lightTheme returns a light palette for bright terminals.
func lightTheme() Theme {
	return Theme{
		Name:       "light",
		Background: "#fafafa",
		Foreground: "#383a42",
		Dim:        "#a0a1a7",
		Accent:     "#4078f2",

		Border:     "#d3d3d3",
		BorderDrag: "#4078f2",
		Title:      "#383a42",

		Item:        "#eaeaeb",
		ItemText:    "#383a42",
		Dragged:     "#f2f2f2",
		DraggedText: "#a0a1a7",
		Hovered:     "#bcd2fd",
		HoveredText: "#1b2a4a",

		StatusOK:    "#50a14f",
		StatusError: "#e45649",

		HelpKey:  "#4078f2",
		HelpDesc: "#a0a1a7",
	}
}
