package appearance

import catppuccin "github.com/catppuccin/go"

// catalog order is display order in the theme picker.
var catalog = []ThemeDefinition{
	{
		ID:          "dark",
		DisplayName: "Dark Mode",
		Preview:     Gradient{From: "#111827", Via: "#1F2937", To: "#374151"},
		Palette: Palette{
			Primary:    "#6366F1",
			Secondary:  "#818CF8",
			Accent:     "#38BDF8",
			Background: "#0B1120",
			Surface:    "#111827",
			Text:       "#E2E8F0",
			Muted:      "#94A3B8",
			Border:     "#334155",
			Success:    "#34D399",
			Warning:    "#FBBF24",
			Error:      "#F87171",
		},
	},
	{
		ID:          "ocean",
		DisplayName: "Ocean Blue",
		Preview:     Gradient{From: "#0C4A6E", Via: "#0369A1", To: "#38BDF8"},
		Palette: Palette{
			Primary:    "#0EA5E9",
			Secondary:  "#22D3EE",
			Accent:     "#7DD3FC",
			Background: "#082F49",
			Surface:    "#0C4A6E",
			Text:       "#E0F2FE",
			Muted:      "#7BA4BD",
			Border:     "#155E75",
			Success:    "#2DD4BF",
			Warning:    "#FCD34D",
			Error:      "#FB7185",
		},
	},
	{
		ID:          "purple",
		DisplayName: "Purple Haze",
		Preview:     Gradient{From: "#2E1065", Via: "#6D28D9", To: "#C4B5FD"},
		PremiumOnly: true,
		Palette: Palette{
			Primary:    "#8B5CF6",
			Secondary:  "#A78BFA",
			Accent:     "#F0ABFC",
			Background: "#1E1033",
			Surface:    "#2E1065",
			Text:       "#EDE9FE",
			Muted:      "#A195C2",
			Border:     "#4C1D95",
			Success:    "#4ADE80",
			Warning:    "#FACC15",
			Error:      "#F87171",
		},
	},
	{
		ID:          "emerald",
		DisplayName: "Emerald Green",
		Preview:     Gradient{From: "#022C22", Via: "#047857", To: "#6EE7B7"},
		PremiumOnly: true,
		Palette: Palette{
			Primary:    "#10B981",
			Secondary:  "#34D399",
			Accent:     "#6EE7B7",
			Background: "#022C22",
			Surface:    "#064E3B",
			Text:       "#D1FAE5",
			Muted:      "#86A99C",
			Border:     "#065F46",
			Success:    "#4ADE80",
			Warning:    "#FBBF24",
			Error:      "#FB7185",
		},
	},
	{
		ID:          "mocha",
		DisplayName: "Catppuccin Mocha",
		Preview: Gradient{
			From: catppuccin.Mocha.Crust().Hex,
			Via:  catppuccin.Mocha.Mauve().Hex,
			To:   catppuccin.Mocha.Rosewater().Hex,
		},
		PremiumOnly: true,
		Palette: Palette{
			Primary:    catppuccin.Mocha.Mauve().Hex,
			Secondary:  catppuccin.Mocha.Lavender().Hex,
			Accent:     catppuccin.Mocha.Sky().Hex,
			Background: catppuccin.Mocha.Crust().Hex,
			Surface:    catppuccin.Mocha.Base().Hex,
			Text:       catppuccin.Mocha.Text().Hex,
			Muted:      catppuccin.Mocha.Overlay1().Hex,
			Border:     catppuccin.Mocha.Surface2().Hex,
			Success:    catppuccin.Mocha.Green().Hex,
			Warning:    catppuccin.Mocha.Yellow().Hex,
			Error:      catppuccin.Mocha.Red().Hex,
		},
	},
}
