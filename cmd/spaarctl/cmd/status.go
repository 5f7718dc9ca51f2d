package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/spaarbot/spaarctl/internal/appearance"
	"github.com/spaarbot/spaarctl/internal/ui"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show the active selection and store health",
	RunE:  runStatus,
}

func runStatus(cmd *cobra.Command, args []string) error {
	tr := session.Translate
	selection := session.Selection()

	ui.StartScreen(tr("status.title"), "")

	fmt.Println(ui.Title.Render(tr("status.selection")))
	printKV(tr("settings.theme"), session.CurrentTheme().DisplayName)
	printKV(tr("settings.ui_mode"), tr("mode."+string(selection.UIMode)))
	printKV(tr("settings.language"), selection.Language)

	fmt.Println()
	fmt.Println(ui.Title.Render(tr("status.store")))
	printKV(tr("status.store"), storeDesc)

	entitlement := tr("status.free")
	if cfg.Account.Premium {
		entitlement = tr("status.premium")
	}
	printKV(tr("status.entitlement"), entitlement)

	fmt.Println()
	fmt.Println(ui.Title.Render(tr("status.themes")))
	for _, def := range appearance.Themes() {
		marker := "  "
		if def.ID == selection.ThemeID {
			marker = ui.SuccessStyle.Render("✓ ")
		}
		line := marker + def.DisplayName + "  " + ui.GradientPreview(def.Preview)
		if def.PremiumOnly && !cfg.Account.Premium {
			line += "  🔒"
		}
		fmt.Println("  " + line)
	}

	fmt.Println()
	fmt.Println(ui.Title.Render(tr("status.languages")))
	for _, code := range session.SupportedLanguages() {
		marker := "  "
		if code == selection.Language {
			marker = ui.SuccessStyle.Render("✓ ")
		}
		name := languageNames[code]
		if name == "" {
			name = code
		}
		fmt.Println("  " + marker + name)
	}

	return nil
}

func printKV(key string, value string) {
	fmt.Printf("  %s %s\n", ui.MutedStyle.Render(key+":"), value)
}
