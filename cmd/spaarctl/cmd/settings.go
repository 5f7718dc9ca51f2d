package cmd

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"

	"github.com/spaarbot/spaarctl/internal/appearance"
	"github.com/spaarbot/spaarctl/internal/ui"
)

// settingsKeyMap lets q leave a form the same way esc does, matching the
// menu bindings.
func settingsKeyMap() *huh.KeyMap {
	keyMap := huh.NewDefaultKeyMap()
	keyMap.Quit = key.NewBinding(
		key.WithKeys("ctrl+c", "q"),
		key.WithHelp("q", "back"),
	)
	return keyMap
}

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Configure theme, display mode, language, and preferences",
	RunE:  runSettings,
}

var languageNames = map[string]string{
	"de": "Deutsch",
	"en": "English",
	"ru": "Русский",
	"uk": "Українська",
}

func runSettings(cmd *cobra.Command, args []string) error {
	tr := session.Translate

	ui.StartScreen(tr("settings.title"), tr("settings.subtitle"))

	for {
		choice, err := ui.RunMenuWithOptions(tr("settings.title"), tr("settings.subtitle"), []ui.MenuItem{
			{ID: "theme", TitleText: tr("settings.theme"), Details: tr("settings.theme.details")},
			{ID: "ui-mode", TitleText: tr("settings.ui_mode"), Details: tr("settings.ui_mode.details")},
			{ID: "language", TitleText: tr("settings.language"), Details: tr("settings.language.details")},
			{ID: "preferences", TitleText: tr("settings.preferences"), Details: tr("settings.preferences.details")},
		}, ui.WithBackNavigation(tr("settings.back")))
		if err != nil {
			return err
		}

		switch choice {
		case ui.MenuActionBack, ui.MenuActionQuit, "":
			return nil
		case "theme":
			err = runThemeForm()
		case "ui-mode":
			err = runUIModeForm()
		case "language":
			err = runLanguageForm()
		case "preferences":
			err = runPreferencesForm()
		}
		if err != nil {
			if errors.Is(err, huh.ErrUserAborted) {
				continue
			}
			return err
		}
	}
}

func themeOptionLabel(def appearance.ThemeDefinition, premium bool) string {
	label := def.DisplayName + "  " + ui.GradientPreview(def.Preview)
	if def.PremiumOnly && !premium {
		label += "  🔒 " + session.Translate("settings.premium_badge")
	}
	return label
}

func runThemeForm() error {
	tr := session.Translate
	premium := cfg.Account.Premium

	selected := session.CurrentTheme().ID
	options := make([]huh.Option[string], 0)
	for _, def := range appearance.Themes() {
		options = append(options, huh.NewOption(themeOptionLabel(def, premium), def.ID))
	}

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title(tr("settings.theme")).
				Description(tr("settings.theme.details")).
				Options(options...).
				Value(&selected),
		),
	).WithTheme(ui.HuhTheme()).WithKeyMap(settingsKeyMap())

	if err := form.Run(); err != nil {
		return err
	}

	if _, err := session.SetTheme(selected, premium); err != nil {
		if errors.Is(err, appearance.ErrLockedTheme) {
			fmt.Println(ui.ErrorBox.Render(tr("settings.locked")))
			return nil
		}
		return err
	}
	fmt.Println(ui.SuccessBox.Render(tr("settings.saved")))
	return nil
}

func runUIModeForm() error {
	tr := session.Translate

	selected := session.CurrentUIMode()
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[appearance.UIMode]().
				Title(tr("settings.ui_mode")).
				Description(tr("settings.ui_mode.details")).
				Options(
					huh.NewOption(tr("mode.pro"), appearance.ModePro),
					huh.NewOption(tr("mode.lite"), appearance.ModeLite),
				).
				Value(&selected),
		),
	).WithTheme(ui.HuhTheme()).WithKeyMap(settingsKeyMap())

	if err := form.Run(); err != nil {
		return err
	}

	if _, err := session.SetUIMode(selected); err != nil {
		fmt.Println(ui.ErrorBox.Render(err.Error()))
		return nil
	}
	fmt.Println(ui.SuccessBox.Render(tr("settings.saved")))
	return nil
}

func runLanguageForm() error {
	tr := session.Translate

	selected := session.CurrentLanguage()
	options := make([]huh.Option[string], 0)
	for _, code := range session.SupportedLanguages() {
		name := languageNames[code]
		if name == "" {
			name = code
		}
		options = append(options, huh.NewOption(name, code))
	}

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title(tr("settings.language")).
				Description(tr("settings.language.details")).
				Options(options...).
				Value(&selected),
		),
	).WithTheme(ui.HuhTheme()).WithKeyMap(settingsKeyMap())

	if err := form.Run(); err != nil {
		return err
	}

	if _, err := session.SetLanguage(selected); err != nil {
		fmt.Println(ui.ErrorBox.Render(err.Error()))
		return nil
	}
	// tr still closes over the session; the new language is live now.
	fmt.Println(ui.SuccessBox.Render(tr("settings.saved")))
	return nil
}

func runPreferencesForm() error {
	tr := session.Translate

	currency := cfg.Currency
	notifications := cfg.Notifications

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title(tr("settings.currency")).
				Placeholder("EUR").
				Value(&currency).
				Validate(func(value string) error {
					trimmed := strings.ToUpper(strings.TrimSpace(value))
					if len(trimmed) != 3 {
						return fmt.Errorf("enter a three-letter ISO code")
					}
					return nil
				}),
			huh.NewConfirm().
				Title(tr("settings.notifications")).
				Value(&notifications),
		),
	).WithTheme(ui.HuhTheme()).WithKeyMap(settingsKeyMap())

	if err := form.Run(); err != nil {
		return err
	}

	cfg.Currency = strings.ToUpper(strings.TrimSpace(currency))
	cfg.Notifications = notifications

	path, err := configPath()
	if err != nil {
		return err
	}

	err = ui.RunWithSpinner(tr("settings.saved"), func() error {
		return cfg.Save(path)
	})
	if err != nil {
		return fmt.Errorf("saving config: %w", err)
	}
	return nil
}
