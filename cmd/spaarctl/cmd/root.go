package cmd

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/spaarbot/spaarctl/internal/appearance"
	"github.com/spaarbot/spaarctl/internal/config"
	"github.com/spaarbot/spaarctl/internal/i18n"
	"github.com/spaarbot/spaarctl/internal/store"
	"github.com/spaarbot/spaarctl/internal/ui"
)

var (
	verbose   bool
	quiet     bool
	noColor   bool
	cfgFile   string
	ephemeral bool

	logger    *log.Logger
	cfg       *config.Config
	session   *appearance.Session
	prefStore appearance.Store
	storeDesc string
)

var rootCmd = &cobra.Command{
	Use:           "spaarctl",
	Short:         "Terminal client for the SpaarBot finance tracker",
	Long:          `spaarctl is the terminal companion for SpaarBot: review your balance, tune the look of the client, and manage your preferences.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		setupLogger()

		if cmd.Name() == "version" || cmd.Name() == "help" {
			return nil
		}

		var err error
		if cfgFile != "" {
			cfg, err = config.Load(cfgFile)
		} else {
			cfg, err = config.LoadFromUserConfig()
		}
		if err != nil {
			logger.Warn("could not load config, using defaults", "error", err)
			cfg = config.DefaultConfig()
		}
		if err := cfg.Validate(); err != nil {
			logger.Warn("invalid config, using defaults", "error", err)
			cfg = config.DefaultConfig()
		}

		if noColor || cfg.UI.NoColor || os.Getenv("NO_COLOR") != "" {
			ui.Projector().SetNoColor(true)
		}

		openPreferenceStore()

		bundle, err := i18n.Load()
		if err != nil {
			return fmt.Errorf("loading translations: %w", err)
		}

		session, err = appearance.Start(appearance.Options{
			Store:           prefStore,
			Projector:       ui.Projector(),
			Premium:         cfg.Account.Premium,
			DefaultLanguage: i18n.DefaultCode,
			Translations:    bundle.Tables(),
			Logger:          logger,
		})
		if err != nil {
			return fmt.Errorf("starting presentation session: %w", err)
		}

		// Styles carry the resolved theme now; restyle the logger too.
		setupLogger()
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if closer, ok := prefStore.(io.Closer); ok {
			_ = closer.Close()
		}
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) == 0 {
			return runRootTUI()
		}
		return cmd.Help()
	},
}

// openPreferenceStore tries the durable SQLite store and degrades to the
// in-memory store when it cannot be opened. The session stays fully
// usable either way; only durability is lost.
func openPreferenceStore() {
	if ephemeral {
		prefStore = store.NewMemory()
		storeDesc = "in-memory (ephemeral)"
		return
	}
	s, err := store.OpenSQLite(cfg.Store.Path)
	if err != nil {
		logger.Warn("preference store unavailable, continuing without persistence", "error", err)
		prefStore = store.NewMemory()
		storeDesc = "in-memory (store unavailable)"
		return
	}
	prefStore = s
	storeDesc = cfg.Store.Path
}

func runRootTUI() error {
	tr := session.Translate
	for {
		menuItems := []ui.MenuItem{
			{ID: "overview", TitleText: tr("menu.overview"), Details: tr("menu.overview.details")},
			{ID: "settings", TitleText: tr("menu.settings"), Details: tr("menu.settings.details")},
			{ID: "status", TitleText: tr("menu.status"), Details: tr("menu.status.details")},
			{ID: "exit", TitleText: tr("menu.exit"), Details: tr("menu.exit.details")},
		}

		choice, err := ui.RunMenu(tr("app.title"), tr("app.tagline"), menuItems)
		if err != nil {
			return runRootFallback()
		}

		if choice == ui.MenuActionQuit || choice == "exit" || choice == "" {
			return nil
		}

		if err := runRootChoice(choice); err != nil {
			if errors.Is(err, huh.ErrUserAborted) {
				continue
			}
			return err
		}

		if err := waitForEnter(tr("settings.back")); err != nil {
			return err
		}
	}
}

func runRootChoice(choice string) error {
	switch choice {
	case "overview":
		return overviewCmd.RunE(overviewCmd, []string{})
	case "settings":
		return settingsCmd.RunE(settingsCmd, []string{})
	case "status":
		return statusCmd.RunE(statusCmd, []string{})
	case "exit", ui.MenuActionQuit, ui.MenuActionBack, "":
		return nil
	default:
		return nil
	}
}

func runRootFallback() error {
	tr := session.Translate
	ui.StartScreen(tr("app.title"), tr("app.tagline"))
	var fallbackChoice string
	fallbackErr := huh.NewSelect[string]().
		Title(tr("app.title")).
		Options(
			huh.NewOption(tr("menu.overview"), "overview"),
			huh.NewOption(tr("menu.settings"), "settings"),
			huh.NewOption(tr("menu.status"), "status"),
			huh.NewOption(tr("menu.exit"), "exit"),
		).
		Value(&fallbackChoice).
		WithTheme(ui.HuhTheme()).
		Run()
	if fallbackErr != nil {
		if errors.Is(fallbackErr, huh.ErrUserAborted) {
			return nil
		}
		return fallbackErr
	}
	return runRootChoice(fallbackChoice)
}

func waitForEnter(prompt string) error {
	if !ui.IsInteractiveTerminal() {
		return nil
	}
	fmt.Println()
	fmt.Println(ui.HintStyle.Render(prompt))
	reader := bufio.NewReader(os.Stdin)
	_, err := reader.ReadString('\n')
	return err
}

func configPath() (string, error) {
	if cfgFile != "" {
		return cfgFile, nil
	}
	return config.GetConfigPath()
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "Suppress non-essential output")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "Disable colored output")
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "Config file (default: user config dir)")
	rootCmd.PersistentFlags().BoolVar(&ephemeral, "ephemeral", false, "Keep preferences in memory only")

	rootCmd.AddCommand(overviewCmd)
	rootCmd.AddCommand(settingsCmd)
	rootCmd.AddCommand(statusCmd)
	rootCmd.AddCommand(versionCmd)
}

func setupLogger() {
	level := log.InfoLevel
	if verbose {
		level = log.DebugLevel
	}
	if quiet {
		level = log.WarnLevel
	}

	styles := log.DefaultStyles()
	if !noColor && os.Getenv("NO_COLOR") == "" {
		styles.Levels[log.DebugLevel] = lipgloss.NewStyle().
			SetString("DEBUG").
			Foreground(ui.Muted).
			Bold(true)
		styles.Levels[log.InfoLevel] = lipgloss.NewStyle().
			SetString("INFO").
			Foreground(ui.Primary).
			Bold(true)
		styles.Levels[log.WarnLevel] = lipgloss.NewStyle().
			SetString("WARN").
			Foreground(ui.Warning).
			Bold(true)
		styles.Levels[log.ErrorLevel] = lipgloss.NewStyle().
			SetString("ERROR").
			Foreground(ui.Error).
			Bold(true)
	}

	logger = log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: verbose,
		TimeFormat:      time.Kitchen,
		Level:           level,
	})
	logger.SetStyles(styles)
}
