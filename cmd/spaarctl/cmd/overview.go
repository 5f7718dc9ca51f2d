package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/spaarbot/spaarctl/internal/ui"
)

var overviewCmd = &cobra.Command{
	Use:   "overview",
	Short: "Show the finance overview panel",
	RunE:  runOverview,
}

// Placeholder figures shown until account sync lands; the panel exists to
// exercise the live theme and translations.
type overviewTotals struct {
	balance       float64
	income        float64
	expenses      float64
	subscriptions int
}

func runOverview(cmd *cobra.Command, args []string) error {
	tr := session.Translate

	var totals overviewTotals
	err := ui.RunWithSpinner(tr("overview.refresh"), func() error {
		totals = overviewTotals{
			balance:       2457.80,
			income:        3200.00,
			expenses:      742.20,
			subscriptions: 4,
		}
		return nil
	})
	if err != nil {
		return err
	}

	ui.StartScreen(tr("overview.title"), tr("app.tagline"))

	unit, err := currency.ParseISO(cfg.Currency)
	if err != nil {
		unit = currency.EUR
	}
	printer := message.NewPrinter(language.Make(session.CurrentLanguage()))
	amount := func(v float64) string {
		return printer.Sprint(currency.Symbol(unit.Amount(v)))
	}

	rows := []string{
		overviewRow(tr("overview.balance"), ui.PrimaryStyle().Render(amount(totals.balance))),
		overviewRow(tr("overview.income"), ui.SuccessStyle.Render(amount(totals.income))),
		overviewRow(tr("overview.expenses"), ui.ErrorStyle.Render(amount(totals.expenses))),
		overviewRow(tr("overview.subscriptions"), fmt.Sprintf("%d", totals.subscriptions)),
	}

	def := session.CurrentTheme()
	footer := ui.MutedStyle.Render(def.DisplayName + "  " + ui.GradientPreview(def.Preview))

	body := strings.Join(rows, "\n") + "\n\n" + footer
	fmt.Println(ui.PanelBox.Render(body))
	return nil
}

func overviewRow(label string, value string) string {
	return fmt.Sprintf("%-18s %s", ui.MutedStyle.Render(label), value)
}
