package ui

import (
	"fmt"
	"io"
	"runtime/debug"
	"strings"
	"time"

	"charm.land/bubbles/v2/help"
	"charm.land/bubbles/v2/key"
	"charm.land/bubbles/v2/list"
	tea "charm.land/bubbletea/v2"
	lipgloss "charm.land/lipgloss/v2"
	"github.com/charmbracelet/x/ansi"

	"github.com/spaarbot/spaarctl/internal/appearance"
)

// Sentinel choices returned by the menu alongside item IDs.
const (
	MenuActionBack = "__back__"
	MenuActionQuit = "__quit__"
)

// MenuItem is one selectable entry.
type MenuItem struct {
	ID        string
	TitleText string
	Details   string
}

func (m MenuItem) Title() string       { return m.TitleText }
func (m MenuItem) Description() string { return m.Details }
func (m MenuItem) FilterValue() string { return m.TitleText + " " + m.Details + " " + m.ID }

type MenuOption func(*menuConfig)

type menuConfig struct {
	allowBack          bool
	backLabel          string
	initialSelectionID string
}

// WithBackNavigation makes esc/q return MenuActionBack instead of quitting.
func WithBackNavigation(label string) MenuOption {
	return func(cfg *menuConfig) {
		cfg.allowBack = true
		if label != "" {
			cfg.backLabel = label
		}
	}
}

// WithInitialSelectionID pre-selects an item by ID when the menu opens.
func WithInitialSelectionID(id string) MenuOption {
	return func(cfg *menuConfig) {
		cfg.initialSelectionID = strings.TrimSpace(id)
	}
}

type menuKeyMap struct {
	Select key.Binding
	Jump   key.Binding
	Filter key.Binding
	Leave  key.Binding
}

func newMenuKeyMap(allowBack bool, backLabel string) menuKeyMap {
	leaveHelp := "quit"
	if allowBack {
		leaveHelp = backLabel
	}
	return menuKeyMap{
		Select: key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "select")),
		Jump:   key.NewBinding(key.WithKeys("1", "2", "3", "4", "5", "6", "7", "8", "9"), key.WithHelp("1-9", "jump")),
		Filter: key.NewBinding(key.WithKeys("/"), key.WithHelp("/", "filter")),
		Leave:  key.NewBinding(key.WithKeys("esc", "q"), key.WithHelp("esc/q", leaveHelp)),
	}
}

func (k menuKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Select, k.Jump, k.Filter, k.Leave}
}

func (k menuKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Select, k.Jump}, {k.Filter, k.Leave}}
}

// itemDelegate renders entries as a numbered launcher row.
type itemDelegate struct {
	slot     lipgloss.Style
	row      lipgloss.Style
	selected lipgloss.Style
}

func newItemDelegate() itemDelegate {
	return itemDelegate{
		slot:     lipgloss.NewStyle().Foreground(lipgloss.Color(string(Muted))),
		row:      lipgloss.NewStyle().Foreground(lipgloss.Color(string(Foreground))),
		selected: lipgloss.NewStyle().Foreground(lipgloss.Color(string(Primary))).Bold(true),
	}
}

func (d itemDelegate) Height() int                         { return 1 }
func (d itemDelegate) Spacing() int                        { return 0 }
func (d itemDelegate) Update(tea.Msg, *list.Model) tea.Cmd { return nil }
func (d itemDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	entry, ok := item.(MenuItem)
	if !ok || m.Width() <= 0 {
		return
	}

	text := entry.TitleText
	if entry.Details != "" && m.Width() > 68 {
		text += " - " + entry.Details
	}
	text = ansi.Truncate(text, max(14, m.Width()-6), "...")
	slot := fmt.Sprintf("%d.", index+1)

	if index == m.Index() && m.FilterState() != list.Filtering {
		fmt.Fprint(w, "> "+d.selected.Render(slot+" "+text)) //nolint:errcheck
		return
	}
	fmt.Fprint(w, "  "+d.slot.Render(slot)+" "+d.row.Render(text)) //nolint:errcheck
}

type menuTickMsg time.Time

type menuModel struct {
	list      list.Model
	title     string
	subtitle  string
	choice    string
	quitting  bool
	allowBack bool
	help      help.Model
	keys      menuKeyMap

	width  int
	height int
	now    time.Time
}

func newMenuModel(title string, subtitle string, items []MenuItem, cfg menuConfig) menuModel {
	listItems := make([]list.Item, len(items))
	for i, item := range items {
		listItems[i] = item
	}

	l := list.New(listItems, newItemDelegate(), 0, 0)
	l.SetShowTitle(false)
	l.SetShowHelp(false)
	l.SetShowStatusBar(false)
	l.SetShowPagination(false)
	l.DisableQuitKeybindings()
	l.Styles.HelpStyle = lipgloss.NewStyle().Foreground(lipgloss.Color(string(Muted)))
	l.Styles.PaginationStyle = l.Styles.HelpStyle

	if cfg.initialSelectionID != "" {
		for idx, item := range items {
			if item.ID == cfg.initialSelectionID {
				l.Select(idx)
				break
			}
		}
	}

	helpModel := help.New()
	keyStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(string(Accent))).Bold(true)
	hintStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(string(Muted)))
	helpModel.Styles.ShortKey = keyStyle
	helpModel.Styles.ShortDesc = hintStyle
	helpModel.Styles.FullKey = keyStyle
	helpModel.Styles.FullDesc = hintStyle
	helpModel.Styles.Ellipsis = hintStyle

	return menuModel{
		list:      l,
		title:     title,
		subtitle:  subtitle,
		allowBack: cfg.allowBack,
		help:      helpModel,
		keys:      newMenuKeyMap(cfg.allowBack, cfg.backLabel),
		now:       time.Now(),
	}
}

func menuTick() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return menuTickMsg(t)
	})
}

func (m menuModel) Init() tea.Cmd {
	return menuTick()
}

func (m menuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.resizeList()
	case menuTickMsg:
		m.now = time.Time(msg)
		return m, menuTick()
	case tea.KeyPressMsg:
		switch msg.String() {
		case "enter":
			if item, ok := m.list.SelectedItem().(MenuItem); ok {
				m.choice = item.ID
				return m, tea.Quit
			}
		case "1", "2", "3", "4", "5", "6", "7", "8", "9":
			if m.list.FilterState() != list.Filtering && m.jumpTo(msg.String()) {
				return m, tea.Quit
			}
		case "q", "esc":
			if m.list.FilterState() == list.Filtering {
				break
			}
			m.quitting = true
			m.choice = MenuActionQuit
			if m.allowBack {
				m.choice = MenuActionBack
			}
			return m, tea.Quit
		case "ctrl+c":
			m.quitting = true
			m.choice = MenuActionQuit
			return m, tea.Quit
		}
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m *menuModel) jumpTo(digit string) bool {
	slot := int(digit[0] - '1')
	visible := m.list.VisibleItems()
	pageStart := m.list.Index() - m.list.Cursor()
	if pageStart < 0 {
		pageStart = 0
	}
	target := pageStart + slot
	if target < 0 || target >= len(visible) {
		return false
	}
	m.list.Select(target)
	if item, ok := visible[target].(MenuItem); ok {
		m.choice = item.ID
		return true
	}
	return false
}

// Layout: list panel on the left, a preferences panel on the right,
// stacked vertically when the terminal is narrow.
const (
	menuPanelGap       = 2
	menuMinListWidth   = 40
	menuMinPanelWidth  = 24
	menuStackThreshold = 84
)

func (m *menuModel) layout() (listWidth, panelWidth int, stacked bool) {
	width := m.width
	if width <= 0 {
		width = terminalWidth()
	}
	if width < menuStackThreshold || width-menuMinPanelWidth-menuPanelGap < menuMinListWidth {
		return width - 4, width - 4, true
	}
	listWidth = (width * 3) / 5
	if listWidth < menuMinListWidth {
		listWidth = menuMinListWidth
	}
	return listWidth, width - listWidth - menuPanelGap, false
}

func (m *menuModel) resizeList() {
	height := m.height
	if height <= 0 {
		height = 26
	}
	listWidth, _, stacked := m.layout()
	listHeight := height - 10
	if stacked {
		listHeight = (height - 10) / 2
	}
	if listHeight < 5 {
		listHeight = 5
	}
	m.list.SetSize(listWidth, listHeight)
}

func (m menuModel) View() tea.View {
	if m.quitting {
		return tea.View{}
	}

	listWidth, panelWidth, stacked := m.layout()

	left := m.list.View()
	if filter := strings.TrimSpace(m.list.FilterValue()); filter != "" {
		hint := MutedStyle.Render("filter: " + ansi.Truncate(filter, max(10, listWidth-8), "..."))
		left = lipgloss.JoinVertical(lipgloss.Left, left, "", hint)
	}
	right := m.preferencesPanel(panelWidth)

	var body string
	if stacked {
		body = lipgloss.JoinVertical(lipgloss.Left, left, "", right)
	} else {
		body = lipgloss.JoinHorizontal(lipgloss.Top,
			lipgloss.NewStyle().Width(listWidth).PaddingRight(1).Render(left),
			lipgloss.NewStyle().Width(panelWidth).PaddingLeft(1).Render(right),
		)
	}

	v := tea.NewView(Frame(m.title, m.subtitle, body, m.help.View(m.keys)))
	v.AltScreen = true
	return v
}

// preferencesPanel summarizes the selected item and the live presentation
// state read straight off the projected surface.
func (m menuModel) preferencesPanel(width int) string {
	heading := lipgloss.NewStyle().Foreground(lipgloss.Color(string(Accent))).Bold(true)

	lines := []string{heading.Render("Selection")}
	if item, ok := m.list.SelectedItem().(MenuItem); ok && item.TitleText != "" {
		lines = append(lines, PrimaryStyle().Render(ansi.Truncate(item.TitleText, max(8, width), "...")))
		if strings.TrimSpace(item.Details) != "" {
			lines = append(lines, MutedStyle.Render(ansi.Truncate(item.Details, max(8, width), "...")))
		}
	} else {
		lines = append(lines, MutedStyle.Render("No selection"))
	}

	themeLine := appearance.DefaultThemeID
	if def, ok := appearance.Find(activeThemeID()); ok {
		themeLine = def.DisplayName + " " + GradientPreview(def.Preview)
	}

	lines = append(lines,
		"",
		heading.Render("Preferences"),
		panelLine("theme", themeLine, width),
		panelLine("mode", surface.Marker(appearance.MarkerGroupUIMode), width),
		panelLine("lang", surface.Marker(appearance.MarkerGroupLanguage), width),
		"",
		heading.Render("Session"),
		panelLine("cli", buildVersion(), width),
		panelLine("clock", m.now.Format("15:04:05"), width),
	)
	return strings.Join(lines, "\n")
}

func panelLine(label string, value string, width int) string {
	if strings.TrimSpace(value) == "" {
		value = "unknown"
	}
	return MutedStyle.Render(ansi.Truncate(fmt.Sprintf("%-6s %s", label+":", value), max(10, width), "..."))
}

// activeThemeID recovers the active theme by matching the projected
// primary color against the catalog. The surface stores variables, not the
// theme id, so this is a best-effort display affordance only.
func activeThemeID() string {
	primary, ok := surface.Variable(appearance.VarPrimary)
	if !ok {
		return appearance.DefaultThemeID
	}
	for _, def := range appearance.Themes() {
		if def.Palette.Primary == primary {
			return def.ID
		}
	}
	return appearance.DefaultThemeID
}

func buildVersion() string {
	if info, ok := debug.ReadBuildInfo(); ok {
		if info.Main.Version != "" && info.Main.Version != "(devel)" {
			return info.Main.Version
		}
		for _, setting := range info.Settings {
			if setting.Key == "vcs.revision" && len(setting.Value) >= 7 {
				return "dev-" + setting.Value[:7]
			}
		}
	}
	return "dev"
}

// RunMenu displays the launcher and returns the selected item ID.
func RunMenu(title string, subtitle string, items []MenuItem) (string, error) {
	return RunMenuWithOptions(title, subtitle, items)
}

// RunMenuWithOptions is RunMenu with back navigation or preselection.
func RunMenuWithOptions(title string, subtitle string, items []MenuItem, options ...MenuOption) (string, error) {
	if !IsInteractiveTerminal() {
		return "", fmt.Errorf("non-interactive terminal")
	}
	cfg := menuConfig{backLabel: "Back"}
	for _, opt := range options {
		opt(&cfg)
	}

	program := tea.NewProgram(newMenuModel(title, subtitle, items, cfg))
	result, err := program.Run()
	if err != nil {
		return "", err
	}
	if final, ok := result.(menuModel); ok {
		return final.choice, nil
	}
	return "", nil
}
