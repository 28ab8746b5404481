// internal/tui/app.go
//
// This is the main TUI for billdesk. It uses bubbletea, which follows The
// Elm Architecture:
//
// 1. Model: Your application state
// 2. Update: A function that updates state based on messages
// 3. View: A function that renders state to a string
//
// The flow is: User Input -> Message -> Update -> New Model -> View -> Screen

package tui

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"billdesk/internal/api"
	"billdesk/internal/config"
	"billdesk/internal/logbook"
)

// appState represents which "screen" we're on.
type appState int

const (
	stateMainMenu appState = iota // Main menu with "New Bill", etc.
	stateComposer                 // Bill composition workspace
	stateHistory                  // Purchase history for the selected customer
)

// AppOption customizes App construction for tests and alternate runtimes.
type AppOption func(*App)

// WithClient overrides the API client used by the app.
func WithClient(client *api.Client) AppOption {
	return func(a *App) {
		if client != nil {
			a.client = client
		}
	}
}

// App is the main application model. In bubbletea, this holds ALL your state.
type App struct {
	state   appState
	config  *config.Config
	client  *api.Client
	logbook *logbook.Logbook

	composer *composerView
	history  *historyView

	// UI components
	mainMenu      list.Model
	statusMsg     string
	lastLogStatus string

	// Window size (we get this from bubbletea)
	width  int
	height int
}

// menuItem implements list.Item interface for our menu items
type menuItem struct {
	title string
	desc  string
}

func (i menuItem) Title() string       { return i.title }
func (i menuItem) Description() string { return i.desc }
func (i menuItem) FilterValue() string { return i.title }

// NewApp creates a new App instance rooted at the given project directory.
func NewApp(projectDir string, opts ...AppOption) (*App, error) {
	cfg, err := config.NewConfig(projectDir)
	if err != nil {
		return nil, err
	}
	lb, err := logbook.Open(filepath.Join(cfg.LogsDir(), "session.log"))
	if err == nil {
		lb.Info("Session opened · backend: %s", cfg.APIBaseURL())
	}

	mainMenu := list.New(buildMainMenu(), list.NewDefaultDelegate(), 0, 0)
	mainMenu.Title = "◈ THE COUNTER"
	mainMenu.SetShowStatusBar(false)
	mainMenu.SetFilteringEnabled(false)

	app := &App{
		state:    stateMainMenu,
		config:   cfg,
		client:   api.New(cfg.APIBaseURL()),
		logbook:  lb,
		mainMenu: mainMenu,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(app)
		}
	}
	return app, nil
}

func buildMainMenu() []list.Item {
	return []list.Item{
		menuItem{title: "New Bill", desc: "Pick a customer, stage items, submit"},
		menuItem{title: "Exit", desc: "Quit billdesk"},
	}
}

func (a *App) logInfo(format string, args ...any) {
	if a.logbook == nil {
		return
	}
	a.logbook.Info(format, args...)
}

func (a *App) logWarn(format string, args ...any) {
	if a.logbook == nil {
		return
	}
	a.logbook.Warn(format, args...)
}

func (a *App) logError(format string, args ...any) {
	if a.logbook == nil {
		return
	}
	a.logbook.Error(format, args...)
}

func (a *App) logProgress(status string) {
	status = strings.TrimSpace(status)
	if status == "" || status == a.lastLogStatus {
		return
	}
	a.lastLogStatus = status
	a.logInfo(status)
}

func (a *App) setStatus(message string) {
	message = strings.TrimSpace(message)
	if message == "" {
		return
	}
	a.statusMsg = message
	a.logProgress(message)
}

// Init is called once when the program starts.
func (a *App) Init() tea.Cmd {
	return nil
}

// Update is called when a message is received.
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.mainMenu.SetSize(max(0, msg.Width-6), max(0, msg.Height-10))
		return a, nil

	case composerDismissedMsg:
		a.state = stateMainMenu
		a.setStatus("Back at the main menu")
		return a, nil

	case historyRequestedMsg:
		a.history = newHistoryView(a, msg.customer)
		a.state = stateHistory
		return a, a.history.Init()

	case historyDismissedMsg:
		a.history = nil
		a.state = stateComposer
		return a, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return a, tea.Quit
		case "q":
			if a.state == stateMainMenu {
				return a, tea.Quit
			}
		case "enter":
			if a.state == stateMainMenu {
				return a.handleMainMenuSelection()
			}
		}
	}

	var cmds []tea.Cmd
	switch a.state {
	case stateMainMenu:
		var menuCmd tea.Cmd
		a.mainMenu, menuCmd = a.mainMenu.Update(msg)
		if menuCmd != nil {
			cmds = append(cmds, menuCmd)
		}
	case stateComposer:
		if a.composer != nil {
			if cmd := a.composer.Update(msg); cmd != nil {
				cmds = append(cmds, cmd)
			}
		}
	case stateHistory:
		if a.history != nil {
			if cmd := a.history.Update(msg); cmd != nil {
				cmds = append(cmds, cmd)
			}
		}
	}

	return a, tea.Batch(cmds...)
}

// handleMainMenuSelection processes menu item selection.
func (a *App) handleMainMenuSelection() (tea.Model, tea.Cmd) {
	item, ok := a.mainMenu.SelectedItem().(menuItem)
	if !ok {
		return a, nil
	}

	switch item.title {
	case "New Bill":
		a.logInfo("Menu · New Bill selected")
		return a.openComposer()

	case "Exit":
		a.logInfo("Menu · Exit selected")
		return a, tea.Quit
	}

	return a, nil
}

// openComposer switches to the composer, reusing the existing workspace (and
// its caches and draft) when the user previously backed out to the menu.
func (a *App) openComposer() (tea.Model, tea.Cmd) {
	a.state = stateComposer
	if a.composer != nil {
		a.setStatus("Resumed bill in progress")
		return a, nil
	}
	a.composer = newComposerView(a)
	return a, a.composer.Init()
}

// View renders the current state to a string.
func (a *App) View() string {
	width := a.width
	if width <= 0 {
		width = 100
	}
	rightWidth := max(30, width/4)
	leftWidth := width - rightWidth - 4
	if leftWidth < 48 {
		leftWidth = width - 4
		rightWidth = 0
	}
	var content string
	switch a.state {
	case stateMainMenu:
		a.mainMenu.SetSize(max(20, leftWidth-4), max(10, a.height-10))
		content = a.mainMenu.View()
	case stateComposer:
		if a.composer != nil {
			content = a.composer.View()
		} else {
			content = "Loading workspace..."
		}
	case stateHistory:
		if a.history != nil {
			content = a.history.View()
		}
	}
	return a.renderBoard(content, leftWidth, rightWidth)
}

func (a *App) renderBoard(mainContent string, leftWidth, rightWidth int) string {
	header := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("#5B8DEF")).
		MarginBottom(1).
		Render("◈ BILLDESK")
	leftBox := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("#444444")).
		Padding(0, 1).
		Width(max(20, leftWidth)).
		Render(lipgloss.NewStyle().Width(max(20, leftWidth-4)).Render(mainContent))
	var body string
	if rightWidth > 0 {
		rightBox := lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#444444")).
			Padding(0, 1).
			Width(max(20, rightWidth)).
			Render(a.renderSidePanel(rightWidth - 4))
		body = lipgloss.JoinHorizontal(lipgloss.Top, leftBox, rightBox)
	} else {
		body = leftBox
	}
	sections := []string{header, body}
	if logPanel := a.renderLogPanel(); logPanel != "" {
		sections = append(sections, logPanel)
	}
	footer := lipgloss.NewStyle().
		Foreground(lipgloss.Color("#888888")).
		MarginTop(1).
		Render(a.statusMsg)
	sections = append(sections, footer)
	return strings.Join(sections, "\n")
}

// renderSidePanel shows the running draft summary while composing, and the
// backend target otherwise.
func (a *App) renderSidePanel(width int) string {
	title := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("#5B8DEF")).
		Render("Session")
	var lines []string
	if a.composer != nil {
		lines = a.composer.summaryLines()
	} else {
		lines = []string{
			fmt.Sprintf("Backend: %s", a.config.APIBaseURL()),
			"No bill in progress.",
		}
	}
	body := lipgloss.NewStyle().
		Foreground(lipgloss.Color("#CCCCCC")).
		Width(max(20, width)).
		Render(strings.Join(lines, "\n"))
	return lipgloss.JoinVertical(lipgloss.Left, title, body)
}

func (a *App) renderLogPanel() string {
	if a.logbook == nil {
		return ""
	}
	lines := a.logbook.Tail(6)
	if len(lines) == 0 {
		return ""
	}
	fileName := filepath.Base(a.logbook.Path())
	head := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("#5B8DEF")).
		Render(fmt.Sprintf("LOG · %s", fileName))
	body := lipgloss.NewStyle().
		Foreground(lipgloss.Color("#AAAAAA")).
		Render(strings.Join(lines, "\n"))
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("#444444")).
		Padding(0, 1).
		Render(fmt.Sprintf("%s\n%s", head, body))
}
