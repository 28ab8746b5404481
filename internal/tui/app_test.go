package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"billdesk/internal/billing"
)

// drainApp mirrors drainComposer for messages routed through the top-level
// model.
func drainApp(t *testing.T, a *App, cmds ...tea.Cmd) {
	t.Helper()
	queue := append([]tea.Cmd{}, cmds...)
	for len(queue) > 0 {
		cmd := queue[0]
		queue = queue[1:]
		if cmd == nil {
			continue
		}
		msg := cmd()
		if batch, ok := msg.(tea.BatchMsg); ok {
			queue = append(queue, batch...)
			continue
		}
		if msg == nil {
			continue
		}
		if _, ok := msg.(tea.QuitMsg); ok {
			continue
		}
		_, next := a.Update(msg)
		if next != nil {
			queue = append(queue, next)
		}
	}
}

func TestMenuEnterOpensComposer(t *testing.T) {
	server := billingBackend(t)
	app := newTestApp(t, server.URL)

	_, cmd := app.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if app.state != stateComposer {
		t.Fatalf("state = %d, want composer", app.state)
	}
	if app.composer == nil {
		t.Fatalf("composer was not created")
	}
	drainApp(t, app, cmd)
	if !app.composer.directoryLoaded || !app.composer.catalogLoaded {
		t.Fatalf("opening the composer should load both caches")
	}
}

func TestDismissReturnsToMenuAndResumeKeepsDraft(t *testing.T) {
	server := billingBackend(t)
	app := newTestApp(t, server.URL)
	drainApp(t, app, func() tea.Msg { return tea.KeyMsg{Type: tea.KeyEnter} })

	v := app.composer
	stageViaKeys(t, v, "pen", "2")
	if v.draft.LineCount() != 1 {
		t.Fatalf("staging failed: %q", v.stageMsg)
	}

	_, _ = app.Update(composerDismissedMsg{})
	if app.state != stateMainMenu {
		t.Fatalf("dismissal should land on the main menu")
	}

	// Reopening resumes the same workspace, draft included.
	_, _ = app.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if app.state != stateComposer {
		t.Fatalf("enter should reopen the composer")
	}
	if app.composer != v {
		t.Fatalf("reopening must reuse the existing workspace")
	}
	if app.composer.draft.LineCount() != 1 {
		t.Fatalf("draft should survive a trip to the menu")
	}
}

func TestHistoryRoundTrip(t *testing.T) {
	server := billingBackend(t)
	app := newTestApp(t, server.URL)
	drainApp(t, app, func() tea.Msg { return tea.KeyMsg{Type: tea.KeyEnter} })

	customer := billing.Customer{ID: 1, Name: "Asha Rao", Phone: "9876543210"}
	_, cmd := app.Update(historyRequestedMsg{customer: customer})
	if app.state != stateHistory || app.history == nil {
		t.Fatalf("history view was not opened")
	}
	drainApp(t, app, cmd)
	if !app.history.loaded {
		t.Fatalf("history did not load: %q", app.history.errMsg)
	}
	if len(app.history.bills) != 1 || app.history.bills[0].ID != 99 {
		t.Fatalf("unexpected bills: %+v", app.history.bills)
	}

	// Expanding the selected bill pulls its line items.
	drainApp(t, app, func() tea.Msg { return tea.KeyMsg{Type: tea.KeyEnter} })
	if app.history.details == nil {
		t.Fatalf("details did not load: %q", app.history.errMsg)
	}
	if !strings.Contains(app.history.View(), "Pen x3") {
		t.Fatalf("expanded view should list items:\n%s", app.history.View())
	}

	_, _ = app.Update(historyDismissedMsg{})
	if app.state != stateComposer {
		t.Fatalf("leaving history should return to the composer")
	}
	if app.history != nil {
		t.Fatalf("history view should be released")
	}
}

func TestCtrlHFromComposerRequestsHistory(t *testing.T) {
	server := billingBackend(t)
	app := newTestApp(t, server.URL)
	drainApp(t, app, func() tea.Msg { return tea.KeyMsg{Type: tea.KeyEnter} })

	selectCustomer(t, app.composer, "asha")
	_, cmd := app.Update(tea.KeyMsg{Type: tea.KeyCtrlH})
	if cmd == nil {
		t.Fatalf("ctrl+h with a customer should request history")
	}
	drainApp(t, app, cmd)
	if app.state != stateHistory {
		t.Fatalf("history view should open")
	}
	if app.history.customer.ID != 1 {
		t.Fatalf("history opened for customer %d, want 1", app.history.customer.ID)
	}
}

func TestQuitKeys(t *testing.T) {
	server := billingBackend(t)
	app := newTestApp(t, server.URL)

	_, cmd := app.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	if cmd == nil {
		t.Fatalf("q on the menu should quit")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Fatalf("expected QuitMsg")
	}

	_, cmd = app.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	if cmd == nil {
		t.Fatalf("ctrl+c should always quit")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Fatalf("expected QuitMsg")
	}
}

func TestViewRendersBoard(t *testing.T) {
	server := billingBackend(t)
	app := newTestApp(t, server.URL)
	_, _ = app.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	out := app.View()
	if !strings.Contains(out, "BILLDESK") {
		t.Fatalf("header missing from view")
	}
	if !strings.Contains(out, "Session") {
		t.Fatalf("side panel missing from view")
	}
}

func TestFormatBillDate(t *testing.T) {
	if got := formatBillDate("2026-08-30T10:15:00Z"); got != "2026-08-30 10:15" {
		t.Fatalf("formatted date = %q", got)
	}
	if got := formatBillDate(""); got != "-" {
		t.Fatalf("empty date = %q", got)
	}
}
