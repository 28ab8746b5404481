// internal/tui/history_view.go
//
// Purchase history for the customer selected in the composer: their past
// bills, expandable to line items, with PDF access per bill.

package tui

import (
	"context"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"billdesk/internal/api"
	"billdesk/internal/billing"
)

type historyLoadedMsg struct {
	bills []api.BillSummary
	err   error
}

type billDetailsLoadedMsg struct {
	details api.BillDetails
	err     error
}

type historyDismissedMsg struct{}

type historyView struct {
	app      *App
	customer billing.Customer

	bills     []api.BillSummary
	loaded    bool
	errMsg    string
	selection int

	details        *api.BillDetails
	loadingDetails bool
}

func newHistoryView(app *App, customer billing.Customer) *historyView {
	return &historyView{app: app, customer: customer}
}

func (v *historyView) Init() tea.Cmd {
	v.app.setStatus(fmt.Sprintf("Loading history for %s...", v.customer.Name))
	return v.fetchHistory()
}

func (v *historyView) fetchHistory() tea.Cmd {
	client := v.app.client
	customerID := v.customer.ID
	return func() tea.Msg {
		bills, err := client.CustomerHistory(context.Background(), customerID)
		return historyLoadedMsg{bills: bills, err: err}
	}
}

func (v *historyView) fetchDetails(billID int64) tea.Cmd {
	client := v.app.client
	return func() tea.Msg {
		details, err := client.BillDetails(context.Background(), billID)
		return billDetailsLoadedMsg{details: details, err: err}
	}
}

func (v *historyView) Update(msg tea.Msg) tea.Cmd {
	switch m := msg.(type) {
	case historyLoadedMsg:
		if m.err != nil {
			v.errMsg = errorText(m.err, "Could not load history.")
			v.app.logError("History fetch failed for customer %d: %v", v.customer.ID, m.err)
			return nil
		}
		v.bills = m.bills
		v.loaded = true
		v.errMsg = ""
		v.selection = clamp(v.selection, 0, len(v.bills)-1)
		v.app.setStatus(fmt.Sprintf("%d bill(s) on record", len(v.bills)))
		return nil

	case billDetailsLoadedMsg:
		v.loadingDetails = false
		if m.err != nil {
			v.errMsg = errorText(m.err, "Could not load bill details.")
			v.app.logWarn("Bill details fetch failed: %v", m.err)
			return nil
		}
		details := m.details
		v.details = &details
		v.errMsg = ""
		return nil

	case browserOpenedMsg:
		if m.err != nil {
			v.app.setStatus(fmt.Sprintf("Could not open browser: %v", m.err))
		} else {
			v.app.setStatus("Opened in browser")
		}
		return nil

	case tea.KeyMsg:
		switch m.String() {
		case "esc":
			return func() tea.Msg { return historyDismissedMsg{} }
		case "up", "k":
			v.selection = clamp(v.selection-1, 0, len(v.bills)-1)
			v.details = nil
		case "down", "j":
			v.selection = clamp(v.selection+1, 0, len(v.bills)-1)
			v.details = nil
		case "r":
			return v.fetchHistory()
		case "enter":
			if bill, ok := v.selectedBill(); ok && !v.loadingDetails {
				v.loadingDetails = true
				return v.fetchDetails(bill.ID)
			}
		case "ctrl+p":
			if bill, ok := v.selectedBill(); ok {
				return openInBrowser(v.app.client.BillPDFURL(bill.ID))
			}
		}
	}
	return nil
}

func (v *historyView) selectedBill() (api.BillSummary, bool) {
	if v.selection < 0 || v.selection >= len(v.bills) {
		return api.BillSummary{}, false
	}
	return v.bills[v.selection], true
}

func (v *historyView) View() string {
	currency := v.app.config.CurrencySymbol()
	title := sectionTitleStyle.Render(fmt.Sprintf("History · %s", v.customer.Name))
	if v.errMsg != "" {
		return strings.Join([]string{title, errorTextStyle.Render(v.errMsg), dimTextStyle.Render("r=retry  esc=back")}, "\n")
	}
	if !v.loaded {
		return strings.Join([]string{title, "Loading..."}, "\n")
	}
	lines := []string{title}
	if len(v.bills) == 0 {
		lines = append(lines, dimTextStyle.Render("No bills on record."))
	}
	for i, bill := range v.bills {
		row := fmt.Sprintf("Bill #%-6d %-20s %s%s", bill.ID, formatBillDate(bill.Date), currency, bill.Total.StringFixed(2))
		if i == v.selection {
			lines = append(lines, selectedRowStyle.Render("> "+row))
			if v.loadingDetails {
				lines = append(lines, dimTextStyle.Render("    loading items..."))
			}
			if v.details != nil && v.details.ID == bill.ID {
				for _, item := range v.details.Items {
					lines = append(lines, dimTextStyle.Render(fmt.Sprintf("    %s x%d @ %s%s = %s%s",
						item.Name, item.Quantity,
						currency, item.Price.StringFixed(2),
						currency, item.Total.StringFixed(2))))
				}
			}
		} else {
			lines = append(lines, "  "+row)
		}
	}
	lines = append(lines, "", dimTextStyle.Render("enter=items  ctrl+p=pdf  r=refresh  esc=back"))
	return strings.Join(lines, "\n")
}

// formatBillDate trims the backend's ISO timestamp to something scannable in
// a table row.
func formatBillDate(raw string) string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "-"
	}
	raw = strings.ReplaceAll(raw, "T", " ")
	if len(raw) > 16 {
		raw = raw[:16]
	}
	return raw
}
