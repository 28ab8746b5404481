// internal/tui/composer_view.go
//
// The bill composition workspace. It owns three pieces of state: the
// selected customer, the staged line items, and the result of the last
// submission. The customer and catalog lists are fetched once when the view
// opens and refetched wholesale after mutations; stock shown here is the
// snapshot taken at fetch time, and the backend has the final word at
// submission.

package tui

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"billdesk/internal/api"
	"billdesk/internal/billing"
)

const maxSuggestions = 6

var (
	sectionTitleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#5B8DEF"))
	errorTextStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF6B6B"))
	successTextStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#4CAF50")).Bold(true)
	dimTextStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("#888888"))
	selectedRowStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#5B8DEF"))
	focusedZoneStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#F7B801"))
)

// customerMode is one tagged variant per the customer concern: searching the
// directory, registering a new entry, or committed to a selection. Modeling
// this as a single enum rules out impossible combinations like registering
// while a customer is already selected.
type customerMode int

const (
	customerSearching customerMode = iota
	customerRegistering
	customerSelected
)

// composerFocus tracks which control currently receives input.
type composerFocus int

const (
	focusCustomer composerFocus = iota
	focusItem
	focusQuantity
	focusLines
)

// Registration form field order.
const (
	registerFieldName = iota
	registerFieldEmail
	registerFieldPhone
	registerFieldCount
)

type directoryLoadedMsg struct {
	customers []billing.Customer
	err       error
}

type catalogLoadedMsg struct {
	items []billing.Item
	err   error
}

type customerRegisteredMsg struct {
	customer billing.Customer
	err      error
}

type billSubmittedMsg struct {
	resp api.CreateBillResponse
	err  error
}

type browserOpenedMsg struct {
	url string
	err error
}

type composerDismissedMsg struct{}

type historyRequestedMsg struct {
	customer billing.Customer
}

type composerView struct {
	app *App

	// Caches, fetched once on open and refetched wholesale after mutations.
	directory       []billing.Customer
	catalog         []billing.Item
	directoryLoaded bool
	catalogLoaded   bool
	loadErr         string

	// Customer selection.
	custMode        customerMode
	customer        billing.Customer // meaningful only when custMode == customerSelected
	customerInput   textinput.Model
	customerMatches []billing.Customer
	customerSel     int
	registerInputs  [registerFieldCount]textinput.Model
	registerFocus   int
	registerMsg     string

	// Item staging.
	itemInput   textinput.Model
	itemMatches []billing.Item
	itemSel     int
	pendingItem *billing.Item
	qtyInput    textinput.Model
	stageMsg    string

	draft   *billing.Draft
	focus   composerFocus
	lineSel int

	// Submission.
	submitting bool
	submitMsg  string
	inFlight   *billing.Receipt // snapshot of what was sent, completed on success
	receipt    *billing.Receipt
}

func newComposerView(app *App) *composerView {
	customerInput := textinput.New()
	customerInput.Placeholder = "Search customer by name or phone"
	customerInput.CharLimit = 64
	customerInput.Focus()

	itemInput := textinput.New()
	itemInput.Placeholder = "Search item by name"
	itemInput.CharLimit = 64

	qtyInput := textinput.New()
	qtyInput.Placeholder = "Qty"
	qtyInput.CharLimit = 6
	qtyInput.SetValue("1")

	v := &composerView{
		app:           app,
		custMode:      customerSearching,
		customerInput: customerInput,
		itemInput:     itemInput,
		qtyInput:      qtyInput,
		draft:         billing.NewDraft(),
		focus:         focusCustomer,
	}
	labels := [registerFieldCount]string{"Name", "Email", "Phone"}
	for i := range v.registerInputs {
		input := textinput.New()
		input.Placeholder = labels[i]
		input.CharLimit = 64
		v.registerInputs[i] = input
	}
	return v
}

// Init kicks off the one-time directory and catalog fetches.
func (v *composerView) Init() tea.Cmd {
	v.app.setStatus("Loading customers and catalog...")
	return tea.Batch(v.fetchDirectory(), v.fetchCatalog())
}

func (v *composerView) fetchDirectory() tea.Cmd {
	client := v.app.client
	return func() tea.Msg {
		customers, err := client.ListCustomers(context.Background())
		return directoryLoadedMsg{customers: customers, err: err}
	}
}

func (v *composerView) fetchCatalog() tea.Cmd {
	client := v.app.client
	return func() tea.Msg {
		items, err := client.ListInventory(context.Background())
		return catalogLoadedMsg{items: items, err: err}
	}
}

func (v *composerView) Update(msg tea.Msg) tea.Cmd {
	switch m := msg.(type) {
	case directoryLoadedMsg:
		if m.err != nil {
			v.loadErr = errorText(m.err, "Could not load customers.")
			v.app.logError("Customer directory fetch failed: %v", m.err)
			return nil
		}
		v.directory = m.customers
		v.directoryLoaded = true
		v.loadErr = ""
		v.refreshCustomerMatches()
		v.app.logInfo("Customer directory loaded (%d entries)", len(m.customers))
		v.noteReady()
		return nil

	case catalogLoadedMsg:
		if m.err != nil {
			v.loadErr = errorText(m.err, "Could not load the catalog.")
			v.app.logError("Catalog fetch failed: %v", m.err)
			return nil
		}
		v.catalog = m.items
		v.catalogLoaded = true
		v.loadErr = ""
		v.refreshItemMatches()
		v.app.logInfo("Catalog loaded (%d items)", len(m.items))
		v.noteReady()
		return nil

	case customerRegisteredMsg:
		return v.handleRegistered(m)

	case billSubmittedMsg:
		return v.handleSubmitted(m)

	case browserOpenedMsg:
		if m.err != nil {
			v.app.setStatus(fmt.Sprintf("Could not open browser: %v", m.err))
			v.app.logWarn("Browser launch failed for %s: %v", m.url, m.err)
		} else {
			v.app.setStatus("Opened in browser")
		}
		return nil

	case tea.KeyMsg:
		return v.handleKeyMsg(m)
	}
	return nil
}

func (v *composerView) noteReady() {
	if v.directoryLoaded && v.catalogLoaded {
		v.app.setStatus("Workspace ready")
	}
}

func (v *composerView) handleKeyMsg(msg tea.KeyMsg) tea.Cmd {
	// The draft is frozen while a submission is in flight.
	if v.submitting {
		return nil
	}
	if v.custMode == customerRegistering {
		return v.handleRegisterKey(msg)
	}

	switch msg.String() {
	case "esc":
		return func() tea.Msg { return composerDismissedMsg{} }
	case "tab":
		v.cycleFocus(1)
		return nil
	case "shift+tab":
		v.cycleFocus(-1)
		return nil
	case "ctrl+s":
		return v.submitBill()
	case "ctrl+r":
		if v.custMode == customerSearching {
			v.enterRegisterMode()
		}
		return nil
	case "ctrl+h":
		if v.custMode == customerSelected {
			customer := v.customer
			return func() tea.Msg { return historyRequestedMsg{customer: customer} }
		}
		v.app.setStatus("Select a customer to view history")
		return nil
	case "ctrl+p":
		if v.receipt != nil {
			return openInBrowser(v.app.client.BillPDFURL(v.receipt.BillID))
		}
		return nil
	case "ctrl+y":
		if v.receipt != nil {
			return openInBrowser(v.receipt.ShareLink(v.app.config.CurrencySymbol()))
		}
		return nil
	case "up":
		v.moveSelection(-1)
		return nil
	case "down":
		v.moveSelection(1)
		return nil
	case "enter":
		return v.handleEnter()
	}

	switch v.focus {
	case focusCustomer:
		if v.custMode == customerSearching {
			before := v.customerInput.Value()
			v.customerInput, _ = v.customerInput.Update(msg)
			if v.customerInput.Value() != before {
				v.refreshCustomerMatches()
			}
		}
	case focusItem:
		before := v.itemInput.Value()
		v.itemInput, _ = v.itemInput.Update(msg)
		if v.itemInput.Value() != before {
			// Typing reopens the suggestion list and discards the picked item.
			v.pendingItem = nil
			v.refreshItemMatches()
		}
	case focusQuantity:
		v.qtyInput, _ = v.qtyInput.Update(msg)
	case focusLines:
		switch msg.String() {
		case "x", "delete", "backspace":
			v.removeSelectedLine()
		}
	}
	return nil
}

func (v *composerView) handleEnter() tea.Cmd {
	switch v.focus {
	case focusCustomer:
		if v.custMode == customerSelected {
			// The "Change" action: drop the selection, back to search mode.
			v.custMode = customerSearching
			v.customerInput.SetValue("")
			v.customerMatches = nil
			v.syncInputFocus()
			v.app.setStatus("Customer cleared")
			return nil
		}
		v.selectHighlightedCustomer()
	case focusItem:
		v.pickHighlightedItem()
	case focusQuantity:
		v.stageItem()
	}
	return nil
}

func (v *composerView) cycleFocus(dir int) {
	zones := []composerFocus{focusCustomer, focusItem, focusQuantity, focusLines}
	idx := 0
	for i, z := range zones {
		if z == v.focus {
			idx = i
			break
		}
	}
	idx = (idx + dir + len(zones)) % len(zones)
	v.focus = zones[idx]
	v.syncInputFocus()
}

func (v *composerView) syncInputFocus() {
	v.customerInput.Blur()
	v.itemInput.Blur()
	v.qtyInput.Blur()
	switch v.focus {
	case focusCustomer:
		if v.custMode == customerSearching {
			v.customerInput.Focus()
		}
	case focusItem:
		v.itemInput.Focus()
	case focusQuantity:
		v.qtyInput.Focus()
	}
}

func (v *composerView) moveSelection(dir int) {
	switch v.focus {
	case focusCustomer:
		v.customerSel = clamp(v.customerSel+dir, 0, len(v.customerMatches)-1)
	case focusItem:
		v.itemSel = clamp(v.itemSel+dir, 0, len(v.itemMatches)-1)
	case focusLines:
		v.lineSel = clamp(v.lineSel+dir, 0, v.draft.LineCount()-1)
	}
}

// refreshCustomerMatches recomputes suggestions from the cached directory.
// An empty query produces no suggestions, not the whole directory.
func (v *composerView) refreshCustomerMatches() {
	v.customerMatches = billing.FilterCustomers(v.directory, strings.TrimSpace(v.customerInput.Value()))
	v.customerSel = clamp(v.customerSel, 0, len(v.customerMatches)-1)
}

func (v *composerView) refreshItemMatches() {
	v.itemMatches = billing.FilterItems(v.catalog, strings.TrimSpace(v.itemInput.Value()))
	v.itemSel = clamp(v.itemSel, 0, len(v.itemMatches)-1)
}

func (v *composerView) selectHighlightedCustomer() {
	if len(v.customerMatches) == 0 || v.customerSel >= len(v.customerMatches) {
		return
	}
	v.customer = v.customerMatches[v.customerSel]
	v.custMode = customerSelected
	v.customerMatches = nil
	v.customerInput.SetValue("")
	v.syncInputFocus()
	v.app.setStatus(fmt.Sprintf("Customer: %s", v.customer.Name))
	v.app.logInfo("Customer %d (%s) selected", v.customer.ID, v.customer.Name)
}

func (v *composerView) pickHighlightedItem() {
	if len(v.itemMatches) == 0 || v.itemSel >= len(v.itemMatches) {
		return
	}
	item := v.itemMatches[v.itemSel]
	v.pendingItem = &item
	v.itemInput.SetValue(item.Name)
	v.itemMatches = nil
	v.qtyInput.SetValue("1")
	v.stageMsg = ""
	v.focus = focusQuantity
	v.syncInputFocus()
}

// stageItem validates the pending item and quantity against the cached
// catalog and appends a line on success. Checks run in the draft in a fixed
// order and the first failure wins.
func (v *composerView) stageItem() {
	v.stageMsg = ""
	var item *billing.Item
	if v.pendingItem != nil {
		if found, ok := billing.FindItem(v.catalog, v.pendingItem.ID); ok {
			item = &found
		}
	}
	qty, err := strconv.Atoi(strings.TrimSpace(v.qtyInput.Value()))
	if err != nil {
		qty = 0 // fails the minimum-quantity check below
	}
	if err := v.draft.Stage(item, qty); err != nil {
		v.stageMsg = err.Error()
		return
	}
	v.app.logInfo("Staged %s x%d", item.Name, qty)
	v.pendingItem = nil
	v.itemInput.SetValue("")
	v.itemMatches = nil
	v.qtyInput.SetValue("1")
	v.lineSel = v.draft.LineCount() - 1
	v.focus = focusItem
	v.syncInputFocus()
}

func (v *composerView) removeSelectedLine() {
	lines := v.draft.Lines()
	if len(lines) == 0 || v.lineSel >= len(lines) {
		return
	}
	line := lines[v.lineSel]
	if v.draft.Remove(line.InventoryID) {
		v.app.setStatus(fmt.Sprintf("Removed %s", line.Name))
		v.lineSel = clamp(v.lineSel, 0, v.draft.LineCount()-1)
	}
}

// Registration mode.

func (v *composerView) enterRegisterMode() {
	v.custMode = customerRegistering
	v.registerMsg = ""
	v.registerFocus = registerFieldName
	for i := range v.registerInputs {
		v.registerInputs[i].SetValue("")
		v.registerInputs[i].Blur()
	}
	v.registerInputs[registerFieldName].Focus()
	v.customerInput.Blur()
	v.app.setStatus("Registering a new customer")
}

func (v *composerView) leaveRegisterMode() {
	v.custMode = customerSearching
	v.registerMsg = ""
	v.focus = focusCustomer
	v.syncInputFocus()
}

func (v *composerView) handleRegisterKey(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "esc":
		v.leaveRegisterMode()
		v.app.setStatus("Registration cancelled")
		return nil
	case "tab", "down":
		v.moveRegisterFocus(1)
		return nil
	case "shift+tab", "up":
		v.moveRegisterFocus(-1)
		return nil
	case "enter":
		return v.submitRegistration()
	}
	input := &v.registerInputs[v.registerFocus]
	updated, _ := input.Update(msg)
	*input = updated
	return nil
}

func (v *composerView) moveRegisterFocus(dir int) {
	v.registerInputs[v.registerFocus].Blur()
	v.registerFocus = (v.registerFocus + dir + registerFieldCount) % registerFieldCount
	v.registerInputs[v.registerFocus].Focus()
}

func (v *composerView) submitRegistration() tea.Cmd {
	req := api.RegisterCustomerRequest{
		Name:  strings.TrimSpace(v.registerInputs[registerFieldName].Value()),
		Email: strings.TrimSpace(v.registerInputs[registerFieldEmail].Value()),
		Phone: strings.TrimSpace(v.registerInputs[registerFieldPhone].Value()),
	}
	if req.Name == "" || req.Email == "" || req.Phone == "" {
		v.registerMsg = "Name, email and phone are required."
		return nil
	}
	client := v.app.client
	v.app.setStatus("Registering customer...")
	return func() tea.Msg {
		customer, err := client.RegisterCustomer(context.Background(), req)
		return customerRegisteredMsg{customer: customer, err: err}
	}
}

func (v *composerView) handleRegistered(msg customerRegisteredMsg) tea.Cmd {
	if msg.err != nil {
		v.registerMsg = errorText(msg.err, "Registration failed.")
		v.app.logWarn("Customer registration failed: %v", msg.err)
		return nil
	}
	v.customer = msg.customer
	v.custMode = customerSelected
	v.registerMsg = ""
	v.focus = focusItem
	v.syncInputFocus()
	v.app.setStatus(fmt.Sprintf("Customer registered: %s", msg.customer.Name))
	v.app.logInfo("Customer %d (%s) registered", msg.customer.ID, msg.customer.Name)
	// Refresh the directory cache so the new entry is searchable next time.
	return v.fetchDirectory()
}

// Submission.

func (v *composerView) canSubmit() bool {
	return v.custMode == customerSelected && !v.draft.Empty() && !v.submitting
}

func (v *composerView) submitBill() tea.Cmd {
	if !v.canSubmit() {
		return nil
	}
	v.submitMsg = ""
	v.submitting = true

	lines := v.draft.Lines()
	items := make([]api.BillItem, 0, len(lines))
	for _, line := range lines {
		items = append(items, api.BillItem{
			InventoryID: line.InventoryID,
			Quantity:    line.Quantity,
			Price:       line.Price,
		})
	}
	// Snapshot what we are sending; the server's bill id and total complete
	// the receipt when the reply lands.
	v.inFlight = &billing.Receipt{
		Customer: v.customer,
		Lines:    lines,
		Total:    v.draft.Total(),
	}
	req := api.CreateBillRequest{CustomerID: v.customer.ID, Items: items}
	client := v.app.client
	v.app.setStatus("Submitting bill...")
	v.app.logInfo("Submitting bill for customer %d: %d line(s), %d unit(s)",
		v.customer.ID, v.draft.LineCount(), v.draft.UnitCount())
	return func() tea.Msg {
		resp, err := client.CreateBill(context.Background(), req)
		return billSubmittedMsg{resp: resp, err: err}
	}
}

func (v *composerView) handleSubmitted(msg billSubmittedMsg) tea.Cmd {
	v.submitting = false
	if msg.err != nil {
		// The draft and customer stay untouched so the user can correct
		// input and retry.
		v.inFlight = nil
		v.receipt = nil
		v.submitMsg = errorText(msg.err, "Billing failed.")
		v.app.logWarn("Bill submission failed: %v", msg.err)
		return nil
	}
	receipt := v.inFlight
	if receipt == nil {
		receipt = &billing.Receipt{Customer: v.customer}
	}
	receipt.BillID = msg.resp.BillID
	receipt.ServerTotal = msg.resp.Total
	v.receipt = receipt
	v.inFlight = nil
	v.draft.Reset()
	v.lineSel = 0
	currency := v.app.config.CurrencySymbol()
	v.submitMsg = fmt.Sprintf("Bill created! Total: %s%s", currency, msg.resp.Total.StringFixed(2))
	v.app.setStatus(fmt.Sprintf("Bill #%d created", msg.resp.BillID))
	v.app.logInfo("Bill #%d created · total %s", msg.resp.BillID, msg.resp.Total.StringFixed(2))
	// The backend decremented stock; refetch the catalog rather than
	// patching quantities locally.
	return v.fetchCatalog()
}

// Rendering.

func (v *composerView) View() string {
	if !v.directoryLoaded || !v.catalogLoaded {
		if v.loadErr != "" {
			return errorTextStyle.Render(v.loadErr) + "\n" + dimTextStyle.Render("esc=back to menu")
		}
		return "Loading customers and catalog..."
	}
	sections := []string{
		v.renderCustomerSection(),
		"",
		v.renderItemSection(),
		"",
		v.renderLinesSection(),
		"",
		v.renderSubmitSection(),
	}
	return strings.Join(sections, "\n")
}

func (v *composerView) zoneTitle(label string, zone composerFocus) string {
	if v.focus == zone && v.custMode != customerRegistering {
		return focusedZoneStyle.Render("▸ " + label)
	}
	return sectionTitleStyle.Render("  " + label)
}

func (v *composerView) renderCustomerSection() string {
	lines := []string{v.zoneTitle("Customer", focusCustomer)}
	switch v.custMode {
	case customerSelected:
		lines = append(lines,
			fmt.Sprintf("  %s · %s | %s", v.customer.Name, v.customer.Email, v.customer.Phone),
			dimTextStyle.Render("  enter=change  ctrl+h=history"),
		)
	case customerRegistering:
		for i := range v.registerInputs {
			marker := "  "
			if i == v.registerFocus {
				marker = "▸ "
			}
			lines = append(lines, marker+v.registerInputs[i].View())
		}
		if v.registerMsg != "" {
			lines = append(lines, errorTextStyle.Render("  "+v.registerMsg))
		}
		lines = append(lines, dimTextStyle.Render("  enter=register  esc=cancel"))
	default:
		lines = append(lines, "  "+v.customerInput.View())
		query := strings.TrimSpace(v.customerInput.Value())
		if query != "" {
			if len(v.customerMatches) == 0 {
				lines = append(lines, dimTextStyle.Render("  No customers found."))
			}
			for i, c := range v.customerMatches {
				if i >= maxSuggestions {
					lines = append(lines, dimTextStyle.Render(fmt.Sprintf("  … %d more", len(v.customerMatches)-maxSuggestions)))
					break
				}
				row := fmt.Sprintf("%s (%s, %s)", c.Name, c.Email, c.Phone)
				lines = append(lines, v.renderSuggestion(row, i == v.customerSel && v.focus == focusCustomer))
			}
		}
		lines = append(lines, dimTextStyle.Render("  enter=select  ctrl+r=register new"))
	}
	return strings.Join(lines, "\n")
}

func (v *composerView) renderItemSection() string {
	currency := v.app.config.CurrencySymbol()
	lines := []string{v.zoneTitle("Add Items", focusItem)}
	lines = append(lines, "  "+v.itemInput.View())
	if v.pendingItem == nil {
		query := strings.TrimSpace(v.itemInput.Value())
		if query != "" {
			if len(v.itemMatches) == 0 {
				lines = append(lines, dimTextStyle.Render("  No items found."))
			}
			for i, item := range v.itemMatches {
				if i >= maxSuggestions {
					lines = append(lines, dimTextStyle.Render(fmt.Sprintf("  … %d more", len(v.itemMatches)-maxSuggestions)))
					break
				}
				row := fmt.Sprintf("%s · %s%s · stock %d", item.Name, currency, item.Price.StringFixed(2), item.Quantity)
				lines = append(lines, v.renderSuggestion(row, i == v.itemSel && v.focus == focusItem))
			}
		}
	}
	qtyLabel := "Quantity: "
	if v.focus == focusQuantity {
		qtyLabel = focusedZoneStyle.Render("Quantity: ")
	}
	lines = append(lines, "  "+qtyLabel+v.qtyInput.View())
	if v.stageMsg != "" {
		lines = append(lines, errorTextStyle.Render("  "+v.stageMsg))
	}
	lines = append(lines, dimTextStyle.Render("  enter=pick/add  tab=next field"))
	return strings.Join(lines, "\n")
}

func (v *composerView) renderSuggestion(row string, selected bool) string {
	if selected {
		return selectedRowStyle.Render("  > " + row)
	}
	return "    " + row
}

func (v *composerView) renderLinesSection() string {
	currency := v.app.config.CurrencySymbol()
	lines := []string{v.zoneTitle("Bill Items", focusLines)}
	drafted := v.draft.Lines()
	if len(drafted) == 0 {
		lines = append(lines, dimTextStyle.Render("  No items added."))
	}
	for i, line := range drafted {
		row := fmt.Sprintf("%-24s %s%8s  x%-4d %s%8s",
			line.Name,
			currency, line.Price.StringFixed(2),
			line.Quantity,
			currency, line.Subtotal().StringFixed(2),
		)
		if v.focus == focusLines && i == v.lineSel {
			lines = append(lines, selectedRowStyle.Render("  > "+row))
		} else {
			lines = append(lines, "    "+row)
		}
	}
	if len(drafted) > 0 {
		lines = append(lines, dimTextStyle.Render("  x=remove selected"))
	}
	return strings.Join(lines, "\n")
}

func (v *composerView) renderSubmitSection() string {
	currency := v.app.config.CurrencySymbol()
	total := fmt.Sprintf("Total: %s%s", currency, v.draft.Total().StringFixed(2))
	lines := []string{sectionTitleStyle.Render("  " + total)}
	switch {
	case v.submitting:
		lines = append(lines, "  Processing...")
	case v.canSubmit():
		lines = append(lines, dimTextStyle.Render("  ctrl+s=create bill  esc=back to menu"))
	default:
		lines = append(lines, dimTextStyle.Render("  select a customer and add items to submit · esc=back to menu"))
	}
	if v.submitMsg != "" {
		if v.receipt != nil {
			lines = append(lines, successTextStyle.Render("  "+v.submitMsg))
		} else {
			lines = append(lines, errorTextStyle.Render("  "+v.submitMsg))
		}
	}
	if v.receipt != nil {
		lines = append(lines,
			dimTextStyle.Render("  ctrl+p=print pdf  ctrl+y=share on whatsapp"),
			dimTextStyle.Render("  "+v.app.client.BillPDFURL(v.receipt.BillID)),
		)
	}
	return strings.Join(lines, "\n")
}

// summaryLines feeds the app's side panel with the running draft summary.
func (v *composerView) summaryLines() []string {
	currency := v.app.config.CurrencySymbol()
	customer := "none selected"
	if v.custMode == customerSelected {
		customer = v.customer.Name
	}
	lines := []string{
		fmt.Sprintf("Customer: %s", customer),
		fmt.Sprintf("Lines: %d · Units: %d", v.draft.LineCount(), v.draft.UnitCount()),
		fmt.Sprintf("Total: %s%s", currency, v.draft.Total().StringFixed(2)),
	}
	if v.catalogLoaded {
		lines = append(lines, fmt.Sprintf("Catalog: %d items", len(v.catalog)))
	}
	if v.receipt != nil {
		lines = append(lines, fmt.Sprintf("Last bill: #%d (%s%s)",
			v.receipt.BillID, currency, v.receipt.ServerTotal.StringFixed(2)))
	}
	return lines
}

// errorText maps an error to the message shown to the user: the backend's
// own wording when it rejected the request (with a per-action fallback when
// it sent none), and a generic connectivity message for transport failures.
func errorText(err error, fallback string) string {
	var apiErr *api.Error
	if errors.As(err, &apiErr) {
		return apiErr.MessageOr(fallback)
	}
	return "Cannot reach the billing service."
}

func clamp(value, lo, hi int) int {
	if hi < lo {
		return lo
	}
	if value < lo {
		return lo
	}
	if value > hi {
		return hi
	}
	return value
}
