package view

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/MrJamesThe3rd/tally/internal/account"
	"github.com/MrJamesThe3rd/tally/internal/category"
	"github.com/MrJamesThe3rd/tally/internal/ledger"
	"github.com/MrJamesThe3rd/tally/internal/matching"
	"github.com/MrJamesThe3rd/tally/internal/summary"
	"github.com/MrJamesThe3rd/tally/internal/transaction"
)

type txState int

const (
	txStateTimeframe txState = iota
	txStateList
	txStateAdding
	txStateLearning
)

// txItem wraps a transaction to implement list.Item.
type txItem struct {
	tx       *ledger.Transaction
	category string
}

func (i txItem) Title() string {
	kind := faintStyle.Render(fmt.Sprintf("[%s]", i.tx.Type))

	desc := i.tx.Description
	if desc == "" {
		desc = i.tx.RawDescription
	}

	return fmt.Sprintf("%s  %10s  %s  %s", FormatDate(i.tx.Date), FormatSigned(i.tx), kind, desc)
}

func (i txItem) Description() string {
	if i.category == "" {
		return "Uncategorized"
	}

	return i.category
}

func (i txItem) FilterValue() string {
	return i.tx.Description + " " + i.tx.RawDescription + " " + i.category
}

// txDraft holds the form bindings. It lives on the heap so copies of the model share it.
type txDraft struct {
	Type        ledger.TransactionType
	Amount      string
	Description string
	Date        string
	Pattern     string
	AccountID   uuid.UUID
	DestID      uuid.UUID
	CategoryID  uuid.UUID
}

type TransactionsModel struct {
	CommonModel
	txService       *transaction.Service
	accountService  *account.Service
	categoryService *category.Service
	matchingService *matching.Service

	state           txState
	timeframePicker TimeframePicker
	list            list.Model
	form            *huh.Form
	draft           *txDraft
	selectedTx      *ledger.Transaction

	selection  TimeframeSelectedMsg
	txs        []*ledger.Transaction
	accounts   []*ledger.Account
	categories []*ledger.Category
	totals     summary.Totals

	loading bool
	status  string
}

func NewTransactionsModel(owner uuid.UUID, txSvc *transaction.Service, accSvc *account.Service, catSvc *category.Service, matchSvc *matching.Service) TransactionsModel {
	l := list.New([]list.Item{}, txItemDelegate{}, 0, 0)
	l.Title = "Transactions"
	l.SetShowStatusBar(true)
	l.SetFilteringEnabled(true)
	l.SetShowHelp(true)

	return TransactionsModel{
		CommonModel:     CommonModel{Owner: owner},
		txService:       txSvc,
		accountService:  accSvc,
		categoryService: catSvc,
		matchingService: matchSvc,
		timeframePicker: NewTimeframePicker(TimeframeThisWeek),
		list:            l,
	}
}

func (m TransactionsModel) Title() string { return "Transactions" }

func (m TransactionsModel) ShortHelp() string {
	switch m.state {
	case txStateTimeframe:
		return "Esc: back | Enter: select"
	case txStateList:
		return "Esc: back | a: add | Enter: learn rule | /: filter"
	case txStateAdding, txStateLearning:
		return "Esc: cancel | Enter/Tab: navigate form"
	}

	return ""
}

func (m TransactionsModel) Init() tea.Cmd {
	return nil
}

func (m TransactionsModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case TimeframeSelectedMsg:
		m.selection = msg
		m.loading = true
		m.state = txStateList

		return m, m.loadTxsCmd()

	case loadTxsMsg:
		m.loading = false
		if msg.err != nil {
			m.status = fmt.Sprintf("Error: %v", msg.err)
			return m, nil
		}

		m.txs = msg.txs
		m.accounts = msg.accounts
		m.categories = msg.categories
		m.totals = listTotals(msg.txs, m.selection)

		m.refreshListItems()

		if len(msg.txs) == 0 {
			m.status = "No transactions found."
		}

		return m, nil

	case saveTxResultMsg:
		m.state = txStateList
		m.form = nil

		if msg.err != nil {
			m.status = fmt.Sprintf("Error saving: %v", msg.err)
			return m, nil
		}

		m.status = msg.status

		return m, m.loadTxsCmd()

	case tea.WindowSizeMsg:
		m.list.SetSize(msg.Width-4, msg.Height-10)
		return m, nil
	}

	switch m.state {
	case txStateTimeframe:
		return m.updateTimeframe(msg)
	case txStateList:
		return m.updateList(msg)
	case txStateAdding, txStateLearning:
		return m.updateForm(msg)
	}

	return m, nil
}

func (m TransactionsModel) updateTimeframe(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		if keyMsg.Type == tea.KeyEsc && m.timeframePicker.IsSelecting() {
			return m, Back
		}
	}

	var cmd tea.Cmd
	m.timeframePicker, cmd = m.timeframePicker.Update(msg)

	return m, cmd
}

func (m TransactionsModel) updateList(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok && m.list.FilterState() != list.Filtering {
		switch keyMsg.String() {
		case "esc":
			m.state = txStateTimeframe
			m.timeframePicker.Reset()
			m.status = ""

			return m, nil
		case "a":
			return m.startAdding()
		case "enter":
			return m.startLearning()
		}
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)

	return m, cmd
}

func (m TransactionsModel) startAdding() (tea.Model, tea.Cmd) {
	if len(m.accounts) == 0 {
		m.status = "Create an account first."
		return m, nil
	}

	m.draft = &txDraft{
		Type:      ledger.TypeExpense,
		Date:      FormatDate(time.Now()),
		AccountID: m.accounts[0].ID,
	}

	m.form = huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[ledger.TransactionType]().
				Title("Type").
				Options(
					huh.NewOption("Expense", ledger.TypeExpense),
					huh.NewOption("Income", ledger.TypeIncome),
					huh.NewOption("Transfer", ledger.TypeTransfer),
				).
				Value(&m.draft.Type),

			huh.NewInput().
				Title("Amount").
				Placeholder("12.50").
				Value(&m.draft.Amount).
				Validate(validateAmount),

			huh.NewInput().
				Title("Description").
				Value(&m.draft.Description).
				Validate(notBlank("description")),

			huh.NewInput().
				Title("Date").
				Placeholder("YYYY-MM-DD").
				Value(&m.draft.Date).
				Validate(validateDay),
		),
		huh.NewGroup(
			huh.NewSelect[uuid.UUID]().
				Title("Account").
				Options(accountOptions(m.accounts, "")...).
				Value(&m.draft.AccountID),

			huh.NewSelect[uuid.UUID]().
				Title("Destination account (transfers)").
				Options(accountOptions(m.accounts, "None")...).
				Value(&m.draft.DestID),

			huh.NewSelect[uuid.UUID]().
				Title("Category").
				Options(categoryOptions(m.categories)...).
				Value(&m.draft.CategoryID),
		),
	).WithWidth(50).WithShowHelp(false)

	m.state = txStateAdding

	return m, m.form.Init()
}

func (m TransactionsModel) startLearning() (tea.Model, tea.Cmd) {
	selected, ok := m.list.SelectedItem().(txItem)
	if !ok {
		return m, nil
	}

	if len(m.categories) == 0 {
		m.status = "Create a category first."
		return m, nil
	}

	raw := selected.tx.RawDescription
	if raw == "" {
		raw = selected.tx.Description
	}

	m.selectedTx = selected.tx
	m.draft = &txDraft{Description: selected.tx.Description, Pattern: raw, CategoryID: m.categories[0].ID}

	if selected.tx.CategoryID != nil {
		m.draft.CategoryID = *selected.tx.CategoryID
	}

	m.form = huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Match statement lines containing").
				Value(&m.draft.Pattern).
				Validate(notBlank("pattern")),

			huh.NewSelect[uuid.UUID]().
				Title("File under").
				Options(categoryOptions(m.categories)[1:]...).
				Value(&m.draft.CategoryID),

			huh.NewInput().
				Title("Rename to (optional)").
				Value(&m.draft.Description),
		),
	).WithWidth(50).WithShowHelp(false)

	m.state = txStateLearning

	return m, m.form.Init()
}

func (m TransactionsModel) updateForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		if keyMsg.Type == tea.KeyEsc {
			m.state = txStateList
			m.form = nil

			return m, nil
		}
	}

	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}

	if m.form.State != huh.StateCompleted {
		return m, cmd
	}

	if m.state == txStateLearning {
		return m, m.learnCmd()
	}

	return m, m.createTxCmd()
}

func (m TransactionsModel) View() string {
	switch m.state {
	case txStateTimeframe:
		return lipgloss.NewStyle().Padding(1).Render(m.timeframePicker.View())

	case txStateList:
		if m.loading {
			return lipgloss.NewStyle().Padding(2).Render("Loading transactions...")
		}

		totals := fmt.Sprintf("Income %s | Expense %s | Net %s",
			FormatAmount(m.totals.Income), FormatAmount(m.totals.Expense), FormatAmount(m.totals.Net))

		statusLine := ""
		if m.status != "" {
			statusLine = faintStyle.Render(m.status) + "\n"
		}

		return lipgloss.NewStyle().Padding(1).Render(statusLine + totals + "\n\n" + m.list.View())

	case txStateAdding, txStateLearning:
		if m.form == nil {
			return ""
		}

		title := "New Transaction"
		if m.state == txStateLearning {
			title = m.txInfoView()
		}

		return lipgloss.NewStyle().Padding(1).Render(title + "\n\n" + m.form.View())
	}

	return ""
}

func (m TransactionsModel) txInfoView() string {
	if m.selectedTx == nil {
		return ""
	}

	return lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1).
		Render(fmt.Sprintf(
			"Date: %s  |  Type: %s  |  Amount: %s\nRaw: %s",
			FormatDate(m.selectedTx.Date),
			m.selectedTx.Type,
			FormatAmount(m.selectedTx.Amount),
			m.selectedTx.RawDescription,
		))
}

func (m *TransactionsModel) refreshListItems() {
	names := make(map[uuid.UUID]string, len(m.categories))
	for _, c := range m.categories {
		names[c.ID] = c.Name
	}

	items := make([]list.Item, len(m.txs))
	for i, tx := range m.txs {
		item := txItem{tx: tx}
		if tx.CategoryID != nil {
			item.category = names[*tx.CategoryID]
		}

		items[i] = item
	}

	m.list.SetItems(items)
}

// listTotals sums what is listed. Without a window every listed transaction counts.
func listTotals(txs []*ledger.Transaction, sel TimeframeSelectedMsg) summary.Totals {
	w := sel.Window
	if sel.All {
		w = summary.Window{}
		for _, tx := range txs {
			if w.Start.IsZero() || tx.Date.Before(w.Start) {
				w.Start = tx.Date
			}

			if tx.Date.After(w.End) {
				w.End = tx.Date
			}
		}
	}

	return summary.PeriodTotals(txs, w.Start, w.End)
}

func accountOptions(accounts []*ledger.Account, none string) []huh.Option[uuid.UUID] {
	opts := make([]huh.Option[uuid.UUID], 0, len(accounts)+1)
	if none != "" {
		opts = append(opts, huh.NewOption(none, uuid.Nil))
	}

	for _, a := range accounts {
		opts = append(opts, huh.NewOption(fmt.Sprintf("%s (%s)", a.Name, a.Type), a.ID))
	}

	return opts
}

// categoryOptions always starts with an "Uncategorized" option.
func categoryOptions(categories []*ledger.Category) []huh.Option[uuid.UUID] {
	opts := []huh.Option[uuid.UUID]{huh.NewOption("Uncategorized", uuid.Nil)}
	for _, c := range categories {
		opts = append(opts, huh.NewOption(fmt.Sprintf("%s (%s)", c.Name, c.Type), c.ID))
	}

	return opts
}

func notBlank(field string) func(string) error {
	return func(s string) error {
		if strings.TrimSpace(s) == "" {
			return fmt.Errorf("%s cannot be empty", field)
		}

		return nil
	}
}

func validateAmount(s string) error {
	d, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil {
		return errors.New("not a number")
	}

	if !d.IsPositive() {
		return errors.New("must be greater than zero")
	}

	return nil
}

func validateDay(s string) error {
	if _, err := ledger.ParseDay(s); err != nil {
		return errors.New("use YYYY-MM-DD")
	}

	return nil
}

func optionalID(id uuid.UUID) *uuid.UUID {
	if id == uuid.Nil {
		return nil
	}

	return &id
}

// createParams turns a filled-in draft into service input.
func (d *txDraft) createParams() (transaction.CreateParams, error) {
	amount, err := decimal.NewFromString(strings.TrimSpace(d.Amount))
	if err != nil {
		return transaction.CreateParams{}, fmt.Errorf("%w: %q", ledger.ErrInvalidAmount, d.Amount)
	}

	day, err := ledger.ParseDay(d.Date)
	if err != nil {
		return transaction.CreateParams{}, err
	}

	return transaction.CreateParams{
		Type:                 d.Type,
		Amount:               amount,
		Description:          strings.TrimSpace(d.Description),
		CategoryID:           optionalID(d.CategoryID),
		AccountID:            d.AccountID,
		DestinationAccountID: optionalID(d.DestID),
		Date:                 day,
	}, nil
}

// Messages

type loadTxsMsg struct {
	txs        []*ledger.Transaction
	accounts   []*ledger.Account
	categories []*ledger.Category
	err        error
}

func (m TransactionsModel) loadTxsCmd() tea.Cmd {
	owner, filter := m.Owner, m.selection.Filter()

	return func() tea.Msg {
		ctx, cancel := DbCtx()
		defer cancel()

		txs, err := m.txService.List(ctx, owner, filter)
		if err != nil {
			return loadTxsMsg{err: err}
		}

		accounts, err := m.accountService.List(ctx, owner)
		if err != nil {
			return loadTxsMsg{err: err}
		}

		categories, err := m.categoryService.List(ctx, owner)
		if err != nil {
			return loadTxsMsg{err: err}
		}

		return loadTxsMsg{txs: txs, accounts: accounts, categories: categories}
	}
}

type saveTxResultMsg struct {
	status string
	err    error
}

func (m TransactionsModel) createTxCmd() tea.Cmd {
	owner, draft := m.Owner, m.draft

	return func() tea.Msg {
		params, err := draft.createParams()
		if err != nil {
			return saveTxResultMsg{err: err}
		}

		ctx, cancel := DbCtx()
		defer cancel()

		if _, err := m.txService.Create(ctx, owner, params); err != nil {
			return saveTxResultMsg{err: err}
		}

		return saveTxResultMsg{status: "Transaction added."}
	}
}

func (m TransactionsModel) learnCmd() tea.Cmd {
	owner, draft := m.Owner, m.draft

	return func() tea.Msg {
		ctx, cancel := DbCtx()
		defer cancel()

		rule, err := m.matchingService.Learn(ctx, owner, matching.LearnParams{
			RawPattern:  draft.Pattern,
			CategoryID:  draft.CategoryID,
			Description: draft.Description,
		})
		if err != nil {
			return saveTxResultMsg{err: err}
		}

		return saveTxResultMsg{status: fmt.Sprintf("Lines containing %q will be filed automatically.", rule.RawPattern)}
	}
}

// txItemDelegate renders items in the list.
type txItemDelegate struct{}

func (d txItemDelegate) Height() int                             { return 2 }
func (d txItemDelegate) Spacing() int                            { return 0 }
func (d txItemDelegate) Update(_ tea.Msg, _ *list.Model) tea.Cmd { return nil }

func (d txItemDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	i, ok := item.(txItem)
	if !ok {
		return
	}

	title := i.Title()
	if index == m.Index() {
		title = lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Bold(true).Render("> " + title)
	}

	fmt.Fprintf(w, "  %s\n", title)
	fmt.Fprintf(w, "    %s\n", faintStyle.Render(i.Description()))
}
