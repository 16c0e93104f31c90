package view

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/charmbracelet/bubbles/filepicker"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"github.com/google/uuid"

	"github.com/MrJamesThe3rd/tally/internal/account"
	"github.com/MrJamesThe3rd/tally/internal/importer"
	"github.com/MrJamesThe3rd/tally/internal/ledger"
	"github.com/MrJamesThe3rd/tally/internal/transaction"
)

const importTimeout = 2 * time.Minute

type importState int

const (
	importStateLoading importState = iota
	importStateSource
	importStateFilePick
	importStateImporting
	importStateConflicts
	importStateResult
)

var formatLabels = map[importer.Format]string{
	importer.FormatCGD: "CGD (CSV)",
	importer.FormatOFX: "OFX / QFX",
}

type importSource struct {
	Format    importer.Format
	AccountID uuid.UUID
}

type ImportModel struct {
	CommonModel
	txService      *transaction.Service
	importService  *importer.Service
	accountService *account.Service

	state      importState
	form       *huh.Form
	source     *importSource
	filePicker filepicker.Model

	pending   []transaction.CreateParams
	conflicts []transaction.Conflict
	keep      map[int]bool
	conflictL list.Model

	imported int
	status   string
	err      error
}

func NewImportModel(owner uuid.UUID, txSvc *transaction.Service, impSvc *importer.Service, accSvc *account.Service) ImportModel {
	fp := filepicker.New()
	fp.CurrentDirectory, _ = os.Getwd()
	fp.AllowedTypes = []string{".csv", ".ofx", ".qfx"}
	fp.DirAllowed = false
	fp.FileAllowed = true
	fp.SetHeight(15)

	return ImportModel{
		CommonModel:    CommonModel{Owner: owner},
		txService:      txSvc,
		importService:  impSvc,
		accountService: accSvc,
		filePicker:     fp,
		source:         &importSource{Format: importer.FormatCGD},
		keep:           make(map[int]bool),
	}
}

func (m ImportModel) Title() string { return "Import Statement" }

func (m ImportModel) ShortHelp() string {
	if m.state == importStateConflicts {
		return "Space: toggle | a: all | n: none | Enter: confirm | Esc: cancel"
	}

	return "Esc: back | Enter: select"
}

func (m ImportModel) Init() tea.Cmd {
	return m.loadAccountsCmd()
}

func (m ImportModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case importAccountsMsg:
		return m.withAccounts(msg)

	case importResultMsg:
		return m.withResult(msg)

	case confirmResultMsg:
		m.state = importStateResult
		m.err = msg.err
		m.status = fmt.Sprintf("Imported %d transactions.", m.imported+msg.count)

		return m, nil

	case tea.KeyMsg:
		if msg.Type == tea.KeyEsc {
			return m.handleEsc()
		}

		if m.state == importStateConflicts {
			return m.updateConflicts(msg)
		}
	}

	switch m.state {
	case importStateSource:
		form, cmd := m.form.Update(msg)
		if f, ok := form.(*huh.Form); ok {
			m.form = f
		}

		if m.form.State != huh.StateCompleted {
			return m, cmd
		}

		m.state = importStateFilePick

		return m, m.filePicker.Init()

	case importStateFilePick:
		var cmd tea.Cmd
		m.filePicker, cmd = m.filePicker.Update(msg)

		if ok, path := m.filePicker.DidSelectFile(msg); ok {
			m.state = importStateImporting
			m.status = fmt.Sprintf("Importing from %s...", path)

			return m, m.importCmd(path)
		}

		return m, cmd
	}

	return m, nil
}

func (m ImportModel) withAccounts(msg importAccountsMsg) (tea.Model, tea.Cmd) {
	if msg.err != nil {
		m.state = importStateResult
		m.err = msg.err

		return m, nil
	}

	if len(msg.accounts) == 0 {
		m.state = importStateResult
		m.err = fmt.Errorf("no accounts yet, create one first")

		return m, nil
	}

	formats := make([]huh.Option[importer.Format], 0, len(formatLabels))
	for _, f := range []importer.Format{importer.FormatCGD, importer.FormatOFX} {
		formats = append(formats, huh.NewOption(formatLabels[f], f))
	}

	m.source.AccountID = msg.accounts[0].ID
	m.form = huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[importer.Format]().
				Title("Statement format").
				Options(formats...).
				Value(&m.source.Format),
			huh.NewSelect[uuid.UUID]().
				Title("Into account").
				Options(accountOptions(msg.accounts, "")...).
				Value(&m.source.AccountID),
		),
	).WithWidth(50).WithShowHelp(false)
	m.state = importStateSource

	return m, m.form.Init()
}

func (m ImportModel) withResult(msg importResultMsg) (tea.Model, tea.Cmd) {
	if msg.err != nil {
		m.state = importStateResult
		m.err = msg.err

		return m, nil
	}

	m.imported = len(msg.result.Imported)
	m.status = fmt.Sprintf("Imported %d transactions.", m.imported)

	if len(msg.result.Conflicts) == 0 {
		m.state = importStateResult
		return m, nil
	}

	m.pending = msg.result.New
	m.conflicts = msg.result.Conflicts
	m.keep = make(map[int]bool)
	m.state = importStateConflicts

	items := make([]list.Item, len(m.conflicts))
	for i, c := range m.conflicts {
		items[i] = conflictItem{conflict: c, index: i}
	}

	m.conflictL = list.New(items, conflictDelegate{keep: m.keep}, 80, 20)
	m.conflictL.Title = fmt.Sprintf("%d lines look like transactions you already have", len(m.conflicts))
	m.conflictL.SetShowStatusBar(false)
	m.conflictL.SetFilteringEnabled(false)
	m.conflictL.SetShowHelp(false)

	return m, nil
}

func (m ImportModel) handleEsc() (tea.Model, tea.Cmd) {
	switch m.state {
	case importStateFilePick, importStateConflicts, importStateResult:
		m = NewImportModel(m.Owner, m.txService, m.importService, m.accountService)
		return m, m.Init()
	}

	return m, Back
}

func (m ImportModel) updateConflicts(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case " ":
		idx := m.conflictL.Index()
		m.keep[idx] = !m.keep[idx]

		return m, nil
	case "a", "n":
		for i := range m.conflicts {
			m.keep[i] = msg.String() == "a"
		}

		return m, nil
	case "enter":
		return m, m.confirmCmd()
	}

	var cmd tea.Cmd
	m.conflictL, cmd = m.conflictL.Update(msg)

	return m, cmd
}

func (m ImportModel) View() string {
	style := lipgloss.NewStyle().Padding(1)

	switch m.state {
	case importStateLoading:
		return style.Render("Loading accounts...")
	case importStateSource:
		return style.Render(m.form.View())
	case importStateFilePick:
		return style.Render(fmt.Sprintf("Select file to import (%s):\n\n%s", formatLabels[m.source.Format], m.filePicker.View()))
	case importStateImporting:
		return style.Render(m.status)
	case importStateConflicts:
		return style.Render(faintStyle.Render(m.status) + "\n" + m.conflictL.View())
	case importStateResult:
		if m.err != nil {
			return style.Render(errStyle.Render(fmt.Sprintf("Error: %v", m.err)) + "\n\n(Esc to go back)")
		}

		return style.Render(okStyle.Render(m.status) + "\n\n(Esc to go back)")
	}

	return ""
}

// Messages

type importAccountsMsg struct {
	accounts []*ledger.Account
	err      error
}

type importResultMsg struct {
	result *transaction.ImportResult
	err    error
}

type confirmResultMsg struct {
	count int
	err   error
}

func (m ImportModel) loadAccountsCmd() tea.Cmd {
	owner := m.Owner

	return func() tea.Msg {
		ctx, cancel := DbCtx()
		defer cancel()

		accounts, err := m.accountService.List(ctx, owner)

		return importAccountsMsg{accounts: accounts, err: err}
	}
}

func (m ImportModel) importCmd(path string) tea.Cmd {
	owner, src := m.Owner, *m.source

	return func() tea.Msg {
		f, err := os.Open(path)
		if err != nil {
			return importResultMsg{err: err}
		}
		defer f.Close()

		ctx, cancel := context.WithTimeout(context.Background(), importTimeout)
		defer cancel()

		params, err := m.importService.Import(ctx, owner, src.Format, src.AccountID, f)
		if err != nil {
			return importResultMsg{err: err}
		}

		result, err := m.txService.ImportBatch(ctx, owner, params)
		if err != nil {
			return importResultMsg{err: err}
		}

		return importResultMsg{result: result}
	}
}

// keptParams is everything that was not a conflict plus the conflicts marked to keep.
func keptParams(pending []transaction.CreateParams, conflicts []transaction.Conflict, keep map[int]bool) []transaction.CreateParams {
	out := append([]transaction.CreateParams(nil), pending...)

	for i, c := range conflicts {
		if keep[i] {
			out = append(out, c.Incoming)
		}
	}

	return out
}

func (m ImportModel) confirmCmd() tea.Cmd {
	owner := m.Owner
	params := keptParams(m.pending, m.conflicts, m.keep)

	return func() tea.Msg {
		if len(params) == 0 {
			return confirmResultMsg{}
		}

		ctx, cancel := context.WithTimeout(context.Background(), importTimeout)
		defer cancel()

		txs, err := m.txService.CreateBatch(ctx, owner, params)

		return confirmResultMsg{count: len(txs), err: err}
	}
}

type conflictItem struct {
	conflict transaction.Conflict
	index    int
}

func (i conflictItem) Title() string       { return i.conflict.Incoming.Description }
func (i conflictItem) Description() string { return "" }
func (i conflictItem) FilterValue() string { return "" }

// conflictDelegate draws the incoming line over the stored transaction it collides with.
type conflictDelegate struct {
	keep map[int]bool
}

func (d conflictDelegate) Height() int                             { return 3 }
func (d conflictDelegate) Spacing() int                            { return 0 }
func (d conflictDelegate) Update(_ tea.Msg, _ *list.Model) tea.Cmd { return nil }

func (d conflictDelegate) Render(w io.Writer, m list.Model, index int, listItem list.Item) {
	item, ok := listItem.(conflictItem)
	if !ok {
		return
	}

	box := "[ ]"
	if d.keep[item.index] {
		box = "[x]"
	}

	cursor := "  "
	if index == m.Index() {
		cursor = "> "
	}

	in := item.conflict.Incoming
	incoming := &ledger.Transaction{Type: in.Type, Amount: in.Amount}

	fmt.Fprintf(w, "%s%s %s  %10s  %s\n", cursor, box, FormatDate(in.Date), FormatSigned(incoming), in.Description)
	fmt.Fprintf(w, "      %s\n", faintStyle.Render(fmt.Sprintf("already have: %s  %s  %s",
		FormatDate(item.conflict.Existing.Date), FormatSigned(item.conflict.Existing), item.conflict.Existing.Description)))
}
