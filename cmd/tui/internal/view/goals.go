package view

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/MrJamesThe3rd/tally/internal/ledger"
	"github.com/MrJamesThe3rd/tally/internal/savings"
	"github.com/MrJamesThe3rd/tally/internal/summary"
	"github.com/MrJamesThe3rd/tally/internal/transaction"
)

// How far back the contribution form offers transactions to fund from.
const contributionLookback = 60

type goalsState int

const (
	goalsStateBrowse goalsState = iota
	goalsStateNew
	goalsStateContribute
)

type goalDraft struct {
	Name          string
	Target        string
	Initial       string
	TargetDate    string
	Priority      ledger.Priority
	TransactionID uuid.UUID
	Amount        string
	Notes         string
}

type GoalsModel struct {
	CommonModel
	savingsService *savings.Service
	txService      *transaction.Service

	state  goalsState
	table  table.Model
	form   *huh.Form
	draft  *goalDraft
	goals  []*ledger.SavingsGoal
	recent []*ledger.Transaction

	loading bool
	status  string
	err     error
}

func NewGoalsModel(owner uuid.UUID, svc *savings.Service, txSvc *transaction.Service) GoalsModel {
	t := table.New(
		table.WithColumns([]table.Column{
			{Title: "Goal", Width: 20},
			{Title: "Priority", Width: 8},
			{Title: "Saved", Width: 12},
			{Title: "Target", Width: 12},
			{Title: "Progress", Width: 9},
			{Title: "Due", Width: 11},
			{Title: "Days", Width: 6},
			{Title: "Monthly", Width: 10},
		}),
		table.WithFocused(true),
		table.WithHeight(12),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(false)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	return GoalsModel{
		CommonModel:    CommonModel{Owner: owner},
		savingsService: svc,
		txService:      txSvc,
		table:          t,
		loading:        true,
	}
}

func (m GoalsModel) Title() string { return "Savings Goals" }

func (m GoalsModel) ShortHelp() string {
	if m.state != goalsStateBrowse {
		return "Navigate form | Esc: cancel"
	}

	return "Esc: back | n: new goal | c: contribute | x: reconcile | r: refresh"
}

func (m GoalsModel) Init() tea.Cmd {
	return m.loadCmd()
}

func (m GoalsModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case goalsLoadedMsg:
		m.loading = false
		m.err = msg.err

		if msg.err == nil {
			m.goals = msg.goals
			m.recent = msg.recent
			m.table.SetRows(goalRows(msg.goals, time.Now()))
		}

		return m, nil

	case goalActionMsg:
		m.state = goalsStateBrowse
		m.form = nil
		m.table.Focus()

		m.status = msg.status
		if msg.err != nil {
			m.status = contributionError(msg.err)
		}

		return m, m.loadCmd()

	case tea.WindowSizeMsg:
		m.table.SetHeight(msg.Height - 12)
		return m, nil
	}

	if m.state != goalsStateBrowse {
		return m.updateForm(msg)
	}

	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case "esc":
			return m, Back
		case "r":
			m.loading = true
			return m, m.loadCmd()
		case "n":
			return m.startNew()
		case "c":
			return m.startContribute()
		case "x":
			return m, m.reconcileCmd()
		}
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)

	return m, cmd
}

func (m GoalsModel) selectedGoal() *ledger.SavingsGoal {
	idx := m.table.Cursor()
	if idx < 0 || idx >= len(m.goals) {
		return nil
	}

	return m.goals[idx]
}

func (m GoalsModel) startNew() (tea.Model, tea.Cmd) {
	m.draft = &goalDraft{
		Initial:    "0",
		TargetDate: FormatDate(time.Now().AddDate(1, 0, 0)),
		Priority:   ledger.PriorityMedium,
	}

	m.form = huh.NewForm(
		huh.NewGroup(
			huh.NewInput().Title("Name").Value(&m.draft.Name).Validate(notBlank("name")),
			huh.NewInput().Title("Target amount").Value(&m.draft.Target).Validate(validateAmount),
			huh.NewInput().Title("Already saved").Value(&m.draft.Initial).Validate(validateNonNegative),
			huh.NewInput().Title("Target date").Placeholder("YYYY-MM-DD").Value(&m.draft.TargetDate).Validate(validateDay),
			huh.NewSelect[ledger.Priority]().
				Title("Priority").
				Options(
					huh.NewOption("High", ledger.PriorityHigh),
					huh.NewOption("Medium", ledger.PriorityMedium),
					huh.NewOption("Low", ledger.PriorityLow),
				).
				Value(&m.draft.Priority),
		),
	).WithWidth(50).WithShowHelp(false)

	m.state = goalsStateNew
	m.table.Blur()

	return m, m.form.Init()
}

func (m GoalsModel) startContribute() (tea.Model, tea.Cmd) {
	goal := m.selectedGoal()
	if goal == nil {
		return m, nil
	}

	if len(m.recent) == 0 {
		m.status = fmt.Sprintf("No transactions in the last %d days to fund a contribution from.", contributionLookback)
		return m, nil
	}

	m.draft = &goalDraft{TransactionID: m.recent[0].ID}

	opts := make([]huh.Option[uuid.UUID], 0, len(m.recent))
	for _, tx := range m.recent {
		label := fmt.Sprintf("%s  %10s  %s", FormatDate(tx.Date), FormatSigned(tx), tx.Description)
		opts = append(opts, huh.NewOption(label, tx.ID))
	}

	m.form = huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[uuid.UUID]().
				Title("Funded by").
				Options(opts...).
				Height(8).
				Value(&m.draft.TransactionID),
			huh.NewInput().Title("Amount").Value(&m.draft.Amount).Validate(validateAmount),
			huh.NewInput().Title("Notes").Value(&m.draft.Notes),
		).Title(fmt.Sprintf("Contribute to %s", goal.Name)),
	).WithWidth(60).WithShowHelp(false)

	m.state = goalsStateContribute
	m.table.Blur()

	return m, m.form.Init()
}

func (m GoalsModel) updateForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok && keyMsg.Type == tea.KeyEsc {
		m.state = goalsStateBrowse
		m.form = nil
		m.table.Focus()

		return m, nil
	}

	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}

	if m.form.State != huh.StateCompleted {
		return m, cmd
	}

	if m.state == goalsStateNew {
		return m, m.createCmd()
	}

	return m, m.contributeCmd(m.selectedGoal())
}

func (m GoalsModel) View() string {
	if m.loading {
		return lipgloss.NewStyle().Padding(2).Render("Loading goals...")
	}

	if m.err != nil {
		return lipgloss.NewStyle().Padding(2).Render(errStyle.Render(fmt.Sprintf("Error: %v", m.err)))
	}

	overview := summary.OverviewOf(m.goals)
	header := fmt.Sprintf("Saved %s of %s (%s) | %d active",
		FormatAmount(overview.TotalSaved), FormatAmount(overview.TotalTarget), FormatPct(overview.Percentage), overview.Active)

	content := lipgloss.JoinVertical(lipgloss.Left,
		lipgloss.NewStyle().PaddingBottom(1).Render(header),
		lipgloss.NewStyle().BorderStyle(lipgloss.NormalBorder()).BorderForeground(lipgloss.Color("240")).Render(m.table.View()),
	)

	if m.form != nil {
		panel := lipgloss.NewStyle().
			Padding(1, 2).
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("63")).
			Render(m.form.View())

		content = lipgloss.JoinHorizontal(lipgloss.Top, content, panel)
	}

	if m.status != "" {
		content = faintStyle.Render(m.status) + "\n" + content
	}

	return lipgloss.NewStyle().Padding(1).Render(content)
}

func goalRows(goals []*ledger.SavingsGoal, today time.Time) []table.Row {
	rows := make([]table.Row, 0, len(goals))

	for _, g := range goals {
		p := summary.GoalProgress(g, today)

		days := fmt.Sprintf("%d", p.DaysRemaining)
		if p.DaysRemaining < 0 {
			days = "late"
		}

		rows = append(rows, table.Row{
			g.Name,
			string(g.Priority),
			FormatAmount(g.CurrentAmount),
			FormatAmount(g.TargetAmount),
			p.Percentage.StringFixed(1) + "%",
			FormatDate(g.TargetDate),
			days,
			FormatAmount(p.MonthlyNeeded),
		})
	}

	return rows
}

// contributionError explains a failed contribution. A partial one has been recorded and
// is repaired by reconciliation, so it reads differently from a rejected one.
func contributionError(err error) string {
	switch {
	case errors.Is(err, ledger.ErrPartialContribution):
		return "Contribution recorded but the goal was not updated. Press x to reconcile."
	case errors.Is(err, ledger.ErrBackendUnavailable):
		return "Database unavailable, nothing was saved. Try again shortly."
	case ledger.IsValidation(err):
		return fmt.Sprintf("Rejected: %v", err)
	}

	return fmt.Sprintf("Error: %v", err)
}

func validateNonNegative(s string) error {
	d, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil {
		return errors.New("not a number")
	}

	if d.IsNegative() {
		return errors.New("cannot be negative")
	}

	return nil
}

// Messages

type goalsLoadedMsg struct {
	goals  []*ledger.SavingsGoal
	recent []*ledger.Transaction
	err    error
}

type goalActionMsg struct {
	status string
	err    error
}

func (m GoalsModel) loadCmd() tea.Cmd {
	owner := m.Owner

	return func() tea.Msg {
		ctx, cancel := DbCtx()
		defer cancel()

		goals, err := m.savingsService.ListGoals(ctx, owner)
		if err != nil {
			return goalsLoadedMsg{err: err}
		}

		since := ledger.Day(time.Now()).AddDate(0, 0, -contributionLookback)

		recent, err := m.txService.List(ctx, owner, transaction.ListFilter{StartDate: &since})
		if err != nil {
			return goalsLoadedMsg{err: err}
		}

		return goalsLoadedMsg{goals: goals, recent: recent}
	}
}

func (m GoalsModel) createCmd() tea.Cmd {
	owner, d := m.Owner, m.draft

	return func() tea.Msg {
		target, err := decimal.NewFromString(strings.TrimSpace(d.Target))
		if err != nil {
			return goalActionMsg{err: fmt.Errorf("%w: %q", ledger.ErrInvalidAmount, d.Target)}
		}

		initial, err := decimal.NewFromString(strings.TrimSpace(d.Initial))
		if err != nil {
			return goalActionMsg{err: fmt.Errorf("%w: %q", ledger.ErrInvalidAmount, d.Initial)}
		}

		due, err := ledger.ParseDay(d.TargetDate)
		if err != nil {
			return goalActionMsg{err: err}
		}

		ctx, cancel := DbCtx()
		defer cancel()

		goal, err := m.savingsService.CreateGoal(ctx, owner, savings.CreateGoalParams{
			Name:          d.Name,
			TargetAmount:  target,
			CurrentAmount: initial,
			TargetDate:    due,
			Priority:      d.Priority,
		})
		if err != nil {
			return goalActionMsg{err: err}
		}

		return goalActionMsg{status: fmt.Sprintf("Created goal %s.", goal.Name)}
	}
}

func (m GoalsModel) contributeCmd(goal *ledger.SavingsGoal) tea.Cmd {
	if goal == nil {
		return nil
	}

	owner, d := m.Owner, m.draft

	return func() tea.Msg {
		amount, err := decimal.NewFromString(strings.TrimSpace(d.Amount))
		if err != nil {
			return goalActionMsg{err: fmt.Errorf("%w: %q", ledger.ErrInvalidAmount, d.Amount)}
		}

		ctx, cancel := DbCtx()
		defer cancel()

		c, err := m.savingsService.ApplyContribution(ctx, owner, savings.ContributeParams{
			TransactionID: d.TransactionID,
			GoalID:        goal.ID,
			Amount:        amount,
			Notes:         d.Notes,
		})
		if err != nil {
			return goalActionMsg{err: err}
		}

		return goalActionMsg{status: fmt.Sprintf("Added %s to %s.", FormatAmount(c.Amount), goal.Name)}
	}
}

func (m GoalsModel) reconcileCmd() tea.Cmd {
	goal := m.selectedGoal()
	if goal == nil {
		return nil
	}

	owner := m.Owner

	return func() tea.Msg {
		ctx, cancel := DbCtx()
		defer cancel()

		report, err := m.savingsService.ReconcileGoal(ctx, owner, goal.ID)
		if err != nil {
			return goalActionMsg{err: err}
		}

		if report.Empty() {
			return goalActionMsg{status: fmt.Sprintf("%s already matches its contributions.", goal.Name)}
		}

		return goalActionMsg{status: fmt.Sprintf("%s reconciled: %d pending applied, %d repaired.",
			goal.Name, len(report.Applied), len(report.Repaired))}
	}
}
