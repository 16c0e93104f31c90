package view

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/google/uuid"

	"github.com/MrJamesThe3rd/tally/internal/category"
	"github.com/MrJamesThe3rd/tally/internal/dashboard"
	"github.com/MrJamesThe3rd/tally/internal/summary"
)

type DashboardModel struct {
	CommonModel
	dashboardService *dashboard.Service
	categoryService  *category.Service

	month   time.Time
	data    *dashboard.Dashboard
	names   map[uuid.UUID]string
	usage   table.Model
	loading bool
	err     error
}

func NewDashboardModel(owner uuid.UUID, svc *dashboard.Service, catSvc *category.Service) DashboardModel {
	t := table.New(
		table.WithColumns([]table.Column{
			{Title: "Category", Width: 20},
			{Title: "Budgeted", Width: 12},
			{Title: "Spent", Width: 12},
			{Title: "Remaining", Width: 12},
			{Title: "Used", Width: 8},
			{Title: "Status", Width: 12},
		}),
		table.WithHeight(10),
	)

	return DashboardModel{
		CommonModel:      CommonModel{Owner: owner},
		dashboardService: svc,
		categoryService:  catSvc,
		month:            time.Now(),
		usage:            t,
		loading:          true,
	}
}

func (m DashboardModel) Title() string { return "Dashboard" }

func (m DashboardModel) ShortHelp() string {
	return "Esc: back | ←/→: month | r: refresh"
}

func (m DashboardModel) Init() tea.Cmd {
	return m.loadCmd()
}

func (m DashboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case dashboardLoadedMsg:
		m.loading = false
		m.err = msg.err

		if msg.err == nil {
			m.data = msg.data
			m.names = msg.names
			m.usage.SetRows(usageRows(msg.data.Usage, msg.names))
		}

		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "esc":
			return m, Back
		case "r":
			m.loading = true
			return m, m.loadCmd()
		case "left", "h":
			m.month = m.month.AddDate(0, -1, 0)
			m.loading = true

			return m, m.loadCmd()
		case "right", "l":
			m.month = m.month.AddDate(0, 1, 0)
			m.loading = true

			return m, m.loadCmd()
		}
	}

	return m, nil
}

func (m DashboardModel) View() string {
	if m.loading {
		return lipgloss.NewStyle().Padding(2).Render("Loading dashboard...")
	}

	if m.err != nil {
		return lipgloss.NewStyle().Padding(2).Render(errStyle.Render(fmt.Sprintf("Error: %v", m.err)))
	}

	d := m.data
	card := lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("63")).
		Padding(0, 1).
		Width(30)

	balance := card.Render(fmt.Sprintf("Total balance\n\n%s €", FormatAmount(d.TotalBalance)))
	monthly := card.Render(fmt.Sprintf(
		"This month\n\nIncome  %s\nExpense %s\nNet     %s",
		FormatAmount(d.Monthly.Income), FormatAmount(d.Monthly.Expense), FormatAmount(d.Monthly.Net),
	))

	unallocated := FormatAmount(d.Budget.Unallocated)
	if d.Budget.Unallocated.IsNegative() {
		unallocated = errStyle.Render(unallocated)
	}

	budget := card.Render(fmt.Sprintf(
		"Zero-based budget\n\nBudgeted    %s\nUnallocated %s\nAllocated   %s",
		FormatAmount(d.Budget.Budgeted), unallocated, FormatPct(d.Budget.AllocatedPct),
	))
	goals := card.Render(fmt.Sprintf(
		"Savings\n\nSaved  %s / %s\nActive %d goals",
		FormatAmount(d.Savings.TotalSaved), FormatAmount(d.Savings.TotalTarget), d.Savings.Active,
	))

	header := lipgloss.NewStyle().Bold(true).Render(fmt.Sprintf(
		"%s  (%s .. %s)", d.Month.Start.Format("January 2006"), FormatDate(d.Month.Start), FormatDate(d.Month.End),
	))

	return lipgloss.NewStyle().Padding(1).Render(lipgloss.JoinVertical(lipgloss.Left,
		header,
		"",
		lipgloss.JoinHorizontal(lipgloss.Top, balance, monthly, budget, goals),
		"",
		"Budget usage",
		m.usage.View(),
	))
}

func usageRows(usage []summary.Usage, names map[uuid.UUID]string) []table.Row {
	rows := make([]table.Row, 0, len(usage))

	for _, u := range usage {
		name, ok := names[u.CategoryID]
		if !ok {
			name = u.CategoryID.String()[:8]
		}

		rows = append(rows, table.Row{
			name,
			FormatAmount(u.Budgeted),
			FormatAmount(u.Spent),
			FormatAmount(u.Remaining),
			FormatPct(u.Percentage),
			statusLabel(u.Status),
		})
	}

	return rows
}

// statusLabel stays unstyled; table cells are measured without escape codes.
func statusLabel(s summary.Status) string {
	if s == summary.StatusOver {
		return "OVER"
	}

	return strings.ReplaceAll(string(s), "_", " ")
}

type dashboardLoadedMsg struct {
	data  *dashboard.Dashboard
	names map[uuid.UUID]string
	err   error
}

func (m DashboardModel) loadCmd() tea.Cmd {
	owner, month := m.Owner, m.month

	return func() tea.Msg {
		ctx, cancel := DbCtx()
		defer cancel()

		data, err := m.dashboardService.Build(ctx, owner, month)
		if err != nil {
			return dashboardLoadedMsg{err: err}
		}

		cats, err := m.categoryService.List(ctx, owner)
		if err != nil {
			return dashboardLoadedMsg{err: err}
		}

		names := make(map[uuid.UUID]string, len(cats))
		for _, c := range cats {
			names[c.ID] = c.Name
		}

		return dashboardLoadedMsg{data: data, names: names}
	}
}
