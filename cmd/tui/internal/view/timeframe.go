package view

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/MrJamesThe3rd/tally/internal/ledger"
	"github.com/MrJamesThe3rd/tally/internal/summary"
	"github.com/MrJamesThe3rd/tally/internal/transaction"
)

// Timeframe represents a predefined or custom date range selection.
type Timeframe int

const (
	TimeframeThisWeek Timeframe = iota
	TimeframeLastWeek
	TimeframeThisMonth
	TimeframeLastMonth
	TimeframeAll
	TimeframeCustom
)

var timeframeLabels = map[Timeframe]string{
	TimeframeThisWeek:  "This Week",
	TimeframeLastWeek:  "Last Week",
	TimeframeThisMonth: "This Month",
	TimeframeLastMonth: "Last Month",
	TimeframeAll:       "All Time",
	TimeframeCustom:    "Custom Range",
}

func (t Timeframe) String() string {
	if label, ok := timeframeLabels[t]; ok {
		return label
	}

	return "Unknown"
}

// timeframeWindow resolves a predefined timeframe against now. Weeks run Sunday to
// Saturday and months are whole calendar months.
func timeframeWindow(tf Timeframe, now time.Time) summary.Window {
	switch tf {
	case TimeframeThisWeek:
		return summary.Week(now)
	case TimeframeLastWeek:
		return summary.Week(now).Shift(-1)
	case TimeframeLastMonth:
		return summary.Month(now).Shift(-1)
	}

	return summary.Month(now)
}

func customWindow(start, end string) (summary.Window, error) {
	s, err := ledger.ParseDay(start)
	if err != nil {
		return summary.Window{}, fmt.Errorf("invalid start date (YYYY-MM-DD)")
	}

	e, err := ledger.ParseDay(end)
	if err != nil {
		return summary.Window{}, fmt.Errorf("invalid end date (YYYY-MM-DD)")
	}

	if e.Before(s) {
		return summary.Window{}, fmt.Errorf("end date is before start date")
	}

	return summary.Window{Start: s, End: e}, nil
}

// TimeframeSelectedMsg is emitted when the user has selected a valid date range.
// Window is the zero value when All is true.
type TimeframeSelectedMsg struct {
	Window summary.Window
	All    bool
}

// Filter narrows a transaction listing to the selected range.
func (msg TimeframeSelectedMsg) Filter() transaction.ListFilter {
	if msg.All {
		return transaction.ListFilter{}
	}

	start, end := msg.Window.Start, msg.Window.End

	return transaction.ListFilter{StartDate: &start, EndDate: &end}
}

type customRange struct {
	Start string
	End   string
}

// TimeframePicker is a reusable component for selecting a date range. Custom ranges are
// entered in a small form.
type TimeframePicker struct {
	selected Timeframe
	minFrame Timeframe
	custom   *huh.Form
	draft    *customRange
	now      func() time.Time
}

// NewTimeframePicker creates a picker starting from the given minimum timeframe.
func NewTimeframePicker(minFrame Timeframe) TimeframePicker {
	return TimeframePicker{selected: minFrame, minFrame: minFrame, now: time.Now}
}

func (m TimeframePicker) Init() tea.Cmd {
	return nil
}

func (m TimeframePicker) Update(msg tea.Msg) (TimeframePicker, tea.Cmd) {
	if m.custom != nil {
		return m.updateCustom(msg)
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch keyMsg.Type {
	case tea.KeyUp:
		if m.selected > m.minFrame {
			m.selected--
		}
	case tea.KeyDown:
		if m.selected < TimeframeCustom {
			m.selected++
		}
	case tea.KeyEnter:
		return m.choose()
	}

	return m, nil
}

func (m TimeframePicker) choose() (TimeframePicker, tea.Cmd) {
	switch m.selected {
	case TimeframeCustom:
		w := summary.Month(m.now())
		m.draft = &customRange{Start: FormatDate(w.Start), End: FormatDate(w.End)}
		m.custom = huh.NewForm(
			huh.NewGroup(
				huh.NewInput().Title("Start date").Placeholder("YYYY-MM-DD").Value(&m.draft.Start).Validate(validateDay),
				huh.NewInput().Title("End date").Placeholder("YYYY-MM-DD").Value(&m.draft.End).Validate(validateDay),
			),
		).WithWidth(30).WithShowHelp(false)

		return m, m.custom.Init()
	case TimeframeAll:
		return m, selectCmd(TimeframeSelectedMsg{All: true})
	}

	return m, selectCmd(TimeframeSelectedMsg{Window: timeframeWindow(m.selected, m.now())})
}

func (m TimeframePicker) updateCustom(msg tea.Msg) (TimeframePicker, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok && keyMsg.Type == tea.KeyEsc {
		m.custom = nil
		return m, nil
	}

	form, cmd := m.custom.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.custom = f
	}

	if m.custom.State != huh.StateCompleted {
		return m, cmd
	}

	w, err := customWindow(m.draft.Start, m.draft.End)
	if err != nil {
		// Both dates already validated, so the range is inverted.
		w = summary.NewWindow(mustDay(m.draft.End), mustDay(m.draft.Start))
	}

	m.custom = nil

	return m, selectCmd(TimeframeSelectedMsg{Window: w})
}

func mustDay(s string) time.Time {
	d, _ := ledger.ParseDay(s)
	return d
}

func selectCmd(msg TimeframeSelectedMsg) tea.Cmd {
	return func() tea.Msg { return msg }
}

func (m TimeframePicker) View() string {
	if m.custom != nil {
		return "Enter Custom Range:\n\n" + m.custom.View() + "\n\n(Enter to confirm, Esc to back)"
	}

	var b strings.Builder

	b.WriteString("Select Timeframe:\n\n")

	for tf := m.minFrame; tf <= TimeframeCustom; tf++ {
		cursor := " "
		if m.selected == tf {
			cursor = ">"
		}

		fmt.Fprintf(&b, "%s %s\n", cursor, tf)
	}

	b.WriteString("\n(Enter to select, Esc to back)")

	return b.String()
}

// IsSelecting returns true if the picker is in the selection state (not custom input).
func (m TimeframePicker) IsSelecting() bool {
	return m.custom == nil
}

// Reset returns the picker to its initial selection state.
func (m *TimeframePicker) Reset() {
	m.selected = m.minFrame
	m.custom = nil
	m.draft = nil
}
