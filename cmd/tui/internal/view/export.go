package view

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"github.com/google/uuid"

	"github.com/MrJamesThe3rd/tally/internal/export"
)

const exportTimeout = 2 * time.Minute

type exportState int

const (
	exportStateTimeframe exportState = iota
	exportStateTarget
	exportStateExporting
	exportStateResult
)

type exportTarget string

const (
	targetFolder exportTarget = "folder"
	targetZip    exportTarget = "zip"
)

type exportDraft struct {
	Path   string
	Target exportTarget
}

type ExportModel struct {
	CommonModel
	exportService *export.Service

	state     exportState
	picker    TimeframePicker
	selection TimeframeSelectedMsg
	form      *huh.Form
	draft     *exportDraft
	spinner   spinner.Model

	summary string
	written string
	err     error
}

func NewExportModel(owner uuid.UUID, svc *export.Service) ExportModel {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("205"))

	return ExportModel{
		CommonModel:   CommonModel{Owner: owner},
		exportService: svc,
		picker:        NewTimeframePicker(TimeframeThisMonth),
		draft:         &exportDraft{Path: "./exports", Target: targetFolder},
		spinner:       s,
	}
}

func (m ExportModel) Title() string { return "Export Transactions" }

func (m ExportModel) ShortHelp() string {
	switch m.state {
	case exportStateResult:
		return "Esc: back to menu"
	case exportStateExporting:
		return "Exporting..."
	}

	return "Esc: back | Enter: confirm"
}

func (m ExportModel) Init() tea.Cmd {
	return nil
}

func (m ExportModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case TimeframeSelectedMsg:
		m.selection = msg
		m.form = m.targetForm()
		m.state = exportStateTarget

		return m, m.form.Init()

	case exportResultMsg:
		m.state = exportStateResult
		m.err = msg.err
		m.summary = msg.summary
		m.written = msg.written

		return m, nil

	case spinner.TickMsg:
		if m.state != exportStateExporting {
			return m, nil
		}

		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)

		return m, cmd

	case tea.KeyMsg:
		if msg.Type == tea.KeyEsc {
			return m.handleEsc()
		}
	}

	switch m.state {
	case exportStateTimeframe:
		var cmd tea.Cmd
		m.picker, cmd = m.picker.Update(msg)

		return m, cmd

	case exportStateTarget:
		form, cmd := m.form.Update(msg)
		if f, ok := form.(*huh.Form); ok {
			m.form = f
		}

		if m.form.State != huh.StateCompleted {
			return m, cmd
		}

		m.state = exportStateExporting

		return m, tea.Batch(m.spinner.Tick, m.exportCmd())
	}

	return m, nil
}

func (m ExportModel) handleEsc() (tea.Model, tea.Cmd) {
	switch m.state {
	case exportStateTimeframe:
		if !m.picker.IsSelecting() {
			m.picker, _ = m.picker.Update(tea.KeyMsg{Type: tea.KeyEsc})
			return m, nil
		}

		return m, Back
	case exportStateTarget:
		m.state = exportStateTimeframe
		m.picker.Reset()

		return m, nil
	case exportStateResult:
		return m, Back
	}

	return m, nil
}

func (m ExportModel) targetForm() *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[exportTarget]().
				Title("Write as").
				Options(
					huh.NewOption("Folder with statement.csv and summary.txt", targetFolder),
					huh.NewOption("Single zip archive", targetZip),
				).
				Value(&m.draft.Target),
			huh.NewInput().
				Title("Output Path").
				Description("Directory will be created if it doesn't exist").
				Placeholder("./exports").
				Value(&m.draft.Path).
				Validate(notBlank("path")),
		),
	).WithWidth(50).WithShowHelp(false)
}

func (m ExportModel) View() string {
	style := lipgloss.NewStyle().Padding(1)

	switch m.state {
	case exportStateTimeframe:
		return style.Render(m.picker.View())
	case exportStateTarget:
		return style.Render(m.form.View())
	case exportStateExporting:
		return style.Render(fmt.Sprintf("%s Exporting transactions...", m.spinner.View()))
	case exportStateResult:
		if m.err != nil {
			return style.Render(errStyle.Render(fmt.Sprintf("Error: %v", m.err)))
		}

		return style.Render(lipgloss.JoinVertical(lipgloss.Left,
			okStyle.Bold(true).Render("Export Complete!"),
			faintStyle.Render("Written to "+m.written),
			"",
			m.summary,
		))
	}

	return ""
}

type exportResultMsg struct {
	summary string
	written string
	err     error
}

func (m ExportModel) exportCmd() tea.Cmd {
	owner, filter, draft := m.Owner, m.selection.Filter(), *m.draft

	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), exportTimeout)
		defer cancel()

		st, err := m.exportService.Statement(ctx, owner, filter)
		if err != nil {
			return exportResultMsg{err: err}
		}

		written, err := writeExport(draft, st, time.Now())
		if err != nil {
			return exportResultMsg{err: err}
		}

		return exportResultMsg{summary: export.Summary(st), written: written}
	}
}

// writeExport writes st under d.Path and returns where it went. Zip archives are named
// after the day they were made.
func writeExport(d exportDraft, st *export.Statement, now time.Time) (string, error) {
	if err := os.MkdirAll(d.Path, 0o755); err != nil {
		return "", fmt.Errorf("create export directory: %w", err)
	}

	if d.Target == targetZip {
		name := filepath.Join(d.Path, fmt.Sprintf("export_%s.zip", now.Format("20060102")))

		return name, writeFile(name, func(f *os.File) error { return export.WriteBundle(f, st) })
	}

	err := writeFile(filepath.Join(d.Path, export.StatementFile), func(f *os.File) error {
		return export.WriteCSV(f, st)
	})
	if err != nil {
		return "", err
	}

	err = os.WriteFile(filepath.Join(d.Path, export.SummaryFile), []byte(export.Summary(st)), 0o644)
	if err != nil {
		return "", fmt.Errorf("write summary: %w", err)
	}

	return d.Path, nil
}

func writeFile(name string, write func(*os.File) error) error {
	f, err := os.Create(name)
	if err != nil {
		return fmt.Errorf("create %s: %w", name, err)
	}

	if err := write(f); err != nil {
		f.Close()
		return err
	}

	return f.Close()
}
