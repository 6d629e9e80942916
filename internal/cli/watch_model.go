package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/nkondratyk93/mvp-punchclock/internal/cli/formatter"
	"github.com/nkondratyk93/mvp-punchclock/internal/domain"
	"github.com/nkondratyk93/mvp-punchclock/internal/report"
)

// watchTickMsg drives the once-per-second elapsed-time refresh.
type watchTickMsg time.Time

// watchModel is the live view: it shows the running session's elapsed
// time and today's total, and lets the user clock in/out without leaving
// the view. The tick is rescheduled only while an entry is active, so the
// recurring callback is torn down as soon as the session closes.
type watchModel struct {
	app *App

	active    *domain.TimeEntry
	noteInput textinput.Model
	noteMode  bool
	quitting  bool
}

func newWatchModel(app *App) watchModel {
	ti := textinput.New()
	ti.Prompt = "note> "
	ti.CharLimit = 200

	return watchModel{
		app:       app,
		active:    app.Entries.Active(),
		noteInput: ti,
	}
}

func watchTick() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return watchTickMsg(t)
	})
}

func (m watchModel) Init() tea.Cmd {
	if m.active != nil {
		return watchTick()
	}
	return nil
}

func (m watchModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case watchTickMsg:
		// Re-read so an out-of-band mutation is picked up; stop ticking
		// once nothing is active.
		m.active = m.app.Entries.Active()
		if m.active == nil {
			return m, nil
		}
		return m, watchTick()

	case tea.KeyMsg:
		if m.noteMode {
			return m.updateNoteMode(msg)
		}

		switch msg.String() {
		case "q", "ctrl+c":
			m.quitting = true
			return m, tea.Quit
		case "i":
			if m.active == nil {
				entry := m.app.Entries.ClockIn()
				m.app.track("clock_in", "watch")
				m.active = &entry
				return m, watchTick()
			}
		case "o":
			if m.active != nil {
				m.noteMode = true
				m.noteInput.SetValue("")
				return m, m.noteInput.Focus()
			}
		}
	}

	return m, nil
}

func (m watchModel) updateNoteMode(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		m.app.Entries.ClockOut(m.noteInput.Value())
		m.app.track("clock_out", "watch")
		m.active = nil
		m.noteMode = false
		m.noteInput.Blur()
		return m, nil
	case "esc":
		m.noteMode = false
		m.noteInput.Blur()
		return m, nil
	}

	var cmd tea.Cmd
	m.noteInput, cmd = m.noteInput.Update(msg)
	return m, cmd
}

func (m watchModel) View() string {
	if m.quitting {
		return ""
	}

	now := m.app.now()
	var b strings.Builder

	if m.active != nil {
		elapsed := report.DurationOf(*m.active, now)
		b.WriteString(formatter.StyleGreen.Render("● Clocked in") + "\n")
		b.WriteString(formatter.StyleBold.Render(formatter.FormatClock(elapsed)) + "\n")
	} else {
		b.WriteString(formatter.Dim("○ Not clocked in") + "\n")
		b.WriteString(formatter.Dim("00:00:00") + "\n")
	}

	today := report.Total(report.FilterDay(m.app.Entries.ListAll(), now), now)
	b.WriteString(fmt.Sprintf("Today %s\n", formatter.FormatHours(today)))

	if m.noteMode {
		b.WriteString("\n" + m.noteInput.View() + "\n")
		b.WriteString(formatter.Dim("enter to clock out · esc to cancel"))
	} else if m.active != nil {
		b.WriteString("\n" + formatter.Dim("o clock out · q quit"))
	} else {
		b.WriteString("\n" + formatter.Dim("i clock in · q quit"))
	}

	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(formatter.ColorDim).
		Padding(1, 2)
	return box.Render(b.String())
}
