package tui

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/existflow/timeline/internal/logger"
	"github.com/existflow/timeline/internal/model"
)

// tickMsg is sent every second so the now marker tracks the clock
type tickMsg time.Time

// Init initializes the model with a tick command
func (m Model) Init() tea.Cmd {
	return tickCmd()
}

func tickCmd() tea.Cmd {
	return tea.Every(time.Second, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// Update handles messages
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tickMsg:
		m.now = time.Time(msg)
		return m, tickCmd()

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		switch m.mode {
		case ModeAddActivity:
			return m.updateAddForm(msg)
		case ModeLaunchPoints:
			return m.updateLaunchPoints(msg)
		case ModeHelp:
			m.mode = ModeNormal
			return m, nil
		}
		return m.handleNormalKeys(msg)
	}

	return m, nil
}

// handleNormalKeys handles key presses in normal mode
func (m Model) handleNormalKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, keys.Add):
		m.mode = ModeAddActivity
		m.resetForm()
		return m, textinput.Blink

	case key.Matches(msg, keys.Edit):
		m.mode = ModeLaunchPoints
		m.lpCursor = 0
		m.lpAdding = false
		return m, nil

	case key.Matches(msg, keys.Compact):
		m.compact = !m.compact

	case key.Matches(msg, keys.PrevDays):
		m.showPreviousDays = !m.showPreviousDays

	case key.Matches(msg, keys.Export):
		m.exportNow()

	case key.Matches(msg, keys.Help):
		m.mode = ModeHelp
	}

	return m, nil
}

func (m *Model) exportNow() {
	name, data, err := m.trk.ExportData("")
	if err != nil {
		m.message = fmt.Sprintf("Export error: %v", err)
		return
	}
	if err := os.WriteFile(name, data, 0644); err != nil {
		m.message = fmt.Sprintf("Export error: %v", err)
		return
	}
	m.message = fmt.Sprintf("Exported to %s", name)
}

// resetForm blanks the add-activity form back to its defaults.
func (m *Model) resetForm() {
	m.inputs = m.newFormInputs()
	m.lpChoice = -1
	m.setFocus(fieldDate)
}

// setFocus moves input focus to the given field.
func (m *Model) setFocus(field int) {
	m.focus = field
	for i := range m.inputs {
		if i == field {
			m.inputs[i].Focus()
		} else {
			m.inputs[i].Blur()
		}
	}
}

func (m Model) updateAddForm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.Escape):
		m.mode = ModeNormal
		return m, nil

	case key.Matches(msg, keys.Tab):
		m.setFocus((m.focus + 1) % (fieldLaunchPoint + 1))
		return m, textinput.Blink

	case key.Matches(msg, keys.ShiftTab):
		m.setFocus((m.focus + fieldLaunchPoint) % (fieldLaunchPoint + 1))
		return m, textinput.Blink

	case key.Matches(msg, keys.Enter):
		return m.submitActivity()
	}

	// The launch point row is picked with left/right, no text input.
	if m.focus == fieldLaunchPoint {
		points := m.trk.LaunchPoints()
		switch {
		case key.Matches(msg, keys.Left):
			if m.lpChoice >= 0 {
				m.lpChoice--
			}
		case key.Matches(msg, keys.Right):
			if m.lpChoice < len(points)-1 {
				m.lpChoice++
			}
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return m, cmd
}

func (m Model) submitActivity() (tea.Model, tea.Cmd) {
	draft := model.Draft{
		StartClock: strings.TrimSpace(m.inputs[fieldStart].Value()),
		EndClock:   strings.TrimSpace(m.inputs[fieldEnd].Value()),
		Date:       strings.TrimSpace(m.inputs[fieldDate].Value()),
		Color:      strings.TrimSpace(m.inputs[fieldColor].Value()),
		Comment:    m.inputs[fieldComment].Value(),
	}

	if raw := strings.TrimSpace(m.inputs[fieldDuration].Value()); raw != "" {
		minutes, err := strconv.Atoi(raw)
		if err != nil {
			m.message = fmt.Sprintf("Invalid duration: %q", raw)
			return m, nil
		}
		draft.Duration = &minutes
	}

	if points := m.trk.LaunchPoints(); m.lpChoice >= 0 && m.lpChoice < len(points) {
		lp := points[m.lpChoice]
		draft.LaunchPoint = &lp
	}

	a, err := m.trk.AddActivity(draft)
	if err != nil {
		m.message = fmt.Sprintf("Error: %v", err)
		return m, nil
	}

	logger.Debug("activity added from TUI", "id", a.ID)
	m.message = fmt.Sprintf("Added %s (%dmin)", a.ClockRange(), a.Duration)
	m.mode = ModeNormal
	return m, nil
}

func (m Model) updateLaunchPoints(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	points := m.trk.LaunchPoints()

	if m.lpAdding {
		switch {
		case key.Matches(msg, keys.Escape):
			m.lpAdding = false
			return m, nil

		case key.Matches(msg, keys.Tab), key.Matches(msg, keys.ShiftTab):
			m.lpFocus = (m.lpFocus + 1) % 2
			m.lpInputs[m.lpFocus].Focus()
			m.lpInputs[(m.lpFocus+1)%2].Blur()
			return m, textinput.Blink

		case key.Matches(msg, keys.Enter):
			lp, err := m.trk.CreateLaunchPoint(m.lpInputs[0].Value(), m.lpInputs[1].Value())
			if err != nil {
				m.message = fmt.Sprintf("Error: %v", err)
				return m, nil
			}
			m.message = fmt.Sprintf("Added launch point %s %s", lp.Icon, lp.Label)
			m.lpAdding = false
			m.lpInputs = newLaunchPointInputs()
			return m, nil
		}

		var cmd tea.Cmd
		m.lpInputs[m.lpFocus], cmd = m.lpInputs[m.lpFocus].Update(msg)
		return m, cmd
	}

	switch {
	case key.Matches(msg, keys.Escape), key.Matches(msg, keys.Edit):
		m.mode = ModeNormal

	case key.Matches(msg, keys.Up):
		if m.lpCursor > 0 {
			m.lpCursor--
		}

	case key.Matches(msg, keys.Down):
		if m.lpCursor < len(points)-1 {
			m.lpCursor++
		}

	case key.Matches(msg, keys.Add):
		m.lpAdding = true
		m.lpFocus = 0
		m.lpInputs[0].Focus()
		m.lpInputs[1].Blur()
		return m, textinput.Blink

	case key.Matches(msg, keys.Delete):
		if m.lpCursor < len(points) {
			lp := points[m.lpCursor]
			if err := m.trk.DeleteLaunchPoint(lp.ID); err != nil {
				m.message = fmt.Sprintf("Error: %v", err)
				return m, nil
			}
			m.message = fmt.Sprintf("Deleted launch point %s", lp.Label)
			if m.lpCursor > 0 {
				m.lpCursor--
			}
		}
	}

	return m, nil
}
