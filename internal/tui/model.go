package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/existflow/timeline/internal/config"
	"github.com/existflow/timeline/internal/logger"
	"github.com/existflow/timeline/internal/model"
	"github.com/existflow/timeline/internal/tracker"
)

// Mode represents the current UI mode
type Mode int

const (
	ModeNormal Mode = iota
	ModeAddActivity
	ModeLaunchPoints
	ModeHelp
)

// Add-form field indices. The launch point picker sits one past the last
// text input.
const (
	fieldDate = iota
	fieldStart
	fieldEnd
	fieldDuration
	fieldColor
	fieldComment
	fieldLaunchPoint
)

// Model is the main TUI model
type Model struct {
	trk *tracker.Tracker
	cfg *config.Config

	// UI state
	width            int
	height           int
	mode             Mode
	compact          bool
	showPreviousDays bool
	now              time.Time

	// Add-activity form
	inputs   []textinput.Model
	focus    int
	lpChoice int // index into launch points, -1 for none

	// Launch point editor
	lpCursor int
	lpAdding bool
	lpInputs []textinput.Model
	lpFocus  int

	message string
}

// NewModel creates a new TUI model
func NewModel(trk *tracker.Tracker, cfg *config.Config) Model {
	logger.Info("initializing TUI model")

	m := Model{
		trk:              trk,
		cfg:              cfg,
		mode:             ModeNormal,
		compact:          cfg.Compact,
		showPreviousDays: cfg.ShowPreviousDays,
		now:              time.Now(),
		lpChoice:         -1,
	}
	m.inputs = m.newFormInputs()
	m.lpInputs = newLaunchPointInputs()
	return m
}

func (m Model) newFormInputs() []textinput.Model {
	specs := []struct {
		placeholder string
		width       int
	}{
		{model.DateLayout, 12},
		{"HH:MM", 7},
		{"HH:MM", 7},
		{"minutes", 8},
		{"#RRGGBB", 9},
		{"comment", 32},
	}

	inputs := make([]textinput.Model, len(specs))
	for i, spec := range specs {
		ti := textinput.New()
		ti.Placeholder = spec.placeholder
		ti.Width = spec.width
		ti.CharLimit = 64
		inputs[i] = ti
	}

	inputs[fieldDate].SetValue(time.Now().Format(model.DateLayout))
	inputs[fieldColor].SetValue(m.cfg.DefaultColor)
	return inputs
}

func newLaunchPointInputs() []textinput.Model {
	icon := textinput.New()
	icon.Placeholder = "icon"
	icon.Width = 6
	icon.CharLimit = 8

	label := textinput.New()
	label.Placeholder = "label"
	label.Width = 24
	label.CharLimit = 64

	return []textinput.Model{icon, label}
}

// dayDates returns the rendered days, today first. With previous days
// enabled the prior two follow.
func (m Model) dayDates() []time.Time {
	days := []time.Time{m.now}
	if m.showPreviousDays {
		days = append(days, m.now.AddDate(0, 0, -1), m.now.AddDate(0, 0, -2))
	}
	return days
}
