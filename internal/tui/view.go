package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/existflow/timeline/internal/geometry"
	"github.com/existflow/timeline/internal/model"
)

// View renders the UI
func (m Model) View() string {
	if m.width == 0 {
		return "Loading..."
	}

	header := m.renderHeader()

	var days []string
	for _, day := range m.dayDates() {
		days = append(days, m.renderDay(day))
	}
	content := lipgloss.JoinVertical(lipgloss.Left, days...)

	main := lipgloss.JoinVertical(lipgloss.Left, header, content)

	switch m.mode {
	case ModeAddActivity:
		main = lipgloss.Place(
			m.width, m.height-2,
			lipgloss.Center, lipgloss.Center,
			m.renderAddForm(),
			lipgloss.WithWhitespaceChars(" "),
		)
	case ModeLaunchPoints:
		main = lipgloss.Place(
			m.width, m.height-2,
			lipgloss.Center, lipgloss.Center,
			m.renderLaunchPoints(),
			lipgloss.WithWhitespaceChars(" "),
		)
	case ModeHelp:
		main = m.renderHelp()
	}

	return lipgloss.JoinVertical(lipgloss.Left, main, m.renderStatusBar())
}

func (m Model) renderHeader() string {
	title := HeaderStyle.Render("Timeline Tracker")
	clock := HelpStyle.Render(m.now.Format("15:04:05"))
	return title + " " + clock
}

// axisWidth returns the number of columns the 24-hour axis spans.
func (m Model) axisWidth() int {
	w := m.width - 8
	if m.compact && w > 48 {
		w = 48
	}
	if w > 144 {
		w = 144
	}
	if w < 24 {
		w = 24
	}
	return w
}

func (m Model) renderDay(day time.Time) string {
	date := day.Format(model.DateLayout)
	activities := m.trk.ActivitiesOn(date)

	title := DayTitleStyle.Render(day.Format("Monday, January 2, 2006"))

	w := m.axisWidth()
	strip := m.renderStrip(date, w)
	scale := renderScale(w)

	body := strip + "\n" + scale
	if !m.compact && len(activities) > 0 {
		var legend []string
		for _, a := range activities {
			legend = append(legend, renderLegendLine(a))
		}
		body += "\n" + strings.Join(legend, "\n")
	}

	return title + "\n" + StripStyle.Render(body) + "\n"
}

// renderStrip draws one 24-hour bar: gridline ticks every 3 hours,
// activities placed by position fraction and sized by width fraction, and
// a now marker on today's strip.
func (m Model) renderStrip(date string, w int) string {
	cells := make([]string, w)
	for i := range cells {
		cells[i] = " "
	}

	for _, g := range geometry.GridHours() {
		col := int(g.Fraction / 100 * float64(w))
		if col < w {
			cells[col] = GridStyle.Render("┊")
		}
	}

	for _, a := range m.trk.ActivitiesOn(date) {
		wf := geometry.WidthFraction(a)
		if wf <= 0 {
			continue
		}
		start := int(geometry.PositionFraction(a.StartTime) / 100 * float64(w))
		span := int(wf/100*float64(w) + 0.5)
		if span < 1 {
			span = 1
		}
		style := lipgloss.NewStyle().Foreground(lipgloss.Color(a.Color))
		for col := start; col < start+span && col < w; col++ {
			cells[col] = style.Render("█")
		}
	}

	if date == m.now.Format(model.DateLayout) {
		col := int(geometry.PositionFraction(m.now) / 100 * float64(w))
		if col < w {
			cells[col] = NowStyle.Render("│")
		}
	}

	return strings.Join(cells, "")
}

// renderScale draws the hour labels row beneath a strip.
func renderScale(w int) string {
	row := []byte(strings.Repeat(" ", w))
	for _, g := range geometry.GridHours() {
		label := fmt.Sprintf("%02d:00", g.Hour)
		col := int(g.Fraction / 100 * float64(w))
		if col+len(label) <= w {
			copy(row[col:], label)
		}
	}
	return ScaleStyle.Render(string(row))
}

func renderLegendLine(a model.Activity) string {
	marker := lipgloss.NewStyle().Foreground(lipgloss.Color(a.Color)).Render("■")

	icon := " "
	if a.LaunchPoint != nil {
		icon = a.LaunchPoint.Icon
	}

	comment := truncate(a.Comment, 40)
	line := fmt.Sprintf("%s %s %s %dmin  %s", marker, icon, a.ClockRange(), a.Duration, comment)
	return LegendStyle.Render(line)
}

func (m Model) renderAddForm() string {
	labels := []string{"Date", "Start", "End", "Duration", "Color", "Comment"}

	content := lipgloss.NewStyle().Bold(true).Render("Add Activity") + "\n\n"
	for i, input := range m.inputs {
		marker := "  "
		if m.focus == i {
			marker = "❯ "
		}
		content += marker + FieldLabelStyle.Render(labels[i]) + input.View() + "\n"
	}

	// Launch point picker row
	marker := "  "
	if m.focus == fieldLaunchPoint {
		marker = "❯ "
	}
	row := marker + FieldLabelStyle.Render("Launch")
	if m.lpChoice < 0 {
		row += SelectedItemStyle.Render("(none)")
	} else {
		row += "(none)"
	}
	for i, lp := range m.trk.LaunchPoints() {
		item := fmt.Sprintf(" %s %s", lp.Icon, lp.Label)
		if i == m.lpChoice {
			item = SelectedItemStyle.Render(item)
		}
		row += item
	}
	content += row + "\n\n"

	content += HelpStyle.Render("tab:next field  ←/→:launch point  Enter:save  Esc:cancel")
	return ModalStyle.Render(content)
}

func (m Model) renderLaunchPoints() string {
	content := lipgloss.NewStyle().Bold(true).Render("Edit Launch Points") + "\n\n"

	for i, lp := range m.trk.LaunchPoints() {
		cursor := "  "
		line := fmt.Sprintf("%s  %s", lp.Icon, lp.Label)
		if i == m.lpCursor && !m.lpAdding {
			cursor = "❯ "
			line = SelectedItemStyle.Render(line)
		}
		content += cursor + line + "\n"
	}

	if m.lpAdding {
		content += "\n" + m.lpInputs[0].View() + " " + m.lpInputs[1].View() + "\n"
		content += HelpStyle.Render("tab:switch  Enter:save  Esc:back")
	} else {
		content += "\n" + HelpStyle.Render("a:add  d:delete  Esc:close")
	}

	return ModalStyle.Render(content)
}

func (m Model) renderHelp() string {
	help := `
╭─── Keyboard Shortcuts ───╮
│                          │
│  a   Add activity        │
│  e   Edit launch points  │
│  c   Toggle compact      │
│  p   Previous days       │
│  x   Export to file      │
│                          │
│  ?   Toggle help         │
│  q   Quit                │
│                          │
╰──────────────────────────╯

     Press any key to close
`
	return lipgloss.Place(m.width, m.height-2, lipgloss.Center, lipgloss.Center, help)
}

func (m Model) renderStatusBar() string {
	help := "a:add  e:launch points  c:compact  p:prev days  x:export  ?:help  q:quit"
	if m.message != "" {
		help = m.message
	}
	return StatusBarStyle.Width(m.width).Render(help)
}
