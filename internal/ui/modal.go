package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/five82/composer/internal/logtail"
)

// Modal is the interface for modal dialogs.
// The Update method returns the updated modal, a command, and a bool indicating if the modal should close.
type Modal interface {
	Update(msg tea.Msg, keys keyMap) (Modal, tea.Cmd, bool)
	View(palette Palette, width, height int) string
}

// pageLabelMsg carries the label entered in the add-page dialog.
type pageLabelMsg string

// pageNameModal asks for the label of a new page.
type pageNameModal struct {
	input textinput.Model
}

func newPageNameModal() pageNameModal {
	ti := textinput.New()
	ti.Placeholder = "Page name..."
	ti.CharLimit = 60
	ti.Focus()
	return pageNameModal{input: ti}
}

func (d pageNameModal) Update(msg tea.Msg, keys keyMap) (Modal, tea.Cmd, bool) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(msg, keys.Escape):
			return d, nil, true
		case key.Matches(msg, keys.Confirm):
			label := strings.TrimSpace(d.input.Value())
			if label == "" {
				return d, nil, false
			}
			return d, func() tea.Msg { return pageLabelMsg(label) }, true
		}
	}

	var cmd tea.Cmd
	d.input, cmd = d.input.Update(msg)
	return d, cmd, false
}

func (d pageNameModal) View(palette Palette, width, height int) string {
	styles := palette.Styles()

	var b strings.Builder
	b.WriteString(styles.Text.Bold(true).Render("New page"))
	b.WriteString("\n\n")
	b.WriteString(d.input.View())
	b.WriteString("\n\n")
	b.WriteString(styles.FaintText.Render("enter create · esc cancel"))

	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(palette.Accent)).
		Padding(1, 2).
		Width(48)

	return lipgloss.Place(
		width,
		height,
		lipgloss.Center,
		lipgloss.Center,
		box.Render(b.String()),
		lipgloss.WithWhitespaceChars(" "),
		lipgloss.WithWhitespaceForeground(lipgloss.Color(palette.Background)),
	)
}

// logModal shows the tail of the session log.
type logModal struct {
	lines []string
	err   error
}

func newLogModal(lines []string, err error) logModal {
	return logModal{lines: lines, err: err}
}

func (d logModal) Update(msg tea.Msg, keys keyMap) (Modal, tea.Cmd, bool) {
	if _, ok := msg.(tea.KeyMsg); ok {
		// Any key closes the log
		return d, nil, true
	}
	return d, nil, false
}

func (d logModal) View(palette Palette, width, height int) string {
	styles := palette.Styles()
	inner := width - 10
	rows := height - 8
	if rows < 1 {
		rows = 1
	}

	var b strings.Builder
	counts := logtail.Count(d.lines)
	b.WriteString(styles.Text.Bold(true).Render("Session log"))
	b.WriteString("  ")
	b.WriteString(styles.FaintText.Render(fmt.Sprintf("%d lines · %d failures", len(d.lines), counts[logtail.LevelError])))
	b.WriteString("\n\n")

	switch {
	case d.err != nil:
		b.WriteString(styles.DangerText.Render(d.err.Error()))
	case len(d.lines) == 0:
		b.WriteString(styles.FaintText.Render("Nothing logged yet"))
	default:
		lines := d.lines
		if len(lines) > rows {
			lines = lines[len(lines)-rows:]
		}
		for i, line := range lines {
			style := styles.MutedText
			switch logtail.Classify(line) {
			case logtail.LevelError:
				style = styles.DangerText
			case logtail.LevelWarn:
				style = styles.WarningText
			}
			b.WriteString(style.Render(truncate(line, inner)))
			if i < len(lines)-1 {
				b.WriteString("\n")
			}
		}
	}

	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(palette.Accent)).
		Padding(1, 2).
		Width(width - 4)

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, box.Render(b.String()))
}
