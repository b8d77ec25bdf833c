package ui

import "github.com/charmbracelet/bubbles/key"

// keyMap defines all keyboard bindings for the editor.
type keyMap struct {
	// Global
	Quit         key.Binding
	Help         key.Binding
	CyclePalette key.Binding
	Tab          key.Binding
	Escape       key.Binding
	Confirm      key.Binding

	// Navigation
	Up       key.Binding
	Down     key.Binding
	PrevPage key.Binding
	NextPage key.Binding
	PageUp   key.Binding
	PageDown key.Binding

	// Sections
	Toggle      key.Binding
	MoveUp      key.Binding
	MoveDown    key.Binding
	ResetOrder  key.Binding
	ToggleMulti key.Binding

	// Pages
	AddPage    key.Binding
	DeletePage key.Binding

	// Document
	CyclePreset key.Binding
	Undo        key.Binding
	Redo        key.Binding
	Save        key.Binding
	Publish     key.Binding
	Preview     key.Binding
	ShowLog     key.Binding
}

// DefaultKeyMap returns the default key bindings.
func DefaultKeyMap() keyMap {
	return keyMap{
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c", "q"),
			key.WithHelp("q", "Quit"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "Toggle help"),
		),
		CyclePalette: key.NewBinding(
			key.WithKeys("T"),
			key.WithHelp("T", "Cycle palette"),
		),
		Tab: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "Focus pages/sections"),
		),
		Escape: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "Cancel"),
		),
		Confirm: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "Confirm"),
		),

		Up: key.NewBinding(
			key.WithKeys("k", "up"),
			key.WithHelp("k/up", "Move up"),
		),
		Down: key.NewBinding(
			key.WithKeys("j", "down"),
			key.WithHelp("j/down", "Move down"),
		),
		PrevPage: key.NewBinding(
			key.WithKeys("["),
			key.WithHelp("[", "Previous page"),
		),
		NextPage: key.NewBinding(
			key.WithKeys("]"),
			key.WithHelp("]", "Next page"),
		),
		PageUp: key.NewBinding(
			key.WithKeys("pgup", "ctrl+u"),
			key.WithHelp("pgup", "Scroll preview up"),
		),
		PageDown: key.NewBinding(
			key.WithKeys("pgdown", "ctrl+d"),
			key.WithHelp("pgdown", "Scroll preview down"),
		),

		Toggle: key.NewBinding(
			key.WithKeys(" "),
			key.WithHelp("Space", "Toggle section"),
		),
		MoveUp: key.NewBinding(
			key.WithKeys("K"),
			key.WithHelp("K", "Move section up"),
		),
		MoveDown: key.NewBinding(
			key.WithKeys("J"),
			key.WithHelp("J", "Move section down"),
		),
		ResetOrder: key.NewBinding(
			key.WithKeys("R"),
			key.WithHelp("R", "Reset section order"),
		),
		ToggleMulti: key.NewBinding(
			key.WithKeys("m"),
			key.WithHelp("m", "Toggle multi-page"),
		),

		AddPage: key.NewBinding(
			key.WithKeys("a"),
			key.WithHelp("a", "Add page"),
		),
		DeletePage: key.NewBinding(
			key.WithKeys("d"),
			key.WithHelp("d", "Delete page"),
		),

		CyclePreset: key.NewBinding(
			key.WithKeys("t"),
			key.WithHelp("t", "Cycle color preset"),
		),
		Undo: key.NewBinding(
			key.WithKeys("u"),
			key.WithHelp("u", "Undo"),
		),
		Redo: key.NewBinding(
			key.WithKeys("U", "ctrl+r"),
			key.WithHelp("U/ctrl+r", "Redo"),
		),
		Save: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "Save"),
		),
		Publish: key.NewBinding(
			key.WithKeys("P"),
			key.WithHelp("P", "Publish"),
		),
		Preview: key.NewBinding(
			key.WithKeys("v"),
			key.WithHelp("v", "Toggle preview"),
		),
		ShowLog: key.NewBinding(
			key.WithKeys("L"),
			key.WithHelp("L", "Session log"),
		),
	}
}

// ShortHelp returns key bindings for the short help view.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Help, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		// Navigation
		{k.Tab, k.Up, k.Down, k.PrevPage, k.NextPage},
		// Sections
		{k.Toggle, k.MoveUp, k.MoveDown, k.ResetOrder, k.ToggleMulti},
		// Pages
		{k.AddPage, k.DeletePage},
		// Document
		{k.CyclePreset, k.Undo, k.Redo, k.Save, k.Publish},
		// General
		{k.Preview, k.PageUp, k.PageDown, k.ShowLog, k.CyclePalette, k.Help, k.Quit},
	}
}
