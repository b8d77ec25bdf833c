package ui

import (
	"fmt"
	"slices"
	"sort"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/five82/composer/internal/catalog"
	"github.com/five82/composer/internal/site"
	"github.com/five82/composer/internal/theme"
)

// sectionRow is one line of the sections pane.
type sectionRow struct {
	ID       site.SectionID
	Label    string
	Enabled  bool
	Required bool
}

// pageKeys lists page keys with home first and the rest sorted.
func pageKeys(doc site.Document) []string {
	keys := make([]string, 0, len(doc.Pages))
	for k := range doc.Pages {
		if k != site.HomePage {
			keys = append(keys, k)
		}
	}
	sort.Strings(keys)
	if doc.HasPage(site.HomePage) {
		keys = append([]string{site.HomePage}, keys...)
	}
	return keys
}

// editPage is the page section edits apply to in multi-page mode.
func editPage(doc site.Document) string {
	if doc.HasPage(doc.ActivePage) {
		return doc.ActivePage
	}
	return site.HomePage
}

// sectionRows lists the sections pane. In single-page mode it follows the
// section order with home membership as the enabled flag. In multi-page mode
// the active page's sections come first, then every catalog section that is
// not on it.
func sectionRows(doc site.Document, cat catalog.Catalog) []sectionRow {
	row := func(id site.SectionID, enabled bool) sectionRow {
		return sectionRow{ID: id, Label: cat.Label(id), Enabled: enabled, Required: cat.IsRequired(id)}
	}

	if !doc.MultiPageLayout {
		home := doc.HomeSections()
		rows := make([]sectionRow, 0, len(doc.SinglePageSectionOrder))
		for _, id := range doc.SinglePageSectionOrder {
			rows = append(rows, row(id, slices.Contains(home, id)))
		}
		return rows
	}

	onPage := doc.Pages[editPage(doc)]
	rows := make([]sectionRow, 0, len(cat.Order()))
	for _, id := range onPage {
		rows = append(rows, row(id, true))
	}
	for _, id := range cat.Order() {
		if !slices.Contains(onPage, id) {
			rows = append(rows, row(id, false))
		}
	}
	return rows
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.modal != nil {
		return m.updateModal(msg)
	}
	m.refresh()

	if m.showHelp {
		// Any key closes help
		m.showHelp = false
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.showHelp = true
		return m, nil

	case key.Matches(msg, m.keys.CyclePalette):
		m.palette = GetPalette(NextPalette(m.palette.Name))
		m.savePrefs()
		return m, nil

	case key.Matches(msg, m.keys.Preview):
		m.preview = !m.preview
		m.savePrefs()
		m.updatePreviewViewport()
		return m, nil

	case key.Matches(msg, m.keys.Tab):
		if m.focus == focusPages {
			m.focus = focusSections
		} else {
			m.focus = focusPages
		}
		return m, nil

	case key.Matches(msg, m.keys.Up):
		m.moveCursor(-1)
		return m, nil

	case key.Matches(msg, m.keys.Down):
		m.moveCursor(1)
		return m, nil

	case key.Matches(msg, m.keys.ShowLog):
		if m.logPath == "" {
			m.status = "no session log"
			return m, nil
		}
		return m, loadLogCmd(m.logPath)

	case key.Matches(msg, m.keys.PageUp):
		m.previewViewport.HalfPageUp()
		return m, nil

	case key.Matches(msg, m.keys.PageDown):
		m.previewViewport.HalfPageDown()
		return m, nil
	}

	if m.store.ReadOnly() && isEdit(msg, m.keys) {
		m.status = "read-only: this is the live copy"
		return m, nil
	}

	var cmd tea.Cmd
	switch {
	case key.Matches(msg, m.keys.PrevPage):
		m.switchPage(-1)
	case key.Matches(msg, m.keys.NextPage):
		m.switchPage(1)
	case key.Matches(msg, m.keys.Confirm):
		if m.focus == focusPages {
			m.selectPageAtCursor()
		}
	case key.Matches(msg, m.keys.Toggle):
		m.toggleSection()
	case key.Matches(msg, m.keys.MoveUp):
		m.moveSection(-1)
	case key.Matches(msg, m.keys.MoveDown):
		m.moveSection(1)
	case key.Matches(msg, m.keys.ResetOrder):
		if m.composer.ResetOrder() {
			m.status = "section order reset"
		}
	case key.Matches(msg, m.keys.ToggleMulti):
		m.store.UpdateMultiPageLayout(func(prev bool) bool { return !prev })
		m.sectionCursor = 0
	case key.Matches(msg, m.keys.AddPage):
		m.modal = newPageNameModal()
		cmd = textinput.Blink
	case key.Matches(msg, m.keys.DeletePage):
		m.deletePage()
	case key.Matches(msg, m.keys.CyclePreset):
		next := theme.Next(m.snapshot.Document.ThemeName)
		if m.store.ApplyTheme(next) {
			m.status = "applied " + next + " preset"
		}
	case key.Matches(msg, m.keys.Undo):
		if !m.store.CanUndo() {
			m.status = "nothing to undo"
			break
		}
		m.store.Undo()
		m.status = "undone"
	case key.Matches(msg, m.keys.Redo):
		if !m.store.CanRedo() {
			m.status = "nothing to redo"
			break
		}
		m.store.Redo()
		m.status = "redone"
	case key.Matches(msg, m.keys.Save):
		m.store.Save()
		m.status = "saved"
	case key.Matches(msg, m.keys.Publish):
		m.store.Publish()
		m.status = "published"
	default:
		return m, nil
	}

	m.refresh()
	return m, cmd
}

// isEdit reports whether msg would change the document.
func isEdit(msg tea.KeyMsg, k keyMap) bool {
	return key.Matches(msg,
		k.PrevPage, k.NextPage, k.Confirm,
		k.Toggle, k.MoveUp, k.MoveDown, k.ResetOrder, k.ToggleMulti,
		k.AddPage, k.DeletePage,
		k.CyclePreset, k.Undo, k.Redo, k.Save, k.Publish,
	)
}

func (m Model) updateModal(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd, closed := m.modal.Update(msg, m.keys)
	if closed {
		m.modal = nil
	} else {
		m.modal = next
	}
	return m, cmd
}

func (m *Model) moveCursor(delta int) {
	doc := m.snapshot.Document
	if m.focus == focusPages {
		m.pageCursor = clamp(m.pageCursor+delta, len(pageKeys(doc)))
		return
	}
	m.sectionCursor = clamp(m.sectionCursor+delta, len(sectionRows(doc, m.catalog)))
}

func (m *Model) currentRow() (sectionRow, bool) {
	rows := sectionRows(m.snapshot.Document, m.catalog)
	if m.sectionCursor < 0 || m.sectionCursor >= len(rows) {
		return sectionRow{}, false
	}
	return rows[m.sectionCursor], true
}

// followSection moves the section cursor to id after the list changed.
func (m *Model) followSection(id site.SectionID) {
	rows := sectionRows(m.store.Document(), m.catalog)
	for i, r := range rows {
		if r.ID == id {
			m.sectionCursor = i
			return
		}
	}
}

func (m *Model) toggleSection() {
	row, ok := m.currentRow()
	if !ok {
		return
	}
	if row.Required && row.Enabled {
		m.status = row.Label + " is required"
		return
	}

	doc := m.snapshot.Document
	if !doc.MultiPageLayout {
		m.composer.ToggleSection(row.ID)
		return
	}

	page := editPage(doc)
	if row.Enabled {
		m.composer.RemoveSection(page, row.ID)
	} else {
		m.composer.AddSection(page, row.ID)
	}
	m.followSection(row.ID)
}

func (m *Model) moveSection(delta int) {
	row, ok := m.currentRow()
	if !ok {
		return
	}
	to := m.sectionCursor + delta
	if to < 0 {
		return
	}

	doc := m.snapshot.Document
	if !doc.MultiPageLayout {
		if m.composer.MoveInOrder(row.ID, to) {
			m.followSection(row.ID)
		}
		return
	}

	if !row.Enabled {
		m.status = "add " + row.Label + " to the page before moving it"
		return
	}
	page := editPage(doc)
	if to >= len(doc.Pages[page]) {
		return
	}
	if m.composer.MoveSection(page, row.ID, to) {
		m.followSection(row.ID)
	}
}

// switchPage activates the page delta steps from the active one, wrapping.
func (m *Model) switchPage(delta int) {
	doc := m.snapshot.Document
	keys := pageKeys(doc)
	if len(keys) < 2 {
		return
	}
	i := slices.Index(keys, doc.ActivePage)
	if i < 0 {
		i = 0
	}
	i = (i + delta + len(keys)) % len(keys)
	if m.composer.SelectPage(keys[i]) {
		m.pageCursor = i
		m.sectionCursor = 0
	}
}

func (m *Model) selectPageAtCursor() {
	keys := pageKeys(m.snapshot.Document)
	if m.pageCursor >= len(keys) {
		return
	}
	if m.composer.SelectPage(keys[m.pageCursor]) {
		m.sectionCursor = 0
	}
}

func (m *Model) createPage(label string) {
	if m.store.ReadOnly() {
		return
	}
	id := m.composer.CreatePage(label, m.catalog.Required()...)
	m.status = fmt.Sprintf("added page %q", id)
	if i := slices.Index(pageKeys(m.store.Document()), id); i >= 0 {
		m.pageCursor = i
	}
	m.sectionCursor = 0
}

func (m *Model) deletePage() {
	doc := m.snapshot.Document
	page := doc.ActivePage
	if m.focus == focusPages {
		if keys := pageKeys(doc); m.pageCursor < len(keys) {
			page = keys[m.pageCursor]
		}
	}
	if !m.composer.RemovePage(page) {
		m.status = "the home page cannot be deleted"
		return
	}
	m.status = fmt.Sprintf("deleted page %q", page)
}
