package update

import (
	tea "github.com/charmbracelet/bubbletea"
)

func (m Model) handleInputKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		value := m.input.Value()
		m.input.SetValue("")
		return m.addTask(value)
	case "esc", "down", m.Keys.SwitchFocus:
		m.focusList()
		return m, nil
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m Model) handleListKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch msg.String() {
	case m.Keys.SwitchFocus, "i", "a":
		m.focusInput()
	case "up", "k":
		if m.Cursor > 0 {
			m.Cursor--
		} else {
			m.focusInput()
		}
	case "down", "j":
		if m.Cursor < m.Store.Len()-1 {
			m.Cursor++
		}
	case "home", "g":
		m.Cursor = 0
	case "end", "G":
		m.Cursor = max(m.Store.Len()-1, 0)
	case m.Keys.Toggle, "x", "enter":
		if row, ok := m.rowAtCursor(); ok {
			return m, row.toggle
		}
	case m.Keys.Delete, "delete", "backspace":
		if row, ok := m.rowAtCursor(); ok {
			return m, row.remove
		}
	case m.Keys.ClearAll:
		return m.requestClearAll(), nil
	case m.Keys.Palette:
		m.Palette.Active = true
		m.Palette.Input = ""
		m.commandInput.SetValue("")
		m.commandInput.Focus()
		m.Status = StatusBar{Text: "command palette active"}
	case m.Keys.Help:
		m.HelpVisible = !m.HelpVisible
		if m.HelpVisible {
			m.Status = StatusBar{Text: "help shown"}
		} else {
			m.Status = StatusBar{Text: "help hidden"}
		}
	case m.Keys.Quit, "esc":
		m.Quitting = true
		return m, tea.Quit
	}
	return m, nil
}

func (m Model) handleConfirmKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch msg.String() {
	case "y", "Y", "enter":
		return m.resolveClearAll(true)
	case "n", "N", "esc":
		return m.resolveClearAll(false)
	}
	return m, nil
}

func (m *Model) focusList() {
	m.Focus = FocusList
	m.input.Blur()
	m.clampCursor()
}

func (m *Model) focusInput() {
	m.Focus = FocusInput
	m.input.Focus()
}
