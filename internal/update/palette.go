package update

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/sandeepkv93/tasklist/internal/commands"
)

func (m Model) handlePaletteKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.closePalette()
		m.Status = StatusBar{Text: "command palette closed"}
	case "enter":
		m.Palette.Input = m.commandInput.Value()
		return m.executePaletteCommand()
	default:
		if msg.Type == tea.KeyRunes {
			m.commandInput.SetValue(m.commandInput.Value() + string(msg.Runes))
			m.Palette.Input = m.commandInput.Value()
			return m, nil
		}
		var cmd tea.Cmd
		m.commandInput, cmd = m.commandInput.Update(msg)
		m.Palette.Input = m.commandInput.Value()
		return m, cmd
	}
	return m, nil
}

func (m Model) executePaletteCommand() (Model, tea.Cmd) {
	raw := strings.TrimSpace(m.Palette.Input)
	m.closePalette()

	cmd, err := commands.Parse(raw)
	if err != nil {
		m.Status = StatusBar{Text: err.Error(), IsError: true}
		return m, nil
	}

	// Store failures are fatal and must not be shown as a command error.
	var fatal error
	res, err := commands.Execute(cmd, commands.Handlers{
		Add: func(a commands.AddArgs) (commands.Result, error) {
			task, _, err := m.Store.Add(m.ctx, a.Text)
			if err != nil {
				fatal = err
				return commands.Result{}, nil
			}
			return commands.Result{Message: fmt.Sprintf("added task %d", task.ID)}, nil
		},
		Toggle: func(a commands.TargetArgs) (commands.Result, error) {
			found, err := m.Store.Toggle(m.ctx, a.ID)
			if err != nil {
				fatal = err
				return commands.Result{}, nil
			}
			if !found {
				return commands.Result{Message: fmt.Sprintf("no task %d", a.ID)}, nil
			}
			t, _ := m.Store.Get(a.ID)
			return commands.Result{Message: fmt.Sprintf("%s: %d", toggleStatus(t.State()), a.ID)}, nil
		},
		Delete: func(a commands.TargetArgs) (commands.Result, error) {
			found, err := m.Store.Delete(m.ctx, a.ID)
			if err != nil {
				fatal = err
				return commands.Result{}, nil
			}
			if !found {
				return commands.Result{Message: fmt.Sprintf("no task %d", a.ID)}, nil
			}
			m.clampCursor()
			return commands.Result{Message: fmt.Sprintf("deleted task %d", a.ID)}, nil
		},
		Clear: func() (commands.Result, error) {
			m = m.requestClearAll()
			if !m.Confirm.Active {
				return commands.Result{Message: "nothing to clear"}, nil
			}
			return commands.Result{Message: "confirm clear all"}, nil
		},
	})
	if fatal != nil {
		return m.fail(fatal)
	}
	if err != nil {
		m.Status = StatusBar{Text: err.Error(), IsError: true}
		return m, nil
	}
	m.Status = StatusBar{Text: res.Message}
	return m, nil
}

func (m *Model) closePalette() {
	m.Palette = CommandPaletteState{}
	m.commandInput.SetValue("")
	m.commandInput.Blur()
}
