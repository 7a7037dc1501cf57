package update

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/sandeepkv93/tasklist/internal/views"
)

func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch typed := msg.(type) {
	case tea.KeyMsg:
		if typed.String() == "ctrl+c" {
			m.Quitting = true
			return m, tea.Quit
		}
		if m.Confirm.Active {
			return m.handleConfirmKey(typed)
		}
		if m.Palette.Active {
			return m.handlePaletteKey(typed)
		}
		if typed.String() == "ctrl+x" {
			return m.requestClearAll(), nil
		}
		if m.Focus == FocusInput {
			return m.handleInputKey(typed)
		}
		return m.handleListKey(typed)
	case tea.WindowSizeMsg:
		// Leave room for cursor, checkbox, delete control and borders.
		m.textWidth = max(min(typed.Width-24, 80), 10)
		return m, nil
	case AddTaskMsg:
		return m.addTask(typed.Text)
	case ToggleTaskMsg:
		return m.toggleTask(typed.ID)
	case DeleteTaskMsg:
		return m.deleteTask(typed.ID)
	case ClearAllMsg:
		return m.requestClearAll(), nil
	case ConfirmClearMsg:
		return m.resolveClearAll(typed.Confirmed)
	case SetStatusMsg:
		m.Status = StatusBar{Text: typed.Text, IsError: typed.IsError}
		return m, nil
	case ClearStatusMsg:
		m.Status = StatusBar{}
		return m, nil
	case AppErrorMsg:
		if typed.Err != nil {
			return m.fail(typed.Err)
		}
		return m, nil
	}

	if m.Focus == FocusInput && !m.Palette.Active {
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m Model) View() string {
	if m.Quitting {
		return ""
	}
	status := ""
	if m.Status.Text != "" {
		if m.Status.IsError {
			status = fmt.Sprintf("status: error: %s", m.Status.Text)
		} else {
			status = fmt.Sprintf("status: %s", m.Status.Text)
		}
	}
	side := strings.TrimSpace(views.RenderCommandPalette(m.Palette.Active, m.commandInput.Value()) + "\n" + m.renderHelpIfVisible())
	dialog := ""
	if m.Confirm.Active {
		dialog = views.RenderConfirm(m.Confirm.Prompt)
	}
	summary := views.RenderSummary(0, 0)
	if m.Store != nil {
		counts := m.Store.Counts()
		summary = views.RenderSummary(counts.Total, counts.Completed)
	}

	return views.RenderApp(views.AppData{
		Header:     fmt.Sprintf("tasklist | focus: %s", m.Focus),
		InputLine:  m.input.View(),
		ListPane:   views.RenderTaskList(m.listData()),
		SidePane:   side,
		Summary:    summary,
		StatusLine: status,
		IsError:    m.Status.IsError,
		Dialog:     dialog,
		Footer:     m.footer(),
	})
}

func (m Model) footer() string {
	if m.Confirm.Active {
		return "keys: y confirm | n cancel"
	}
	if m.Focus == FocusInput {
		return "keys: enter add | tab list | ctrl+x clear all | ctrl+c quit"
	}
	return fmt.Sprintf("keys: space toggle | %s delete | %s clear all | %s cmd | %s help | %s quit",
		m.Keys.Delete, m.Keys.ClearAll, m.Keys.Palette, m.Keys.Help, m.Keys.Quit)
}
