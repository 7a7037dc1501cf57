package update

import (
	"fmt"
	"log"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/sandeepkv93/tasklist/internal/model"
	"github.com/sandeepkv93/tasklist/internal/tasks"
)

func (m Model) addTask(text string) (Model, tea.Cmd) {
	task, ok, err := m.Store.Add(m.ctx, text)
	if err != nil {
		return m.fail(err)
	}
	if ok {
		m.Status = StatusBar{Text: fmt.Sprintf("added task %d", task.ID)}
	}
	return m, nil
}

func (m Model) toggleTask(id int64) (Model, tea.Cmd) {
	found, err := m.Store.Toggle(m.ctx, id)
	if err != nil {
		return m.fail(err)
	}
	if t, ok := m.Store.Get(id); found && ok {
		m.Status = StatusBar{Text: toggleStatus(t.State())}
	}
	return m, nil
}

func toggleStatus(state model.TaskState) string {
	if state == model.TaskStateCompleted {
		return "task completed"
	}
	return "task reopened"
}

func (m Model) deleteTask(id int64) (Model, tea.Cmd) {
	found, err := m.Store.Delete(m.ctx, id)
	if err != nil {
		return m.fail(err)
	}
	if found {
		m.clampCursor()
		m.Status = StatusBar{Text: "task deleted"}
	}
	return m, nil
}

// requestClearAll opens the confirm dialog. Nothing is asked when there is
// nothing to clear.
func (m Model) requestClearAll() Model {
	if m.Store.Len() == 0 {
		return m
	}
	m.Confirm = ConfirmState{Active: true, Prompt: tasks.ClearPrompt}
	m.Palette = CommandPaletteState{}
	m.commandInput.Blur()
	return m
}

func (m Model) resolveClearAll(confirmed bool) (Model, tea.Cmd) {
	if !m.Confirm.Active {
		return m, nil
	}
	m.Confirm = ConfirmState{}
	if !confirmed {
		m.Status = StatusBar{Text: "clear cancelled"}
		return m, nil
	}
	cleared, err := m.Store.ClearAll(m.ctx, tasks.Confirmed)
	if err != nil {
		return m.fail(err)
	}
	if cleared {
		log.Printf("cleared all tasks")
		m.Cursor = 0
		m.Status = StatusBar{Text: "all tasks cleared"}
	}
	return m, nil
}

// fail records a store error. Writes that fail leave memory and disk out
// of sync, so the program stops instead of carrying on.
func (m Model) fail(err error) (Model, tea.Cmd) {
	log.Printf("store error: %v", err)
	m.Err = err
	m.Status = StatusBar{Text: err.Error(), IsError: true}
	m.Quitting = true
	return m, tea.Quit
}
