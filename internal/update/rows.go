package update

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/sandeepkv93/tasklist/internal/model"
	"github.com/sandeepkv93/tasklist/internal/views"
)

// taskRow is one rendered list entry with its controls bound to the
// task's id at build time.
type taskRow struct {
	task   model.Task
	toggle tea.Cmd
	remove tea.Cmd
}

func toggleCmd(id int64) tea.Cmd {
	return func() tea.Msg { return ToggleTaskMsg{ID: id} }
}

func deleteCmd(id int64) tea.Cmd {
	return func() tea.Msg { return DeleteTaskMsg{ID: id} }
}

func (m Model) rows() []taskRow {
	if m.Store == nil {
		return nil
	}
	list := m.Store.Tasks()
	out := make([]taskRow, 0, len(list))
	for _, t := range list {
		out = append(out, taskRow{task: t, toggle: toggleCmd(t.ID), remove: deleteCmd(t.ID)})
	}
	return out
}

func (m Model) rowAtCursor() (taskRow, bool) {
	rows := m.rows()
	if m.Cursor < 0 || m.Cursor >= len(rows) {
		return taskRow{}, false
	}
	return rows[m.Cursor], true
}

func (m Model) listData() views.TaskListData {
	rows := m.rows()
	data := views.TaskListData{
		Rows:      make([]views.TaskRowData, 0, len(rows)),
		Focused:   m.Focus == FocusList,
		TextWidth: m.textWidth,
	}
	for i, r := range rows {
		data.Rows = append(data.Rows, views.TaskRowData{
			ID:        r.task.ID,
			Text:      r.task.Text,
			Completed: r.task.Completed,
			Selected:  i == m.Cursor,
		})
	}
	return data
}

func (m *Model) clampCursor() {
	n := 0
	if m.Store != nil {
		n = m.Store.Len()
	}
	if m.Cursor >= n {
		m.Cursor = n - 1
	}
	if m.Cursor < 0 {
		m.Cursor = 0
	}
}
