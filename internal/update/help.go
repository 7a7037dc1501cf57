package update

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/sandeepkv93/tasklist/internal/views"
)

type KeyBinding struct {
	Key    string
	Action string
}

type helpKeyMap struct {
	short []key.Binding
	full  [][]key.Binding
}

func (k helpKeyMap) ShortHelp() []key.Binding  { return k.short }
func (k helpKeyMap) FullHelp() [][]key.Binding { return k.full }

func (m Model) renderHelpIfVisible() string {
	if !m.HelpVisible {
		return ""
	}
	return m.renderHelpView()
}

func (m Model) renderHelpView() string {
	bindings := m.helpBindings()
	var md strings.Builder
	md.WriteString("## Keys\n\n")
	for _, kb := range append(m.inputBindings(), m.listBindings()...) {
		md.WriteString(fmt.Sprintf("- `%s` %s\n", kb.Key, kb.Action))
	}
	md.WriteString("\n## Commands\n\n`add <text>`, `toggle <id>`, `delete <id>`, `clear`\n")
	return views.RenderHelpPanel(views.HelpPanelData{
		Markdown: md.String(),
		HelpView: m.helpModel.View(helpKeyMap{
			short: bindings,
			full:  [][]key.Binding{bindings},
		}),
	})
}

func (m Model) inputBindings() []KeyBinding {
	return []KeyBinding{
		{Key: "enter", Action: "add task"},
		{Key: m.Keys.SwitchFocus, Action: "switch to list"},
		{Key: "ctrl+x", Action: "clear all tasks"},
	}
}

func (m Model) listBindings() []KeyBinding {
	return []KeyBinding{
		{Key: "j/k", Action: "move cursor"},
		{Key: "space", Action: "toggle completed"},
		{Key: m.Keys.Delete, Action: "delete task"},
		{Key: m.Keys.ClearAll, Action: "clear all tasks"},
		{Key: m.Keys.Palette, Action: "open command palette"},
		{Key: m.Keys.Help, Action: "toggle help panel"},
		{Key: m.Keys.Quit, Action: "quit"},
	}
}

func (m Model) helpBindings() []key.Binding {
	source := m.inputBindings()
	if m.Focus == FocusList {
		source = m.listBindings()
	}
	out := make([]key.Binding, 0, len(source))
	for _, kb := range source {
		out = append(out, key.NewBinding(key.WithKeys(kb.Key), key.WithHelp(kb.Key, kb.Action)))
	}
	return out
}
