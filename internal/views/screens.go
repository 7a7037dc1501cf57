package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// EmptyStateMessage is shown in place of the list when there are no tasks.
const EmptyStateMessage = "No tasks yet. Add one above!"

type TaskRowData struct {
	ID        int64
	Text      string
	Completed bool
	Selected  bool
}

type TaskListData struct {
	Rows      []TaskRowData
	Focused   bool
	TextWidth int
}

type HelpPanelData struct {
	Markdown string
	HelpView string
}

var (
	cursorStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("12")).Bold(true)
	completedStyle = lipgloss.NewStyle().Strikethrough(true).Foreground(lipgloss.Color("8"))
	deleteStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	emptyStyle     = lipgloss.NewStyle().Italic(true).Foreground(lipgloss.Color("8"))
)

// RenderTaskList draws every row from scratch, in the order given.
func RenderTaskList(data TaskListData) string {
	if len(data.Rows) == 0 {
		return emptyStyle.Render(EmptyStateMessage)
	}
	width := data.TextWidth
	if width <= 0 {
		width = 40
	}
	var b strings.Builder
	for _, row := range data.Rows {
		cursor := " "
		if row.Selected && data.Focused {
			cursor = cursorStyle.Render(">")
		}
		text := ansi.Truncate(row.Text, width, "…")
		if row.Completed {
			text = completedStyle.Render(text)
		}
		b.WriteString(fmt.Sprintf("%s %s %s %s\n", cursor, Checkbox(row.Completed), text, deleteStyle.Render("[del]")))
	}
	return strings.TrimSuffix(b.String(), "\n")
}

func Checkbox(checked bool) string {
	if checked {
		return "[x]"
	}
	return "[ ]"
}

func TotalLabel(total int) string {
	return fmt.Sprintf("Total %d tasks", total)
}

func CompletedLabel(completed int) string {
	return fmt.Sprintf("Completed: %d", completed)
}

func RenderSummary(total, completed int) string {
	return TotalLabel(total) + " | " + CompletedLabel(completed)
}

func RenderConfirm(prompt string) string {
	return fmt.Sprintf("%s\n[y] yes  [n] no", prompt)
}

func RenderCommandPalette(active bool, input string) string {
	if !active {
		return ""
	}
	return fmt.Sprintf("command: /%s", input)
}

func RenderHelpPanel(data HelpPanelData) string {
	return fmt.Sprintf("help:\n%s\n\n%s", RenderMarkdown(data.Markdown), data.HelpView)
}
