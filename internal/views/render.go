package views

import (
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
)

type AppData struct {
	Header     string
	InputLine  string
	ListPane   string
	SidePane   string
	Summary    string
	StatusLine string
	IsError    bool
	Footer     string
	Dialog     string
}

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	errorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	panelStyle  = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
	dialogStyle = lipgloss.NewStyle().Border(lipgloss.DoubleBorder()).BorderForeground(lipgloss.Color("9")).Padding(0, 2)
	footerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
)

const paneWidth = 58

func RenderApp(data AppData) string {
	body := panelStyle.Width(paneWidth).Render(strings.TrimSpace(data.InputLine + "\n\n" + data.ListPane))
	if data.SidePane != "" {
		body = lipgloss.JoinHorizontal(lipgloss.Top, body, panelStyle.Width(paneWidth).Render(data.SidePane))
	}

	lines := []string{headerStyle.Render(data.Header), body}
	if data.Dialog != "" {
		lines = append(lines, dialogStyle.Render(data.Dialog))
	}
	if data.Summary != "" {
		lines = append(lines, data.Summary)
	}
	if data.StatusLine != "" {
		style := statusStyle
		if data.IsError {
			style = errorStyle
		}
		lines = append(lines, style.Render(data.StatusLine))
	}
	if data.Footer != "" {
		lines = append(lines, footerStyle.Render(data.Footer))
	}
	return strings.Join(lines, "\n")
}

func RenderMarkdown(md string) string {
	if strings.TrimSpace(md) == "" {
		return ""
	}
	out, err := glamour.Render(md, "dark")
	if err != nil {
		return md
	}
	return strings.TrimSpace(out)
}
