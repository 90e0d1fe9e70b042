package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// UIColors 定义统一的颜色主题
type UIColors struct {
	Gray  lipgloss.Color
	Blue  lipgloss.Color
	Cyan  lipgloss.Color
	Green lipgloss.Color
	Red   lipgloss.Color
	White lipgloss.Color
}

// DefaultColors 返回默认的颜色主题
func DefaultColors() UIColors {
	return UIColors{
		Gray:  lipgloss.Color("245"),
		Blue:  lipgloss.Color("39"),
		Cyan:  lipgloss.Color("51"),
		Green: lipgloss.Color("42"),
		Red:   lipgloss.Color("196"),
		White: lipgloss.Color("255"),
	}
}

// UIStyles 定义统一的样式
type UIStyles struct {
	Colors   UIColors
	Question lipgloss.Style
	Answer   lipgloss.Style
	Cursor   lipgloss.Style
	Current  lipgloss.Style
	Key      lipgloss.Style
	URL      lipgloss.Style
	Hint     lipgloss.Style
	Success  lipgloss.Style
	Error    lipgloss.Style
}

// DefaultStyles 返回默认的样式集
func DefaultStyles() UIStyles {
	colors := DefaultColors()
	return UIStyles{
		Colors:   colors,
		Question: lipgloss.NewStyle().Foreground(colors.White).Bold(true),
		Answer:   lipgloss.NewStyle().Foreground(colors.Cyan),
		Cursor:   lipgloss.NewStyle().Foreground(colors.Cyan).Bold(true),
		Current:  lipgloss.NewStyle().Foreground(colors.Green),
		Key:      lipgloss.NewStyle().Foreground(colors.Green).Bold(true),
		URL:      lipgloss.NewStyle().Foreground(colors.Blue),
		Hint:     lipgloss.NewStyle().Foreground(colors.Gray),
		Success:  lipgloss.NewStyle().Foreground(colors.Green),
		Error:    lipgloss.NewStyle().Foreground(colors.Red),
	}
}

// maxURLWidth is the widest URL shown in the command picker.
const maxURLWidth = 60

// truncateURL shortens long URLs to 57 runes plus "...".
func truncateURL(u string) string {
	runes := []rune(u)
	if len(runes) <= maxURLWidth {
		return u
	}
	return string(runes[:maxURLWidth-3]) + "..."
}

// questionLine renders "? Select a project:" style prompts.
func questionLine(styles UIStyles, question string) string {
	var sb strings.Builder
	sb.WriteString(styles.Success.Render("?"))
	sb.WriteString(" ")
	sb.WriteString(styles.Question.Render(question))
	return sb.String()
}
