package ui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

// PickerItem 列表中的一个选项
type PickerItem struct {
	Label string // 渲染文本（可含样式）
	Value string // 选择结果
	Short string // 选择完成后回显的文本
}

// PickerModel 单选列表，光标不循环。
type PickerModel struct {
	question  string
	items     []PickerItem
	cursor    int
	styles    UIStyles
	done      bool
	cancelled bool
}

// NewPickerModel 创建列表选择模型，光标初始位于 defaultValue 对应项。
func NewPickerModel(question string, items []PickerItem, defaultValue string) *PickerModel {
	cursor := 0
	for i, item := range items {
		if item.Value == defaultValue {
			cursor = i
			break
		}
	}
	return &PickerModel{
		question: question,
		items:    items,
		cursor:   cursor,
		styles:   DefaultStyles(),
	}
}

// Init 实现 tea.Model 接口
func (m *PickerModel) Init() tea.Cmd { return nil }

// Update 处理按键事件
func (m *PickerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch keyMsg.String() {
	case "ctrl+c", "esc", "q":
		m.cancelled = true
		return m, tea.Quit
	case "up", "k", "shift+tab":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j", "tab":
		if m.cursor < len(m.items)-1 {
			m.cursor++
		}
	case "home", "g":
		m.cursor = 0
	case "end", "G":
		if len(m.items) > 0 {
			m.cursor = len(m.items) - 1
		}
	case "enter":
		if len(m.items) == 0 {
			return m, nil
		}
		m.done = true
		return m, tea.Quit
	}
	return m, nil
}

// View 渲染
func (m *PickerModel) View() string {
	var sb strings.Builder
	sb.WriteString(questionLine(m.styles, m.question))

	if m.done {
		item := m.items[m.cursor]
		short := item.Short
		if short == "" {
			short = item.Value
		}
		sb.WriteString(" ")
		sb.WriteString(m.styles.Answer.Render(short))
		sb.WriteString("\n")
		return sb.String()
	}
	if m.cancelled {
		sb.WriteString("\n")
		return sb.String()
	}

	sb.WriteString(" ")
	sb.WriteString(m.styles.Hint.Render("(Use arrow keys)"))
	sb.WriteString("\n")
	for i, item := range m.items {
		if i == m.cursor {
			sb.WriteString(m.styles.Cursor.Render("❯"))
			sb.WriteString(item.Label)
		} else {
			sb.WriteString(" ")
			sb.WriteString(item.Label)
		}
		sb.WriteString("\n")
	}
	return sb.String()
}

// Selected 返回选择结果；取消或未完成时 ok 为 false。
func (m *PickerModel) Selected() (PickerItem, bool) {
	if !m.done || m.cancelled || len(m.items) == 0 {
		return PickerItem{}, false
	}
	return m.items[m.cursor], true
}

// Cancelled 报告用户是否取消了选择
func (m *PickerModel) Cancelled() bool { return m.cancelled }
