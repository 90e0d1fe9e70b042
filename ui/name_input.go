package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// NameInputModel 输入项目名称，回车时校验，校验失败时停留在输入框。
type NameInputModel struct {
	question  string
	textInput textinput.Model
	validate  func(string) error
	styles    UIStyles
	errMsg    string
	value     string
	done      bool
	cancelled bool
}

// NewNameInputModel 创建名称输入模型。validate 接收去除首尾空白后的输入，可为 nil。
func NewNameInputModel(question string, validate func(string) error) *NameInputModel {
	ti := textinput.New()
	ti.Prompt = ""
	ti.CharLimit = 128
	ti.Focus()
	return &NameInputModel{
		question:  question,
		textInput: ti,
		validate:  validate,
		styles:    DefaultStyles(),
	}
}

// Init 实现 tea.Model 接口
func (m *NameInputModel) Init() tea.Cmd { return textinput.Blink }

// Update 处理按键事件
func (m *NameInputModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case "ctrl+c", "esc":
			m.cancelled = true
			return m, tea.Quit
		case "enter":
			value := strings.TrimSpace(m.textInput.Value())
			if value == "" {
				m.errMsg = "Project name cannot be empty"
				return m, nil
			}
			if m.validate != nil {
				if err := m.validate(value); err != nil {
					m.errMsg = err.Error()
					return m, nil
				}
			}
			m.value = value
			m.done = true
			return m, tea.Quit
		}
	}

	var cmd tea.Cmd
	m.textInput, cmd = m.textInput.Update(msg)
	if _, ok := msg.(tea.KeyMsg); ok {
		m.errMsg = ""
	}
	return m, cmd
}

// View 渲染
func (m *NameInputModel) View() string {
	var sb strings.Builder
	sb.WriteString(questionLine(m.styles, m.question))
	sb.WriteString(" ")

	if m.done {
		sb.WriteString(m.styles.Answer.Render(m.value))
		sb.WriteString("\n")
		return sb.String()
	}

	sb.WriteString(m.textInput.View())
	sb.WriteString("\n")
	if m.errMsg != "" {
		sb.WriteString(m.styles.Error.Render(">> " + m.errMsg))
		sb.WriteString("\n")
	}
	return sb.String()
}

// Value 返回确认后的名称；取消或未完成时 ok 为 false。
func (m *NameInputModel) Value() (string, bool) {
	if !m.done || m.cancelled {
		return "", false
	}
	return m.value, true
}

// Cancelled 报告用户是否取消了输入
func (m *NameInputModel) Cancelled() bool { return m.cancelled }
