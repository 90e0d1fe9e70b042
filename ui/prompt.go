package ui

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-isatty"
	"github.com/penwyp/project-switch/internal/config"
	"github.com/penwyp/project-switch/internal/errors"
)

const promptUnavailableMsg = "Prompt couldn't be rendered in the current environment"

// TerminalPrompter runs the interactive prompts as bubbletea programs on
// the process terminal.
type TerminalPrompter struct {
	in  *os.File
	out *os.File
}

// NewTerminalPrompter 创建基于 stdin/stdout 的交互提示器
func NewTerminalPrompter() *TerminalPrompter {
	return &TerminalPrompter{in: os.Stdin, out: os.Stdout}
}

// Available reports whether both ends are terminals.
func (p *TerminalPrompter) Available() bool {
	return isTerminal(p.in) && isTerminal(p.out)
}

func isTerminal(f *os.File) bool {
	if f == nil {
		return false
	}
	fd := f.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

func (p *TerminalPrompter) run(model tea.Model) (tea.Model, error) {
	if !p.Available() {
		return nil, errors.New(errors.ErrTypePromptUnavailable, promptUnavailableMsg)
	}
	final, err := tea.NewProgram(model, tea.WithInput(p.in), tea.WithOutput(p.out)).Run()
	if err != nil {
		return nil, errors.Wrap(errors.ErrTypePromptUnavailable, promptUnavailableMsg, err)
	}
	return final, nil
}

// ProjectName asks for a new project name. validate receives the trimmed
// input and its error is shown inline until the user fixes the name.
func (p *TerminalPrompter) ProjectName(validate func(string) error) (string, error) {
	final, err := p.run(NewNameInputModel("Enter project name:", validate))
	if err != nil {
		return "", err
	}
	m, ok := final.(*NameInputModel)
	if !ok {
		return "", fmt.Errorf("internal error: unexpected model type, got %T", final)
	}
	value, ok := m.Value()
	if !ok {
		return "", errors.New(errors.ErrTypePromptCancelled, "prompt cancelled")
	}
	return value, nil
}

// SelectProject lists projects with the current one marked and preselected.
func (p *TerminalPrompter) SelectProject(projects []config.Project, current string) (string, error) {
	item, err := p.pick(NewPickerModel("Select a project:", ProjectItems(projects, current), current))
	if err != nil {
		return "", err
	}
	return item.Value, nil
}

// SelectCommand lists a project's commands as "key → url".
func (p *TerminalPrompter) SelectCommand(projectName string, cmds []config.ProjectCommand) (config.ProjectCommand, error) {
	question := fmt.Sprintf("Select an item to open from '%s':", projectName)
	item, err := p.pick(NewPickerModel(question, CommandItems(cmds), ""))
	if err != nil {
		return config.ProjectCommand{}, err
	}
	for _, c := range cmds {
		if c.Key == item.Value {
			return c, nil
		}
	}
	return config.ProjectCommand{}, fmt.Errorf("internal error: selected unknown command %q", item.Value)
}

func (p *TerminalPrompter) pick(model *PickerModel) (PickerItem, error) {
	final, err := p.run(model)
	if err != nil {
		return PickerItem{}, err
	}
	m, ok := final.(*PickerModel)
	if !ok {
		return PickerItem{}, fmt.Errorf("internal error: unexpected model type, got %T", final)
	}
	item, ok := m.Selected()
	if !ok {
		return PickerItem{}, errors.New(errors.ErrTypePromptCancelled, "prompt cancelled")
	}
	return item, nil
}

// ProjectItems builds picker rows, marking the current project.
func ProjectItems(projects []config.Project, current string) []PickerItem {
	styles := DefaultStyles()
	items := make([]PickerItem, 0, len(projects))
	for _, project := range projects {
		label := "  " + project.Name
		if project.Name == current {
			label = styles.Current.Render(fmt.Sprintf("▶ %s (current)", project.Name))
		}
		items = append(items, PickerItem{Label: label, Value: project.Name, Short: project.Name})
	}
	return items
}

// CommandItems builds picker rows for commands, truncating long URLs.
func CommandItems(cmds []config.ProjectCommand) []PickerItem {
	styles := DefaultStyles()
	items := make([]PickerItem, 0, len(cmds))
	for _, c := range cmds {
		label := styles.Key.Render(c.Key)
		if c.URL != "" {
			label = fmt.Sprintf("%s → %s", label, styles.URL.Render(truncateURL(c.URL)))
		}
		items = append(items, PickerItem{Label: " " + label, Value: c.Key, Short: c.Key})
	}
	return items
}
