package ui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/penwyp/project-switch/internal/config"
	"github.com/stretchr/testify/require"
)

func projectPicker(current string) *PickerModel {
	projects := []config.Project{{Name: "a"}, {Name: "b"}, {Name: "c"}}
	return NewPickerModel("Select a project:", ProjectItems(projects, current), current)
}

func press(t *testing.T, m tea.Model, keys ...tea.KeyMsg) (tea.Model, tea.Cmd) {
	t.Helper()
	var cmd tea.Cmd
	for _, k := range keys {
		m, cmd = m.Update(k)
	}
	return m, cmd
}

func TestPickerModel_DefaultsToCurrent(t *testing.T) {
	model := projectPicker("b")

	require.Equal(t, 1, model.cursor)
	require.Nil(t, model.Init())
}

func TestPickerModel_UnknownDefaultStartsAtTop(t *testing.T) {
	model := projectPicker("")

	require.Equal(t, 0, model.cursor)
}

func TestPickerModel_NavigationDoesNotWrap(t *testing.T) {
	model := projectPicker("a")

	press(t, model, tea.KeyMsg{Type: tea.KeyUp})
	require.Equal(t, 0, model.cursor)

	press(t, model,
		tea.KeyMsg{Type: tea.KeyDown},
		tea.KeyMsg{Type: tea.KeyDown},
		tea.KeyMsg{Type: tea.KeyDown},
	)
	require.Equal(t, 2, model.cursor)

	press(t, model, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'k'}})
	require.Equal(t, 1, model.cursor)

	press(t, model, tea.KeyMsg{Type: tea.KeyHome})
	require.Equal(t, 0, model.cursor)

	press(t, model, tea.KeyMsg{Type: tea.KeyEnd})
	require.Equal(t, 2, model.cursor)
}

func TestPickerModel_EnterSelects(t *testing.T) {
	model := projectPicker("a")

	updated, cmd := press(t, model, tea.KeyMsg{Type: tea.KeyDown}, tea.KeyMsg{Type: tea.KeyEnter})

	pm := updated.(*PickerModel)
	item, ok := pm.Selected()
	require.True(t, ok)
	require.Equal(t, "b", item.Value)
	require.NotNil(t, cmd) // Should return tea.Quit
	require.Contains(t, pm.View(), "Select a project: b")
}

func TestPickerModel_CancelKeys(t *testing.T) {
	keys := []tea.KeyMsg{
		{Type: tea.KeyCtrlC},
		{Type: tea.KeyEsc},
		{Type: tea.KeyRunes, Runes: []rune{'q'}},
	}

	for _, key := range keys {
		model := projectPicker("a")
		updated, cmd := model.Update(key)

		pm := updated.(*PickerModel)
		require.True(t, pm.Cancelled(), "key %s should cancel", key.String())
		_, ok := pm.Selected()
		require.False(t, ok)
		require.NotNil(t, cmd)
	}
}

func TestPickerModel_EmptyListIgnoresEnter(t *testing.T) {
	model := NewPickerModel("Select:", nil, "")

	_, cmd := model.Update(tea.KeyMsg{Type: tea.KeyEnter})

	require.Nil(t, cmd)
	_, ok := model.Selected()
	require.False(t, ok)
}

func TestPickerModel_View(t *testing.T) {
	model := projectPicker("b")

	view := model.View()

	require.Contains(t, view, "Select a project:")
	require.Contains(t, view, "  a")
	require.Contains(t, view, "▶ b (current)")
	require.Contains(t, view, "❯")
}

func TestPickerModel_IgnoresNonKeyMessages(t *testing.T) {
	model := projectPicker("a")

	_, cmd := model.Update(tea.WindowSizeMsg{Width: 80, Height: 24})

	require.Nil(t, cmd)
	require.Equal(t, 0, model.cursor)
}
