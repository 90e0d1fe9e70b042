package registry

import (
	"errors"
	"testing"

	"github.com/penwyp/project-switch/internal/config"
	perrors "github.com/penwyp/project-switch/internal/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockSaver 模拟配置保存
type MockSaver struct {
	mock.Mock
}

func (m *MockSaver) Save(cfg *config.Config) error {
	args := m.Called(cfg)
	return args.Error(0)
}

func newSaver() *MockSaver {
	s := &MockSaver{}
	s.On("Save", mock.Anything).Return(nil)
	return s
}

func TestRegistry_AddProject_FirstBecomesCurrent(t *testing.T) {
	saver := newSaver()
	reg := New(config.Empty(), saver)

	require.NoError(t, reg.AddProject(config.Project{Name: "site"}))

	current, ok := reg.CurrentProject()
	assert.True(t, ok)
	assert.Equal(t, "site", current)
	saver.AssertNumberOfCalls(t, "Save", 1)
}

func TestRegistry_AddProject_SecondKeepsCurrent(t *testing.T) {
	saver := newSaver()
	reg := New(config.Empty(), saver)

	require.NoError(t, reg.AddProject(config.Project{Name: "site"}))
	require.NoError(t, reg.AddProject(config.Project{Name: "api"}))

	current, _ := reg.CurrentProject()
	assert.Equal(t, "site", current)
	require.Len(t, reg.Projects(), 2)
	assert.Equal(t, "api", reg.Projects()[1].Name)
	saver.AssertNumberOfCalls(t, "Save", 2)
}

func TestRegistry_AddProject_Duplicate(t *testing.T) {
	saver := newSaver()
	reg := New(&config.Config{Projects: []config.Project{{Name: "site"}}}, saver)

	err := reg.AddProject(config.Project{Name: "site"})

	require.Error(t, err)
	assert.True(t, perrors.Is(err, perrors.ErrAlreadyExists))
	assert.Len(t, reg.Projects(), 1)
	saver.AssertNotCalled(t, "Save", mock.Anything)
}

func TestRegistry_AddProject_CaseSensitive(t *testing.T) {
	reg := New(&config.Config{Projects: []config.Project{{Name: "site"}}}, newSaver())

	require.NoError(t, reg.AddProject(config.Project{Name: "Site"}))
	assert.Len(t, reg.Projects(), 2)
}

func TestRegistry_AddProject_EmptyName(t *testing.T) {
	saver := newSaver()
	reg := New(config.Empty(), saver)

	err := reg.AddProject(config.Project{Name: "   "})

	assert.Equal(t, perrors.ErrTypeValidation, perrors.GetType(err))
	assert.Empty(t, reg.Projects())
	saver.AssertNotCalled(t, "Save", mock.Anything)
}

func TestRegistry_AddProject_SaveFailureRollsBack(t *testing.T) {
	saver := &MockSaver{}
	saveErr := errors.New("disk full")
	saver.On("Save", mock.Anything).Return(saveErr)
	reg := New(config.Empty(), saver)

	err := reg.AddProject(config.Project{Name: "site"})

	assert.ErrorIs(t, err, saveErr)
	assert.Empty(t, reg.Projects())
	_, ok := reg.CurrentProject()
	assert.False(t, ok)
}

func TestRegistry_SetCurrentProject(t *testing.T) {
	saver := newSaver()
	reg := New(&config.Config{
		CurrentProject: "a",
		Projects:       []config.Project{{Name: "a"}, {Name: "b"}},
	}, saver)

	require.NoError(t, reg.SetCurrentProject("b"))

	current, _ := reg.CurrentProject()
	assert.Equal(t, "b", current)
	saver.AssertCalled(t, "Save", reg.Config())
}

func TestRegistry_SetCurrentProject_NotFound(t *testing.T) {
	saver := newSaver()
	reg := New(&config.Config{
		CurrentProject: "a",
		Projects:       []config.Project{{Name: "a"}},
	}, saver)

	err := reg.SetCurrentProject("missing")

	assert.True(t, perrors.Is(err, perrors.ErrNotFound))
	assert.Contains(t, err.Error(), `"missing"`)
	current, _ := reg.CurrentProject()
	assert.Equal(t, "a", current)
	saver.AssertNotCalled(t, "Save", mock.Anything)
}

func TestRegistry_SetCurrentProject_SaveFailureRollsBack(t *testing.T) {
	saver := &MockSaver{}
	saver.On("Save", mock.Anything).Return(errors.New("read-only"))
	reg := New(&config.Config{
		CurrentProject: "a",
		Projects:       []config.Project{{Name: "a"}, {Name: "b"}},
	}, saver)

	require.Error(t, reg.SetCurrentProject("b"))

	current, _ := reg.CurrentProject()
	assert.Equal(t, "a", current)
}

func TestRegistry_Lookups(t *testing.T) {
	reg := New(&config.Config{
		Global: []config.ProjectCommand{
			{Key: "mail", URL: "https://mail.test"},
			{Key: "docs", URL: "https://global-docs.test"},
		},
		Projects: []config.Project{{
			Name:     "site",
			Browser:  "safari",
			Commands: []config.ProjectCommand{{Key: "docs", URL: "https://x.test"}},
		}},
	}, newSaver())

	assert.True(t, reg.ProjectExists("site"))
	assert.False(t, reg.ProjectExists("Site"))

	p, ok := reg.Project("site")
	require.True(t, ok)
	assert.Equal(t, "safari", p.Browser)

	_, ok = reg.Project("nope")
	assert.False(t, ok)

	tests := []struct {
		name    string
		project string
		key     string
		wantURL string
		wantOK  bool
	}{
		{name: "project command", project: "site", key: "docs", wantURL: "https://x.test", wantOK: true},
		{name: "global fallback", project: "site", key: "mail", wantURL: "https://mail.test", wantOK: true},
		{name: "missing key", project: "site", key: "ci", wantOK: false},
		{name: "missing project", project: "nope", key: "docs", wantOK: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd, ok := reg.ProjectCommand(tt.project, tt.key)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.wantURL, cmd.URL)
		})
	}
}

func TestRegistry_Commands(t *testing.T) {
	reg := New(&config.Config{
		Global: []config.ProjectCommand{
			{Key: "mail", URL: "https://mail.test"},
			{Key: "docs", URL: "https://global-docs.test"},
		},
		Projects: []config.Project{{
			Name: "site",
			Commands: []config.ProjectCommand{
				{Key: "repo", URL: "https://repo.test"},
				{Key: "docs", URL: "https://x.test"},
			},
		}},
	}, newSaver())

	cmds := reg.Commands("site")

	keys := make([]string, 0, len(cmds))
	for _, c := range cmds {
		keys = append(keys, c.Key)
	}
	assert.Equal(t, []string{"docs", "mail", "repo"}, keys)
	assert.Equal(t, "https://x.test", cmds[0].URL, "project command shadows global")
	assert.Nil(t, reg.Commands("nope"))
}

func TestRegistry_DefaultBrowser(t *testing.T) {
	assert.Equal(t, "firefox", New(config.Empty(), newSaver()).DefaultBrowser())
	assert.Equal(t, "edge", New(&config.Config{DefaultBrowser: "edge"}, newSaver()).DefaultBrowser())
}

func TestRegistry_NilConfig(t *testing.T) {
	reg := New(nil, newSaver())

	assert.Empty(t, reg.Projects())
	_, ok := reg.CurrentProject()
	assert.False(t, ok)
}
