package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfig_Normalize(t *testing.T) {
	tests := []struct {
		name          string
		cfg           Config
		wantProjects  []string
		wantCurrent   string
		wantWarnings  int
		wantGlobalLen int
	}{
		{
			name: "valid config untouched",
			cfg: Config{
				CurrentProject: "a",
				Projects:       []Project{{Name: "a"}, {Name: "b"}},
			},
			wantProjects: []string{"a", "b"},
			wantCurrent:  "a",
		},
		{
			name: "duplicate project keeps first",
			cfg: Config{
				Projects: []Project{{Name: "a", Browser: "first"}, {Name: "a", Browser: "second"}},
			},
			wantProjects: []string{"a"},
			wantWarnings: 1,
		},
		{
			name: "names are case sensitive",
			cfg: Config{
				Projects: []Project{{Name: "web"}, {Name: "Web"}},
			},
			wantProjects: []string{"web", "Web"},
		},
		{
			name: "blank names dropped",
			cfg: Config{
				Projects: []Project{{Name: ""}, {Name: "  "}, {Name: "ok"}},
			},
			wantProjects: []string{"ok"},
			wantWarnings: 2,
		},
		{
			name: "dangling current cleared",
			cfg: Config{
				CurrentProject: "gone",
				Projects:       []Project{{Name: "a"}},
			},
			wantProjects: []string{"a"},
			wantWarnings: 1,
		},
		{
			name: "global commands deduplicated",
			cfg: Config{
				Global: []ProjectCommand{{Key: "mail"}, {Key: "mail"}, {Key: ""}},
			},
			wantProjects:  []string{},
			wantWarnings:  2,
			wantGlobalLen: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := tt.cfg
			warnings := cfg.Normalize()

			names := make([]string, 0, len(cfg.Projects))
			for _, p := range cfg.Projects {
				names = append(names, p.Name)
			}
			assert.Equal(t, tt.wantProjects, names)
			assert.Equal(t, tt.wantCurrent, cfg.CurrentProject)
			assert.Len(t, warnings, tt.wantWarnings)
			assert.Len(t, cfg.Global, tt.wantGlobalLen)
		})
	}
}

func TestConfig_NormalizeCommands(t *testing.T) {
	cfg := Config{
		Projects: []Project{{
			Name: "web",
			Commands: []ProjectCommand{
				{Key: "docs", URL: "https://first.test"},
				{Key: " ", URL: "https://blank.test"},
				{Key: "docs", URL: "https://second.test"},
				{Key: "ci", URL: "https://ci.test"},
			},
		}},
	}

	warnings := cfg.Normalize()

	require.Len(t, cfg.Projects[0].Commands, 2)
	assert.Equal(t, "https://first.test", cfg.Projects[0].Commands[0].URL)
	assert.Equal(t, "ci", cfg.Projects[0].Commands[1].Key)
	assert.Len(t, warnings, 2)
}

func TestConfig_FindHelpers(t *testing.T) {
	cfg := sampleConfig()

	p := cfg.FindProject("site")
	require.NotNil(t, p)
	assert.Nil(t, cfg.FindProject("nope"))

	require.NotNil(t, p.FindCommand("docs"))
	assert.Nil(t, p.FindCommand("mail"))
	require.NotNil(t, cfg.FindGlobal("mail"))

	p.Browser = "changed"
	assert.Equal(t, "changed", cfg.Projects[0].Browser, "FindProject returns a pointer into the slice")
}
