package config

// FallbackBrowser is used when neither the command, the project nor the
// config names a browser.
const FallbackBrowser = "firefox"

// Config 配置文件结构
type Config struct {
	CurrentProject string           `yaml:"currentProject,omitempty" json:"currentProject,omitempty" toml:"currentProject,omitempty"`
	DefaultBrowser string           `yaml:"defaultBrowser,omitempty" json:"defaultBrowser,omitempty" toml:"defaultBrowser,omitempty"`
	Global         []ProjectCommand `yaml:"global,omitempty" json:"global,omitempty" toml:"global,omitempty"`
	Projects       []Project        `yaml:"projects" json:"projects" toml:"projects"`
}

// Project 项目配置
type Project struct {
	Name        string           `yaml:"name" json:"name" toml:"name"`
	Path        string           `yaml:"path,omitempty" json:"path,omitempty" toml:"path,omitempty"`
	Description string           `yaml:"description,omitempty" json:"description,omitempty" toml:"description,omitempty"`
	Browser     string           `yaml:"browser,omitempty" json:"browser,omitempty" toml:"browser,omitempty"`
	Commands    []ProjectCommand `yaml:"commands,omitempty" json:"commands,omitempty" toml:"commands,omitempty"`
}

// ProjectCommand 项目中的 URL 快捷方式
type ProjectCommand struct {
	Key       string `yaml:"key" json:"key" toml:"key"`
	URL       string `yaml:"url,omitempty" json:"url,omitempty" toml:"url,omitempty"`
	Browser   string `yaml:"browser,omitempty" json:"browser,omitempty" toml:"browser,omitempty"`
	Args      string `yaml:"args,omitempty" json:"args,omitempty" toml:"args,omitempty"`
	URLEncode bool   `yaml:"urlEncode,omitempty" json:"urlEncode,omitempty" toml:"urlEncode,omitempty"`
}

// Empty returns a config with no projects.
func Empty() *Config {
	return &Config{Projects: []Project{}}
}

// FindProject returns a pointer into cfg.Projects, or nil.
func (c *Config) FindProject(name string) *Project {
	for i := range c.Projects {
		if c.Projects[i].Name == name {
			return &c.Projects[i]
		}
	}
	return nil
}

// FindCommand returns the command with the given key, or nil.
func (p *Project) FindCommand(key string) *ProjectCommand {
	return findCommand(p.Commands, key)
}

// FindGlobal returns the root-level command with the given key, or nil.
func (c *Config) FindGlobal(key string) *ProjectCommand {
	return findCommand(c.Global, key)
}

func findCommand(cmds []ProjectCommand, key string) *ProjectCommand {
	for i := range cmds {
		if cmds[i].Key == key {
			return &cmds[i]
		}
	}
	return nil
}
