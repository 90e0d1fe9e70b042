// Package registry exposes lookups and mutations over the loaded project
// config. Every mutation is persisted immediately through the Saver.
package registry

import (
	"sort"
	"strings"

	"github.com/penwyp/project-switch/internal/config"
	"github.com/penwyp/project-switch/internal/errors"
)

// Saver persists the whole config tree.
type Saver interface {
	Save(cfg *config.Config) error
}

// Registry wraps the in-memory config owned by one CLI invocation.
type Registry struct {
	cfg   *config.Config
	saver Saver
}

// New creates a registry over cfg. A nil cfg is treated as empty.
func New(cfg *config.Config, saver Saver) *Registry {
	if cfg == nil {
		cfg = config.Empty()
	}
	return &Registry{cfg: cfg, saver: saver}
}

// Config returns the underlying tree.
func (r *Registry) Config() *config.Config { return r.cfg }

// Projects returns all projects in file order.
func (r *Registry) Projects() []config.Project {
	return r.cfg.Projects
}

// CurrentProject returns the selected project name, if any.
func (r *Registry) CurrentProject() (string, bool) {
	return r.cfg.CurrentProject, r.cfg.CurrentProject != ""
}

// SetCurrentProject selects name and saves. The config is left untouched
// when name does not exist.
func (r *Registry) SetCurrentProject(name string) error {
	if !r.ProjectExists(name) {
		return errors.Newf(errors.ErrTypeNotFound, "Project %q not found", name)
	}

	previous := r.cfg.CurrentProject
	r.cfg.CurrentProject = name
	if err := r.saver.Save(r.cfg); err != nil {
		r.cfg.CurrentProject = previous
		return err
	}
	return nil
}

// AddProject appends p and saves. The first project added while nothing is
// selected becomes the current project.
func (r *Registry) AddProject(p config.Project) error {
	if strings.TrimSpace(p.Name) == "" {
		return errors.New(errors.ErrTypeValidation, "Project name cannot be empty")
	}
	if r.ProjectExists(p.Name) {
		return errors.Newf(errors.ErrTypeAlreadyExists, "Project %q already exists", p.Name)
	}

	previousCurrent := r.cfg.CurrentProject
	r.cfg.Projects = append(r.cfg.Projects, p)
	if r.cfg.CurrentProject == "" {
		r.cfg.CurrentProject = p.Name
	}

	if err := r.saver.Save(r.cfg); err != nil {
		r.cfg.Projects = r.cfg.Projects[:len(r.cfg.Projects)-1]
		r.cfg.CurrentProject = previousCurrent
		return err
	}
	return nil
}

// ProjectExists reports whether a project with exactly this name exists.
func (r *Registry) ProjectExists(name string) bool {
	return r.cfg.FindProject(name) != nil
}

// Project looks up a project by name.
func (r *Registry) Project(name string) (config.Project, bool) {
	p := r.cfg.FindProject(name)
	if p == nil {
		return config.Project{}, false
	}
	return *p, true
}

// ProjectCommand finds key in the project's commands, falling back to the
// global commands. It reports false when the project itself is unknown.
func (r *Registry) ProjectCommand(projectName, key string) (config.ProjectCommand, bool) {
	p := r.cfg.FindProject(projectName)
	if p == nil {
		return config.ProjectCommand{}, false
	}
	if c := p.FindCommand(key); c != nil {
		return *c, true
	}
	if c := r.cfg.FindGlobal(key); c != nil {
		return *c, true
	}
	return config.ProjectCommand{}, false
}

// Commands lists everything openable from the project, sorted by key.
// Global commands shadowed by a project command are omitted.
func (r *Registry) Commands(projectName string) []config.ProjectCommand {
	p := r.cfg.FindProject(projectName)
	if p == nil {
		return nil
	}

	cmds := make([]config.ProjectCommand, 0, len(p.Commands)+len(r.cfg.Global))
	cmds = append(cmds, p.Commands...)
	for _, g := range r.cfg.Global {
		if p.FindCommand(g.Key) == nil {
			cmds = append(cmds, g)
		}
	}
	sort.SliceStable(cmds, func(i, j int) bool { return cmds[i].Key < cmds[j].Key })
	return cmds
}

// DefaultBrowser returns the configured default browser or the fallback.
func (r *Registry) DefaultBrowser() string {
	if r.cfg.DefaultBrowser != "" {
		return r.cfg.DefaultBrowser
	}
	return config.FallbackBrowser
}
