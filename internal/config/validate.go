package config

import (
	"fmt"
	"strings"
)

// Normalize enforces the config invariants on a freshly decoded document
// and returns one warning per entry it had to drop or reset.
//
// Projects need a non-blank, unique name (first wins). Commands need a
// non-blank key, unique within their list. currentProject must name an
// existing project.
func (c *Config) Normalize() []string {
	var warnings []string

	seen := make(map[string]bool, len(c.Projects))
	projects := make([]Project, 0, len(c.Projects))
	for i, p := range c.Projects {
		if strings.TrimSpace(p.Name) == "" {
			warnings = append(warnings, fmt.Sprintf("projects[%d]: dropped project with empty name", i))
			continue
		}
		if seen[p.Name] {
			warnings = append(warnings, fmt.Sprintf("projects[%d]: dropped duplicate project %q", i, p.Name))
			continue
		}
		seen[p.Name] = true

		var cmdWarnings []string
		p.Commands, cmdWarnings = normalizeCommands(p.Commands, fmt.Sprintf("project %q", p.Name))
		warnings = append(warnings, cmdWarnings...)
		projects = append(projects, p)
	}
	c.Projects = projects

	var globalWarnings []string
	c.Global, globalWarnings = normalizeCommands(c.Global, "global")
	warnings = append(warnings, globalWarnings...)

	if c.CurrentProject != "" && !seen[c.CurrentProject] {
		warnings = append(warnings, fmt.Sprintf("currentProject %q does not exist, cleared", c.CurrentProject))
		c.CurrentProject = ""
	}

	return warnings
}

func normalizeCommands(cmds []ProjectCommand, owner string) ([]ProjectCommand, []string) {
	if len(cmds) == 0 {
		return cmds, nil
	}

	var warnings []string
	seen := make(map[string]bool, len(cmds))
	out := make([]ProjectCommand, 0, len(cmds))
	for i, c := range cmds {
		if strings.TrimSpace(c.Key) == "" {
			warnings = append(warnings, fmt.Sprintf("%s commands[%d]: dropped command with empty key", owner, i))
			continue
		}
		if seen[c.Key] {
			warnings = append(warnings, fmt.Sprintf("%s commands[%d]: dropped duplicate key %q", owner, i, c.Key))
			continue
		}
		seen[c.Key] = true
		out = append(out, c)
	}
	return out, warnings
}
