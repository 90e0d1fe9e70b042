package launcher

import (
	"net/url"

	"github.com/penwyp/project-switch/internal/config"
	"github.com/penwyp/project-switch/internal/errors"
)

// Resolve finds the command key in the current project and works out the
// URL and effective browser to open it with.
func Resolve(lookup Lookup, key string) (Target, error) {
	projectName, err := RequireCurrent(lookup)
	if err != nil {
		return Target{}, err
	}

	cmd, ok := lookup.ProjectCommand(projectName, key)
	if !ok {
		return Target{}, errors.Newf(errors.ErrTypeCommandNotFound,
			"Command with key %q not found in project %q", key, projectName)
	}
	if cmd.URL == "" {
		return Target{}, errors.Newf(errors.ErrTypeMissingURL,
			"Command %q does not have a URL configured", key)
	}

	project, _ := lookup.Project(projectName)
	return Target{
		Project: projectName,
		Key:     key,
		URL:     ComposeURL(cmd),
		Browser: ResolveBrowser(cmd, project, lookup.DefaultBrowser()),
	}, nil
}

// RequireCurrent returns the current project name or ErrTypeNoCurrentProject.
func RequireCurrent(lookup Lookup) (string, error) {
	projectName, ok := lookup.CurrentProject()
	if !ok {
		return "", errors.New(errors.ErrTypeNoCurrentProject, "No current project selected").
			WithSuggestion(`Use "project-switch switch" to select a project first`)
	}
	return projectName, nil
}

// ResolveBrowser applies the override chain
// command > project > configured default > fallback. First non-empty wins.
func ResolveBrowser(cmd config.ProjectCommand, project config.Project, defaultBrowser string) string {
	for _, b := range []string{cmd.Browser, project.Browser, defaultBrowser} {
		if b != "" {
			return b
		}
	}
	return config.FallbackBrowser
}

// ComposeURL appends the command's args to its URL, query-escaping them
// when URLEncode is set.
func ComposeURL(cmd config.ProjectCommand) string {
	if cmd.Args == "" {
		return cmd.URL
	}
	if cmd.URLEncode {
		return cmd.URL + url.QueryEscape(cmd.Args)
	}
	return cmd.URL + cmd.Args
}
