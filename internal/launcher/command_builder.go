package launcher

import "strings"

// BuildCommand 根据平台构建打开 URL 的命令
//
// The result is an argv for exec, never a shell string, so browser names and
// URLs need no quoting. A browser value carrying flags ("firefox -P work")
// is split into the executable and its extra arguments.
func BuildCommand(goos, browser, url string) (string, []string) {
	useDefault := strings.EqualFold(strings.TrimSpace(browser), DefaultBrowserSentinel)
	exe, extra := splitBrowser(browser)

	switch goos {
	case "windows":
		// cmd.exe parses its own command line, so every operand is quoted
		// here and passed through verbatim (see cmdExeLine). The empty
		// first operand is start's window title.
		args := []string{"/C", "start", `""`}
		if !useDefault {
			args = append(args, cmdQuote(exe))
			for _, e := range extra {
				args = append(args, cmdQuote(e))
			}
		}
		return "cmd", append(args, cmdQuote(url))
	case "darwin":
		if useDefault {
			return "open", []string{url}
		}
		args := []string{"-a", exe}
		if len(extra) > 0 {
			args = append(args, "--args")
			args = append(args, extra...)
		}
		return "open", append(args, url)
	default:
		if useDefault {
			return "xdg-open", []string{url}
		}
		args := append([]string{}, extra...)
		return exe, append(args, url)
	}
}

// splitBrowser separates "firefox -P work" into "firefox" and [-P work].
// Words before the first flag stay together, so "Google Chrome" is one name.
func splitBrowser(browser string) (string, []string) {
	parts := strings.Fields(browser)
	for i, p := range parts {
		if i > 0 && strings.HasPrefix(p, "-") {
			return strings.Join(parts[:i], " "), parts[i:]
		}
	}
	return strings.Join(parts, " "), nil
}

// cmdQuote wraps s in double quotes for cmd.exe. A quote inside s cannot be
// escaped there, so it is percent-encoded.
func cmdQuote(s string) string {
	return `"` + strings.ReplaceAll(s, `"`, "%22") + `"`
}

// cmdExeLine returns the literal command line for cmd.exe, whose operands
// BuildCommand has already quoted. ok is false for any other program.
func cmdExeLine(name string, args []string) (string, bool) {
	if !strings.EqualFold(name, "cmd") && !strings.EqualFold(name, "cmd.exe") {
		return "", false
	}
	return name + " " + strings.Join(args, " "), true
}
