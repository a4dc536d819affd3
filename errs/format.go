package errs

import (
	"os"

	"github.com/fatih/color"
)

var (
	colorError = color.New(color.FgRed, color.Bold)
	colorFix   = color.New(color.FgYellow)
)

// Format renders e for terminal display: a red/bold "Error:" line, the
// wrapped cause if present, and a yellow "Fix:" line if one was attached.
// Color output respects NO_COLOR and the noColor argument, following the
// same temporarily-toggle-global-state discipline other ashe callers rely
// on for colored CLI output.
func (e *Error) Format(noColor bool) string {
	originalNoColor := color.NoColor
	defer func() { color.NoColor = originalNoColor }()
	if noColor || os.Getenv("NO_COLOR") != "" {
		color.NoColor = true
	}

	out := colorError.Sprintf("Error: ") + e.Message
	if e.Cause != nil {
		out += "\n" + colorError.Sprintf("Cause: ") + e.Cause.Error()
	}
	if e.Fix != "" {
		out += "\n" + colorFix.Sprintf("Fix:   ") + e.Fix
	}
	return out
}

// Fatal prints e.Format to stderr and exits with e.Kind.ExitCode().
func Fatal(err error, noColor bool) {
	if err == nil {
		return
	}
	e, ok := err.(*Error)
	if !ok {
		os.Stderr.WriteString(err.Error() + "\n")
		os.Exit(10)
	}
	os.Stderr.WriteString(e.Format(noColor) + "\n")
	os.Exit(e.Kind.ExitCode())
}
