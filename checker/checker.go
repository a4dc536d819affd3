// Package checker invokes the external pluggable type checker as a
// subprocess and extracts the first error region from its diagnostic
// stream.
package checker

import (
	"os"
	"os/exec"
	"strings"

	"github.com/dhamidi/ashe/errs"
)

// Options configures how the checker binary is invoked, assembled from
// the properties-file configuration (checker.tool_name, checker.jar_path,
// checker.classpath, checker.processor).
type Options struct {
	ToolName  string
	JarPath   string
	Classpath string
	Processor string
}

// Check runs the configured checker against file, using projectRoot to
// augment the class-path, and returns the first error region from its
// captured stderr: the substring starting at the first occurrence of the
// literal token "error:" through end of stream, trimmed. An empty result
// means the file is clean.
//
// A nonzero exit from the checker subprocess is not itself an error —
// only an inability to execute the subprocess at all raises CheckerError.
// The presence of an "error:" token is the sole classification signal.
func Check(opts Options, projectRoot, file string) (string, error) {
	tool := opts.ToolName
	if tool == "" {
		tool = "javac"
	}

	classpath := opts.Classpath
	if classpath != "" {
		classpath = classpath + string(os.PathListSeparator) + projectRoot
	} else {
		classpath = projectRoot
	}

	args := []string{}
	if opts.JarPath != "" {
		args = append(args, "-cp", opts.JarPath+string(os.PathListSeparator)+classpath)
	} else {
		args = append(args, "-cp", classpath)
	}
	if opts.Processor != "" {
		args = append(args, "-processor", opts.Processor)
	}
	args = append(args, file)

	cmd := exec.Command(tool, args...)
	var stderr strings.Builder
	cmd.Stderr = &stderr

	runErr := cmd.Run()
	if runErr != nil {
		if _, isExit := runErr.(*exec.ExitError); !isExit {
			return "", errs.Wrap(errs.CheckerError, runErr, "running checker "+tool)
		}
	}

	return ExtractErrorRegion(stderr.String()), nil
}

// ExtractErrorRegion returns the substring of output starting at the
// first occurrence of the literal token "error:", trimmed of surrounding
// whitespace. If the token is absent, it returns the empty string.
func ExtractErrorRegion(output string) string {
	idx := strings.Index(output, "error:")
	if idx < 0 {
		return ""
	}
	return strings.TrimSpace(output[idx:])
}
