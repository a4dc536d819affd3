// Package slicer invokes the external program slicer as a subprocess: a
// tool that, given a project root, a repository-relative source file, and
// a canonical method reference, writes a compilable minimal version of
// that file into a fresh temporary directory.
package slicer

import (
	"os"
	"os/exec"
	"strings"

	"github.com/dhamidi/ashe/errs"
	"github.com/dhamidi/ashe/methodref"
)

// DryRun, when true, makes Slice preserve the subprocess's combined
// output for diagnostics instead of treating an "exception" substring as
// failure — mirroring the checker/slicer's dual dry-run/live behavior
// described for the pipeline's external collaborators.
type Options struct {
	ToolPath string
	DryRun   bool
}

// Slice runs the configured slicer binary against file (relative to
// projectRoot) for the method identified by ref, and returns the path to
// a fresh temporary directory containing the slicer's output.
//
// Failure model: SliceError is raised when the subprocess cannot start,
// when it exits nonzero outside dry-run mode, or when its combined
// stdout/stderr contains the substring "exception" outside dry-run mode.
func Slice(opts Options, projectRoot, file string, ref *methodref.Reference) (string, error) {
	if opts.ToolPath == "" {
		return "", errs.New(errs.SliceError, "no slicer tool path configured")
	}

	dir, err := os.MkdirTemp("", "ashe-slice-")
	if err != nil {
		return "", errs.Wrap(errs.IoError, err, "creating slice temp directory")
	}

	cmd := exec.Command(opts.ToolPath, projectRoot, file, ref.Format(), dir)
	output, runErr := cmd.CombinedOutput()

	if runErr != nil {
		if _, isExit := runErr.(*exec.ExitError); !isExit {
			os.RemoveAll(dir)
			return "", errs.Wrap(errs.SliceError, runErr, "could not start slicer "+opts.ToolPath)
		}
		if opts.DryRun {
			return dir, nil
		}
		os.RemoveAll(dir)
		return "", errs.Wrapf(errs.SliceError, runErr, "slicer failed: %s", string(output))
	}

	if !opts.DryRun && strings.Contains(strings.ToLower(string(output)), "exception") {
		os.RemoveAll(dir)
		return "", errs.Newf(errs.SliceError, "slicer reported an exception: %s", string(output))
	}

	return dir, nil
}

// Cleanup removes the temporary directory produced by Slice. It is safe
// to call on an empty path or a directory that no longer exists.
func Cleanup(dir string) error {
	if dir == "" {
		return nil
	}
	if err := os.RemoveAll(dir); err != nil {
		return errs.Wrap(errs.IoError, err, "removing slice temp directory "+dir)
	}
	return nil
}
