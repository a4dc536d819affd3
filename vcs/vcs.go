// Package vcs shells out to the git binary to clone or fetch a
// repository ahead of a repository-batch run, the same way the checker
// and slicer adapters shell out to javac and the external slicer rather
// than linking a VCS library.
package vcs

import (
	"context"
	"os"
	"os/exec"

	"github.com/dhamidi/ashe/errs"
)

// CloneOrFetch ensures a working copy of repoURL at branch exists in
// destDir. If destDir does not yet exist, it clones a single branch;
// otherwise it fetches and hard-resets to the remote branch tip,
// discarding any local drift so repeated repository-batch runs always
// start from the same upstream state.
func CloneOrFetch(ctx context.Context, repoURL, branch, destDir string) error {
	if _, err := os.Stat(destDir); os.IsNotExist(err) {
		return run(ctx, "", "clone", "--branch", branch, "--single-branch", repoURL, destDir)
	} else if err != nil {
		return errs.Wrap(errs.IoError, err, "checking "+destDir)
	}

	if err := run(ctx, destDir, "fetch", "origin", branch); err != nil {
		return err
	}
	return run(ctx, destDir, "reset", "--hard", "origin/"+branch)
}

// run invokes git with args, optionally pinned to repoDir via -C, and
// wraps a nonzero exit or a start failure into an IoError carrying the
// combined output for diagnosis.
func run(ctx context.Context, repoDir string, args ...string) error {
	fullArgs := args
	if repoDir != "" {
		fullArgs = append([]string{"-C", repoDir}, args...)
	}

	cmd := exec.CommandContext(ctx, "git", fullArgs...)
	output, err := cmd.CombinedOutput()
	if err != nil {
		return errs.Wrapf(errs.IoError, err, "git %v failed: %s", args, string(output))
	}
	return nil
}
