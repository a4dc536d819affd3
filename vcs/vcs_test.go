package vcs

import (
	"context"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/require"
)

// fakeGit installs a script named "git" on PATH that appends each
// invocation's arguments to a log file, mirroring checker_test.go's
// fakeChecker helper for a subprocess-shaped adapter.
func fakeGit(t *testing.T, body string) (binDir, logPath string) {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("fake git script requires a POSIX shell")
	}
	dir := t.TempDir()
	logPath = filepath.Join(dir, "calls.log")
	script := "#!/bin/sh\necho \"$@\" >> " + logPath + "\n" + body + "\n"
	path := filepath.Join(dir, "git")
	require.NoError(t, os.WriteFile(path, []byte(script), 0o755))
	return dir, logPath
}

func withFakeGitOnPath(t *testing.T, binDir string) {
	t.Helper()
	original := os.Getenv("PATH")
	t.Setenv("PATH", binDir+string(os.PathListSeparator)+original)
}

func TestCloneOrFetchClonesWhenDestMissing(t *testing.T) {
	binDir, logPath := fakeGit(t, "exit 0")
	withFakeGitOnPath(t, binDir)

	destDir := filepath.Join(t.TempDir(), "repo")
	err := CloneOrFetch(context.Background(), "https://example.com/repo.git", "main", destDir)
	require.NoError(t, err)

	data, err := os.ReadFile(logPath)
	require.NoError(t, err)
	require.Contains(t, string(data), "clone --branch main --single-branch https://example.com/repo.git")
}

func TestCloneOrFetchFetchesAndResetsWhenDestExists(t *testing.T) {
	binDir, logPath := fakeGit(t, "exit 0")
	withFakeGitOnPath(t, binDir)

	destDir := t.TempDir()
	err := CloneOrFetch(context.Background(), "https://example.com/repo.git", "main", destDir)
	require.NoError(t, err)

	data, err := os.ReadFile(logPath)
	require.NoError(t, err)
	require.Contains(t, string(data), "-C "+destDir+" fetch origin main")
	require.Contains(t, string(data), "-C "+destDir+" reset --hard origin/main")
}

func TestCloneOrFetchFailsOnNonzeroExit(t *testing.T) {
	binDir, _ := fakeGit(t, "exit 1")
	withFakeGitOnPath(t, binDir)

	destDir := filepath.Join(t.TempDir(), "repo")
	err := CloneOrFetch(context.Background(), "https://example.com/repo.git", "main", destDir)
	require.Error(t, err)
}
