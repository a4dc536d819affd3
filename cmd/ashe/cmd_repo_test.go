package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRepositorySlugStripsGitSuffixAndPath(t *testing.T) {
	cases := map[string]string{
		"https://github.com/dhamidi/sai.git": "sai",
		"https://github.com/dhamidi/sai":     "sai",
		"git@github.com:dhamidi/sai.git":     "sai",
		"":                                   "repo",
	}
	for in, want := range cases {
		assert.Equal(t, want, repositorySlug(in), "input %q", in)
	}
}

func TestFindJavaSourceRootsFindsConventionalLayoutAndSkipsTests(t *testing.T) {
	root := t.TempDir()
	mainRoot := filepath.Join(root, "src", "main", "java")
	testRoot := filepath.Join(root, "src", "test", "java")
	require.NoError(t, os.MkdirAll(mainRoot, 0o755))
	require.NoError(t, os.MkdirAll(testRoot, 0o755))

	roots, err := findJavaSourceRoots(root)
	require.NoError(t, err)
	assert.Equal(t, []string{mainRoot}, roots)
}

func TestReadRepositoryRowsRequiresHeader(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bad.csv")
	require.NoError(t, os.WriteFile(path, []byte("Repo,Branch\nhttps://example.com/a.git,main\n"), 0o644))

	_, err := readRepositoryRows(path)
	require.Error(t, err)
}

func TestReadRepositoryRowsParsesRows(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "repos.csv")
	content := "Repository,Branch\nhttps://example.com/a.git,main\nhttps://example.com/b.git,develop\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	rows, err := readRepositoryRows(path)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "https://example.com/a.git", rows[0].Repository)
	assert.Equal(t, "main", rows[0].Branch)
	assert.Equal(t, "develop", rows[1].Branch)
}
