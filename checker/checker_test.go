package checker

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fakeChecker(t *testing.T, body string) string {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("fake checker script requires a POSIX shell")
	}
	dir := t.TempDir()
	path := filepath.Join(dir, "fake-javac.sh")
	script := "#!/bin/sh\n" + body + "\n"
	require.NoError(t, os.WriteFile(path, []byte(script), 0o755))
	return path
}

func TestCheckReturnsEmptyOnCleanOutput(t *testing.T) {
	tool := fakeChecker(t, `echo "Note: some diagnostic" 1>&2`)
	region, err := Check(Options{ToolName: tool}, "/project", "demo/Foo.java")
	require.NoError(t, err)
	assert.Empty(t, region)
}

func TestCheckExtractsErrorRegion(t *testing.T) {
	tool := fakeChecker(t, `echo "Foo.java:12: error: incompatible types" 1>&2; exit 1`)
	region, err := Check(Options{ToolName: tool}, "/project", "demo/Foo.java")
	require.NoError(t, err)
	assert.Contains(t, region, "error: incompatible types")
}

func TestCheckFailsWhenToolMissing(t *testing.T) {
	_, err := Check(Options{ToolName: "/no/such/binary-ashe-test"}, "/project", "demo/Foo.java")
	require.Error(t, err)
}

func TestExtractErrorRegionNoToken(t *testing.T) {
	assert.Equal(t, "", ExtractErrorRegion("Note: deprecated API used\n"))
}

func TestExtractErrorRegionTrimsWhitespace(t *testing.T) {
	out := "some warnings\nerror: bad thing happened\n\n"
	assert.Equal(t, "error: bad thing happened", ExtractErrorRegion(out))
}
