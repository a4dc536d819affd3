package refine

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/dhamidi/ashe/config"
	"github.com/dhamidi/ashe/llm"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const fixtureSource = `package demo;

public class Greeter {
    public String greet(String name) {
        return "Hello, " + name;
    }
}
`

func requireShell(t *testing.T) {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("fake tool scripts require a POSIX shell")
	}
}

func writeScript(t *testing.T, dir, name, body string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte("#!/bin/sh\n"+body+"\n"), 0o755))
	return path
}

// newProject lays out a fake project root containing the target file at
// relFile, and returns the project root and a *config.Config pointing at
// the given slicer/checker tool scripts.
func newProject(t *testing.T, relFile, source string) string {
	t.Helper()
	root := t.TempDir()
	full := filepath.Join(root, relFile)
	require.NoError(t, os.MkdirAll(filepath.Dir(full), 0o755))
	require.NoError(t, os.WriteFile(full, []byte(source), 0o644))
	return root
}

func dryRunClient(t *testing.T) *llm.Client {
	t.Helper()
	client, err := llm.New("dryrun", &config.Config{})
	require.NoError(t, err)
	return client
}

func fixtureClient(t *testing.T, reply string) *llm.Client {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "reply.txt")
	require.NoError(t, os.WriteFile(path, []byte(reply), 0o644))
	client, err := llm.New("mock", &config.Config{LlmFixturePath: path})
	require.NoError(t, err)
	return client
}

func TestRunCleanInputNeedsNoLlmCall(t *testing.T) {
	requireShell(t)
	toolsDir := t.TempDir()
	slicerTool := writeScript(t, toolsDir, "slicer.sh", `cp "$1/$2" "$4/$(basename "$2")"`)
	checkerTool := writeScript(t, toolsDir, "javac.sh", `exit 0`)

	root := newProject(t, "demo/Greeter.java", fixtureSource)
	cfg := &config.Config{SlicerToolPath: slicerTool, CheckerToolName: checkerTool}

	item := WorkItem{ProjectRoot: root, TargetFile: "demo/Greeter.java", Reference: "demo.Greeter#greet(String)"}
	err := Run(item, cfg, dryRunClient(t))
	require.NoError(t, err)
}

func TestRunSingleShotRepair(t *testing.T) {
	requireShell(t)
	toolsDir := t.TempDir()
	slicerTool := writeScript(t, toolsDir, "slicer.sh", `cp "$1/$2" "$4/$(basename "$2")"`)

	counterFile := filepath.Join(toolsDir, "calls")
	checkerTool := writeScript(t, toolsDir, "javac.sh", `
COUNT_FILE="`+counterFile+`"
if [ ! -f "$COUNT_FILE" ]; then
  echo "1" > "$COUNT_FILE"
  echo "error: potential null dereference at line 12" 1>&2
  exit 1
fi
exit 0
`)

	root := newProject(t, "demo/Greeter.java", fixtureSource)
	cfg := &config.Config{SlicerToolPath: slicerTool, CheckerToolName: checkerTool}

	reply := "```java\npublic String greet(String name) { return \"Hi, \" + name; }\n```"
	item := WorkItem{ProjectRoot: root, TargetFile: "demo/Greeter.java", Reference: "demo.Greeter#greet(String)"}
	err := Run(item, cfg, fixtureClient(t, reply))
	require.NoError(t, err)

	updated, err := os.ReadFile(filepath.Join(root, "demo/Greeter.java"))
	require.NoError(t, err)
	assert.Contains(t, string(updated), "Hi, ")
}

func TestRunNoUsablePatch(t *testing.T) {
	requireShell(t)
	toolsDir := t.TempDir()
	slicerTool := writeScript(t, toolsDir, "slicer.sh", `cp "$1/$2" "$4/$(basename "$2")"`)
	checkerTool := writeScript(t, toolsDir, "javac.sh", `echo "error: something is wrong" 1>&2; exit 1`)

	root := newProject(t, "demo/Greeter.java", fixtureSource)
	cfg := &config.Config{SlicerToolPath: slicerTool, CheckerToolName: checkerTool}

	item := WorkItem{ProjectRoot: root, TargetFile: "demo/Greeter.java", Reference: "demo.Greeter#greet(String)"}
	err := Run(item, cfg, fixtureClient(t, "sorry, I can't help with that"))
	require.Error(t, err)

	before, readErr := os.ReadFile(filepath.Join(root, "demo/Greeter.java"))
	require.NoError(t, readErr)
	assert.Equal(t, fixtureSource, string(before))
}

func TestRunInvalidReferenceFailsFast(t *testing.T) {
	root := newProject(t, "demo/Greeter.java", fixtureSource)
	cfg := &config.Config{SlicerToolPath: "/should/never/run"}

	item := WorkItem{ProjectRoot: root, TargetFile: "demo/Greeter.java", Reference: "demo.Greeter.greet()"}
	err := Run(item, cfg, dryRunClient(t))
	require.Error(t, err)
}
