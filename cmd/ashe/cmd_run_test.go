package main

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/require"
)

const fixtureSource = `package demo;

public class Greeter {
    public String greet(String name) {
        return "Hello, " + name;
    }
}
`

func writeRunScript(t *testing.T, dir, name, body string) string {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("fake tool scripts require a POSIX shell")
	}
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte("#!/bin/sh\n"+body+"\n"), 0o755))
	return path
}

func TestRunCmdCleanInputExitsWithoutError(t *testing.T) {
	toolsDir := t.TempDir()
	slicerTool := writeRunScript(t, toolsDir, "slicer.sh", `cp "$1/$2" "$4/$(basename "$2")"`)
	checkerTool := writeRunScript(t, toolsDir, "javac.sh", `exit 0`)

	root := t.TempDir()
	target := filepath.Join(root, "demo", "Greeter.java")
	require.NoError(t, os.MkdirAll(filepath.Dir(target), 0o755))
	require.NoError(t, os.WriteFile(target, []byte(fixtureSource), 0o644))

	configPath := filepath.Join(toolsDir, "ashe.properties")
	properties := "slicer.tool_path=" + slicerTool + "\nchecker.tool_name=" + checkerTool + "\n"
	require.NoError(t, os.WriteFile(configPath, []byte(properties), 0o644))

	cmd := newRunCmd()
	cmd.SetArgs([]string{root, "demo/Greeter.java", "demo.Greeter#greet(String)", "dryrun", configPath})
	require.NoError(t, cmd.Execute())
}

func TestRunCmdInvalidReferenceFailsFast(t *testing.T) {
	root := t.TempDir()
	target := filepath.Join(root, "demo", "Greeter.java")
	require.NoError(t, os.MkdirAll(filepath.Dir(target), 0o755))
	require.NoError(t, os.WriteFile(target, []byte(fixtureSource), 0o644))

	configPath := filepath.Join(t.TempDir(), "ashe.properties")
	require.NoError(t, os.WriteFile(configPath, []byte("slicer.tool_path=/should/never/run\n"), 0o644))

	cmd := newRunCmd()
	cmd.SetArgs([]string{root, "demo/Greeter.java", "demo.Greeter.greet()", "dryrun", configPath})
	require.Error(t, cmd.Execute())
}
