package replace

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/dhamidi/ashe/ast"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sourceFixture = `package demo;

public class Greeter {
    public String greet(String name) {
        return "Hello, " + name;
    }

    public int add(int a, int b) {
        return a + b;
    }
}
`

func writeFixture(t *testing.T, contents string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "Greeter.java")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))
	return path
}

func signatureOf(t *testing.T, text string) *ast.Signature {
	t.Helper()
	md, err := ast.ParseMethod(text)
	require.NoError(t, err)
	return md.Signature()
}

func TestOverrideEquivalentMatchesSameShape(t *testing.T) {
	a := signatureOf(t, `public String greet(String name) { return name; }`)
	b := signatureOf(t, `public String greet(String who) { return who; }`)
	assert.True(t, OverrideEquivalent(a, b))
	assert.True(t, OverrideEquivalent(b, a))
}

func TestOverrideEquivalentRejectsDifferentReturnType(t *testing.T) {
	a := signatureOf(t, `public String greet(String name) { return name; }`)
	b := signatureOf(t, `public int greet(String name) { return 0; }`)
	assert.False(t, OverrideEquivalent(a, b))
	assert.False(t, OverrideEquivalent(b, a))
}

func TestOverrideEquivalentRejectsDifferentParameterTypes(t *testing.T) {
	a := signatureOf(t, `public int add(int a, int b) { return a + b; }`)
	b := signatureOf(t, `public int add(long a, long b) { return 0; }`)
	assert.False(t, OverrideEquivalent(a, b))
	assert.False(t, OverrideEquivalent(b, a))
}

func TestOverrideEquivalentTreatsEmptyParameterListsEqual(t *testing.T) {
	a := signatureOf(t, `public void init() { }`)
	b := signatureOf(t, `public void init() { }`)
	assert.True(t, OverrideEquivalent(a, b))
}

func TestMethodReplacesMatchingMethodOnly(t *testing.T) {
	path := writeFixture(t, sourceFixture)

	ok, err := Method(path, "Greeter", `public String greet(String name) { return "Hi, " + name + "!"; }`)
	require.NoError(t, err)
	require.True(t, ok)

	updated, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(updated), `"Hi, "`)
	assert.Contains(t, string(updated), "add(int a, int b)")
}

func TestMethodLeavesFileUntouchedWhenNoMatch(t *testing.T) {
	path := writeFixture(t, sourceFixture)
	before, err := os.ReadFile(path)
	require.NoError(t, err)

	ok, err := Method(path, "Greeter", `public String farewell(String name) { return "Bye, " + name; }`)
	require.NoError(t, err)
	require.False(t, ok)

	after, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, string(before), string(after))
}

func TestMethodReturnsFalseForUnknownClass(t *testing.T) {
	path := writeFixture(t, sourceFixture)
	ok, err := Method(path, "NoSuchClass", `public void noop() { }`)
	require.NoError(t, err)
	require.False(t, ok)
}

func TestOriginalTargetMethodSplicesAcrossFiles(t *testing.T) {
	checkedPath := writeFixture(t, `package demo;

public class Greeter {
    public String greet(String name) {
        return "Fixed: " + name;
    }
}
`)
	targetPath := writeFixture(t, sourceFixture)

	ok, err := OriginalTargetMethod(checkedPath, targetPath, "greet")
	require.NoError(t, err)
	require.True(t, ok)

	updated, err := os.ReadFile(targetPath)
	require.NoError(t, err)
	assert.Contains(t, string(updated), "Fixed: ")
	assert.Contains(t, string(updated), "add(int a, int b)")
}

func TestOriginalTargetMethodNotFound(t *testing.T) {
	checkedPath := writeFixture(t, sourceFixture)
	targetPath := writeFixture(t, sourceFixture)

	_, err := OriginalTargetMethod(checkedPath, targetPath, "noSuchMethod")
	require.Error(t, err)
}
