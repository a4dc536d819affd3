package logging

import (
	"bytes"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPrintfAppendsTrailingNewline(t *testing.T) {
	var buf bytes.Buffer
	SetOutput(&buf)
	defer SetOutput(os.Stderr)

	Printf("hello %s", "world")
	assert.Equal(t, "hello world\n", buf.String())
}

func TestPrintfDoesNotDoubleNewline(t *testing.T) {
	var buf bytes.Buffer
	SetOutput(&buf)
	defer SetOutput(os.Stderr)

	Printf("already terminated\n")
	assert.Equal(t, 1, strings.Count(buf.String(), "\n"))
}

func TestWorkItemOutcomeIncludesIdentityAndState(t *testing.T) {
	var buf bytes.Buffer
	SetOutput(&buf)
	defer SetOutput(os.Stderr)

	WorkItemOutcome("demo.Greeter#greet(String)", "Clean", "")
	assert.Equal(t, "demo.Greeter#greet(String): Clean\n", buf.String())
}

func TestWorkItemOutcomeIncludesDetailWhenPresent(t *testing.T) {
	var buf bytes.Buffer
	SetOutput(&buf)
	defer SetOutput(os.Stderr)

	WorkItemOutcome("demo.Greeter#greet(String)", "NoPatch", "no fenced block")
	assert.Equal(t, "demo.Greeter#greet(String): NoPatch (no fenced block)\n", buf.String())
}
