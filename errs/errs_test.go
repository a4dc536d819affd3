package errs

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewAndWrapCarryKindAndCause(t *testing.T) {
	cause := errors.New("boom")
	err := Wrap(IoError, cause, "reading file")

	assert.Equal(t, IoError, err.Kind)
	assert.Equal(t, cause, errors.Unwrap(err))
	assert.Contains(t, err.Error(), "reading file")
	assert.Contains(t, err.Error(), "boom")
}

func TestNewfFormatsMessage(t *testing.T) {
	err := Newf(NotFound, "no method named %q", "bar")
	assert.Equal(t, `no method named "bar"`, err.Message)
}

func TestWithFixAttachesHint(t *testing.T) {
	err := New(FormatError, "bad reference").WithFix("check the syntax")
	assert.Equal(t, "check the syntax", err.Fix)
}

func TestIsMatchesKindThroughWrapChain(t *testing.T) {
	inner := New(ParseError, "inner failure")
	outer := Wrap(CheckerError, inner, "checker failed")

	assert.True(t, Is(outer, CheckerError))
	assert.True(t, Is(outer, ParseError), "Is should follow the Cause chain")
	assert.False(t, Is(outer, IoError))
}

func TestIsReturnsFalseForPlainErrors(t *testing.T) {
	plain := fmt.Errorf("not an ashe error")
	assert.False(t, Is(plain, IoError))
}

func TestExitCodeGroupsKindsByCategory(t *testing.T) {
	assert.Equal(t, 4, FormatError.ExitCode())
	assert.Equal(t, 4, InvalidModel.ExitCode())
	assert.Equal(t, 6, NotFound.ExitCode())
	assert.Equal(t, 3, SliceError.ExitCode())
	assert.Equal(t, 2, NoPatch.ExitCode())
	assert.Equal(t, 1, ParseError.ExitCode())
}

func TestKindStringNamesEachTaxonomyEntry(t *testing.T) {
	assert.Equal(t, "FormatError", FormatError.String())
	assert.Equal(t, "LlmError(TimeoutError)", LlmTimeoutError.String())
}

func TestErrorFormatIncludesFixLine(t *testing.T) {
	err := New(SliceError, "slicer failed").WithFix("check slicer.tool_path")
	out := err.Format(true)
	require.Contains(t, out, "slicer failed")
	require.Contains(t, out, "check slicer.tool_path")
}
