package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFencedCodeBlockExtractsInterior(t *testing.T) {
	reply := "Here is the fix:\n```java\npublic int bar() { return 0; }\n```\nLet me know if that helps."
	assert.Equal(t, "public int bar() { return 0; }", FencedCodeBlock(reply))
}

func TestFencedCodeBlockNoFence(t *testing.T) {
	assert.Equal(t, "", FencedCodeBlock("no code here, sorry"))
}

func TestFencedCodeBlockTakesFirstOnly(t *testing.T) {
	reply := "```java\nfirst\n```\nand another:\n```java\nsecond\n```"
	assert.Equal(t, "first", FencedCodeBlock(reply))
}

func TestStripCommentsRemovesLineComments(t *testing.T) {
	src := "int a = 1; // the answer\nint b = 2;\n"
	got := StripComments(src)
	assert.NotContains(t, got, "the answer")
	assert.Contains(t, got, "int a = 1;")
	assert.Contains(t, got, "int b = 2;")
}

func TestStripCommentsRemovesBlockCommentsAcrossLines(t *testing.T) {
	src := "int a = 1;\n/* this\nspans lines */\nint b = 2;\n"
	got := StripComments(src)
	assert.NotContains(t, got, "spans lines")
	assert.Contains(t, got, "int a = 1;")
	assert.Contains(t, got, "int b = 2;")
}

func TestPatchCombinesExtractionAndStripping(t *testing.T) {
	reply := "```java\npublic int bar() {\n    // fixed\n    return 0;\n}\n```"
	got := Patch(reply)
	assert.NotContains(t, got, "fixed")
	assert.Contains(t, got, "return 0;")
}

func TestPatchEmptyWhenNoFence(t *testing.T) {
	assert.Equal(t, "", Patch("plain text response"))
}
