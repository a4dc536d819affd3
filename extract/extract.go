// Package extract implements the LLM response extractor: locating a
// fenced code block in a reply and stripping comments from it before it
// is handed to the method-replacement engine.
package extract

import (
	"regexp"
	"strings"
)

var fencedBlockPattern = regexp.MustCompile("(?s)```[A-Za-z0-9_+-]*\\n(.*?)```")

// FencedCodeBlock returns the interior of the first triple-backtick fenced
// block in reply, trimmed. If no fenced block is present, it returns the
// empty string.
func FencedCodeBlock(reply string) string {
	m := fencedBlockPattern.FindStringSubmatch(reply)
	if m == nil {
		return ""
	}
	return strings.TrimSpace(m[1])
}

// StripComments removes single-line ("// ... \n") and block ("/* ... */",
// possibly spanning lines) comments from text. It does not understand
// string or character literals, matching the extractor's stated scope: it
// operates on an LLM's fenced code block, not a fully-parsed source file.
func StripComments(text string) string {
	var out strings.Builder
	out.Grow(len(text))

	runes := []rune(text)
	n := len(runes)
	for i := 0; i < n; i++ {
		if runes[i] == '/' && i+1 < n && runes[i+1] == '/' {
			for i < n && runes[i] != '\n' {
				i++
			}
			if i < n {
				out.WriteRune('\n')
			}
			continue
		}
		if runes[i] == '/' && i+1 < n && runes[i+1] == '*' {
			i += 2
			for i+1 < n && !(runes[i] == '*' && runes[i+1] == '/') {
				i++
			}
			i++
			continue
		}
		out.WriteRune(runes[i])
	}
	return out.String()
}

// Patch extracts and cleans the usable code patch from an LLM reply in
// one step: the first fenced block, with comments stripped, trimmed
// again. Returns the empty string if no fenced block was found.
func Patch(reply string) string {
	block := FencedCodeBlock(reply)
	if block == "" {
		return ""
	}
	return strings.TrimSpace(StripComments(block))
}
