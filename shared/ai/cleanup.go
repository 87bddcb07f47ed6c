package ai

import (
	"regexp"
	"strings"
)

var (
	quadEmphasis   = regexp.MustCompile(`\*{4}`)
	numberedLine   = regexp.MustCompile(`(?m)^(\d+)\.\s+(.+)$`)
	excessNewlines = regexp.MustCompile(`\n{3,}`)
	labelLine      = regexp.MustCompile(`(?m)^([A-Za-z][A-Za-z0-9 ']{0,40}):(\s*)(.*)$`)
)

// CleanupFormatting normalizes markdown quirks in newer-family model output.
// The rules run in a fixed order; each operates on the previous rule's
// output:
//  1. collapse runs of four emphasis markers into two (doubling artifact)
//  2. bold numbered-list markers, with a blank line before each
//  3. collapse three or more newlines into exactly two
//  4. bold any "label:" line
//  5. trim surrounding whitespace
func CleanupFormatting(text string) string {
	out := quadEmphasis.ReplaceAllString(text, "**")
	out = numberedLine.ReplaceAllString(out, "\n**$1.** $2")
	out = excessNewlines.ReplaceAllString(out, "\n\n")
	out = labelLine.ReplaceAllString(out, "**$1:**$2$3")
	return strings.TrimSpace(out)
}
