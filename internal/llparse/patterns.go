package llparse

import (
	"regexp"
	"strings"
)

// Line shapes recognized in a .ll dump. Everything else is opaque text.
var (
	// define <attrs> <type> @name(<params>) <attrs> {
	defineRe = regexp.MustCompile(`^define\s+.*@([a-zA-Z0-9_.]+)\s*\(.*\)\s*(.*)\s*\{$`)

	// name:                                   ; preds = %a, %b
	labelRe = regexp.MustCompile(`^([0-9a-zA-Z_.]+):\s*(?:;(.*))?$`)

	predsRe = regexp.MustCompile(`^\s*preds\s*=\s*(.*?)\s*$`)

	// label %dest, label %"quoted dest"
	labelOperandRe = regexp.MustCompile(`\blabel\s+(%"[^"]*"|%[-a-zA-Z0-9_.$]+)`)
)

// matchHeader returns the function name of a define line.
func matchHeader(line string) (string, bool) {
	m := defineRe.FindStringSubmatch(line)
	if m == nil {
		return "", false
	}
	return m[1], true
}

// matchLabel returns the block name and declared predecessors of a label
// line. A comment that is not a preds list yields no predecessors.
func matchLabel(line string) (name string, preds []string, ok bool) {
	m := labelRe.FindStringSubmatch(line)
	if m == nil {
		return "", nil, false
	}
	return m[1], parsePreds(m[2]), true
}

func parsePreds(comment string) []string {
	m := predsRe.FindStringSubmatch(comment)
	if m == nil || m[1] == "" {
		return nil
	}
	return strings.Split(m[1], ", ")
}

func isCloseBrace(line string) bool {
	return line == "}"
}

// labelOperands returns label operands of line in left-to-right order.
func labelOperands(line string) []string {
	ms := labelOperandRe.FindAllStringSubmatch(line, -1)
	if len(ms) == 0 {
		return nil
	}
	out := make([]string, 0, len(ms))
	for _, m := range ms {
		out = append(out, m[1])
	}
	return out
}

// opensTable reports whether line leaves a jump table "[" unclosed.
func opensTable(line string) bool {
	return strings.LastIndexByte(line, '[') > strings.LastIndexByte(line, ']')
}

func closesTable(line string) bool {
	return strings.IndexByte(line, ']') >= 0
}
