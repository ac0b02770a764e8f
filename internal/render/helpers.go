// Package render produces mermaid flowcharts and Graphviz DOT from parsed
// IR functions.
package render

import "strings"

// nodeName is the diagram identifier of a block.
func nodeName(block string, t Theme) string {
	if block == "" {
		return t.EntryName
	}
	return "%" + block
}

// predName is the diagram identifier of a predecessor operand.
// Operands from "; preds =" already carry the '%' sigil.
func predName(p string) string {
	if strings.HasPrefix(p, "%") {
		return p
	}
	return "%" + p
}

// labelEscape keeps a node label inside its double quotes.
func labelEscape(s string) string {
	return strings.ReplaceAll(s, `"`, "#quot;")
}
