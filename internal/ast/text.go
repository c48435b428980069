package ast

import (
	"regexp"
	"strings"
)

var quotedLiteral = regexp.MustCompile(`^["'](.*)["']$`)

// StripQuotes removes one pair of surrounding quotes from a single-line
// literal. Values that are not quoted are returned unchanged.
func StripQuotes(value string) string {
	if value == "" {
		return ""
	}
	return quotedLiteral.ReplaceAllString(value, "$1")
}

// LineAt returns the zero-based line of offset within root's text.
// Offsets outside root are clamped to its bounds.
func LineAt(root *Node, offset int) int {
	if root == nil {
		return 0
	}
	rel := offset - root.Start
	if rel < 0 {
		rel = 0
	}
	if rel > len(root.Value) {
		rel = len(root.Value)
	}
	return strings.Count(root.Value[:rel], "\n")
}

// FirstLine returns the line n starts on, relative to root.
func FirstLine(root, n *Node) int {
	return LineAt(root, n.Start)
}

// LastLine returns the line holding n's last character, relative to root.
func LastLine(root, n *Node) int {
	if n.End > n.Start {
		return LineAt(root, n.End-1)
	}
	return LineAt(root, n.Start)
}
