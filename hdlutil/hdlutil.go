// Package hdlutil provides text helpers shared by the HDL backends:
// indentation, comment wrapping and identifier sanitization. Each
// backend supplies its own comment marker, indentation unit and
// reserved-word set.
package hdlutil

import (
	"strings"
)

// Indent prefixes every line of s with level repetitions of tab.
func Indent(s string, level int, tab string) string {
	if level <= 0 || s == "" {
		return s
	}
	prefix := strings.Repeat(tab, level)
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		if line != "" {
			lines[i] = prefix + line
		}
	}
	return strings.Join(lines, "\n")
}

// IndentLines applies Indent to each entry.
func IndentLines(lines []string, level int, tab string) []string {
	out := make([]string, len(lines))
	for i, line := range lines {
		out[i] = Indent(line, level, tab)
	}
	return out
}

// Comment prefixes every line of s with the comment marker.
func Comment(s, marker string) string {
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		if line == "" {
			lines[i] = marker
		} else {
			lines[i] = marker + " " + line
		}
	}
	return strings.Join(lines, "\n")
}

// CommentLines applies Comment to each entry.
func CommentLines(lines []string, marker string) []string {
	out := make([]string, len(lines))
	for i, line := range lines {
		out[i] = Comment(line, marker)
	}
	return out
}

// SanitizeIdent rewrites s into a form acceptable as an identifier in
// common HDLs: runes outside [A-Za-z0-9_] become underscores, runs of
// underscores collapse to one, leading and trailing underscores are
// stripped, and a name starting with a digit gets an "s" prefix. Names
// in the reserved set get an "_n" suffix. An empty result yields "s".
func SanitizeIdent(s string, reserved map[string]bool) string {
	var sb strings.Builder
	lastUnderscore := false
	for _, r := range s {
		valid := r == '_' ||
			(r >= 'a' && r <= 'z') ||
			(r >= 'A' && r <= 'Z') ||
			(r >= '0' && r <= '9')
		if !valid {
			r = '_'
		}
		if r == '_' {
			if lastUnderscore {
				continue
			}
			lastUnderscore = true
		} else {
			lastUnderscore = false
		}
		sb.WriteRune(r)
	}

	out := strings.Trim(sb.String(), "_")
	if out == "" {
		return "s"
	}
	if out[0] >= '0' && out[0] <= '9' {
		out = "s" + out
	}
	if reserved[strings.ToLower(out)] {
		out += "_n"
	}
	return out
}
