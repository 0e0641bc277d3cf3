// Package lexer handles the preamble every Mermaid diagram dialect shares:
// blank lines, "%%" comments, "%%{ init: ... }%%" directives, and the
// title/accTitle/accDescr declarations that may appear immediately after a
// diagram's header line. Dialect parsers consume preamble lines through
// this package instead of re-implementing the same handful of regexes each
// time, the way the teacher repo's per-dialect parsers used to.
package lexer

import (
	"regexp"
	"strings"

	"github.com/hallvard/mmdast/ast"
	"github.com/hallvard/mmdast/errs"
)

var (
	commentPattern    = regexp.MustCompile(`^\s*%%(?:\{.*\}%%)?\s*$|^\s*%%[^{].*$`)
	directivePattern  = regexp.MustCompile(`^\s*%%\{.*\}%%\s*$`)
	titlePattern      = regexp.MustCompile(`^\s*title\s*:?\s*(.*)$`)
	accTitlePattern   = regexp.MustCompile(`^\s*accTitle\s*:\s*(.*)$`)
	accDescrLine      = regexp.MustCompile(`^\s*accDescr\s*:\s*(.*)$`)
	accDescrBlockOpen = regexp.MustCompile(`^\s*accDescr\s*\{\s*$`)
)

// Line is a single logical line of diagram body with its comments and
// preamble already recognised: Consumed is true when ReadPreamble already
// folded it into the Preamble and the caller should skip it.
type Line struct {
	Text     string
	Number   int // 1-indexed
	Consumed bool
}

// IsComment reports whether a raw source line is a "%%" comment or a
// "%%{...}%%" directive. Directives are treated as comments: this module
// has no renderer to configure, so init directives are preserved only as
// inert text, never interpreted.
func IsComment(line string) bool {
	trimmed := strings.TrimRight(line, "\r")
	return commentPattern.MatchString(trimmed) || directivePattern.MatchString(trimmed)
}

// ReadPreamble scans lines starting at startIdx for title/accTitle/accDescr
// declarations and blank or comment lines, stopping at the first line that
// is none of those. It returns the populated Preamble, the index of the
// first unconsumed line, and an error if an accDescr block was opened but
// never closed.
func ReadPreamble(lines []string, startIdx int) (ast.Preamble, int, error) {
	var p ast.Preamble
	i := startIdx
	for i < len(lines) {
		raw := lines[i]
		trimmed := strings.TrimSpace(raw)

		if trimmed == "" || IsComment(raw) {
			i++
			continue
		}
		if m := titlePattern.FindStringSubmatch(trimmed); m != nil && looksLikeTitle(trimmed) {
			p.Title = strings.TrimSpace(m[1])
			p.HasTitle = true
			i++
			continue
		}
		if m := accTitlePattern.FindStringSubmatch(trimmed); m != nil {
			p.Accessibility.Title = strings.TrimSpace(m[1])
			p.Accessibility.HasTitle = true
			i++
			continue
		}
		if m := accDescrLine.FindStringSubmatch(trimmed); m != nil {
			p.Accessibility.Description = strings.TrimSpace(m[1])
			p.Accessibility.HasDescription = true
			i++
			continue
		}
		if accDescrBlockOpen.MatchString(trimmed) {
			var sb strings.Builder
			j := i + 1
			closed := false
			for j < len(lines) {
				bodyLine := strings.TrimSpace(lines[j])
				if bodyLine == "}" {
					closed = true
					break
				}
				if sb.Len() > 0 {
					sb.WriteByte('\n')
				}
				sb.WriteString(bodyLine)
				j++
			}
			if !closed {
				return p, i, errs.New(errs.UnterminatedAccDescr, i+1, 1, trimmed, "accDescr { ... } block never closed with }")
			}
			p.Accessibility.Description = sb.String()
			p.Accessibility.HasDescription = true
			i = j + 1
			continue
		}
		break
	}
	return p, i, nil
}

// looksLikeTitle guards against dialect keywords that happen to start with
// "title" as a substring from being misread (none currently do, but this
// keeps the regex honest about requiring the literal "title" keyword).
func looksLikeTitle(trimmed string) bool {
	rest, ok := strings.CutPrefix(trimmed, "title")
	return ok && (rest == "" || rest[0] == ' ' || rest[0] == '\t' || rest[0] == ':')
}

// StripComment removes a trailing "%% comment" from an otherwise
// meaningful line, used by dialect parsers that allow inline trailing
// comments on statement lines.
func StripComment(line string) string {
	idx := strings.Index(line, "%%")
	if idx < 0 {
		return line
	}
	return strings.TrimRight(line[:idx], " \t")
}
