package wrap

import (
	"strings"

	"github.com/unkn0wn-root/textwrap/internal/util"
)

// Indent prefixes every line of s with prefix. Blank lines get prefix
// without its trailing whitespace. A trailing newline is kept.
func Indent(s, prefix string) string {
	if s == "" {
		return ""
	}
	trimmed := util.TrimRightSpace(prefix)
	var b strings.Builder
	b.Grow(len(s) + len(prefix)*(strings.Count(s, "\n")+1))
	i := 0
	for line := range strings.SplitSeq(strings.TrimSuffix(s, "\n"), "\n") {
		if i > 0 {
			b.WriteByte('\n')
		}
		if util.IsBlank(line) {
			b.WriteString(trimmed)
		} else {
			b.WriteString(prefix)
		}
		b.WriteString(line)
		i++
	}
	if strings.HasSuffix(s, "\n") {
		b.WriteByte('\n')
	}
	return b.String()
}

/*
Dedent removes the longest whitespace prefix shared by every non-blank
line of s. Blank lines do not take part in the search and come out
empty. Tabs and spaces are not interchangeable: "\t" and "    " have no
common prefix. "\r\n" line endings come out as "\n".
*/
func Dedent(s string) string {
	lines := splitLines(s)
	prefix := ""
	found := false
	for _, l := range lines {
		if util.IsBlank(l) {
			continue
		}
		lead := util.LeadingSpace(l)
		if !found {
			prefix, found = lead, true
			continue
		}
		prefix = util.CommonPrefix(prefix, lead)
	}

	var b strings.Builder
	b.Grow(len(s))
	for i, l := range lines {
		if i > 0 {
			b.WriteByte('\n')
		}
		if !util.IsBlank(l) {
			b.WriteString(l[len(prefix):])
		}
	}
	if strings.HasSuffix(s, "\n") {
		b.WriteByte('\n')
	}
	return b.String()
}

// splitLines splits s on "\n", dropping one trailing "\r" per line and
// a final empty line.
func splitLines(s string) []string {
	if s == "" {
		return nil
	}
	lines := strings.Split(strings.TrimSuffix(s, "\n"), "\n")
	for i, l := range lines {
		lines[i] = strings.TrimSuffix(l, "\r")
	}
	return lines
}
