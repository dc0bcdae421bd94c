package fillcmd

import (
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

type diffStyles struct {
	add, del, hunk, meta lipgloss.Style
}

// newDiffStyles renders for w with plain ANSI colors; the caller has
// already decided that w wants color.
func newDiffStyles(w io.Writer) diffStyles {
	r := lipgloss.NewRenderer(w)
	r.SetColorProfile(termenv.ANSI)
	base := r.NewStyle().TabWidth(lipgloss.NoTabConversion)
	return diffStyles{
		add:  base.Foreground(lipgloss.Color("#44C25B")),
		del:  base.Foreground(lipgloss.Color("#F25F5C")),
		hunk: base.Foreground(lipgloss.Color("#7D56F4")).Bold(true),
		meta: base.Foreground(lipgloss.Color("#A6A1BB")).Italic(true),
	}
}

func (s diffStyles) colorize(diff string) string {
	var b strings.Builder
	b.Grow(len(diff) * 2)
	for line := range strings.SplitAfterSeq(diff, "\n") {
		text, nl := strings.CutSuffix(line, "\n")
		switch {
		case strings.HasPrefix(text, "+++") || strings.HasPrefix(text, "---"):
			text = s.meta.Render(text)
		case strings.HasPrefix(text, "@@"):
			text = s.hunk.Render(text)
		case strings.HasPrefix(text, "+"):
			text = s.add.Render(text)
		case strings.HasPrefix(text, "-"):
			text = s.del.Render(text)
		}
		b.WriteString(text)
		if nl {
			b.WriteByte('\n')
		}
	}
	return b.String()
}
