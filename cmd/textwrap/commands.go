package main

import (
	"fmt"
	"strings"

	"github.com/MakeNowJust/heredoc"
	"github.com/spf13/cobra"

	"github.com/unkn0wn-root/textwrap/internal/util"
	"github.com/unkn0wn-root/textwrap/internal/wrap"
)

func newFillCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "fill [file...]",
		Short: "Wrap every line longer than the width (default)",
		Args:  cobra.ArbitraryArgs,
		RunE:  a.runFill,
	}
}

func (a *app) runFill(cmd *cobra.Command, files []string) error {
	opts, err := a.options(cmd)
	if err != nil {
		return err
	}
	return a.run(cmd, files, func(s string) string {
		return keepEnding(s, opts.LineEnding.String(), func(text string) string {
			return wrap.Fill(text, opts)
		})
	})
}

// keepEnding applies f to s without its final line ending and puts the
// ending back, so the empty line after it is never indented.
func keepEnding(s, end string, f func(string) string) string {
	text, had := strings.CutSuffix(s, end)
	out := f(text)
	if had {
		out += end
	}
	return out
}

func newRefillCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "refill [file...]",
		Short: "Reflow already wrapped paragraphs to a new width",
		Long: heredoc.Doc(`
			refill joins each paragraph (lines up to a blank line) and wraps it
			again. Indents made of spaces and the characters -+*>#/ are detected
			per paragraph and kept, so quoted mail, comments and bullet lists
			survive; the indent flags are ignored.
		`),
		Args: cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, files []string) error {
			opts, err := a.options(cmd)
			if err != nil {
				return err
			}
			return a.run(cmd, files, func(s string) string {
				return byParagraph(s, func(p string) string {
					return wrap.Refill(p, opts)
				})
			})
		},
	}
}

func newUnfillCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "unfill [file...]",
		Short: "Join wrapped paragraphs into single lines",
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, files []string) error {
			return a.run(cmd, files, func(s string) string {
				return byParagraph(s, func(p string) string {
					text, _ := wrap.Unfill(p)
					return text
				})
			})
		},
	}
}

func newDedentCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "dedent [file...]",
		Short: "Remove the indentation shared by all lines",
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, files []string) error {
			return a.run(cmd, files, wrap.Dedent)
		},
	}
}

func newIndentCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "indent [file...]",
		Short: "Prefix every line",
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, files []string) error {
			prefix := a.f.prefix
			return a.run(cmd, files, func(s string) string {
				return wrap.Indent(s, prefix)
			})
		},
	}
	cmd.Flags().StringVar(&a.f.prefix, "prefix", "  ", "text put before each line; blank lines get it without trailing spaces")
	return cmd
}

func newColumnsCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "columns [file...]",
		Short: "Lay text out in newspaper-style columns",
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, files []string) error {
			opts, err := a.options(cmd)
			if err != nil {
				return err
			}
			if a.f.columns < 1 {
				return usageErr("--columns must be at least 1, got %d", a.f.columns)
			}
			return a.run(cmd, files, func(s string) string {
				return columns(s, opts, a.f.columns, a.f.leftGap, a.f.middleGap, a.f.rightGap)
			})
		},
	}
	fs := cmd.Flags()
	fs.IntVar(&a.f.columns, "columns", 2, "number of columns")
	fs.StringVar(&a.f.leftGap, "left-gap", "", "text before the first column")
	fs.StringVar(&a.f.middleGap, "middle-gap", "  ", "text between columns")
	fs.StringVar(&a.f.rightGap, "right-gap", "", "text after the last column")
	return cmd
}

func newVersionCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		RunE: func(*cobra.Command, []string) error {
			optimal := "off"
			if wrap.OptimalFitAvailable() {
				optimal = "on"
			}
			_, err := fmt.Fprintf(a.stdout, "textwrap %s\n  commit: %s\n  built:  %s\n  optimal-fit: %s\n",
				version, commit, date, optimal)
			return err
		},
	}
}

func columns(s string, opts wrap.Options, n int, left, middle, right string) string {
	end := opts.LineEnding.String()
	return keepEnding(s, end, func(text string) string {
		return strings.Join(wrap.WrapColumns(text, n, opts, left, middle, right), end)
	})
}

// byParagraph applies f to every run of non-blank lines in s. Blank
// lines are copied through.
func byParagraph(s string, f func(string) string) string {
	var b, para strings.Builder
	b.Grow(len(s))
	flush := func() {
		if para.Len() > 0 {
			b.WriteString(f(para.String()))
			para.Reset()
		}
	}
	for line := range strings.SplitAfterSeq(s, "\n") {
		if util.IsBlank(line) {
			flush()
			b.WriteString(line)
			continue
		}
		para.WriteString(line)
	}
	flush()
	return b.String()
}
