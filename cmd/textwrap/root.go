package main

import (
	"github.com/MakeNowJust/heredoc"
	"github.com/spf13/cobra"

	"github.com/unkn0wn-root/textwrap/internal/errdef"
)

func newRootCmd(a *app) *cobra.Command {
	root := &cobra.Command{
		Use:   "textwrap [flags] [file...]",
		Short: "Wrap, fill and reflow plain text",
		Long: heredoc.Doc(`
			textwrap wraps text to a width measured in terminal columns.

			Without a subcommand it fills every input: each line longer than
			the width is broken between words, hyphenating where allowed.
			Files are processed concurrently and printed in order; with no
			files, standard input is read.

			Settings come from, in increasing priority: the terminal width,
			config.toml or config.yaml in the config directory (or --config),
			TEXTWRAP_* environment variables, and flags or --set key=value.
		`),
		Example: heredoc.Doc(`
			textwrap -w 72 README.txt
			git log -1 --format=%B | textwrap -w 50 --indent '    '
			textwrap refill -i --algorithm first-fit notes/*.txt
			textwrap --set penalties.nline=500 --diff CHANGELOG
		`),
		Args:          cobra.ArbitraryArgs,
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRun: func(*cobra.Command, []string) {
			a.setupLogger()
		},
		RunE: a.runFill,
	}
	root.SetIn(a.stdin)
	root.SetOut(a.stdout)
	root.SetErr(a.stderr)
	root.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return errdef.Wrap(errdef.CodeUsage, err, "")
	})
	a.bindPersistent(root)

	root.AddCommand(
		newFillCmd(a),
		newRefillCmd(a),
		newUnfillCmd(a),
		newDedentCmd(a),
		newIndentCmd(a),
		newColumnsCmd(a),
		newVersionCmd(a),
	)
	return root
}
