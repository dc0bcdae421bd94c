package fillcmd

const (
	stdinName  = "-"
	tempPrefix = ".textwrap-*"
	diffOld    = "a/"
	diffNew    = "b/"
)

const actionRewrite = "rewrite"
