package main

import (
	"context"
	"fmt"
	"os"

	"github.com/unkn0wn-root/textwrap/internal/errdef"
)

var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

func main() {
	a := newApp(os.Stdin, os.Stdout, os.Stderr, os.Getenv)
	a.termWidth = terminalWidth
	err := newRootCmd(a).ExecuteContext(context.Background())
	if err == nil {
		return
	}
	fmt.Fprintf(os.Stderr, "Error: %s\n", err)
	os.Exit(errdef.ExitCode(err))
}
