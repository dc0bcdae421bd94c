package main

import "github.com/unkn0wn-root/textwrap/internal/errdef"

func usageErr(format string, args ...any) error {
	return errdef.New(errdef.CodeUsage, format, args...)
}
