package internal

import (
	"fmt"
	"io"
)

const usage = "Usage: clog <input dir> <output dir>\n"

// Run validates that at least two positional arguments were supplied and
// echoes the first two back. args must not include the invocation name.
// The returned value is the process exit status: 1 if the usage message was
// printed, 0 otherwise.
func Run(args []string, out io.Writer) int {
	if len(args) < 2 {
		_, _ = fmt.Fprint(out, usage)
		return 1
	}

	_, _ = fmt.Fprintf(out, "input dir: %s\n", args[0])
	_, _ = fmt.Fprintf(out, "output dir: %s\n", args[1])
	return 0
}
