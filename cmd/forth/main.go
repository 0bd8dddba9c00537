// Command forth is the thin external adapter around forthcore.Core
// (spec.md §1 "out of scope... the command-line entry point", §6
// "Command-line driver"): argument parsing, shebang stripping, and the
// -d core-dump-on-exit behavior, none of which touch the VM's semantics.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"

	"forthcore"
	"forthcore/internal/logio"
)

const coreFile = "forth.core"

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	fs := flag.NewFlagSet("forth", flag.ContinueOnError)
	dump := fs.Bool("d", false, "write a core dump to forth.core on normal exit")
	trace := fs.Bool("trace", false, "enable opcode trace logging to stderr")
	if err := fs.Parse(args); err != nil {
		return -1
	}

	log := logio.Logger{}
	log.SetOutput(os.Stderr)

	opts := []forthcore.Option{
		forthcore.WithOutput(os.Stdout),
		forthcore.WithErrorOutput(os.Stderr),
		forthcore.WithBlockStore(forthcore.DirBlockStore{Dir: "."}),
	}
	if *trace {
		tracef := log.Leveledf("TRACE")
		opts = append(opts, forthcore.WithLogf(func(mark, mess string, args ...interface{}) {
			tracef("%s "+mess, append([]interface{}{mark}, args...)...)
		}))
	}

	c, err := forthcore.Init(opts...)
	if err != nil {
		fmt.Fprintf(os.Stderr, "forth: %v\n", err)
		return -1
	}
	defer c.Close()

	files := fs.Args()
	rval := 0
	if len(files) == 0 {
		c.SetFileInput(os.Stdin, "<stdin>")
		rval = runOnce(c)
	} else {
		for _, name := range files {
			if rval = runFile(c, name); rval != 0 {
				break
			}
		}
	}

	if *dump {
		coreOut, derr := os.Create(coreFile)
		if derr != nil {
			fmt.Fprintf(os.Stderr, "forth: %v\n", derr)
			return -1
		}
		defer coreOut.Close()
		if derr := c.DumpCore(coreOut); derr != nil {
			fmt.Fprintf(os.Stderr, "forth: %v\n", derr)
			return -1
		}
	}

	return rval
}

// runFile opens name, strips a leading shebang line if present, and runs
// it through the Core (spec.md §6: "strip an optional shebang line
// (#! until newline), then run").
func runFile(c *forthcore.Core, name string) int {
	f, err := os.Open(name)
	if err != nil {
		fmt.Fprintf(os.Stderr, "forth: %v\n", err)
		return -1
	}
	defer f.Close()

	br := bufio.NewReader(f)
	if first, ferr := br.Peek(2); ferr == nil && string(first) == "#!" {
		if _, ferr := br.ReadString('\n'); ferr != nil {
			return 0
		}
	}

	c.SetFileInput(br, name)
	return runOnce(c)
}

func runOnce(c *forthcore.Core) int {
	if err := c.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "forth: %v\n", err)
		return -1
	}
	return 0
}
