// Command gen_opnames regenerates opnames_string.go from the iota block in
// opcodes.go (see //go:generate in that file), the same source-scanning,
// errgroup-piped-through-goimports shape as gothird's
// scripts/gen_vm_expects.go: a dev-time tool, never part of the build graph,
// kept honest against its source by running off the real file instead of a
// hand-maintained copy.
package main

import (
	"bufio"
	"bytes"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/exec"
	"regexp"
	"time"

	"golang.org/x/net/context"
	"golang.org/x/sync/errgroup"
)

type namedReader interface {
	io.ReadCloser
	Name() string
}

var (
	in  namedReader    = os.Stdin
	out io.WriteCloser = os.Stdout
)

func parseFlags() {
	flag.Parse()

	args := flag.Args()

	if len(args) > 0 {
		name := args[0]
		f, err := os.Open(name)
		if err != nil {
			log.Fatalf("failed to open %v: %v", name, err)
		}
		args = args[1:]
		in = f
	}

	if len(args) > 0 {
		name := args[0]
		f, err := os.Create(name)
		if err != nil {
			log.Fatalf("failed to create %v: %v", name, err)
		}
		args = args[1:]
		out = f
	}
}

func main() {
	ctx := context.Background()
	parseFlags()

	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	eg, ctx := errgroup.WithContext(ctx)

	ready := make(chan struct{})

	eg.Go(func() error {
		gofmt := exec.CommandContext(ctx, "goimports")
		fmtPipe, err := gofmt.StdinPipe()
		if err != nil {
			return err
		}

		defer out.Close()
		gofmt.Stdout = out
		gofmt.Stderr = os.Stderr

		out = fmtPipe

		close(ready)
		if err := gofmt.Run(); err != nil {
			return fmt.Errorf("gofmt run failed: %w", err)
		}
		return nil
	})

	eg.Go(func() (rerr error) {
		select {
		case <-ctx.Done():
		case <-ready:
		}

		defer func() {
			if cerr := in.Close(); rerr == nil {
				rerr = cerr
			}
			if cerr := out.Close(); rerr == nil {
				rerr = cerr
			}
		}()

		return run(ctx)
	})

	if err := eg.Wait(); err != nil {
		log.Fatalln(err)
	}
}

// constLine matches one identifier line inside the opcode iota block, e.g.
// "	Push      uint64 = iota // comment" or a bare "	Compile".
var constLine = regexp.MustCompile(`^\s*([A-Z][A-Za-z0-9]*)\s*(?:uint64\s*=\s*iota)?\s*(?://.*)?$`)

func run(ctx context.Context) error {
	var names []string

	sc := bufio.NewScanner(in)
	inBlock := false
	for sc.Scan() {
		line := sc.Text()
		switch {
		case bytes.Contains([]byte(line), []byte("Primitive opcodes dispatched")):
			inBlock = true
		case !inBlock:
			continue
		case bytes.Equal(bytes.TrimSpace([]byte(line)), []byte(")")):
			inBlock = false
		case bytes.Contains([]byte(line), []byte("numPrimitives")):
			inBlock = false
		default:
			if m := constLine.FindStringSubmatch(line); m != nil {
				names = append(names, m[1])
			}
		}
		if err := ctx.Err(); err != nil {
			return err
		}
	}
	if err := sc.Err(); err != nil {
		return err
	}

	var buf bytes.Buffer
	buf.WriteString("package forthcore\n\n")
	buf.WriteString("// @generated from ")
	buf.WriteString(in.Name())
	buf.WriteString(" by scripts/gen_opnames.go; do not edit by hand.\n\n")
	buf.WriteString("//go:generate go run scripts/gen_opnames.go opcodes.go opnames_string.go\n\n")
	buf.WriteString("var opNames = [...]string{\n")
	for _, name := range names {
		fmt.Fprintf(&buf, "\t%q,\n", name)
	}
	buf.WriteString("}\n\n")
	buf.WriteString("// opName returns the primitive name for a trace-friendly diagnostic, or\n")
	buf.WriteString("// \"user\" for anything past the builtin table (a user-defined call cell).\n")
	buf.WriteString("func opName(op uint64) string {\n")
	buf.WriteString("\tif int(op) < len(opNames) {\n")
	buf.WriteString("\t\treturn opNames[op]\n")
	buf.WriteString("\t}\n")
	buf.WriteString("\treturn \"user\"\n")
	buf.WriteString("}\n")

	_, err := buf.WriteTo(out)
	return err
}
