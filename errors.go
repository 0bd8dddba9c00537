package forthcore

import (
	"fmt"
)

// fatalError marks a non-recoverable VM condition: a bounds-check failure or
// an illegal opcode. halt panics with one of these; Run recovers it at the
// top level, sets Core.invalid, and returns it as an error.
//
// This is the re-architecture spec.md §9 calls for in place of the C
// original's setjmp/longjmp: "a tagged result returned from the dispatch
// step... equivalently, a stack-unwinding mechanism that guarantees cleanup
// is acceptable." Go's panic/recover is exactly that stack-unwinding
// mechanism, used synchronously (no goroutine) since spec.md §5 is explicit
// that the core is single-threaded.
type fatalError struct{ error }

func (err fatalError) Error() string  { return fmt.Sprintf("fatal: %v", err.error) }
func (err fatalError) Unwrap() error  { return err.error }

func (c *Core) halt(err error) {
	c.trace("#", "fatal: %v", err)
	panic(fatalError{err})
}

type boundsError struct {
	addr uint64
	size uint64
}

func (err boundsError) Error() string {
	return fmt.Sprintf("bounds check failed: %v >= %v", err.addr, err.size)
}

type illegalOpError uint64

func (err illegalOpError) Error() string {
	return fmt.Sprintf("illegal instruction %v", uint64(err))
}

type notAWordError string

func (err notAWordError) Error() string { return fmt.Sprintf("%s is not a word", string(err)) }

type stackError struct{ which, what string }

func (err stackError) Error() string { return fmt.Sprintf("%s stack %s", err.which, err.what) }

// logging is a small leveled tracer, silent unless a caller installs logf via
// WithLogf. It is adapted from gothird's internal core.go/internals.go
// "logging" type, trimmed to a single trace method that formats a message
// and hands it, with its mark, to logf.
type logging struct {
	logf func(mark, mess string, args ...interface{})
}

func (c *Core) trace(mark, mess string, args ...interface{}) {
	if c.logf == nil {
		return
	}
	if len(args) > 0 {
		mess = fmt.Sprintf(mess, args...)
	}
	c.logf(mark, mess)
}
