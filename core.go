// Package forthcore implements the core of a minimal FORTH environment: a
// stack-oriented, threaded-code virtual machine with an integrated compiler,
// dictionary, and outer interpreter.
//
// The command-line entry point lives in cmd/forth; it is a thin adapter
// around the Core type exported here.
package forthcore

import (
	"io"

	"forthcore/internal/flushio"
	"forthcore/internal/lineinput"
)

// Core is the single flat memory image plus the handful of fields that sit
// outside it: the cached top-of-stack, the parameter-stack pointer, and the
// instruction pointer. Everything else -- the dictionary, the return stack,
// the register file -- lives inside image, addressed by cell index.
type Core struct {
	logging

	image []uint64

	// top is the cached top-of-stack cell (spec.md §9, "single cached
	// top-of-stack": kept for fidelity, and because it halves memory
	// traffic in the inner loop for every binary operator).
	top uint64
	// sp indexes the cell just above the current top of the parameter
	// stack; the stack grows upward, and top is logically above *sp.
	sp uint64
	// ip is the instruction pointer: a cell index fetched and advanced by
	// the inner interpreter.
	ip uint64

	in   lineinput.Input
	out  flushio.WriteFlusher
	errw io.Writer

	blocks BlockStore

	closers []io.Closer

	// invalid is sticky: once a fatal error sets it, every later Run call
	// fails immediately without touching the image again.
	invalid bool

	coreSize  uint64
	stackSize uint64
}

// Close releases any resources (open files) the Core has accumulated via
// WithInput/WithOutput options, in reverse acquisition order.
func (c *Core) Close() error {
	var err error
	for i := len(c.closers) - 1; i >= 0; i-- {
		if cerr := c.closers[i].Close(); err == nil {
			err = cerr
		}
	}
	c.closers = nil
	return err
}

// Invalid reports whether the Core has hit a fatal error and is permanently
// unusable.
func (c *Core) Invalid() bool { return c.invalid }

// CoreSize returns the number of cells in the image.
func (c *Core) CoreSize() uint64 { return c.coreSize }
