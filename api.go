package forthcore

import (
	"errors"
	"io"
	"strings"
)

// ErrInvalid is returned by Run (and so by Eval) once a Core has hit a
// fatal error: spec.md §8, "every later run also returns non-zero without
// side effects."
var ErrInvalid = errors.New("forthcore: core is invalid")

// SetFileInput switches the active input source to r (spec.md §6
// set_file_input). name is used only for diagnostics.
func (c *Core) SetFileInput(r io.Reader, name string) {
	WithInput(r, name).apply(c)
}

// SetStringInput switches the active input source to an in-memory string,
// resetting the cursor (spec.md §6 set_string_input).
func (c *Core) SetStringInput(s string) {
	WithInput(strings.NewReader(s), "<string>").apply(c)
}

// SetFileOutput switches the output stream (spec.md §6 set_file_output).
func (c *Core) SetFileOutput(w io.Writer) {
	WithOutput(w).apply(c)
}

// Eval sets s as the string input, then Runs (spec.md §6 eval).
func (c *Core) Eval(s string) error {
	c.SetStringInput(s)
	return c.Run()
}

// Push pushes a value directly onto the parameter stack from the host
// (spec.md §6 push).
func (c *Core) Push(v uint64) {
	c.dpush(v)
}

// Pop pops and returns the parameter stack's top value (spec.md §6 pop).
func (c *Core) Pop() uint64 {
	return c.dpop()
}

// StackPosition reports the raw cell index of the parameter stack pointer
// (spec.md §6 stack_position; libforth.c's forth_stack_position returns
// `o->S - o->m`, the same absolute index rather than a depth relative to
// the reserved stack region).
func (c *Core) StackPosition() uint64 {
	return c.sp
}
