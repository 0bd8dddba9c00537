package forthcore_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"

	"forthcore"
)

func newCore(t *testing.T) (*forthcore.Core, *bytes.Buffer) {
	t.Helper()
	var out bytes.Buffer
	c, err := forthcore.Init(forthcore.WithOutput(&out))
	require.NoError(t, err)
	t.Cleanup(func() { c.Close() })
	return c, &out
}

// Test_eval_arithmetic covers spec.md §8 scenario 1.
func Test_eval_arithmetic(t *testing.T) {
	c, out := newCore(t)
	require.NoError(t, c.Eval("2 3 + ."))
	require.Contains(t, out.String(), "5")
}

// Test_eval_hexMode covers spec.md §8 scenario 2.
func Test_eval_hexMode(t *testing.T) {
	c, out := newCore(t)
	require.NoError(t, c.Eval("hex 255 ."))
	require.Contains(t, out.String(), "FF")
}

// Test_eval_definitionAndReuse covers spec.md §8 scenario 3.
func Test_eval_definitionAndReuse(t *testing.T) {
	c, out := newCore(t)
	require.NoError(t, c.Eval(": sq dup * ; 7 sq ."))
	require.Contains(t, out.String(), "49")
}

// Test_eval_controlFlow covers spec.md §8 scenario 4.
func Test_eval_controlFlow(t *testing.T) {
	for _, tc := range []struct {
		cond string
		want string
	}{
		{"0", "2"},
		{"1", "1"},
	} {
		t.Run(tc.cond, func(t *testing.T) {
			c, out := newCore(t)
			prog := ": t " + tc.cond + " if 1 else 2 then . ; t"
			require.NoError(t, c.Eval(prog))
			require.Contains(t, out.String(), tc.want)
		})
	}
}

// Test_eval_loop covers spec.md §8 scenario 5.
func Test_eval_loop(t *testing.T) {
	c, out := newCore(t)
	require.NoError(t, c.Eval(": cd 5 begin dup . 1 - dup 0 = until drop ; cd"))
	require.Contains(t, out.String(), "54321")
}

// Test_eval_immediateProtocol covers spec.md §8 scenario 6: x runs at
// compile time while y is being defined, pushing 42 and compiling nothing
// into y; calling y afterward prints nothing and 42 is still on top.
func Test_eval_immediateProtocol(t *testing.T) {
	c, out := newCore(t)
	before := c.StackPosition()
	require.NoError(t, c.Eval(": x immediate 42 ; : y x ;"))
	require.Equal(t, before+1, c.StackPosition(), "x's 42 must land on the stack exactly once")

	out.Reset()
	require.NoError(t, c.Eval("y"))
	require.Empty(t, out.String())
	require.Equal(t, uint64(42), c.Pop())
}

// Test_eval_unknownWord covers the recoverable error tier (spec.md §7
// tier 3): an unknown, non-numeric token prints a diagnostic and the READ
// loop continues rather than aborting the Core.
func Test_eval_unknownWord(t *testing.T) {
	c, errOut := func(t *testing.T) (*forthcore.Core, *bytes.Buffer) {
		t.Helper()
		var out, errBuf bytes.Buffer
		c, err := forthcore.Init(forthcore.WithOutput(&out), forthcore.WithErrorOutput(&errBuf))
		require.NoError(t, err)
		t.Cleanup(func() { c.Close() })
		return c, &errBuf
	}(t)

	require.NoError(t, c.Eval("bogus-word 1 2 +"))
	require.False(t, c.Invalid())
	require.NotEmpty(t, errOut.String())
	require.Equal(t, uint64(3), c.Pop())
}

// Test_eval_persistentInvalid covers spec.md §8's invariant: once a run
// returns non-zero, the Core is permanently invalid and every later Run
// call fails without side effects.
func Test_eval_persistentInvalid(t *testing.T) {
	c, _ := newCore(t)

	// an image access past the end of the core is a bounds-check failure,
	// the only way to reach the Core from compiled FORTH code without
	// relying on an internal package.
	require.Error(t, c.Eval("99999999999 @"))
	require.True(t, c.Invalid())

	err := c.Eval("1 2 +")
	require.Equal(t, forthcore.ErrInvalid, err)
}
