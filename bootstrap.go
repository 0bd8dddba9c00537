package forthcore

import (
	"bytes"
	"fmt"
)

// DefaultCoreSize mirrors libforth.c's CORE_SIZE: half the cells
// addressable by a 16-bit word count, a reasonable default for cmd/forth.
const DefaultCoreSize = (1 << 16) / 2

// bootstrapSource is the bootstrap bring-up program (spec.md §4.7 item 7):
// data, not code of the host language, carried as a byte literal and fed
// through Eval once the hand-compiled immediates and the builtin
// primitive table exist. It is transliterated word-for-word from
// _examples/original_source/libforth.c's initial_forth_program, since
// spec.md treats it as opaque and §9 calls for the exact bootstrap source
// to be preserved ("ship it as a byte literal"), with one change: `hex`
// stores its own 1 into the HEX register and takes nothing from the stack.
const bootstrapSource = `\ FORTH startup program.
: state 8 ! exit : ; immediate ' exit , 0 state exit : hex 1 9 ! ; : pwd 10 ;
: h 0 ; : r 1 ; : here h @ ; : [ immediate 0 state ; : ] 1 state ;
: :noname immediate here 2 , ] ; : if immediate ' jz , here 0 , ;
: else immediate ' j , here 0 , swap dup here swap - swap ! ;
: then immediate dup here swap - swap ! ; : 2dup over over ;
: begin immediate here ; : until immediate ' jz , here - , ;
: 0= 0 = ; : 1+ 1 + ; : 1- 1 - ; : ')' 41 ; : tab 9 emit ; : cr 10 emit ;
: .( key drop begin key dup ')' = if drop exit then emit 0 until ;
: line dup . tab dup 4 + swap begin dup @ . tab 1+ 2dup = until drop ;
: literal 2 , , ; : size [ 11 @ literal ] ;
: list swap begin line cr 2dup < until ; : allot here + h ! ;
: words pwd @ begin dup dup 1 + @ 8 rshift 255 and - size * print tab @ dup 32 < until drop cr ;
: tuck swap over ; : nip swap drop ; : rot >r swap r> swap ;
: -rot rot rot ; : ? 0= if [ find \ , ] then ; : :: [ find : , ] ;
`

// Init builds a ready-to-use Core (spec.md §4.7, §6 "init"): it allocates
// and zeroes the image, installs the registers, hand-compiles the three
// immediates (DEFINE/IMMEDIATE/COMMENT) the bootstrap program itself
// cannot do without, compiles the builtin primitive table, sets up the
// two stack pointers, then evaluates bootstrapSource to grow the rest of
// the control-flow and utility words. Core size defaults to
// DefaultCoreSize; pass WithCoreSize to override it, the same
// options-only construction gothird's New(opts ...VMOption) uses in place
// of a positional size parameter. Options are applied before the
// bootstrap runs, so WithOutput may be used to observe or seed bootstrap
// output; WithInput is withheld until afterward (see below).
func Init(opts ...Option) (*Core, error) {
	flat := flattenOptions(opts...)

	coreSize := uint64(DefaultCoreSize)
	var userInput Option = noption{}
	var rest []Option
	for _, opt := range flat {
		switch o := opt.(type) {
		case coreSizeOption:
			coreSize = uint64(o)
		case inputOption:
			userInput = o
		default:
			rest = append(rest, opt)
		}
	}

	if coreSize < MinimumCoreSize {
		return nil, fmt.Errorf("forthcore: core size %d below minimum %d", coreSize, MinimumCoreSize)
	}

	c := &Core{
		image:     make([]uint64, coreSize),
		coreSize:  coreSize,
		stackSize: coreSize / 64,
	}
	defaultOptions.apply(c)
	c.in.Set(bytes.NewReader(nil), "<init>")

	c.setPwd(sentinelPWD)
	c.store(INFO, 8)
	c.store(INFO+1, coreSize)

	c.setDic(DictionaryStart)
	w := c.dic()
	c.comma(Read) //  DIC: w    -- read in a word
	c.comma(Run)  //  DIC: w+1  -- call back into it
	c.ip = c.dic()
	c.comma(w)        // DIC: w+2 (== ip) -- recurse back to the read cell
	c.comma(c.ip - 1) // DIC: w+3         -- then the run cell

	c.compileHeader(Define, ":")
	c.compileHeader(Immediate, "immediate")
	c.compileHeader(Comment, "\\")

	for i, name := range builtinNames {
		c.compileHeader(Compile, name)
		c.comma(Read + uint64(i))
	}

	c.setRstk(c.paramStackLimit())
	c.sp = c.paramStackBase()

	// The input option is withheld until after the bootstrap source has
	// run: Eval itself drives the string input register to feed
	// bootstrapSource, and would otherwise clobber whatever real input
	// the caller asked for (spec.md §4.7 item 8, "redirect input to the
	// user-supplied source" only once bring-up is complete).
	Options(rest...).apply(c)

	if err := c.Eval(bootstrapSource); err != nil {
		return nil, fmt.Errorf("forthcore: bootstrap: %w", err)
	}

	userInput.apply(c)
	return c, nil
}
