package forthcore

// Image layout. All addresses are cell indices into Core.image, never raw
// byte offsets or host pointers -- this lets the image be grown, copied, and
// bounds-checked uniformly (see DESIGN.md, "threaded code via indices").
const (
	// DIC is the dictionary pointer register: the next free cell.
	DIC = 0
	// RSTK is the return-stack pointer register: index of the current top
	// of the return stack.
	RSTK = 1
	// STATE is 0 while interpreting, 1 while compiling.
	STATE = 8
	// HEX selects hex (nonzero) or decimal (zero) output for PNUM/PSTK.
	HEX = 9
	// PWD holds the cell index of the most recently defined word's link
	// field, or the terminator sentinel.
	PWD = 10
	// INFO and INFO+1 report the cell size (in bytes, always 8 here) and
	// the total core size, so that running FORTH code can introspect it.
	INFO = 11

	// literalPush is the address a compiled numeric literal's push cell
	// points the inner loop at: one of the permanently-unused register-gap
	// cells (2-7), always zero, so loading it always dispatches Push. It is
	// never a live register and is never written to other than at Init.
	// bootstrapSource's own `literal` word (`: literal 2 , , ;`) uses this
	// same cell for the same reason.
	literalPush = 2

	// StringOffset is where the scratch word buffer lives.
	StringOffset = 32
	// MaxWordLength bounds a single token, including its NUL terminator.
	MaxWordLength = 32
	// DictionaryStart is the first cell available for word headers.
	DictionaryStart = StringOffset + MaxWordLength

	// wordLengthShift extracts the name length (in cells) from a code
	// field cell: (length << wordLengthShift) | hiddenBit | opcode.
	wordLengthShift = 8
	// hiddenBit marks a word invisible to Find.
	hiddenBit = 0x80
	// instructionMask isolates the primitive opcode from a code field.
	instructionMask = 0x7f

	// sentinelPWD is the PWD value meaning "no words defined yet".
	sentinelPWD = 1

	// BlockSize is the fixed transfer size of the block I/O adapter.
	BlockSize = 1024

	// MinimumCoreSize is the smallest core Init will accept: it must fit
	// the registers, string buffer, the hand-compiled builtin headers and
	// every word bootstrapSource defines, below the two stack regions.
	MinimumCoreSize = 2048
)

// wordLength decodes the name length, in cells, from a word's code field.
func wordLength(codeField uint64) uint64 {
	return (codeField >> wordLengthShift) & 0xff
}

// wordHidden reports whether a word's code field marks it hidden.
func wordHidden(codeField uint64) bool {
	return codeField&hiddenBit != 0
}

// opcode isolates the primitive opcode from a code field cell.
func opcode(codeField uint64) uint64 {
	return codeField & instructionMask
}
