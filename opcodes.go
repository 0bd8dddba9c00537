package forthcore

//go:generate go run scripts/gen_opnames.go opcodes.go opnames_string.go

// Primitive opcodes dispatched by the inner interpreter (see Run, in
// inner.go). The ordinal of every primitive is fixed by the hand-compiled
// immediates (Define, Immediate, Comment) plus the builtinNames table below:
// reordering either breaks compiled-image compatibility (spec.md §9,
// "Opcode table ordering").
const (
	Push      uint64 = iota // <internal>  push next prog cell as a literal
	Compile                 // <internal>  append program counter to the dictionary
	Run                     // <internal>  call through to a word's body
	Define                  // :           compile a new word header
	Immediate               // immediate   mark the latest word to run at compile time
	Comment                 // \           skip to end of line
	Read                    // read        outer interpreter step
	Load                    // @           fetch
	Store                   // !           store
	Sub                     // -
	Add                     // +
	And                     // and
	Or                      // or
	Xor                     // xor
	Inv                     // invert
	Shl                     // lshift
	Shr                     // rshift
	Mul                     // *
	Less                    // <
	Exit                    // exit
	Emit                    // emit
	Key                     // key
	FromR                   // r>
	ToR                     // >r
	Jmp                     // j
	Jmpz                    // jz
	Pnum                    // .
	Quote                   // '           push next prog cell (used by ;, if, else, until)
	Comma                   // ,
	Equal                   // =
	Swap                    // swap
	Dup                     // dup
	Drop                    // drop
	Over                    // over
	Tail                    // tail
	Bsave                   // save
	Bload                   // load
	Find                    // find
	Print                   // print
	Pstk                    // .s
	numPrimitives           // sentinel: count of primitives, also the first user code value
)

// builtinNames gives the word, in order, compiled by Init for each primitive
// from Read through Pstk (DEFINE/IMMEDIATE/COMMENT are compiled by hand,
// ahead of this table, as the three immediates the bootstrap program itself
// cannot do without). This exact order is ground truth lifted from
// _examples/original_source/libforth.c's `names[]` table.
var builtinNames = [...]string{
	"read", "@", "!", "-", "+", "and", "or", "xor", "invert",
	"lshift", "rshift", "*", "<", "exit", "emit", "key", "r>", ">r", "j", "jz",
	".", "'", ",", "=", "swap", "dup", "drop", "over", "tail", "save", "load",
	"find", "print", ".s",
}
