package forthcore

// ck bounds-checks a cell index, halting the Core on failure. Every image
// access funnels through here or through load/store, which call it --
// spec.md §4.5: "All indices used to read or write the image are
// bounds-checked; a failed check sets invalid and aborts to the top of run."
func (c *Core) ck(addr uint64) uint64 {
	if addr >= c.coreSize {
		c.halt(boundsError{addr, c.coreSize})
	}
	return addr
}

// load reads a cell from the image.
func (c *Core) load(addr uint64) uint64 { return c.image[c.ck(addr)] }

// store writes a cell into the image.
func (c *Core) store(addr uint64, val uint64) { c.image[c.ck(addr)] = val }

// fetchAndAdvance reads the cell at *addr and increments it, the pattern
// used for both the instruction pointer and the dictionary pointer.
func (c *Core) fetchAndAdvance(addr *uint64) uint64 {
	v := c.load(*addr)
	*addr++
	return v
}

// loadIP fetches image[ip] and advances ip -- used to step through threaded
// code and to read inline literals (PUSH/QUOTE operands, JMP/JMPZ offsets).
func (c *Core) loadIP() uint64 { return c.fetchAndAdvance(&c.ip) }

// --- register accessors (image cells at well-known low offsets) ---

func (c *Core) dic() uint64      { return c.load(DIC) }
func (c *Core) setDic(v uint64)  { c.store(DIC, v) }
func (c *Core) rstk() uint64     { return c.load(RSTK) }
func (c *Core) setRstk(v uint64) { c.store(RSTK, v) }
func (c *Core) state() uint64    { return c.load(STATE) }
func (c *Core) hexOut() bool     { return c.load(HEX) != 0 }
func (c *Core) pwd() uint64      { return c.load(PWD) }
func (c *Core) setPwd(v uint64)  { c.store(PWD, v) }

// --- parameter (data) stack ---
//
// top is cached outside the image; sp indexes the cell one above the
// current top of the in-image stack region. Pushing writes the old top down
// into the image and caches the new value; popping does the reverse.
//
// paramStackBase and paramStackLimit delimit the reserved region (layout
// table, §3): [core_size-2*stack_size, core_size-stack_size). sp must stay
// strictly inside it (spec.md §8 invariant); crossing either bound is fatal.

func (c *Core) paramStackBase() uint64  { return c.coreSize - 2*c.stackSize }
func (c *Core) paramStackLimit() uint64 { return c.coreSize - c.stackSize }

func (c *Core) dpush(v uint64) {
	if c.sp+1 >= c.paramStackLimit() {
		c.halt(stackError{"parameter", "overflow"})
	}
	c.sp++
	c.store(c.sp, c.top)
	c.top = v
}

func (c *Core) dpop() uint64 {
	if c.sp <= c.paramStackBase() {
		c.halt(stackError{"parameter", "underflow"})
	}
	v := c.top
	c.top = c.load(c.sp)
	c.sp--
	return v
}

// --- return stack ---
//
// RSTK (a register, so it lives in the image) holds the index of the
// current top of the return stack, reserved over [paramStackLimit,
// coreSize). rpush/rpop factor out the bump-and-bounds-check the RUN, EXIT,
// TOR and FROMR primitives all need.

func (c *Core) rpush(v uint64) {
	r := c.rstk()
	if r+1 >= c.coreSize {
		c.halt(stackError{"return", "overflow"})
	}
	r++
	c.setRstk(r)
	c.store(r, v)
}

func (c *Core) rpop() uint64 {
	r := c.rstk()
	if r < c.paramStackLimit() {
		c.halt(stackError{"return", "underflow"})
	}
	v := c.load(r)
	c.setRstk(r - 1)
	return v
}

// comma appends a cell to the end of the dictionary and advances DIC, the
// behavior of both the COMMA primitive and the C original's inline
// `m[m[0]++] = ...` idiom used throughout compile/bootstrap.
func (c *Core) comma(v uint64) {
	h := c.dic()
	c.store(h, v)
	c.setDic(h + 1)
}
