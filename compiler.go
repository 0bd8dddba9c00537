package forthcore

// compileHeader appends a new word header to the dictionary: name cells,
// then the link field (pointing at the previous PWD), then the flags/code
// cell. DIC and PWD are updated to reflect the new word; the caller is left
// to comma in the code body starting at link-field-plus-2 (c.dic()
// immediately after this call).
//
// If name is empty, it is parsed from the current input source; EOF while
// doing so is the only failure mode (spec.md §4.1).
func (c *Core) compileHeader(code uint64, name string) error {
	if name == "" {
		var err error
		name, err = c.getWord()
		if err != nil {
			return err
		}
	}

	nameCells := cellsForName(name)
	base := c.dic()
	c.writeName(base, nameCells, name)
	linkAddr := base + nameCells
	c.setDic(linkAddr)

	prev := c.pwd()
	c.comma(prev)
	c.setPwd(linkAddr)

	codeField := (nameCells << wordLengthShift) | (code & instructionMask)
	c.comma(codeField)
	return nil
}
