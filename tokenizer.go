package forthcore

import "io"

// isSpace matches the whitespace bytes the tokenizer skips over and
// delimits words with: space, tab, newline, carriage return, form feed.
func isSpace(b byte) bool {
	switch b {
	case ' ', '\t', '\n', '\r', '\f':
		return true
	}
	return false
}

// getChar delivers a single byte from the active input source, or io.EOF.
// Output is flushed first, so interactive echo (EMIT/PNUM/PRINT/PSTK) is
// visible before the read blocks (the internal/flushio design).
func (c *Core) getChar() (byte, error) {
	c.out.Flush()
	return c.in.ReadByte()
}

// getWord skips leading whitespace, then reads up to MaxWordLength-1
// non-whitespace bytes. It returns the token, or io.EOF if the source is
// exhausted before any non-whitespace byte is seen.
func (c *Core) getWord() (string, error) {
	var b byte
	var err error
	for {
		b, err = c.getChar()
		if err != nil {
			return "", err
		}
		if !isSpace(b) {
			break
		}
	}

	buf := make([]byte, 0, MaxWordLength-1)
	buf = append(buf, b)
	for len(buf) < MaxWordLength-1 {
		b, err = c.getChar()
		if err != nil {
			if err == io.EOF {
				break
			}
			return "", err
		}
		if isSpace(b) {
			break
		}
		buf = append(buf, b)
	}
	return string(buf), nil
}

// comment consumes bytes up to and including the next newline, or until
// EOF.
func (c *Core) comment() error {
	for {
		b, err := c.getChar()
		if err != nil {
			if err == io.EOF {
				return nil
			}
			return err
		}
		if b == '\n' {
			return nil
		}
	}
}
