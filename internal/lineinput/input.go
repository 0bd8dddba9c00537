// Package lineinput implements sequential byte reading over a swappable
// underlying stream, tracking line/offset location for diagnostics.
//
// It plays the role that the C original's tagged file-handle-or-string-buffer
// union plays (see forth_set_file_input / forth_set_string_input in
// libforth.c): rather than a variant type, a single io.Reader is held, and
// strings.NewReader / bytes.NewReader already give the in-memory-string
// behavior idiomatically.
package lineinput

import (
	"bufio"
	"fmt"
	"io"
)

// Location names a line in an Input's source.
type Location struct {
	Name string
	Line int
}

func (loc Location) String() string { return fmt.Sprintf("%v:%v", loc.Name, loc.Line) }

// Input implements io.ByteReader over a single replaceable source stream,
// tracking the current and last scanned lines for error reporting.
type Input struct {
	r    *bufio.Reader
	name string

	Last Location
	Scan Location
}

// Set replaces the current source stream and resets location tracking.
// name is used only for diagnostics (Location.Name).
func (in *Input) Set(r io.Reader, name string) {
	in.r = bufio.NewReader(r)
	in.name = name
	in.Scan = Location{Name: name, Line: 1}
	in.Last = Location{}
}

// Name returns the name of the currently active source, or "" if none.
func (in *Input) Name() string { return in.name }

// ReadByte reads one byte from the current source, advancing line tracking on
// '\n'. Returns io.EOF once the source is exhausted; callers wanting
// multi-source chaining call Set again and retry.
func (in *Input) ReadByte() (byte, error) {
	if in.r == nil {
		return 0, io.EOF
	}
	b, err := in.r.ReadByte()
	if err != nil {
		return 0, err
	}
	if b == '\n' {
		in.Last = in.Scan
		in.Scan.Line++
	}
	return b, nil
}
