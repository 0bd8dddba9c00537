package forthcore

import (
	"encoding/binary"
	"io"
)

// dumpHeader mirrors the handful of scalar fields the C struct forth
// carries ahead of its flexible image array (spec.md §6 "Persisted
// state"): just enough to make a dump self-describing on this host.
type dumpHeader struct {
	CoreSize  uint64
	StackSize uint64
	Top       uint64
	SP        uint64
	IP        uint64
	Invalid   uint64
}

// DumpCore writes a raw concatenation of the Core's header and its
// core_size cells, in host byte order, to out (spec.md §6 "dump_core",
// "Persisted state": "not designed for portability across architectures
// -- used only to restore on the same host").
func (c *Core) DumpCore(out io.Writer) error {
	hdr := dumpHeader{
		CoreSize:  c.coreSize,
		StackSize: c.stackSize,
		Top:       c.top,
		SP:        c.sp,
		IP:        c.ip,
	}
	if c.invalid {
		hdr.Invalid = 1
	}
	if err := binary.Write(out, binary.NativeEndian, hdr); err != nil {
		return err
	}
	return binary.Write(out, binary.NativeEndian, c.image)
}
