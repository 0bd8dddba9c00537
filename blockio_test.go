package forthcore

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func Test_blockName(t *testing.T) {
	require.Equal(t, "0000.blk", blockName(0))
	require.Equal(t, "00ff.blk", blockName(0xff))
	require.Equal(t, "ffff.blk", blockName(0x1ffff)) // masked to 16 bits
}

func Test_MemBlockStore_roundTrip(t *testing.T) {
	store := make(MemBlockStore)
	buf := make([]byte, BlockSize)
	for i := range buf {
		buf[i] = byte(i)
	}
	require.NoError(t, store.WriteBlock(3, buf))

	got := make([]byte, BlockSize)
	require.NoError(t, store.ReadBlock(3, got))
	require.Equal(t, buf, got)

	require.Error(t, store.ReadBlock(4, got), "unwritten block must fail")
}

func Test_blockIO_roundTrip(t *testing.T) {
	c := newTestCore(t)
	store := make(MemBlockStore)
	WithBlockStore(store).apply(c)

	// seed a byte pattern at the very start of the image and save it.
	for i := uint64(0); i < BlockSize/8; i++ {
		c.store(i, 0x0102030405060708+i)
	}
	require.Equal(t, uint64(0), c.blockIO(0, 7, 'w'))

	// clobber the region, then load it back.
	for i := uint64(0); i < BlockSize/8; i++ {
		c.store(i, 0)
	}
	require.Equal(t, uint64(0), c.blockIO(0, 7, 'r'))
	require.Equal(t, uint64(0x0102030405060708), c.load(0))
	require.Equal(t, uint64(0x0102030405060709), c.load(1))
}

func Test_blockIO_noStore(t *testing.T) {
	c := newTestCore(t)
	require.Equal(t, ^uint64(0), c.blockIO(0, 1, 'w'))
}

func Test_blockIO_outOfRange(t *testing.T) {
	c := newTestCore(t)
	WithBlockStore(make(MemBlockStore)).apply(c)
	require.Equal(t, ^uint64(0), c.blockIO(c.coreSize*8, 1, 'r'))
}
