package message

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBlockRoundTrip(t *testing.T) {
	block, err := NewBlock(SZX1024, 5, true)
	require.NoError(t, err)
	require.Equal(t, uint32(5<<4|0x8|6), block.Value())

	buf := block.appendValue(nil)
	require.Len(t, buf, block.Len())
	v, _ := DecodeUint32(buf)
	require.Equal(t, block, ParseBlock(v))
}

func TestBlockLenCountsFlagBits(t *testing.T) {
	// num alone would occupy zero bytes, the szx bits still need one
	block, err := NewBlock(SZX1024, 0, false)
	require.NoError(t, err)
	require.Equal(t, 1, block.Len())

	zero, err := NewBlock(SZX16, 0, false)
	require.NoError(t, err)
	require.Equal(t, 0, zero.Len())
}

func TestNewBlockInvalid(t *testing.T) {
	_, err := NewBlock(SZX(8), 0, false)
	require.ErrorIs(t, err, ErrInvalidSZX)
	_, err = NewBlock(SZX16, maxBlockNumber+1, false)
	require.ErrorIs(t, err, ErrBlockNumberExceedLimit)
}

func TestSZXSize(t *testing.T) {
	require.Equal(t, int64(16), SZX16.Size())
	require.Equal(t, int64(1024), SZX1024.Size())
	require.Equal(t, int64(1024), SZXBERT.Size())
	require.Equal(t, int64(-1), SZX(42).Size())
}
