package message

// Block option value representation:
//  0
//  0 1 2 3 4 5 6 7
// +-+-+-+-+-+-+-+-+
// |  NUM  |M| SZX |
// +-+-+-+-+-+-+-+-+
//  0                   1
//  0 1 2 3 4 5 6 7 8 9 0 1 2 3 4 5
// +-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+
// |          NUM          |M| SZX |
// +-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+
//  0                   1                   2
//  0 1 2 3 4 5 6 7 8 9 0 1 2 3 4 5 6 7 8 9 0 1 2 3
// +-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+
// |                   NUM                 |M| SZX |
// +-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+

const (
	// maxBlockNumber is 28bits (NUM)
	maxBlockNumber = uint32(0xfffffff)
	// moreBlocksFollowingMask is represented by one bit (M)
	moreBlocksFollowingMask = uint32(0x8)
	// szxMask last 3bits represents SZX (SZX)
	szxMask = uint32(0x7)
)

// SZX enum representation for the size of the block.
type SZX uint8

const (
	// SZX16 block of size 16bytes
	SZX16 SZX = 0
	// SZX32 block of size 32bytes
	SZX32 SZX = 1
	// SZX64 block of size 64bytes
	SZX64 SZX = 2
	// SZX128 block of size 128bytes
	SZX128 SZX = 3
	// SZX256 block of size 256bytes
	SZX256 SZX = 4
	// SZX512 block of size 512bytes
	SZX512 SZX = 5
	// SZX1024 block of size 1024bytes
	SZX1024 SZX = 6
	// SZXBERT block of size n*1024bytes
	SZXBERT SZX = 7
)

var szxToSize = map[SZX]int64{
	SZX16:   16,
	SZX32:   32,
	SZX64:   64,
	SZX128:  128,
	SZX256:  256,
	SZX512:  512,
	SZX1024: 1024,
	SZXBERT: 1024,
}

// Size returns the size of the block in bytes.
func (s SZX) Size() int64 {
	size, ok := szxToSize[s]
	if ok {
		return size
	}
	return -1
}

// Block describes a single block of a blockwise transfer. It encodes on
// the wire as the packed integer (num << 4) | (more ? 8 : 0) | szx in
// the shortest big-endian form.
type Block struct {
	Num  uint32
	More bool
	SZX  SZX
}

// NewBlock validates block values and composes them to a Block option
// value.
func NewBlock(szx SZX, num uint32, more bool) (Block, error) {
	if szx > SZXBERT {
		return Block{}, ErrInvalidSZX
	}
	if num > maxBlockNumber {
		return Block{}, ErrBlockNumberExceedLimit
	}
	return Block{Num: num, More: more, SZX: szx}, nil
}

// ParseBlock decomposes a packed block option value.
func ParseBlock(value uint32) Block {
	return Block{
		Num:  value >> 4,
		More: value&moreBlocksFollowingMask == moreBlocksFollowingMask,
		SZX:  SZX(value & szxMask),
	}
}

// Value returns the packed form of the block.
func (b Block) Value() uint32 {
	value := b.Num<<4 | uint32(b.SZX)&szxMask
	if b.More {
		value |= moreBlocksFollowingMask
	}
	return value
}

// Len is derived from the whole packed integer so the M and SZX bits
// are never dropped from the byte count.
func (b Block) Len() int {
	return lengthUint32(b.Value())
}

func (b Block) appendValue(buf []byte) []byte {
	return appendUint32(buf, b.Value())
}
