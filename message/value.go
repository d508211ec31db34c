package message

import "encoding/binary"

const (
	max1ByteNumber = uint32(^uint8(0))
	max2ByteNumber = uint32(^uint16(0))
	max3ByteNumber = uint32(0xffffff)
)

// OptionValue is the decoded value of an option. The set of
// implementations is closed: Opaque, Text, Uint and Block.
type OptionValue interface {
	// Len reports the number of bytes the value occupies on the wire.
	Len() int
	appendValue(buf []byte) []byte
}

// Opaque is an arbitrary byte sequence. It is the value of every option
// number missing from the format registry.
type Opaque []byte

func (v Opaque) Len() int {
	return len(v)
}

func (v Opaque) appendValue(buf []byte) []byte {
	return append(buf, v...)
}

// Text is a byte sequence carried as text. No character encoding is
// enforced at this layer, the bytes pass through unchanged.
type Text string

func (v Text) Len() int {
	return len(v)
}

func (v Text) appendValue(buf []byte) []byte {
	return append(buf, v...)
}

// Uint is an unsigned integer value encoded as the shortest big-endian
// byte sequence without leading zero bytes. Zero occupies no bytes.
type Uint uint32

func (v Uint) Len() int {
	return lengthUint32(uint32(v))
}

func (v Uint) appendValue(buf []byte) []byte {
	return appendUint32(buf, uint32(v))
}

func lengthUint32(value uint32) int {
	switch {
	case value == 0:
		return 0
	case value <= max1ByteNumber:
		return 1
	case value <= max2ByteNumber:
		return 2
	case value <= max3ByteNumber:
		return 3
	}
	return 4
}

func appendUint32(buf []byte, value uint32) []byte {
	switch lengthUint32(value) {
	case 1:
		buf = append(buf, byte(value))
	case 2:
		buf = append(buf, byte(value>>8), byte(value))
	case 3:
		buf = append(buf, byte(value>>16), byte(value>>8), byte(value))
	case 4:
		buf = append(buf, byte(value>>24), byte(value>>16), byte(value>>8), byte(value))
	}
	return buf
}

// EncodeUint32 writes value to buf in the shortest big-endian form and
// returns the number of bytes written.
func EncodeUint32(buf []byte, value uint32) (int, error) {
	length := lengthUint32(value)
	if len(buf) < length {
		return length, ErrOptionTruncated
	}
	switch length {
	case 1:
		buf[0] = byte(value)
	case 2:
		binary.BigEndian.PutUint16(buf, uint16(value))
	case 3:
		rv := make([]byte, 4)
		binary.BigEndian.PutUint32(rv, value)
		copy(buf, rv[1:])
	case 4:
		binary.BigEndian.PutUint32(buf, value)
	}
	return length, nil
}

// DecodeUint32 accumulates buf as a big-endian integer and returns the
// value together with the number of bytes read. Values longer than
// 4 bytes are truncated to the leading 4 bytes.
func DecodeUint32(buf []byte) (uint32, int) {
	if len(buf) > 4 {
		buf = buf[:4]
	}
	tmp := []byte{0, 0, 0, 0}
	copy(tmp[4-len(buf):], buf)
	value := binary.BigEndian.Uint32(tmp)
	return value, len(buf)
}
