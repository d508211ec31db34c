package message

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestUintRoundTrip(t *testing.T) {
	tests := []struct {
		name  string
		value uint32
		want  int
	}{
		{name: "0", value: 0, want: 0},
		{name: "255", value: 255, want: 1},
		{name: "256", value: 256, want: 2},
		{name: "65535", value: 65535, want: 2},
		{name: "65536", value: 65536, want: 3},
		{name: "20000000", value: 20000000, want: 4},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := Uint(tt.value)
			require.Equal(t, tt.want, v.Len())
			buf := v.appendValue(nil)
			require.Len(t, buf, tt.want)
			got, n := DecodeUint32(buf)
			require.Equal(t, tt.want, n)
			require.Equal(t, tt.value, got)
		})
	}
}

func TestUintSingleByteContent(t *testing.T) {
	buf := Uint(255).appendValue(nil)
	require.Equal(t, []byte{0xff}, buf)
}

func TestEncodeUint32TooSmall(t *testing.T) {
	n, err := EncodeUint32(make([]byte, 1), 65536)
	require.ErrorIs(t, err, ErrOptionTruncated)
	require.Equal(t, 3, n)
}

func TestDecodeUint32Empty(t *testing.T) {
	v, n := DecodeUint32(nil)
	require.Equal(t, uint32(0), v)
	require.Equal(t, 0, n)
}

func TestOpaquePassthrough(t *testing.T) {
	v := Opaque{0x00, 0xff, 0x10}
	require.Equal(t, 3, v.Len())
	require.Equal(t, []byte{0x00, 0xff, 0x10}, v.appendValue(nil))
}

func TestTextPassthrough(t *testing.T) {
	v := Text("abc")
	require.Equal(t, 3, v.Len())
	require.Equal(t, []byte("abc"), v.appendValue(nil))
}
