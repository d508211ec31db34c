package message

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestOptionsAddGetRemove(t *testing.T) {
	opts := Options{}
	opts.Add(Option{ID: URIPath, Value: Text("a")})
	opts.Add(Option{ID: URIPath, Value: Text("b")})
	opts.Add(Option{ID: ETag, Value: Opaque{0x01}})
	require.Equal(t, 3, opts.Len())
	require.Equal(t, []OptionValue{Text("a"), Text("b")}, opts.Get(URIPath))

	opts.Remove(URIPath)
	require.Nil(t, opts.Get(URIPath))
	require.Equal(t, 1, opts.Len())

	// removing an absent number is a no-op
	opts.Remove(URIPath)
	require.Equal(t, 1, opts.Len())
}

func TestOptionsAllAscending(t *testing.T) {
	opts := Options{}
	opts.Add(Option{ID: Size1, Value: Uint(1)})
	opts.Add(Option{ID: IfMatch, Value: Text("x")})
	opts.Add(Option{ID: URIPath, Value: Text("a")})
	opts.Add(Option{ID: URIPath, Value: Text("b")})

	want := []Option{
		{ID: IfMatch, Value: Text("x")},
		{ID: URIPath, Value: Text("a")},
		{ID: URIPath, Value: Text("b")},
		{ID: Size1, Value: Uint(1)},
	}
	require.Equal(t, want, opts.All())
}

func TestOptionsMarshalUnmarshalRoundTrip(t *testing.T) {
	opts := Options{}
	opts.Add(Option{ID: IfMatch, Value: Text("tag")})
	opts.Add(Option{ID: URIPath, Value: Text("sensors")})
	opts.Add(Option{ID: URIPath, Value: Text("temp")})
	opts.SetETags([][]byte{{0x01, 0x02}, {0x03}})
	opts.SetContentFormat(AppLinkFormat)
	opts.SetObserve(12345)
	block, err := NewBlock(SZX512, 17, true)
	require.NoError(t, err)
	opts.SetBlock2(block)
	opts.Add(Option{ID: 9999, Value: Opaque{0xba, 0xad}})

	data, err := opts.Marshal()
	require.NoError(t, err)

	decoded, payload, err := Parse(data)
	require.NoError(t, err)
	require.Empty(t, payload)
	require.Equal(t, opts, decoded)
}

func TestOptionsMarshalWireFormat(t *testing.T) {
	opts := Options{}
	opts.SetContentFormat(MediaType(40))

	data, err := opts.Marshal()
	require.NoError(t, err)
	require.Equal(t, []byte{0xc1, 0x28}, data)
}

func TestUnmarshalStopsAtPayloadMarker(t *testing.T) {
	data := []byte{0xc1, 0x28, 0xff, 'h', 'e', 'l', 'l', 'o'}
	opts, payload, err := Parse(data)
	require.NoError(t, err)
	require.Equal(t, []byte("hello"), payload)
	require.Equal(t, 1, opts.Len())
	cf, err := opts.ContentFormat()
	require.NoError(t, err)
	require.Equal(t, MediaType(40), cf)
}

func TestUnmarshalWithoutMarker(t *testing.T) {
	opts, payload, err := Parse([]byte{0xc1, 0x28})
	require.NoError(t, err)
	require.Nil(t, payload)
	require.Equal(t, 1, opts.Len())
}

func TestUnmarshalEmpty(t *testing.T) {
	opts, payload, err := Parse(nil)
	require.NoError(t, err)
	require.Nil(t, payload)
	require.Equal(t, 0, opts.Len())
}

func TestUnmarshalUnknownNumber(t *testing.T) {
	opts := Options{}
	opts.Add(Option{ID: 9999, Value: Opaque{0x01, 0x02, 0x03}})
	data, err := opts.Marshal()
	require.NoError(t, err)

	decoded, _, err := Parse(data)
	require.NoError(t, err)
	require.Equal(t, []OptionValue{Opaque{0x01, 0x02, 0x03}}, decoded.Get(9999))
}

func TestUnmarshalTruncatedValue(t *testing.T) {
	_, _, err := Parse([]byte{0xc5, 0x28})
	require.ErrorIs(t, err, ErrOptionTruncated)
}

func TestUnmarshalTruncatedExtension(t *testing.T) {
	_, _, err := Parse([]byte{0xd1})
	require.ErrorIs(t, err, ErrOptionTruncated)
	_, _, err = Parse([]byte{0xe1, 0x01})
	require.ErrorIs(t, err, ErrOptionTruncated)
}

func TestUnmarshalExtendMarkerNibble(t *testing.T) {
	_, _, err := Parse([]byte{0xf1, 0x00})
	require.ErrorIs(t, err, ErrOptionUnexpectedExtendMarker)
	_, _, err = Parse([]byte{0x1f, 0x00})
	require.ErrorIs(t, err, ErrOptionUnexpectedExtendMarker)
}

func TestUnmarshalMarkerOnly(t *testing.T) {
	opts, payload, err := Parse([]byte{0xff})
	require.NoError(t, err)
	require.Empty(t, payload)
	require.Equal(t, 0, opts.Len())
}
