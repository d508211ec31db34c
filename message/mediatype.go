package message

import (
	"fmt"
	"strconv"
)

// MediaType specifies the content format of a payload. It is the value
// of the Content-Format and Accept options.
type MediaType uint16

// Content formats.
const (
	TextPlain     MediaType = 0  // text/plain;charset=utf-8
	AppLinkFormat MediaType = 40 // application/link-format
	AppXML        MediaType = 41 // application/xml
	AppOctets     MediaType = 42 // application/octet-stream
	AppExi        MediaType = 47 // application/exi
	AppJSON       MediaType = 50 // application/json
	AppCBOR       MediaType = 60 // application/cbor (RFC 7049)
	AppCoapGroup  MediaType = 256
)

var mediaTypeToString = map[MediaType]string{
	TextPlain:     "text/plain;charset=utf-8",
	AppLinkFormat: "application/link-format",
	AppXML:        "application/xml",
	AppOctets:     "application/octet-stream",
	AppExi:        "application/exi",
	AppJSON:       "application/json",
	AppCBOR:       "application/cbor",
	AppCoapGroup:  "coap-group+json",
}

func (c MediaType) String() string {
	str, ok := mediaTypeToString[c]
	if !ok {
		return "MediaType(" + strconv.FormatInt(int64(c), 10) + ")"
	}
	return str
}

// ToMediaType resolves a content format name back to its numeric value.
func ToMediaType(v string) (MediaType, error) {
	for mt, str := range mediaTypeToString {
		if str == v {
			return mt, nil
		}
	}
	return 0, fmt.Errorf("unknown media type %v", v)
}
