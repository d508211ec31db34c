package message

import (
	"encoding/binary"
	"hash/crc64"
)

// The ETag accessors are two views over the same bucket. The single
// value view matches the option's use in responses, the multi value
// view its use in requests. Writing through either view discards
// whatever the other one stored.

// SetETag replaces the ETag bucket with a single opaque tag. A nil or
// empty tag removes the bucket.
func (o Options) SetETag(tag []byte) {
	o.Remove(ETag)
	if len(tag) == 0 {
		return
	}
	value := make(Opaque, len(tag))
	copy(value, tag)
	o.Add(Option{ID: ETag, Value: value})
}

// ETag returns the first tag of the ETag bucket.
func (o Options) ETag() ([]byte, error) {
	bucket := o.Get(ETag)
	if len(bucket) == 0 {
		return nil, ErrOptionNotFound
	}
	tag, ok := bucket[0].(Opaque)
	if !ok {
		return nil, ErrOptionNotFound
	}
	return tag, nil
}

// SetETags replaces the ETag bucket with one opaque option per tag.
func (o Options) SetETags(tags [][]byte) {
	o.Remove(ETag)
	for _, tag := range tags {
		value := make(Opaque, len(tag))
		copy(value, tag)
		o.Add(Option{ID: ETag, Value: value})
	}
}

// ETags returns all tags of the ETag bucket in insertion order.
func (o Options) ETags() [][]byte {
	bucket := o.Get(ETag)
	if len(bucket) == 0 {
		return nil
	}
	tags := make([][]byte, 0, len(bucket))
	for _, v := range bucket {
		if tag, ok := v.(Opaque); ok {
			tags = append(tags, tag)
		}
	}
	return tags
}

// CalcETag derives an ETag value from payload via CRC64.
func CalcETag(payload []byte) []byte {
	if payload == nil {
		return nil
	}
	b := make([]byte, 8)
	binary.LittleEndian.PutUint64(b, crc64.Checksum(payload, crc64.MakeTable(crc64.ISO)))
	return b
}
