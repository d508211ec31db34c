package message

import (
	"fmt"
	"sort"
)

// Options holds the option block of one message. Each option number
// maps to the values carried under that number in insertion order. An
// empty block is created with Options{} and lives only as long as the
// message it belongs to.
//
// Options is not safe for concurrent mutation, one instance belongs to
// exactly one in-flight message.
type Options map[OptionID][]OptionValue

// Add appends a value to the bucket of the option number.
func (o Options) Add(opt Option) {
	o[opt.ID] = append(o[opt.ID], opt.Value)
}

// Set replaces the whole bucket of the option number with a single
// value.
func (o Options) Set(opt Option) {
	o[opt.ID] = []OptionValue{opt.Value}
}

// Remove drops the whole bucket of the option number.
func (o Options) Remove(id OptionID) {
	delete(o, id)
}

// Get returns all values of the option number in insertion order, nil
// when the number is absent.
func (o Options) Get(id OptionID) []OptionValue {
	return o[id]
}

// Len reports the total number of options across all buckets.
func (o Options) Len() int {
	length := 0
	for _, bucket := range o {
		length += len(bucket)
	}
	return length
}

// All returns every option ordered by ascending option number, options
// sharing a number keep their insertion order. The wire format requires
// this ordering, the map itself carries none.
func (o Options) All() []Option {
	ids := make([]OptionID, 0, len(o))
	for id := range o {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	opts := make([]Option, 0, o.Len())
	for _, id := range ids {
		for _, value := range o[id] {
			opts = append(opts, Option{ID: id, Value: value})
		}
	}
	return opts
}

// Marshal encodes the option block, each option delta-compressed
// against its predecessor.
func (o Options) Marshal() ([]byte, error) {
	buf := make([]byte, 0, 64)
	prev := 0
	for _, opt := range o.All() {
		var err error
		buf, err = appendOpt(buf, opt, int(opt.ID)-prev)
		if err != nil {
			return nil, fmt.Errorf("cannot marshal option %v: %w", opt.ID, err)
		}
		prev = int(opt.ID)
	}
	return buf, nil
}

// Unmarshal decodes an option block into o and returns the trailing
// payload. Decoding stops at the 0xff payload marker, everything after
// it belongs to the payload. Without a marker the payload is empty.
func (o Options) Unmarshal(data []byte) ([]byte, error) {
	prev := 0
	for len(data) > 0 {
		if data[0] == 0xff {
			return data[1:], nil
		}

		delta := int(data[0] >> 4)
		length := int(data[0] & 0x0f)
		data = data[1:]

		proc, delta, err := parseExtOpt(data, delta)
		if err != nil {
			return nil, err
		}
		data = data[proc:]
		proc, length, err = parseExtOpt(data, length)
		if err != nil {
			return nil, err
		}
		data = data[proc:]

		if len(data) < length {
			return nil, ErrOptionTruncated
		}

		oid := OptionID(prev + delta)
		o.Add(Option{ID: oid, Value: parseOptionValue(oid, data[:length])})
		data = data[length:]
		prev = int(oid)
	}
	return nil, nil
}

// Parse extracts the options and payload from data, which holds
// everything following the message header.
func Parse(data []byte) (Options, []byte, error) {
	opts := Options{}
	payload, err := opts.Unmarshal(data)
	if err != nil {
		return nil, nil, err
	}
	return opts, payload, nil
}
