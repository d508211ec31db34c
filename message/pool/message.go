package pool

import (
	"context"

	"github.com/plgd-dev/coap-message/message"
)

// Message couples one option block with the payload of a single
// in-flight message.
type Message struct {
	// Context context of request.
	ctx      context.Context
	opts     message.Options
	payload  []byte
	sequence uint64
}

func NewMessage(ctx context.Context) *Message {
	return &Message{
		ctx:  ctx,
		opts: message.Options{},
	}
}

func (r *Message) Context() context.Context {
	return r.ctx
}

func (r *Message) SetContext(ctx context.Context) {
	r.ctx = ctx
}

// Options exposes the option block for direct and accessor access.
func (r *Message) Options() message.Options {
	return r.opts
}

func (r *Message) Payload() []byte {
	return r.payload
}

// SetPayload copies p into the payload buffer owned by the message.
func (r *Message) SetPayload(p []byte) {
	r.payload = append(r.payload[:0], p...)
}

func (r *Message) Sequence() uint64 {
	return r.sequence
}

func (r *Message) SetSequence(sequence uint64) {
	r.sequence = sequence
}

func (r *Message) Path() (string, error) {
	return r.opts.Path()
}

func (r *Message) SetPath(path string) {
	r.opts.SetPath(path)
}

func (r *Message) Queries() []string {
	return r.opts.Queries()
}

func (r *Message) ContentFormat() (message.MediaType, error) {
	return r.opts.ContentFormat()
}

func (r *Message) SetContentFormat(mt message.MediaType) {
	r.opts.SetContentFormat(mt)
}

// Reset clear message for next reuse
func (r *Message) Reset() {
	for id := range r.opts {
		delete(r.opts, id)
	}
	r.payload = r.payload[:0]
	r.sequence = 0
}

// Marshal encodes the option block followed by the payload marker and
// payload, ready to be appended to a message header.
func (r *Message) Marshal() ([]byte, error) {
	buf, err := r.opts.Marshal()
	if err != nil {
		return nil, err
	}
	if len(r.payload) > 0 {
		// for separator 0xff
		buf = append(buf, 0xff)
		buf = append(buf, r.payload...)
	}
	return buf, nil
}

// Unmarshal decodes everything following a message header into the
// option block and payload.
func (r *Message) Unmarshal(data []byte) error {
	r.Reset()
	payload, err := r.opts.Unmarshal(data)
	if err != nil {
		return err
	}
	r.payload = append(r.payload[:0], payload...)
	return nil
}
