package dhcpv6

import (
	"iter"

	"github.com/athena-dhcpd/dhcpcodec/dhcpwire"
)

// Options is an ordered, keyed collection of v6 options: at most one
// entry per code, insertion order preserved for encode. Unlike the v4
// container there is no End sentinel; parsing simply continues until the
// buffer is exhausted.
type Options struct {
	order  []OptionCode
	byCode map[OptionCode]Option
}

// NewOptions returns an empty options container.
func NewOptions() *Options {
	return &Options{byCode: make(map[OptionCode]Option)}
}

// DecodeOptions parses a v6 options section: each iteration reads a
// 2-byte code and 2-byte length, then dispatches to a typed body reader.
// The loop stops cleanly when the buffer is exhausted; a length that
// overruns the buffer is a hard decode error.
func DecodeOptions(d *dhcpwire.Decoder) (*Options, error) {
	opts := NewOptions()
	for d.Len() > 0 {
		codeVal, err := d.ReadUint16()
		if err != nil {
			break
		}
		code := OptionCode(codeVal)
		length, err := d.ReadUint16()
		if err != nil {
			return nil, err
		}
		opt, err := decodeOption(d, code, length)
		if err != nil {
			return nil, err
		}
		opts.Set(opt)
	}
	return opts, nil
}

// Get returns the option stored under code, if any.
func (o *Options) Get(code OptionCode) (Option, bool) {
	v, ok := o.byCode[code]
	return v, ok
}

// Set inserts or overwrites the option for its own Code, last write wins
// on a duplicate code, original insertion position retained.
func (o *Options) Set(opt Option) {
	if _, exists := o.byCode[opt.Code]; !exists {
		o.order = append(o.order, opt.Code)
	}
	o.byCode[opt.Code] = opt
}

// Del removes the option stored under code, if any.
func (o *Options) Del(code OptionCode) {
	if _, ok := o.byCode[code]; !ok {
		return
	}
	delete(o.byCode, code)
	for i, c := range o.order {
		if c == code {
			o.order = append(o.order[:i], o.order[i+1:]...)
			break
		}
	}
}

// Len returns the number of stored options.
func (o *Options) Len() int { return len(o.order) }

// Iter ranges over the stored options in insertion order.
func (o *Options) Iter() iter.Seq2[OptionCode, Option] {
	return func(yield func(OptionCode, Option) bool) {
		for _, c := range o.order {
			if !yield(c, o.byCode[c]) {
				return
			}
		}
	}
}

// Encode writes every stored option in insertion order. There is no
// terminator to append; the caller's buffer boundary is the terminator.
func (o *Options) Encode(e *dhcpwire.Encoder) (int, error) {
	n := 0
	for _, code := range o.order {
		opt := o.byCode[code]
		written, err := opt.encode(e)
		if err != nil {
			return n, err
		}
		n += written
	}
	return n, nil
}
