package dhcpv4

import (
	"iter"

	"github.com/athena-dhcpd/dhcpcodec/dhcpwire"
)

// DhcpOptions is an ordered, keyed collection of options: at most one
// entry per code, insertion order preserved for encode, with End always
// written last. Decoding never fails on an unrecognized code (it becomes
// an Unknown-valued DhcpOption); decoding does fail if an option's
// declared length runs past the end of the buffer.
type DhcpOptions struct {
	order []OptionCode
	byCode map[OptionCode]DhcpOption
}

// NewDhcpOptions returns an empty options container.
func NewDhcpOptions() *DhcpOptions {
	return &DhcpOptions{byCode: make(map[OptionCode]DhcpOption)}
}

// DecodeOptions parses a v4 options section: Pad bytes are skipped, the
// first End byte (if any) terminates parsing, and running out of buffer
// without an End is not itself an error — only a length that overruns
// the buffer is.
func DecodeOptions(d *dhcpwire.Decoder) (*DhcpOptions, error) {
	opts := NewDhcpOptions()
	for d.Len() > 0 {
		codeByte, err := d.ReadUint8()
		if err != nil {
			break
		}
		code := OptionCode(codeByte)
		if code == OptionPad {
			continue
		}
		if code == OptionEnd {
			break
		}
		opt, err := decodeOption(d, code)
		if err != nil {
			return nil, err
		}
		opts.Set(opt)
	}
	return opts, nil
}

// Get returns the option stored under code, if any.
func (o *DhcpOptions) Get(code OptionCode) (DhcpOption, bool) {
	v, ok := o.byCode[code]
	return v, ok
}

// Set inserts or overwrites the option for its own Code. Pad and End are
// rejected silently: they are framing bytes, not payload, and have no
// place in the stored option set. On a duplicate code the last write wins
// and the option keeps its original position in iteration order.
func (o *DhcpOptions) Set(opt DhcpOption) {
	if opt.Code == OptionPad || opt.Code == OptionEnd {
		return
	}
	if _, exists := o.byCode[opt.Code]; !exists {
		o.order = append(o.order, opt.Code)
	}
	o.byCode[opt.Code] = opt
}

// Del removes the option stored under code, if any.
func (o *DhcpOptions) Del(code OptionCode) {
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
func (o *DhcpOptions) Len() int { return len(o.order) }

// Iter ranges over the stored options in insertion order.
func (o *DhcpOptions) Iter() iter.Seq2[OptionCode, DhcpOption] {
	return func(yield func(OptionCode, DhcpOption) bool) {
		for _, c := range o.order {
			if !yield(c, o.byCode[c]) {
				return
			}
		}
	}
}

// Encode writes every stored option in insertion order, followed by End.
func (o *DhcpOptions) Encode(e *dhcpwire.Encoder) (int, error) {
	n := 0
	for _, code := range o.order {
		opt := o.byCode[code]
		written, err := opt.encode(e)
		if err != nil {
			return n, err
		}
		n += written
	}
	written, err := e.WriteUint8(byte(OptionEnd))
	if err != nil {
		return n, err
	}
	return n + written, nil
}
