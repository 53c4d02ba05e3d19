package dhcpv6

import (
	"bytes"

	"github.com/athena-dhcpd/dhcpcodec/dhcpwire"
)

// Message is a decoded DHCPv6 message (RFC 3315 §6): a one-byte message
// type, a three-byte transaction id, and an options section that runs to
// the end of the buffer.
type Message struct {
	MType     MessageType
	TransID   [3]byte
	Options   *Options
}

// Decode reads a complete v6 message from d.
func Decode(d *dhcpwire.Decoder) (*Message, error) {
	m := &Message{}

	mtype, err := d.ReadUint8()
	if err != nil {
		return nil, err
	}
	m.MType = MessageType(mtype)

	tid, err := d.ReadSlice(3)
	if err != nil {
		return nil, err
	}
	copy(m.TransID[:], tid)

	opts, err := DecodeOptions(d)
	if err != nil {
		return nil, err
	}
	m.Options = opts

	return m, nil
}

// DecodeBytes is a convenience wrapper constructing a Decoder over buf.
func DecodeBytes(buf []byte) (*Message, error) {
	return Decode(dhcpwire.NewDecoder(buf))
}

// Encode writes the full wire form of m: message type, transaction id,
// options. There is no terminator; the end of the written bytes is the
// end of the message.
func (m *Message) Encode(e *dhcpwire.Encoder) (int, error) {
	n := 0
	w, err := e.WriteUint8(byte(m.MType))
	if err != nil {
		return n, err
	}
	n += w
	w, err = e.Write(m.TransID[:])
	if err != nil {
		return n, err
	}
	n += w

	if m.Options == nil {
		m.Options = NewOptions()
	}
	written, err := m.Options.Encode(e)
	n += written
	if err != nil {
		return n, err
	}
	return n, nil
}

// EncodeBytes is a convenience wrapper returning the encoded message as a
// fresh byte slice.
func (m *Message) EncodeBytes() ([]byte, error) {
	var buf bytes.Buffer
	e := dhcpwire.NewEncoder(&buf)
	if _, err := m.Encode(e); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
