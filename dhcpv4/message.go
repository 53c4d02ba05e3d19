package dhcpv4

import (
	"bytes"
	"net"

	"github.com/athena-dhcpd/dhcpcodec/dhcpwire"
)

// Message is a decoded DHCPv4 packet (RFC 2131 §2): the 236-byte fixed
// header, the 4-byte magic cookie, and the options section.
type Message struct {
	Op     OpCode
	HType  HardwareType
	HLen   byte
	Hops   byte
	XID    uint32
	Secs   uint16
	Flags  uint16
	CIAddr net.IP
	YIAddr net.IP
	SIAddr net.IP
	GIAddr net.IP
	CHAddr net.HardwareAddr // HLen gives the significant length; Decode always fills all 16 slot bytes, so a decode/encode round trip is byte-identical even past HLen
	SName  [64]byte
	File   [128]byte

	Options *DhcpOptions
}

// BroadcastFlagSet reports whether the broadcast bit (bit 0 of Flags) is
// set.
func (m *Message) BroadcastFlagSet() bool { return m.Flags&0x8000 != 0 }

// Decode reads a complete v4 message from d: the fixed header, the magic
// cookie (a mismatch is a hard decode error), then the options section.
func Decode(d *dhcpwire.Decoder) (*Message, error) {
	m := &Message{}

	op, err := d.ReadUint8()
	if err != nil {
		return nil, err
	}
	m.Op = OpCode(op)

	htype, err := d.ReadUint8()
	if err != nil {
		return nil, err
	}
	m.HType = HardwareType(htype)

	m.HLen, err = d.ReadUint8()
	if err != nil {
		return nil, err
	}
	m.Hops, err = d.ReadUint8()
	if err != nil {
		return nil, err
	}
	m.XID, err = d.ReadUint32()
	if err != nil {
		return nil, err
	}
	m.Secs, err = d.ReadUint16()
	if err != nil {
		return nil, err
	}
	m.Flags, err = d.ReadUint16()
	if err != nil {
		return nil, err
	}
	if m.CIAddr, err = d.ReadIP(); err != nil {
		return nil, err
	}
	if m.YIAddr, err = d.ReadIP(); err != nil {
		return nil, err
	}
	if m.SIAddr, err = d.ReadIP(); err != nil {
		return nil, err
	}
	if m.GIAddr, err = d.ReadIP(); err != nil {
		return nil, err
	}

	chaddr, err := d.ReadArrayN(16)
	if err != nil {
		return nil, err
	}
	m.CHAddr = net.HardwareAddr(chaddr)

	sname, err := d.ReadSlice(64)
	if err != nil {
		return nil, err
	}
	copy(m.SName[:], sname)

	file, err := d.ReadSlice(128)
	if err != nil {
		return nil, err
	}
	copy(m.File[:], file)

	cookie, err := d.ReadArray4()
	if err != nil {
		return nil, err
	}
	if cookie != MagicCookie {
		return nil, dhcpwire.NewErrMessage("bad magic cookie")
	}

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

// Encode writes the full wire form of m: fixed header, magic cookie,
// options, terminated by End.
func (m *Message) Encode(e *dhcpwire.Encoder) (int, error) {
	n := 0
	add := func(written int, err error) error {
		n += written
		return err
	}

	if err := add(e.WriteUint8(byte(m.Op))); err != nil {
		return n, err
	}
	if err := add(e.WriteUint8(byte(m.HType))); err != nil {
		return n, err
	}
	if err := add(e.WriteUint8(m.HLen)); err != nil {
		return n, err
	}
	if err := add(e.WriteUint8(m.Hops)); err != nil {
		return n, err
	}
	if err := add(e.WriteUint32(m.XID)); err != nil {
		return n, err
	}
	if err := add(e.WriteUint16(m.Secs)); err != nil {
		return n, err
	}
	if err := add(e.WriteUint16(m.Flags)); err != nil {
		return n, err
	}
	if err := add(e.WriteIP(m.CIAddr)); err != nil {
		return n, err
	}
	if err := add(e.WriteIP(m.YIAddr)); err != nil {
		return n, err
	}
	if err := add(e.WriteIP(m.SIAddr)); err != nil {
		return n, err
	}
	if err := add(e.WriteIP(m.GIAddr)); err != nil {
		return n, err
	}

	chaddr := make([]byte, 16)
	copy(chaddr, m.CHAddr)
	if err := add(e.Write(chaddr)); err != nil {
		return n, err
	}
	if err := add(e.Write(m.SName[:])); err != nil {
		return n, err
	}
	if err := add(e.Write(m.File[:])); err != nil {
		return n, err
	}
	if err := add(e.Write(MagicCookie[:])); err != nil {
		return n, err
	}

	if m.Options == nil {
		m.Options = NewDhcpOptions()
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
