package dhcpwire

import (
	"bytes"
	"encoding/binary"
	"net"
)

// Encoder is a growable cursor over a byte sink. The zero value is not
// usable; construct with NewEncoder. Writes never fail on bounds (the
// sink grows); the only failure mode is a length computation overflowing
// int, reported as ErrAddOverflow.
type Encoder struct {
	buf *bytes.Buffer
}

// NewEncoder wraps buf for writing. Bytes are appended to buf as encoding
// proceeds.
func NewEncoder(buf *bytes.Buffer) *Encoder {
	return &Encoder{buf: buf}
}

// Len returns the number of bytes written to the sink so far.
func (e *Encoder) Len() int { return e.buf.Len() }

// Bytes returns the accumulated sink contents.
func (e *Encoder) Bytes() []byte { return e.buf.Bytes() }

// WriteUint8 appends one byte.
func (e *Encoder) WriteUint8(v byte) (int, error) {
	e.buf.WriteByte(v)
	return 1, nil
}

// WriteUint16 appends two bytes, big-endian.
func (e *Encoder) WriteUint16(v uint16) (int, error) {
	var b [2]byte
	binary.BigEndian.PutUint16(b[:], v)
	e.buf.Write(b[:])
	return 2, nil
}

// WriteUint32 appends four bytes, big-endian.
func (e *Encoder) WriteUint32(v uint32) (int, error) {
	var b [4]byte
	binary.BigEndian.PutUint32(b[:], v)
	e.buf.Write(b[:])
	return 4, nil
}

// WriteInt32 appends four bytes, big-endian, two's complement.
func (e *Encoder) WriteInt32(v int32) (int, error) {
	return e.WriteUint32(uint32(v))
}

// Write appends a raw slice.
func (e *Encoder) Write(b []byte) (int, error) {
	e.buf.Write(b)
	return len(b), nil
}

// WriteFill appends n copies of b, used to pad fixed-width header fields
// shorter than their slot (e.g. a short hostname into the 64-byte sname
// field).
func (e *Encoder) WriteFill(b byte, n int) (int, error) {
	if n < 0 {
		return 0, &ErrAddOverflow{}
	}
	for i := 0; i < n; i++ {
		e.buf.WriteByte(b)
	}
	return n, nil
}

// WriteIP appends a 4-byte IPv4 address. A nil or non-IPv4 address is
// written as four zero bytes.
func (e *Encoder) WriteIP(ip net.IP) (int, error) {
	ip4 := ip.To4()
	if ip4 == nil {
		ip4 = net.IPv4zero.To4()
	}
	return e.Write(ip4)
}

// WriteIPs appends a list of IPv4 addresses back to back.
func (e *Encoder) WriteIPs(ips []net.IP) (int, error) {
	n := 0
	for _, ip := range ips {
		written, err := e.WriteIP(ip)
		if err != nil {
			return n, err
		}
		n += written
	}
	return n, nil
}

// WriteIPPairs appends a list of (address, mask) pairs back to back.
func (e *Encoder) WriteIPPairs(pairs []IPPair) (int, error) {
	n := 0
	for _, p := range pairs {
		written, err := e.WriteIP(p.Addr)
		if err != nil {
			return n, err
		}
		n += written
		written, err = e.WriteIP(p.Mask)
		if err != nil {
			return n, err
		}
		n += written
	}
	return n, nil
}

// WriteString appends s as raw UTF-8 bytes (no length prefix, no NUL
// terminator — framing is the caller's responsibility).
func (e *Encoder) WriteString(s string) (int, error) {
	return e.Write([]byte(s))
}
