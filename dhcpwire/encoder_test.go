package dhcpwire

import (
	"bytes"
	"net"
	"testing"
)

func TestWriteUint16BigEndian(t *testing.T) {
	var buf bytes.Buffer
	e := NewEncoder(&buf)
	n, err := e.WriteUint16(0x0102)
	if err != nil {
		t.Fatalf("WriteUint16() error: %v", err)
	}
	if n != 2 {
		t.Errorf("WriteUint16() returned %d, want 2", n)
	}
	if !bytes.Equal(buf.Bytes(), []byte{0x01, 0x02}) {
		t.Errorf("buf = %v, want [1 2]", buf.Bytes())
	}
}

func TestWriteUint32BigEndian(t *testing.T) {
	var buf bytes.Buffer
	e := NewEncoder(&buf)
	if _, err := e.WriteUint32(0x01020304); err != nil {
		t.Fatalf("WriteUint32() error: %v", err)
	}
	if !bytes.Equal(buf.Bytes(), []byte{0x01, 0x02, 0x03, 0x04}) {
		t.Errorf("buf = %v, want [1 2 3 4]", buf.Bytes())
	}
}

func TestWriteFillPadsShortFields(t *testing.T) {
	var buf bytes.Buffer
	e := NewEncoder(&buf)
	e.WriteString("hi")
	e.WriteFill(0, 6)
	if buf.Len() != 8 {
		t.Fatalf("buf.Len() = %d, want 8", buf.Len())
	}
	want := []byte{'h', 'i', 0, 0, 0, 0, 0, 0}
	if !bytes.Equal(buf.Bytes(), want) {
		t.Errorf("buf = %v, want %v", buf.Bytes(), want)
	}
}

func TestWriteIPDefaultsZeroOnNil(t *testing.T) {
	var buf bytes.Buffer
	e := NewEncoder(&buf)
	e.WriteIP(nil)
	if !bytes.Equal(buf.Bytes(), []byte{0, 0, 0, 0}) {
		t.Errorf("WriteIP(nil) = %v, want zero IPv4", buf.Bytes())
	}
}

func TestEncodeDecodeRoundTripIPs(t *testing.T) {
	ips := []net.IP{net.IPv4(192, 168, 0, 1), net.IPv4(192, 168, 1, 1)}
	var buf bytes.Buffer
	e := NewEncoder(&buf)
	if _, err := e.WriteIPs(ips); err != nil {
		t.Fatalf("WriteIPs() error: %v", err)
	}
	d := NewDecoder(buf.Bytes())
	got, err := d.ReadIPs(8)
	if err != nil {
		t.Fatalf("ReadIPs() error: %v", err)
	}
	if len(got) != 2 || !got[0].Equal(ips[0]) || !got[1].Equal(ips[1]) {
		t.Errorf("round trip = %v, want %v", got, ips)
	}
}
