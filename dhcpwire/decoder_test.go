package dhcpwire

import (
	"errors"
	"testing"
)

func TestReadUint8Bounds(t *testing.T) {
	d := NewDecoder(nil)
	_, err := d.ReadUint8()
	var eob *ErrEndOfBuffer
	if !errors.As(err, &eob) {
		t.Fatalf("ReadUint8() error = %v, want *ErrEndOfBuffer", err)
	}
	if d.Index() != 0 {
		t.Errorf("Index() = %d, want 0 (cursor must not advance on failure)", d.Index())
	}
}

func TestReadUint16BigEndian(t *testing.T) {
	d := NewDecoder([]byte{0x01, 0x02})
	v, err := d.ReadUint16()
	if err != nil {
		t.Fatalf("ReadUint16() error: %v", err)
	}
	if v != 0x0102 {
		t.Errorf("ReadUint16() = 0x%04x, want 0x0102", v)
	}
}

func TestReadUint32BigEndian(t *testing.T) {
	d := NewDecoder([]byte{0x01, 0x02, 0x03, 0x04})
	v, err := d.ReadUint32()
	if err != nil {
		t.Fatalf("ReadUint32() error: %v", err)
	}
	if v != 0x01020304 {
		t.Errorf("ReadUint32() = 0x%08x, want 0x01020304", v)
	}
}

func TestReadInt32TwosComplement(t *testing.T) {
	d := NewDecoder([]byte{0xFF, 0xFF, 0xFF, 0xFF})
	v, err := d.ReadInt32()
	if err != nil {
		t.Fatalf("ReadInt32() error: %v", err)
	}
	if v != -1 {
		t.Errorf("ReadInt32() = %d, want -1", v)
	}
}

func TestCursorBoundsForEveryOp(t *testing.T) {
	tests := []struct {
		name string
		buf  []byte // one byte shorter than (or well short of) what op needs
		op   func(d *Decoder) error
	}{
		{"ReadUint8", []byte{}, func(d *Decoder) error { _, err := d.ReadUint8(); return err }},
		{"ReadUint16", []byte{0x01}, func(d *Decoder) error { _, err := d.ReadUint16(); return err }},
		{"ReadUint32", []byte{0x01, 0x02}, func(d *Decoder) error { _, err := d.ReadUint32(); return err }},
		{"ReadInt32", []byte{0x01, 0x02}, func(d *Decoder) error { _, err := d.ReadInt32(); return err }},
		{"ReadSlice(5)", []byte{0x01, 0x02}, func(d *Decoder) error { _, err := d.ReadSlice(5); return err }},
		{"ReadIP", []byte{0x01, 0x02}, func(d *Decoder) error { _, err := d.ReadIP(); return err }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := NewDecoder(tt.buf)
			err := tt.op(d)
			var eob *ErrEndOfBuffer
			if !errors.As(err, &eob) {
				t.Fatalf("%s on short buffer: error = %v, want *ErrEndOfBuffer", tt.name, err)
			}
			if d.Index() != 0 {
				t.Errorf("%s: Index() = %d after failed read, want 0", tt.name, d.Index())
			}
		})
	}
}

func TestReadIPsRequiresMultipleOf4(t *testing.T) {
	d := NewDecoder([]byte{1, 2, 3, 4, 5, 6})
	if _, err := d.ReadIPs(6); err == nil {
		t.Error("ReadIPs(6) should fail: 6 is not a multiple of 4")
	}
}

func TestReadIPPairsRequiresMultipleOf8(t *testing.T) {
	d := NewDecoder(make([]byte, 12))
	if _, err := d.ReadIPPairs(12); err == nil {
		t.Error("ReadIPPairs(12) should fail: 12 is not a multiple of 8")
	}
}

func TestReadStringStripsTrailingNUL(t *testing.T) {
	d := NewDecoder([]byte("abc\x00"))
	s, err := d.ReadString(4)
	if err != nil {
		t.Fatalf("ReadString() error: %v", err)
	}
	if s != "abc" {
		t.Errorf("ReadString() = %q, want %q", s, "abc")
	}
}

func TestReadStringRejectsInvalidUTF8(t *testing.T) {
	d := NewDecoder([]byte{0xff, 0xfe})
	if _, err := d.ReadString(2); err == nil {
		t.Error("ReadString() should reject invalid UTF-8")
	}
}

func TestReadIPPairs(t *testing.T) {
	d := NewDecoder([]byte{192, 168, 1, 0, 255, 255, 255, 0})
	pairs, err := d.ReadIPPairs(8)
	if err != nil {
		t.Fatalf("ReadIPPairs() error: %v", err)
	}
	if len(pairs) != 1 {
		t.Fatalf("len(pairs) = %d, want 1", len(pairs))
	}
	if pairs[0].Addr.String() != "192.168.1.0" || pairs[0].Mask.String() != "255.255.255.0" {
		t.Errorf("pairs[0] = %+v, unexpected", pairs[0])
	}
}
