package dhcpv4

import "testing"

func TestOpCodeRoundTrip(t *testing.T) {
	for n := 0; n < 256; n++ {
		if byte(OpCode(n)) != byte(n) {
			t.Fatalf("byte(OpCode(%d)) != %d", n, n)
		}
	}
}

func TestMessageTypeStrings(t *testing.T) {
	tests := []struct {
		mt   MessageType
		want string
	}{
		{MessageTypeDiscover, "DHCPDISCOVER"},
		{MessageTypeOffer, "DHCPOFFER"},
		{MessageTypeRequest, "DHCPREQUEST"},
		{MessageTypeDecline, "DHCPDECLINE"},
		{MessageTypeAck, "DHCPACK"},
		{MessageTypeNak, "DHCPNAK"},
		{MessageTypeRelease, "DHCPRELEASE"},
		{MessageTypeInform, "DHCPINFORM"},
		{MessageType(99), "UNKNOWN"},
	}
	for _, tt := range tests {
		if got := tt.mt.String(); got != tt.want {
			t.Errorf("MessageType(%d).String() = %q, want %q", tt.mt, got, tt.want)
		}
	}
}

func TestMessageTypeRoundTrip(t *testing.T) {
	for n := 0; n < 256; n++ {
		if byte(MessageType(n)) != byte(n) {
			t.Fatalf("byte(MessageType(%d)) != %d", n, n)
		}
	}
}

func TestOptionCodeRoundTrip(t *testing.T) {
	for n := 0; n < 256; n++ {
		if byte(OptionCode(n)) != byte(n) {
			t.Fatalf("byte(OptionCode(%d)) != %d", n, n)
		}
	}
}

func TestNodeTypeStrings(t *testing.T) {
	tests := []struct {
		nt   NodeType
		want string
	}{
		{NodeTypeB, "B-node"},
		{NodeTypeP, "P-node"},
		{NodeTypeM, "M-node"},
		{NodeTypeH, "H-node"},
		{NodeType(0), "unknown"},
	}
	for _, tt := range tests {
		if got := tt.nt.String(); got != tt.want {
			t.Errorf("NodeType(%d).String() = %q, want %q", tt.nt, got, tt.want)
		}
	}
}

func TestMagicCookieValue(t *testing.T) {
	want := [4]byte{0x63, 0x82, 0x53, 0x63}
	if MagicCookie != want {
		t.Errorf("MagicCookie = %v, want %v", MagicCookie, want)
	}
}
