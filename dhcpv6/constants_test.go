package dhcpv6

import "testing"

func TestMessageTypeRoundTrip(t *testing.T) {
	for n := 0; n < 256; n++ {
		if byte(MessageType(n)) != byte(n) {
			t.Fatalf("byte(MessageType(%d)) != %d", n, n)
		}
	}
}

func TestMessageTypeStrings(t *testing.T) {
	tests := []struct {
		mt   MessageType
		want string
	}{
		{MessageTypeSolicit, "SOLICIT"},
		{MessageTypeAdvertise, "ADVERTISE"},
		{MessageTypeRequest, "REQUEST"},
		{MessageTypeReply, "REPLY"},
		{MessageTypeDHCPv4Response, "DHCPV4-RESPONSE"},
		{MessageType(200), "UNKNOWN"},
	}
	for _, tt := range tests {
		if got := tt.mt.String(); got != tt.want {
			t.Errorf("MessageType(%d).String() = %q, want %q", tt.mt, got, tt.want)
		}
	}
}

func TestOptionCodeRoundTrip(t *testing.T) {
	for n := 0; n < 65536; n += 257 {
		if uint16(OptionCode(n)) != uint16(n) {
			t.Fatalf("uint16(OptionCode(%d)) != %d", n, n)
		}
	}
}
