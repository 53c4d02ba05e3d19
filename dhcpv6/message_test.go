package dhcpv6

import (
	"bytes"
	"net"
	"testing"

	"github.com/athena-dhcpd/dhcpcodec/dhcpwire"
)

// buildSolicitWire assembles a v6 SOLICIT carrying a client DUID, elapsed
// time, an IA_NA with a nested IAADDR, and an ORO requesting DNS servers
// and domain search list, mirroring a typical client solicit.
func buildSolicitWire(t *testing.T) []byte {
	t.Helper()
	var buf bytes.Buffer
	e := dhcpwire.NewEncoder(&buf)

	e.WriteUint8(byte(MessageTypeSolicit))
	e.Write([]byte{0x10, 0x08, 0x74})

	clientID := Option{Code: OptionClientID, Value: DUIDValue{Bytes: []byte{0x00, 0x01, 0x00, 0x01, 0xaa, 0xbb, 0xcc, 0xdd}}}
	elapsed := Option{Code: OptionElapsedTime, Value: Uint16Value{Val: 0}}
	oro := Option{Code: OptionORO, Value: OptionCodeListValue{Codes: []OptionCode{23, 24}}}

	iaAddrOpts := NewOptions()
	ianaOpts := NewOptions()
	ianaOpts.Set(Option{Code: OptionIAAddr, Value: IAAddrValue{
		Address:           net.ParseIP("2001:db8::1"),
		PreferredLifetime: 3600,
		ValidLifetime:     7200,
		Options:           iaAddrOpts,
	}})
	iana := Option{Code: OptionIANA, Value: IdentityAssociationValue{IAID: 1, T1: 1800, T2: 2880, Options: ianaOpts}}

	opts := NewOptions()
	opts.Set(clientID)
	opts.Set(elapsed)
	opts.Set(iana)
	opts.Set(oro)

	if _, err := opts.Encode(e); err != nil {
		t.Fatalf("Encode error: %v", err)
	}

	return buf.Bytes()
}

func TestDecodeSolicitScenario(t *testing.T) {
	wire := buildSolicitWire(t)
	msg, err := DecodeBytes(wire)
	if err != nil {
		t.Fatalf("DecodeBytes error: %v", err)
	}

	if msg.MType != MessageTypeSolicit {
		t.Errorf("MType = %v, want MessageTypeSolicit", msg.MType)
	}
	want := [3]byte{0x10, 0x08, 0x74}
	if msg.TransID != want {
		t.Errorf("TransID = %v, want %v", msg.TransID, want)
	}

	clientID, ok := msg.Options.Get(OptionClientID)
	if !ok || len(clientID.DUID()) != 8 {
		t.Errorf("ClientID option missing or wrong: %+v", clientID)
	}

	iana, ok := msg.Options.Get(OptionIANA)
	if !ok {
		t.Fatal("expected IA_NA option")
	}
	ia, ok := iana.IdentityAssociation()
	if !ok || ia.IAID != 1 {
		t.Fatalf("IdentityAssociation wrong: %+v", ia)
	}
	iaddrOpt, ok := ia.Options.Get(OptionIAAddr)
	if !ok {
		t.Fatal("expected nested IAADDR option inside IA_NA")
	}
	iaddr, ok := iaddrOpt.IAAddr()
	if !ok || iaddr.PreferredLifetime != 3600 || iaddr.ValidLifetime != 7200 {
		t.Errorf("IAAddr wrong: %+v", iaddr)
	}

	oroOpt, ok := msg.Options.Get(OptionORO)
	if !ok || len(oroOpt.Codes()) != 2 {
		t.Errorf("ORO option missing or wrong: %+v", oroOpt)
	}
}

func TestSolicitSemanticRoundTrip(t *testing.T) {
	wire := buildSolicitWire(t)
	msg, err := DecodeBytes(wire)
	if err != nil {
		t.Fatalf("DecodeBytes error: %v", err)
	}

	reencoded, err := msg.EncodeBytes()
	if err != nil {
		t.Fatalf("EncodeBytes error: %v", err)
	}

	again, err := DecodeBytes(reencoded)
	if err != nil {
		t.Fatalf("redecode error: %v", err)
	}

	if again.MType != msg.MType || again.TransID != msg.TransID {
		t.Fatalf("header changed across round trip: %+v vs %+v", again, msg)
	}
	if again.Options.Len() != msg.Options.Len() {
		t.Fatalf("option count changed across round trip: %d vs %d", again.Options.Len(), msg.Options.Len())
	}
}

func TestDecodeTruncatedMessageFails(t *testing.T) {
	_, err := DecodeBytes([]byte{0x01, 0x10})
	if err == nil {
		t.Error("expected error decoding a 2-byte buffer (missing full transaction id)")
	}
}
