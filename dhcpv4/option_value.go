package dhcpv4

import (
	"net"

	"github.com/athena-dhcpd/dhcpcodec/dhcpname"
)

// OptionValue is the payload carried by a DhcpOption. It is a closed set:
// every option body shape named in this package's decoder has exactly one
// corresponding OptionValue implementation, so a type switch over Value is
// exhaustive in practice even though Go can't enforce that at compile
// time. isOptionValue is unexported to keep the set closed to this
// package.
type OptionValue interface {
	isOptionValue()
}

// IPValue is a single IPv4 address body (SubnetMask, SwapServer,
// BroadcastAddr, RouterSolicitationAddr, RequestedIpAddress,
// ServerIdentifier, SubnetSelection, TFTPServerAddress).
type IPValue struct{ IP net.IP }

// IPListValue is a list of IPv4 addresses, N%4==0 on the wire.
type IPListValue struct{ IPs []net.IP }

// IPPairListValue is a list of (address, mask) pairs, N%8==0 on the wire
// (StaticRoutingTable, PolicyFilter).
type IPPairListValue struct{ Pairs []IPPair }

// StringValue is UTF-8 text whose length is the option's length octet.
type StringValue struct{ Str string }

// Uint8Value is a single unsigned byte body.
type Uint8Value struct{ Val uint8 }

// Uint16Value is a two-byte big-endian unsigned body.
type Uint16Value struct{ Val uint16 }

// Uint16ListValue is a list of two-byte big-endian unsigned values
// (PathMTUPlateauTable).
type Uint16ListValue struct{ Vals []uint16 }

// Uint32Value is a four-byte big-endian unsigned body.
type Uint32Value struct{ Val uint32 }

// Int32Value is a four-byte big-endian signed body (TimeOffset).
type Int32Value struct{ Val int32 }

// BoolValue is a one-byte boolean body. Canonical encode is exactly one
// byte: 0x01 for true, 0x00 for false.
type BoolValue struct{ Val bool }

// BytesValue is an opaque byte body whose internal structure this package
// does not interpret further (VendorExtensions, ParameterRequestList,
// ClassIdentifier, ClientIdentifier, NetWareIPOption, RelayAgentInfo,
// UserClass, VIVendorClass, VIVendorSpecific).
type BytesValue struct{ Bytes []byte }

// MessageTypeValue carries a decoded DHCP message type (option 53).
type MessageTypeValue struct{ Type MessageType }

// NodeTypeValue carries a decoded NetBIOS node type (option 46).
type NodeTypeValue struct{ Type NodeType }

// Route is a single classless static route (RFC 3442): Destination is
// masked to PrefixLen significant bits.
type Route struct {
	Destination net.IP
	PrefixLen   int
	Gateway     net.IP
}

// RouteListValue carries RFC 3442 classless static routes (option 121).
type RouteListValue struct{ Routes []Route }

// ClientFQDNValue carries option 81 (RFC 4702): a one-byte flags field
// plus a domain name. The two deprecated RCODE bytes that historically
// followed the flags octet are consumed on decode and always written as
// zero on encode, per RFC 4702 §2.1.
type ClientFQDNValue struct {
	Flags  byte
	Domain string
}

// ParsedDomain validates Domain against DNS naming rules via the dhcpname
// adapter, returning a descriptive error on a malformed name. Decode never
// calls this itself (option 81 is carried as a raw string so decode stays
// total even for a non-conformant name); it is the caller's opt-in step.
func (v ClientFQDNValue) ParsedDomain() (dhcpname.Domain, error) {
	return dhcpname.ParseDomain(v.Domain)
}

// UnknownValue preserves a code this package does not interpret, keeping
// decode lossless: the original code, declared length, and raw body are
// all retained so a round-trip re-encodes byte-for-byte equivalent TLV.
type UnknownValue struct {
	Code   byte
	Length byte
	Bytes  []byte
}

func (IPValue) isOptionValue()           {}
func (IPListValue) isOptionValue()       {}
func (IPPairListValue) isOptionValue()   {}
func (StringValue) isOptionValue()       {}
func (Uint8Value) isOptionValue()        {}
func (Uint16Value) isOptionValue()       {}
func (Uint16ListValue) isOptionValue()   {}
func (Uint32Value) isOptionValue()       {}
func (Int32Value) isOptionValue()        {}
func (BoolValue) isOptionValue()         {}
func (BytesValue) isOptionValue()        {}
func (MessageTypeValue) isOptionValue()  {}
func (NodeTypeValue) isOptionValue()     {}
func (RouteListValue) isOptionValue()    {}
func (ClientFQDNValue) isOptionValue()   {}
func (UnknownValue) isOptionValue()      {}
