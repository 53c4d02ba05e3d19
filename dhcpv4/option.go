package dhcpv4

import (
	"net"

	"github.com/athena-dhcpd/dhcpcodec/dhcpwire"
)

// DhcpOption is a single decoded DHCP option: a code plus the typed body
// that code's wire rules produce. Pad and End carry a nil Value.
type DhcpOption struct {
	Code  OptionCode
	Value OptionValue
}

// IP returns the option's IPv4 address, or nil if Value isn't IPValue.
func (o DhcpOption) IP() net.IP {
	if v, ok := o.Value.(IPValue); ok {
		return v.IP
	}
	return nil
}

// IPs returns the option's IPv4 address list, or nil if Value isn't
// IPListValue.
func (o DhcpOption) IPs() []net.IP {
	if v, ok := o.Value.(IPListValue); ok {
		return v.IPs
	}
	return nil
}

// IPPairs returns the option's (address, mask) pairs, or nil if Value
// isn't IPPairListValue.
func (o DhcpOption) IPPairs() []IPPair {
	if v, ok := o.Value.(IPPairListValue); ok {
		return v.Pairs
	}
	return nil
}

// Str returns the option's text body, or "" if Value isn't StringValue.
func (o DhcpOption) Str() string {
	if v, ok := o.Value.(StringValue); ok {
		return v.Str
	}
	return ""
}

// Uint8 returns the option's byte body, or 0 if Value isn't Uint8Value.
func (o DhcpOption) Uint8() uint8 {
	if v, ok := o.Value.(Uint8Value); ok {
		return v.Val
	}
	return 0
}

// Uint16 returns the option's 16-bit body, or 0 if Value isn't Uint16Value.
func (o DhcpOption) Uint16() uint16 {
	if v, ok := o.Value.(Uint16Value); ok {
		return v.Val
	}
	return 0
}

// Uint16List returns the option's list of 16-bit values, or nil if Value
// isn't Uint16ListValue.
func (o DhcpOption) Uint16List() []uint16 {
	if v, ok := o.Value.(Uint16ListValue); ok {
		return v.Vals
	}
	return nil
}

// Uint32 returns the option's 32-bit body, or 0 if Value isn't Uint32Value.
func (o DhcpOption) Uint32() uint32 {
	if v, ok := o.Value.(Uint32Value); ok {
		return v.Val
	}
	return 0
}

// Int32 returns the option's signed 32-bit body, or 0 if Value isn't
// Int32Value.
func (o DhcpOption) Int32() int32 {
	if v, ok := o.Value.(Int32Value); ok {
		return v.Val
	}
	return 0
}

// Bool returns the option's boolean body, or false if Value isn't
// BoolValue.
func (o DhcpOption) Bool() bool {
	if v, ok := o.Value.(BoolValue); ok {
		return v.Val
	}
	return false
}

// Bytes returns the option's opaque byte body, or nil if Value isn't
// BytesValue.
func (o DhcpOption) Bytes() []byte {
	if v, ok := o.Value.(BytesValue); ok {
		return v.Bytes
	}
	return nil
}

// MessageType returns the decoded message type, or 0 if Value isn't
// MessageTypeValue.
func (o DhcpOption) MessageType() MessageType {
	if v, ok := o.Value.(MessageTypeValue); ok {
		return v.Type
	}
	return 0
}

// NodeType returns the decoded node type, or 0 if Value isn't
// NodeTypeValue.
func (o DhcpOption) NodeType() NodeType {
	if v, ok := o.Value.(NodeTypeValue); ok {
		return v.Type
	}
	return 0
}

// Routes returns the decoded classless static routes, or nil if Value
// isn't RouteListValue.
func (o DhcpOption) Routes() []Route {
	if v, ok := o.Value.(RouteListValue); ok {
		return v.Routes
	}
	return nil
}

// Unknown returns the preserved code/length/bytes for an unrecognized
// option, and true if Value is an UnknownValue.
func (o DhcpOption) Unknown() (UnknownValue, bool) {
	v, ok := o.Value.(UnknownValue)
	return v, ok
}

// decodeOption reads one option's code, length, and body. It assumes the
// Pad/End short-circuit has already been handled by the caller (the
// options container, which needs to special-case those two codes to
// decide whether to continue or stop).
func decodeOption(d *dhcpwire.Decoder, code OptionCode) (DhcpOption, error) {
	length, err := d.ReadUint8()
	if err != nil {
		return DhcpOption{}, err
	}

	switch code {
	case OptionSubnetMask, OptionSwapServer, OptionBroadcastAddr,
		OptionRouterSolicitationAddr, OptionRequestedIPAddress,
		OptionServerIdentifier, OptionSubnetSelection, OptionTFTPServerAddress:
		if length != 4 {
			return DhcpOption{}, badLength(code, length, 4)
		}
		ip, err := d.ReadIP()
		if err != nil {
			return DhcpOption{}, err
		}
		return DhcpOption{Code: code, Value: IPValue{IP: ip}}, nil

	case OptionRouter, OptionTimeServer, OptionNameServer, OptionDomainNameServer,
		OptionLogServer, OptionQuoteServer, OptionLprServer, OptionImpressServer,
		OptionResourceLocationServer, OptionNIS, OptionNTPServers,
		OptionNetBiosNameServers, OptionNetBiosDatagramDistServer,
		OptionXFontServer, OptionXDisplayManager:
		ips, err := d.ReadIPs(int(length))
		if err != nil {
			return DhcpOption{}, err
		}
		return DhcpOption{Code: code, Value: IPListValue{IPs: ips}}, nil

	case OptionStaticRoutingTable, OptionPolicyFilter:
		pairs, err := d.ReadIPPairs(int(length))
		if err != nil {
			return DhcpOption{}, err
		}
		return DhcpOption{Code: code, Value: IPPairListValue{Pairs: pairs}}, nil

	case OptionHostname, OptionMeritDumpFile, OptionDomainName, OptionRootPath,
		OptionExtensionsPath, OptionNISDomain, OptionNetBiosScope, OptionMessage,
		OptionNetWareIPDomain, OptionTFTPServerName, OptionBootfileName:
		s, err := d.ReadString(int(length))
		if err != nil {
			return DhcpOption{}, err
		}
		return DhcpOption{Code: code, Value: StringValue{Str: s}}, nil

	case OptionDefaultIPTtl, OptionDefaultTCPTtl, OptionOptionOverload:
		if length != 1 {
			return DhcpOption{}, badLength(code, length, 1)
		}
		v, err := d.ReadUint8()
		if err != nil {
			return DhcpOption{}, err
		}
		return DhcpOption{Code: code, Value: Uint8Value{Val: v}}, nil

	case OptionBootFileSize, OptionMaxDatagramSize, OptionInterfaceMTU, OptionMaxMessageSize:
		if length != 2 {
			return DhcpOption{}, badLength(code, length, 2)
		}
		v, err := d.ReadUint16()
		if err != nil {
			return DhcpOption{}, err
		}
		return DhcpOption{Code: code, Value: Uint16Value{Val: v}}, nil

	case OptionPathMTUPlateauTable:
		if length%2 != 0 {
			return DhcpOption{}, dhcpwire.NewErrMessageAt("PathMTUPlateauTable length must be a multiple of 2", d.Index())
		}
		vals := make([]uint16, 0, length/2)
		for i := 0; i < int(length); i += 2 {
			v, err := d.ReadUint16()
			if err != nil {
				return DhcpOption{}, err
			}
			vals = append(vals, v)
		}
		return DhcpOption{Code: code, Value: Uint16ListValue{Vals: vals}}, nil

	case OptionArpCacheTimeout, OptionTCPKeepaliveInterval, OptionAddressLeaseTime,
		OptionRenewal, OptionRebinding, OptionPathMTUAgingTimeout:
		if length != 4 {
			return DhcpOption{}, badLength(code, length, 4)
		}
		v, err := d.ReadUint32()
		if err != nil {
			return DhcpOption{}, err
		}
		return DhcpOption{Code: code, Value: Uint32Value{Val: v}}, nil

	case OptionTimeOffset:
		if length != 4 {
			return DhcpOption{}, badLength(code, length, 4)
		}
		v, err := d.ReadInt32()
		if err != nil {
			return DhcpOption{}, err
		}
		return DhcpOption{Code: code, Value: Int32Value{Val: v}}, nil

	case OptionIPForwarding, OptionNonLocalSrcRouting, OptionAllSubnetsLocal,
		OptionPerformMaskDiscovery, OptionMaskSupplier, OptionPerformRouterDiscovery,
		OptionEthernetEncapsulation, OptionTCPKeepaliveGarbage, OptionTrailerEncapsulation:
		if length != 1 {
			return DhcpOption{}, badLength(code, length, 1)
		}
		v, err := d.ReadUint8()
		if err != nil {
			return DhcpOption{}, err
		}
		return DhcpOption{Code: code, Value: BoolValue{Val: v != 0}}, nil

	case OptionVendorExtensions, OptionParameterRequestList, OptionClassIdentifier,
		OptionClientIdentifier, OptionNetWareIPOption, OptionRelayAgentInfo,
		OptionUserClass, OptionVIVendorClass, OptionVIVendorSpecific:
		b, err := d.ReadArrayN(int(length))
		if err != nil {
			return DhcpOption{}, err
		}
		return DhcpOption{Code: code, Value: BytesValue{Bytes: b}}, nil

	case OptionMessageType:
		if length != 1 {
			return DhcpOption{}, badLength(code, length, 1)
		}
		v, err := d.ReadUint8()
		if err != nil {
			return DhcpOption{}, err
		}
		return DhcpOption{Code: code, Value: MessageTypeValue{Type: MessageType(v)}}, nil

	case OptionNetBiosNodeType:
		if length != 1 {
			return DhcpOption{}, badLength(code, length, 1)
		}
		v, err := d.ReadUint8()
		if err != nil {
			return DhcpOption{}, err
		}
		return DhcpOption{Code: code, Value: NodeTypeValue{Type: NodeType(v)}}, nil

	case OptionClasslessStaticRoute:
		b, err := d.ReadSlice(int(length))
		if err != nil {
			return DhcpOption{}, err
		}
		routes, err := decodeRoutes(b)
		if err != nil {
			return DhcpOption{}, err
		}
		return DhcpOption{Code: code, Value: RouteListValue{Routes: routes}}, nil

	case OptionClientFQDN:
		if length < 3 {
			return DhcpOption{}, badLength(code, length, 3)
		}
		flags, err := d.ReadUint8()
		if err != nil {
			return DhcpOption{}, err
		}
		if _, err := d.ReadArrayN(2); err != nil { // deprecated RCODE1/RCODE2, discarded
			return DhcpOption{}, err
		}
		domain, err := d.ReadString(int(length) - 3)
		if err != nil {
			return DhcpOption{}, err
		}
		return DhcpOption{Code: code, Value: ClientFQDNValue{Flags: flags, Domain: domain}}, nil

	default:
		b, err := d.ReadArrayN(int(length))
		if err != nil {
			return DhcpOption{}, err
		}
		return DhcpOption{Code: code, Value: UnknownValue{Code: byte(code), Length: length, Bytes: b}}, nil
	}
}

func badLength(code OptionCode, got, want byte) error {
	return dhcpwire.NewErrMessage(
		"option " + itoa(int(code)) + ": length " + itoa(int(got)) + " does not match expected " + itoa(int(want)),
	)
}

// itoa avoids pulling in strconv for this one small formatting need in
// the hot decode path; kept local and unexported.
func itoa(n int) string {
	if n == 0 {
		return "0"
	}
	neg := n < 0
	if neg {
		n = -n
	}
	var buf [20]byte
	i := len(buf)
	for n > 0 {
		i--
		buf[i] = byte('0' + n%10)
		n /= 10
	}
	if neg {
		i--
		buf[i] = '-'
	}
	return string(buf[i:])
}

// encode writes this option's code, length octet (if applicable), and
// body to e.
func (o DhcpOption) encode(e *dhcpwire.Encoder) (int, error) {
	if o.Code == OptionPad || o.Code == OptionEnd {
		n, err := e.WriteUint8(byte(o.Code))
		return n, err
	}

	body, err := o.encodeBody()
	if err != nil {
		return 0, err
	}
	if len(body) > 255 {
		return 0, dhcpwire.NewErrMessage("option body exceeds 255 bytes")
	}

	n := 0
	w, err := e.WriteUint8(byte(o.Code))
	if err != nil {
		return n, err
	}
	n += w
	w, err = e.WriteUint8(byte(len(body)))
	if err != nil {
		return n, err
	}
	n += w
	w, err = e.Write(body)
	if err != nil {
		return n, err
	}
	n += w
	return n, nil
}

func (o DhcpOption) encodeBody() ([]byte, error) {
	var buf dhcpwireBuffer
	e := buf.encoder()

	switch v := o.Value.(type) {
	case IPValue:
		e.WriteIP(v.IP)
	case IPListValue:
		e.WriteIPs(v.IPs)
	case IPPairListValue:
		e.WriteIPPairs(v.Pairs)
	case StringValue:
		e.WriteString(v.Str)
	case Uint8Value:
		e.WriteUint8(v.Val)
	case Uint16Value:
		e.WriteUint16(v.Val)
	case Uint16ListValue:
		for _, u := range v.Vals {
			e.WriteUint16(u)
		}
	case Uint32Value:
		e.WriteUint32(v.Val)
	case Int32Value:
		e.WriteInt32(v.Val)
	case BoolValue:
		if v.Val {
			e.WriteUint8(1)
		} else {
			e.WriteUint8(0)
		}
	case BytesValue:
		e.Write(v.Bytes)
	case MessageTypeValue:
		e.WriteUint8(byte(v.Type))
	case NodeTypeValue:
		e.WriteUint8(byte(v.Type))
	case RouteListValue:
		e.Write(encodeRoutes(v.Routes))
	case ClientFQDNValue:
		e.WriteUint8(v.Flags)
		e.WriteFill(0, 2) // deprecated RCODE1/RCODE2, always re-emitted as zero
		e.WriteString(v.Domain)
	case UnknownValue:
		e.Write(v.Bytes)
	case nil:
		// Pad/End handled above; any other nil Value encodes as empty body.
	}
	return buf.Bytes(), nil
}
