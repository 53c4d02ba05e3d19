package dhcpv6

import (
	"bytes"
	"net"

	"github.com/athena-dhcpd/dhcpcodec/dhcpwire"
)

// Option is a single decoded DHCPv6 option: a code plus the typed body
// that code's wire rules produce.
type Option struct {
	Code  OptionCode
	Value OptionValue
}

// DUID returns the option's DUID bytes, or nil if Value isn't DUIDValue.
func (o Option) DUID() []byte {
	if v, ok := o.Value.(DUIDValue); ok {
		return v.Bytes
	}
	return nil
}

// IdentityAssociation returns the option's IA_NA/IA_TA body, or the zero
// value if Value isn't IdentityAssociationValue.
func (o Option) IdentityAssociation() (IdentityAssociationValue, bool) {
	v, ok := o.Value.(IdentityAssociationValue)
	return v, ok
}

// IAAddr returns the option's IAADDR body, or the zero value if Value
// isn't IAAddrValue.
func (o Option) IAAddr() (IAAddrValue, bool) {
	v, ok := o.Value.(IAAddrValue)
	return v, ok
}

// Codes returns the option's requested-code list, or nil if Value isn't
// OptionCodeListValue.
func (o Option) Codes() []OptionCode {
	if v, ok := o.Value.(OptionCodeListValue); ok {
		return v.Codes
	}
	return nil
}

// Uint8 returns the option's byte body, or 0 if Value isn't Uint8Value.
func (o Option) Uint8() uint8 {
	if v, ok := o.Value.(Uint8Value); ok {
		return v.Val
	}
	return 0
}

// Uint16 returns the option's 16-bit body, or 0 if Value isn't
// Uint16Value.
func (o Option) Uint16() uint16 {
	if v, ok := o.Value.(Uint16Value); ok {
		return v.Val
	}
	return 0
}

// IP returns the option's IPv6 address, or nil if Value isn't
// AddressValue.
func (o Option) IP() net.IP {
	if v, ok := o.Value.(AddressValue); ok {
		return v.IP
	}
	return nil
}

// Status returns the option's status code body, or the zero value if
// Value isn't StatusCodeValue.
func (o Option) Status() (StatusCodeValue, bool) {
	v, ok := o.Value.(StatusCodeValue)
	return v, ok
}

// Present reports whether Value is a zero-length presence marker
// (RapidCommit, ReconfigureAccept).
func (o Option) Present() bool {
	_, ok := o.Value.(PresenceValue)
	return ok
}

// Vendor returns the option's enterprise-numbered body, or the zero value
// if Value isn't VendorValue.
func (o Option) Vendor() (VendorValue, bool) {
	v, ok := o.Value.(VendorValue)
	return v, ok
}

// Bytes returns the option's opaque byte body, or nil if Value isn't
// BytesValue.
func (o Option) Bytes() []byte {
	if v, ok := o.Value.(BytesValue); ok {
		return v.Bytes
	}
	return nil
}

// Unknown returns the preserved code/length/bytes for an unrecognized
// option, and true if Value is an UnknownValue.
func (o Option) Unknown() (UnknownValue, bool) {
	v, ok := o.Value.(UnknownValue)
	return v, ok
}

// decodeOption reads one option's body given its already-consumed code
// and length, dispatching on code to a typed body reader that consumes
// exactly length bytes.
func decodeOption(d *dhcpwire.Decoder, code OptionCode, length uint16) (Option, error) {
	switch code {
	case OptionClientID, OptionServerID:
		b, err := d.ReadArrayN(int(length))
		if err != nil {
			return Option{}, err
		}
		return Option{Code: code, Value: DUIDValue{Bytes: b}}, nil

	case OptionIANA, OptionIATA:
		return decodeIdentityAssociation(d, code, length)

	case OptionIAAddr:
		return decodeIAAddr(d, length)

	case OptionORO:
		if length%2 != 0 {
			return Option{}, dhcpwire.NewErrMessageAt("ORO length must be a multiple of 2", d.Index())
		}
		codes := make([]OptionCode, 0, length/2)
		for i := 0; i < int(length); i += 2 {
			v, err := d.ReadUint16()
			if err != nil {
				return Option{}, err
			}
			codes = append(codes, OptionCode(v))
		}
		return Option{Code: code, Value: OptionCodeListValue{Codes: codes}}, nil

	case OptionPreference:
		if length != 1 {
			return Option{}, badLength(code, length, 1)
		}
		v, err := d.ReadUint8()
		if err != nil {
			return Option{}, err
		}
		return Option{Code: code, Value: Uint8Value{Val: v}}, nil

	case OptionElapsedTime:
		if length != 2 {
			return Option{}, badLength(code, length, 2)
		}
		v, err := d.ReadUint16()
		if err != nil {
			return Option{}, err
		}
		return Option{Code: code, Value: Uint16Value{Val: v}}, nil

	case OptionReconfigureMessage:
		if length != 1 {
			return Option{}, badLength(code, length, 1)
		}
		v, err := d.ReadUint8()
		if err != nil {
			return Option{}, err
		}
		return Option{Code: code, Value: Uint8Value{Val: v}}, nil

	case OptionUnicast:
		if length != 16 {
			return Option{}, badLength(code, length, 16)
		}
		b, err := d.ReadSlice(16)
		if err != nil {
			return Option{}, err
		}
		ip := make(net.IP, 16)
		copy(ip, b)
		return Option{Code: code, Value: AddressValue{IP: ip}}, nil

	case OptionStatusCode:
		if length < 2 {
			return Option{}, badLength(code, length, 2)
		}
		statusCode, err := d.ReadUint16()
		if err != nil {
			return Option{}, err
		}
		msg, err := d.ReadString(int(length) - 2)
		if err != nil {
			return Option{}, err
		}
		return Option{Code: code, Value: StatusCodeValue{Code: statusCode, Message: msg}}, nil

	case OptionRapidCommit, OptionReconfigureAccept:
		if length != 0 {
			return Option{}, badLength(code, length, 0)
		}
		return Option{Code: code, Value: PresenceValue{}}, nil

	case OptionVendorClass, OptionVendorOpts:
		if length < 4 {
			return Option{}, badLength(code, length, 4)
		}
		enterprise, err := d.ReadUint32()
		if err != nil {
			return Option{}, err
		}
		data, err := d.ReadArrayN(int(length) - 4)
		if err != nil {
			return Option{}, err
		}
		return Option{Code: code, Value: VendorValue{EnterpriseNumber: enterprise, Data: data}}, nil

	case OptionRelayMessage, OptionAuth, OptionInterfaceID, OptionUserClass:
		b, err := d.ReadArrayN(int(length))
		if err != nil {
			return Option{}, err
		}
		return Option{Code: code, Value: BytesValue{Bytes: b}}, nil

	default:
		b, err := d.ReadArrayN(int(length))
		if err != nil {
			return Option{}, err
		}
		return Option{Code: code, Value: UnknownValue{Code: uint16(code), Length: length, Bytes: b}}, nil
	}
}

func decodeIdentityAssociation(d *dhcpwire.Decoder, code OptionCode, length uint16) (Option, error) {
	if length < 12 {
		return Option{}, badLength(code, length, 12)
	}
	iaid, err := d.ReadUint32()
	if err != nil {
		return Option{}, err
	}
	t1, err := d.ReadUint32()
	if err != nil {
		return Option{}, err
	}
	t2, err := d.ReadUint32()
	if err != nil {
		return Option{}, err
	}
	body, err := d.ReadSlice(int(length) - 12)
	if err != nil {
		return Option{}, err
	}
	nested, err := DecodeOptions(dhcpwire.NewDecoder(body))
	if err != nil {
		return Option{}, err
	}
	return Option{Code: code, Value: IdentityAssociationValue{IAID: iaid, T1: t1, T2: t2, Options: nested}}, nil
}

func decodeIAAddr(d *dhcpwire.Decoder, length uint16) (Option, error) {
	if length < 24 {
		return Option{}, badLength(OptionIAAddr, length, 24)
	}
	addr, err := d.ReadSlice(16)
	if err != nil {
		return Option{}, err
	}
	ip := make(net.IP, 16)
	copy(ip, addr)
	preferred, err := d.ReadUint32()
	if err != nil {
		return Option{}, err
	}
	valid, err := d.ReadUint32()
	if err != nil {
		return Option{}, err
	}
	body, err := d.ReadSlice(int(length) - 24)
	if err != nil {
		return Option{}, err
	}
	nested, err := DecodeOptions(dhcpwire.NewDecoder(body))
	if err != nil {
		return Option{}, err
	}
	return Option{Code: OptionIAAddr, Value: IAAddrValue{Address: ip, PreferredLifetime: preferred, ValidLifetime: valid, Options: nested}}, nil
}

func badLength(code OptionCode, got, want uint16) error {
	return dhcpwire.NewErrMessage(
		"option " + itoa(int(code)) + ": length " + itoa(int(got)) + " does not match expected " + itoa(int(want)),
	)
}

// itoa avoids pulling in strconv for this one small formatting need; kept
// local and unexported, mirroring dhcpv4's helper of the same name.
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

// encode writes this option's code, 2-byte length, and body to e.
func (o Option) encode(e *dhcpwire.Encoder) (int, error) {
	body, err := o.encodeBody()
	if err != nil {
		return 0, err
	}
	if len(body) > 0xFFFF {
		return 0, dhcpwire.NewErrMessage("option body exceeds 65535 bytes")
	}

	n := 0
	w, err := e.WriteUint16(uint16(o.Code))
	if err != nil {
		return n, err
	}
	n += w
	w, err = e.WriteUint16(uint16(len(body)))
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

func (o Option) encodeBody() ([]byte, error) {
	var buf bytes.Buffer
	e := dhcpwire.NewEncoder(&buf)

	switch v := o.Value.(type) {
	case DUIDValue:
		e.Write(v.Bytes)
	case IdentityAssociationValue:
		e.WriteUint32(v.IAID)
		e.WriteUint32(v.T1)
		e.WriteUint32(v.T2)
		if v.Options != nil {
			v.Options.Encode(e)
		}
	case IAAddrValue:
		ip16 := v.Address.To16()
		if ip16 == nil {
			ip16 = net.IPv6zero
		}
		e.Write(ip16)
		e.WriteUint32(v.PreferredLifetime)
		e.WriteUint32(v.ValidLifetime)
		if v.Options != nil {
			v.Options.Encode(e)
		}
	case OptionCodeListValue:
		for _, c := range v.Codes {
			e.WriteUint16(uint16(c))
		}
	case Uint8Value:
		e.WriteUint8(v.Val)
	case Uint16Value:
		e.WriteUint16(v.Val)
	case AddressValue:
		ip16 := v.IP.To16()
		if ip16 == nil {
			ip16 = net.IPv6zero
		}
		e.Write(ip16)
	case StatusCodeValue:
		e.WriteUint16(v.Code)
		e.WriteString(v.Message)
	case PresenceValue:
		// zero-length body
	case VendorValue:
		e.WriteUint32(v.EnterpriseNumber)
		e.Write(v.Data)
	case BytesValue:
		e.Write(v.Bytes)
	case UnknownValue:
		e.Write(v.Bytes)
	}
	return buf.Bytes(), nil
}
