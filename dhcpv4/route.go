package dhcpv4

import (
	"net"

	"github.com/athena-dhcpd/dhcpcodec/dhcpwire"
)

// decodeRoutes decodes RFC 3442 classless static routes: each route is
// (prefix-length octet, ceil(prefix-length/8) significant destination
// octets, 4-byte gateway).
func decodeRoutes(b []byte) ([]Route, error) {
	var routes []Route
	i := 0
	for i < len(b) {
		prefixLen := int(b[i])
		i++
		if prefixLen > 32 {
			return nil, dhcpwire.NewErrMessageAt("classless static route: prefix length over 32", i-1)
		}
		sigOctets := (prefixLen + 7) / 8
		if i+sigOctets+4 > len(b) {
			return nil, dhcpwire.NewErrMessageAt("classless static route: truncated", i)
		}
		dest := make([]byte, 4)
		copy(dest, b[i:i+sigOctets])
		i += sigOctets
		gateway := net.IP(append([]byte(nil), b[i:i+4]...))
		i += 4

		mask := net.CIDRMask(prefixLen, 32)
		routes = append(routes, Route{
			Destination: net.IP(dest).Mask(mask),
			PrefixLen:   prefixLen,
			Gateway:     gateway,
		})
	}
	return routes, nil
}

// encodeRoutes is the inverse of decodeRoutes.
func encodeRoutes(routes []Route) []byte {
	var buf []byte
	for _, r := range routes {
		sigOctets := (r.PrefixLen + 7) / 8
		buf = append(buf, byte(r.PrefixLen))
		dest := r.Destination.To4()
		if dest == nil {
			dest = net.IPv4zero.To4()
		}
		buf = append(buf, dest[:sigOctets]...)
		gw := r.Gateway.To4()
		if gw == nil {
			gw = net.IPv4zero.To4()
		}
		buf = append(buf, gw...)
	}
	return buf
}
