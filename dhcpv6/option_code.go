package dhcpv6

// OptionCode is the two-octet option tag (RFC 3315 §24.3 registry). As
// with dhcpv4.OptionCode, it is a plain integer-backed type: any code
// without a named constant below is simply a numeric value, so
// uint16(OptionCode(n)) == n holds for every n by construction.
type OptionCode uint16

const (
	OptionClientID            OptionCode = 1
	OptionServerID            OptionCode = 2
	OptionIANA                OptionCode = 3
	OptionIATA                OptionCode = 4
	OptionIAAddr              OptionCode = 5
	OptionORO                 OptionCode = 6
	OptionPreference          OptionCode = 7
	OptionElapsedTime         OptionCode = 8
	OptionRelayMessage        OptionCode = 9
	OptionAuth                OptionCode = 11
	OptionUnicast             OptionCode = 12
	OptionStatusCode          OptionCode = 13
	OptionRapidCommit         OptionCode = 14
	OptionUserClass           OptionCode = 15
	OptionVendorClass         OptionCode = 16
	OptionVendorOpts          OptionCode = 17
	OptionInterfaceID         OptionCode = 18
	OptionReconfigureMessage  OptionCode = 19
	OptionReconfigureAccept   OptionCode = 20
)

var knownCodes = map[OptionCode]struct{}{
	OptionClientID: {}, OptionServerID: {}, OptionIANA: {}, OptionIATA: {},
	OptionIAAddr: {}, OptionORO: {}, OptionPreference: {}, OptionElapsedTime: {},
	OptionRelayMessage: {}, OptionAuth: {}, OptionUnicast: {}, OptionStatusCode: {},
	OptionRapidCommit: {}, OptionUserClass: {}, OptionVendorClass: {},
	OptionVendorOpts: {}, OptionInterfaceID: {}, OptionReconfigureMessage: {},
	OptionReconfigureAccept: {},
}

// Known reports whether code has a dedicated decoder in this package.
func (c OptionCode) Known() bool {
	_, ok := knownCodes[c]
	return ok
}
