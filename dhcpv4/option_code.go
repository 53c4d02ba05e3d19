package dhcpv4

// OptionCode is the one-octet option tag (RFC 2132 and extensions). Like
// MessageType, it is a plain byte-backed type: codes this package doesn't
// recognize are simply numeric values with no named constant, so
// byte(OptionCode(n)) == n holds for every n without a separate Unknown
// arm on the code itself. DhcpOption.Value carries an explicit
// UnknownValue for codes this package can't interpret further.
type OptionCode byte

// Recognized option codes, RFC 2132 plus the extensions named in RFC 3011,
// RFC 3442, RFC 3925, RFC 4361, RFC 4702 used by a production DHCP stack.
const (
	OptionPad                       OptionCode = 0
	OptionSubnetMask                OptionCode = 1
	OptionTimeOffset                OptionCode = 2
	OptionRouter                    OptionCode = 3
	OptionTimeServer                OptionCode = 4
	OptionNameServer                OptionCode = 5
	OptionDomainNameServer          OptionCode = 6
	OptionLogServer                 OptionCode = 7
	OptionQuoteServer               OptionCode = 8
	OptionLprServer                 OptionCode = 9
	OptionImpressServer             OptionCode = 10
	OptionResourceLocationServer    OptionCode = 11
	OptionHostname                  OptionCode = 12
	OptionBootFileSize              OptionCode = 13
	OptionMeritDumpFile             OptionCode = 14
	OptionDomainName                OptionCode = 15
	OptionSwapServer                OptionCode = 16
	OptionRootPath                  OptionCode = 17
	OptionExtensionsPath            OptionCode = 18
	OptionIPForwarding              OptionCode = 19
	OptionNonLocalSrcRouting        OptionCode = 20
	OptionPolicyFilter              OptionCode = 21
	OptionMaxDatagramSize           OptionCode = 22
	OptionDefaultIPTtl              OptionCode = 23
	OptionPathMTUAgingTimeout       OptionCode = 24
	OptionPathMTUPlateauTable       OptionCode = 25
	OptionInterfaceMTU              OptionCode = 26
	OptionAllSubnetsLocal           OptionCode = 27
	OptionBroadcastAddr             OptionCode = 28
	OptionPerformMaskDiscovery      OptionCode = 29
	OptionMaskSupplier              OptionCode = 30
	OptionPerformRouterDiscovery    OptionCode = 31
	OptionRouterSolicitationAddr    OptionCode = 32
	OptionStaticRoutingTable        OptionCode = 33
	OptionTrailerEncapsulation      OptionCode = 34
	OptionArpCacheTimeout           OptionCode = 35
	OptionEthernetEncapsulation     OptionCode = 36
	OptionDefaultTCPTtl             OptionCode = 37
	OptionTCPKeepaliveInterval      OptionCode = 38
	OptionTCPKeepaliveGarbage       OptionCode = 39
	OptionNISDomain                 OptionCode = 40
	OptionNIS                       OptionCode = 41
	OptionNTPServers                OptionCode = 42
	OptionVendorExtensions          OptionCode = 43
	OptionNetBiosNameServers        OptionCode = 44
	OptionNetBiosDatagramDistServer OptionCode = 45
	OptionNetBiosNodeType           OptionCode = 46
	OptionNetBiosScope              OptionCode = 47
	OptionXFontServer               OptionCode = 48
	OptionXDisplayManager           OptionCode = 49
	OptionRequestedIPAddress        OptionCode = 50
	OptionAddressLeaseTime          OptionCode = 51
	OptionOptionOverload            OptionCode = 52
	OptionMessageType               OptionCode = 53
	OptionServerIdentifier          OptionCode = 54
	OptionParameterRequestList      OptionCode = 55
	OptionMessage                   OptionCode = 56
	OptionMaxMessageSize            OptionCode = 57
	OptionRenewal                   OptionCode = 58
	OptionRebinding                 OptionCode = 59
	OptionClassIdentifier           OptionCode = 60
	OptionClientIdentifier          OptionCode = 61
	OptionNetWareIPDomain           OptionCode = 62
	OptionNetWareIPOption           OptionCode = 63
	OptionTFTPServerName            OptionCode = 66
	OptionBootfileName              OptionCode = 67
	OptionUserClass                 OptionCode = 77
	OptionClientFQDN                OptionCode = 81
	OptionRelayAgentInfo            OptionCode = 82
	OptionSubnetSelection           OptionCode = 118
	OptionClasslessStaticRoute      OptionCode = 121
	OptionVIVendorClass             OptionCode = 124
	OptionVIVendorSpecific          OptionCode = 125
	OptionTFTPServerAddress         OptionCode = 150
	OptionEnd                       OptionCode = 255
)

// knownCodes backs the set membership check used when deciding whether a
// decoded option is Unknown.
var knownCodes = map[OptionCode]struct{}{
	OptionPad: {}, OptionSubnetMask: {}, OptionTimeOffset: {}, OptionRouter: {},
	OptionTimeServer: {}, OptionNameServer: {}, OptionDomainNameServer: {},
	OptionLogServer: {}, OptionQuoteServer: {}, OptionLprServer: {},
	OptionImpressServer: {}, OptionResourceLocationServer: {}, OptionHostname: {},
	OptionBootFileSize: {}, OptionMeritDumpFile: {}, OptionDomainName: {},
	OptionSwapServer: {}, OptionRootPath: {}, OptionExtensionsPath: {},
	OptionIPForwarding: {}, OptionNonLocalSrcRouting: {}, OptionPolicyFilter: {},
	OptionMaxDatagramSize: {}, OptionDefaultIPTtl: {}, OptionPathMTUAgingTimeout: {},
	OptionPathMTUPlateauTable: {}, OptionInterfaceMTU: {}, OptionAllSubnetsLocal: {},
	OptionBroadcastAddr: {}, OptionPerformMaskDiscovery: {}, OptionMaskSupplier: {},
	OptionPerformRouterDiscovery: {}, OptionRouterSolicitationAddr: {},
	OptionStaticRoutingTable: {}, OptionTrailerEncapsulation: {}, OptionArpCacheTimeout: {},
	OptionEthernetEncapsulation: {}, OptionDefaultTCPTtl: {}, OptionTCPKeepaliveInterval: {},
	OptionTCPKeepaliveGarbage: {}, OptionNISDomain: {}, OptionNIS: {}, OptionNTPServers: {},
	OptionVendorExtensions: {}, OptionNetBiosNameServers: {}, OptionNetBiosDatagramDistServer: {},
	OptionNetBiosNodeType: {}, OptionNetBiosScope: {}, OptionXFontServer: {},
	OptionXDisplayManager: {}, OptionRequestedIPAddress: {}, OptionAddressLeaseTime: {},
	OptionOptionOverload: {}, OptionMessageType: {}, OptionServerIdentifier: {},
	OptionParameterRequestList: {}, OptionMessage: {}, OptionMaxMessageSize: {},
	OptionRenewal: {}, OptionRebinding: {}, OptionClassIdentifier: {}, OptionClientIdentifier: {},
	OptionNetWareIPDomain: {}, OptionNetWareIPOption: {}, OptionTFTPServerName: {},
	OptionBootfileName: {}, OptionUserClass: {}, OptionClientFQDN: {}, OptionRelayAgentInfo: {},
	OptionSubnetSelection: {}, OptionClasslessStaticRoute: {}, OptionVIVendorClass: {},
	OptionVIVendorSpecific: {}, OptionTFTPServerAddress: {}, OptionEnd: {},
}

// Known reports whether code has a dedicated decoder in this package.
func (c OptionCode) Known() bool {
	_, ok := knownCodes[c]
	return ok
}
