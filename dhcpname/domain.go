// Package dhcpname bridges the fully-qualified domain string carried by
// the dhcpv4 ClientFQDN option to github.com/miekg/dns, the same DNS
// library the rest of this codebase's lineage uses for RFC 2136 updates.
// dhcpv4 reaches it only through ClientFQDNValue.ParsedDomain, which
// decode never calls; callers who need a validated, presentation-form
// domain ask for one explicitly. dhcpv6 does not use it.
package dhcpname

import (
	"fmt"

	"github.com/miekg/dns"
)

// Domain is a validated, fully-qualified domain name in presentation
// form (trailing dot). It is an opaque carrier: the codec consumes it
// only through String and ParseDomain, never by inspecting DNS label
// structure itself.
type Domain struct {
	fqdn string
}

// ParseDomain validates s as a DNS domain name and returns it in
// fully-qualified presentation form. An empty string is accepted and
// represents the root domain.
func ParseDomain(s string) (Domain, error) {
	if s == "" {
		return Domain{fqdn: "."}, nil
	}
	fqdn := dns.Fqdn(s)
	if !dns.IsDomainName(fqdn) {
		return Domain{}, fmt.Errorf("dhcpname: %q is not a valid domain name", s)
	}
	return Domain{fqdn: fqdn}, nil
}

// String returns the domain in fully-qualified presentation form
// (trailing dot).
func (d Domain) String() string {
	if d.fqdn == "" {
		return "."
	}
	return d.fqdn
}

// IsRoot reports whether d is the root domain.
func (d Domain) IsRoot() bool { return d.String() == "." }
