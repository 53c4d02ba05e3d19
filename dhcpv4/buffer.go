package dhcpv4

import (
	"bytes"

	"github.com/athena-dhcpd/dhcpcodec/dhcpwire"
)

// dhcpwireBuffer pairs a bytes.Buffer with the dhcpwire.Encoder that
// writes into it, for the common case of building an option body in
// isolation before framing it with a length octet.
type dhcpwireBuffer struct {
	buf bytes.Buffer
}

func (b *dhcpwireBuffer) encoder() *dhcpwire.Encoder {
	return dhcpwire.NewEncoder(&b.buf)
}

func (b *dhcpwireBuffer) Bytes() []byte {
	return b.buf.Bytes()
}
