package cert

import (
	"net"
	"time"
)

// ServerCertConfig describes the self-signed certificate presented by the
// API listener when no operator-provided pair exists.
type ServerCertConfig struct {
	CommonName  string
	DNSNames    []string
	IPAddresses []net.IP
	ValidFor    time.Duration
}

const DefaultValidFor = 365 * 24 * time.Hour
