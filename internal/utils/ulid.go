package utils

import (
	"strings"

	"github.com/oklog/ulid/v2"
)

// NewUlid returns a lowercase ULID. Used to tag each openvpn-ctl
// invocation so log lines and audit events can be joined.
func NewUlid() string {
	return strings.ToLower(ulid.Make().String())
}
