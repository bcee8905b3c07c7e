package ovpnctl

import (
	"strings"

	"al.essio.dev/pkg/shellescape"
)

const passFlag = "--pass"

// RenderCommand formats a command line for logs. The value following
// --pass is replaced so credentials never reach the audit trail.
func RenderCommand(name string, argv []string) string {
	parts := make([]string, 0, len(argv)+1)
	parts = append(parts, shellescape.Quote(name))
	redactNext := false
	for _, a := range argv {
		if redactNext {
			parts = append(parts, "'***'")
			redactNext = false
			continue
		}
		if a == passFlag {
			redactNext = true
		}
		parts = append(parts, shellescape.Quote(a))
	}
	return strings.Join(parts, " ")
}
