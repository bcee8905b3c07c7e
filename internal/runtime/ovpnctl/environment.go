package ovpnctl

import (
	"slices"
	"strings"
)

const OutputDirEnv = "OVPN_OUTPUT_DIR"

// BuildEnvironment returns a copy of ambient with OVPN_OUTPUT_DIR forced to
// outputDir. An empty outputDir leaves the ambient value untouched.
func BuildEnvironment(ambient []string, outputDir string) []string {
	env := make([]string, 0, len(ambient)+1)
	for _, kv := range ambient {
		if outputDir != "" && strings.HasPrefix(kv, OutputDirEnv+"=") {
			continue
		}
		env = append(env, kv)
	}
	if outputDir != "" {
		env = append(env, OutputDirEnv+"="+outputDir)
	}
	return slices.Clip(env)
}
