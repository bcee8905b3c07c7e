package env

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"ovpnapi/internal/core/client"
	"ovpnapi/internal/utils"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "ovpnapi.yaml")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := LoadConfig("")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.ListenAddr != DefaultListenAddr {
		t.Fatalf("unexpected listen addr %q", cfg.ListenAddr)
	}
	if filepath.Base(cfg.OpenvpnCtl) != DefaultCtlName {
		t.Fatalf("unexpected ctl path %q", cfg.OpenvpnCtl)
	}
	if cfg.LockPath != utils.LockPath {
		t.Fatalf("unexpected lock path %q", cfg.LockPath)
	}
	if cfg.TLSEnabled() {
		t.Fatalf("tls should be off by default")
	}
	timeouts, err := cfg.ClientTimeouts()
	if err != nil {
		t.Fatalf("timeouts: %v", err)
	}
	if timeouts != client.DefaultTimeouts() {
		t.Fatalf("unexpected timeouts %+v", timeouts)
	}
}

func TestLoadConfigFileAndEnv(t *testing.T) {
	path := writeConfig(t, `
listen_addr: 0.0.0.0:9000
openvpn_ctl: /opt/openvpn/openvpn-ctl
output_dir: /srv/ovpn
timeouts:
  regen: 3m
  list: 5s
`)
	t.Setenv("OVPNAPI_LISTEN_ADDR", "127.0.0.1:9443")
	t.Setenv("OVPNAPI_SERIALIZE", "true")

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.ListenAddr != "127.0.0.1:9443" {
		t.Fatalf("env should override file, got %q", cfg.ListenAddr)
	}
	if cfg.OpenvpnCtl != "/opt/openvpn/openvpn-ctl" || cfg.OutputDir != "/srv/ovpn" {
		t.Fatalf("file values not applied: %+v", cfg)
	}
	if !cfg.SerializeInvocations {
		t.Fatalf("serialize not applied")
	}

	timeouts, err := cfg.ClientTimeouts()
	if err != nil {
		t.Fatalf("timeouts: %v", err)
	}
	if timeouts.Regen != 3*time.Minute || timeouts.List != 5*time.Second {
		t.Fatalf("unexpected timeouts %+v", timeouts)
	}
	if timeouts.Add != client.DefaultTimeouts().Add {
		t.Fatalf("unset timeout should keep default, got %s", timeouts.Add)
	}
}

func TestApplyEnv(t *testing.T) {
	env := map[string]string{
		"OPENVPN_CTL":      "/usr/local/bin/openvpn-ctl",
		"OVPN_OUTPUT_DIR":  "/var/lib/ovpn",
		"OVPNAPI_TLS_CERT": "/etc/ovpnapi/server.crt",
		"OVPNAPI_TLS_KEY":  "/etc/ovpnapi/server.key",
	}
	cfg := &Config{ListenAddr: DefaultListenAddr}
	err := cfg.applyEnv(func(k string) (string, bool) {
		v, ok := env[k]
		return v, ok
	})
	if err != nil {
		t.Fatalf("applyEnv: %v", err)
	}
	if cfg.OpenvpnCtl != env["OPENVPN_CTL"] || cfg.OutputDir != env["OVPN_OUTPUT_DIR"] {
		t.Fatalf("env not applied: %+v", cfg)
	}
	if !cfg.TLSEnabled() {
		t.Fatalf("tls should be enabled")
	}
}

func TestApplyEnvInvalidBool(t *testing.T) {
	cfg := &Config{}
	err := cfg.applyEnv(func(k string) (string, bool) {
		if k == "OVPNAPI_SERIALIZE" {
			return "sometimes", true
		}
		return "", false
	})
	if err == nil || !strings.Contains(err.Error(), "OVPNAPI_SERIALIZE") {
		t.Fatalf("expected bool error, got %v", err)
	}
}

func TestValidate(t *testing.T) {
	valid := func() Config {
		return Config{
			ListenAddr: DefaultListenAddr,
			OpenvpnCtl: "openvpn-ctl",
			LockPath:   "/run/ovpnapi.lock",
		}
	}

	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr string
	}{
		{name: "valid", mutate: func(c *Config) {}},
		{name: "no ctl", mutate: func(c *Config) { c.OpenvpnCtl = "" }, wantErr: "openvpn_ctl"},
		{name: "no listen addr", mutate: func(c *Config) { c.ListenAddr = "" }, wantErr: "listen_addr"},
		{name: "cert without key", mutate: func(c *Config) { c.TLSCert = "/etc/cert.pem" }, wantErr: "tls_cert and tls_key"},
		{name: "key without cert", mutate: func(c *Config) { c.TLSKey = "/etc/key.pem" }, wantErr: "tls_cert and tls_key"},
		{
			name: "serialize without lock path",
			mutate: func(c *Config) {
				c.SerializeInvocations = true
				c.LockPath = ""
			},
			wantErr: "lock_path",
		},
		{name: "bad duration", mutate: func(c *Config) { c.Timeouts.Add = "soon" }, wantErr: "timeouts.add"},
		{name: "zero duration", mutate: func(c *Config) { c.Timeouts.Show = "0s" }, wantErr: "timeouts.show"},
		{name: "negative duration", mutate: func(c *Config) { c.Timeouts.Export = "-1s" }, wantErr: "timeouts.export"},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			cfg := valid()
			tc.mutate(&cfg)
			err := cfg.Validate()
			if tc.wantErr == "" {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tc.wantErr) {
				t.Fatalf("expected error containing %q, got %v", tc.wantErr, err)
			}
		})
	}
}

func TestLoadConfigBadYaml(t *testing.T) {
	path := writeConfig(t, "listen_addr: [unclosed\n")
	if _, err := LoadConfig(path); err == nil {
		t.Fatalf("expected parse error")
	}
}

func TestLoadConfigMissingFile(t *testing.T) {
	if _, err := LoadConfig(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Fatalf("expected read error")
	}
}

func TestValidateSelfSignedNeedsPaths(t *testing.T) {
	cfg := Config{ListenAddr: DefaultListenAddr, OpenvpnCtl: "openvpn-ctl", TLSSelfSigned: true}
	if err := cfg.Validate(); err == nil || !strings.Contains(err.Error(), "tls_self_signed") {
		t.Fatalf("expected self-signed error, got %v", err)
	}
	cfg.TLSCert, cfg.TLSKey = "/etc/ovpnapi/server.crt", "/etc/ovpnapi/server.key"
	if err := cfg.Validate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
