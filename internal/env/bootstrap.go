package env

import (
	"fmt"
	"net"
	"os"
	"os/exec"
	"ovpnapi/internal/cert"
	"ovpnapi/internal/utils"
	"path/filepath"
)

func NewBootstrapManager(cfg *Config) *BootstrapManager {
	return &BootstrapManager{
		filesystemHandler: utils.NewFilesystemExecutor(),
		certHandler:       cert.NewCertManager(),
		lookPath:          exec.LookPath,
		hostname:          os.Hostname,
		cfg:               cfg,
	}
}

type BootstrapManager struct {
	filesystemHandler utils.FilesystemHandler
	certHandler       cert.CertHandler
	lookPath          func(file string) (string, error)
	hostname          func() (string, error)
	cfg               *Config
}

// SetupRuntime creates the directories the service and openvpn-ctl write
// into.
func (m *BootstrapManager) SetupRuntime() error {
	var dirs []string
	if m.cfg.OutputDir != "" {
		dirs = append(dirs, m.cfg.OutputDir)
	}
	if m.cfg.AuditLogPath != "" {
		dirs = append(dirs, filepath.Dir(m.cfg.AuditLogPath))
	}
	if m.cfg.SerializeInvocations {
		dirs = append(dirs, filepath.Dir(m.cfg.LockPath))
	}
	for _, dir := range dirs {
		if err := m.filesystemHandler.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create %s: %w", dir, err)
		}
	}
	return nil
}

// SetupTLS generates the listener certificate when tls_self_signed is on
// and the configured pair does not exist yet.
func (m *BootstrapManager) SetupTLS() (bool, error) {
	if !m.cfg.TLSSelfSigned {
		return false, nil
	}

	cfg := cert.ServerCertConfig{
		CommonName:  "localhost",
		DNSNames:    []string{"localhost"},
		IPAddresses: []net.IP{net.IPv4(127, 0, 0, 1), net.IPv6loopback},
		ValidFor:    cert.DefaultValidFor,
	}
	if name, err := m.hostname(); err == nil && name != "" && name != "localhost" {
		cfg.CommonName = name
		cfg.DNSNames = append(cfg.DNSNames, name)
	}
	if host, _, err := net.SplitHostPort(m.cfg.ListenAddr); err == nil {
		if ip := net.ParseIP(host); ip != nil && !ip.IsUnspecified() && !ip.IsLoopback() {
			cfg.IPAddresses = append(cfg.IPAddresses, ip)
		}
	}

	created, err := m.certHandler.EnsureServerCert(m.cfg.TLSCert, m.cfg.TLSKey, cfg)
	if err != nil {
		return false, fmt.Errorf("self-signed tls: %w", err)
	}
	return created, nil
}

// CheckCtl reports whether openvpn-ctl resolves to an executable. A
// missing tool is not fatal: every request will fail until it appears.
func (m *BootstrapManager) CheckCtl() (string, error) {
	path, err := m.lookPath(m.cfg.OpenvpnCtl)
	if err != nil {
		return "", fmt.Errorf("openvpn-ctl not usable: %w", err)
	}
	return path, nil
}
