package env

import (
	"errors"
	"fmt"
	"os"
	"ovpnapi/internal/core/client"
	"ovpnapi/internal/utils"
	"path/filepath"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

const (
	DefaultListenAddr = "127.0.0.1:8000"
	DefaultCtlName    = "openvpn-ctl"
)

type Config struct {
	ListenAddr           string         `yaml:"listen_addr"`
	SwaggerAddr          string         `yaml:"swagger_addr"`
	OpenvpnCtl           string         `yaml:"openvpn_ctl"`
	OutputDir            string         `yaml:"output_dir"`
	AuditLogPath         string         `yaml:"audit_log_path"`
	SerializeInvocations bool           `yaml:"serialize_invocations"`
	LockPath             string         `yaml:"lock_path"`
	TLSCert              string         `yaml:"tls_cert"`
	TLSKey               string         `yaml:"tls_key"`
	TLSSelfSigned        bool           `yaml:"tls_self_signed"`
	Timeouts             TimeoutsConfig `yaml:"timeouts"`
}

// TimeoutsConfig holds per-subcommand timeouts as duration strings
// ("60s", "2m"). Empty values keep the defaults.
type TimeoutsConfig struct {
	Add    string `yaml:"add"`
	Revoke string `yaml:"revoke"`
	Regen  string `yaml:"regen"`
	List   string `yaml:"list"`
	Show   string `yaml:"show"`
	Export string `yaml:"export"`
}

// LoadConfig reads the optional YAML file at path and applies environment
// overrides on top. An empty path skips the file.
func LoadConfig(path string) (*Config, error) {
	cfg := &Config{
		ListenAddr: DefaultListenAddr,
		OpenvpnCtl: defaultCtlPath(),
		LockPath:   utils.LockPath,
	}

	if path != "" {
		b, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read config: %w", err)
		}
		if err := yaml.Unmarshal(b, cfg); err != nil {
			return nil, fmt.Errorf("parse config %s: %w", path, err)
		}
	}

	if err := cfg.applyEnv(os.LookupEnv); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) applyEnv(lookup func(string) (string, bool)) error {
	strs := map[string]*string{
		"OPENVPN_CTL":          &c.OpenvpnCtl,
		"OVPN_OUTPUT_DIR":      &c.OutputDir,
		"OVPNAPI_LISTEN_ADDR":  &c.ListenAddr,
		"OVPNAPI_SWAGGER_ADDR": &c.SwaggerAddr,
		"OVPNAPI_AUDIT_LOG":    &c.AuditLogPath,
		"OVPNAPI_LOCK_PATH":    &c.LockPath,
		"OVPNAPI_TLS_CERT":     &c.TLSCert,
		"OVPNAPI_TLS_KEY":      &c.TLSKey,
	}
	for key, dst := range strs {
		if v, ok := lookup(key); ok {
			*dst = v
		}
	}

	bools := map[string]*bool{
		"OVPNAPI_SERIALIZE":       &c.SerializeInvocations,
		"OVPNAPI_TLS_SELF_SIGNED": &c.TLSSelfSigned,
	}
	for key, dst := range bools {
		v, ok := lookup(key)
		if !ok {
			continue
		}
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("%s has invalid bool %q: %w", key, v, err)
		}
		*dst = b
	}
	return nil
}

func (c *Config) Validate() error {
	if c.OpenvpnCtl == "" {
		return errors.New("openvpn_ctl must be set")
	}
	if c.ListenAddr == "" {
		return errors.New("listen_addr must be set")
	}
	if (c.TLSCert == "") != (c.TLSKey == "") {
		return errors.New("tls_cert and tls_key must be set together")
	}
	if c.TLSSelfSigned && !c.TLSEnabled() {
		return errors.New("tls_self_signed needs tls_cert and tls_key paths to write to")
	}
	if c.SerializeInvocations && c.LockPath == "" {
		return errors.New("lock_path must be set when serialize_invocations is enabled")
	}
	_, err := c.ClientTimeouts()
	return err
}

func (c *Config) TLSEnabled() bool {
	return c.TLSCert != "" && c.TLSKey != ""
}

// ClientTimeouts merges the configured timeouts over the defaults.
func (c *Config) ClientTimeouts() (client.Timeouts, error) {
	t := client.DefaultTimeouts()
	fields := []struct {
		name string
		raw  string
		dst  *time.Duration
	}{
		{"add", c.Timeouts.Add, &t.Add},
		{"revoke", c.Timeouts.Revoke, &t.Revoke},
		{"regen", c.Timeouts.Regen, &t.Regen},
		{"list", c.Timeouts.List, &t.List},
		{"show", c.Timeouts.Show, &t.Show},
		{"export", c.Timeouts.Export, &t.Export},
	}
	for _, f := range fields {
		if f.raw == "" {
			continue
		}
		d, err := time.ParseDuration(f.raw)
		if err != nil {
			return client.Timeouts{}, fmt.Errorf("timeouts.%s has invalid duration %q: %w", f.name, f.raw, err)
		}
		if d <= 0 {
			return client.Timeouts{}, fmt.Errorf("timeouts.%s must be positive, got %s", f.name, d)
		}
		*f.dst = d
	}
	return t, nil
}

// defaultCtlPath is openvpn-ctl next to the running binary.
func defaultCtlPath() string {
	exe, err := os.Executable()
	if err != nil {
		return DefaultCtlName
	}
	return filepath.Join(filepath.Dir(exe), DefaultCtlName)
}
