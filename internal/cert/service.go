package cert

import (
	"crypto/ecdsa"
	"crypto/elliptic"
	"crypto/rand"
	"crypto/x509"
	"crypto/x509/pkix"
	"encoding/pem"
	"fmt"
	"math/big"
	"os"
	"ovpnapi/internal/utils"
	"path/filepath"
	"time"
)

func NewCertManager() *CertManager {
	return &CertManager{
		filesystemHandler: utils.NewFilesystemExecutor(),
	}
}

type CertManager struct {
	filesystemHandler utils.FilesystemHandler
}

// EnsureServerCert writes a self-signed P-256 certificate and key unless
// both files already exist. It reports whether a new pair was generated.
// An existing half pair is an error rather than being overwritten.
func (m *CertManager) EnsureServerCert(certPath string, keyPath string, cfg ServerCertConfig) (bool, error) {
	certExists := m.isFileExists(certPath)
	keyExists := m.isFileExists(keyPath)
	if certExists && keyExists {
		return false, nil
	}
	if certExists != keyExists {
		return false, fmt.Errorf("incomplete tls pair: cert=%s exists=%t key=%s exists=%t", certPath, certExists, keyPath, keyExists)
	}

	validFor := cfg.ValidFor
	if validFor <= 0 {
		validFor = DefaultValidFor
	}

	privKey, err := ecdsa.GenerateKey(elliptic.P256(), rand.Reader)
	if err != nil {
		return false, err
	}

	serial, err := rand.Int(rand.Reader, new(big.Int).Lsh(big.NewInt(1), 128))
	if err != nil {
		return false, err
	}

	now := time.Now()
	template := x509.Certificate{
		SerialNumber: serial,
		Subject: pkix.Name{
			CommonName:   cfg.CommonName,
			Organization: []string{"ovpnapi"},
		},
		NotBefore:             now.Add(-1 * time.Hour),
		NotAfter:              now.Add(validFor),
		KeyUsage:              x509.KeyUsageDigitalSignature,
		ExtKeyUsage:           []x509.ExtKeyUsage{x509.ExtKeyUsageServerAuth},
		BasicConstraintsValid: true,
		DNSNames:              cfg.DNSNames,
		IPAddresses:           cfg.IPAddresses,
	}

	derBytes, err := x509.CreateCertificate(rand.Reader, &template, &template, &privKey.PublicKey, privKey)
	if err != nil {
		return false, err
	}
	keyBytes, err := x509.MarshalECPrivateKey(privKey)
	if err != nil {
		return false, err
	}

	for _, p := range []string{certPath, keyPath} {
		if err := m.filesystemHandler.MkdirAll(filepath.Dir(p), 0o755); err != nil {
			return false, err
		}
	}
	if err := m.writePem(certPath, "CERTIFICATE", derBytes, 0o644); err != nil {
		return false, err
	}
	if err := m.writePem(keyPath, "EC PRIVATE KEY", keyBytes, 0o600); err != nil {
		return false, err
	}
	return true, nil
}

func (m *CertManager) writePem(path string, typ string, der []byte, perm os.FileMode) error {
	f, err := m.filesystemHandler.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, perm)
	if err != nil {
		return err
	}
	defer f.Close()

	return pem.Encode(f, &pem.Block{
		Type:  typ,
		Bytes: der,
	})
}

func (m *CertManager) isFileExists(path string) bool {
	_, err := m.filesystemHandler.Stat(path)
	return err == nil
}
