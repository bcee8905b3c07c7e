package cert

type CertHandler interface {
	EnsureServerCert(certPath string, keyPath string, cfg ServerCertConfig) (bool, error)
}
