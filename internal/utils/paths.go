package utils

const (
	LockPath = "/var/lib/ovpnapi/openvpn-ctl.lock"

	BundleExt = ".ovpn"
)
