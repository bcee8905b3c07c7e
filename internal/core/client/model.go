package client

import "time"

type ServiceAddModel struct {
	Username string
	Password string
}

type ServiceRevokeModel struct {
	Username string
}

type ServiceRegenModel struct {
	Username string
	Password string
}

type ServiceShowModel struct {
	Username string
}

type ServiceExportModel struct {
	Username   string
	OutputPath string
}

// ServiceResult identifies the openvpn-ctl run that served a request.
type ServiceResult struct {
	InvocationId string
	Command      string
}

type ServiceBundleResult struct {
	ServiceResult
	BundlePath string
	Bundle     string
}

type ServiceListResult struct {
	ServiceResult
	Users []string
}

type ServiceShowResult struct {
	ServiceResult
	Text string
}

// Timeouts caps each openvpn-ctl subcommand.
type Timeouts struct {
	Add    time.Duration
	Revoke time.Duration
	Regen  time.Duration
	List   time.Duration
	Show   time.Duration
	Export time.Duration
}

func DefaultTimeouts() Timeouts {
	return Timeouts{
		Add:    60 * time.Second,
		Revoke: 60 * time.Second,
		Regen:  120 * time.Second,
		List:   30 * time.Second,
		Show:   30 * time.Second,
		Export: 30 * time.Second,
	}
}

// Max is the longest of the per-subcommand timeouts.
func (t Timeouts) Max() time.Duration {
	return max(t.Add, t.Revoke, t.Regen, t.List, t.Show, t.Export)
}
