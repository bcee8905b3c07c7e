package logger

type Logger interface {
	Write(event Event)
}

type Event struct {
	TS            string `json:"ts"`
	EventId       string `json:"event_id"`
	CorrelationId string `json:"correlation_id,omitempty"`
	Severity      string `json:"severity"`

	Actor Actor `json:"actor"`

	Action string `json:"action,omitempty"`
	Target Target `json:"target,omitempty"`

	Request Request `json:"request"`
	Result  Result  `json:"result"`

	Runtime Runtime `json:"runtime"`

	Extra map[string]any `json:"extra,omitempty"`
}

type Actor struct {
	CommonName      string `json:"common_name,omitempty"`
	CertFingerprint string `json:"cert_fingerprint,omitempty"`
	PeerIp          string `json:"peer_ip,omitempty"`
	ForwardedFor    string `json:"forwarded_for,omitempty"`
}

type Target struct {
	Username   string `json:"username,omitempty"`
	OutputPath string `json:"output_path,omitempty"`
}

type Request struct {
	Method string `json:"method"`
	Path   string `json:"path"`
	Host   string `json:"host,omitempty"`
}

type Result struct {
	Status    string `json:"status"`
	Code      int    `json:"code"`
	Reason    string `json:"reason,omitempty"`
	Bytes     int    `json:"bytes,omitempty"`
	LatencyMs int64  `json:"latency_ms,omitempty"`
}

type Runtime struct {
	Component string `json:"component,omitempty"`
	Node      string `json:"node,omitempty"`
}

type ctxKey int

var Severity = map[int]string{
	0: "information",
	1: "low",
	2: "medium",
	3: "high",
	4: "critical",
}

const (
	SEV_INFO     = 0
	SEV_LOW      = 1
	SEV_MEDIUM   = 2
	SEV_HIGH     = 3
	SEV_CRITICAL = 4
)

type Rule struct {
	Method   string
	Pattern  string
	Action   string
	Severity int
}

var rules = []Rule{
	// client credentials
	{"POST", "/add_user", "user.add", SEV_MEDIUM},
	{"POST", "/revoke_user", "user.revoke", SEV_HIGH},
	{"POST", "/regen_user", "user.regen", SEV_HIGH},
	{"POST", "/list_users", "user.list", SEV_INFO},
	{"POST", "/show_ovpn", "user.show", SEV_LOW},
	{"POST", "/export_ovpn", "user.export", SEV_MEDIUM},

	// bundles
	{"GET", "/bundles", "bundle.list", SEV_INFO},

	// audit trail
	{"GET", "/audit", "audit.read", SEV_LOW},

	// health
	{"GET", "/healthz", "health", SEV_INFO},
}
