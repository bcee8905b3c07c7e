package logger

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"io"
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

const (
	ctxEventKey ctxKey = iota
)

func LoggerMiddleware(l Logger, component string, node string) func(http.Handler) http.Handler {
	if component == "" {
		component = "ovpnapi"
	}
	index := make(map[string]Rule, len(rules))
	for _, ru := range rules {
		key := ru.Method + " " + ru.Pattern
		index[key] = ru
	}
	return func(next http.Handler) http.Handler {
		fn := func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)

			ev := Event{
				TS:            time.Now().Format(time.RFC3339Nano),
				EventId:       uuid.NewString(),
				CorrelationId: middleware.GetReqID(r.Context()),

				Severity: Severity[SEV_INFO],

				Actor: Actor{
					CommonName:      clientCommonName(r),
					CertFingerprint: clientCertFingerprint(r),
					PeerIp:          peerIp(r),
					ForwardedFor:    r.Header.Get("X-Forwarded-For"),
				},

				Request: Request{
					Method: r.Method,
					Path:   r.URL.Path,
					Host:   r.Host,
				},

				Result: Result{},

				Runtime: Runtime{
					Component: component,
					Node:      node,
				},

				Extra: map[string]any{},
			}

			ctx := context.WithValue(r.Context(), ctxEventKey, &ev)
			r = r.WithContext(ctx)

			next.ServeHTTP(ww, r)

			pattern := ""
			if rctx := chi.RouteContext(r.Context()); rctx != nil {
				pattern = rctx.RoutePattern()
			}
			key := r.Method + " " + pattern
			if ru, ok := index[key]; ok {
				ev.Action = ru.Action
				ev.Severity = Severity[ru.Severity]
			} else {
				ev.Action = "unknown"
				ev.Severity = Severity[SEV_LOW]
			}

			status := ww.Status()
			if status == 0 {
				status = http.StatusOK
			}

			ev.Result.Code = status
			ev.Result.Bytes = ww.BytesWritten()
			ev.Result.LatencyMs = time.Since(start).Milliseconds()

			switch {
			case status >= 200 && status < 400:
				ev.Result.Status = "allow"
			case status == http.StatusUnauthorized || status == http.StatusForbidden:
				ev.Result.Status = "deny"
				ev.Severity = bump(ev.Severity)
			default:
				ev.Result.Status = "error"
				ev.Severity = bump(ev.Severity)
			}

			l.Write(ev)
		}
		return http.HandlerFunc(fn)
	}
}

func FromContext(ctx context.Context) *Event {
	ev, _ := ctx.Value(ctxEventKey).(*Event)
	return ev
}

func SetTarget(ctx context.Context, target Target) {
	if ev := FromContext(ctx); ev != nil {
		if target.Username != "" {
			ev.Target.Username = target.Username
		}
		if target.OutputPath != "" {
			ev.Target.OutputPath = target.OutputPath
		}
	}
}

func SetReason(ctx context.Context, reason string) {
	if ev := FromContext(ctx); ev != nil {
		ev.Result.Reason = reason
	}
}

func PutExtra(ctx context.Context, k string, v any) {
	if ev := FromContext(ctx); ev != nil {
		if ev.Extra == nil {
			ev.Extra = map[string]any{}
		}
		ev.Extra[k] = v
	}
}

func NewJsonLineLogger(out io.Writer) *JsonLineLogger {
	return &JsonLineLogger{Out: out}
}

// JsonLineLogger writes one JSON object per line. Writes are serialised so
// concurrent requests never interleave.
type JsonLineLogger struct {
	Out io.Writer
	mu  sync.Mutex
}

func (l *JsonLineLogger) Write(event Event) {
	b, _ := json.Marshal(event)
	l.mu.Lock()
	defer l.mu.Unlock()
	_, _ = l.Out.Write(append(b, '\n'))
}

func clientCommonName(r *http.Request) string {
	if r.TLS == nil || len(r.TLS.PeerCertificates) == 0 {
		return ""
	}
	return r.TLS.PeerCertificates[0].Subject.CommonName
}

func clientCertFingerprint(r *http.Request) string {
	if r.TLS == nil || len(r.TLS.PeerCertificates) == 0 {
		return ""
	}
	leaf := r.TLS.PeerCertificates[0]
	sum := sha256.Sum256(leaf.Raw)
	return hex.EncodeToString(sum[:])
}

func peerIp(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}

func bump(s string) string {
	switch s {
	case "information":
		return "low"
	case "low":
		return "medium"
	case "medium":
		return "high"
	case "high":
		return "critical"
	default:
		return s
	}
}
