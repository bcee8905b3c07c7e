package audit

import (
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"ovpnapi/internal/core/audit"
)

func TestGetAuditLog(t *testing.T) {
	path := filepath.Join(t.TempDir(), "audit.log")
	if err := os.WriteFile(path, []byte("{\"a\":1}\n{\"a\":2}\n"), 0o640); err != nil {
		t.Fatal(err)
	}
	fileBacked := NewRequestHandler(audit.NewAuditService(path))
	stdoutOnly := NewRequestHandler(audit.NewAuditService(""))

	tests := []struct {
		name     string
		handler  *RequestHandler
		query    string
		wantCode int
		wantBody string
	}{
		{name: "default", handler: fileBacked, query: "", wantCode: http.StatusOK, wantBody: "{\"a\":1}\n{\"a\":2}\n"},
		{name: "one line", handler: fileBacked, query: "?tail_lines=1", wantCode: http.StatusOK, wantBody: "{\"a\":2}\n"},
		{name: "not a number", handler: fileBacked, query: "?tail_lines=abc", wantCode: http.StatusBadRequest},
		{name: "out of range", handler: fileBacked, query: "?tail_lines=0", wantCode: http.StatusBadRequest},
		{name: "stdout audit", handler: stdoutOnly, query: "", wantCode: http.StatusNotFound},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/audit"+tc.query, nil)
			rec := httptest.NewRecorder()
			tc.handler.GetAuditLog(rec, req)

			if rec.Code != tc.wantCode {
				t.Fatalf("expected %d, got %d: %s", tc.wantCode, rec.Code, rec.Body.String())
			}
			if tc.wantBody != "" && rec.Body.String() != tc.wantBody {
				t.Fatalf("unexpected body %q", rec.Body.String())
			}
		})
	}
}
