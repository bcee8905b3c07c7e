package runtime

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

func TestFailureMessage(t *testing.T) {
	exitErr := errors.New("exit status 3")

	cases := []struct {
		name   string
		stdout string
		stderr string
		err    error
		expect string
	}{
		{name: "stderr wins", stdout: "out", stderr: "user exists\n", err: exitErr, expect: "user exists"},
		{name: "stdout fallback", stdout: "something went wrong\n", stderr: "  \n", err: exitErr, expect: "something went wrong"},
		{name: "generic fallback", err: exitErr, expect: "openvpn-ctl add failed: exit status 3"},
		{name: "no error", expect: "openvpn-ctl add failed"},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			got := FailureMessage(OpAdd, tc.stdout, tc.stderr, tc.err)
			if got != tc.expect {
				t.Fatalf("expected %q, got %q", tc.expect, got)
			}
		})
	}
}

func TestKindOf(t *testing.T) {
	cases := []struct {
		name   string
		err    error
		expect ErrorKind
	}{
		{name: "invocation", err: NewInvocationFailed(OpRevoke, "", "nope", nil), expect: KindInvocationFailed},
		{name: "timeout", err: NewTimeout(OpRegen, nil), expect: KindTimeout},
		{name: "artifact", err: NewArtifactMissing(OpAdd, "bob.ovpn"), expect: KindArtifactMissing},
		{name: "wrapped", err: fmt.Errorf("outer: %w", NewTimeout(OpList, nil)), expect: KindTimeout},
		{name: "foreign", err: errors.New("boom"), expect: KindUnexpectedFailure},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			if got := KindOf(tc.err); got != tc.expect {
				t.Fatalf("expected %q, got %q", tc.expect, got)
			}
		})
	}
}

func TestArtifactMissingMessage(t *testing.T) {
	if got := NewArtifactMissing(OpAdd, "x.ovpn").Error(); !strings.Contains(got, "after creation") {
		t.Fatalf("unexpected add message %q", got)
	}
	if got := NewArtifactMissing(OpRegen, "x.ovpn").Error(); !strings.Contains(got, "after regen") {
		t.Fatalf("unexpected regen message %q", got)
	}
}

func TestTimeoutMessage(t *testing.T) {
	if got := NewTimeout(OpAdd, nil).Error(); got != "timeout running openvpn-ctl add." {
		t.Fatalf("unexpected message %q", got)
	}
}

func TestInvocationIdOf(t *testing.T) {
	be := NewTimeout(OpShow, nil)
	be.InvocationId = "01h"
	if got := InvocationIdOf(fmt.Errorf("wrap: %w", be)); got != "01h" {
		t.Fatalf("expected invocation id, got %q", got)
	}
	if got := InvocationIdOf(errors.New("other")); got != "" {
		t.Fatalf("expected empty id, got %q", got)
	}
}

func TestBridgeErrorUnwrap(t *testing.T) {
	cause := errors.New("permission denied")
	err := NewUnexpectedFailure(OpExport, cause)
	if !errors.Is(err, cause) {
		t.Fatalf("expected cause to be reachable through Unwrap")
	}
	if err.Error() != "permission denied" {
		t.Fatalf("unexpected message %q", err.Error())
	}
}
