package runtime

import (
	"errors"
	"fmt"
	"strings"
)

type ErrorKind string

const (
	KindInvocationFailed  ErrorKind = "invocation_failed"
	KindTimeout           ErrorKind = "timeout"
	KindArtifactMissing   ErrorKind = "artifact_missing"
	KindUnexpectedFailure ErrorKind = "unexpected_failure"
)

// BridgeError is the single failure class surfaced to callers. Kind is kept
// for logging only; every kind maps to the same response shape.
type BridgeError struct {
	Kind         ErrorKind
	Op           Operation
	InvocationId string
	Message      string
	Err          error
}

func (e *BridgeError) Error() string {
	return e.Message
}

func (e *BridgeError) Unwrap() error {
	return e.Err
}

func NewInvocationFailed(op Operation, stdout, stderr string, err error) *BridgeError {
	return &BridgeError{
		Kind:    KindInvocationFailed,
		Op:      op,
		Message: FailureMessage(op, stdout, stderr, err),
		Err:     err,
	}
}

func NewTimeout(op Operation, err error) *BridgeError {
	return &BridgeError{
		Kind:    KindTimeout,
		Op:      op,
		Message: fmt.Sprintf("timeout running openvpn-ctl %s.", op),
		Err:     err,
	}
}

func NewArtifactMissing(op Operation, path string) *BridgeError {
	phase := "creation"
	if op == OpRegen {
		phase = "regen"
	}
	return &BridgeError{
		Kind:    KindArtifactMissing,
		Op:      op,
		Message: fmt.Sprintf("client .ovpn file not found after %s.", phase),
		Err:     fmt.Errorf("%s: missing after successful %s", path, op),
	}
}

func NewUnexpectedFailure(op Operation, err error) *BridgeError {
	return &BridgeError{
		Kind:    KindUnexpectedFailure,
		Op:      op,
		Message: err.Error(),
		Err:     err,
	}
}

// FailureMessage picks the most useful text for a failed invocation:
// stderr, then stdout, then a generic description of err.
func FailureMessage(op Operation, stdout, stderr string, err error) string {
	for _, s := range []string{stderr, stdout} {
		if msg := strings.TrimSpace(s); msg != "" {
			return msg
		}
	}
	if err != nil {
		return fmt.Sprintf("openvpn-ctl %s failed: %v", op, err)
	}
	return fmt.Sprintf("openvpn-ctl %s failed", op)
}

// KindOf classifies err. Errors that did not come from the bridge are
// reported as unexpected failures.
func KindOf(err error) ErrorKind {
	var be *BridgeError
	if errors.As(err, &be) {
		return be.Kind
	}
	return KindUnexpectedFailure
}

// InvocationIdOf returns the invocation id attached to err, if any.
func InvocationIdOf(err error) string {
	var be *BridgeError
	if errors.As(err, &be) {
		return be.InvocationId
	}
	return ""
}
