package ovpnctl

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log"
	"os/exec"
	"ovpnapi/internal/runtime"
	"ovpnapi/internal/utils"
	"slices"
	"time"
)

// waitDelay bounds how long a killed openvpn-ctl may keep its output pipes
// open before Wait gives up on them.
const waitDelay = 2 * time.Second

func NewCtlHandler(ctlPath string, environ []string, lock *InvocationLock) *CtlHandler {
	return &CtlHandler{
		commandFactory: utils.NewCommandFactory(),
		ctlPath:        ctlPath,
		environ:        slices.Clone(environ),
		lock:           lock,
	}
}

// CtlHandler invokes the openvpn-ctl executable. environ is fixed at
// construction and never mutated, so one handler is shared by every
// request. lock is optional.
type CtlHandler struct {
	commandFactory utils.CommandFactory
	ctlPath        string
	environ        []string
	lock           *InvocationLock
}

func (h *CtlHandler) Invoke(ctx context.Context, invokeParameter runtime.InvokeModel) (runtime.InvokeResult, error) {
	result := runtime.InvokeResult{
		InvocationId: utils.NewUlid(),
		Argv:         append([]string{string(invokeParameter.Op)}, invokeParameter.Args...),
		ExitCode:     -1,
	}

	run := func() error {
		return h.run(ctx, invokeParameter, &result)
	}

	var err error
	if h.lock != nil {
		err = h.runLocked(ctx, invokeParameter, run)
	} else {
		err = run()
	}

	if err != nil {
		var be *runtime.BridgeError
		if errors.As(err, &be) {
			be.InvocationId = result.InvocationId
		}
		log.Printf("[!] %s (id=%s) failed after %s: %v", RenderCommand(h.ctlPath, result.Argv), result.InvocationId, result.Duration.Round(time.Millisecond), err)
		return result, err
	}
	log.Printf("[*] %s (id=%s) completed in %s", RenderCommand(h.ctlPath, result.Argv), result.InvocationId, result.Duration.Round(time.Millisecond))
	return result, nil
}

// runLocked waits at most the operation timeout for the invocation lock
// and then runs with a fresh timeout of the same length.
func (h *CtlHandler) runLocked(ctx context.Context, invokeParameter runtime.InvokeModel, run func() error) error {
	op := invokeParameter.Op

	waitCtx, cancel := context.WithTimeout(ctx, invokeParameter.Timeout)
	defer cancel()

	err := h.lock.withLock(waitCtx, run)
	if err == nil {
		return nil
	}
	var be *runtime.BridgeError
	if errors.As(err, &be) {
		return err
	}

	switch {
	case ctx.Err() != nil:
		return runtime.NewUnexpectedFailure(op, fmt.Errorf("openvpn-ctl %s cancelled waiting for invocation lock: %w", op, ctx.Err()))
	case errors.Is(err, context.DeadlineExceeded):
		return runtime.NewTimeout(op, fmt.Errorf("waiting for invocation lock: %w", err))
	default:
		return runtime.NewUnexpectedFailure(op, fmt.Errorf("invocation lock: %w", err))
	}
}

func (h *CtlHandler) run(ctx context.Context, invokeParameter runtime.InvokeModel, result *runtime.InvokeResult) error {
	op := invokeParameter.Op

	runCtx, cancel := context.WithTimeout(ctx, invokeParameter.Timeout)
	defer cancel()

	var stdout, stderr bytes.Buffer
	cmd := h.commandFactory.CommandContext(runCtx, h.ctlPath, result.Argv...)
	cmd.SetEnv(slices.Clone(h.environ))
	cmd.SetStdout(&stdout)
	cmd.SetStderr(&stderr)
	cmd.SetWaitDelay(waitDelay)

	start := time.Now()
	runErr := cmd.Run()
	result.Duration = time.Since(start)
	result.Stdout = stdout.String()
	result.Stderr = stderr.String()
	result.ExitCode = cmd.ExitCode()

	if runErr == nil {
		return nil
	}
	if errors.Is(runErr, exec.ErrWaitDelay) && result.ExitCode == 0 {
		// exited cleanly but a grandchild held the pipes open
		return nil
	}

	switch {
	case ctx.Err() != nil:
		// caller went away; the process group has already been killed
		return runtime.NewUnexpectedFailure(op, fmt.Errorf("openvpn-ctl %s cancelled: %w", op, ctx.Err()))
	case errors.Is(runCtx.Err(), context.DeadlineExceeded):
		return runtime.NewTimeout(op, runErr)
	case result.ExitCode > 0:
		return runtime.NewInvocationFailed(op, result.Stdout, result.Stderr, runErr)
	default:
		return runtime.NewUnexpectedFailure(op, fmt.Errorf("openvpn-ctl %s: %w", op, runErr))
	}
}
