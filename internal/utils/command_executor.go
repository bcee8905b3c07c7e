package utils

import (
	"context"
	"errors"
	"io"
	"os"
	"os/exec"
	"syscall"
	"time"

	"golang.org/x/sys/unix"
)

func NewCommandFactory() *ExecCommandFactory {
	return &ExecCommandFactory{}
}

// CommandFactory creates CommandExecutor instances.
//
// The factory abstracts process creation so that callers do not depend
// directly on exec.Command. This makes the behavior testable by replacing
// the factory with a mock implementation.
type CommandFactory interface {
	CommandContext(ctx context.Context, name string, args ...string) CommandExecutor
}

// ExecCommandFactory is the default implementation of CommandFactory.
//
// It creates CommandExecutor values backed by *exec.Cmd and launches
// real OS processes. Every process is placed in its own process group so
// that cancelling the context terminates the whole tree, not just the
// direct child.
type ExecCommandFactory struct{}

// CommandContext returns a CommandExecutor bound to ctx.
func (e *ExecCommandFactory) CommandContext(ctx context.Context, name string, args ...string) CommandExecutor {
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.SysProcAttr = &syscall.SysProcAttr{Setpgid: true}
	cmd.Cancel = func() error {
		if cmd.Process == nil {
			return nil
		}
		err := unix.Kill(-cmd.Process.Pid, unix.SIGKILL)
		if errors.Is(err, unix.ESRCH) {
			return os.ErrProcessDone
		}
		return err
	}
	return &ExecCmd{cmd: cmd}
}

// CommandExecutor represents a process that can be started.
//
// It provides a minimal surface over exec.Cmd so that command execution
// can be substituted or mocked in tests.
type CommandExecutor interface {
	Run() error
	ExitCode() int
	SetEnv(envv []string)
	SetWaitDelay(d time.Duration)
	SetStdout(w io.Writer)
	SetStderr(w io.Writer)
}

// ExecCmd is the concrete CommandExecutor backed by exec.Cmd.
//
// It delegates all operations to the underlying exec.Cmd instance.
type ExecCmd struct {
	cmd *exec.Cmd
}

func (e *ExecCmd) Run() error {
	return e.cmd.Run()
}

// ExitCode returns the exit code of the exited process, or -1 if the
// process has not exited or was terminated by a signal.
func (e *ExecCmd) ExitCode() int {
	if e.cmd.ProcessState == nil {
		return -1
	}
	return e.cmd.ProcessState.ExitCode()
}

// SetEnv appends envv to the command environment. A command whose
// environment was never set inherits nothing but envv.
func (e *ExecCmd) SetEnv(envv []string) {
	e.cmd.Env = append(e.cmd.Env, envv...)
}

// SetWaitDelay bounds how long Wait keeps draining the output pipes after
// the process has been killed.
func (e *ExecCmd) SetWaitDelay(d time.Duration) {
	e.cmd.WaitDelay = d
}

// SetStdout sets the stdout writer for the underlying command.
func (e *ExecCmd) SetStdout(w io.Writer) {
	e.cmd.Stdout = w
}

// SetStderr sets the stderr writer for the underlying command.
func (e *ExecCmd) SetStderr(w io.Writer) {
	e.cmd.Stderr = w
}
