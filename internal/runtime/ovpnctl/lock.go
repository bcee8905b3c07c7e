package ovpnctl

import (
	"context"
	"errors"
	"os"
	"ovpnapi/internal/utils"
	"path/filepath"
	"time"

	"golang.org/x/sys/unix"
)

const lockPollInterval = 25 * time.Millisecond

func NewInvocationLock(path string) *InvocationLock {
	return &InvocationLock{
		path:              path,
		held:              make(chan struct{}, 1),
		filesystemHandler: utils.NewFilesystemExecutor(),
	}
}

// InvocationLock serialises openvpn-ctl runs within this process and,
// through flock, with any other process using the same lock file.
type InvocationLock struct {
	path              string
	held              chan struct{}
	filesystemHandler utils.FilesystemHandler
}

// withLock runs fn while holding the lock. Waiting for the lock stops
// with ctx.Err() once ctx is done; fn itself is not bound to ctx.
func (l *InvocationLock) withLock(ctx context.Context, fn func() error) error {
	select {
	case l.held <- struct{}{}:
	case <-ctx.Done():
		return ctx.Err()
	}
	defer func() { <-l.held }()

	if err := l.filesystemHandler.MkdirAll(filepath.Dir(l.path), 0o755); err != nil {
		return err
	}

	lf, err := l.filesystemHandler.OpenFile(l.path, os.O_CREATE|os.O_RDWR, 0o600)
	if err != nil {
		return err
	}
	defer lf.Close()

	fd := int(lf.Fd())
	if err := l.flock(ctx, fd); err != nil {
		return err
	}
	defer l.filesystemHandler.Flock(fd, unix.LOCK_UN)

	return fn()
}

// flock polls a non-blocking exclusive flock until it is granted or ctx
// is done.
func (l *InvocationLock) flock(ctx context.Context, fd int) error {
	ticker := time.NewTicker(lockPollInterval)
	defer ticker.Stop()
	for {
		err := l.filesystemHandler.Flock(fd, unix.LOCK_EX|unix.LOCK_NB)
		if err == nil {
			return nil
		}
		if !errors.Is(err, unix.EWOULDBLOCK) {
			return err
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
		}
	}
}
