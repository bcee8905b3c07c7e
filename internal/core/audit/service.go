package audit

import (
	"errors"
	"fmt"
	"ovpnapi/internal/utils"
)

const (
	MaxTailLines = 10000
	maxTailBytes = 4 * 1024 * 1024
)

var (
	ErrNotConfigured = errors.New("audit log is not written to a file")
	ErrInvalidLines  = fmt.Errorf("tail_lines must be between 1 and %d", MaxTailLines)
)

func NewAuditService(path string) *AuditService {
	return &AuditService{
		path:              path,
		filesystemHandler: utils.NewFilesystemExecutor(),
	}
}

// AuditService reads back the JSON-lines audit trail. It only works when
// the trail goes to a file.
type AuditService struct {
	path              string
	filesystemHandler utils.FilesystemHandler
}

func (s *AuditService) Tail(n int) ([]byte, error) {
	if s.path == "" {
		return nil, ErrNotConfigured
	}
	if n <= 0 || n > MaxTailLines {
		return nil, ErrInvalidLines
	}

	data, err := utils.TailLines(s.path, n, maxTailBytes)
	if err != nil {
		if s.filesystemHandler.IsNotExist(err) {
			// nothing audited yet
			return []byte{}, nil
		}
		return nil, fmt.Errorf("tail audit log: %w", err)
	}
	return data, nil
}
