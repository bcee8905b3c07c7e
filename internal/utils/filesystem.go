package utils

import (
	"os"

	"golang.org/x/sys/unix"
)

type FilesystemHandler interface {
	MkdirAll(path string, perm os.FileMode) error
	ReadFile(name string) ([]byte, error)
	ReadDir(name string) ([]os.DirEntry, error)
	Stat(name string) (os.FileInfo, error)
	OpenFile(name string, flag int, perm os.FileMode) (*os.File, error)
	IsNotExist(err error) bool
	Flock(fd int, how int) error
}

func NewFilesystemExecutor() *FilesystemExecutor {
	return &FilesystemExecutor{}
}

type FilesystemExecutor struct{}

func (e *FilesystemExecutor) MkdirAll(path string, perm os.FileMode) error {
	return os.MkdirAll(path, perm)
}

func (s *FilesystemExecutor) ReadFile(name string) ([]byte, error) {
	return os.ReadFile(name)
}

func (s *FilesystemExecutor) ReadDir(name string) ([]os.DirEntry, error) {
	return os.ReadDir(name)
}

func (s *FilesystemExecutor) Stat(name string) (os.FileInfo, error) {
	return os.Stat(name)
}

func (s *FilesystemExecutor) OpenFile(name string, flag int, perm os.FileMode) (*os.File, error) {
	return os.OpenFile(name, flag, perm)
}

func (s *FilesystemExecutor) IsNotExist(err error) bool {
	return os.IsNotExist(err)
}

func (s *FilesystemExecutor) Flock(fd int, how int) error {
	return unix.Flock(fd, how)
}
