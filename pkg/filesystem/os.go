package filesystem

import (
	"io"
	"io/fs"
	"os"
)

const (
	outputTruncate = os.O_WRONLY | os.O_CREATE | os.O_TRUNC
	outputAppend   = os.O_WRONLY | os.O_CREATE | os.O_APPEND
)

// osFS implements FS using the OS filesystem
type osFS struct{}

// NewOS creates a new OS filesystem implementation
func NewOS() FS {
	return &osFS{}
}

func (o *osFS) Stat(name string) (fs.FileInfo, error) {
	return os.Stat(name)
}

func (o *osFS) ReadFile(name string) ([]byte, error) {
	return os.ReadFile(name)
}

func (o *osFS) WriteFile(name string, data []byte, perm fs.FileMode) error {
	return os.WriteFile(name, data, perm)
}

func (o *osFS) MkdirAll(path string, perm fs.FileMode) error {
	return os.MkdirAll(path, perm)
}

func (o *osFS) OpenOutput(name string, appendMode bool) (io.WriteCloser, error) {
	return os.OpenFile(name, OutputFlags(appendMode), 0644)
}
