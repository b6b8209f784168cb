package filesystem

import (
	"io"
	"io/fs"
)

// FS is the subset of filesystem operations coloring-tee needs
type FS interface {
	Stat(name string) (fs.FileInfo, error)
	ReadFile(name string) ([]byte, error)
	WriteFile(name string, data []byte, perm fs.FileMode) error
	MkdirAll(path string, perm fs.FileMode) error

	// OpenOutput opens name for writing. The file is created when missing
	// and truncated unless appendMode is set.
	OpenOutput(name string, appendMode bool) (io.WriteCloser, error)
}

// OutputFlags returns the os.OpenFile flags for an output file
func OutputFlags(appendMode bool) int {
	if appendMode {
		return outputAppend
	}
	return outputTruncate
}
