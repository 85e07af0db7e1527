/*
nettf - LAN file and directory transfer utility.

Stats a single source file before it is opened and streamed: just the
size and basename a sender needs, no integrity bookkeeping beyond what TCP
already guarantees.
*/

package fsys

import (
	"fmt"
	"os"
	"path/filepath"
)

var ErrNotFile error = fmt.Errorf("not a file")

// FileInfo is what the frame engine needs about a source file before it
// opens a socket: its size and its basename.
type FileInfo struct {
	AbsPath string
	Name    string // basename only
	Size    uint64
}

// StatFile stats path and returns its size and basename. It fails if path is
// a directory.
func StatFile(path string) (*FileInfo, error) {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return nil, err
	}

	stat, err := os.Stat(absPath)
	if err != nil {
		return nil, err
	}
	if stat.IsDir() {
		return nil, ErrNotFile
	}

	return &FileInfo{
		AbsPath: absPath,
		Name:    filepath.Base(absPath),
		Size:    uint64(stat.Size()),
	}, nil
}
