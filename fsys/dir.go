/*
nettf - LAN file and directory transfer utility.

A single depth-first walk builds a snapshot of a directory tree before any
bytes go out on the wire: the file list and total size it reports can never
drift from what actually gets streamed, since there is no second walk.
Symlinks are detected and skipped, never transmitted.
*/

package fsys

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

var ErrNotDirectory error = fmt.Errorf("not a directory")

// Entry is one regular file inside a directory-tree transfer.
type Entry struct {
	RelPath string // forward-slash separated, relative to the tree base
	AbsPath string
	Size    uint64
}

// Tree is a sender's snapshot of a directory: the base name transmitted on
// the wire, the flat list of regular files under it, and their combined
// size. Built once and reused for both the header counts and the streamed
// entries, so the declared totals can never disagree with what is sent.
type Tree struct {
	BaseName  string
	Entries   []Entry
	TotalSize uint64
}

// WalkTree stats root, verifies it is a directory, and recursively collects
// every regular file beneath it into a snapshot. Symlinks, sockets, devices
// and other non-regular, non-directory entries are skipped silently, same
// as a plain directory entry that happens to be "." or "..".
func WalkTree(root string) (*Tree, error) {
	absRoot, err := filepath.Abs(root)
	if err != nil {
		return nil, err
	}

	rootStat, err := os.Stat(absRoot)
	if err != nil {
		return nil, err
	}
	if !rootStat.IsDir() {
		return nil, ErrNotDirectory
	}

	tree := &Tree{BaseName: filepath.Base(absRoot)}

	err = filepath.WalkDir(absRoot, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if path == absRoot {
			return nil
		}

		info, err := d.Info()
		if err != nil {
			return err
		}

		if d.IsDir() {
			return nil
		}

		if symlink, serr := IsSymlink(path); serr != nil {
			return serr
		} else if symlink {
			return nil
		}

		if !info.Mode().IsRegular() {
			// sockets, devices, and other special files are skipped silently.
			return nil
		}

		rel, err := filepath.Rel(absRoot, path)
		if err != nil {
			return err
		}

		tree.Entries = append(tree.Entries, Entry{
			RelPath: filepath.ToSlash(rel),
			AbsPath: path,
			Size:    uint64(info.Size()),
		})
		tree.TotalSize += uint64(info.Size())

		return nil
	})
	if err != nil {
		return nil, err
	}

	return tree, nil
}

// IsSymlink reports whether path refers to a symbolic link without
// following it.
func IsSymlink(path string) (bool, error) {
	stat, err := os.Lstat(path)
	if err != nil {
		return false, err
	}
	return stat.Mode()&os.ModeSymlink != 0, nil
}
