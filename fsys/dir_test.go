package fsys

import (
	"os"
	"path/filepath"
	"testing"
)

func Test_WalkTree(t *testing.T) {
	root := t.TempDir()

	mustWriteFile(t, filepath.Join(root, "a.txt"), "hello")
	mustWriteFile(t, filepath.Join(root, "sub", "b.txt"), "world!")
	if err := os.MkdirAll(filepath.Join(root, "empty"), 0o755); err != nil {
		t.Fatalf("mkdir: %s", err)
	}

	tree, err := WalkTree(root)
	if err != nil {
		t.Fatalf("WalkTree: %s", err)
	}

	if len(tree.Entries) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(tree.Entries))
	}
	if tree.TotalSize != uint64(len("hello")+len("world!")) {
		t.Fatalf("unexpected total size %d", tree.TotalSize)
	}

	var sawSub bool
	for _, entry := range tree.Entries {
		if entry.RelPath == "sub/b.txt" {
			sawSub = true
		}
	}
	if !sawSub {
		t.Fatalf("expected entry with forward-slash relative path sub/b.txt, got %+v", tree.Entries)
	}
}

func Test_WalkTreeSkipsSymlinks(t *testing.T) {
	root := t.TempDir()
	mustWriteFile(t, filepath.Join(root, "real.txt"), "data")

	symlinkPath := filepath.Join(root, "link.txt")
	if err := os.Symlink(filepath.Join(root, "real.txt"), symlinkPath); err != nil {
		t.Skipf("symlinks unsupported on this filesystem: %s", err)
	}

	tree, err := WalkTree(root)
	if err != nil {
		t.Fatalf("WalkTree: %s", err)
	}

	if len(tree.Entries) != 1 {
		t.Fatalf("expected symlink to be skipped, got %d entries", len(tree.Entries))
	}
}

func Test_WalkTreeRejectsFile(t *testing.T) {
	root := t.TempDir()
	path := filepath.Join(root, "a.txt")
	mustWriteFile(t, path, "x")

	if _, err := WalkTree(path); err != ErrNotDirectory {
		t.Fatalf("expected ErrNotDirectory, got %v", err)
	}
}

func Test_IsSymlink(t *testing.T) {
	root := t.TempDir()
	mustWriteFile(t, filepath.Join(root, "real.txt"), "data")

	symlinkPath := filepath.Join(root, "link.txt")
	if err := os.Symlink(filepath.Join(root, "real.txt"), symlinkPath); err != nil {
		t.Skipf("symlinks unsupported on this filesystem: %s", err)
	}

	isSymlink, err := IsSymlink(symlinkPath)
	if err != nil {
		t.Fatalf("%s", err)
	}
	if !isSymlink {
		t.Fatalf("%s expected to be a symlink", symlinkPath)
	}
}

func mustWriteFile(t *testing.T, path, contents string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir: %s", err)
	}
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatalf("write %s: %s", path, err)
	}
}
