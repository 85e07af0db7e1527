/*
nettf - LAN file and directory transfer utility.

Sender-side frame handling: stat, sanitize, emit magic+header+name(s), then
stream content in chunks advised by the adaptive chunk-size controller.
*/

package frame

import (
	"errors"
	"io"
	"os"
	"time"

	"github.com/nettf/nettf/chunker"
	"github.com/nettf/nettf/courier"
	"github.com/nettf/nettf/fsys"
	"github.com/nettf/nettf/wire"
)

// classifyIOErr reports a courier/transport failure as the taxonomy's
// ErrTransport, except for a closed peer which keeps its own identity.
func classifyIOErr(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, ErrPeerClosed) {
		return err
	}
	return wrapf(ErrTransport, "%v", err)
}

func sendMagic(conn io.Writer, m Magic) error {
	buf := wire.AppendUint32(nil, uint32(m))
	return classifyIOErr(courier.SendExact(conn, buf))
}

// streamSend reads size bytes from r in chunker-advised increments and sends
// each to conn, updating chunkState from observed per-chunk throughput. It
// polls cancellation between chunks.
func streamSend(conn io.Writer, r io.Reader, size uint64, chunkState *chunker.State, opts Options, prompted *bool) error {
	var sent uint64
	for sent < size {
		if err := opts.pollCancel(prompted); err != nil {
			return err
		}

		k := chunkState.ChunkSize()
		if remain := size - sent; uint64(k) > remain {
			k = int(remain)
		}

		buf := make([]byte, k)
		start := time.Now()
		n, rerr := r.Read(buf)
		if n == 0 {
			if rerr == io.EOF {
				break
			}
			return wrapf(ErrFileError, "read source: %v", rerr)
		}

		if err := classifyIOErr(courier.SendExact(conn, buf[:n])); err != nil {
			return err
		}

		chunkState.Update(uint64(n), time.Since(start).Seconds())
		sent += uint64(n)

		if rerr != nil && rerr != io.EOF {
			return wrapf(ErrFileError, "read source: %v", rerr)
		}
	}

	if sent != size {
		return ErrShortRead
	}
	return nil
}

// SendFile transmits the regular file at path as a FILE frame, or a TARG
// frame when targetDir is non-empty. Sanitization of targetDir happens
// before any socket I/O; a rejected target aborts without touching the
// connection.
func SendFile(conn io.ReadWriter, path string, targetDir string, opts Options) error {
	info, err := fsys.StatFile(path)
	if err != nil {
		return wrapf(ErrFileError, "stat %s: %v", path, err)
	}

	magic := MagicFile
	var cleanTarget string
	if targetDir != "" {
		cleanTarget, err = sanitizeTarget(targetDir)
		if err != nil {
			return err
		}
		magic = MagicTarg
	}

	f, err := os.Open(info.AbsPath)
	if err != nil {
		return wrapf(ErrFileError, "open %s: %v", info.AbsPath, err)
	}
	defer f.Close()

	opts.logger().Infof("sending %s %s (%d bytes)", magic, info.Name, info.Size)

	if err := sendMagic(conn, magic); err != nil {
		return err
	}

	nameBytes := []byte(info.Name)
	hdr := fileHeader{Size: info.Size, NameLen: uint64(len(nameBytes))}

	var headerBytes []byte
	if magic == MagicTarg {
		targetBytes := []byte(cleanTarget)
		headerBytes = targFileHeader{fileHeader: hdr, TargetLen: uint64(len(targetBytes))}.encode()
		if err := classifyIOErr(courier.SendExact(conn, headerBytes)); err != nil {
			return err
		}
		if err := classifyIOErr(courier.SendExact(conn, nameBytes)); err != nil {
			return err
		}
		if err := classifyIOErr(courier.SendExact(conn, targetBytes)); err != nil {
			return err
		}
	} else {
		headerBytes = hdr.encode()
		if err := classifyIOErr(courier.SendExact(conn, headerBytes)); err != nil {
			return err
		}
		if err := classifyIOErr(courier.SendExact(conn, nameBytes)); err != nil {
			return err
		}
	}

	chunkState := &chunker.State{}
	chunkState.Init(info.Size)

	prompted := false
	if err := streamSend(conn, f, info.Size, chunkState, opts, &prompted); err != nil {
		opts.logger().Errorf("send %s failed: %v", info.Name, err)
		return err
	}

	opts.logger().Infof("sent %s", info.Name)
	return nil
}

// SendTree transmits the directory at path as a DIR frame, or a TDIR frame
// when targetDir is non-empty. The tree is walked once and the resulting
// snapshot is reused for both the header counts and the streamed entries,
// so a source tree mutated mid-transfer cannot desynchronize the declared
// total_files from what is actually sent.
func SendTree(conn io.ReadWriter, path string, targetDir string, opts Options) error {
	tree, err := fsys.WalkTree(path)
	if err != nil {
		return wrapf(ErrFileError, "walk %s: %v", path, err)
	}

	magic := MagicDir
	var cleanTarget string
	if targetDir != "" {
		cleanTarget, err = sanitizeTarget(targetDir)
		if err != nil {
			return err
		}
		magic = MagicTDir
	}

	opts.logger().Infof("sending %s %s (%d files, %d bytes)", magic, tree.BaseName, len(tree.Entries), tree.TotalSize)

	if err := sendMagic(conn, magic); err != nil {
		return err
	}

	baseBytes := []byte(tree.BaseName)
	hdr := dirHeader{
		TotalFiles:  uint64(len(tree.Entries)),
		TotalSize:   tree.TotalSize,
		BasePathLen: uint64(len(baseBytes)),
	}

	if magic == MagicTDir {
		targetBytes := []byte(cleanTarget)
		headerBytes := tdirHeader{dirHeader: hdr, TargetLen: uint64(len(targetBytes))}.encode()
		if err := classifyIOErr(courier.SendExact(conn, headerBytes)); err != nil {
			return err
		}
		if err := classifyIOErr(courier.SendExact(conn, baseBytes)); err != nil {
			return err
		}
		if err := classifyIOErr(courier.SendExact(conn, targetBytes)); err != nil {
			return err
		}
	} else {
		if err := classifyIOErr(courier.SendExact(conn, hdr.encode())); err != nil {
			return err
		}
		if err := classifyIOErr(courier.SendExact(conn, baseBytes)); err != nil {
			return err
		}
	}

	chunkState := &chunker.State{}
	chunkState.Init(tree.TotalSize)
	prompted := false

	for _, entry := range tree.Entries {
		if err := opts.pollCancel(&prompted); err != nil {
			return err
		}
		if err := sendTreeEntry(conn, entry, chunkState, opts, &prompted); err != nil {
			opts.logger().Errorf("send %s failed: %v", entry.RelPath, err)
			return err
		}
	}

	if magic == MagicDir {
		sentinel := fileHeader{Size: 0, NameLen: 0}
		if err := classifyIOErr(courier.SendExact(conn, sentinel.encode())); err != nil {
			return err
		}
	}

	opts.logger().Infof("sent tree %s", tree.BaseName)
	return nil
}

func sendTreeEntry(conn io.ReadWriter, entry fsys.Entry, chunkState *chunker.State, opts Options, prompted *bool) error {
	f, err := os.Open(entry.AbsPath)
	if err != nil {
		return wrapf(ErrFileError, "open %s: %v", entry.AbsPath, err)
	}
	defer f.Close()

	nameBytes := []byte(entry.RelPath)
	hdr := fileHeader{Size: entry.Size, NameLen: uint64(len(nameBytes))}
	if err := classifyIOErr(courier.SendExact(conn, hdr.encode())); err != nil {
		return err
	}
	if err := classifyIOErr(courier.SendExact(conn, nameBytes)); err != nil {
		return err
	}

	return streamSend(conn, f, entry.Size, chunkState, opts, prompted)
}
