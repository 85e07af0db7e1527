/*
nettf - LAN file and directory transfer utility.

Receiver-side frame handling: magic dispatch, header decode,
sanitize-then-mkdir, chunked body reception.
*/

package frame

import (
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/nettf/nettf/chunker"
	"github.com/nettf/nettf/courier"
	"github.com/nettf/nettf/wire"
)

// Receive reads one frame's leading magic and dispatches to the matching
// handler. It never consumes more than the 4 magic bytes before dispatch.
// It returns the number of content bytes written to disk, for callers that
// want to report a transfer summary.
func Receive(conn io.ReadWriter, opts Options) (uint64, error) {
	magicBuf := make([]byte, 4)
	if err := classifyIOErr(courier.RecvExact(conn, magicBuf)); err != nil {
		return 0, err
	}
	magic := Magic(wire.Uint32(magicBuf))

	switch magic {
	case MagicFile, MagicTarg:
		return receiveFile(conn, magic, opts)
	case MagicDir, MagicTDir:
		return receiveTree(conn, magic, opts)
	default:
		return 0, wrapf(ErrUnknownFrame, "magic %08x", uint32(magic))
	}
}

// streamRecv reads size bytes from conn in chunker-advised increments and
// writes each to w, updating chunkState from observed per-chunk throughput.
// prompted is shared with the caller so a shutdown prompt is only printed
// once across an entire transfer, not once per entry.
func streamRecv(conn io.Reader, w io.Writer, size uint64, chunkState *chunker.State, opts Options, prompted *bool) error {
	var received uint64
	for received < size {
		if err := opts.pollCancel(prompted); err != nil {
			return err
		}

		k := chunkState.ChunkSize()
		if remain := size - received; uint64(k) > remain {
			k = int(remain)
		}

		buf := make([]byte, k)
		start := time.Now()
		if err := classifyIOErr(courier.RecvExact(conn, buf)); err != nil {
			return err
		}
		if _, err := w.Write(buf); err != nil {
			return wrapf(ErrFileError, "write: %v", err)
		}

		chunkState.Update(uint64(len(buf)), time.Since(start).Seconds())
		received += uint64(len(buf))
	}
	return nil
}

func receiveFile(conn io.ReadWriter, magic Magic, opts Options) (uint64, error) {
	headerSize := fileHeaderSize
	if magic.hasTarget() {
		headerSize = targFileHeaderSize
	}

	buf := make([]byte, headerSize)
	if err := classifyIOErr(courier.RecvExact(conn, buf)); err != nil {
		return 0, err
	}

	var hdr fileHeader
	var targetLen uint64
	if magic.hasTarget() {
		th := decodeTargFileHeader(buf)
		hdr, targetLen = th.fileHeader, th.TargetLen
	} else {
		hdr = decodeFileHeader(buf)
	}

	if hdr.NameLen == 0 {
		return 0, wrapf(ErrHeaderInvalid, "filename_len is zero")
	}

	nameBuf := make([]byte, hdr.NameLen)
	if err := classifyIOErr(courier.RecvExact(conn, nameBuf)); err != nil {
		return 0, err
	}
	filename, err := sanitizeFilename(string(nameBuf))
	if err != nil {
		return 0, err
	}

	var targetDir string
	if magic.hasTarget() {
		targetBuf := make([]byte, targetLen)
		if err := classifyIOErr(courier.RecvExact(conn, targetBuf)); err != nil {
			return 0, err
		}
		targetDir, err = sanitizeTarget(string(targetBuf))
		if err != nil {
			return 0, err
		}
	}

	outPath := filename
	if targetDir != "" {
		if err := os.MkdirAll(targetDir, 0o755); err != nil {
			return 0, wrapf(ErrFileError, "mkdir %s: %v", targetDir, err)
		}
		outPath = filepath.Join(targetDir, filename)
	}

	out, err := os.OpenFile(outPath, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o644)
	if err != nil {
		return 0, wrapf(ErrFileError, "create %s: %v", outPath, err)
	}
	defer out.Close()

	opts.logger().Infof("receiving %s %s (%d bytes)", magic, outPath, hdr.Size)

	chunkState := &chunker.State{}
	chunkState.Init(hdr.Size)

	prompted := false
	if err := streamRecv(conn, out, hdr.Size, chunkState, opts, &prompted); err != nil {
		opts.logger().Errorf("receive %s failed: %v", outPath, err)
		return 0, err
	}

	opts.logger().Infof("received %s", outPath)
	return hdr.Size, nil
}

func receiveTree(conn io.ReadWriter, magic Magic, opts Options) (uint64, error) {
	headerSize := dirHeaderSize
	if magic.hasTarget() {
		headerSize = tdirHeaderSize
	}

	buf := make([]byte, headerSize)
	if err := classifyIOErr(courier.RecvExact(conn, buf)); err != nil {
		return 0, err
	}

	var hdr dirHeader
	var targetLen uint64
	if magic.hasTarget() {
		th := decodeTDirHeader(buf)
		hdr, targetLen = th.dirHeader, th.TargetLen
	} else {
		hdr = decodeDirHeader(buf)
	}

	if hdr.BasePathLen == 0 {
		return 0, wrapf(ErrHeaderInvalid, "base_path_len is zero")
	}

	baseBuf := make([]byte, hdr.BasePathLen)
	if err := classifyIOErr(courier.RecvExact(conn, baseBuf)); err != nil {
		return 0, err
	}
	base, err := sanitizeEntryPath(string(baseBuf))
	if err != nil {
		return 0, err
	}

	var targetDir string
	if magic.hasTarget() {
		targetBuf := make([]byte, targetLen)
		if err := classifyIOErr(courier.RecvExact(conn, targetBuf)); err != nil {
			return 0, err
		}
		targetDir, err = sanitizeTarget(string(targetBuf))
		if err != nil {
			return 0, err
		}
	}

	anchor := filepath.FromSlash(base)
	if targetDir != "" {
		anchor = filepath.Join(targetDir, anchor)
	}
	if err := os.MkdirAll(anchor, 0o755); err != nil {
		return 0, wrapf(ErrFileError, "mkdir %s: %v", anchor, err)
	}

	opts.logger().Infof("receiving %s %s (%d files, %d bytes)", magic, anchor, hdr.TotalFiles, hdr.TotalSize)

	chunkState := &chunker.State{}
	chunkState.Init(hdr.TotalSize)
	prompted := false

	receiveEntry := func() (sentinel bool, err error) {
		entryBuf := make([]byte, fileHeaderSize)
		if err := classifyIOErr(courier.RecvExact(conn, entryBuf)); err != nil {
			return false, err
		}
		eh := decodeFileHeader(entryBuf)

		if magic == MagicDir && eh.isSentinel() {
			return true, nil
		}
		if eh.NameLen == 0 {
			return false, wrapf(ErrHeaderInvalid, "entry filename_len is zero")
		}

		nameBuf := make([]byte, eh.NameLen)
		if err := classifyIOErr(courier.RecvExact(conn, nameBuf)); err != nil {
			return false, err
		}
		relPath, err := sanitizeEntryPath(string(nameBuf))
		if err != nil {
			return false, err
		}

		outPath := filepath.Join(anchor, filepath.FromSlash(relPath))
		if err := os.MkdirAll(filepath.Dir(outPath), 0o755); err != nil {
			return false, wrapf(ErrFileError, "mkdir %s: %v", filepath.Dir(outPath), err)
		}

		out, err := os.OpenFile(outPath, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o644)
		if err != nil {
			return false, wrapf(ErrFileError, "create %s: %v", outPath, err)
		}
		defer out.Close()

		return false, streamRecv(conn, out, eh.Size, chunkState, opts, &prompted)
	}

	switch magic {
	case MagicDir:
		for {
			if err := opts.pollCancel(&prompted); err != nil {
				return 0, err
			}
			done, err := receiveEntry()
			if err != nil {
				opts.logger().Errorf("receive tree entry failed: %v", err)
				return 0, err
			}
			if done {
				break
			}
		}
	case MagicTDir:
		for i := uint64(0); i < hdr.TotalFiles; i++ {
			if err := opts.pollCancel(&prompted); err != nil {
				return 0, err
			}
			if _, err := receiveEntry(); err != nil {
				opts.logger().Errorf("receive tree entry failed: %v", err)
				return 0, err
			}
		}
	}

	opts.logger().Infof("received tree %s", anchor)
	return hdr.TotalSize, nil
}
