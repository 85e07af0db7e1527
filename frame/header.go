/*
nettf - LAN file and directory transfer utility.

Fixed-layout frame headers, encoded and decoded explicitly over the wire
package rather than by struct-casting a byte buffer.
*/

package frame

import "github.com/nettf/nettf/wire"

// fileHeaderSize is the wire size of a bare file header: file_size,
// filename_len.
const fileHeaderSize = 16

// targFileHeaderSize adds a target_dir_len field.
const targFileHeaderSize = 24

// dirHeaderSize is the wire size of a bare directory header: total_files,
// total_size, base_path_len.
const dirHeaderSize = 24

// tdirHeaderSize adds a target_dir_len field.
const tdirHeaderSize = 32

// fileHeader is the per-file (or per-entry) header: declared size and the
// length of the name that follows it.
type fileHeader struct {
	Size    uint64
	NameLen uint64
}

func (h fileHeader) encode() []byte {
	buf := make([]byte, 0, fileHeaderSize)
	buf = wire.AppendUint64(buf, h.Size)
	buf = wire.AppendUint64(buf, h.NameLen)
	return buf
}

func decodeFileHeader(buf []byte) fileHeader {
	return fileHeader{
		Size:    wire.Uint64(buf[0:8]),
		NameLen: wire.Uint64(buf[8:16]),
	}
}

// isSentinel reports whether h is the DIR end-of-tree sentinel: both fields
// zero.
func (h fileHeader) isSentinel() bool {
	return h.Size == 0 && h.NameLen == 0
}

// targFileHeader is a fileHeader plus the length of a target-directory
// string that follows the name.
type targFileHeader struct {
	fileHeader
	TargetLen uint64
}

func (h targFileHeader) encode() []byte {
	buf := h.fileHeader.encode()
	return wire.AppendUint64(buf, h.TargetLen)
}

func decodeTargFileHeader(buf []byte) targFileHeader {
	return targFileHeader{
		fileHeader: decodeFileHeader(buf[0:16]),
		TargetLen:  wire.Uint64(buf[16:24]),
	}
}

// dirHeader describes a directory-tree frame: how many entries follow, their
// combined size, and the length of the tree's base name.
type dirHeader struct {
	TotalFiles  uint64
	TotalSize   uint64
	BasePathLen uint64
}

func (h dirHeader) encode() []byte {
	buf := make([]byte, 0, dirHeaderSize)
	buf = wire.AppendUint64(buf, h.TotalFiles)
	buf = wire.AppendUint64(buf, h.TotalSize)
	buf = wire.AppendUint64(buf, h.BasePathLen)
	return buf
}

func decodeDirHeader(buf []byte) dirHeader {
	return dirHeader{
		TotalFiles:  wire.Uint64(buf[0:8]),
		TotalSize:   wire.Uint64(buf[8:16]),
		BasePathLen: wire.Uint64(buf[16:24]),
	}
}

// tdirHeader is a dirHeader plus the length of a target-directory string.
type tdirHeader struct {
	dirHeader
	TargetLen uint64
}

func (h tdirHeader) encode() []byte {
	buf := h.dirHeader.encode()
	return wire.AppendUint64(buf, h.TargetLen)
}

func decodeTDirHeader(buf []byte) tdirHeader {
	return tdirHeader{
		dirHeader: decodeDirHeader(buf[0:24]),
		TargetLen: wire.Uint64(buf[24:32]),
	}
}
