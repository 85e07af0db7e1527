// Package wire packs and unpacks the fixed-width big-endian integers that
// appear on every NETTF frame header. It never assumes host endianness.
package wire

import "encoding/binary"

// PutUint32 writes v into buf[0:4] in network byte order.
func PutUint32(buf []byte, v uint32) {
	binary.BigEndian.PutUint32(buf, v)
}

// PutUint64 writes v into buf[0:8] in network byte order.
func PutUint64(buf []byte, v uint64) {
	binary.BigEndian.PutUint64(buf, v)
}

// Uint32 reads a big-endian uint32 from buf[0:4].
func Uint32(buf []byte) uint32 {
	return binary.BigEndian.Uint32(buf)
}

// Uint64 reads a big-endian uint64 from buf[0:8].
func Uint64(buf []byte) uint64 {
	return binary.BigEndian.Uint64(buf)
}

// AppendUint32 appends v to buf in network byte order and returns the buffer.
func AppendUint32(buf []byte, v uint32) []byte {
	var b [4]byte
	PutUint32(b[:], v)
	return append(buf, b[:]...)
}

// AppendUint64 appends v to buf in network byte order and returns the buffer.
func AppendUint64(buf []byte, v uint64) []byte {
	var b [8]byte
	PutUint64(b[:], v)
	return append(buf, b[:]...)
}
