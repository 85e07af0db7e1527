/*
nettf - LAN file and directory transfer utility.

This file implements the byte courier: full-length send/receive over a
stream, looping over partial I/O and peer-closed EOF until a declared
length is satisfied.
*/

// Package courier guarantees exactly-N-bytes semantics over an io.Reader or
// io.Writer backed by a TCP stream, where a single Read or Write call may
// transfer fewer bytes than requested.
package courier

import (
	"errors"
	"io"
)

// ErrPeerClosed is returned when the peer closes the connection before the
// requested number of bytes could be transferred.
var ErrPeerClosed = errors.New("courier: peer closed connection")

// SendExact writes all of data to w, looping until it is fully written or an
// error occurs. A write that returns (0, nil) is treated as a closed peer.
func SendExact(w io.Writer, data []byte) error {
	total := 0
	for total < len(data) {
		n, err := w.Write(data[total:])
		if n == 0 && err == nil {
			return ErrPeerClosed
		}
		total += n
		if err != nil {
			return err
		}
	}
	return nil
}

// RecvExact reads len(buf) bytes from r into buf, looping until the buffer
// is full or an error occurs. io.EOF (or any zero-byte read with no error)
// before the buffer is full is reported as ErrPeerClosed.
func RecvExact(r io.Reader, buf []byte) error {
	total := 0
	for total < len(buf) {
		n, err := r.Read(buf[total:])
		total += n
		if err != nil {
			if errors.Is(err, io.EOF) {
				if total == len(buf) {
					return nil
				}
				return ErrPeerClosed
			}
			return err
		}
		if n == 0 {
			return ErrPeerClosed
		}
	}
	return nil
}
