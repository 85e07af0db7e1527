/*
nettf - LAN file and directory transfer utility.

Error taxonomy: a handful of package-level sentinel errors checked with
errors.Is, one per named failure category a frame transfer can hit.
*/

package frame

import (
	"errors"
	"fmt"

	"github.com/nettf/nettf/courier"
)

var (
	// ErrTransport wraps an underlying socket error.
	ErrTransport = errors.New("frame: transport error")
	// ErrPeerClosed is an unexpected EOF mid-frame.
	ErrPeerClosed = courier.ErrPeerClosed
	// ErrFileError is a local filesystem error (open/stat/read/write/mkdir).
	ErrFileError = errors.New("frame: file error")
	// ErrPathRejected means a sanitization rule was violated.
	ErrPathRejected = errors.New("frame: path rejected")
	// ErrUnknownFrame means the leading magic did not match any frame kind.
	ErrUnknownFrame = errors.New("frame: unknown frame magic")
	// ErrInterrupted means cancellation escalated to Forced.
	ErrInterrupted = errors.New("frame: interrupted")
	// ErrShortRead means a source file yielded fewer bytes than its stat'd size.
	ErrShortRead = errors.New("frame: short read from source file")
	// ErrHeaderInvalid means a header was internally inconsistent.
	ErrHeaderInvalid = errors.New("frame: invalid header")
	// ErrResourceExhausted means an allocation failed.
	ErrResourceExhausted = errors.New("frame: resource exhausted")
)

// wrapf annotates err with a message while keeping it unwrappable to its
// sentinel via errors.Is.
func wrapf(err error, format string, args ...interface{}) error {
	return fmt.Errorf("%s: %w", fmt.Sprintf(format, args...), err)
}
