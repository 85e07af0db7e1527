/*
nettf - LAN file and directory transfer utility.

Checks whether a host is listening on the nettf port with a timed-out
dial attempt, and tunes TCP_NODELAY on a connection so small header/name
writes do not wait on Nagle's algorithm.
*/

package discovery

import (
	"fmt"
	"net"
	"time"

	"golang.org/x/sys/unix"
)

// CheckService attempts a TCP connection to ip:port within timeout and
// reports whether it succeeded.
func CheckService(ip string, port int, timeout time.Duration) bool {
	addr := net.JoinHostPort(ip, fmt.Sprintf("%d", port))
	conn, err := net.DialTimeout("tcp4", addr, timeout)
	if err != nil {
		return false
	}
	conn.Close()
	return true
}

// SetNoDelay disables Nagle's algorithm on conn's underlying file descriptor
// via a raw setsockopt(TCP_NODELAY) call.
func SetNoDelay(conn *net.TCPConn) error {
	raw, err := conn.SyscallConn()
	if err != nil {
		return err
	}

	var sockErr error
	err = raw.Control(func(fd uintptr) {
		sockErr = unix.SetsockoptInt(int(fd), unix.IPPROTO_TCP, unix.TCP_NODELAY, 1)
	})
	if err != nil {
		return err
	}
	return sockErr
}
