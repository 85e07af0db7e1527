/*
nettf - LAN file and directory transfer utility.

Finds the local address the OS would route LAN traffic through, without
sending any actual traffic, and reports it as "this host's reachable
address" in commands like discover.
*/

package discovery

import "net"

// LocalAddress returns the IP address the OS would use to reach the LAN,
// without sending any actual traffic (dialing UDP never transmits a
// packet until something is written).
func LocalAddress() (string, error) {
	conn, err := net.Dial("udp4", "8.8.8.8:80")
	if err != nil {
		return "", err
	}
	defer conn.Close()

	return conn.LocalAddr().(*net.UDPAddr).IP.String(), nil
}
