/*
nettf - LAN file and directory transfer utility.

Pings a host with an ICMP echo request built through golang.org/x/net/icmp,
over the unprivileged "udp4" ICMP endpoint so it does not require
CAP_NET_RAW on Linux.
*/

package discovery

import (
	"context"
	"fmt"
	"net"
	"os"
	"sync"
	"time"

	"golang.org/x/net/icmp"
	"golang.org/x/net/ipv4"
)

// PingDevice sends a single ICMP echo request to ip and reports whether a
// reply arrived within timeout, along with the observed round-trip time.
func PingDevice(ip string, timeout time.Duration) (bool, time.Duration, error) {
	conn, err := icmp.ListenPacket("udp4", "0.0.0.0")
	if err != nil {
		return false, 0, fmt.Errorf("discovery: icmp listen: %w", err)
	}
	defer conn.Close()

	msg := icmp.Message{
		Type: ipv4.ICMPTypeEcho,
		Code: 0,
		Body: &icmp.Echo{
			ID:   os.Getpid() & 0xffff,
			Seq:  1,
			Data: []byte("nettf-ping"),
		},
	}
	wb, err := msg.Marshal(nil)
	if err != nil {
		return false, 0, fmt.Errorf("discovery: marshal echo: %w", err)
	}

	dst, err := net.ResolveIPAddr("ip4", ip)
	if err != nil {
		return false, 0, fmt.Errorf("discovery: resolve %s: %w", ip, err)
	}

	start := time.Now()
	if _, err := conn.WriteTo(wb, &net.UDPAddr{IP: dst.IP}); err != nil {
		return false, 0, fmt.Errorf("discovery: write echo: %w", err)
	}

	conn.SetReadDeadline(time.Now().Add(timeout))
	rb := make([]byte, 1500)
	n, _, err := conn.ReadFrom(rb)
	if err != nil {
		if ne, ok := err.(net.Error); ok && ne.Timeout() {
			return false, 0, nil
		}
		return false, 0, fmt.Errorf("discovery: read echo reply: %w", err)
	}
	rtt := time.Since(start)

	reply, err := icmp.ParseMessage(1, rb[:n]) // protocol 1 = ICMP
	if err != nil {
		return false, 0, fmt.Errorf("discovery: parse reply: %w", err)
	}
	if reply.Type != ipv4.ICMPTypeEchoReply {
		return false, 0, nil
	}

	return true, rtt, nil
}

// PingSweep probes every host in hosts concurrently and returns the ones
// that responded within timeout.
func PingSweep(ctx context.Context, hosts []net.IP, timeout time.Duration) []Device {
	results := make(chan Device, len(hosts))
	var wg sync.WaitGroup

	for _, host := range hosts {
		host := host
		wg.Add(1)
		go func() {
			defer wg.Done()

			select {
			case <-ctx.Done():
				return
			default:
			}

			alive, rtt, err := PingDevice(host.String(), timeout)
			if err != nil || !alive {
				return
			}
			results <- Device{IP: host.String(), Active: true, ResponseTime: rtt}
		}()
	}

	go func() {
		wg.Wait()
		close(results)
	}()

	var devices []Device
	for d := range results {
		devices = append(devices, d)
	}
	return devices
}
