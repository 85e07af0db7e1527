package discovery

import (
	"net"
	"testing"
)

func Test_NetworkRange(t *testing.T) {
	ln := &LocalIPv4Net{
		IP:   net.ParseIP("192.168.1.42").To4(),
		Mask: net.CIDRMask(24, 32),
	}

	network, broadcast := ln.NetworkRange()
	if !network.Equal(net.ParseIP("192.168.1.0")) {
		t.Fatalf("unexpected network %s", network)
	}
	if !broadcast.Equal(net.ParseIP("192.168.1.255")) {
		t.Fatalf("unexpected broadcast %s", broadcast)
	}
}

func Test_HostRange_ExcludesNetworkAndBroadcast(t *testing.T) {
	ln := &LocalIPv4Net{
		IP:   net.ParseIP("10.0.0.5").To4(),
		Mask: net.CIDRMask(24, 32),
	}

	hosts := ln.HostRange()
	if len(hosts) != 254 {
		t.Fatalf("expected 254 usable hosts, got %d", len(hosts))
	}
	for _, h := range hosts {
		if h.Equal(net.ParseIP("10.0.0.0")) || h.Equal(net.ParseIP("10.0.0.255")) {
			t.Fatalf("host range leaked network/broadcast address: %s", h)
		}
	}
}

func Test_HostRange_CapsAt254(t *testing.T) {
	ln := &LocalIPv4Net{
		IP:   net.ParseIP("10.0.0.5").To4(),
		Mask: net.CIDRMask(16, 32), // 10.0.0.0/16, far more than 254 hosts
	}

	if got := len(ln.HostRange()); got != 255 {
		t.Fatalf("expected capped range of 255 entries (start..start+254), got %d", got)
	}
}

func Test_IPUint32RoundTrip(t *testing.T) {
	ip := net.ParseIP("203.0.113.77").To4()
	n := ipToUint32(ip)
	got := uint32ToIP(n)
	if !got.Equal(ip) {
		t.Fatalf("round trip failed: got %s, want %s", got, ip)
	}
}
