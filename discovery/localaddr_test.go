package discovery

import (
	"net"
	"testing"
)

func Test_LocalAddress(t *testing.T) {
	ip, err := LocalAddress()
	if err != nil {
		t.Skipf("no route to the internet in this environment: %s", err)
	}
	if net.ParseIP(ip) == nil {
		t.Fatalf("expected a parseable IP, got %q", ip)
	}
}
