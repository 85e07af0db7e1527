/*
nettf - LAN file and directory transfer utility.

Combines a passive ARP-table read with an active ping sweep, then probes
each active device for the nettf service port.
*/

package discovery

import (
	"context"
	"time"
)

// Discover combines ScanARPTable and an active PingSweep of the local
// subnet, then probes every reachable device for the NETTF service on port.
// Devices found by both methods are merged by IP address.
func Discover(ctx context.Context, port int, timeout time.Duration) ([]Device, error) {
	byIP := make(map[string]Device)

	arpDevices, err := ScanARPTable()
	if err != nil {
		return nil, err
	}
	for _, d := range arpDevices {
		byIP[d.IP] = d
	}

	if iface, err := PrimaryInterface(); err == nil {
		for _, d := range PingSweep(ctx, iface.HostRange(), timeout) {
			existing, ok := byIP[d.IP]
			if ok {
				existing.Active = true
				existing.ResponseTime = d.ResponseTime
				byIP[d.IP] = existing
			} else {
				byIP[d.IP] = d
			}
		}
	}

	devices := make([]Device, 0, len(byIP))
	for _, d := range byIP {
		if d.Active {
			d.HasService = CheckService(d.IP, port, timeout)
		}
		devices = append(devices, d)
	}
	return devices, nil
}
