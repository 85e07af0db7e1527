/*
nettf - LAN file and directory transfer utility.

Scans the kernel's ARP table directly instead of shelling out to `arp -n`:
Linux exposes the same table as a fixed-width pseudo-file, which avoids
spawning a subprocess and parsing its stdout.
*/

package discovery

import (
	"bufio"
	"os"
	"strings"
)

const arpTablePath = "/proc/net/arp"

// ScanARPTable reads the kernel's ARP cache and returns every entry that has
// a resolved hardware address. It returns an empty slice (not an error) on
// platforms without /proc/net/arp.
func ScanARPTable() ([]Device, error) {
	return scanARPFile(arpTablePath)
}

func scanARPFile(path string) ([]Device, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}
	defer f.Close()

	var devices []Device
	scanner := bufio.NewScanner(f)
	scanner.Scan() // header line: "IP address       HW type     Flags       HW address            Mask     Device"
	for scanner.Scan() {
		fields := strings.Fields(scanner.Text())
		if len(fields) < 4 {
			continue
		}
		ip, mac := fields[0], fields[3]
		if mac == "" || mac == "00:00:00:00:00:00" {
			continue
		}
		devices = append(devices, Device{IP: ip, MAC: mac, Active: true})
	}
	return devices, scanner.Err()
}
