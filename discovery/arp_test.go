package discovery

import (
	"os"
	"path/filepath"
	"testing"
)

const fixtureARPTable = `IP address       HW type     Flags       HW address            Mask     Device
192.168.1.1      0x1         0x2         aa:bb:cc:dd:ee:ff     *        eth0
192.168.1.2      0x1         0x0         00:00:00:00:00:00     *        eth0
`

func Test_ScanARPFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "arp")
	if err := os.WriteFile(path, []byte(fixtureARPTable), 0o644); err != nil {
		t.Fatalf("write fixture: %s", err)
	}

	devices, err := scanARPFile(path)
	if err != nil {
		t.Fatalf("scanARPFile: %s", err)
	}
	if len(devices) != 1 {
		t.Fatalf("expected 1 resolved entry, got %d: %+v", len(devices), devices)
	}
	if devices[0].IP != "192.168.1.1" || devices[0].MAC != "aa:bb:cc:dd:ee:ff" {
		t.Fatalf("unexpected entry %+v", devices[0])
	}
}

func Test_ScanARPFile_MissingFileIsNotAnError(t *testing.T) {
	devices, err := scanARPFile(filepath.Join(t.TempDir(), "does-not-exist"))
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	if devices != nil {
		t.Fatalf("expected nil devices, got %+v", devices)
	}
}
