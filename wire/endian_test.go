package wire

import "testing"

func Test_Uint64RoundTrip(t *testing.T) {
	var buf [8]byte
	PutUint64(buf[:], 0x0102030405060708)

	expected := []byte{0x01, 0x02, 0x03, 0x04, 0x05, 0x06, 0x07, 0x08}
	for i, b := range expected {
		if buf[i] != b {
			t.Fatalf("byte %d: expected %#x, got %#x", i, b, buf[i])
		}
	}

	if got := Uint64(buf[:]); got != 0x0102030405060708 {
		t.Fatalf("Uint64 round trip: got %#x", got)
	}
}

func Test_Uint32RoundTrip(t *testing.T) {
	var buf [4]byte
	PutUint32(buf[:], 0x46494C45) // "FILE"

	if string(buf[:]) != "FILE" {
		t.Fatalf("expected ASCII FILE magic, got %q", buf[:])
	}

	if got := Uint32(buf[:]); got != 0x46494C45 {
		t.Fatalf("Uint32 round trip: got %#x", got)
	}
}

func Test_AppendHelpers(t *testing.T) {
	buf := AppendUint32(nil, 1)
	buf = AppendUint64(buf, 2)

	if len(buf) != 12 {
		t.Fatalf("expected 12 bytes, got %d", len(buf))
	}
	if Uint32(buf[0:4]) != 1 || Uint64(buf[4:12]) != 2 {
		t.Fatalf("append helpers produced wrong layout: %v", buf)
	}
}
