package humanize

import "testing"

func Test_Bytes(t *testing.T) {
	cases := []struct {
		in   uint64
		want string
	}{
		{0, "0 B"},
		{512, "512 B"},
		{1024, "1.00 KB"},
		{1536, "1.50 KB"},
		{1024 * 1024, "1.00 MB"},
		{1024 * 1024 * 1024, "1.00 GB"},
	}
	for _, c := range cases {
		if got := Bytes(c.in); got != c.want {
			t.Errorf("Bytes(%d) = %q, want %q", c.in, got, c.want)
		}
	}
}

func Test_Speed(t *testing.T) {
	if got := Speed(1024 * 1024); got != "1.00 MB/s" {
		t.Fatalf("got %q", got)
	}
}

func Test_Duration(t *testing.T) {
	cases := []struct {
		in   int
		want string
	}{
		{0, "0s"},
		{59, "59s"},
		{60, "1m 0s"},
		{125, "2m 5s"},
		{3600, "1h 0m 0s"},
		{3725, "1h 2m 5s"},
	}
	for _, c := range cases {
		if got := Duration(c.in); got != c.want {
			t.Errorf("Duration(%d) = %q, want %q", c.in, got, c.want)
		}
	}
}
