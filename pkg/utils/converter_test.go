package utils

import (
	"testing"
	"time"
)

func TestStringToBytesRoundTrip(t *testing.T) {
	cases := []string{"", "a", "bulk body", "héllo"}
	for _, s := range cases {
		b := StringToBytes(s)
		if got := BytesToString(b); got != s {
			t.Errorf("round trip of %q = %q", s, got)
		}
		if len(b) != len(s) {
			t.Errorf("len(StringToBytes(%q)) = %d, want %d", s, len(b), len(s))
		}
	}
}

func TestToDuration(t *testing.T) {
	if got := ToDuration(30); got != 30*time.Second {
		t.Errorf("ToDuration(30) = %v", got)
	}
	if got := ToDurationMs(250); got != 250*time.Millisecond {
		t.Errorf("ToDurationMs(250) = %v", got)
	}
}
