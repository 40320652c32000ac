package hdlsim

import (
	"testing"
	"testing/quick"
)

func TestFormatTimeUnits(t *testing.T) {
	cases := []struct {
		t    Time
		want string
	}{
		{0, "0fs"},
		{1, "1fs"},
		{999, "999fs"},
		{1000, "1ps"},
		{1500, "1500fs"},
		{1000000, "1ns"},
		{1000000000, "1us"},
		{1000000000000, "1ms"},
		{2000000000000, "2ms"},
	}
	for _, c := range cases {
		if got := FormatTime(c.t); got != c.want {
			t.Errorf("FormatTime(%d) = %q, want %q", uint64(c.t), got, c.want)
		}
	}
}

func TestParseTimeRoundTrip(t *testing.T) {
	f := func(t Time) bool {
		s := FormatTime(t)
		got, err := ParseTime(s)
		return err == nil && got == t
	}
	if err := quick.Check(f, nil); err != nil {
		t.Error(err)
	}
}

func TestParseTimeRejectsGarbage(t *testing.T) {
	for _, s := range []string{"", "fs", "10", "10xs", "-5fs"} {
		if _, err := ParseTime(s); err == nil {
			t.Errorf("ParseTime(%q): expected error, got none", s)
		}
	}
}
