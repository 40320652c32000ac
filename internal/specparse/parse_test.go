package specparse

import (
	"reflect"
	"testing"
)

func TestParseIOSpec(t *testing.T) {
	cases := []struct {
		in   string
		want []string
	}{
		{"a", []string{"a"}},
		{"a, b", []string{"a", "b"}},
		{"a,b,bus[2]", []string{"a", "b", "bus[0]", "bus[1]"}},
		{"  in[1] , sel ", []string{"in[0]", "sel"}},
		{"", nil},
	}
	for _, c := range cases {
		got, err := ParseIOSpec(c.in)
		if err != nil {
			t.Errorf("ParseIOSpec(%q): %v", c.in, err)
			continue
		}
		if !reflect.DeepEqual(got, c.want) {
			t.Errorf("ParseIOSpec(%q) = %v, want %v", c.in, got, c.want)
		}
	}
}

func TestParseIOSpecErrors(t *testing.T) {
	for _, in := range []string{"1bad", "bus[", "bus[x]", "bus[0]", "bus[-1]", "a[1][2]"} {
		if _, err := ParseIOSpec(in); err == nil {
			t.Errorf("ParseIOSpec(%q): expected an error", in)
		}
	}
}

func TestBusPinName(t *testing.T) {
	if got := BusPinName("bus", 3); got != "bus[3]" {
		t.Errorf("BusPinName = %q, want bus[3]", got)
	}
}
