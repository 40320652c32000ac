// Package specparse expands the small comma-separated bus/pin
// specification grammar used to build demo and test Design values:
//
//	"a, b, bus[2]" -> []string{"a", "b", "bus[0]", "bus[1]"}
//
// It exists purely as test/demo tooling for hand-building signal
// declaration lists without spelling out every bus member by hand — it is
// not, and does not aspire to be, the HDL front end.
package specparse

import (
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// ParseIOSpec parses names and expands any "name[n]" bus declarations into
// individual "name[0]".."name[n-1]" pin names.
func ParseIOSpec(spec string) ([]string, error) {
	var out []string
	for _, tok := range splitTop(spec) {
		tok = strings.TrimSpace(tok)
		if tok == "" {
			continue
		}
		name, bits, err := parseToken(tok)
		if err != nil {
			return nil, errors.Wrapf(err, "in %q", spec)
		}
		if bits == 0 {
			out = append(out, name)
			continue
		}
		for i := 0; i < bits; i++ {
			out = append(out, BusPinName(name, i))
		}
	}
	return out, nil
}

// BusPinName returns the individual pin name for bit i of a bus named name.
func BusPinName(name string, i int) string {
	return name + "[" + strconv.Itoa(i) + "]"
}

func splitTop(s string) []string {
	return strings.Split(s, ",")
}

// parseToken parses one "name" or "name[n]" token. bits is 0 for a plain
// pin name.
func parseToken(tok string) (name string, bits int, err error) {
	open := strings.IndexByte(tok, '[')
	if open < 0 {
		if !isIdent(tok) {
			return "", 0, errors.Errorf("invalid pin name %q", tok)
		}
		return tok, 0, nil
	}
	name = strings.TrimSpace(tok[:open])
	if !isIdent(name) {
		return "", 0, errors.Errorf("invalid pin name %q", name)
	}
	close := strings.IndexByte(tok, ']')
	if close < open {
		return "", 0, errors.Errorf("missing closing ']' in %q", tok)
	}
	if close != len(tok)-1 {
		return "", 0, errors.Errorf("trailing characters after ']' in %q", tok)
	}
	n, err := strconv.Atoi(strings.TrimSpace(tok[open+1 : close]))
	if err != nil {
		return "", 0, errors.Wrapf(err, "invalid bus size in %q", tok)
	}
	if n <= 0 {
		return "", 0, errors.Errorf("bus size must be positive in %q", tok)
	}
	return name, n, nil
}

func isIdent(s string) bool {
	if s == "" {
		return false
	}
	for i, r := range s {
		switch {
		case r == '_':
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z':
		case r >= '0' && r <= '9' && i > 0:
		default:
			return false
		}
	}
	return true
}
