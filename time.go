package hdlsim

import (
	"strconv"

	"github.com/pkg/errors"
)

// Time is simulated time expressed as a count of femtoseconds. Ordering
// between two events additionally takes the delta iteration they occurred
// in into account; see Iteration.
type Time uint64

// Iteration counts delta cycles within a single Time value. It is -1 before
// the initialisation phase runs and resets to 0 whenever Time advances.
type Iteration int32

// timeUnits lists the units FormatTime/ParseTime understand, smallest first.
// The table mirrors the C kernel's fmt_time_r unit ladder exactly.
var timeUnits = []struct {
	scale Time
	unit  string
}{
	{1, "fs"},
	{1000, "ps"},
	{1000000, "ns"},
	{1000000000, "us"},
	{1000000000000, "ms"},
}

// FormatTime renders t using the largest unit in {fs, ps, ns, us, ms} that
// divides it exactly, falling back to fs when none does. Zero is always
// "0fs": every unit divides it exactly, but fs is the canonical zero.
func FormatTime(t Time) string {
	if t == 0 {
		return "0fs"
	}
	u := 0
	for u+1 < len(timeUnits) && t%timeUnits[u+1].scale == 0 {
		u++
	}
	return strconv.FormatUint(uint64(t/timeUnits[u].scale), 10) + timeUnits[u].unit
}

// String implements fmt.Stringer.
func (t Time) String() string { return FormatTime(t) }

// ParseTime parses the output of FormatTime back into a Time value. It is
// the inverse used to test that formatting a time and parsing it back
// yields the original value.
func ParseTime(s string) (Time, error) {
	i := len(s)
	for i > 0 && (s[i-1] < '0' || s[i-1] > '9') {
		i--
	}
	if i == 0 || i == len(s) {
		return 0, errors.Errorf("invalid time %q", s)
	}
	n, err := strconv.ParseUint(s[:i], 10, 64)
	if err != nil {
		return 0, errors.Wrapf(err, "invalid time %q", s)
	}
	unit := s[i:]
	for _, u := range timeUnits {
		if u.unit == unit {
			return Time(n) * u.scale, nil
		}
	}
	return 0, errors.Errorf("invalid time unit in %q", s)
}
