package sourcehash

import "time"

// Clock supplies wall-clock time, injected so tests control "today" instead
// of racing the real calendar.
type Clock interface {
	Now() time.Time
}

// SystemClock is the production [Clock], backed by [time.Now].
type SystemClock struct{}

func (SystemClock) Now() time.Time { return time.Now() }

// timestampFormat renders the canonical 24-character fixed-width
// __TIMESTAMP__ representation followed by a newline (25 bytes in all):
// "Day Mon DD HH:MM:SS YYYY\n", e.g.
// "Fri Jul 31 14:02:09 2026\n". Go's reference time spells this out as
// "Mon Jan _2 15:04:05 2006", whose "_2" pads single-digit days with a
// space rather than a leading zero, matching the C asctime format this
// macro is defined in terms of.
const timestampFormat = "Mon Jan _2 15:04:05 2006\n"

// FormatTimestamp renders t in local time using timestampFormat.
func FormatTimestamp(t time.Time) string {
	return t.Local().Format(timestampFormat)
}
