package timefmt

import "time"

// BufferSize is the capacity of Buffer. The longest output is 26 bytes
// (19 for the date and time, 7 for ".ffffff") for four-digit years.
const BufferSize = 64

// MaxPrecision is the finest supported fraction: microseconds.
const MaxPrecision = 6

// Buffer is fixed storage for one formatted timestamp.
type Buffer [BufferSize]byte

// Go truncates fractional seconds given as zeros in a layout, which is
// exactly the usec/10^(6-p) rule.
var layouts = [MaxPrecision + 1]string{
	"2006-01-02 15:04:05",
	"2006-01-02 15:04:05.0",
	"2006-01-02 15:04:05.00",
	"2006-01-02 15:04:05.000",
	"2006-01-02 15:04:05.0000",
	"2006-01-02 15:04:05.00000",
	"2006-01-02 15:04:05.000000",
}

// clampPrecision maps negative values to 0 and anything above 6 to 6.
func clampPrecision(precision int) int {
	if precision < 0 {
		return 0
	}
	if precision > MaxPrecision {
		return MaxPrecision
	}
	return precision
}

// Layout returns the time layout used for precision.
func Layout(precision int) string {
	return layouts[clampPrecision(precision)]
}

// Append appends t, in t's location, to dst.
func Append(dst []byte, t time.Time, precision int) []byte {
	return t.AppendFormat(dst, layouts[clampPrecision(precision)])
}

// Format writes t into b and returns the written prefix of b.
func Format(b *Buffer, t time.Time, precision int) []byte {
	return Append(b[:0], t, precision)
}

// Now formats the current local time into b.
func Now(b *Buffer, precision int) []byte {
	return Format(b, time.Now(), precision)
}

// String is the allocating convenience form of Format.
func String(t time.Time, precision int) string {
	var b Buffer
	return string(Format(&b, t, precision))
}
