// Package timefmt renders wall-clock timestamps as
// "YYYY-MM-DD HH:MM:SS" followed by an optional fractional part of 1 to 6
// digits. Fractions are truncated from microseconds, never rounded.
//
// Formatting appends into caller storage. Buffer is a fixed array large
// enough for the longest possible output, so formatting into a Buffer
// never allocates or overflows.
package timefmt
