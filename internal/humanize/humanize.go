/*
nettf - LAN file and directory transfer utility.

Formats byte counts, transfer speeds and durations for the CLI's
post-transfer summary line.
*/

// Package humanize formats byte counts, transfer speeds and durations for
// display in the CLI's post-transfer summary line.
package humanize

import "fmt"

var units = [...]string{"B", "KB", "MB", "GB", "TB", "PB"}

// Bytes formats a byte count with the largest unit that keeps the value
// above 1, on a 1024-based ladder.
func Bytes(n uint64) string {
	size := float64(n)
	unit := 0
	for size >= 1024.0 && unit < len(units)-1 {
		size /= 1024.0
		unit++
	}
	if unit == 0 {
		return fmt.Sprintf("%.0f %s", size, units[unit])
	}
	return fmt.Sprintf("%.2f %s", size, units[unit])
}

// Speed formats a bytes-per-second rate as "<Bytes>/s".
func Speed(bytesPerSecond float64) string {
	return Bytes(uint64(bytesPerSecond)) + "/s"
}

// Duration formats a whole number of seconds as "Ns", "Mm Ss" or "Hh Mm Ss".
func Duration(seconds int) string {
	if seconds < 60 {
		return fmt.Sprintf("%ds", seconds)
	}
	if seconds < 3600 {
		return fmt.Sprintf("%dm %ds", seconds/60, seconds%60)
	}
	hours := seconds / 3600
	minutes := (seconds % 3600) / 60
	secs := seconds % 60
	return fmt.Sprintf("%dh %dm %ds", hours, minutes, secs)
}
