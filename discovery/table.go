/*
nettf - LAN file and directory transfer utility.

Renders discovered devices as a color-highlighted table using lipgloss.
*/

package discovery

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	headerStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	activeStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	serviceStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Bold(true)
	summaryStyle = lipgloss.NewStyle().Faint(true)
)

// StyleSummary renders a one-line transfer summary (size, speed, duration)
// in a muted accent, for use outside the table itself.
func StyleSummary(s string) string {
	return summaryStyle.Render(s)
}

// PrintTable writes devices to w as a human-readable table.
func PrintTable(w io.Writer, devices []Device) {
	if len(devices) == 0 {
		fmt.Fprintln(w, "No devices found.")
		return
	}

	fmt.Fprintln(w, headerStyle.Render(fmt.Sprintf("%-16s %-18s %-8s %-8s %s", "IP", "MAC", "ACTIVE", "NETTF", "RTT")))
	fmt.Fprintln(w, strings.Repeat("-", 60))

	for _, d := range devices {
		active := "no"
		if d.Active {
			active = activeStyle.Render("yes")
		}
		service := "no"
		if d.HasService {
			service = serviceStyle.Render("yes")
		}
		rtt := "-"
		if d.ResponseTime > 0 {
			rtt = d.ResponseTime.String()
		}
		mac := d.MAC
		if mac == "" {
			mac = "-"
		}
		fmt.Fprintf(w, "%-16s %-18s %-8s %-8s %s\n", d.IP, mac, active, service, rtt)
	}
}
