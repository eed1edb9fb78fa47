//go:build !windows

package probe

import "golang.org/x/sys/unix"

// Privileged reports whether the firmware tables under /sys/firmware/dmi
// (or /dev/mem) are readable, which requires root.
func Privileged() bool {
	return unix.Geteuid() == 0
}
