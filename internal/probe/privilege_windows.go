//go:build windows

package probe

// Privileged is always true on Windows; the firmware table API needs no
// elevation.
func Privileged() bool {
	return true
}
