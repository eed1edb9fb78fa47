//go:build linux

package machine

import "golang.org/x/sys/unix"

// fillPlatformOSInfo adds the NIS domain name and kernel build string from
// uname(2).
func fillPlatformOSInfo(info *OSInfo) {
	var u unix.Utsname
	if err := unix.Uname(&u); err != nil {
		return
	}

	if info.Hostname == "" {
		info.Hostname = unix.ByteSliceToString(u.Nodename[:])
	}
	if info.Release == "" {
		info.Release = unix.ByteSliceToString(u.Release[:])
	}
	if domain := unix.ByteSliceToString(u.Domainname[:]); domain != "(none)" {
		info.DomainName = domain
	}
	info.Comments = unix.ByteSliceToString(u.Version[:])
}
