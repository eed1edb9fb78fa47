//go:build !linux

package machine

func fillPlatformOSInfo(info *OSInfo) {}
