package cmdstream

import (
	"os/exec"
	"runtime"
)

// shellCommand returns the shell executable and the arguments that make it run
// a single command string. Replaced in tests.
var shellCommand = platformShell

func platformShell() (string, []string) {
	if runtime.GOOS == "windows" {
		return "cmd.exe", []string{"/C"}
	}
	return "/bin/sh", []string{"-c"}
}

// CommandExists reports whether name resolves to an executable on the system
// path. A missing tool is not an error; it just disables the probe using it.
func CommandExists(name string) bool {
	if name == "" {
		return false
	}
	_, err := exec.LookPath(name)
	return err == nil
}
