//go:build !windows

// Package process stops browser process trees left by the PDF printer.
package process

import "syscall"

// KillTree sends SIGKILL to the process group led by pid.
func KillTree(pid int) {
	_ = syscall.Kill(-pid, syscall.SIGKILL)
}
