//go:build windows

// Package process stops browser process trees left by the PDF printer.
package process

import (
	"os/exec"
	"strconv"
)

// KillTree force-terminates pid and its children with taskkill.
func KillTree(pid int) {
	_ = exec.Command("taskkill", "/F", "/T", "/PID", strconv.Itoa(pid)).Run()
}
