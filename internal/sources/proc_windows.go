//go:build windows

package sources

import "os/exec"

// setProcessGroup is a no-op on Windows; WaitDelay still bounds the wait.
func setProcessGroup(cmd *exec.Cmd) {}
