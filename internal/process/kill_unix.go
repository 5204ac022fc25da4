//go:build !windows

package process

import "syscall"

// KillTree sends SIGKILL to the process group led by pid.
func KillTree(pid int) error {
	if err := checkPID(pid); err != nil {
		return err
	}
	return syscall.Kill(-pid, syscall.SIGKILL)
}
