//go:build unix

package script

import (
	"os/exec"
	"syscall"
)

// killProcessGroupOnCancel puts the child in its own process group and kills
// the whole group on cancellation, so grandchildren holding the output pipes
// open cannot keep the stream readers blocked.
func killProcessGroupOnCancel(cmd *exec.Cmd) {
	cmd.SysProcAttr = &syscall.SysProcAttr{Setpgid: true}
	cmd.Cancel = func() error {
		return syscall.Kill(-cmd.Process.Pid, syscall.SIGKILL)
	}
}
