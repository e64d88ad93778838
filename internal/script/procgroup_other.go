//go:build !unix

package script

import "os/exec"

func killProcessGroupOnCancel(_ *exec.Cmd) {}
