//go:build windows

package orchestrator

import "os/exec"

func configureChild(cmd *exec.Cmd) {}

func killChild(cmd *exec.Cmd) {
	if cmd == nil || cmd.Process == nil {
		return
	}
	_ = cmd.Process.Kill()
}
