//go:build unix

package shell

import "syscall"

func signaled(status syscall.WaitStatus) bool {
	return status.Signaled()
}

func signalOf(status syscall.WaitStatus) syscall.Signal {
	return status.Signal()
}
