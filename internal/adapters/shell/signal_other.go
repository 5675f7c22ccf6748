//go:build !unix

package shell

import "syscall"

func signaled(syscall.WaitStatus) bool {
	return false
}

func signalOf(syscall.WaitStatus) syscall.Signal {
	return 0
}
