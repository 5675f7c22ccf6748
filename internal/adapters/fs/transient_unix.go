//go:build unix

package fs

import (
	"errors"

	"golang.org/x/sys/unix"
)

var transientErrnos = []unix.Errno{
	unix.EBUSY,
	unix.ENOTEMPTY,
	unix.EPERM,
	unix.EACCES,
	unix.EMFILE,
	unix.ENFILE,
}

func isTransient(err error) bool {
	for _, errno := range transientErrnos {
		if errors.Is(err, errno) {
			return true
		}
	}
	return false
}
