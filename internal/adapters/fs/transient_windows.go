//go:build windows

package fs

import (
	"errors"

	"golang.org/x/sys/windows"
)

var transientErrnos = []windows.Errno{
	windows.ERROR_SHARING_VIOLATION,
	windows.ERROR_LOCK_VIOLATION,
	windows.ERROR_ACCESS_DENIED,
	windows.ERROR_DIR_NOT_EMPTY,
	windows.ERROR_BUSY,
	windows.ERROR_TOO_MANY_OPEN_FILES,
}

func isTransient(err error) bool {
	for _, errno := range transientErrnos {
		if errors.Is(err, errno) {
			return true
		}
	}
	return false
}
