//go:build !unix && !windows

package fs

func isTransient(error) bool {
	return false
}
