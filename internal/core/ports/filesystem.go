package ports

// FileSystem is the subset of filesystem operations the lifecycle commands need.
//
//go:generate mockgen -source=filesystem.go -destination=mocks/mock_filesystem.go -package=mocks
type FileSystem interface {
	// Exists reports whether path exists.
	Exists(path string) bool

	// MkdirAll creates path and any missing parents.
	MkdirAll(path string) error

	// WriteFile writes data to path, creating parent directories.
	WriteFile(path string, data []byte) error

	// RemoveAll deletes path recursively. A missing path is not an error.
	RemoveAll(path string) error

	// RemoveAllExcept deletes every file under path for which keep returns
	// false, and every directory left empty afterwards.
	RemoveAllExcept(path string, keep func(name string) bool) error

	// List returns the sorted paths of the files in dir whose names end in suffix.
	List(dir, suffix string) ([]string, error)
}
