// export_test.go exports private functions for white-box testing.
package fs

import "time"

// NewWithSleep creates a FileSystem whose retry backoff calls sleep.
func NewWithSleep(retries int, sleep func(time.Duration)) *FileSystem {
	return &FileSystem{retries: retries, sleep: sleep}
}

// Retry exposes the retry loop.
func (f *FileSystem) Retry(op func() error) error {
	return f.retry(op)
}

// IsTransient exposes the transient error classification.
var IsTransient = isTransient
