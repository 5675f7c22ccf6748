//go:build !unix

package main

import "syscall"

// reraise is a no-op; the caller exits with 128+sig instead.
func reraise(syscall.Signal) {}
