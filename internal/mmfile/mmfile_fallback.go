//go:build !unix

// Package mmfile maps files into memory for zero-copy views.
package mmfile

import "os"

// Map reads the entire file when mmap is not available. Writes to the
// returned buffer never reach the file, as with the mapped variant.
func Map(path string) ([]byte, func() error, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, func() error { return nil }, err
	}
	return data, func() error { return nil }, nil
}
