// Package mapped provides a memory-mapped file as a buffer for views.
//
// The mapping is copy-on-write: views may write through it, but the file on
// disk is never modified. Every view derived from a File dangles once the
// File is closed; the view types cannot detect that.
package mapped

import (
	"fmt"
	"unsafe"

	"github.com/joshuapare/arrayview/internal/mmfile"
	"github.com/joshuapare/arrayview/view"
)

// File is a mapped file. It implements view.Provider[byte].
type File struct {
	path    string
	data    []byte
	cleanup func() error
}

var _ view.Provider[byte] = (*File)(nil)

// Open maps the file at path.
func Open(path string) (*File, error) {
	data, cleanup, err := mmfile.Map(path)
	if err != nil {
		return nil, fmt.Errorf("mapped: open %s: %w", path, err)
	}
	return &File{path: path, data: data, cleanup: cleanup}, nil
}

// Path returns the path the file was opened from.
func (f *File) Path() string { return f.path }

// Data returns the address of the first byte, or nil for an empty or closed
// file.
func (f *File) Data() *byte {
	if len(f.data) == 0 {
		return nil
	}
	return unsafe.SliceData(f.data)
}

// Len returns the mapped size in bytes.
func (f *File) Len() int { return len(f.data) }

// Bytes returns a view over the whole mapping.
func (f *File) Bytes() view.View[byte] { return view.Of[byte](f) }

// Close unmaps the file. Calling Close more than once is a no-op.
func (f *File) Close() error {
	if f.cleanup == nil {
		return nil
	}
	err := f.cleanup()
	f.cleanup = nil
	f.data = nil
	if err != nil {
		return fmt.Errorf("mapped: close %s: %w", f.path, err)
	}
	return nil
}
