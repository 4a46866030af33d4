package file

import (
	"io"
	"os"

	"go.dw1.io/mmapfile"
)

var (
	_ io.Reader   = (*File)(nil)
	_ io.WriterTo = (*File)(nil)
	_ io.Closer   = (*File)(nil)
)

// File is a read-only file backed by either a memory mapping (preferred) or
// a plain os.File.
type File struct {
	mm *mmapfile.MmapFile
	os *os.File
}

// Open maps the named file into memory when possible; otherwise it falls
// back to os.Open.
func Open(name string) (*File, error) {
	mf, err := mmapfile.Open(name)
	if err == nil {
		return &File{mm: mf}, nil
	}

	return openDirect(name)
}

func openDirect(name string) (*File, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, err
	}

	return &File{os: f}, nil
}

// Mapped reports whether the file is served from a memory mapping.
func (f *File) Mapped() bool { return f.mm != nil }

func (f *File) Read(p []byte) (int, error) {
	if f.mm != nil {
		return f.mm.Read(p)
	}

	return f.os.Read(p)
}

// WriteTo writes the remaining file contents to w.
func (f *File) WriteTo(w io.Writer) (int64, error) {
	if f.mm != nil {
		return f.mm.WriteTo(w)
	}

	return f.os.WriteTo(w)
}

// Close releases the mapping or closes the file.
func (f *File) Close() error {
	if f.mm != nil {
		return f.mm.Close()
	}

	return f.os.Close()
}

// Bytes exposes the mapped region; it returns nil for the os.File fallback.
// The slice is only valid until Close.
func (f *File) Bytes() []byte {
	if f.mm != nil {
		return f.mm.Bytes()
	}

	return nil
}

// Len returns the mapped length, or the file size for the os.File fallback.
func (f *File) Len() int {
	if f.mm != nil {
		return f.mm.Len()
	}

	info, err := f.os.Stat()
	if err != nil {
		return 0
	}

	return int(info.Size())
}

// Name returns the name the file was opened with.
func (f *File) Name() string {
	if f.mm != nil {
		return f.mm.Name()
	}

	return f.os.Name()
}
