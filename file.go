package fram

import (
	"context"
	"errors"
	"io"
	"sync"

	"github.com/ardnew/fram/pkg"
)

// ReadAt implements io.ReaderAt over the storage array. Reads reaching
// past the end of the array are truncated and return io.EOF. A transport
// failure returns 0 even when a leading chunk was transferred, because
// the byte count confirmed by the device is not known.
func (d *Device) ReadAt(p []byte, off int64) (int, error) {
	if off < 0 {
		return 0, pkg.ErrOutOfRange
	}
	if off >= Capacity {
		return 0, io.EOF
	}

	n := len(p)
	if int64(n) > Capacity-off {
		n = int(Capacity - off)
	}
	if err := d.Read(context.Background(), uint32(off), p[:n]); err != nil {
		return 0, err
	}
	if n < len(p) {
		return n, io.EOF
	}
	return n, nil
}

// WriteAt implements io.WriterAt over the storage array. Writes reaching
// past the end of the array store the portion that fits and return
// pkg.ErrOutOfRange. A transport failure returns 0 even when a leading
// chunk was committed.
func (d *Device) WriteAt(p []byte, off int64) (int, error) {
	if off < 0 || off >= Capacity {
		return 0, pkg.ErrOutOfRange
	}

	n := len(p)
	if int64(n) > Capacity-off {
		n = int(Capacity - off)
	}
	if err := d.Write(context.Background(), uint32(off), p[:n]); err != nil {
		return 0, err
	}
	if n < len(p) {
		return n, pkg.ErrOutOfRange
	}
	return n, nil
}

// File is a seekable byte-stream view of a Device implementing
// io.ReadWriteSeeker. The cursor starts at offset zero. File methods use
// context.Background(); callers needing cancellation should use the
// Device operations directly.
type File struct {
	dev *Device

	mutex sync.Mutex
	pos   int64
}

// NewFile returns a File positioned at the start of the array.
func NewFile(d *Device) *File {
	return &File{dev: d}
}

// Read reads up to len(p) bytes from the cursor position, advancing it.
// At the end of the array it returns io.EOF.
func (f *File) Read(p []byte) (int, error) {
	f.mutex.Lock()
	defer f.mutex.Unlock()

	if f.pos >= Capacity {
		return 0, io.EOF
	}

	n, err := f.dev.ReadAt(p, f.pos)
	f.pos += int64(n)
	if err != nil && errors.Is(err, io.EOF) && n > 0 {
		// Partial read at the end of the array; EOF surfaces on the
		// next call.
		err = nil
	}
	return n, err
}

// Write writes len(p) bytes at the cursor position, advancing it. When
// the array end is reached mid-write, the portion that fits is stored
// and io.EOF is returned with the short count.
func (f *File) Write(p []byte) (int, error) {
	f.mutex.Lock()
	defer f.mutex.Unlock()

	if f.pos >= Capacity {
		return 0, io.EOF
	}

	n, err := f.dev.WriteAt(p, f.pos)
	f.pos += int64(n)
	if err != nil && errors.Is(err, pkg.ErrOutOfRange) && n > 0 {
		err = io.EOF
	}
	return n, err
}

// Seek repositions the cursor. Positions outside [0, Capacity] are
// rejected with pkg.ErrOutOfRange and leave the cursor unchanged.
func (f *File) Seek(offset int64, whence int) (int64, error) {
	f.mutex.Lock()
	defer f.mutex.Unlock()

	var pos int64
	switch whence {
	case io.SeekStart:
		pos = offset
	case io.SeekCurrent:
		pos = f.pos + offset
	case io.SeekEnd:
		pos = Capacity + offset
	default:
		return f.pos, errors.New("fram: invalid whence")
	}

	if pos < 0 || pos > Capacity {
		return f.pos, pkg.ErrOutOfRange
	}
	f.pos = pos
	return pos, nil
}

// Compile-time interface checks
var (
	_ io.ReaderAt        = (*Device)(nil)
	_ io.WriterAt        = (*Device)(nil)
	_ io.ReadWriteSeeker = (*File)(nil)
)
