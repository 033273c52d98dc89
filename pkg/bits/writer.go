package bits

import (
	"io"
	"os"

	"github.com/hashicorp/go-multierror"
)

// Writer accumulates bits into bytes and appends each completed byte to an
// io.Writer. A trailing partial byte is held back until Close, which pads
// its unwritten high bits with zeros.
type Writer struct {
	dst         io.Writer
	bitPosition uint64
	pending     byte
	hasPending  bool
	closed      bool

	closer io.Closer // set when the writer owns the underlying file
}

// NewWriter returns a Writer that appends completed bytes to dst.
func NewWriter(dst io.Writer) *Writer {
	return &Writer{dst: dst}
}

// CreateFile creates (or truncates) the file at path for sequential bit
// production. The returned writer owns the file handle; Close flushes any
// partial trailing byte and releases it.
func CreateFile(path string) (*Writer, error) {
	file, err := os.Create(path)
	if err != nil {
		return nil, err
	}

	w := NewWriter(file)
	w.closer = file
	return w, nil
}

// BitPosition returns the number of bits written so far.
func (w *Writer) BitPosition() uint64 {
	return w.bitPosition
}

// WriteBit ORs the low bit of bit into the in-progress byte at the offset
// given by the current bit position, flushing the byte once it fills.
func (w *Writer) WriteBit(bit byte) error {
	w.pending |= (bit & 1) << (w.bitPosition % 8)
	w.hasPending = true

	w.bitPosition++
	if w.bitPosition%8 == 0 {
		return w.flush()
	}
	return nil
}

// WriteBits writes the low numBits bits of b, least significant bit first.
// numBits outside 1-8 is a programming error and panics.
func (w *Writer) WriteBits(b byte, numBits uint8) error {
	checkGroupSize(numBits)

	for i := uint8(0); i < numBits; i++ {
		if err := w.WriteBit(b & 1); err != nil {
			return err
		}
		b >>= 1
	}
	return nil
}

func (w *Writer) flush() error {
	if !w.hasPending {
		return nil
	}

	buf := [1]byte{w.pending}
	w.pending = 0
	w.hasPending = false
	_, err := w.dst.Write(buf[:])
	return err
}

// Close flushes any partially accumulated byte, with the unwritten high bits
// zero, and releases the underlying file if the writer owns one. Calling
// Close more than once is a no-op. Failures surface through the returned
// error like any other write failure.
func (w *Writer) Close() error {
	if w.closed {
		return nil
	}
	w.closed = true

	var result *multierror.Error
	result = multierror.Append(result, w.flush())
	if w.closer != nil {
		result = multierror.Append(result, w.closer.Close())
	}
	return result.ErrorOrNil()
}
