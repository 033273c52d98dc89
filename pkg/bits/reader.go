package bits

import (
	"fmt"
	"io"
	"os"
)

// Reader reads bits from an io.ReaderAt of known size. Every bit read
// re-derives its containing byte from the absolute bit position, so the
// reader performs one small ReadAt per bit. That is deliberately simple
// rather than fast; carriers at this tool's scale never make it a
// bottleneck.
type Reader struct {
	src         io.ReaderAt
	size        uint64
	bitPosition uint64

	closer io.Closer // set when the reader owns the underlying file
}

// NewReader returns a Reader over src, which holds size bytes.
func NewReader(src io.ReaderAt, size uint64) *Reader {
	return &Reader{
		src:  src,
		size: size,
	}
}

// OpenFile opens the file at path for sequential bit consumption. The
// returned reader owns the file handle; release it with Close.
func OpenFile(path string) (*Reader, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}

	stat, err := file.Stat()
	if err != nil {
		file.Close()
		return nil, err
	}

	r := NewReader(file, uint64(stat.Size()))
	r.closer = file
	return r, nil
}

// Size returns the total size of the underlying source in bytes.
func (r *Reader) Size() uint64 {
	return r.size
}

// BitPosition returns the absolute offset of the next bit to be read.
func (r *Reader) BitPosition() uint64 {
	return r.bitPosition
}

// ReadBit returns the next bit, least significant bit first within each
// byte, and advances the bit position by one. Reading past the end of the
// source fails with the underlying I/O error.
func (r *Reader) ReadBit() (byte, error) {
	var buf [1]byte
	if _, err := r.src.ReadAt(buf[:], int64(r.bitPosition/8)); err != nil {
		return 0, fmt.Errorf("read byte containing bit %d: %w", r.bitPosition, err)
	}

	bit := (buf[0] >> (r.bitPosition % 8)) & 1
	r.bitPosition++
	return bit, nil
}

// ReadBits reads the next numBits bits and returns them in the low bits of
// a byte, with bit 0 holding the first bit read and the unused high bits
// zero. numBits outside 1-8 is a programming error and panics.
func (r *Reader) ReadBits(numBits uint8) (byte, error) {
	checkGroupSize(numBits)

	var out byte
	for i := uint8(0); i < numBits; i++ {
		bit, err := r.ReadBit()
		if err != nil {
			return 0, err
		}
		out |= bit << i
	}
	return out, nil
}

// Close releases the underlying file if the reader owns one. It is a no-op
// for readers constructed over caller-owned sources.
func (r *Reader) Close() error {
	if r.closer == nil {
		return nil
	}

	closer := r.closer
	r.closer = nil
	return closer.Close()
}
