package steg

// Carrier is a rectangular grid of 3-channel pixels that can host embedded
// data. bmp.Image satisfies it; alternative container formats only need to
// provide the same pixel access.
type Carrier interface {
	Width() uint32
	Height() uint32
	Pixel(x, y uint32) (r, g, b byte)
	SetPixel(x, y uint32, r, g, b byte)
}

// Source supplies payload bits to WriteStream. The low bits of each
// ReadBits result hold the next numBits bits in stream order, bit 0 first.
// bits.Reader satisfies it.
type Source interface {
	Size() uint64
	ReadBits(numBits uint8) (byte, error)
}

// Sink receives payload bits from ReadStream. bits.Writer satisfies it.
type Sink interface {
	WriteBits(b byte, numBits uint8) error
}
