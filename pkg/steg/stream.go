// Package steg embeds byte streams into the low-order channel bits of a
// carrier image and extracts them again.
//
// Each pixel carries one 7-bit word, packed across the channels as red low
// 3 bits, green low 2 bits, blue low 2 bits, with the word's most
// significant bits in red. The first 9 words (63 bits exactly) form a
// header holding the payload length in bytes; payload bits follow from word
// address 9 in groups of 7.
package steg

import (
	"errors"
	"fmt"
	"math"
	"time"

	"bsteg/pkg/model"
)

const (
	redBits   = 3
	greenBits = 2
	blueBits  = 2

	redMask   = 1<<redBits - 1
	greenMask = 1<<greenBits - 1
	blueMask  = 1<<blueBits - 1

	bluePos  = 0
	greenPos = blueBits
	redPos   = greenBits + blueBits

	// WordSize is the number of payload bits carried per pixel.
	WordSize = redBits + greenBits + blueBits

	wordMask = 1<<WordSize - 1

	headerBits  = 63
	headerWords = headerBits / WordSize

	// dataStart is the word address of the first payload word.
	dataStart = headerWords

	// MaxPayloadSize is the largest payload byte count the 63-bit header
	// can declare.
	MaxPayloadSize = uint64(1)<<headerBits - 1
)

var (
	ErrAddressOutOfRange = errors.New("word address maps outside the carrier pixel grid")
	ErrPayloadTooLarge   = errors.New("payload length does not fit in the 63-bit header")
)

// Stream provides word-addressable access to a carrier and implements the
// header/body framing protocol over it. A stream wraps one carrier for one
// direction of transfer per run; a failure mid-transfer leaves the carrier
// (or the sink) partially written.
type Stream struct {
	carrier Carrier
	stats   model.StreamStats
}

func NewStream(carrier Carrier) *Stream {
	return &Stream{carrier: carrier}
}

// locate maps a linear word address onto the pixel grid. The column wraps
// modulo the width while the row advances once every height addresses.
// Extraction relies on the identical mapping, so data written through it is
// always recovered; changing one side without the other breaks every
// previously embedded carrier.
func (s *Stream) locate(addr uint64) (x, y uint32, err error) {
	width := uint64(s.carrier.Width())
	height := uint64(s.carrier.Height())
	if width == 0 || height == 0 {
		// An empty carrier has no addressable words.
		return 0, 0, fmt.Errorf("word address %d: %w", addr, ErrAddressOutOfRange)
	}
	row := addr / height
	if row >= height {
		return 0, 0, fmt.Errorf("word address %d: %w", addr, ErrAddressOutOfRange)
	}
	return uint32(addr % width), uint32(row), nil
}

// ReadWord repacks the low channel bits of the pixel at addr into a 7-bit
// word.
func (s *Stream) ReadWord(addr uint64) (byte, error) {
	x, y, err := s.locate(addr)
	if err != nil {
		return 0, err
	}

	r, g, b := s.carrier.Pixel(x, y)
	return (r&redMask)<<redPos | (g&greenMask)<<greenPos | (b&blueMask)<<bluePos, nil
}

// WriteWord replaces the low 3/2/2 channel bits of the pixel at addr with
// the bits of word, leaving the high bits of every channel untouched.
func (s *Stream) WriteWord(addr uint64, word byte) error {
	x, y, err := s.locate(addr)
	if err != nil {
		return err
	}

	r, g, b := s.carrier.Pixel(x, y)
	r = r&^redMask | (word>>redPos)&redMask
	g = g&^greenMask | (word>>greenPos)&greenMask
	b = b&^blueMask | (word>>bluePos)&blueMask
	s.carrier.SetPixel(x, y, r, g, b)
	return nil
}

func (s *Stream) readHeader() (uint64, error) {
	var header uint64
	for i := uint64(0); i < headerWords; i++ {
		word, err := s.ReadWord(i)
		if err != nil {
			return 0, fmt.Errorf("read header word %d: %w", i, err)
		}
		header |= uint64(word) << (i * WordSize)
	}
	return header, nil
}

func (s *Stream) writeHeader(header uint64) error {
	if header > MaxPayloadSize {
		return ErrPayloadTooLarge
	}

	for i := uint64(0); i < headerWords; i++ {
		word := byte(header>>(i*WordSize)) & wordMask
		if err := s.WriteWord(i, word); err != nil {
			return fmt.Errorf("write header word %d: %w", i, err)
		}
	}
	return nil
}

// payloadBitCount converts a payload byte count to its bit count. The header
// can declare 8 times more bytes than a uint64 bit count can represent, so
// declared sizes in that gap are garbage by construction and rejected rather
// than silently wrapped.
func payloadBitCount(payloadBytes uint64) (uint64, error) {
	if payloadBytes > math.MaxUint64/8 {
		return 0, fmt.Errorf("declared payload of %d bytes: %w", payloadBytes, ErrPayloadTooLarge)
	}
	return payloadBytes * 8, nil
}

// DeclaredPayloadSize returns the payload byte count recorded in the
// carrier's header. On a carrier nothing was ever embedded in, the value is
// whatever the low channel bits of the first 9 pixels happen to spell.
func (s *Stream) DeclaredPayloadSize() (uint64, error) {
	return s.readHeader()
}

// WriteStream embeds the whole of src: the source size in bytes as the
// 63-bit header, then the payload bits in 7-bit words from word address 9.
// A final group of fewer than 7 bits is written as one more word whose
// unused high bits come from whatever ReadBits returned for the short
// group.
func (s *Stream) WriteStream(src Source) error {
	embedStart := time.Now()
	defer func() {
		s.stats.DataEmbedding = time.Since(embedStart)
	}()

	payloadBytes := src.Size()
	if payloadBytes > MaxPayloadSize {
		return ErrPayloadTooLarge
	}
	payloadBits, err := payloadBitCount(payloadBytes)
	if err != nil {
		return err
	}
	fullWords := payloadBits / WordSize
	remainderBits := payloadBits % WordSize

	if err := s.writeHeader(payloadBytes); err != nil {
		return err
	}

	for addr := uint64(dataStart); addr < dataStart+fullWords; addr++ {
		word, err := src.ReadBits(WordSize)
		if err != nil {
			return fmt.Errorf("read payload bits for word %d: %w", addr, err)
		}
		if err = s.WriteWord(addr, word); err != nil {
			return err
		}
	}

	if remainderBits != 0 {
		word, err := src.ReadBits(uint8(remainderBits))
		if err != nil {
			return fmt.Errorf("read final %d payload bits: %w", remainderBits, err)
		}
		if err = s.WriteWord(dataStart+fullWords, word); err != nil {
			return err
		}
	}

	return nil
}

// ReadStream reads the header back, then forwards exactly the declared
// number of payload bits to sink. Only the low remainder bits of a final
// partial word are forwarded; its unused high bits are never observed.
func (s *Stream) ReadStream(sink Sink) error {
	extractStart := time.Now()
	defer func() {
		s.stats.DataExtraction = time.Since(extractStart)
	}()

	payloadBytes, err := s.readHeader()
	if err != nil {
		return err
	}
	payloadBits, err := payloadBitCount(payloadBytes)
	if err != nil {
		return err
	}
	fullWords := payloadBits / WordSize
	remainderBits := payloadBits % WordSize

	for addr := uint64(dataStart); addr < dataStart+fullWords; addr++ {
		word, err := s.ReadWord(addr)
		if err != nil {
			return err
		}
		if err = sink.WriteBits(word, WordSize); err != nil {
			return fmt.Errorf("write payload bits from word %d: %w", addr, err)
		}
	}

	if remainderBits != 0 {
		word, err := s.ReadWord(dataStart + fullWords)
		if err != nil {
			return err
		}
		if err = sink.WriteBits(word, uint8(remainderBits)); err != nil {
			return fmt.Errorf("write final %d payload bits: %w", remainderBits, err)
		}
	}

	return nil
}

// IntoInner returns the wrapped carrier and detaches it from the stream.
func (s *Stream) IntoInner() Carrier {
	carrier := s.carrier
	s.carrier = nil
	return carrier
}

func (s *Stream) Stats() model.StreamStats {
	return s.stats
}
