package steg

import (
	"bytes"
	"errors"
	"fmt"
	"math/rand"
	"testing"

	"bsteg/pkg/bits"
	"bsteg/pkg/bmp"
)

const testCarrierSize = 64

func TestRoundTrip(t *testing.T) {
	for _, payloadSize := range []int{0, 1, 2, 7, 8, 13, 100, 256} {
		payloadSize := payloadSize
		t.Run(fmt.Sprintf("payload-%d-bytes", payloadSize), func(t *testing.T) {
			t.Parallel()

			payload := generateRandomBytes(payloadSize)
			carrier := generateRandomCarrier(testCarrierSize, testCarrierSize)

			stream := NewStream(carrier)
			err := stream.WriteStream(bits.NewReader(bytes.NewReader(payload), uint64(len(payload))))
			if err != nil {
				t.Fatalf("Error embedding payload: %s", err)
			}

			var extracted bytes.Buffer
			sink := bits.NewWriter(&extracted)
			if err = stream.ReadStream(sink); err != nil {
				t.Fatalf("Error extracting payload: %s", err)
			}
			if err = sink.Close(); err != nil {
				t.Fatalf("Error closing bit writer: %s", err)
			}

			if !bytes.Equal(payload, extracted.Bytes()) {
				t.Errorf("Extracted payload does not match embedded payload")
			}
		})
	}
}

// A 4x4 all-black carrier with the single payload byte 0xFF: the header
// declares one byte across words 0-8, word 9 holds payload bits 0-6 (all
// ones) and word 10 holds bit 7 in its low bit.
func TestSingleByteInBlackCarrier(t *testing.T) {
	carrier := bmp.New(4, 4)
	stream := NewStream(carrier)

	payload := []byte{0xFF}
	err := stream.WriteStream(bits.NewReader(bytes.NewReader(payload), 1))
	if err != nil {
		t.Fatalf("Error embedding payload: %s", err)
	}

	declaredSize, err := stream.DeclaredPayloadSize()
	if err != nil {
		t.Fatalf("Error reading header back: %s", err)
	}
	if declaredSize != 1 {
		t.Errorf("Header declares %d payload bytes, expected 1", declaredSize)
	}

	if word9, _ := stream.ReadWord(9); word9 != 0x7F {
		t.Errorf("Word 9 is %#x, expected 0x7f", word9)
	}
	if word10, _ := stream.ReadWord(10); word10 != 0x01 {
		t.Errorf("Word 10 is %#x, expected 0x01", word10)
	}

	// Word 9 maps to pixel (1, 2): column 9 mod 4, row 9 div 4.
	if r, g, b := carrier.Pixel(1, 2); r != 7 || g != 3 || b != 3 {
		t.Errorf("Pixel (1, 2) is (%d, %d, %d), expected (7, 3, 3)", r, g, b)
	}

	var extracted bytes.Buffer
	sink := bits.NewWriter(&extracted)
	if err = stream.ReadStream(sink); err != nil {
		t.Fatalf("Error extracting payload: %s", err)
	}
	if err = sink.Close(); err != nil {
		t.Fatalf("Error closing bit writer: %s", err)
	}
	if !bytes.Equal(payload, extracted.Bytes()) {
		t.Errorf("Extracted %v, expected %v", extracted.Bytes(), payload)
	}
}

func TestWordPackingInvertibility(t *testing.T) {
	carrier := generateRandomCarrier(8, 8)
	reference := generateRandomCarrier(8, 8)
	for y := uint32(0); y < 8; y++ {
		for x := uint32(0); x < 8; x++ {
			r, g, b := carrier.Pixel(x, y)
			reference.SetPixel(x, y, r, g, b)
		}
	}

	stream := NewStream(carrier)
	for addr := uint64(0); addr < 64; addr++ {
		word, err := stream.ReadWord(addr)
		if err != nil {
			t.Fatalf("Error reading word %d: %s", addr, err)
		}
		if err = stream.WriteWord(addr, word); err != nil {
			t.Fatalf("Error writing word %d: %s", addr, err)
		}
	}

	for y := uint32(0); y < 8; y++ {
		for x := uint32(0); x < 8; x++ {
			wantR, wantG, wantB := reference.Pixel(x, y)
			gotR, gotG, gotB := carrier.Pixel(x, y)
			if gotR != wantR || gotG != wantG || gotB != wantB {
				t.Errorf("Pixel (%d, %d) changed from (%d, %d, %d) to (%d, %d, %d)",
					x, y, wantR, wantG, wantB, gotR, gotG, gotB)
			}
		}
	}
}

func TestWriteWordPreservesHighChannelBits(t *testing.T) {
	carrier := bmp.New(4, 4)
	carrier.SetPixel(0, 0, 0xA8, 0x54, 0xFC)

	stream := NewStream(carrier)
	if err := stream.WriteWord(0, 0x7F); err != nil {
		t.Fatalf("Error writing word: %s", err)
	}

	r, g, b := carrier.Pixel(0, 0)
	if r != 0xA8|0x07 || g != 0x54|0x03 || b != 0xFC|0x03 {
		t.Errorf("High channel bits not preserved, got (%#x, %#x, %#x)", r, g, b)
	}

	word, err := stream.ReadWord(0)
	if err != nil {
		t.Fatalf("Error reading word back: %s", err)
	}
	if word != 0x7F {
		t.Errorf("Read back word %#x, expected 0x7f", word)
	}
}

func TestHeaderFidelity(t *testing.T) {
	stream := NewStream(generateRandomCarrier(8, 8))

	headerValues := []uint64{0, 1, 127, 128, 1<<32 - 1, 1 << 62, MaxPayloadSize}
	for _, value := range headerValues {
		if err := stream.writeHeader(value); err != nil {
			t.Fatalf("Error writing header value %d: %s", value, err)
		}
		readBack, err := stream.readHeader()
		if err != nil {
			t.Fatalf("Error reading header back: %s", err)
		}
		if readBack != value {
			t.Errorf("Header read back as %d, expected %d", readBack, value)
		}
	}

	// Values above 63 bits must be rejected, never silently truncated.
	if err := stream.writeHeader(MaxPayloadSize + 1); !errors.Is(err, ErrPayloadTooLarge) {
		t.Errorf("Expected ErrPayloadTooLarge for 64-bit header value, got %v", err)
	}
}

func TestWriteStreamRejectsOversizedPayload(t *testing.T) {
	carrier := bmp.New(4, 4)
	blackCarrier := bmp.New(4, 4)

	stream := NewStream(carrier)
	err := stream.WriteStream(sizedSource{size: MaxPayloadSize + 1})
	if !errors.Is(err, ErrPayloadTooLarge) {
		t.Fatalf("Expected ErrPayloadTooLarge, got %v", err)
	}

	// Sizes the header admits but whose bit count overflows a uint64 must
	// be rejected too, never silently wrapped.
	err = stream.WriteStream(sizedSource{size: 1 << 62})
	if !errors.Is(err, ErrPayloadTooLarge) {
		t.Fatalf("Expected ErrPayloadTooLarge for a bit-count overflow, got %v", err)
	}

	// The rejection must happen before any word is written.
	for y := uint32(0); y < 4; y++ {
		for x := uint32(0); x < 4; x++ {
			wantR, wantG, wantB := blackCarrier.Pixel(x, y)
			gotR, gotG, gotB := carrier.Pixel(x, y)
			if gotR != wantR || gotG != wantG || gotB != wantB {
				t.Errorf("Pixel (%d, %d) was modified by a rejected embed", x, y)
			}
		}
	}
}

// The linear address mapping divides by the carrier height for the row
// while wrapping the column modulo the width, so non-square carriers place
// words on unexpected pixels and expose far less capacity than their area
// suggests. Both quirks are load-bearing for compatibility with existing
// embedded carriers.
func TestAddressMapping(t *testing.T) {
	carrier := bmp.New(3, 9)
	stream := NewStream(carrier)

	// addr 10 -> column 10 mod 3 = 1, row 10 div 9 = 1.
	if err := stream.WriteWord(10, 0x7F); err != nil {
		t.Fatalf("Error writing word: %s", err)
	}
	if r, g, b := carrier.Pixel(1, 1); r != 7 || g != 3 || b != 3 {
		t.Errorf("Word 10 landed on the wrong pixel, (1, 1) is (%d, %d, %d)", r, g, b)
	}

	// A 9x3 carrier only has 9 addressable words, not enough for the
	// header.
	wideStream := NewStream(bmp.New(9, 3))
	if _, _, err := wideStream.locate(9); !errors.Is(err, ErrAddressOutOfRange) {
		t.Errorf("Expected ErrAddressOutOfRange for address 9 on a 9x3 carrier, got %v", err)
	}
	err := wideStream.WriteStream(bits.NewReader(bytes.NewReader([]byte{1}), 1))
	if !errors.Is(err, ErrAddressOutOfRange) {
		t.Errorf("Expected ErrAddressOutOfRange embedding into a too-short carrier, got %v", err)
	}
}

// A carrier with no pixels has no addressable words; every stream operation
// must fail cleanly instead of dividing by the zero height.
func TestEmptyCarrier(t *testing.T) {
	for _, size := range []struct{ width, height uint32 }{{0, 0}, {0, 4}, {4, 0}} {
		stream := NewStream(bmp.New(size.width, size.height))

		err := stream.WriteStream(bits.NewReader(bytes.NewReader([]byte{1}), 1))
		if !errors.Is(err, ErrAddressOutOfRange) {
			t.Errorf("Expected ErrAddressOutOfRange embedding into a %dx%d carrier, got %v",
				size.width, size.height, err)
		}

		if _, err = stream.DeclaredPayloadSize(); !errors.Is(err, ErrAddressOutOfRange) {
			t.Errorf("Expected ErrAddressOutOfRange reading the header of a %dx%d carrier, got %v",
				size.width, size.height, err)
		}
	}
}

// A garbage header can declare a byte count whose bit count overflows a
// uint64; extraction must reject it instead of deriving a wrapped word count.
func TestReadStreamRejectsOverflowingHeader(t *testing.T) {
	stream := NewStream(generateRandomCarrier(8, 8))
	if err := stream.writeHeader(1 << 62); err != nil {
		t.Fatalf("Error writing header: %s", err)
	}

	err := stream.ReadStream(bits.NewWriter(&bytes.Buffer{}))
	if !errors.Is(err, ErrPayloadTooLarge) {
		t.Errorf("Expected ErrPayloadTooLarge, got %v", err)
	}
}

// The high bits of a final partial word are zero after an embed (the bit
// source zero-pads short groups) and extraction never reads them, so
// corrupting them must not affect the recovered payload.
func TestFinalPartialWordUnusedBits(t *testing.T) {
	carrier := generateRandomCarrier(8, 8)
	stream := NewStream(carrier)

	payload := []byte{0x00} // bits 0-6 in word 9, bit 7 alone in word 10
	err := stream.WriteStream(bits.NewReader(bytes.NewReader(payload), 1))
	if err != nil {
		t.Fatalf("Error embedding payload: %s", err)
	}

	word10, err := stream.ReadWord(10)
	if err != nil {
		t.Fatalf("Error reading word 10: %s", err)
	}
	if word10 != 0 {
		t.Errorf("Final partial word is %#x, expected all-zero padding", word10)
	}

	// Corrupt every bit of the final word above the single payload bit.
	if err = stream.WriteWord(10, 0x7E); err != nil {
		t.Fatalf("Error corrupting word 10: %s", err)
	}

	var extracted bytes.Buffer
	sink := bits.NewWriter(&extracted)
	if err = stream.ReadStream(sink); err != nil {
		t.Fatalf("Error extracting payload: %s", err)
	}
	if err = sink.Close(); err != nil {
		t.Fatalf("Error closing bit writer: %s", err)
	}
	if !bytes.Equal(payload, extracted.Bytes()) {
		t.Errorf("Extracted %v, expected %v", extracted.Bytes(), payload)
	}
}

func TestIntoInner(t *testing.T) {
	carrier := bmp.New(4, 4)
	stream := NewStream(carrier)

	if inner := stream.IntoInner(); inner != Carrier(carrier) {
		t.Errorf("IntoInner did not return the wrapped carrier")
	}
}

type sizedSource struct {
	size uint64
}

func (s sizedSource) Size() uint64 {
	return s.size
}

func (s sizedSource) ReadBits(numBits uint8) (byte, error) {
	return 0, nil
}

func generateRandomCarrier(width, height uint32) *bmp.Image {
	img := bmp.New(width, height)
	for y := uint32(0); y < height; y++ {
		for x := uint32(0); x < width; x++ {
			img.SetPixel(x, y, randUint8(), randUint8(), randUint8())
		}
	}
	return img
}

func generateRandomBytes(numOfBytesToGenerate int) []byte {
	generatedBytes := make([]byte, numOfBytesToGenerate)
	_, err := rand.Read(generatedBytes)
	if err != nil {
		panic(err)
	}
	return generatedBytes
}

func randUint8() uint8 {
	return uint8(rand.Intn(256))
}
