// Package bmp reads and writes uncompressed 24 bits-per-pixel Windows
// bitmaps, exposing the decoded pixel grid with mutable per-pixel access so
// it can serve as a steganography carrier.
package bmp

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"os"
)

const (
	magicBM = 0x4D42 // "BM", little-endian

	fileHeaderSize = 14
	infoHeaderSize = 40
	pixelDataStart = fileHeaderSize + infoHeaderSize

	bitsPerPixel24  = 24
	compressionNone = 0

	// maxPixels bounds the pixel count accepted from untrusted input, so a
	// forged header cannot trigger a huge allocation before the row reads
	// fail.
	maxPixels = 1 << 26
)

var (
	ErrInvalidMagic           = errors.New("file does not start with the BM magic number")
	ErrUnsupportedBPP         = errors.New("only 24 bits-per-pixel bitmaps are supported")
	ErrUnsupportedCompression = errors.New("only uncompressed bitmaps are supported")
	ErrInvalidDimensions      = errors.New("bitmap dimensions must be non-zero")
	ErrDimensionsTooLarge     = errors.New("bitmap dimensions exceed the supported pixel count")
)

// fileHeader and infoHeader mirror the on-disk BITMAPFILEHEADER and
// BITMAPINFOHEADER layouts, all fields little-endian.
type fileHeader struct {
	Magic      uint16
	FileSize   uint32
	Reserved   uint32
	DataOffset uint32
}

type infoHeader struct {
	HeaderSize    uint32
	Width         uint32
	Height        uint32
	Planes        uint16
	BitsPerPixel  uint16
	Compression   uint32
	ImageSize     uint32
	HResolution   int32
	VResolution   int32
	PaletteColors uint32
	UsedColors    uint32
}

// Pixel is a single 3-channel pixel. Each channel is independent, 0-255.
type Pixel struct {
	R, G, B uint8
}

// Image is a decoded bitmap: the original header fields plus a row-major,
// top-down pixel grid. Row zero is the topmost row even though the file
// stores rows bottom-up.
type Image struct {
	file   fileHeader
	info   infoHeader
	pixels []Pixel
}

// New returns a blank width x height 24-bpp image with a well-formed header
// and all pixels black.
func New(width, height uint32) *Image {
	imageSize := rowSize(width) * height
	return &Image{
		file: fileHeader{
			Magic:      magicBM,
			FileSize:   pixelDataStart + imageSize,
			DataOffset: pixelDataStart,
		},
		info: infoHeader{
			HeaderSize:   infoHeaderSize,
			Width:        width,
			Height:       height,
			Planes:       1,
			BitsPerPixel: bitsPerPixel24,
			Compression:  compressionNone,
			ImageSize:    imageSize,
		},
		pixels: make([]Pixel, width*height),
	}
}

// Decode reads a bitmap from rs. The source must be seekable because pixel
// rows are located through the header's data offset rather than assumed to
// follow the header directly.
func Decode(rs io.ReadSeeker) (*Image, error) {
	img := &Image{}

	if err := binary.Read(rs, binary.LittleEndian, &img.file); err != nil {
		return nil, fmt.Errorf("read file header: %w", err)
	}
	if img.file.Magic != magicBM {
		return nil, ErrInvalidMagic
	}

	if err := binary.Read(rs, binary.LittleEndian, &img.info); err != nil {
		return nil, fmt.Errorf("read info header: %w", err)
	}
	if img.info.BitsPerPixel != bitsPerPixel24 {
		return nil, fmt.Errorf("%w, got %d bpp", ErrUnsupportedBPP, img.info.BitsPerPixel)
	}
	if img.info.Compression != compressionNone {
		return nil, fmt.Errorf("%w, got compression method %d", ErrUnsupportedCompression, img.info.Compression)
	}

	width, height := img.info.Width, img.info.Height
	if width == 0 || height == 0 {
		return nil, fmt.Errorf("%w, got %dx%d", ErrInvalidDimensions, width, height)
	}
	if uint64(width)*uint64(height) > maxPixels {
		return nil, fmt.Errorf("%w, got %dx%d", ErrDimensionsTooLarge, width, height)
	}
	img.pixels = make([]Pixel, 0, width*height)

	// Rows are stored bottom-up, so the last row in the file is row zero of
	// the grid.
	row := make([]byte, width*3)
	for y := height; y > 0; y-- {
		rowOffset := int64(img.file.DataOffset) + int64(y-1)*int64(rowSize(width))
		if _, err := rs.Seek(rowOffset, io.SeekStart); err != nil {
			return nil, fmt.Errorf("seek to pixel row %d: %w", y-1, err)
		}
		if _, err := io.ReadFull(rs, row); err != nil {
			return nil, fmt.Errorf("read pixel row %d: %w", y-1, err)
		}

		for x := uint32(0); x < width; x++ {
			img.pixels = append(img.pixels, Pixel{
				B: row[x*3],
				G: row[x*3+1],
				R: row[x*3+2],
			})
		}
	}

	return img, nil
}

// Encode writes the bitmap to w in the same layout Decode reads: headers,
// then bottom-up BGR rows, each zero-padded to a multiple of 4 bytes.
func (img *Image) Encode(w io.Writer) error {
	if err := binary.Write(w, binary.LittleEndian, img.file); err != nil {
		return fmt.Errorf("write file header: %w", err)
	}
	if err := binary.Write(w, binary.LittleEndian, img.info); err != nil {
		return fmt.Errorf("write info header: %w", err)
	}

	width, height := img.info.Width, img.info.Height
	row := make([]byte, rowSize(width)) // padding bytes stay zero

	for y := height; y > 0; y-- {
		for x := uint32(0); x < width; x++ {
			pixel := img.pixels[x+(y-1)*width]
			row[x*3] = pixel.B
			row[x*3+1] = pixel.G
			row[x*3+2] = pixel.R
		}
		if _, err := w.Write(row); err != nil {
			return fmt.Errorf("write pixel row %d: %w", y-1, err)
		}
	}

	return nil
}

// ReadFile decodes the bitmap stored at path.
func ReadFile(path string) (*Image, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	return Decode(file)
}

// WriteFile encodes the bitmap to the file at path, creating or truncating
// it.
func (img *Image) WriteFile(path string) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}

	if err = img.Encode(file); err != nil {
		file.Close()
		return err
	}
	return file.Close()
}

// Width returns the pixel grid width.
func (img *Image) Width() uint32 {
	return img.info.Width
}

// Height returns the pixel grid height.
func (img *Image) Height() uint32 {
	return img.info.Height
}

// Pixel returns the channel values of the pixel at (x, y).
func (img *Image) Pixel(x, y uint32) (r, g, b byte) {
	pixel := img.pixels[x+y*img.info.Width]
	return pixel.R, pixel.G, pixel.B
}

// SetPixel replaces the channel values of the pixel at (x, y).
func (img *Image) SetPixel(x, y uint32, r, g, b byte) {
	img.pixels[x+y*img.info.Width] = Pixel{R: r, G: g, B: b}
}

// rowSize returns the byte length of one stored pixel row, padded to a
// 4-byte boundary.
func rowSize(width uint32) uint32 {
	rowBytes := width * 3
	return (rowBytes + 3) / 4 * 4
}
