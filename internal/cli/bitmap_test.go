package cli

import (
	"bytes"
	"math/rand"
	"os"
	"path/filepath"
	"testing"

	"bsteg/pkg/bmp"
)

func TestEmbedExtractFileRoundTrip(t *testing.T) {
	dir := t.TempDir()
	carrierPath := filepath.Join(dir, "carrier.bmp")
	payloadPath := filepath.Join(dir, "payload.bin")
	loadedPath := filepath.Join(dir, "loaded.bmp")
	extractedPath := filepath.Join(dir, "extracted.bin")

	if err := bmp.New(64, 64).WriteFile(carrierPath); err != nil {
		t.Fatalf("Error writing carrier bitmap: %s", err)
	}

	payload := make([]byte, 300)
	if _, err := rand.Read(payload); err != nil {
		panic(err)
	}
	if err := os.WriteFile(payloadPath, payload, 0664); err != nil {
		t.Fatalf("Error writing payload file: %s", err)
	}

	if err := EmbedFileInBitmap(carrierPath, payloadPath, loadedPath); err != nil {
		t.Fatalf("Error embedding payload file: %s", err)
	}
	if err := ExtractFileFromBitmap(loadedPath, extractedPath); err != nil {
		t.Fatalf("Error extracting payload file: %s", err)
	}

	extracted, err := os.ReadFile(extractedPath)
	if err != nil {
		t.Fatalf("Error reading extracted payload: %s", err)
	}
	if !bytes.Equal(payload, extracted) {
		t.Errorf("Extracted payload does not match the embedded payload")
	}
}

func TestEmbedIntoTooSmallCarrier(t *testing.T) {
	dir := t.TempDir()
	carrierPath := filepath.Join(dir, "carrier.bmp")
	payloadPath := filepath.Join(dir, "payload.bin")
	loadedPath := filepath.Join(dir, "loaded.bmp")

	if err := bmp.New(2, 2).WriteFile(carrierPath); err != nil {
		t.Fatalf("Error writing carrier bitmap: %s", err)
	}
	if err := os.WriteFile(payloadPath, []byte("does not fit"), 0664); err != nil {
		t.Fatalf("Error writing payload file: %s", err)
	}

	if err := EmbedFileInBitmap(carrierPath, payloadPath, loadedPath); err == nil {
		t.Errorf("Expected embedding into a 2x2 carrier to fail")
	}
}

func TestNewBitmapRejectsZeroDimensions(t *testing.T) {
	cmd := newBitmapCommand()
	cmd.SilenceUsage = true
	cmd.SilenceErrors = true
	cmd.SetArgs([]string{"--width", "0", "--height", "64", "--output-file", filepath.Join(t.TempDir(), "blank.bmp")})

	if err := cmd.Execute(); err == nil {
		t.Errorf("Expected generating a 0x64 bitmap to fail")
	}
}
