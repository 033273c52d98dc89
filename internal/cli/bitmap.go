package cli

import (
	"fmt"

	"github.com/dustin/go-humanize"
	"github.com/hashicorp/go-multierror"
	"github.com/spf13/cobra"

	"bsteg/pkg/bits"
	"bsteg/pkg/bmp"
	"bsteg/pkg/steg"
)

func BitmapCommands() *cobra.Command {
	bitmapCmd := &cobra.Command{
		Use:     "bitmap",
		Short:   "Performs steganography operations on uncompressed bitmaps",
		Example: "bsteg bitmap embed --carrier blank.bmp --payload secret.pdf --output-file loaded.bmp",
	}

	bitmapCmd.AddCommand(embedBitmapCommand(), extractBitmapCommand(), inspectBitmapCommand(), newBitmapCommand())
	return bitmapCmd
}

type embedBitmapOpts struct {
	carrierFile string
	payloadFile string
	outputFile  string
}

func embedBitmapCommand() *cobra.Command {
	opts := embedBitmapOpts{}

	embedCmd := &cobra.Command{
		Use:     "embed",
		Example: "bsteg bitmap embed --carrier blank.bmp --payload secret.pdf --output-file loaded.bmp",
		Short:   "Embed a payload file into a bitmap",
		RunE: func(cmd *cobra.Command, args []string) error {
			return EmbedFileInBitmap(opts.carrierFile, opts.payloadFile, opts.outputFile)
		},
	}

	embedCmd.Flags().StringVar(&opts.carrierFile, "carrier", "", "Bitmap to embed the payload into (original will not be touched)")
	embedCmd.Flags().StringVar(&opts.payloadFile, "payload", "", "File to hide inside the carrier bitmap")
	embedCmd.Flags().StringVar(&opts.outputFile, "output-file", "", "Output path for the bitmap with the embedded payload")

	MarkFlagsRequired(embedCmd, "carrier", "payload", "output-file")

	return embedCmd
}

func extractBitmapCommand() *cobra.Command {
	var carrierFile, outputFile string

	extractCmd := &cobra.Command{
		Use:     "extract",
		Example: "bsteg bitmap extract --carrier loaded.bmp --output-file secret.pdf",
		Short:   "Extract the payload embedded in a bitmap",
		RunE: func(cmd *cobra.Command, args []string) error {
			return ExtractFileFromBitmap(carrierFile, outputFile)
		},
	}

	extractCmd.Flags().StringVar(&carrierFile, "carrier", "", "Bitmap previously loaded by bsteg")
	extractCmd.Flags().StringVar(&outputFile, "output-file", "", "Output path for the extracted payload")

	MarkFlagsRequired(extractCmd, "carrier", "output-file")

	return extractCmd
}

func inspectBitmapCommand() *cobra.Command {
	var carrierFile string

	inspectCmd := &cobra.Command{
		Use:     "inspect",
		Example: "bsteg bitmap inspect --carrier loaded.bmp",
		Short:   "Show a bitmap's dimensions and the payload size its header declares",
		RunE: func(cmd *cobra.Command, args []string) error {
			return InspectBitmap(carrierFile)
		},
	}

	inspectCmd.Flags().StringVar(&carrierFile, "carrier", "", "Bitmap to inspect")

	MarkFlagsRequired(inspectCmd, "carrier")

	return inspectCmd
}

func newBitmapCommand() *cobra.Command {
	var width, height uint32
	var outputFile string

	newCmd := &cobra.Command{
		Use:     "new",
		Example: "bsteg bitmap new --width 512 --height 512 --output-file blank.bmp",
		Short:   "Generate a blank 24-bpp bitmap to use as a carrier",
		RunE: func(cmd *cobra.Command, args []string) error {
			if width == 0 || height == 0 {
				return fmt.Errorf("cannot generate a %dx%d bitmap: %w", width, height, bmp.ErrInvalidDimensions)
			}
			if err := bmp.New(width, height).WriteFile(outputFile); err != nil {
				return err
			}
			fmt.Printf("Generated blank %dx%d bitmap %s\n", width, height, outputFile)
			return nil
		},
	}

	newCmd.Flags().Uint32Var(&width, "width", 512, "Width of the generated bitmap in pixels")
	newCmd.Flags().Uint32Var(&height, "height", 512, "Height of the generated bitmap in pixels")
	newCmd.Flags().StringVar(&outputFile, "output-file", "", "Output path for the generated bitmap")

	MarkFlagsRequired(newCmd, "output-file")

	return newCmd
}

func EmbedFileInBitmap(carrierPath, payloadPath, outputPath string) (retErr error) {
	s := NewSpinner()
	s.Prefix = "Reading carrier bitmap from disk "
	s.Start()
	defer s.Stop()

	carrier, err := bmp.ReadFile(carrierPath)
	if err != nil {
		return err
	}

	src, err := bits.OpenFile(payloadPath)
	if err != nil {
		return err
	}
	defer func() {
		retErr = multierror.Append(retErr, src.Close()).ErrorOrNil()
	}()

	s.Prefix = "Embedding payload "
	stream := steg.NewStream(carrier)
	if err = stream.WriteStream(src); err != nil {
		return err
	}

	s.Prefix = "Writing output bitmap to disk "
	if err = stream.IntoInner().(*bmp.Image).WriteFile(outputPath); err != nil {
		return err
	}

	s.FinalMSG = fmt.Sprintf("Embedded %s of payload from %s into %s\n", humanize.Bytes(src.Size()), payloadPath, outputPath)
	s.Stop()

	fmt.Printf("Data embed time: %s\n", stream.Stats().DataEmbedding)
	return nil
}

func ExtractFileFromBitmap(carrierPath, outputPath string) (retErr error) {
	s := NewSpinner()
	s.Prefix = "Reading carrier bitmap from disk "
	s.Start()
	defer s.Stop()

	carrier, err := bmp.ReadFile(carrierPath)
	if err != nil {
		return err
	}

	sink, err := bits.CreateFile(outputPath)
	if err != nil {
		return err
	}
	defer func() {
		retErr = multierror.Append(retErr, sink.Close()).ErrorOrNil()
	}()

	s.Prefix = "Extracting payload "
	stream := steg.NewStream(carrier)
	if err = stream.ReadStream(sink); err != nil {
		return err
	}

	s.FinalMSG = fmt.Sprintf("Extracted %s of payload from %s into %s\n",
		humanize.Bytes((sink.BitPosition()+7)/8), carrierPath, outputPath)
	s.Stop()

	fmt.Printf("Data extract time: %s\n", stream.Stats().DataExtraction)
	return nil
}

func InspectBitmap(carrierPath string) error {
	carrier, err := bmp.ReadFile(carrierPath)
	if err != nil {
		return err
	}

	declaredSize, err := steg.NewStream(carrier).DeclaredPayloadSize()
	if err != nil {
		return err
	}

	fmt.Printf("Dimensions: %dx%d pixels\n", carrier.Width(), carrier.Height())
	fmt.Printf("Declared payload size: %s (%d bytes)\n", humanize.Bytes(declaredSize), declaredSize)
	fmt.Println("The declared size is only meaningful if a payload was previously embedded in this bitmap")
	return nil
}
