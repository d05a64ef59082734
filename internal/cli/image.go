package cli

import (
	"errors"
	"fmt"
	"image"
	"image/draw"
	"image/png"
	"os"
	"path/filepath"
	"strconv"

	"github.com/dustin/go-humanize"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"lsbsteg/pkg/config"
	stegimage "lsbsteg/pkg/image"
)

var (
	pngCompressionMapping = map[string]png.CompressionLevel{
		"default": 0,
		"none":    -1,
		"fast":    -2,
		"best":    -3,
	}

	errMissingImage   = errors.New("no image supplied, pass --image or set it in the options file")
	errMissingPayload = errors.New("no payload supplied, pass --payload or set it in the options file")
	errMissingOutput  = errors.New("no output path supplied, pass --output or set it in the options file")
)

func ImageCommands() *cobra.Command {
	imageCmd := &cobra.Command{
		Use:     "image",
		Short:   "Performs steganography operations on images",
		Example: "lsbsteg image hide --image source.png --payload secret.zip --output steg.png --lsbs 2",
	}

	imageCmd.AddCommand(hideCommand(), recoverCommand(), analyzeCommand())
	return imageCmd
}

type commonOpts struct {
	lsbsToUse      int8
	pngCompression string
}

func (o commonOpts) toImageConfig() config.ImageConfig {
	mappedCompression, found := pngCompressionMapping[o.pngCompression]
	if !found {
		mappedCompression = png.DefaultCompression
	}
	return config.ImageConfig{
		LSBsToUse:           byte(o.lsbsToUse),
		PngCompressionLevel: mappedCompression,
	}
}

type hideOpts struct {
	sourceImage string
	payloadFile string
	outputImage string
	config      commonOpts
}

func hideCommand() *cobra.Command {
	opts := hideOpts{}

	hideCmd := &cobra.Command{
		Use:     "hide",
		Example: "lsbsteg image hide --image source.png --payload secret.zip --output steg.png",
		Short:   "Hide a file in the low channel bits of an image",
		RunE: func(cmd *cobra.Command, args []string) error {
			fileOpts, err := LoadOptions(optionsFilePath)
			if err != nil {
				return err
			}
			applyStringOption(cmd, "image", &opts.sourceImage, fileOpts.InputImagePath)
			applyStringOption(cmd, "payload", &opts.payloadFile, fileOpts.InputFilePath)
			applyStringOption(cmd, "output", &opts.outputImage, fileOpts.StegImagePath)
			applyLSBOption(cmd, &opts.config.lsbsToUse, fileOpts.NumLSB)

			switch {
			case opts.sourceImage == "":
				return errMissingImage
			case opts.payloadFile == "":
				return errMissingPayload
			case opts.outputImage == "":
				return errMissingOutput
			}

			return HideFileInImage(opts.sourceImage, opts.payloadFile, opts.outputImage, opts.config.toImageConfig())
		},
	}

	hideCmd.Flags().StringVar(&opts.sourceImage, "image", "", "Image to hide the payload in (the original is not touched)")
	hideCmd.Flags().StringVar(&opts.payloadFile, "payload", "", "File to hide inside the image")
	hideCmd.Flags().StringVar(&opts.outputImage, "output", "", "Path for the steganographed PNG that will be generated")
	hideCmd.Flags().Int8Var(&opts.config.lsbsToUse, "lsbs", config.DefaultLSBsToUse, "Least significant bits to use in each channel, 1-8. More LSBs fit more data but distort the image more; the same value must be passed when recovering")
	hideCmd.Flags().StringVar(&opts.config.pngCompression, "png-compression", "default", "Compression for the output png. Options are default, none, fast, best")

	return hideCmd
}

func HideFileInImage(imageSourcePath, payloadPath, outputPath string, iConfig config.ImageConfig) error {
	srcImage, err := getImageFromFilePath(imageSourcePath)
	if err != nil {
		return fmt.Errorf("could not read source image: %w", err)
	}

	payloadFile, err := os.Open(payloadPath)
	if err != nil {
		return fmt.Errorf("could not open payload file: %w", err)
	}
	defer payloadFile.Close()

	payloadStat, err := payloadFile.Stat()
	if err != nil {
		return err
	}

	iEncoder, err := stegimage.NewImageEncoder(srcImage, iConfig)
	if err != nil {
		return err
	}

	s := NewSpinner()
	s.Prefix = "Hiding payload "
	s.Start()

	err = iEncoder.Hide(payloadFile, payloadStat.Size())
	if err != nil {
		s.Stop()
		return err
	}

	s.Prefix = "Writing steganographed PNG "
	err = writeEncodedImageAtomically(iEncoder, outputPath)
	if err != nil {
		s.Stop()
		return err
	}

	s.FinalMSG = fmt.Sprintf("Hid %s (%s) inside %s\n", payloadPath, humanize.Bytes(uint64(payloadStat.Size())), outputPath)
	s.Stop()

	fmt.Printf("Setup time: %s\n", iEncoder.Stats().Setup)
	fmt.Printf("Data hiding time: %s\n", iEncoder.Stats().DataHiding)
	fmt.Printf("Output image encode time: %s\n", iEncoder.Stats().OutputImageEncoding)
	return nil
}

type recoverOpts struct {
	stegImage  string
	outputFile string
	lsbsToUse  int8
}

func recoverCommand() *cobra.Command {
	opts := recoverOpts{}

	recoverCmd := &cobra.Command{
		Use:     "recover",
		Example: "lsbsteg image recover --image steg.png --output secret.zip --lsbs 2",
		Short:   "Recover the file hidden in an image",
		RunE: func(cmd *cobra.Command, args []string) error {
			fileOpts, err := LoadOptions(optionsFilePath)
			if err != nil {
				return err
			}
			applyStringOption(cmd, "image", &opts.stegImage, fileOpts.StegImagePath)
			applyStringOption(cmd, "output", &opts.outputFile, fileOpts.OutputFilePath)
			applyLSBOption(cmd, &opts.lsbsToUse, fileOpts.NumLSB)

			switch {
			case opts.stegImage == "":
				return errMissingImage
			case opts.outputFile == "":
				return errMissingOutput
			}

			return RecoverFileFromImage(opts.stegImage, opts.outputFile, config.ImageConfig{LSBsToUse: byte(opts.lsbsToUse)})
		},
	}

	recoverCmd.Flags().StringVar(&opts.stegImage, "image", "", "Steganographed image generated by lsbsteg")
	recoverCmd.Flags().StringVar(&opts.outputFile, "output", "", "Path the recovered file will be written to")
	recoverCmd.Flags().Int8Var(&opts.lsbsToUse, "lsbs", config.DefaultLSBsToUse, "Least significant bits that were used when hiding")

	return recoverCmd
}

func RecoverFileFromImage(stegImagePath, outputPath string, iConfig config.ImageConfig) error {
	s := NewSpinner()
	s.Prefix = "Reading steganographed image from disk "
	s.Start()

	stegImage, err := getImageFromFilePath(stegImagePath)
	if err != nil {
		s.Stop()
		return fmt.Errorf("could not read steganographed image: %w", err)
	}

	iDecoder, err := stegimage.NewImageDecoder(stegImage, iConfig)
	if err != nil {
		s.Stop()
		return err
	}

	s.Prefix = "Recovering payload "
	bytesRecovered, err := recoverToFileAtomically(iDecoder, outputPath)
	if err != nil {
		s.Stop()
		return err
	}

	s.FinalMSG = fmt.Sprintf("Recovered %s into %s\n", humanize.Bytes(uint64(bytesRecovered)), outputPath)
	s.Stop()

	fmt.Printf("Data recovery time: %s\n", iDecoder.Stats().DataRecovery)
	return nil
}

type analyzeOpts struct {
	sourceImage string
	payloadFile string
	lsbsToUse   int8
}

func analyzeCommand() *cobra.Command {
	opts := analyzeOpts{}

	analyzeCmd := &cobra.Command{
		Use:     "analyze",
		Example: "lsbsteg image analyze --image source.png --payload secret.zip --lsbs 2",
		Short:   "Report how much data an image can carry at a given LSB setting",
		RunE: func(cmd *cobra.Command, args []string) error {
			fileOpts, err := LoadOptions(optionsFilePath)
			if err != nil {
				return err
			}
			applyStringOption(cmd, "image", &opts.sourceImage, fileOpts.InputImagePath)
			applyStringOption(cmd, "payload", &opts.payloadFile, fileOpts.InputFilePath)
			applyLSBOption(cmd, &opts.lsbsToUse, fileOpts.NumLSB)

			if opts.sourceImage == "" {
				return errMissingImage
			}

			return AnalyzeImage(opts.sourceImage, opts.payloadFile, config.ImageConfig{LSBsToUse: byte(opts.lsbsToUse)})
		},
	}

	analyzeCmd.Flags().StringVar(&opts.sourceImage, "image", "", "Image to analyze")
	analyzeCmd.Flags().StringVar(&opts.payloadFile, "payload", "", "Payload file to check against the image's capacity (optional)")
	analyzeCmd.Flags().Int8Var(&opts.lsbsToUse, "lsbs", config.DefaultLSBsToUse, "Least significant bits to use in each channel, 1-8")

	return analyzeCmd
}

func AnalyzeImage(imageSourcePath, payloadPath string, iConfig config.ImageConfig) error {
	iConfig = iConfig.PopulateUnsetConfigVars()
	if err := iConfig.Validate(); err != nil {
		return err
	}

	imageFile, err := os.Open(imageSourcePath)
	if err != nil {
		return fmt.Errorf("could not open source image: %w", err)
	}
	imageConfig, _, err := image.DecodeConfig(imageFile)
	if closeErr := imageFile.Close(); err == nil {
		err = closeErr
	}
	if err != nil {
		return fmt.Errorf("could not read source image: %w", err)
	}

	payloadSize := int64(-1)
	if payloadPath != "" {
		payloadStat, err := os.Stat(payloadPath)
		if err != nil {
			return fmt.Errorf("could not stat payload file: %w", err)
		}
		payloadSize = payloadStat.Size()
	}

	report := stegimage.Analyze(imageConfig.Width, imageConfig.Height, iConfig.LSBsToUse, payloadSize)

	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"", "value"})
	table.SetBorder(true)
	table.Append([]string{"image resolution", fmt.Sprintf("%dx%d", report.Width, report.Height)})
	table.Append([]string{"LSBs to use", strconv.Itoa(int(report.LSBsToUse))})
	table.Append([]string{"capacity", fmt.Sprintf("%s (%d B)", humanize.Bytes(report.CapacityBytes), report.CapacityBytes)})
	table.Append([]string{"size header", fmt.Sprintf("%d bits (%d B)", report.HeaderSizeBits, report.HeaderSizeBytes)})
	if report.PayloadSizeBytes >= 0 {
		table.Append([]string{"payload size", fmt.Sprintf("%s (%d B)", humanize.Bytes(uint64(report.PayloadSizeBytes)), report.PayloadSizeBytes)})
		table.Append([]string{"payload fits", strconv.FormatBool(report.PayloadFits)})
	}
	table.Render()

	return nil
}

// writeEncodedImageAtomically persists the encoded PNG next to its final
// destination and renames it into place, so a failed write never leaves a
// truncated image at the output path.
func writeEncodedImageAtomically(iEncoder *stegimage.Encoder, outputPath string) error {
	tmpFile, err := os.CreateTemp(filepath.Dir(outputPath), filepath.Base(outputPath)+".*.tmp")
	if err != nil {
		return err
	}

	if err = iEncoder.WriteEncodedPNG(tmpFile); err != nil {
		tmpFile.Close()
		os.Remove(tmpFile.Name())
		return err
	}
	if err = tmpFile.Close(); err != nil {
		os.Remove(tmpFile.Name())
		return err
	}
	if err = os.Rename(tmpFile.Name(), outputPath); err != nil {
		os.Remove(tmpFile.Name())
		return err
	}
	return nil
}

func recoverToFileAtomically(iDecoder *stegimage.Decoder, outputPath string) (int64, error) {
	tmpFile, err := os.CreateTemp(filepath.Dir(outputPath), filepath.Base(outputPath)+".*.tmp")
	if err != nil {
		return 0, err
	}

	bytesRecovered, err := iDecoder.Recover(tmpFile)
	if err != nil {
		tmpFile.Close()
		os.Remove(tmpFile.Name())
		return 0, err
	}
	if err = tmpFile.Close(); err != nil {
		os.Remove(tmpFile.Name())
		return 0, err
	}
	if err = os.Rename(tmpFile.Name(), outputPath); err != nil {
		os.Remove(tmpFile.Name())
		return 0, err
	}
	return bytesRecovered, nil
}

func applyStringOption(cmd *cobra.Command, flagName string, value *string, fileValue string) {
	if !cmd.Flags().Changed(flagName) && fileValue != "" {
		*value = fileValue
	}
}

func applyLSBOption(cmd *cobra.Command, value *int8, fileValue int) {
	if !cmd.Flags().Changed("lsbs") && fileValue != 0 {
		*value = int8(fileValue)
	}
}

func getImageFromFilePath(filePath string) (*image.RGBA, error) {
	f, err := os.Open(filePath)
	if err != nil {
		return nil, err
	}
	srcImage, _, err := image.Decode(f)
	if err != nil {
		return nil, err
	} else if err = f.Close(); err != nil {
		return nil, err
	}

	img := image.NewRGBA(srcImage.Bounds())
	draw.Draw(img, img.Bounds(), srcImage, img.Bounds().Min, draw.Src)

	return img, nil
}
