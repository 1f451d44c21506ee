package main

import (
	"fmt"
	"os"

	"github.com/Crystalsage/barnsley/internal/ppm"
	"github.com/spf13/cobra"
)

var identifyCmd = &cobra.Command{
	Use:   "identify [file]",
	Short: "Inspect a PPM image header",
	Args:  cobra.ExactArgs(1),
	RunE:  runIdentify,
}

func init() {
	rootCmd.AddCommand(identifyCmd)
}

func runIdentify(cmd *cobra.Command, args []string) error {
	path := args[0]
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading %s: %w", path, err)
	}

	info, err := ppm.GetInfo(data)
	if err != nil {
		return fmt.Errorf("parsing %s: %w", path, err)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "File:       %s\n", path)
	fmt.Fprintf(out, "Format:     %s\n", info.Magic)
	fmt.Fprintf(out, "Dimensions: %d x %d\n", info.Width, info.Height)
	fmt.Fprintf(out, "Max value:  %d\n", info.MaxVal)
	fmt.Fprintf(out, "File size:  %d bytes (%.1f MB)\n", len(data), float64(len(data))/(1024*1024))

	body := len(data) - info.HeaderLen
	if body < info.BodySize() {
		fmt.Fprintf(out, "Pixel data: truncated (%d of %d bytes)\n", body, info.BodySize())
	} else {
		fmt.Fprintf(out, "Pixel data: %d bytes\n", info.BodySize())
	}
	return nil
}
