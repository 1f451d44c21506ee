package main

import (
	"fmt"
	"os"

	"github.com/Crystalsage/barnsley/internal/config"
	"github.com/Crystalsage/barnsley/internal/pipeline"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:          "fern",
	Short:        "Render a Barnsley fern to " + config.DefaultOutputPath,
	Args:         cobra.NoArgs,
	RunE:         runGenerate,
	SilenceUsage: true,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func runGenerate(cmd *cobra.Command, args []string) error {
	cfg := config.Default()

	result, err := pipeline.Run(pipeline.Options{Config: cfg})
	if err != nil {
		return fmt.Errorf("rendering: %w", err)
	}

	size, err := pipeline.WriteFile(result, cfg.OutputPath)
	if err != nil {
		return fmt.Errorf("writing output: %w", err)
	}

	fmt.Printf("Rendered %dx%d fern (%d points)\n", cfg.Width, cfg.Height, result.Plotted)
	fmt.Printf("Output: %s (%d bytes)\n", cfg.OutputPath, size)
	return nil
}
