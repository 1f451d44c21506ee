package pipeline

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/Crystalsage/barnsley/internal/config"
	"github.com/Crystalsage/barnsley/internal/fern"
	"github.com/Crystalsage/barnsley/internal/ppm"
)

func TestFullPipeline(t *testing.T) {
	cfg := config.Default()
	cfg.OutputPath = filepath.Join(t.TempDir(), "output.ppm")

	result, err := Run(Options{Config: cfg, Source: fern.NewSource(2024)})
	if err != nil {
		t.Fatalf("Pipeline: %v", err)
	}
	if result.Plotted != cfg.Iterations {
		t.Errorf("expected %d plots, got %d", cfg.Iterations, result.Plotted)
	}

	size, err := WriteFile(result, cfg.OutputPath)
	if err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	if size != ppm.Size(cfg.Width, cfg.Height) {
		t.Errorf("expected %d bytes, got %d", ppm.Size(cfg.Width, cfg.Height), size)
	}

	data, err := os.ReadFile(cfg.OutputPath)
	if err != nil {
		t.Fatalf("reading output: %v", err)
	}
	info, err := ppm.GetInfo(data)
	if err != nil {
		t.Fatalf("GetInfo on output: %v", err)
	}
	if info.Width != 1920 || info.Height != 1080 || info.MaxVal != 255 {
		t.Errorf("unexpected header: %dx%d max %d", info.Width, info.Height, info.MaxVal)
	}

	decoded, err := ppm.Decode(data)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if !decoded.Equal(result.Raster) {
		t.Error("file contents differ from rendered raster")
	}

	leaves := decoded.Count(cfg.Leaf)
	bg := decoded.Count(cfg.Background)
	if leaves == 0 {
		t.Error("no leaf pixels in output")
	}
	if leaves+bg != cfg.Width*cfg.Height {
		t.Errorf("found %d cells that are neither leaf nor background", cfg.Width*cfg.Height-leaves-bg)
	}
	t.Logf("Pipeline output: %dx%d, %d leaf pixels, %d bytes", info.Width, info.Height, leaves, size)
}

func TestRunDeterministic(t *testing.T) {
	cfg := config.Default()
	cfg.Width, cfg.Height, cfg.Iterations = 200, 120, 20_000

	a, err := Run(Options{Config: cfg, Source: fern.NewSource(5)})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	b, err := Run(Options{Config: cfg, Source: fern.NewSource(5)})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if !a.Raster.Equal(b.Raster) {
		t.Error("same seed produced different rasters")
	}
}

func TestRunInvalidConfig(t *testing.T) {
	cfg := config.Default()
	cfg.Height = 0
	if _, err := Run(Options{Config: cfg}); !errors.Is(err, config.ErrInvalid) {
		t.Fatalf("expected config.ErrInvalid, got %v", err)
	}
}

func TestWriteFileUnwritable(t *testing.T) {
	cfg := config.Default()
	cfg.Width, cfg.Height, cfg.Iterations = 8, 8, 10

	result, err := Run(Options{Config: cfg, Source: fern.NewSource(1)})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	path := filepath.Join(t.TempDir(), "no", "such", "dir", "out.ppm")
	if _, err := WriteFile(result, path); err == nil {
		t.Fatal("expected error writing into a missing directory")
	}
}
