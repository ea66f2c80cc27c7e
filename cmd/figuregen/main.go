// Command figuregen generates a sprite sheet of random characters from a
// directory of layer art and colour palettes.
package main

import (
	"flag"
	"fmt"
	"image/png"
	"log/slog"
	"os"

	"github.com/BurntSushi/toml"

	"github.com/pixelforge/figure"
	"github.com/pixelforge/figure/assets"
	"github.com/pixelforge/figure/sheet"
)

// config mirrors the optional TOML config file. Flags override it.
type config struct {
	ArtDir     string `toml:"art_dir"`
	PaletteDir string `toml:"palette_dir"`
	Output     string `toml:"output"`
	Count      int    `toml:"count"`
	Columns    int    `toml:"columns"`
	TileSize   int    `toml:"tile_size"`
	Workers    int    `toml:"workers"`
	Seed       uint64 `toml:"seed"`
	Verbose    bool   `toml:"verbose"`
}

func defaultConfig() config {
	return config{
		ArtDir:     "art",
		PaletteDir: "assets/csv",
		Output:     "sprites.png",
	}
}

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "figuregen:", err)
		os.Exit(1)
	}
}

func run() error {
	cfg := defaultConfig()

	configPath := flag.String("config", "", "optional TOML config file")
	artDir := flag.String("art", "", "directory of Name_Kind.png layer images")
	paletteDir := flag.String("palettes", "", "directory of colour palette CSV files")
	output := flag.String("output", "", "output PNG file")
	count := flag.Int("count", 0, "number of characters to generate")
	columns := flag.Int("columns", 0, "sheet width in tiles")
	tileSize := flag.Int("tile", 0, "tile edge in pixels")
	workers := flag.Int("workers", 0, "worker goroutines (0 = all CPUs)")
	seed := flag.Uint64("seed", 0, "random seed (0 = random)")
	verbose := flag.Bool("v", false, "debug logging")
	flag.Parse()

	if *configPath != "" {
		if _, err := toml.DecodeFile(*configPath, &cfg); err != nil {
			return fmt.Errorf("load config %s: %w", *configPath, err)
		}
	}
	if *artDir != "" {
		cfg.ArtDir = *artDir
	}
	if *paletteDir != "" {
		cfg.PaletteDir = *paletteDir
	}
	if *output != "" {
		cfg.Output = *output
	}
	if *count != 0 {
		cfg.Count = *count
	}
	if *columns != 0 {
		cfg.Columns = *columns
	}
	if *tileSize != 0 {
		cfg.TileSize = *tileSize
	}
	if *workers != 0 {
		cfg.Workers = *workers
	}
	if *seed != 0 {
		cfg.Seed = *seed
	}
	if *verbose {
		cfg.Verbose = true
	}

	level := slog.LevelInfo
	if cfg.Verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	figure.SetLogger(logger)

	libs, err := assets.LoadLibraries(cfg.ArtDir)
	if err != nil {
		return err
	}
	total := 0
	for _, kind := range figure.DrawOrder() {
		total += libs[kind].Len()
	}
	if total == 0 {
		return fmt.Errorf("no assets found in %s", cfg.ArtDir)
	}
	logger.Info("loaded asset libraries", "dir", cfg.ArtDir, "assets", total)

	if err := assets.PreloadImages(libs); err != nil {
		logger.Warn("some assets failed to decode", "error", err)
	}

	palettes := assets.LoadPalettes(cfg.PaletteDir)
	logger.Info("loaded colour palettes", "dir", cfg.PaletteDir, "palettes", len(palettes))

	img, err := sheet.Generate(libs, palettes, sheet.Config{
		Count:    cfg.Count,
		Columns:  cfg.Columns,
		TileSize: cfg.TileSize,
		Workers:  cfg.Workers,
		Seed:     cfg.Seed,
	})
	if err != nil {
		return err
	}

	f, err := os.Create(cfg.Output)
	if err != nil {
		return fmt.Errorf("create %s: %w", cfg.Output, err)
	}
	defer func() { _ = f.Close() }()
	if err := png.Encode(f, img); err != nil {
		return fmt.Errorf("encode %s: %w", cfg.Output, err)
	}

	logger.Info("sprite sheet saved", "path", cfg.Output,
		"width", img.Bounds().Dx(), "height", img.Bounds().Dy())
	return nil
}
