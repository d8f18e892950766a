// Command mipgen writes the mipmap pyramid of an image as PNG files.
//
//	mipgen -in texture.png -out texture
//
// writes texture_0.png, texture_1.png and so on down to the 1x1 level.
// PNG, JPEG, GIF, BMP, TIFF and WebP inputs are accepted.
package main

import (
	"flag"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	"image/png"
	"log"
	"log/slog"
	"os"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"

	"github.com/gogpu/mipmap"
	"github.com/gogpu/mipmap/backend/recorder"
)

func main() {
	var (
		input   = flag.String("in", "", "input image")
		output  = flag.String("out", "level", "output file prefix")
		maxSize = flag.Int("max", recorder.DefaultMaxTextureSize, "maximum texture size")
		verbose = flag.Bool("v", false, "log every level")
	)
	flag.Parse()
	if *input == "" {
		flag.Usage()
		os.Exit(2)
	}
	if *verbose {
		mipmap.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	img, err := load(*input)
	if err != nil {
		log.Fatalf("Failed to load: %v", err)
	}

	rec := recorder.New(recorder.WithMaxTextureSize(*maxSize))
	if err := mipmap.Build2DMipmaps(rec, mipmap.SourceFromImage(img)); err != nil {
		log.Fatalf("Failed to build mipmaps (code %d): %v", mipmap.Code(err), err)
	}

	for _, lvl := range rec.Uploads() {
		name := fmt.Sprintf("%s_%d.png", *output, lvl.Level)
		if err := save(name, mipmap.LevelImage(&lvl)); err != nil {
			log.Fatalf("Failed to save: %v", err)
		}
		log.Printf("Level %d saved to %s (%dx%d)\n", lvl.Level, name, lvl.Width, lvl.Height)
	}
}

func load(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	return img, nil
}

func save(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
