// snapshot renders a single Mandelbrot view to a PNG file, without opening
// a window. Useful for high-resolution stills of the landmark views.
package main

import (
	"flag"
	"fmt"
	"image/png"
	"log"
	"os"
	"strings"

	mandel "github.com/christiankuhl/mandelbrot-go"
)

func main() {
	cfg := mandel.DefaultConfig()
	var viewName, out string
	flag.IntVar(&cfg.Width, "width", 1920, "Image width in pixels.")
	flag.IntVar(&cfg.Height, "height", 1080, "Image height in pixels.")
	flag.IntVar(&cfg.MaxIterations, "iter", cfg.MaxIterations, "Escape-time iteration cap.")
	flag.StringVar(&viewName, "view", "full", "View to render, one of: "+strings.Join(mandel.ViewNames(), ", ")+".")
	flag.StringVar(&out, "o", "mandel.png", "Output file name.")
	flag.Parse()

	if err := run(cfg, viewName, out); err != nil {
		log.Fatalf("run: %v", err)
	}
}

func run(cfg mandel.Config, viewName, out string) error {
	view, ok := mandel.ViewByName(viewName)
	if !ok {
		return fmt.Errorf("unknown view %q, want one of: %s", viewName, strings.Join(mandel.ViewNames(), ", "))
	}
	cfg.InitialView = view
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("config: %w", err)
	}

	log.Printf("rendering %dx%d view %q at %d iterations", cfg.Width, cfg.Height, viewName, cfg.MaxIterations)
	params := mandel.NewParams(cfg)
	buf := mandel.NewPixelBuffer(cfg.Width, cfg.Height)
	mandel.Render(&view, params, buf, cfg.Width, cfg.Height)

	f, err := os.Create(out)
	if err != nil {
		return fmt.Errorf("create output file: %w", err)
	}
	defer f.Close()

	if err := png.Encode(f, buf.ToRGBA(cfg.Width, cfg.Height)); err != nil {
		return fmt.Errorf("encode PNG: %w", err)
	}

	log.Printf("rendered view saved to %q", out)
	return nil
}
