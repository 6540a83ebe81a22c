// viewer is the interactive Mandelbrot window. Left mouse zooms in at the
// cursor, right mouse zooms out, arrow keys pan, I/O zoom at the window
// midpoint, C cycles the color scale, R resets the view, Q or Escape quits.
// With -listen it also mirrors the current frame to browsers.
package main

import (
	"flag"
	"fmt"
	"log"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"

	mandel "github.com/christiankuhl/mandelbrot-go"
)

func main() {
	cfg := mandel.DefaultConfig()
	var viewName, listenAddr string
	flag.IntVar(&cfg.Width, "width", cfg.Width, "Window width in pixels.")
	flag.IntVar(&cfg.Height, "height", cfg.Height, "Window height in pixels.")
	flag.IntVar(&cfg.MaxIterations, "iter", cfg.MaxIterations, "Starting escape-time iteration cap.")
	flag.Float64Var(&cfg.ZoomFactor, "zoom", cfg.ZoomFactor, "Zoom multiplier per zoom step.")
	flag.StringVar(&viewName, "view", "full", "Starting view, one of: "+strings.Join(mandel.ViewNames(), ", ")+".")
	flag.StringVar(&listenAddr, "listen", "", "Serve a live web view on this address (e.g. :8080). Empty disables.")
	flag.Parse()

	if err := run(cfg, viewName, listenAddr); err != nil {
		log.Fatalf("run: %v", err)
	}
}

func run(cfg mandel.Config, viewName, listenAddr string) error {
	view, ok := mandel.ViewByName(viewName)
	if !ok {
		return fmt.Errorf("unknown view %q, want one of: %s", viewName, strings.Join(mandel.ViewNames(), ", "))
	}
	cfg.InitialView = view
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("config: %w", err)
	}

	g := newGame(cfg)

	if listenAddr != "" {
		g.live = newLiveView(cfg.Width, cfg.Height)
		srv := liveViewServer(listenAddr, g.live)
		go func() {
			log.Printf("live view listening on http://localhost%s", listenAddr)
			if err := srv.ListenAndServe(); err != nil {
				log.Fatalf("live view server: %v", err)
			}
		}()
	}

	ebiten.SetWindowTitle("mandelbrot")
	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	ebiten.SetTPS(cfg.TPS())
	if err := ebiten.RunGame(g); err != nil {
		return fmt.Errorf("window loop: %w", err)
	}
	return nil
}
