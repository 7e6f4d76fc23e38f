// Command projectile fires a projectile through gravity and wind, plots its
// path onto a canvas and writes the result as a PPM image.
//
// Usage:
//
//	projectile [-config scene.json] [-out projectile.ppm] [-quiet]
//
// The JSON file may set any of the fields of sceneConfig; flags given on the
// command line win over the file.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"time"

	"github.com/gosuri/uilive"

	"github.com/katalvlaran/rtc/canvas"
	"github.com/katalvlaran/rtc/internal/config"
	"github.com/katalvlaran/rtc/ppm"
	"github.com/katalvlaran/rtc/projectile"
	"github.com/katalvlaran/rtc/tuple"
)

// sceneConfig is the launch and canvas description.
type sceneConfig struct {
	Width    int        `json:"width"`
	Height   int        `json:"height"`
	Start    [3]float32 `json:"start"`
	Launch   [3]float32 `json:"launch"`
	Speed    float32    `json:"speed"`
	Gravity  [3]float32 `json:"gravity"`
	Wind     [3]float32 `json:"wind"`
	MaxTicks int        `json:"maxTicks,omitempty"`
	Out      string     `json:"out"`
}

func defaultScene() sceneConfig {
	return sceneConfig{
		Width:   900,
		Height:  500,
		Start:   [3]float32{0, 1, 0},
		Launch:  [3]float32{1, 1.8, 0},
		Speed:   11.25,
		Gravity: [3]float32{0, -0.1, 0},
		Wind:    [3]float32{-0.01, 0, 0},
		Out:     "projectile.ppm",
	}
}

func main() {
	log.SetFlags(0)
	log.SetPrefix("projectile: ")

	cfgPath := flag.String("config", "", "optional JSON scene file")
	out := flag.String("out", "", "output PPM path (overrides the scene file)")
	quiet := flag.Bool("quiet", false, "disable live progress")
	flag.Parse()

	cfg := defaultScene()
	if err := config.Load(*cfgPath, &cfg); err != nil {
		log.Fatalf("load config: %v", err)
	}
	if *out != "" {
		cfg.Out = *out
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	var progress io.Writer = os.Stdout
	if *quiet {
		progress = io.Discard
	}
	ticks, err := run(ctx, cfg, progress)
	if err != nil {
		log.Fatal(err)
	}
	log.Printf("landed after %d ticks, wrote %s", ticks, cfg.Out)
}

// run simulates the scene, reporting each tick on progress, and writes the image.
func run(ctx context.Context, cfg sceneConfig, progress io.Writer) (int, error) {
	c, err := canvas.New(cfg.Width, cfg.Height)
	if err != nil {
		return 0, err
	}

	env := projectile.Environment{
		Gravity: tuple.Vector(cfg.Gravity[0], cfg.Gravity[1], cfg.Gravity[2]),
		Wind:    tuple.Vector(cfg.Wind[0], cfg.Wind[1], cfg.Wind[2]),
	}
	p := projectile.Projectile{
		Position: tuple.Point(cfg.Start[0], cfg.Start[1], cfg.Start[2]),
		Velocity: tuple.Vector(cfg.Launch[0], cfg.Launch[1], cfg.Launch[2]).Normalize().Mul(cfg.Speed),
	}

	writer := uilive.New()
	writer.Out = progress
	writer.RefreshInterval = 50 * time.Millisecond
	writer.Start()
	defer writer.Stop()

	var opts []projectile.Option
	if cfg.MaxTicks > 0 {
		opts = append(opts, projectile.WithMaxTicks(cfg.MaxTicks))
	}
	tick, offCanvas := 0, 0
	ticks, err := projectile.Simulate(ctx, env, p, func(s projectile.Projectile) {
		if !projectile.Plot(c, s, tuple.Red) {
			offCanvas++
		}
		tick++
		fmt.Fprintf(writer, "tick %d  x: %.2f  y: %.2f  off-canvas: %d\n", tick, s.Position.X, s.Position.Y, offCanvas)
	}, opts...)
	if err != nil {
		return ticks, err
	}

	return ticks, ppm.WriteFile(cfg.Out, c)
}
