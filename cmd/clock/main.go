// Command clock draws the twelve hour marks of an analog clock face.
//
// Each mark starts as the point (0, 1, 0), is stretched to the clock radius,
// rotated about z by i·π/6 and moved to the canvas centre:
//
//	mark_i = Translation(w/2, h/2, 0) · RotationZ(i·π/6) · Scaling(1, r, 1) · (0,1,0)
//
// Usage:
//
//	clock [-config clock.json] [-out clock.ppm]
package main

import (
	"flag"
	"log"
	"math"

	"github.com/katalvlaran/rtc/canvas"
	"github.com/katalvlaran/rtc/internal/config"
	"github.com/katalvlaran/rtc/ppm"
	"github.com/katalvlaran/rtc/transform"
	"github.com/katalvlaran/rtc/tuple"
)

const hours = 12

type clockConfig struct {
	Width  int     `json:"width"`
	Height int     `json:"height"`
	Radius float32 `json:"radius"`
	Out    string  `json:"out"`
}

func defaultClock() clockConfig {
	return clockConfig{Width: 900, Height: 500, Radius: 150, Out: "clock.ppm"}
}

func main() {
	log.SetFlags(0)
	log.SetPrefix("clock: ")

	cfgPath := flag.String("config", "", "optional JSON clock file")
	out := flag.String("out", "", "output PPM path (overrides the config file)")
	flag.Parse()

	cfg := defaultClock()
	if err := config.Load(*cfgPath, &cfg); err != nil {
		log.Fatalf("load config: %v", err)
	}
	if *out != "" {
		cfg.Out = *out
	}
	if err := run(cfg); err != nil {
		log.Fatal(err)
	}
	log.Printf("wrote %s", cfg.Out)
}

// hourMarks returns the world positions of the twelve marks, 12 o'clock first,
// turning counter-clockwise in canvas coordinates.
func hourMarks(cfg clockConfig) [hours]tuple.Tuple {
	top := tuple.Point(0, 1, 0)
	center := transform.Translation(float32(cfg.Width)/2, float32(cfg.Height)/2, 0)
	stretch := transform.Scaling(1, cfg.Radius, 1)

	var marks [hours]tuple.Tuple
	for i := range marks {
		t := center.Mul(transform.RotationZ(math.Pi / 6 * float64(i))).Mul(stretch)
		marks[i] = t.MulTuple(top)
	}

	return marks
}

func run(cfg clockConfig) error {
	c, err := canvas.New(cfg.Width, cfg.Height)
	if err != nil {
		return err
	}
	c.WritePixel(cfg.Width/2, cfg.Height/2, tuple.Red)
	for _, m := range hourMarks(cfg) {
		if !c.WritePixel(int(m.X), int(m.Y), tuple.Red) {
			log.Printf("mark %v is off the canvas", m)
		}
	}

	return ppm.WriteFile(cfg.Out, c)
}
