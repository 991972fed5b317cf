// Command digiclock shows the 7-segment digital clock face with the
// two-pass gaussian glow. Space cycles the segment palette, T toggles
// between 24-hour and 12-hour display.
package main

import (
	"flag"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/gogpu/clockface"
	"github.com/gogpu/clockface/clock"
	"github.com/gogpu/clockface/composite"
	"github.com/gogpu/clockface/render"
	"github.com/gogpu/clockface/sprite"
)

func main() {
	var (
		width   = flag.Int("width", 960, "window width in pixels")
		height  = flag.Int("height", 540, "window height in pixels")
		verbose = flag.Bool("v", false, "log render passes")
	)
	flag.Parse()

	if *verbose {
		clockface.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	ebiten.SetWindowTitle("digiclock")
	ebiten.SetWindowSize(*width, *height)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	if err := ebiten.RunGame(&game{}); err != nil {
		log.Fatal(err)
	}
}

type game struct {
	selector sprite.Palette
	hr12     bool

	forward *render.Target
	blurH   *render.Target
	blurV   *render.Target
	frame   *render.Target
	taps    []composite.BlurTap

	present *ebiten.Image
	scratch []byte
}

func (g *game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.selector = sprite.NextPalette(g.selector)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyT) {
		g.hr12 = !g.hr12
	}
	return nil
}

func (g *game) Draw(screen *ebiten.Image) {
	w, h := screen.Bounds().Dx(), screen.Bounds().Dy()
	if err := g.resize(w, h); err != nil {
		log.Fatal(err)
	}

	if err := g.renderFrame(time.Now()); err != nil {
		log.Fatal(err)
	}

	copy(g.scratch, g.frame.Color.Data())
	for i := 3; i < len(g.scratch); i += 4 {
		g.scratch[i] = 0xFF
	}
	g.present.WritePixels(g.scratch)
	screen.DrawImage(g.present, nil)
}

func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return outsideWidth, outsideHeight
}

func (g *game) resize(w, h int) error {
	if g.frame != nil && g.frame.Width() == w && g.frame.Height() == h {
		return nil
	}
	g.forward = render.NewTarget("forward", w, h)
	g.blurH = render.NewTarget("blur horizontal", w, h)
	g.blurV = render.NewTarget("blur vertical", w, h)
	g.frame = render.NewTarget("frame", w, h)
	g.scratch = make([]byte, w*h*4)
	if g.present != nil {
		g.present.Deallocate()
	}
	g.present = ebiten.NewImage(w, h)

	// The blur radius follows pixel density, so the tap table only
	// changes when the surface does.
	scales := g.scales()
	radius := composite.RadiusForDensity(scales.Density, 1)
	if radius < 1 {
		radius = 1
	}
	taps, err := composite.NewBlurTable(radius, composite.SigmaForRadius(radius), true, true)
	if err != nil {
		return err
	}
	g.taps = taps
	return nil
}

func (g *game) scales() clockface.DrawspaceScales {
	return clockface.NewDrawspaceScales(
		clockface.V2(float32(g.frame.Width()), float32(g.frame.Height())),
		clockface.V2(clock.DigitalExtent[0], clock.DigitalExtent[1]))
}

// renderFrame runs the digital face's four-pass graph: forward segment
// draw, horizontal blur, vertical blur, glow recombination.
func (g *game) renderFrame(now time.Time) error {
	scales := g.scales()
	state := clock.DigitalAt(now, g.hr12)

	var graph render.Graph
	graph.Add(&render.FuncPass{
		PassName: "segments",
		Write:    []*render.Target{g.forward},
		Run: func() error {
			g.forward.ClearColor(clockface.Transparent)
			for i := 0; i+3 <= len(sprite.SegmentIndices); i += 3 {
				v0 := sprite.SegmentVertices[sprite.SegmentIndices[i]]
				v1 := sprite.SegmentVertices[sprite.SegmentIndices[i+1]]
				v2 := sprite.SegmentVertices[sprite.SegmentIndices[i+2]]

				lit := state.Flags.Test(v0.Island)
				render.FillTriangle2D(g.forward, v0.Pos, v1.Pos, v2.Pos, scales,
					func(p clockface.Vec2) clockface.RGBA {
						return sprite.SegmentColor(g.selector, lit, p, state.Timestamp)
					}, render.BlendReplace)
			}
			return nil
		},
	})
	graph.Add(&render.FuncPass{
		PassName: "blur horizontal",
		Read:     []*render.Target{g.forward},
		Write:    []*render.Target{g.blurH},
		Run: func() error {
			composite.BlurHorizontal(g.blurH.Color, g.forward.Color, g.taps)
			return nil
		},
	})
	graph.Add(&render.FuncPass{
		PassName: "blur vertical",
		Read:     []*render.Target{g.blurH},
		Write:    []*render.Target{g.blurV},
		Run: func() error {
			composite.BlurVertical(g.blurV.Color, g.blurH.Color, g.taps)
			return nil
		},
	})
	graph.Add(&render.FuncPass{
		PassName: "glow combine",
		Read:     []*render.Target{g.forward, g.blurV},
		Write:    []*render.Target{g.frame},
		Run: func() error {
			composite.GlowCombine(g.frame.Color, g.forward.Color, g.blurV.Color)
			return nil
		},
	})
	return graph.Execute()
}
