// Command polarclock shows the polar clock face: three concentric arcs
// for hours, minutes and seconds with marker disks riding each arc's
// leading end. Space cycles the color palette.
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
	"github.com/gogpu/clockface/render"
	"github.com/gogpu/clockface/shape"
)

func main() {
	var (
		size    = flag.Int("size", 720, "window size in pixels")
		verbose = flag.Bool("v", false, "log render passes")
	)
	flag.Parse()

	if *verbose {
		clockface.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	ebiten.SetWindowTitle("polarclock")
	ebiten.SetWindowSize(*size, *size)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	if err := ebiten.RunGame(&game{palettes: clock.NewPaletteCycler()}); err != nil {
		log.Fatal(err)
	}
}

type game struct {
	palettes *clock.PaletteCycler

	frame   *render.Target
	present *ebiten.Image
	scratch []byte
}

func (g *game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.palettes.Advance(time.Now())
	}
	return nil
}

func (g *game) Draw(screen *ebiten.Image) {
	w, h := screen.Bounds().Dx(), screen.Bounds().Dy()
	g.resize(w, h)

	now := time.Now()
	if err := g.renderFrame(now); err != nil {
		log.Fatal(err)
	}

	blit(g.present, g.frame.Color, g.scratch)
	screen.DrawImage(g.present, nil)
}

func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return outsideWidth, outsideHeight
}

func (g *game) resize(w, h int) {
	if g.frame != nil && g.frame.Width() == w && g.frame.Height() == h {
		return
	}
	g.frame = render.NewTarget("frame", w, h)
	g.scratch = make([]byte, w*h*4)
	if g.present != nil {
		g.present.Deallocate()
	}
	g.present = ebiten.NewImage(w, h)
}

// renderFrame assembles and runs the frame's pass graph: a single
// forward pass drawing the three arcs and their markers over the
// palette background.
func (g *game) renderFrame(now time.Time) error {
	scales := clockface.NewDrawspaceScales(
		clockface.V2(float32(g.frame.Width()), float32(g.frame.Height())),
		clockface.V2(clock.PolarExtent, clock.PolarExtent))

	state := clock.PolarAt(now)
	colors := g.palettes.Colors(now)

	var graph render.Graph
	graph.Add(&render.FuncPass{
		PassName: "polar scene",
		Write:    []*render.Target{g.frame},
		Run: func() error {
			g.frame.ClearColor(colors.Background.Unpack())

			drawArc := func(radius, angle float32, color clockface.PackedRGBA) {
				ring := shape.RingInfo{
					Radius:    radius,
					Thickness: clock.RingThickness,
					Angle:     angle,
					Divisions: shape.DefaultDivisions,
					Color:     color,
				}
				render.FillStrip2D(g.frame, ring.Strip(scales.Density), scales,
					func(p clockface.Vec2) clockface.RGBA {
						return ring.Shade(p, scales.Density)
					}, render.BlendSourceOver)
			}
			drawMarker := func(pos clockface.Vec2, color clockface.PackedRGBA) {
				disk := shape.DiskInfo{
					Center:    pos,
					Radius:    clock.MarkerRadius,
					Divisions: shape.DefaultDivisions,
					Color:     color,
				}
				render.FillStrip2D(g.frame, disk.Strip(scales.Density), scales,
					func(p clockface.Vec2) clockface.RGBA {
						return disk.Shade(p, scales.Density)
					}, render.BlendSourceOver)
			}

			drawArc(clock.HoursRadius, state.HoursAngle, colors.Hour)
			drawArc(clock.MinutesRadius, state.MinutesAngle, colors.Minute)
			drawArc(clock.SecondsRadius, state.SecondsAngle, colors.Second)

			drawMarker(state.HoursPos, colors.Marker)
			drawMarker(state.MinutesPos, colors.Marker)
			drawMarker(state.SecondsPos, colors.Marker)
			return nil
		},
	})
	return graph.Execute()
}

// blit uploads the pixmap into the presentation image with alpha
// forced opaque; the coverage alpha the passes wrote is a compositing
// detail, not something the window should see through.
func blit(dst *ebiten.Image, src *clockface.Pixmap, scratch []byte) {
	copy(scratch, src.Data())
	for i := 3; i < len(scratch); i += 4 {
		scratch[i] = 0xFF
	}
	dst.WritePixels(scratch)
}
