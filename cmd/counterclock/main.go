// Command counterclock shows the mechanical counter face: six digit
// wheels for HH MM SS, each rolling forward to its next digit at the
// start of the second.
package main

import (
	"flag"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/gogpu/clockface"
	"github.com/gogpu/clockface/clock"
	"github.com/gogpu/clockface/render"
	"github.com/gogpu/clockface/sprite"
)

// The counter face is laid out for a 2:1 drawspace.
var counterExtent = clockface.V2(2, 1)

// Card material. Ink alpha from the sprite sheet blends the glyph
// white over the dark card paper.
var paper = clockface.RGB(0.13, 0.13, 0.15)

const inkBrightness = 0.92

func main() {
	var (
		width   = flag.Int("width", 960, "window width in pixels")
		height  = flag.Int("height", 480, "window height in pixels")
		verbose = flag.Bool("v", false, "log render passes")
	)
	flag.Parse()

	if *verbose {
		clockface.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	ebiten.SetWindowTitle("counterclock")
	ebiten.SetWindowSize(*width, *height)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	if err := ebiten.RunGame(&game{sheet: sprite.DigitSheet()}); err != nil {
		log.Fatal(err)
	}
}

type game struct {
	sheet *clockface.Pixmap

	frame   *render.Target
	present *ebiten.Image
	scratch []byte
}

func (g *game) Update() error { return nil }

func (g *game) Draw(screen *ebiten.Image) {
	w, h := screen.Bounds().Dx(), screen.Bounds().Dy()
	g.resize(w, h)

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

func (g *game) resize(w, h int) {
	if g.frame != nil && g.frame.Width() == w && g.frame.Height() == h {
		return
	}
	g.frame = render.NewDepthTarget("frame", w, h)
	g.scratch = make([]byte, w*h*4)
	if g.present != nil {
		g.present.Deallocate()
	}
	g.present = ebiten.NewImage(w, h)
}

// renderFrame draws all sixty digit cards in one pass through the
// shared wheel camera, depth tested so the front of each drum wins.
func (g *game) renderFrame(now time.Time) error {
	scales := clockface.NewDrawspaceScales(
		clockface.V2(float32(g.frame.Width()), float32(g.frame.Height())),
		counterExtent)
	camera := render.WheelCamera(scales)
	live := clock.WheelAnglesAt(now)

	var graph render.Graph
	graph.Add(&render.FuncPass{
		PassName: "wheel cards",
		Write:    []*render.Target{g.frame},
		Run: func() error {
			g.frame.ClearColor(clockface.Black)
			g.frame.ClearDepth()

			for i := uint32(0); i < sprite.CardInstances; i++ {
				card := sprite.Decompose(i)
				quad := card.CardQuad(&live)

				verts := make([]render.Vertex3D, 4)
				for j, v := range quad {
					verts[j] = render.Vertex3D{
						Clip: camera.Transform(render.Vec3{
							X: v.Pos[0], Y: v.Pos[1], Z: v.Pos[2],
						}),
						UV: v.UV,
						// Normalized vertical offset from the drum equator.
						Shade: float32(1 - 2*(j%2)),
					}
				}

				render.DrawStrip3D(g.frame, verts,
					func(uv clockface.Vec2, equator float32) clockface.RGBA {
						ink := g.sheet.Sample(uv.X, uv.Y)
						s := sprite.EquatorShade(equator)
						return clockface.RGBA{
							R: (paper.R + (inkBrightness-paper.R)*ink.A) * s,
							G: (paper.G + (inkBrightness-paper.G)*ink.A) * s,
							B: (paper.B + (inkBrightness-paper.B)*ink.A) * s,
							A: 1,
						}
					}, render.BlendReplace)
			}
			return nil
		},
	})
	return graph.Execute()
}
