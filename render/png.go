package render

import (
	"image/color"

	"gonum.org/v1/gonum/spatial/r3"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/phil-mansfield/planegeom/geom"
)

const pngWidth = 6 * vg.Inch

var pngColors = map[geom.Side]color.Color{
	geom.Front:   color.RGBA{R: 0x2c, G: 0x7f, B: 0xb8, A: 0xff},
	geom.Back:    color.RGBA{R: 0xd9, G: 0x5f, B: 0x0e, A: 0xff},
	geom.OnPlane: color.RGBA{R: 0x31, G: 0xa3, B: 0x54, A: 0xff},
}

// SavePNG writes a scatter plot of vs, coloured by side, to fname. The file
// extension selects the image format, as in plot.Plot.Save.
func SavePNG(
	fname string, p geom.Plane, vs []r3.Vec, sides []geom.Side, proj Projection,
) error {
	series, err := Split(vs, sides, proj)
	if err != nil { return err }

	fig := plot.New()
	fig.Title.Text = p.String()
	fig.X.Label.Text, fig.Y.Label.Text = proj.Labels()

	for _, s := range series {
		xys := make(plotter.XYs, len(s.Xs))
		for i := range xys {
			xys[i].X, xys[i].Y = s.Xs[i], s.Ys[i]
		}

		sc, err := plotter.NewScatter(xys)
		if err != nil { return err }
		sc.GlyphStyle.Color = pngColors[s.Side]
		sc.GlyphStyle.Shape = draw.CircleGlyph{}

		fig.Add(sc)
		fig.Legend.Add(s.Side.String(), sc)
	}

	return fig.Save(pngWidth, pngWidth, fname)
}
