package render

import (
	plt "github.com/phil-mansfield/pyplot"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/phil-mansfield/planegeom/geom"
)

var pyplotColors = map[geom.Side]string{
	geom.Front:   "SteelBlue",
	geom.Back:    "DarkOrange",
	geom.OnPlane: "SeaGreen",
}

// Pyplot queues a matplotlib scatter plot of vs, coloured by side, which will
// be saved to fname. Nothing is drawn until Execute is called.
func Pyplot(
	fname string, p geom.Plane, vs []r3.Vec, sides []geom.Side, proj Projection,
) error {
	series, err := Split(vs, sides, proj)
	if err != nil { return err }

	plt.Figure(plt.FigSize(8, 8))
	for _, s := range series {
		plt.Plot(s.Xs, s.Ys, "o", plt.C(pyplotColors[s.Side]))
	}

	xLabel, yLabel := proj.Labels()
	plt.Title(p.String())
	plt.XLabel(xLabel, plt.FontSize(16))
	plt.YLabel(yLabel, plt.FontSize(16))
	plt.SaveFig(fname)
	return nil
}

// Execute runs every queued pyplot command.
func Execute() { plt.Execute() }
