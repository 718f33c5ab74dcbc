package main

import (
	"fmt"

	"github.com/fatih/color"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/phil-mansfield/planegeom/geom"
)

var (
	sideColors = map[geom.Side]*color.Color{
		geom.Front:   color.New(color.FgBlue, color.Bold),
		geom.Back:    color.New(color.FgYellow, color.Bold),
		geom.OnPlane: color.New(color.FgGreen, color.Bold),
	}
	errorColor = color.New(color.FgRed, color.Bold)
	labelColor = color.New(color.FgWhite, color.Bold)
)

// badge returns the padded, coloured name of side.
func badge(side geom.Side) string {
	name := fmt.Sprintf("%-8s", side)
	if c, ok := sideColors[side]; ok { return c.Sprint(name) }
	return name
}

func vecString(v r3.Vec) string {
	return fmt.Sprintf("(%g, %g, %g)", v.X, v.Y, v.Z)
}
