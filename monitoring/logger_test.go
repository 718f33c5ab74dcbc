package monitoring

import (
	"bytes"
	"fmt"
	"log"
	"testing"

	"github.com/stretchr/testify/assert"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/phil-mansfield/planegeom/geom"
)

func capture(t *testing.T) *bytes.Buffer {
	buf := &bytes.Buffer{}
	old := Logf
	t.Cleanup(func() { Logf = old })
	SetLogger(func(format string, v ...interface{}) {
		fmt.Fprintf(buf, format, v...)
	})
	return buf
}

func TestSetLoggerNil(t *testing.T) {
	old := Logf
	defer func() { Logf = old }()

	SetLogger(nil)
	assert.NotPanics(t, func() { Logf("ignored %d", 1) })
}

func TestDefaultLogger(t *testing.T) {
	buf := &bytes.Buffer{}
	old := log.Writer()
	log.SetOutput(buf)
	defer log.SetOutput(old)

	Logf("hello %s", "plane")
	assert.Contains(t, buf.String(), "hello plane")
}

func TestNearPlaneLogger(t *testing.T) {
	buf := capture(t)
	NearPlaneLogger(r3.Vec{X: 1, Y: 2, Z: 3}, 1e-6)
	assert.Equal(t,
		"Found very small distance (1e-06) between point (1, 2, 3) and "+
			"plane, assuming point in front of plane, might be wrong",
		buf.String(),
	)
}

func TestNearPlaneLoggerAsHook(t *testing.T) {
	buf := capture(t)

	p, err := geom.New(
		r3.Vec{X: 0, Y: 128, Z: 128},
		r3.Vec{X: 128, Y: 128, Z: 128},
		r3.Vec{X: 128, Y: 0, Z: 128},
	)
	assert.NoError(t, err)

	side := p.SideWarn(r3.Vec{Z: 128 + 1e-6}, NearPlaneLogger)
	assert.Equal(t, geom.Front, side)
	assert.Contains(t, buf.String(), "Found very small distance")

	buf.Reset()
	side = p.SideWarn(r3.Vec{Z: 256}, NearPlaneLogger)
	assert.Equal(t, geom.Front, side)
	assert.Empty(t, buf.String())
}
