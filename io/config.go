package io

import (
	"fmt"
	"strconv"
	"strings"

	"gonum.org/v1/gonum/spatial/r3"
	"gopkg.in/gcfg.v1"

	"github.com/phil-mansfield/planegeom/geom"
)

const (
	ExampleConfigFile = `#######################
# Plane Definitions   #
#######################

# Each [Plane "name"] section defines a plane through the points A, B, and C.
# The ordering of the points matters: the front of the plane is the side the
# normal, cross(A - B, C - B), points towards. The three points may not lie on
# a single line.
[Plane "floor"]
A = 0 128 128
B = 128 128 128
C = 128 0 128

[Plane "wall"]
A = 128 128 0
B = 128 0 0
C = 128 0 128

[Plane "side"]
A = 128 128 128
B = 0 128 128
C = 0 128 0

#######################
# Classification      #
#######################

[Classify]

# Name of the plane that points are classified against.
Plane = floor

# Points may be listed one per line...
Point = 0 128 128
Point = 256 256 256
Point = 64 64 64

# ...and/or read from a whitespace-separated text file. Columns gives the
# zero-indexed columns holding x, y, and z. Default is 0 1 2.
# PointFile = path/to/points.txt
# Columns = 0 1 2

#######################
# Intersection        #
#######################

[Intersect]

# Exactly three planes, which must meet at a single point.
Plane = floor
Plane = wall
Plane = side`
)

// Point is a position read from a configuration file. It is written as three
// numbers separated by whitespace and/or commas.
type Point [3]float64

// UnmarshalText implements encoding.TextUnmarshaler.
func (pt *Point) UnmarshalText(text []byte) error {
	fields, err := splitTriple(string(text))
	if err != nil { return err }
	for i, f := range fields {
		x, err := strconv.ParseFloat(f, 64)
		if err != nil {
			return fmt.Errorf("Could not parse coordinate '%s' of '%s'.", f, text)
		}
		pt[i] = x
	}
	return nil
}

// Vec converts pt to an r3 vector.
func (pt Point) Vec() r3.Vec { return geom.FromTuple(pt) }

// Columns gives the zero-indexed x, y, and z columns of a point table.
type Columns [3]int

// DefaultColumns are used if a ClassifyConfig doesn't give any.
var DefaultColumns = Columns{0, 1, 2}

// UnmarshalText implements encoding.TextUnmarshaler.
func (cols *Columns) UnmarshalText(text []byte) error {
	fields, err := splitTriple(string(text))
	if err != nil { return err }
	for i, f := range fields {
		col, err := strconv.Atoi(f)
		if err != nil || col < 0 {
			return fmt.Errorf("Column '%s' of '%s' is not a valid index.", f, text)
		}
		cols[i] = col
	}
	return nil
}

func splitTriple(s string) ([]string, error) {
	fields := strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t'
	})
	if len(fields) != 3 {
		return nil, fmt.Errorf(
			"Expected three values in '%s', but found %d.", s, len(fields),
		)
	}
	return fields, nil
}

type PlaneConfig struct {
	// Required
	A, B, C Point

	// Set by CheckInit
	Name  string
	plane geom.Plane
}

func (pc *PlaneConfig) CheckInit(name string) error {
	p, err := geom.New(pc.A.Vec(), pc.B.Vec(), pc.C.Vec())
	if err != nil {
		return fmt.Errorf("Points of Plane '%s' are invalid: %w", name, err)
	}

	pc.Name = name
	pc.plane = p
	return nil
}

// Plane returns the plane built by CheckInit.
func (pc *PlaneConfig) Plane() geom.Plane { return pc.plane }

type ClassifyConfig struct {
	// Required
	Plane string

	// Optional
	Point     []Point
	PointFile string
	Columns   string

	// Set by CheckInit
	cols Columns
}

func (cc *ClassifyConfig) IsSet() bool {
	return cc.Plane != "" || len(cc.Point) > 0 || cc.PointFile != ""
}

func (cc *ClassifyConfig) CheckInit(planes map[string]*PlaneConfig) error {
	if cc.Plane == "" {
		return fmt.Errorf("Need to specify a Plane for [Classify].")
	} else if _, ok := planes[cc.Plane]; !ok {
		return fmt.Errorf("[Classify] refers to unknown Plane '%s'.", cc.Plane)
	} else if len(cc.Point) == 0 && cc.PointFile == "" {
		return fmt.Errorf("Need to specify a Point or a PointFile for [Classify].")
	}

	cc.cols = DefaultColumns
	if cc.Columns != "" {
		if err := cc.cols.UnmarshalText([]byte(cc.Columns)); err != nil {
			return fmt.Errorf("Invalid Columns for [Classify]: %w", err)
		}
	}
	return nil
}

// Points returns the listed points followed by the points in PointFile.
func (cc *ClassifyConfig) Points() ([]r3.Vec, error) {
	vs := make([]r3.Vec, 0, len(cc.Point))
	for _, pt := range cc.Point { vs = append(vs, pt.Vec()) }

	if cc.PointFile != "" {
		fileVs, err := ReadPoints(cc.PointFile, cc.cols)
		if err != nil { return nil, err }
		vs = append(vs, fileVs...)
	}
	return vs, nil
}

type IntersectConfig struct {
	// Required
	Plane []string
}

func (ic *IntersectConfig) IsSet() bool { return len(ic.Plane) > 0 }

func (ic *IntersectConfig) CheckInit(planes map[string]*PlaneConfig) error {
	if len(ic.Plane) != 3 {
		return fmt.Errorf(
			"[Intersect] needs exactly three Planes, but %d were given.",
			len(ic.Plane),
		)
	}
	for _, name := range ic.Plane {
		if _, ok := planes[name]; !ok {
			return fmt.Errorf("[Intersect] refers to unknown Plane '%s'.", name)
		}
	}
	return nil
}

type Config struct {
	Plane     map[string]*PlaneConfig
	Classify  ClassifyConfig
	Intersect IntersectConfig
}

// ReadConfig reads and validates the configuration file fname.
func ReadConfig(fname string) (*Config, error) {
	c := &Config{}
	if err := gcfg.ReadFileInto(c, fname); err != nil {
		return nil, err
	}
	if err := c.CheckInit(); err != nil {
		return nil, err
	}
	return c, nil
}

// ParseConfig reads and validates configuration text.
func ParseConfig(text string) (*Config, error) {
	c := &Config{}
	if err := gcfg.ReadStringInto(c, text); err != nil {
		return nil, err
	}
	if err := c.CheckInit(); err != nil {
		return nil, err
	}
	return c, nil
}

func (c *Config) CheckInit() error {
	if len(c.Plane) == 0 {
		return fmt.Errorf("Need to specify at least one [Plane] section.")
	}
	for name, pc := range c.Plane {
		if err := pc.CheckInit(name); err != nil {
			return err
		}
	}

	if c.Classify.IsSet() {
		if err := c.Classify.CheckInit(c.Plane); err != nil {
			return err
		}
	}
	if c.Intersect.IsSet() {
		if err := c.Intersect.CheckInit(c.Plane); err != nil {
			return err
		}
	}
	return nil
}

// Planes returns every configured plane, keyed by section name.
func (c *Config) Planes() map[string]geom.Plane {
	planes := make(map[string]geom.Plane, len(c.Plane))
	for name, pc := range c.Plane { planes[name] = pc.Plane() }
	return planes
}

// IntersectPlanes returns the three planes named in [Intersect], in order.
func (c *Config) IntersectPlanes() (p1, p2, p3 geom.Plane, err error) {
	if !c.Intersect.IsSet() {
		return p1, p2, p3, fmt.Errorf("No [Intersect] section was given.")
	}
	names := c.Intersect.Plane
	return c.Plane[names[0]].Plane(), c.Plane[names[1]].Plane(),
		c.Plane[names[2]].Plane(), nil
}

// ClassifyPlane returns the plane named in [Classify].
func (c *Config) ClassifyPlane() (geom.Plane, error) {
	if !c.Classify.IsSet() {
		return geom.Plane{}, fmt.Errorf("No [Classify] section was given.")
	}
	return c.Plane[c.Classify.Plane].Plane(), nil
}
