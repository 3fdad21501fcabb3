// Package geom provides the axis-aligned box and float helpers shared by the
// dual-grid octree.
package geom

import (
	"math"

	"github.com/golang/geo/r3"
)

func EqualWithEpsilon(a float64, b float64, epsilon float64) bool {
	return math.Abs(a-b) <= epsilon
}

func InRangeWithEpsilon(value float64, min float64, max float64, epsilon float64) bool {
	return value+epsilon >= min && value-epsilon <= max
}

func VecEqualWithEpsilon(a r3.Vector, b r3.Vector, epsilon float64) bool {
	return math.Abs(a.X-b.X) <= epsilon &&
		math.Abs(a.Y-b.Y) <= epsilon &&
		math.Abs(a.Z-b.Z) <= epsilon
}

// Box is an axis-aligned box spanning Min to Max.
type Box struct {
	Min r3.Vector
	Max r3.Vector
}

func NewBox(min, max r3.Vector) Box {
	return Box{Min: min, Max: max}
}

// Valid reports whether Min is strictly less than Max on every axis.
func (b Box) Valid() bool {
	return b.Min.X < b.Max.X && b.Min.Y < b.Max.Y && b.Min.Z < b.Max.Z
}

func (b Box) Center() r3.Vector {
	return b.Min.Add(b.Max).Mul(0.5)
}

func (b Box) Size() r3.Vector {
	return b.Max.Sub(b.Min)
}

// Contains reports whether p is inside the box, bounds included.
func (b Box) Contains(p r3.Vector) bool {
	return p.X >= b.Min.X && p.X <= b.Max.X &&
		p.Y >= b.Min.Y && p.Y <= b.Max.Y &&
		p.Z >= b.Min.Z && p.Z <= b.Max.Z
}

// Intersects reports whether the two boxes overlap with nonzero volume.
// Boxes that only touch on a face or edge do not intersect.
func (b Box) Intersects(o Box) bool {
	if b.Min.X >= o.Max.X || b.Max.X <= o.Min.X {
		return false
	}
	if b.Min.Y >= o.Max.Y || b.Max.Y <= o.Min.Y {
		return false
	}
	if b.Min.Z >= o.Max.Z || b.Max.Z <= o.Min.Z {
		return false
	}
	return true
}

// Point returns the position at the given fractional coordinates, where
// (0,0,0) is Min and (1,1,1) is Max.
func (b Box) Point(fx, fy, fz float64) r3.Vector {
	size := b.Size()
	return r3.Vector{
		X: b.Min.X + size.X*fx,
		Y: b.Min.Y + size.Y*fy,
		Z: b.Min.Z + size.Z*fz,
	}
}

// Corner returns one of the 8 box corners, each coordinate selected by a
// 0/1 flag.
func (b Box) Corner(x, y, z int) r3.Vector {
	return b.Point(float64(x), float64(y), float64(z))
}

// Octant returns the half-size sub-box at the given 0/1 octant coordinates.
func (b Box) Octant(x, y, z int) Box {
	return Box{
		Min: b.Point(float64(x)/2, float64(y)/2, float64(z)/2),
		Max: b.Point(float64(x+1)/2, float64(y+1)/2, float64(z+1)/2),
	}
}
