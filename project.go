package cadence

import (
	"math"
	"sort"
)

// Camera3D orients the orthographic fallback projection used by the 3D plot
// elements. Elev rotates about the screen-X axis and Azim about the screen-Z
// axis, both in degrees. Scale converts 3D units to canvas units and Center
// is where the 3D origin lands on the canvas.
type Camera3D struct {
	Elev, Azim float64
	Scale      float64
	Center     Vec2
}

// Projected pairs a projected canvas position with its depth and the index
// of the source point, so recipes can recover per-point data after sorting.
type Projected struct {
	Pos   Vec2
	Depth float64
	Index int
}

// Project rotates p about Z by Azim, then about X by Elev, and projects the
// result orthographically. 3D-Z maps to screen-up. The returned depth grows
// toward the viewer; the origin projects to Center with depth 0 for any
// camera angles.
func (c Camera3D) Project(p Point3) (Vec2, float64) {
	az := c.Azim * math.Pi / 180
	el := c.Elev * math.Pi / 180
	sa, ca := math.Sincos(az)
	se, ce := math.Sincos(el)

	x1 := p.X*ca - p.Y*sa
	y1 := p.X*sa + p.Y*ca
	z1 := p.Z

	x2 := x1
	y2 := y1*ce - z1*se
	z2 := y1*se + z1*ce

	pos := Vec2{X: c.Center.X + x2*c.Scale, Y: c.Center.Y + z2*c.Scale}
	return pos, y2
}

// ProjectAll projects every point and returns them ordered back-to-front,
// ready for painter's-algorithm drawing: iterate the result and the nearest
// points draw last, occluding farther ones.
func (c Camera3D) ProjectAll(points []Point3) []Projected {
	out := make([]Projected, len(points))
	for i, p := range points {
		pos, depth := c.Project(p)
		out[i] = Projected{Pos: pos, Depth: depth, Index: i}
	}
	SortByDepth(out)
	return out
}

// SortByDepth orders projected points ascending by depth. The sort is
// stable, so equal-depth points keep their original order.
func SortByDepth(ps []Projected) {
	sort.SliceStable(ps, func(i, j int) bool {
		return ps[i].Depth < ps[j].Depth
	})
}

// Rotated returns a copy of the camera with its azimuth advanced by
// global*speed degrees, wrapped to [0, 360). This drives camera auto-rotation
// for elements with RotateCamera set; keying rotation to the global progress
// keeps it deterministic under scrubbing.
func (c Camera3D) Rotated(global, speed float64) Camera3D {
	c.Azim = math.Mod(c.Azim+global*speed, 360)
	if c.Azim < 0 {
		c.Azim += 360
	}
	return c
}
