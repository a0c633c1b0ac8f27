// Package trace is a minimal raytracer: vectors, rays, sphere and plane
// intersection, and lambert shading with one directional light. It backs the
// corridor racer demo and is deliberately small; it is not a rendering
// library.
package trace

import "math"

// Vec3 is a point or direction in 3-space.
type Vec3 struct {
	X, Y, Z float64
}

func (v Vec3) Add(o Vec3) Vec3      { return Vec3{v.X + o.X, v.Y + o.Y, v.Z + o.Z} }
func (v Vec3) Sub(o Vec3) Vec3      { return Vec3{v.X - o.X, v.Y - o.Y, v.Z - o.Z} }
func (v Vec3) Scale(s float64) Vec3 { return Vec3{v.X * s, v.Y * s, v.Z * s} }
func (v Vec3) Dot(o Vec3) float64   { return v.X*o.X + v.Y*o.Y + v.Z*o.Z }
func (v Vec3) Length() float64      { return math.Sqrt(v.Dot(v)) }

// Normalize returns the unit vector in v's direction. The zero vector is
// returned unchanged.
func (v Vec3) Normalize() Vec3 {
	l := v.Length()
	if l == 0 {
		return v
	}
	return v.Scale(1 / l)
}

// Color is an RGB triple with channels in [0, 1].
type Color struct {
	R, G, B float64
}

// Scale multiplies all channels, clamping at 1.
func (c Color) Scale(s float64) Color {
	return Color{min(1, c.R*s), min(1, c.G*s), min(1, c.B*s)}
}

// Ray starts at Origin and extends along the unit Direction.
type Ray struct {
	Origin    Vec3
	Direction Vec3
}

// At returns the point at parameter t along the ray.
func (r Ray) At(t float64) Vec3 { return r.Origin.Add(r.Direction.Scale(t)) }

// Hit records an intersection between a ray and an object.
type Hit struct {
	Point  Vec3
	Normal Vec3
	T      float64
	Color  Color
}

// Object is anything a ray can intersect.
type Object interface {
	// Intersect reports the nearest intersection with r, if any.
	Intersect(r Ray) (Hit, bool)
}

// tMin rejects self-intersections caused by floating point error.
const tMin = 0.001

// Sphere is a solid-colored sphere.
type Sphere struct {
	Center Vec3
	Radius float64
	Color  Color
}

func (s Sphere) Intersect(r Ray) (Hit, bool) {
	oc := r.Origin.Sub(s.Center)
	b := oc.Dot(r.Direction)
	c := oc.Dot(oc) - s.Radius*s.Radius
	disc := b*b - c
	if disc < 0 {
		return Hit{}, false
	}
	sq := math.Sqrt(disc)
	t := -b - sq
	if t < tMin {
		t = -b + sq
	}
	if t < tMin {
		return Hit{}, false
	}
	p := r.At(t)
	return Hit{Point: p, Normal: p.Sub(s.Center).Normalize(), T: t, Color: s.Color}, true
}

// Plane is an infinite solid-colored plane.
type Plane struct {
	Point  Vec3
	Normal Vec3
	Color  Color
}

func (p Plane) Intersect(r Ray) (Hit, bool) {
	t, ok := planeHit(p.Point, p.Normal, r)
	if !ok {
		return Hit{}, false
	}
	return Hit{Point: r.At(t), Normal: p.Normal, T: t, Color: p.Color}, true
}

// CheckeredPlane is a plane with an animated checkerboard pattern. OffsetZ
// shifts the pattern along z, which the racer advances every frame to fake
// forward motion.
type CheckeredPlane struct {
	Point       Vec3
	Normal      Vec3
	Base        Color
	Alt         Color
	CheckerSize float64
	OffsetZ     float64
}

func (p CheckeredPlane) Intersect(r Ray) (Hit, bool) {
	t, ok := planeHit(p.Point, p.Normal, r)
	if !ok {
		return Hit{}, false
	}
	pt := r.At(t)
	cx := int(math.Floor(pt.X / p.CheckerSize))
	cz := int(math.Floor((pt.Z + p.OffsetZ) / p.CheckerSize))
	color := p.Base
	if (cx+cz)%2 != 0 {
		color = p.Alt
	}
	return Hit{Point: pt, Normal: p.Normal, T: t, Color: color}, true
}

func planeHit(point, normal Vec3, r Ray) (float64, bool) {
	denom := normal.Dot(r.Direction)
	if math.Abs(denom) < 1e-4 {
		return 0, false
	}
	t := point.Sub(r.Origin).Dot(normal) / denom
	if t < tMin {
		return 0, false
	}
	return t, true
}

// TraceRay finds the nearest intersection of r among objects and shades it
// with ambient light plus a single directional light. A miss returns black.
func TraceRay(r Ray, objects []Object, lightDir Vec3) Color {
	var nearest Hit
	found := false
	for _, obj := range objects {
		if h, ok := obj.Intersect(r); ok && (!found || h.T < nearest.T) {
			nearest = h
			found = true
		}
	}
	if !found {
		return Color{}
	}
	diffuse := math.Max(0, nearest.Normal.Dot(lightDir))
	return nearest.Color.Scale(0.25 + 0.75*diffuse)
}

// RenderFrame traces one ray per cell of a width x height grid from a camera
// at origin looking down -z with the given vertical field of view, returning
// pixels in row-major order.
func RenderFrame(width, height int, origin Vec3, fov float64, objects []Object, lightDir Vec3) []Color {
	pixels := make([]Color, 0, width*height)
	aspect := float64(width) / float64(height)
	scale := math.Tan(fov / 2)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			px := (2*(float64(x)+0.5)/float64(width) - 1) * aspect * scale
			py := (1 - 2*(float64(y)+0.5)/float64(height)) * scale
			dir := Vec3{px, py, -1}.Normalize()
			pixels = append(pixels, TraceRay(Ray{origin, dir}, objects, lightDir))
		}
	}
	return pixels
}
