package camfx

import "math"

// Vec3 is a point in world coordinates.
type Vec3 struct {
	X, Y, Z float64
}

// Sub returns v - o.
func (v Vec3) Sub(o Vec3) Vec3 {
	return Vec3{v.X - o.X, v.Y - o.Y, v.Z - o.Z}
}

// Len returns the Euclidean length of v.
func (v Vec3) Len() float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y + v.Z*v.Z)
}

// Zone is a spatial trigger volume carrying an override parameter set.
// The host owns zones and supplies them in a stable order.
type Zone interface {
	// ContainsPoint reports whether p lies inside the zone volume.
	ContainsPoint(p Vec3) bool

	// EffectParameters returns the zone's full parameter set.
	EffectParameters() Params
}

// Resolve returns the parameter set for a camera at pos.
//
// It starts from def and walks zones in order; every zone containing pos
// replaces the whole working set with its own. The last matching zone in
// enumeration order therefore wins, and there is no per-field merge. If no
// zone matches, def is returned unchanged. Nil zones are skipped.
func Resolve(pos Vec3, def Params, zones []Zone) Params {
	params := def
	for _, z := range zones {
		if z == nil {
			continue
		}
		if z.ContainsPoint(pos) {
			params = z.EffectParameters()
		}
	}
	return params
}

// BoxZone is an axis-aligned box zone. Bounds are inclusive.
type BoxZone struct {
	Name   string
	Min    Vec3
	Max    Vec3
	Params Params
}

// ContainsPoint implements Zone.
func (z *BoxZone) ContainsPoint(p Vec3) bool {
	return p.X >= z.Min.X && p.X <= z.Max.X &&
		p.Y >= z.Min.Y && p.Y <= z.Max.Y &&
		p.Z >= z.Min.Z && p.Z <= z.Max.Z
}

// EffectParameters implements Zone.
func (z *BoxZone) EffectParameters() Params {
	return z.Params
}

// SphereZone is a ball zone. Points on the surface are inside.
type SphereZone struct {
	Name   string
	Center Vec3
	Radius float64
	Params Params
}

// ContainsPoint implements Zone.
func (z *SphereZone) ContainsPoint(p Vec3) bool {
	return p.Sub(z.Center).Len() <= z.Radius
}

// EffectParameters implements Zone.
func (z *SphereZone) EffectParameters() Params {
	return z.Params
}
