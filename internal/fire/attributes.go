package fire

import "github.com/go-gl/mathgl/mgl32"

// Attributes is the per-frame render snapshot: four parallel sequences with
// one entry per live particle, in back-to-front order. Each snapshot owns its
// slices, so it may be handed to a renderer without synchronisation.
type Attributes struct {
	Positions []mgl32.Vec3 // world space
	Sizes     []float32
	Colors    []mgl32.Vec4 // r, g, b, alpha
	Angles    []float32
}

// Len returns the number of particles in the snapshot.
func (a Attributes) Len() int { return len(a.Sizes) }

// Flatten copies ps into a fresh Attributes, offsetting positions by anchor.
func Flatten(ps []Particle, anchor mgl32.Vec3) Attributes {
	out := Attributes{
		Positions: make([]mgl32.Vec3, len(ps)),
		Sizes:     make([]float32, len(ps)),
		Colors:    make([]mgl32.Vec4, len(ps)),
		Angles:    make([]float32, len(ps)),
	}
	for i := range ps {
		p := &ps[i]
		out.Positions[i] = p.Position.Add(anchor)
		out.Sizes[i] = p.CurrentSize
		out.Colors[i] = mgl32.Vec4{float32(p.Color.R), float32(p.Color.G), float32(p.Color.B), p.Alpha}
		out.Angles[i] = p.Rotation
	}
	return out
}

// MergeSorted combines snapshots that are each already sorted farthest-first
// from viewer into one snapshot with the same ordering.
func MergeSorted(viewer mgl32.Vec3, parts ...Attributes) Attributes {
	total := 0
	for _, p := range parts {
		total += p.Len()
	}
	out := Attributes{
		Positions: make([]mgl32.Vec3, 0, total),
		Sizes:     make([]float32, 0, total),
		Colors:    make([]mgl32.Vec4, 0, total),
		Angles:    make([]float32, 0, total),
	}
	heads := make([]int, len(parts))
	for len(out.Sizes) < total {
		best := -1
		var bestDist float32
		for k, p := range parts {
			if heads[k] >= p.Len() {
				continue
			}
			d := p.Positions[heads[k]].Sub(viewer).LenSqr()
			if best < 0 || d > bestDist {
				best, bestDist = k, d
			}
		}
		p, i := parts[best], heads[best]
		out.Positions = append(out.Positions, p.Positions[i])
		out.Sizes = append(out.Sizes, p.Sizes[i])
		out.Colors = append(out.Colors, p.Colors[i])
		out.Angles = append(out.Angles, p.Angles[i])
		heads[best]++
	}
	return out
}
