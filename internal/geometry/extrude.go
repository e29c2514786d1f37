package geometry

import (
	"slices"

	"github.com/chewxy/math32"
)

// Extrude returns a new buffer where every coordinate of original is pushed away from
// the origin along its own sign by amount. Zero coordinates stay where they are.
func Extrude(original []float32, amount float32) []float32 {
	out := make([]float32, len(original))
	ExtrudeInto(out, original, amount)
	return out
}

// ExtrudeInto writes the extrusion of original into dst. dst must be at least as long
// as original. Each output entry depends only on the matching input entry.
func ExtrudeInto(dst, original []float32, amount float32) {
	for i, v := range original {
		if v == 0 {
			dst[i] = v
			continue
		}
		dst[i] = v + math32.Copysign(amount, v)
	}
}

// Extruder rebuilds a geometry's displayed positions from a snapshot taken once, so
// repeated changes never accumulate drift.
type Extruder struct {
	geometry *Geometry
	original []float32
	amount   float32
}

// NewExtruder snapshots g's current positions as the original buffer.
func NewExtruder(g *Geometry) *Extruder {
	return &Extruder{geometry: g, original: slices.Clone(g.Positions)}
}

// Apply recomputes the displayed positions for amount and flags the geometry for upload.
func (e *Extruder) Apply(amount float32) {
	e.amount = amount
	ExtrudeInto(e.geometry.Positions, e.original, amount)
	e.geometry.NeedsUpdate = true
}

// Recapture replaces the snapshot with g's positions (for example after the geometry was
// regenerated with a different subdivision level) and re-applies the current amount.
func (e *Extruder) Recapture(g *Geometry) {
	e.geometry = g
	e.original = slices.Clone(g.Positions)
	e.Apply(e.amount)
}

// Amount returns the last applied offset.
func (e *Extruder) Amount() float32 {
	return e.amount
}

// Geometry returns the geometry currently being mutated.
func (e *Extruder) Geometry() *Geometry {
	return e.geometry
}

// Original returns a copy of the snapshot.
func (e *Extruder) Original() []float32 {
	return slices.Clone(e.original)
}
