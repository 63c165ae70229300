package raycast

import "math"

// minPerpDistance keeps projected heights finite when the viewer touches a wall.
const minPerpDistance = 1e-6

// Projection converts hit distances into wall-slice heights and shades.
type Projection struct {
	TileSize      float64
	PlaneDistance float64 // (viewportWidth/2) / tan(fov/2)
	ShadeConstant float64
	HeightScale   float64
}

// Slice is the projected wall column for one ray.
type Slice struct {
	PerpDistance float64
	Height       float64
	Shade        float64 // 0 (black) .. 1 (full brightness)
}

// NewProjection derives the projection plane distance from the viewport
// width and horizontal field of view (radians).
func NewProjection(viewportWidth, fov, tileSize, shadeConstant, heightScale float64) (Projection, error) {
	if !(viewportWidth > 0) {
		return Projection{}, configErr("viewport width", "must be positive, got %v", viewportWidth)
	}
	if !(fov > 0 && fov < math.Pi) {
		return Projection{}, configErr("field of view", "must be in (0, π) radians, got %v", fov)
	}
	if !(tileSize > 0) {
		return Projection{}, configErr("tile size", "must be positive, got %v", tileSize)
	}
	if !(shadeConstant > 0) {
		return Projection{}, configErr("shade constant", "must be positive, got %v", shadeConstant)
	}
	if !(heightScale > 0) {
		return Projection{}, configErr("height scale", "must be positive, got %v", heightScale)
	}

	return Projection{
		TileSize:      tileSize,
		PlaneDistance: (viewportWidth / 2) / math.Tan(fov/2),
		ShadeConstant: shadeConstant,
		HeightScale:   heightScale,
	}, nil
}

// PerpendicularDistance removes the fisheye distortion from a ray distance.
func PerpendicularDistance(distance, rayAngle, heading float64) float64 {
	return distance * math.Cos(rayAngle-heading)
}

// Shade maps a perpendicular distance to brightness in [0, 1].
func (p Projection) Shade(perp float64) float64 {
	perp = math.Max(perp, minPerpDistance)
	return math.Max(0, math.Min(1, p.ShadeConstant/perp))
}

// Project computes the wall slice for a hit seen along rayAngle by a viewer
// facing heading.
func (p Projection) Project(hit Hit, rayAngle, heading float64) Slice {
	perp := PerpendicularDistance(hit.Distance, rayAngle, heading)
	d := math.Max(perp, minPerpDistance)

	return Slice{
		PerpDistance: perp,
		Height:       (p.TileSize / d) * p.PlaneDistance * p.HeightScale,
		Shade:        p.Shade(d),
	}
}
