// Package camera tracks the viewport offset into the tile world.
package camera

// Focus is anything the camera can centre on.
type Focus interface {
	// Position is the top-left of the nominal footprint.
	Position() (x, y float64)
	// Footprint is the nominal width and height.
	Footprint() (w, h float64)
}

// Camera is a viewport offset clamped to the world extent.
type Camera struct {
	x, y           float64
	viewW, viewH   float64
	worldW, worldH float64
}

// New creates a camera for a viewport of the given pixel size.
func New(viewW, viewH int) *Camera {
	return &Camera{viewW: float64(viewW), viewH: float64(viewH)}
}

// SetWorld sets the world extent in pixels and re-clamps the offset.
func (c *Camera) SetWorld(w, h int) {
	c.worldW = float64(w)
	c.worldH = float64(h)
	c.clamp()
}

// Offset returns the top-left world coordinate of the viewport.
func (c *Camera) Offset() (x, y float64) {
	return c.x, c.y
}

// Viewport returns the viewport size in pixels.
func (c *Camera) Viewport() (w, h float64) {
	return c.viewW, c.viewH
}

// Center places the focus footprint in the middle of the viewport, as far as
// the world edges allow.
func (c *Camera) Center(f Focus) {
	px, py := f.Position()
	fw, fh := f.Footprint()
	c.x = px + fw/2 - c.viewW/2
	c.y = py + fh/2 - c.viewH/2
	c.clamp()
}

// Move shifts the offset by (dx, dy) and clamps.
func (c *Camera) Move(dx, dy float64) {
	c.x += dx
	c.y += dy
	c.clamp()
}

// ToScreen converts a world coordinate to viewport coordinates.
func (c *Camera) ToScreen(wx, wy float64) (sx, sy float64) {
	return wx - c.x, wy - c.y
}

// clamp keeps each axis in [0, world-viewport]; a world smaller than the
// viewport pins the axis to 0.
func (c *Camera) clamp() {
	c.x = clampAxis(c.x, c.worldW-c.viewW)
	c.y = clampAxis(c.y, c.worldH-c.viewH)
}

func clampAxis(v, upper float64) float64 {
	if upper < 0 {
		upper = 0
	}
	return max(0, min(v, upper))
}
