package entity

import "fmt"

// BoundingBox is the sub-rectangle of the footprint used for collision and
// camera math. Offsets are relative to the body position.
type BoundingBox struct {
	OffsetX float64
	OffsetY float64
	Width   float64
	Height  float64
}

// NewBoundingBox validates and creates a bounding box.
func NewBoundingBox(offsetX, offsetY, width, height float64) (BoundingBox, error) {
	if width < 0 || height < 0 {
		return BoundingBox{}, fmt.Errorf("bounding box size %vx%v must not be negative", width, height)
	}
	return BoundingBox{OffsetX: offsetX, OffsetY: offsetY, Width: width, Height: height}, nil
}

// WorldRect returns the box in world coordinates for a body at (x, y).
func (bb BoundingBox) WorldRect(x, y float64) (left, top, right, bottom float64) {
	left = x + bb.OffsetX
	top = y + bb.OffsetY
	return left, top, left + bb.Width, top + bb.Height
}

// Body is the spatial part of an actor: position, nominal footprint and bounding box.
type Body struct {
	X, Y          float64
	Width, Height float64 // footprint
	Box           BoundingBox
}

// Center returns the centre of the footprint.
func (b *Body) Center() (float64, float64) {
	return b.X + b.Width/2, b.Y + b.Height/2
}

// Position returns the top-left of the footprint.
func (b *Body) Position() (float64, float64) {
	return b.X, b.Y
}

// Footprint returns the nominal width and height.
func (b *Body) Footprint() (float64, float64) {
	return b.Width, b.Height
}

// SetPosition moves the body to (x, y).
func (b *Body) SetPosition(x, y float64) {
	b.X = x
	b.Y = y
}
