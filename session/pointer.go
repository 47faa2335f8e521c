package session

import "github.com/gogpu/paint"

// Pointer turns raw pointer gestures into scene operations.
//
//   - Down begins a shape unless one is in progress.
//   - Up adds the release point. Two-point kinds are committed right away;
//     Polygon and Polyline keep collecting vertices.
//   - DoubleClick commits the shape in progress.
//   - Move previews the shape with the pointer as its next vertex.
//
// A double click also delivers its two clicks, so Up skips a vertex equal
// to the previous one on multi-vertex shapes.
type Pointer struct {
	scene *paint.Scene
}

// NewPointer returns a Pointer driving scene.
func NewPointer(scene *paint.Scene) *Pointer {
	return &Pointer{scene: scene}
}

// Down handles a button press at p.
func (ptr *Pointer) Down(p paint.Point) {
	if !ptr.scene.Active() {
		ptr.scene.BeginShape(p)
	}
}

// Up handles a button release at p.
func (ptr *Pointer) Up(p paint.Point) {
	sh, ok := ptr.scene.InProgress()
	if !ok {
		return
	}
	if !sh.Kind.MultiVertex() {
		ptr.scene.ExtendShape(p)
		ptr.scene.CommitShape()
		return
	}
	if sh.Points[len(sh.Points)-1] != p {
		ptr.scene.ExtendShape(p)
	}
}

// DoubleClick handles a double click.
func (ptr *Pointer) DoubleClick() {
	ptr.scene.CommitShape()
}

// Move handles pointer motion to p.
func (ptr *Pointer) Move(p paint.Point) {
	ptr.scene.PreviewShape(p)
}
