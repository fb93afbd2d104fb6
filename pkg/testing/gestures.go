package testing

import (
	"fmt"

	"github.com/go-drift/refresh/pkg/graphics"
)

// BeginDrag puts a pointer down on the scroll view.
func (t *Tester) BeginDrag() {
	t.view.BeginDrag()
}

// DragBy moves the pointer by delta. A positive delta pulls the content
// down; bouncing physics resist it past the top edge.
func (t *Tester) DragBy(delta float64) error {
	if !t.view.IsDragging() {
		return fmt.Errorf("DragBy: no drag in progress")
	}
	t.view.Drag(delta)
	return nil
}

// DragTo moves the dragged content to an exact offset, bypassing physics.
func (t *Tester) DragTo(y float64) error {
	if !t.view.IsDragging() {
		return fmt.Errorf("DragTo: no drag in progress")
	}
	t.view.SetContentOffset(graphics.Offset{Y: y})
	return nil
}

// Release lifts the pointer with velocity in offset units per second.
func (t *Tester) Release(velocity float64) error {
	if !t.view.IsDragging() {
		return fmt.Errorf("Release: no drag in progress")
	}
	t.view.EndDrag(velocity)
	return nil
}

// PullTo drags the content to offset y and releases it at rest.
func (t *Tester) PullTo(y float64) error {
	t.BeginDrag()
	if err := t.DragTo(y); err != nil {
		return err
	}
	return t.Release(0)
}
