// ABOUTME: Imperative camera handle: the four mobile camera operations over the widget
// ABOUTME: A thin forwarding facade; the adapter keeps exclusive ownership of the widget

package adapter

import (
	"github.com/harper/mapbridge/internal/models"
)

// CameraHandle is the imperative surface handed to callers in place of a
// component ref. It exposes exactly the four mobile camera operations.
type CameraHandle interface {
	GetCamera() models.Camera
	AnimateCamera(models.CameraUpdate)
	SetCamera(models.CameraUpdate)
	AnimateToRegion(models.Region)
}

// Handle returns the adapter's camera handle.
func (a *Adapter) Handle() CameraHandle {
	return cameraHandle{a: a}
}

type cameraHandle struct {
	a *Adapter
}

// GetCamera reads the live camera. Before the widget has loaded it returns
// the zero camera rather than failing. Tilt maps to pitch; altitude is not
// representable by the widget and is always 0.
func (h cameraHandle) GetCamera() models.Camera {
	a := h.a
	if !a.loaded {
		return models.Camera{}
	}
	return models.Camera{
		Center:   a.w.Center(),
		Pitch:    a.w.Tilt(),
		Altitude: 0,
		Heading:  a.w.Heading(),
		Zoom:     a.w.Zoom(),
	}
}

// AnimateCamera and SetCamera both map to the widget's single move-camera
// primitive; the widget has no distinct animated move. Unspecified fields
// keep their current widget value. Writes before load are dropped silently.
func (h cameraHandle) AnimateCamera(u models.CameraUpdate) {
	h.moveCamera(u)
}

func (h cameraHandle) SetCamera(u models.CameraUpdate) {
	h.moveCamera(u)
}

func (h cameraHandle) moveCamera(u models.CameraUpdate) {
	if !h.a.loaded {
		return
	}
	h.a.w.MoveCamera(u)
}

// AnimateToRegion pans to the region's center only. Zoom and deltas are
// intentionally not applied: pan-only semantics, unlike SetCamera.
func (h cameraHandle) AnimateToRegion(r models.Region) {
	if !h.a.loaded {
		return
	}
	h.a.w.PanTo(r.Center())
}
