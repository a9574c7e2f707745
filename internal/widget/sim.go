// ABOUTME: In-memory widget implementation for the simulator CLI, MCP server, and tests
// ABOUTME: Reproduces the real widget's startup quirks (early zoom-changed, post-load idle)

package widget

import (
	"github.com/google/uuid"

	"github.com/harper/mapbridge/internal/models"
)

// Sim is an in-memory Widget. It keeps the live center/zoom state the way
// the real widget does and lets callers replay gestures against it.
type Sim struct {
	center  models.LatLng
	zoom    float64
	tilt    float64
	heading float64
	loaded  bool

	handlers Handlers
	opts     Options
	markers  map[uuid.UUID]*simMarker
	controls []Control
}

// NewSim creates an unloaded simulated widget with the given construction
// options. Nothing is readable until Load is called.
func NewSim(opts Options) *Sim {
	return &Sim{
		opts:    opts,
		markers: make(map[uuid.UUID]*simMarker),
	}
}

// Load brings the widget up the way the real one does: a spurious
// zoom-changed event fires during initialization, then the load event, then
// one idle event that no user gesture caused.
func (s *Sim) Load() {
	if s.loaded {
		return
	}
	if s.handlers.ZoomChanged != nil {
		s.handlers.ZoomChanged()
	}

	if c, ok := s.opts["center"].(models.LatLng); ok {
		s.center = c
	}
	if z, ok := s.opts["zoom"].(float64); ok {
		s.zoom = z
	}
	if z, ok := s.opts["zoom"].(int); ok {
		s.zoom = float64(z)
	}
	s.loaded = true

	if s.handlers.Load != nil {
		s.handlers.Load()
	}
	if s.handlers.Idle != nil {
		s.handlers.Idle()
	}
}

// Loaded reports whether Load has completed.
func (s *Sim) Loaded() bool { return s.loaded }

func (s *Sim) Bind(h Handlers)         { s.handlers = h }
func (s *Sim) Center() models.LatLng   { return s.center }
func (s *Sim) Zoom() float64           { return s.zoom }
func (s *Sim) Tilt() float64           { return s.tilt }
func (s *Sim) Heading() float64        { return s.heading }
func (s *Sim) PanTo(p models.LatLng)   { s.center = p }
func (s *Sim) SetOptions(opts Options) { s.opts = s.opts.Merge(opts) }

func (s *Sim) MoveCamera(u models.CameraUpdate) {
	if u.Center != nil {
		s.center = *u.Center
	}
	if u.Zoom != nil {
		s.zoom = *u.Zoom
	}
	if u.Pitch != nil {
		s.tilt = *u.Pitch
	}
	if u.Heading != nil {
		s.heading = *u.Heading
	}
}

// Options returns the widget's current merged options object.
func (s *Sim) Options() Options { return s.opts }

// DragBy replays a drag gesture: the widget moves its own center, then
// reports the drag. This ordering matters: by the time the event fires the
// widget's live state already reflects the motion.
func (s *Sim) DragBy(dLat, dLng float64) {
	s.center.Lat += dLat
	s.center.Lng += dLng
	if s.loaded && s.handlers.Drag != nil {
		s.handlers.Drag()
	}
}

// ZoomTo replays a zoom gesture.
func (s *Sim) ZoomTo(z float64) {
	s.zoom = z
	if s.handlers.ZoomChanged != nil {
		s.handlers.ZoomChanged()
	}
}

// Settle replays the idle event the widget fires when motion stops.
func (s *Sim) Settle() {
	if s.handlers.Idle != nil {
		s.handlers.Idle()
	}
}

// ClickAt replays a click at a position.
func (s *Sim) ClickAt(p models.LatLng) {
	if s.handlers.Click != nil {
		s.handlers.Click(ClickEvent{Position: p})
	}
}

// DoubleClickAt replays a double click at a position.
func (s *Sim) DoubleClickAt(p models.LatLng) {
	if s.handlers.DblClick != nil {
		s.handlers.DblClick(ClickEvent{Position: p})
	}
}

type simMarker struct {
	id    uuid.UUID
	owner *Sim
	pos   models.LatLng
	label string
}

func (m *simMarker) SetPosition(p models.LatLng) { m.pos = p }

func (m *simMarker) Remove() { delete(m.owner.markers, m.id) }

func (s *Sim) AddMarker(opts MarkerOptions) Marker {
	m := &simMarker{
		id:    uuid.New(),
		owner: s,
		pos:   opts.Position,
		label: opts.Label,
	}
	s.markers[m.id] = m
	return m
}

// MarkerCount returns how many markers are currently on the widget.
func (s *Sim) MarkerCount() int { return len(s.markers) }

// MarkerPositions returns the positions of all current markers.
func (s *Sim) MarkerPositions() []models.LatLng {
	positions := make([]models.LatLng, 0, len(s.markers))
	for _, m := range s.markers {
		positions = append(positions, m.pos)
	}
	return positions
}

func (s *Sim) AddControl(c Control) {
	s.controls = append(s.controls, c)
}

// Controls returns the controls attached to the widget's control surface.
func (s *Sim) Controls() []Control { return s.controls }

// PressControl simulates a user pressing the named control. Presses on a
// disabled control are ignored, as a disabled DOM button would ignore them.
func (s *Sim) PressControl(label string) bool {
	for _, c := range s.controls {
		if c.Label() == label {
			if !c.Enabled() {
				return false
			}
			c.Press()
			return true
		}
	}
	return false
}
