// ABOUTME: Collaborator contract for the underlying web map widget
// ABOUTME: Defines the event, camera, marker, and control surfaces the adapter drives

package widget

import "github.com/harper/mapbridge/internal/models"

// MapType is the mobile-style map type enum.
type MapType string

const (
	MapTypeStandard  MapType = "standard"
	MapTypeSatellite MapType = "satellite"
	MapTypeHybrid    MapType = "hybrid"
	MapTypeTerrain   MapType = "terrain"
)

// TypeID translates the mobile map type to the widget's type identifier.
// Unknown values fall back to the standard road map.
func (t MapType) TypeID() string {
	switch t {
	case MapTypeSatellite:
		return "satellite"
	case MapTypeHybrid:
		return "hybrid"
	case MapTypeTerrain:
		return "terrain"
	default:
		return "roadmap"
	}
}

// Options is the widget's free-form construction/options object.
type Options map[string]any

// Merge returns a copy of o with over's entries applied on top.
// Caller-supplied options always win over computed defaults.
func (o Options) Merge(over Options) Options {
	merged := make(Options, len(o)+len(over))
	for k, v := range o {
		merged[k] = v
	}
	for k, v := range over {
		merged[k] = v
	}
	return merged
}

// Handlers carries the event callbacks the adapter binds to the widget.
// Nil entries are simply not invoked.
type Handlers struct {
	Load        func()
	ZoomChanged func()
	Drag        func()
	Idle        func()
	Click       func(ClickEvent)
	DblClick    func(ClickEvent)
}

// ClickEvent is the widget's click payload. It carries less information than
// the mobile press event shape; the adapter forwards it as-is.
type ClickEvent struct {
	Position models.LatLng
}

// Marker is a handle to an overlay placed on the widget. Position updates
// move the existing overlay in place.
type Marker interface {
	SetPosition(models.LatLng)
	Remove()
}

// MarkerOptions configures a new marker.
type MarkerOptions struct {
	Position models.LatLng
	Label    string
}

// Control is a custom element injected into the widget's control surface.
// The widget invokes Press on user interaction while Enabled reports true.
type Control interface {
	Label() string
	Enabled() bool
	Press()
}

// Widget is the underlying web map collaborator. All reads reflect the
// widget's live state; before Load has fired they return zero values.
type Widget interface {
	Bind(Handlers)
	Center() models.LatLng
	Zoom() float64
	Tilt() float64
	Heading() float64
	PanTo(models.LatLng)
	MoveCamera(models.CameraUpdate)
	SetOptions(Options)
	AddMarker(MarkerOptions) Marker
	AddControl(Control)
}
