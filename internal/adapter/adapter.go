// ABOUTME: The viewport reconciliation core: region props in, widget center/zoom out
// ABOUTME: Owns center/zoom state, the cached delta ratio, and the event mediator

package adapter

import (
	"math"

	"github.com/harper/mapbridge/internal/geoloc"
	"github.com/harper/mapbridge/internal/locate"
	"github.com/harper/mapbridge/internal/models"
	"github.com/harper/mapbridge/internal/widget"
	"github.com/harper/mapbridge/internal/zoom"
)

// ChangeDetail qualifies an outward region-change callback. Gesture-origin
// changes come from direct user interaction with the widget, as opposed to a
// programmatic region update from the caller.
type ChangeDetail struct {
	IsGesture bool
}

// Options are the mobile-style construction props.
//
// Pointer fields are tri-state: nil means "not specified" and keeps the
// widget default. Extra is the caller's free-form widget options object,
// merged last so caller overrides win over everything computed here.
type Options struct {
	Region        *models.Region
	InitialRegion *models.Region

	ZoomEnabled        *bool
	ZoomControlEnabled *bool
	ZoomTapEnabled     *bool
	MinZoomLevel       *float64
	MaxZoomLevel       *float64

	MapType        widget.MapType
	CustomMapStyle any

	ShowsUserLocation     bool
	ShowsMyLocationButton bool

	Extra widget.Options

	OnMapReady             func()
	OnRegionChange         func(models.Region, ChangeDetail)
	OnRegionChangeComplete func(models.Region, ChangeDetail)
	OnPress                func(widget.ClickEvent)
	OnDoublePress          func(widget.ClickEvent)
}

// Adapter reconciles a region/delta caller with a center/zoom widget.
//
// It is the single source of truth for what the widget renders: external
// region changes overwrite its center/zoom, while gesture-origin changes are
// read back from the widget's own live state and reported outward without
// re-entering the held state. All methods must run on the UI thread.
type Adapter struct {
	w    widget.Widget
	opts Options

	center     models.LatLng
	zoomLevel  int
	deltaRatio float64

	loaded  bool
	settled bool // first post-load idle consumed

	locate *locate.Manager
}

// New builds an adapter over a widget and a geolocation collaborator (nil if
// the platform has none). The viewport initializes from region, falling back
// to initialRegion, falling back to models.DefaultRegion, and the widget's
// construction options are applied immediately.
func New(w widget.Widget, loc geoloc.Locator, opts Options) *Adapter {
	a := &Adapter{w: w, opts: opts}

	initial := models.DefaultRegion
	if opts.InitialRegion != nil {
		initial = *opts.InitialRegion
	}
	if opts.Region != nil {
		initial = *opts.Region
	}
	a.holdRegion(initial)

	a.locate = locate.NewManager(w, loc, opts.ShowsMyLocationButton)
	a.locate.SetEnabled(opts.ShowsUserLocation)

	w.Bind(widget.Handlers{
		Load:        a.onLoad,
		ZoomChanged: a.onZoomChanged,
		Drag:        a.onDrag,
		Idle:        a.onIdle,
		Click:       a.onClick,
		DblClick:    a.onDoubleClick,
	})
	w.SetOptions(a.widgetOptions())
	return a
}

// holdRegion overwrites the held viewport state from an external region.
// The delta ratio is cached here and only here; gesture reads reuse it.
func (a *Adapter) holdRegion(r models.Region) {
	a.center = r.Center()
	a.zoomLevel = zoom.FromLongitudeDelta(r.LongitudeDelta)
	a.deltaRatio = r.DeltaRatio()
}

// SetRegion applies an external region change: a full overwrite of center,
// zoom, and cached ratio, with no merging against widget-observed state.
// Before load the new viewport is folded into the construction options so
// the widget comes up on it; afterwards it is pushed directly.
func (a *Adapter) SetRegion(r models.Region) {
	a.holdRegion(r)
	if !a.loaded {
		a.w.SetOptions(widget.Options{"center": a.center, "zoom": a.zoomLevel})
		return
	}
	z := float64(a.zoomLevel)
	c := a.center
	a.w.MoveCamera(models.CameraUpdate{Center: &c, Zoom: &z})
}

// SetShowsUserLocation toggles the location overlay feature at runtime.
func (a *Adapter) SetShowsUserLocation(enabled bool) {
	a.locate.SetEnabled(enabled)
}

// Close releases held resources: the geolocation watch and the marker.
func (a *Adapter) Close() {
	a.locate.Close()
}

// CurrentRegion reads the widget's live center and zoom and reconstructs a
// region using the cached delta ratio. Before the widget has loaded it
// returns the zero region; the mediator's suppression rules keep that value
// from ever reaching a caller.
func (a *Adapter) CurrentRegion() models.Region {
	if !a.loaded {
		return models.Region{}
	}
	c := a.w.Center()
	z := int(math.Round(a.w.Zoom()))
	latDelta, lngDelta := zoom.ToDeltas(z, a.deltaRatio)
	return models.Region{
		Latitude:       c.Lat,
		Longitude:      c.Lng,
		LatitudeDelta:  latDelta,
		LongitudeDelta: lngDelta,
	}
}

// widgetOptions computes the widget construction options from the mobile
// props. Caller-supplied Extra entries are merged last and win.
func (a *Adapter) widgetOptions() widget.Options {
	opts := widget.Options{
		"center":    a.center,
		"zoom":      a.zoomLevel,
		"mapTypeId": a.opts.MapType.TypeID(),
	}
	if v := a.opts.ZoomEnabled; v != nil {
		opts["scrollwheel"] = *v
		opts["gestureHandling"] = gestureHandling(*v)
	}
	if v := a.opts.ZoomControlEnabled; v != nil {
		opts["zoomControl"] = *v
	}
	if v := a.opts.ZoomTapEnabled; v != nil {
		opts["disableDoubleClickZoom"] = !*v
	}
	if v := a.opts.MinZoomLevel; v != nil {
		opts["minZoom"] = *v
	}
	if v := a.opts.MaxZoomLevel; v != nil {
		opts["maxZoom"] = *v
	}
	if a.opts.CustomMapStyle != nil {
		opts["styles"] = a.opts.CustomMapStyle
	}
	return opts.Merge(a.opts.Extra)
}

func gestureHandling(zoomEnabled bool) string {
	if zoomEnabled {
		return "auto"
	}
	return "none"
}
