// ABOUTME: User-location overlay manager: marker lifecycle driven by a geolocation watch
// ABOUTME: States run disabled -> no-fix-yet -> tracking; every disable path releases the watch

package locate

import (
	"github.com/harper/mapbridge/internal/geoloc"
	"github.com/harper/mapbridge/internal/models"
	"github.com/harper/mapbridge/internal/widget"
)

// markerLabel names the synthesized current-location marker.
const markerLabel = "You are here"

// Manager owns the synthesized current-location marker and the locate-me
// control. It reads the widget instance but never touches the viewport state
// the adapter holds; activating it only pans the widget.
type Manager struct {
	w   widget.Widget
	loc geoloc.Locator

	showButton bool
	button     *Button

	loaded      bool
	wantEnabled bool
	active      bool

	watch    geoloc.WatchID
	watching bool

	marker  widget.Marker
	lastFix models.LatLng
	hasFix  bool
}

// NewManager creates a manager bound to a widget and a locator. A nil
// locator means the platform has no geolocation capability; the feature then
// behaves as permanently disabled with no outward signal.
func NewManager(w widget.Widget, loc geoloc.Locator, showButton bool) *Manager {
	return &Manager{w: w, loc: loc, showButton: showButton}
}

// WidgetLoaded is invoked once by the event mediator's load handler. The
// locate-me control is constructed here, exactly once, and never removed for
// the widget's lifetime. If tracking was requested before load it starts now.
func (m *Manager) WidgetLoaded() {
	if m.loaded {
		return
	}
	m.loaded = true
	if m.showButton && m.button == nil {
		m.button = NewButton(m.press)
		m.w.AddControl(m.button)
	}
	if m.wantEnabled {
		m.start()
	}
}

// SetEnabled turns continuous tracking on or off. Before the widget has
// loaded the request is remembered and applied at load time.
func (m *Manager) SetEnabled(enabled bool) {
	m.wantEnabled = enabled
	if !m.loaded {
		return
	}
	if enabled {
		m.start()
	} else {
		m.stop()
	}
}

// Close tears the feature down: the watch is released and the marker removed.
func (m *Manager) Close() {
	m.stop()
}

// Tracking reports whether at least one fix has been received while enabled.
func (m *Manager) Tracking() bool { return m.active && m.marker != nil }

func (m *Manager) start() {
	if m.active || m.loc == nil {
		return
	}
	m.active = true
	// One-shot for a quick first fix, watch for everything after. Both may
	// complete in any order; handleFix copes either way.
	m.loc.CurrentPosition(geoloc.EnableOptions, m.handleFix, m.swallow)
	m.watch = m.loc.WatchPosition(geoloc.WatchOptions, m.handleFix, m.swallow)
	m.watching = true
}

func (m *Manager) stop() {
	if m.watching {
		m.loc.ClearWatch(m.watch)
		m.watching = false
	}
	m.active = false
	m.hasFix = false
	if m.marker != nil {
		m.marker.Remove()
		m.marker = nil
	}
}

// handleFix places or moves the marker. A one-shot request cannot be
// cancelled mid-flight, so a result may arrive after the feature was
// disabled; the active check discards it.
func (m *Manager) handleFix(fix geoloc.Fix) {
	if !m.active {
		return
	}
	m.lastFix = fix.Position
	m.hasFix = true
	if m.marker == nil {
		m.marker = m.w.AddMarker(widget.MarkerOptions{
			Position: fix.Position,
			Label:    markerLabel,
		})
		return
	}
	m.marker.SetPosition(fix.Position)
}

// swallow is the failure sink for all geolocation errors. The mobile API
// degrades without location rather than surfacing a hard error; an active
// watch retries on its own cadence.
func (m *Manager) swallow(error) {}

// press handles the locate-me control. With a marker on the map it pans to
// the last known fix without spending a location request. Otherwise it asks
// for a fresh fix, keeping the control disabled for the duration.
func (m *Manager) press() {
	if m.hasFix && m.marker != nil {
		m.w.PanTo(m.lastFix)
		return
	}
	if m.loc == nil {
		return
	}
	m.button.setEnabled(false)
	m.loc.CurrentPosition(geoloc.FreshOptions,
		func(fix geoloc.Fix) {
			m.w.PanTo(fix.Position)
			m.button.setEnabled(true)
		},
		func(error) {
			m.button.setEnabled(true)
		})
}
