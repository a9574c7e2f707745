// ABOUTME: Unit tests for the location overlay manager state machine
// ABOUTME: Marker lifecycle, watch release on every disable path, late-fix discard

package locate

import (
	"fmt"
	"testing"

	"github.com/google/uuid"

	"github.com/harper/mapbridge/internal/geoloc"
	"github.com/harper/mapbridge/internal/models"
	"github.com/harper/mapbridge/internal/widget"
)

// request is a captured geolocation request with its delivery callbacks.
type request struct {
	opts    geoloc.RequestOptions
	success func(geoloc.Fix)
	failure func(error)
}

// fakeLocator records requests and lets tests deliver results on demand.
type fakeLocator struct {
	oneShots []request
	watches  map[geoloc.WatchID]request
	cleared  []geoloc.WatchID
}

func newFakeLocator() *fakeLocator {
	return &fakeLocator{watches: make(map[geoloc.WatchID]request)}
}

func (f *fakeLocator) CurrentPosition(opts geoloc.RequestOptions, success func(geoloc.Fix), failure func(error)) {
	f.oneShots = append(f.oneShots, request{opts: opts, success: success, failure: failure})
}

func (f *fakeLocator) WatchPosition(opts geoloc.RequestOptions, success func(geoloc.Fix), failure func(error)) geoloc.WatchID {
	id := uuid.New()
	f.watches[id] = request{opts: opts, success: success, failure: failure}
	return id
}

func (f *fakeLocator) ClearWatch(id geoloc.WatchID) {
	delete(f.watches, id)
	f.cleared = append(f.cleared, id)
}

func (f *fakeLocator) deliverWatch(pos models.LatLng) {
	for _, w := range f.watches {
		w.success(geoloc.Fix{Position: pos, Accuracy: 5})
	}
}

func fix(lat, lng float64) geoloc.Fix {
	return geoloc.Fix{Position: models.LatLng{Lat: lat, Lng: lng}, Accuracy: 5}
}

func enabledManager(t *testing.T) (*Manager, *widget.Sim, *fakeLocator) {
	t.Helper()
	sim := widget.NewSim(nil)
	loc := newFakeLocator()
	m := NewManager(sim, loc, true)
	m.SetEnabled(true)
	m.WidgetLoaded()
	return m, sim, loc
}

func TestEnableIssuesOneShotAndWatch(t *testing.T) {
	_, _, loc := enabledManager(t)

	if len(loc.oneShots) != 1 {
		t.Fatalf("expected one immediate position request, got %d", len(loc.oneShots))
	}
	if got := loc.oneShots[0].opts; got != geoloc.EnableOptions {
		t.Errorf("enable-time one-shot should use EnableOptions, got %+v", got)
	}
	if len(loc.watches) != 1 {
		t.Fatalf("expected one continuous watch, got %d", len(loc.watches))
	}
	for _, w := range loc.watches {
		if w.opts != geoloc.WatchOptions {
			t.Errorf("watch should use WatchOptions, got %+v", w.opts)
		}
	}
}

func TestEnableBeforeLoadDeferred(t *testing.T) {
	sim := widget.NewSim(nil)
	loc := newFakeLocator()
	m := NewManager(sim, loc, false)

	m.SetEnabled(true)
	if len(loc.oneShots) != 0 || len(loc.watches) != 0 {
		t.Fatal("no geolocation work may start before the widget loads")
	}

	m.WidgetLoaded()
	if len(loc.oneShots) != 1 || len(loc.watches) != 1 {
		t.Error("deferred enable must start at load time")
	}
}

func TestFirstFixCreatesMarker(t *testing.T) {
	_, sim, loc := enabledManager(t)

	loc.deliverWatch(models.LatLng{Lat: 41.8781, Lng: -87.6298})

	if got := sim.MarkerCount(); got != 1 {
		t.Fatalf("first fix must create exactly one marker, got %d", got)
	}
}

func TestSecondFixRepositionsMarker(t *testing.T) {
	_, sim, loc := enabledManager(t)

	loc.deliverWatch(models.LatLng{Lat: 41, Lng: -87})
	loc.deliverWatch(models.LatLng{Lat: 42, Lng: -88})

	if got := sim.MarkerCount(); got != 1 {
		t.Fatalf("subsequent fixes must reposition, not recreate: %d markers", got)
	}
	pos := sim.MarkerPositions()[0]
	if pos.Lat != 42 || pos.Lng != -88 {
		t.Errorf("marker should sit at the latest fix, got %+v", pos)
	}
}

func TestDisableRemovesMarkerAndReleasesWatch(t *testing.T) {
	m, sim, loc := enabledManager(t)
	loc.deliverWatch(models.LatLng{Lat: 41, Lng: -87})

	m.SetEnabled(false)

	if got := sim.MarkerCount(); got != 0 {
		t.Errorf("disable must remove the marker, %d left", got)
	}
	if len(loc.watches) != 0 || len(loc.cleared) != 1 {
		t.Errorf("disable must release the watch handle: %d live, %d cleared", len(loc.watches), len(loc.cleared))
	}
}

func TestCloseReleasesWatch(t *testing.T) {
	m, sim, loc := enabledManager(t)
	loc.deliverWatch(models.LatLng{Lat: 41, Lng: -87})

	m.Close()

	if len(loc.watches) != 0 {
		t.Error("teardown must release the watch handle")
	}
	if sim.MarkerCount() != 0 {
		t.Error("teardown must remove the marker")
	}
}

func TestLateFixAfterDisableDiscarded(t *testing.T) {
	m, sim, loc := enabledManager(t)

	// The one-shot is not cancellable; keep its callback and complete it
	// after the feature is turned off.
	late := loc.oneShots[0].success
	m.SetEnabled(false)
	late(fix(41, -87))

	if got := sim.MarkerCount(); got != 0 {
		t.Errorf("a late fix after disable must be discarded, got %d markers", got)
	}
}

func TestReEnableAfterDisable(t *testing.T) {
	m, sim, loc := enabledManager(t)
	loc.deliverWatch(models.LatLng{Lat: 41, Lng: -87})
	m.SetEnabled(false)

	m.SetEnabled(true)
	loc.deliverWatch(models.LatLng{Lat: 43, Lng: -89})

	if got := sim.MarkerCount(); got != 1 {
		t.Fatalf("re-enable should track again with a single marker, got %d", got)
	}
	if len(loc.watches) != 1 {
		t.Errorf("re-enable should hold exactly one live watch, got %d", len(loc.watches))
	}
}

func TestFixFailuresSwallowed(t *testing.T) {
	_, sim, loc := enabledManager(t)

	loc.oneShots[0].failure(fmt.Errorf("permission denied"))
	for _, w := range loc.watches {
		w.failure(fmt.Errorf("timeout"))
	}

	if sim.MarkerCount() != 0 {
		t.Error("failures must not create markers")
	}
	if len(loc.watches) != 1 {
		t.Error("failures must not tear the watch down; it retries on its own cadence")
	}
}

func TestNilLocatorBehavesDisabled(t *testing.T) {
	sim := widget.NewSim(nil)
	m := NewManager(sim, nil, true)
	m.SetEnabled(true)
	m.WidgetLoaded()

	if m.Tracking() {
		t.Error("no geolocation capability means permanently disabled")
	}
	if sim.MarkerCount() != 0 {
		t.Error("no marker without a locator")
	}
	// The control exists but pressing it does nothing.
	if !sim.PressControl(ButtonLabel) {
		t.Fatal("control should be attached and enabled")
	}
}

func TestButtonConstructedOnce(t *testing.T) {
	m, sim, _ := enabledManager(t)
	m.WidgetLoaded() // re-render; must not duplicate the control

	if got := len(sim.Controls()); got != 1 {
		t.Errorf("the control is constructed once at load time, got %d", got)
	}
}

func TestButtonCheapPathPansToLastFix(t *testing.T) {
	_, sim, loc := enabledManager(t)
	loc.deliverWatch(models.LatLng{Lat: 41, Lng: -87})
	requestsBefore := len(loc.oneShots)

	if !sim.PressControl(ButtonLabel) {
		t.Fatal("control should be pressable")
	}

	if c := sim.Center(); c.Lat != 41 || c.Lng != -87 {
		t.Errorf("press with a marker should pan to the last fix, got %+v", c)
	}
	if len(loc.oneShots) != requestsBefore {
		t.Error("the cheap path must not spend a location request")
	}
}

func TestButtonFreshPathDisablesDuringFlight(t *testing.T) {
	_, sim, loc := enabledManager(t)

	// No fix yet: pressing issues a fresh request and disables the control.
	if !sim.PressControl(ButtonLabel) {
		t.Fatal("control should be pressable")
	}
	if len(loc.oneShots) != 2 {
		t.Fatalf("expected a fresh one-shot request, got %d total", len(loc.oneShots))
	}
	fresh := loc.oneShots[1]
	if fresh.opts != geoloc.FreshOptions {
		t.Errorf("fresh request should use FreshOptions, got %+v", fresh.opts)
	}
	if sim.PressControl(ButtonLabel) {
		t.Error("control must be disabled while the request is in flight")
	}

	fresh.success(fix(41, -87))
	if c := sim.Center(); c.Lat != 41 || c.Lng != -87 {
		t.Errorf("fresh fix should pan the widget, got %+v", c)
	}
	if !sim.PressControl(ButtonLabel) {
		t.Error("control must re-enable after success")
	}
}

func TestButtonFreshPathReEnablesOnFailure(t *testing.T) {
	_, sim, loc := enabledManager(t)

	sim.PressControl(ButtonLabel)
	loc.oneShots[1].failure(fmt.Errorf("timeout"))

	if !sim.PressControl(ButtonLabel) {
		t.Error("control must re-enable after failure")
	}
}
