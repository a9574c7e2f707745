// ABOUTME: Deterministic simulated locator that walks great-circle paths
// ABOUTME: Drives the demo CLI and exercises watch delivery without real hardware

package geoloc

import (
	"fmt"
	"time"

	"github.com/golang/geo/s2"
	"github.com/google/uuid"

	"github.com/harper/mapbridge/internal/models"
)

const earthRadiusMeters = 6371010.0

// Distance returns the great-circle distance between two points in meters.
func Distance(a, b models.LatLng) float64 {
	return float64(point(a).Distance(point(b))) * earthRadiusMeters
}

func point(p models.LatLng) s2.Point {
	return s2.PointFromLatLng(s2.LatLngFromDegrees(p.Lat, p.Lng))
}

func latLng(pt s2.Point) models.LatLng {
	ll := s2.LatLngFromPoint(pt)
	return models.LatLng{Lat: ll.Lat.Degrees(), Lng: ll.Lng.Degrees()}
}

type simWatch struct {
	success func(Fix)
	failure func(error)
}

// Sim is a Locator that walks along great-circle legs between waypoints,
// emitting one fix per Advance call. Delivery is synchronous, which keeps
// demo sessions and tests deterministic.
type Sim struct {
	waypoints   []models.LatLng
	stepsPerLeg int
	step        int
	watches     map[WatchID]simWatch
	failing     bool
}

// NewSim creates a locator that walks the given waypoints, taking
// stepsPerLeg fixes to cover each leg.
func NewSim(waypoints []models.LatLng, stepsPerLeg int) *Sim {
	if stepsPerLeg < 1 {
		stepsPerLeg = 1
	}
	return &Sim{
		waypoints:   waypoints,
		stepsPerLeg: stepsPerLeg,
		watches:     make(map[WatchID]simWatch),
	}
}

// Position returns the walker's current position.
func (s *Sim) Position() models.LatLng {
	if len(s.waypoints) == 0 {
		return models.LatLng{}
	}
	leg := s.step / s.stepsPerLeg
	if leg >= len(s.waypoints)-1 {
		return s.waypoints[len(s.waypoints)-1]
	}
	t := float64(s.step%s.stepsPerLeg) / float64(s.stepsPerLeg)
	a := point(s.waypoints[leg])
	b := point(s.waypoints[leg+1])
	return latLng(s2.Interpolate(t, a, b))
}

// Advance moves the walker one step and delivers a fix to every watch.
func (s *Sim) Advance() {
	s.step++
	fix := s.fix()
	for _, w := range s.watches {
		if s.failing {
			if w.failure != nil {
				w.failure(fmt.Errorf("position unavailable"))
			}
			continue
		}
		if w.success != nil {
			w.success(fix)
		}
	}
}

// SetFailing makes subsequent requests and watch deliveries fail, simulating
// a denied permission or lost signal.
func (s *Sim) SetFailing(failing bool) { s.failing = failing }

func (s *Sim) fix() Fix {
	return Fix{Position: s.Position(), Accuracy: 5, Timestamp: time.Now()}
}

func (s *Sim) CurrentPosition(_ RequestOptions, success func(Fix), failure func(error)) {
	if s.failing {
		if failure != nil {
			failure(fmt.Errorf("position unavailable"))
		}
		return
	}
	if success != nil {
		success(s.fix())
	}
}

func (s *Sim) WatchPosition(_ RequestOptions, success func(Fix), failure func(error)) WatchID {
	id := uuid.New()
	s.watches[id] = simWatch{success: success, failure: failure}
	return id
}

func (s *Sim) ClearWatch(id WatchID) {
	delete(s.watches, id)
}

// WatchCount reports how many watches are live. Used to verify the watch
// handle is released on every disable path.
func (s *Sim) WatchCount() int { return len(s.watches) }
