// ABOUTME: Collaborator contract for the platform geolocation service
// ABOUTME: One-shot position requests, continuous watches, and the literal request options

package geoloc

import (
	"time"

	"github.com/google/uuid"

	"github.com/harper/mapbridge/internal/models"
)

// Fix is a successful position reading.
type Fix struct {
	Position  models.LatLng
	Accuracy  float64 // meters
	Timestamp time.Time
}

// RequestOptions mirrors the platform geolocation options.
type RequestOptions struct {
	HighAccuracy bool
	Timeout      time.Duration
	MaximumAge   time.Duration
}

// The three request profiles used by the adapter. All are high accuracy with
// a 10 second timeout; they differ only in how stale a cached fix may be.
var (
	// EnableOptions is used for the one-shot request issued when user
	// location tracking is first enabled. A minute-old fix is fine there.
	EnableOptions = RequestOptions{HighAccuracy: true, Timeout: 10 * time.Second, MaximumAge: time.Minute}

	// WatchOptions is used for the continuous watch.
	WatchOptions = RequestOptions{HighAccuracy: true, Timeout: 10 * time.Second, MaximumAge: 5 * time.Second}

	// FreshOptions is used when the locate-me control needs a brand new fix.
	FreshOptions = RequestOptions{HighAccuracy: true, Timeout: 10 * time.Second, MaximumAge: 0}
)

// WatchID identifies a continuous watch for cancellation.
type WatchID = uuid.UUID

// Locator is the geolocation collaborator. Results arrive via callback at an
// arbitrary later time; there is no ordering guarantee relative to widget
// events. A nil Locator in callers means the capability is unavailable.
type Locator interface {
	// CurrentPosition issues a one-shot request. Exactly one of success or
	// failure is eventually invoked. The request is not cancellable.
	CurrentPosition(opts RequestOptions, success func(Fix), failure func(error))

	// WatchPosition starts a continuous watch and returns its handle.
	// success may be invoked any number of times until ClearWatch.
	WatchPosition(opts RequestOptions, success func(Fix), failure func(error)) WatchID

	// ClearWatch cancels a watch. Unknown handles are ignored.
	ClearWatch(WatchID)
}
