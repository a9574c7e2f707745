// ABOUTME: Terminal UI formatting utilities
// ABOUTME: Provides human-readable output for regions, cameras, and location fixes

package ui

import (
	"fmt"

	"github.com/fatih/color"

	"github.com/harper/mapbridge/internal/geoloc"
	"github.com/harper/mapbridge/internal/models"
)

// FormatLatLng formats a point for terminal display.
func FormatLatLng(p models.LatLng) string {
	return fmt.Sprintf("(%.4f, %.4f)", p.Lat, p.Lng)
}

// FormatRegion formats a region for terminal display.
func FormatRegion(r models.Region) string {
	if r.IsZero() {
		return color.New(color.Faint).Sprint("(no region)")
	}
	return fmt.Sprintf("%s %s",
		color.CyanString("(%.4f, %.4f)", r.Latitude, r.Longitude),
		color.New(color.Faint).Sprintf("Δ%.4f×%.4f", r.LatitudeDelta, r.LongitudeDelta))
}

// FormatCamera formats a camera for terminal display.
func FormatCamera(c models.Camera) string {
	return fmt.Sprintf("%s %s",
		color.CyanString(FormatLatLng(c.Center)),
		color.New(color.Faint).Sprintf("zoom %.1f pitch %.0f heading %.0f", c.Zoom, c.Pitch, c.Heading))
}

// FormatChange formats an outward region-change callback line.
func FormatChange(event string, r models.Region) string {
	return fmt.Sprintf("%s %s",
		color.GreenString(event),
		FormatRegion(r))
}

// FormatFix formats a location fix for terminal display.
func FormatFix(fix geoloc.Fix) string {
	return fmt.Sprintf("%s %s",
		color.CyanString(FormatLatLng(fix.Position)),
		color.New(color.Faint).Sprintf("±%.0fm", fix.Accuracy))
}
