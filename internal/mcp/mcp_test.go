// ABOUTME: Unit tests for MCP server and tool handlers
// ABOUTME: Handlers are exercised directly against a loaded simulated widget

package mcp

import (
	"context"
	"testing"

	"github.com/harper/mapbridge/internal/adapter"
	"github.com/harper/mapbridge/internal/models"
	"github.com/harper/mapbridge/internal/widget"
)

func testServer(t *testing.T) (*Server, *widget.Sim) {
	t.Helper()
	sim := widget.NewSim(nil)
	region := models.Region{Latitude: 37, Longitude: -122, LatitudeDelta: 0.1, LongitudeDelta: 0.1}
	a := adapter.New(sim, nil, adapter.Options{InitialRegion: &region})
	sim.Load()

	s, err := NewServer(a)
	if err != nil {
		t.Fatalf("NewServer failed: %v", err)
	}
	return s, sim
}

func TestNewServer(t *testing.T) {
	s, _ := testServer(t)
	if s.mcp == nil {
		t.Error("expected MCP server to be initialized")
	}
}

func TestNewServer_NilAdapter(t *testing.T) {
	if _, err := NewServer(nil); err == nil {
		t.Error("expected error for nil adapter")
	}
}

func TestHandleGetRegion(t *testing.T) {
	s, _ := testServer(t)

	result, output, err := s.handleGetRegion(context.Background(), nil, GetRegionInput{})
	if err != nil {
		t.Fatalf("handler failed: %v", err)
	}
	if result == nil || len(result.Content) == 0 {
		t.Fatal("expected text content")
	}
	if output.Latitude != 37 || output.Longitude != -122 {
		t.Errorf("unexpected region center: %+v", output)
	}
	if output.LongitudeDelta <= 0 {
		t.Errorf("expected positive longitude delta, got %v", output.LongitudeDelta)
	}
}

func TestHandleSetRegion(t *testing.T) {
	s, sim := testServer(t)

	_, output, err := s.handleSetRegion(context.Background(), nil, SetRegionInput{
		Latitude:       10,
		Longitude:      20,
		LatitudeDelta:  0.05,
		LongitudeDelta: 0.1,
	})
	if err != nil {
		t.Fatalf("handler failed: %v", err)
	}
	if c := sim.Center(); c.Lat != 10 || c.Lng != 20 {
		t.Errorf("widget center not updated: %+v", c)
	}
	if output.Latitude != 10 || output.Longitude != 20 {
		t.Errorf("unexpected output region: %+v", output)
	}
}

func TestHandleSetRegion_Invalid(t *testing.T) {
	s, _ := testServer(t)

	_, _, err := s.handleSetRegion(context.Background(), nil, SetRegionInput{
		Latitude:       99,
		Longitude:      0,
		LatitudeDelta:  1,
		LongitudeDelta: 1,
	})
	if err == nil {
		t.Error("expected validation error")
	}

	_, _, err = s.handleSetRegion(context.Background(), nil, SetRegionInput{
		Latitude: 10, Longitude: 20,
	})
	if err == nil {
		t.Error("expected error for zero deltas")
	}
}

func TestHandleGetCamera(t *testing.T) {
	s, _ := testServer(t)

	_, output, err := s.handleGetCamera(context.Background(), nil, GetCameraInput{})
	if err != nil {
		t.Fatalf("handler failed: %v", err)
	}
	if output.Latitude != 37 || output.Longitude != -122 {
		t.Errorf("unexpected camera center: %+v", output)
	}
	if output.Altitude != 0 {
		t.Errorf("altitude must be 0, got %v", output.Altitude)
	}
	if output.Zoom != 12 {
		t.Errorf("expected zoom 12 for a 0.1 degree span, got %v", output.Zoom)
	}
}

func TestHandleMoveCamera(t *testing.T) {
	s, sim := testServer(t)

	z := 15.0
	_, output, err := s.handleMoveCamera(context.Background(), nil, MoveCameraInput{Zoom: &z})
	if err != nil {
		t.Fatalf("handler failed: %v", err)
	}
	if sim.Zoom() != 15 {
		t.Errorf("zoom not applied, got %v", sim.Zoom())
	}
	if output.Latitude != 37 || output.Longitude != -122 {
		t.Errorf("unspecified center must not move, got %+v", output)
	}
}

func TestHandleMoveCamera_LoneLatitude(t *testing.T) {
	s, _ := testServer(t)

	lat := 10.0
	_, _, err := s.handleMoveCamera(context.Background(), nil, MoveCameraInput{Latitude: &lat})
	if err == nil {
		t.Error("expected error when latitude is supplied without longitude")
	}
}

func TestHandleMoveCamera_InvalidCenter(t *testing.T) {
	s, _ := testServer(t)

	lat, lng := 99.0, 0.0
	_, _, err := s.handleMoveCamera(context.Background(), nil, MoveCameraInput{Latitude: &lat, Longitude: &lng})
	if err == nil {
		t.Error("expected validation error")
	}
}

func TestHandlePanTo(t *testing.T) {
	s, sim := testServer(t)
	zoomBefore := sim.Zoom()

	_, output, err := s.handlePanTo(context.Background(), nil, PanToInput{Latitude: 10, Longitude: 20})
	if err != nil {
		t.Fatalf("handler failed: %v", err)
	}
	if c := sim.Center(); c.Lat != 10 || c.Lng != 20 {
		t.Errorf("widget not panned: %+v", c)
	}
	if sim.Zoom() != zoomBefore {
		t.Errorf("pan_to must not change zoom: %v -> %v", zoomBefore, sim.Zoom())
	}
	if output.Latitude != 10 || output.Longitude != 20 {
		t.Errorf("unexpected output: %+v", output)
	}
}

func TestHandlePanTo_Invalid(t *testing.T) {
	s, _ := testServer(t)

	if _, _, err := s.handlePanTo(context.Background(), nil, PanToInput{Latitude: -91}); err == nil {
		t.Error("expected validation error")
	}
}
