// ABOUTME: MCP tool definitions and handlers
// ABOUTME: Region and camera operations for AI agents over the live adapter

package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/harper/mapbridge/internal/models"
)

func (s *Server) registerTools() {
	s.registerGetRegionTool()
	s.registerSetRegionTool()
	s.registerGetCameraTool()
	s.registerMoveCameraTool()
	s.registerPanToTool()
}

// RegionOutput defines output for region tools.
type RegionOutput struct {
	Latitude       float64 `json:"latitude"`
	Longitude      float64 `json:"longitude"`
	LatitudeDelta  float64 `json:"latitudeDelta"`
	LongitudeDelta float64 `json:"longitudeDelta"`
}

func regionOutput(r models.Region) RegionOutput {
	return RegionOutput{
		Latitude:       r.Latitude,
		Longitude:      r.Longitude,
		LatitudeDelta:  r.LatitudeDelta,
		LongitudeDelta: r.LongitudeDelta,
	}
}

func textResult(v any) *mcp.CallToolResult {
	jsonBytes, _ := json.MarshalIndent(v, "", "  ") //nolint:errchkjson // output is always serializable
	return &mcp.CallToolResult{
		Content: []mcp.Content{&mcp.TextContent{Text: string(jsonBytes)}},
	}
}

// GetRegionInput is empty but required for type.
type GetRegionInput struct{}

func (s *Server) registerGetRegionTool() {
	mcp.AddTool(s.mcp, &mcp.Tool{
		Name:        "get_region",
		Description: "Get the map's current viewport as a mobile-style region (center plus latitude/longitude spans). All fields are zero before the map has loaded.",
		InputSchema: map[string]interface{}{
			"type": "object",
		},
	}, s.handleGetRegion)
}

func (s *Server) handleGetRegion(_ context.Context, req *mcp.CallToolRequest, input GetRegionInput) (*mcp.CallToolResult, RegionOutput, error) {
	output := regionOutput(s.adapter.CurrentRegion())
	return textResult(output), output, nil
}

// SetRegionInput defines input for the set_region tool.
type SetRegionInput struct {
	Latitude       float64 `json:"latitude"`
	Longitude      float64 `json:"longitude"`
	LatitudeDelta  float64 `json:"latitudeDelta"`
	LongitudeDelta float64 `json:"longitudeDelta"`
}

func (s *Server) registerSetRegionTool() {
	mcp.AddTool(s.mcp, &mcp.Tool{
		Name:        "set_region",
		Description: "Overwrite the map viewport with a mobile-style region. The zoom level is derived from the longitude delta.",
		InputSchema: map[string]interface{}{
			"type": "object",
			"properties": map[string]interface{}{
				"latitude": map[string]interface{}{
					"type":        "number",
					"description": "Center latitude (-90 to 90)",
				},
				"longitude": map[string]interface{}{
					"type":        "number",
					"description": "Center longitude (-180 to 180)",
				},
				"latitudeDelta": map[string]interface{}{
					"type":        "number",
					"description": "Latitude span in degrees (> 0)",
				},
				"longitudeDelta": map[string]interface{}{
					"type":        "number",
					"description": "Longitude span in degrees (> 0)",
				},
			},
			"required": []string{"latitude", "longitude", "latitudeDelta", "longitudeDelta"},
		},
	}, s.handleSetRegion)
}

func (s *Server) handleSetRegion(_ context.Context, req *mcp.CallToolRequest, input SetRegionInput) (*mcp.CallToolResult, RegionOutput, error) {
	r := models.Region{
		Latitude:       input.Latitude,
		Longitude:      input.Longitude,
		LatitudeDelta:  input.LatitudeDelta,
		LongitudeDelta: input.LongitudeDelta,
	}
	if err := models.ValidateRegion(r); err != nil {
		return nil, RegionOutput{}, err
	}

	s.adapter.SetRegion(r)

	output := regionOutput(s.adapter.CurrentRegion())
	return textResult(output), output, nil
}

// CameraOutput defines output for camera tools.
type CameraOutput struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Pitch     float64 `json:"pitch"`
	Altitude  float64 `json:"altitude"`
	Heading   float64 `json:"heading"`
	Zoom      float64 `json:"zoom"`
}

func cameraOutput(c models.Camera) CameraOutput {
	return CameraOutput{
		Latitude:  c.Center.Lat,
		Longitude: c.Center.Lng,
		Pitch:     c.Pitch,
		Altitude:  c.Altitude,
		Heading:   c.Heading,
		Zoom:      c.Zoom,
	}
}

// GetCameraInput is empty but required for type.
type GetCameraInput struct{}

func (s *Server) registerGetCameraTool() {
	mcp.AddTool(s.mcp, &mcp.Tool{
		Name:        "get_camera",
		Description: "Get the imperative camera: center, pitch, altitude, heading, zoom. Altitude is always 0 (unsupported by the web widget).",
		InputSchema: map[string]interface{}{
			"type": "object",
		},
	}, s.handleGetCamera)
}

func (s *Server) handleGetCamera(_ context.Context, req *mcp.CallToolRequest, input GetCameraInput) (*mcp.CallToolResult, CameraOutput, error) {
	output := cameraOutput(s.adapter.Handle().GetCamera())
	return textResult(output), output, nil
}

// MoveCameraInput defines input for the move_camera tool. Omitted fields
// keep their current widget value.
type MoveCameraInput struct {
	Latitude  *float64 `json:"latitude,omitempty"`
	Longitude *float64 `json:"longitude,omitempty"`
	Pitch     *float64 `json:"pitch,omitempty"`
	Heading   *float64 `json:"heading,omitempty"`
	Zoom      *float64 `json:"zoom,omitempty"`
}

func (s *Server) registerMoveCameraTool() {
	mcp.AddTool(s.mcp, &mcp.Tool{
		Name:        "move_camera",
		Description: "Move the camera. Omitted fields are left unchanged. Latitude and longitude must be supplied together.",
		InputSchema: map[string]interface{}{
			"type": "object",
			"properties": map[string]interface{}{
				"latitude": map[string]interface{}{
					"type":        "number",
					"description": "Target latitude (-90 to 90)",
				},
				"longitude": map[string]interface{}{
					"type":        "number",
					"description": "Target longitude (-180 to 180)",
				},
				"pitch": map[string]interface{}{
					"type":        "number",
					"description": "Camera pitch in degrees",
				},
				"heading": map[string]interface{}{
					"type":        "number",
					"description": "Camera heading in degrees",
				},
				"zoom": map[string]interface{}{
					"type":        "number",
					"description": "Zoom level (0 to 21)",
				},
			},
		},
	}, s.handleMoveCamera)
}

func (s *Server) handleMoveCamera(_ context.Context, req *mcp.CallToolRequest, input MoveCameraInput) (*mcp.CallToolResult, CameraOutput, error) {
	if (input.Latitude == nil) != (input.Longitude == nil) {
		return nil, CameraOutput{}, fmt.Errorf("latitude and longitude must be supplied together")
	}

	update := models.CameraUpdate{
		Pitch:   input.Pitch,
		Heading: input.Heading,
		Zoom:    input.Zoom,
	}
	if input.Latitude != nil {
		if err := models.ValidateCoordinates(*input.Latitude, *input.Longitude); err != nil {
			return nil, CameraOutput{}, err
		}
		update.Center = &models.LatLng{Lat: *input.Latitude, Lng: *input.Longitude}
	}

	s.adapter.Handle().SetCamera(update)

	output := cameraOutput(s.adapter.Handle().GetCamera())
	return textResult(output), output, nil
}

// PanToInput defines input for the pan_to tool.
type PanToInput struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

func (s *Server) registerPanToTool() {
	mcp.AddTool(s.mcp, &mcp.Tool{
		Name:        "pan_to",
		Description: "Pan the map to a point without changing zoom (the mobile animateToRegion pan-only semantics).",
		InputSchema: map[string]interface{}{
			"type": "object",
			"properties": map[string]interface{}{
				"latitude": map[string]interface{}{
					"type":        "number",
					"description": "Target latitude (-90 to 90)",
				},
				"longitude": map[string]interface{}{
					"type":        "number",
					"description": "Target longitude (-180 to 180)",
				},
			},
			"required": []string{"latitude", "longitude"},
		},
	}, s.handlePanTo)
}

func (s *Server) handlePanTo(_ context.Context, req *mcp.CallToolRequest, input PanToInput) (*mcp.CallToolResult, RegionOutput, error) {
	if err := models.ValidateCoordinates(input.Latitude, input.Longitude); err != nil {
		return nil, RegionOutput{}, err
	}

	s.adapter.Handle().AnimateToRegion(models.Region{
		Latitude:  input.Latitude,
		Longitude: input.Longitude,
		// Deltas are not applied by AnimateToRegion; 1x1 keeps the value valid.
		LatitudeDelta:  1,
		LongitudeDelta: 1,
	})

	output := regionOutput(s.adapter.CurrentRegion())
	return textResult(output), output, nil
}
