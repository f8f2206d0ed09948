package main

import (
	"github.com/ecopia-map/cesium_terrain_mesher/internal/data"
	"github.com/ecopia-map/cesium_terrain_mesher/internal/terrain"
	"github.com/ecopia-map/cesium_terrain_mesher/pkg"
	"github.com/ecopia-map/cesium_terrain_mesher/tools"
)

const anglePlaces = 6

type frameReport struct {
	CenterLon      float64 `json:"center_lon"`
	CenterLat      float64 `json:"center_lat"`
	CameraAltitude float64 `json:"camera_altitude"`
	Heading        float64 `json:"heading"`
	Pitch          float64 `json:"pitch"`
	Roll           float64 `json:"roll"`
}

type runReport struct {
	Summary        pkg.Summary      `json:"summary"`
	Elapsed        string           `json:"elapsed"`
	States         []pkg.State      `json:"states"`
	Frame          frameReport      `json:"frame"`
	Material       terrain.Material `json:"material"`
	BoundingRadius float64          `json:"bounding_radius"`
}

func newFrameReport(frame data.ViewFrame) frameReport {
	return frameReport{
		CenterLon:      tools.RoundFloat(frame.CenterLon, tools.DegreePlaces),
		CenterLat:      tools.RoundFloat(frame.CenterLat, tools.DegreePlaces),
		CameraAltitude: tools.RoundFloat(frame.CameraAltitude, tools.MeterPlaces),
		Heading:        tools.RoundFloat(frame.Heading, anglePlaces),
		Pitch:          tools.RoundFloat(frame.Pitch, anglePlaces),
		Roll:           tools.RoundFloat(frame.Roll, anglePlaces),
	}
}

func newRunReport(result *pkg.Result) runReport {
	summary := result.Summary
	summary.MinHeight = tools.RoundFloat(summary.MinHeight, tools.MeterPlaces)
	summary.MaxHeight = tools.RoundFloat(summary.MaxHeight, tools.MeterPlaces)

	return runReport{
		Summary:        summary,
		Elapsed:        summary.Elapsed.String(),
		States:         result.History,
		Frame:          newFrameReport(result.Frame),
		Material:       result.Material,
		BoundingRadius: tools.RoundFloat(result.Mesh.BoundingRadius, tools.MeterPlaces),
	}
}
