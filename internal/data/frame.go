package data

// Camera placement that frames a generated mesh. Angles are in radians.
type ViewFrame struct {
	CenterLon      float64 `json:"center_lon"`
	CenterLat      float64 `json:"center_lat"`
	CameraAltitude float64 `json:"camera_altitude"`
	Heading        float64 `json:"heading"`
	Pitch          float64 `json:"pitch"`
	Roll           float64 `json:"roll"`
}
