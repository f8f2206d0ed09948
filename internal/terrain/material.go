package terrain

// RGBA color with components in [0, 1]
type Color struct {
	R float64 `json:"r"`
	G float64 `json:"g"`
	B float64 `json:"b"`
	A float64 `json:"a"`
}

// Immutable description of how a mesh is drawn, produced alongside each mesh
type Material struct {
	Color      Color      `json:"color"`
	Appearance Appearance `json:"appearance"`
	Show       bool       `json:"show"`
}
