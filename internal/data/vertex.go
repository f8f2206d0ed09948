package data

// A sampled grid cell converted to sanitized geographic coordinates.
// Lon is in [-180, 180], Lat in [-90, 90], Height is finite and already scaled,
// U and V are in [0, 1].
type NormalizedVertex struct {
	Lon    float64
	Lat    float64
	Height float64
	U      float64
	V      float64
}

// Row-major grid of normalized vertices, the input of the mesh builder
type NormalizedGrid struct {
	GridWidth  int
	GridHeight int
	Vertices   []NormalizedVertex

	// raw (unscaled) height range of the sampled cells after repair
	MinHeight float64
	MaxHeight float64

	// number of cells whose lon, lat or height had to be replaced
	Repaired int
}

// Returns the vertex at grid column xIndex and grid row yIndex
func (g *NormalizedGrid) At(xIndex int, yIndex int) NormalizedVertex {
	return g.Vertices[yIndex*g.GridWidth+xIndex]
}

// Returns the slice of vertices belonging to grid row yIndex
func (g *NormalizedGrid) Row(yIndex int) []NormalizedVertex {
	return g.Vertices[yIndex*g.GridWidth : (yIndex+1)*g.GridWidth]
}
