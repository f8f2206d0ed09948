package data

import "math"

// Builds a raster holding a single gaussian hill of the given peak height centered in the box.
// Used by the command line tool and tests in place of a decoded file.
func NewSyntheticRaster(width int, height int, bbox BoundingBox, peak float64) *RasterGrid {
	samples := make([]float64, width*height)
	cx, cy := float64(width-1)/2, float64(height-1)/2
	sigma := math.Max(1, math.Min(float64(width), float64(height))/4)

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			dx, dy := float64(x)-cx, float64(y)-cy
			samples[y*width+x] = peak * math.Exp(-(dx*dx+dy*dy)/(2*sigma*sigma))
		}
	}

	raster := NewRasterGrid(width, height, bbox, samples)
	raster.SizeBytes = int64(len(samples)) * 8
	return raster
}
